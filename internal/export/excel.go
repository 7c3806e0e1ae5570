// Package export renders a loaded month grid as an Excel workbook with the
// same layout as the on-screen calendar: a title row, a day-number header
// with weekends highlighted, and one row per person grouped under a merged,
// rotated role label.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"gestor-turnos/internal/calendar"
	"gestor-turnos/internal/models"
)

const hoja = "Turnos"

var meses = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var coloresGrupo = map[string]string{
	models.GrupoJefes:      "E7F8FE",
	models.GrupoOperadores: "E7FEEC",
	models.GrupoEMC:        "F9E7FE",
	models.GrupoOtros:      "F2F2F2",
}

// NombreArchivo returns the download name for a month's workbook, e.g.
// "Turnos_enero_2025.xlsx".
func NombreArchivo(grid calendar.Grid) string {
	return fmt.Sprintf("Turnos_%s_%d.xlsx", meses[grid.MesCero], grid.Year)
}

func tituloMes(grid calendar.Grid) string {
	nombre := meses[grid.MesCero]
	return fmt.Sprintf(" %s%s %d", strings.ToUpper(nombre[:1]), nombre[1:], grid.Year)
}

func bordeFino() []excelize.Border {
	borde := func(tipo string) excelize.Border {
		return excelize.Border{Type: tipo, Style: 1, Color: "000000"}
	}
	return []excelize.Border{borde("top"), borde("left"), borde("bottom"), borde("right")}
}

func relleno(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

// colorCelda resolves the fill for an assigned cell, retén shading first.
func colorCelda(codigo string, esReten bool) string {
	if esReten {
		return "ADD8E6"
	}
	switch codigo {
	case models.AusenciaVacaciones, models.AusenciaCumpleanos:
		return "FFFF00"
	case models.AusenciaBaja:
		return "FF0000"
	case models.TurnoMananaCasa, models.TurnoMananaOficina:
		return "FFA500"
	case models.TurnoNocheCasa, models.TurnoNocheOficina:
		return "DA70D6"
	}
	return "FFFFFF"
}

type estilos struct {
	titulo      int
	cabecera    int
	cabeceraFin int
	nombre      int
	descanso    int
	celda       map[string]int
}

func prepararEstilos(f *excelize.File) (*estilos, error) {
	centrado := &excelize.Alignment{Horizontal: "center", Vertical: "middle"}
	e := &estilos{celda: map[string]int{}}

	var err error
	e.titulo, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      relleno("666666"),
		Alignment: centrado,
	})
	if err != nil {
		return nil, err
	}

	cabecera := excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      relleno("444444"),
		Alignment: centrado,
		Border:    bordeFino(),
	}
	if e.cabecera, err = f.NewStyle(&cabecera); err != nil {
		return nil, err
	}
	finDeSemana := cabecera
	finDeSemana.Fill = relleno("F86363")
	if e.cabeceraFin, err = f.NewStyle(&finDeSemana); err != nil {
		return nil, err
	}

	e.nombre, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "000000"},
		Alignment: centrado,
		Border:    bordeFino(),
	})
	if err != nil {
		return nil, err
	}

	e.descanso, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      relleno("A9A9A9"),
		Alignment: centrado,
		Border:    bordeFino(),
	})
	return e, err
}

func (e *estilos) deCelda(f *excelize.File, color string) (int, error) {
	if id, ok := e.celda[color]; ok {
		return id, nil
	}
	id, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "000000"},
		Fill:      relleno(color),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "middle"},
		Border:    bordeFino(),
	})
	if err != nil {
		return 0, err
	}
	e.celda[color] = id
	return id, nil
}

// Generar builds the month workbook in memory.
func Generar(grid calendar.Grid) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, err
	}

	est, err := prepararEstilos(f)
	if err != nil {
		return nil, err
	}

	dias := grid.Dias
	ultimaCol, _ := excelize.ColumnNumberToName(len(dias) + 2)

	if err := f.SetColWidth(hoja, "A", "A", 15); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(hoja, "B", "B", 25); err != nil {
		return nil, err
	}
	primeraDia, _ := excelize.ColumnNumberToName(3)
	if err := f.SetColWidth(hoja, primeraDia, ultimaCol, 4); err != nil {
		return nil, err
	}

	// Title row spanning the whole grid.
	if err := f.MergeCell(hoja, "A1", ultimaCol+"1"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(hoja, "A1", tituloMes(grid)); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(hoja, "A1", ultimaCol+"1", est.titulo); err != nil {
		return nil, err
	}

	// Day-number header, weekends in red.
	if err := f.SetCellValue(hoja, "A2", "Rol"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(hoja, "B2", "Usuario / Día"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(hoja, "A2", "B2", est.cabecera); err != nil {
		return nil, err
	}
	for i, dia := range dias {
		celda, _ := excelize.CoordinatesToCellName(i+3, 2)
		if err := f.SetCellValue(hoja, celda, dia.Day()); err != nil {
			return nil, err
		}
		estilo := est.cabecera
		if dia.EsFinDeSemana() {
			estilo = est.cabeceraFin
		}
		if err := f.SetCellStyle(hoja, celda, celda, estilo); err != nil {
			return nil, err
		}
	}

	fila := 3
	for _, grupo := range grid.Grupos {
		if len(grupo.Filas) == 0 {
			continue
		}
		inicio := fila
		for _, persona := range grupo.Filas {
			celda, _ := excelize.CoordinatesToCellName(2, fila)
			if err := f.SetCellValue(hoja, celda, persona.Usuario.NombreCompleto()); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(hoja, celda, celda, est.nombre); err != nil {
				return nil, err
			}

			for i, c := range persona.Celdas {
				celda, _ := excelize.CoordinatesToCellName(i+3, fila)
				estilo := est.nombre
				if c.Turno != nil {
					if err := f.SetCellValue(hoja, celda, c.Turno.Turno); err != nil {
						return nil, err
					}
					if c.Turno.Turno == models.TurnoDescanso {
						estilo = est.descanso
					} else {
						estilo, err = est.deCelda(f, colorCelda(c.Turno.Turno, c.Turno.EsReten))
						if err != nil {
							return nil, err
						}
					}
				}
				if err := f.SetCellStyle(hoja, celda, celda, estilo); err != nil {
					return nil, err
				}
			}
			fila++
		}

		// Merged role label rotated 90 degrees along the group's rows.
		primera, _ := excelize.CoordinatesToCellName(1, inicio)
		ultima, _ := excelize.CoordinatesToCellName(1, fila-1)
		if err := f.MergeCell(hoja, primera, ultima); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(hoja, primera, grupo.Nombre); err != nil {
			return nil, err
		}
		color := coloresGrupo[grupo.Nombre]
		if color == "" {
			color = coloresGrupo[models.GrupoOtros]
		}
		estiloGrupo, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "000000"},
			Fill:      relleno(color),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "middle", TextRotation: 90},
			Border:    bordeFino(),
		})
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(hoja, primera, ultima, estiloGrupo); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Guardar writes the month workbook to disk.
func Guardar(grid calendar.Grid, ruta string) error {
	f, err := Generar(grid)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(ruta)
}

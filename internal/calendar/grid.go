// Package calendar assembles the month grid the dashboard renders: one row
// per active person grouped by role, one column per day of the month.
package calendar

import (
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/roster"
	"gestor-turnos/internal/schedule"
	"gestor-turnos/pkg/fechas"
)

// EstiloCelda is the resolved presentation of one grid cell.
type EstiloCelda struct {
	Fondo   string // hex ARGB fill
	Texto   string
	Negrita bool
}

var (
	estiloBase       = EstiloCelda{Fondo: "FFFFFFFF", Texto: "FF000000"}
	estiloFinDeSem   = EstiloCelda{Fondo: "FFF2F2F2", Texto: "FF000000"}
	estiloFestivo    = EstiloCelda{Fondo: "FFF86363", Texto: "FFFFFFFF", Negrita: true}
	estiloReten      = EstiloCelda{Fondo: "FFADD8E6", Texto: "FF000000"}
	estilosPorCodigo = map[string]EstiloCelda{
		models.AusenciaVacaciones: {Fondo: "FFFFFF00", Texto: "FF000000"},
		models.AusenciaCumpleanos: {Fondo: "FFFFFF00", Texto: "FF000000"},
		models.AusenciaBaja:       {Fondo: "FFFF0000", Texto: "FFFFFFFF"},
		models.TurnoMananaCasa:    {Fondo: "FFFFA500", Texto: "FF000000"},
		models.TurnoMananaOficina: {Fondo: "FFFFA500", Texto: "FF000000"},
		models.TurnoNocheCasa:     {Fondo: "FFDA70D6", Texto: "FF000000"},
		models.TurnoNocheOficina:  {Fondo: "FFDA70D6", Texto: "FF000000"},
		models.TurnoDescanso:      {Fondo: "FFA9A9A9", Texto: "FFFFFFFF", Negrita: true},
	}
)

// Estilo resolves a cell's presentation. Holiday shading wins over every
// assignment, retén shading over the code's own color, and the weekend tint
// applies only to otherwise unstyled cells.
func Estilo(turno *models.Turno, festivo, finDeSemana bool) EstiloCelda {
	if festivo {
		return estiloFestivo
	}
	if turno != nil {
		if turno.EsReten {
			return estiloReten
		}
		if e, ok := estilosPorCodigo[turno.Turno]; ok {
			return e
		}
	}
	if finDeSemana {
		return estiloFinDeSem
	}
	return estiloBase
}

// Celda is one day cell of a person's row.
type Celda struct {
	Fecha       fechas.Fecha
	Turno       *models.Turno
	Festivo     bool
	FinDeSemana bool
	Estilo      EstiloCelda
}

// Fila is one person's row of the grid.
type Fila struct {
	Usuario models.Usuario
	Celdas  []Celda
}

// GrupoFilas bundles the rows of one role group.
type GrupoFilas struct {
	Nombre string
	Filas  []Fila
}

// Grid is a fully resolved month view.
type Grid struct {
	Year    int
	MesCero int // zero-based display month
	Dias    []fechas.Fecha
	Grupos  []GrupoFilas
}

// Construir builds the grid for a month from the roster grouping, the loaded
// schedule and the set of active holiday dates.
func Construir(year, mesCero int, grupos []roster.Grupo, turnos *schedule.Store, festivos map[fechas.Fecha]bool) Grid {
	dias := fechas.DiasDelMes(year, time.Month(mesCero+1))
	grid := Grid{Year: year, MesCero: mesCero, Dias: dias}

	for _, g := range grupos {
		gf := GrupoFilas{Nombre: g.Nombre}
		for _, u := range g.Usuarios {
			fila := Fila{Usuario: u, Celdas: make([]Celda, 0, len(dias))}
			for _, dia := range dias {
				turno := turnos.Turno(dia, u.ID)
				festivo := festivos[dia]
				finde := dia.EsFinDeSemana()
				fila.Celdas = append(fila.Celdas, Celda{
					Fecha:       dia,
					Turno:       turno,
					Festivo:     festivo,
					FinDeSemana: finde,
					Estilo:      Estilo(turno, festivo, finde),
				})
			}
			gf.Filas = append(gf.Filas, fila)
		}
		grid.Grupos = append(grid.Grupos, gf)
	}
	return grid
}

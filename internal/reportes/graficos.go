// Package reportes regroups report rows into chart datasets for the reports
// view. The aggregates come from the backend as-is; this package only decides
// the chart variant and assembles labels and series.
package reportes

import (
	"sort"
	"strconv"
	"strings"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/service"
)

// Chart variants. Individual reports render as a donut, population-wide
// reports as grouped bars.
const (
	Donut  = "donut"
	Barras = "barras"
)

const (
	colorAzul     = "#36A2EB"
	colorRojo     = "#FF6384"
	colorAmarillo = "#FFCE56"
)

type Serie struct {
	Etiqueta string
	Datos    []int
	Color    string
}

type Grafico struct {
	Variante  string
	Etiquetas []string
	Series    []Serie
}

// etiqueta is the short per-person chart label: the first token of nombres.
func etiqueta(nombres string) string {
	if campos := strings.Fields(nombres); len(campos) > 0 {
		return campos[0]
	}
	return nombres
}

// Trabajados builds the worked-days chart. With a single user the donut
// splits laborables against festivos; population-wide it bars laborables per
// person, adding the festivos series only when the report is monthly.
func Trabajados(filas []models.ReporteTrabajado, individual, mensual bool) *Grafico {
	if len(filas) == 0 {
		return nil
	}
	if individual {
		u := filas[0]
		festivos := 0
		if mensual {
			festivos = u.DiasFestivos
		}
		return &Grafico{
			Variante:  Donut,
			Etiquetas: []string{"Días Laborables", "Días Festivos"},
			Series: []Serie{
				{Datos: []int{u.DiasTrabajadosNoFestivo, festivos}, Color: colorAzul},
			},
		}
	}

	g := &Grafico{Variante: Barras}
	var laborables, festivos []int
	for _, u := range filas {
		g.Etiquetas = append(g.Etiquetas, etiqueta(u.Nombres))
		laborables = append(laborables, u.DiasTrabajadosNoFestivo)
		festivos = append(festivos, u.DiasFestivos)
	}
	g.Series = []Serie{{Etiqueta: "Laborables", Datos: laborables, Color: colorAzul}}
	if mensual {
		g.Series = append(g.Series, Serie{Etiqueta: "Festivos", Datos: festivos, Color: colorRojo})
	}
	return g
}

// Turnos builds the shift-distribution chart over the mañana/tarde/noche
// buckets.
func Turnos(filas []models.ReporteTurnos, individual bool) *Grafico {
	if len(filas) == 0 {
		return nil
	}
	if individual {
		u := filas[0]
		return &Grafico{
			Variante:  Donut,
			Etiquetas: []string{"Mañana", "Tarde", "Noche"},
			Series:    []Serie{{Datos: []int{u.Manana, u.Tarde, u.Noche}, Color: colorAzul}},
		}
	}

	g := &Grafico{Variante: Barras}
	var manana, tarde, noche []int
	for _, u := range filas {
		g.Etiquetas = append(g.Etiquetas, etiqueta(u.Nombres))
		manana = append(manana, u.Manana)
		tarde = append(tarde, u.Tarde)
		noche = append(noche, u.Noche)
	}
	g.Series = []Serie{
		{Etiqueta: "Mañana", Datos: manana, Color: colorAzul},
		{Etiqueta: "Tarde", Datos: tarde, Color: colorAmarillo},
		{Etiqueta: "Noche", Datos: noche, Color: colorRojo},
	}
	return g
}

// Festivos builds the individual worked-holidays donut: one slice per worked
// holiday, labeled by day of month. Population-wide reports render the
// per-day detail list instead, so no chart is returned.
func Festivos(filas []models.ReporteFestivos, individual bool) *Grafico {
	if !individual || len(filas) == 0 {
		return nil
	}
	u := filas[0]
	if len(u.FestivosTrabajados) == 0 {
		return nil
	}
	g := &Grafico{Variante: Donut}
	serie := Serie{Color: colorRojo}
	for _, f := range u.FestivosTrabajados {
		g.Etiquetas = append(g.Etiquetas, strconv.Itoa(f.Day()))
		serie.Datos = append(serie.Datos, 1)
	}
	g.Series = []Serie{serie}
	return g
}

// DetalleFestivo is one day of the population-wide worked-holiday listing.
type DetalleFestivo struct {
	Dia      int
	Usuarios []string
}

// FestivosDetalle flattens the global report's day map into a day-ordered
// listing for the detail table.
func FestivosDetalle(filas []models.ReporteFestivos) []DetalleFestivo {
	if len(filas) == 0 || len(filas[0].FestivosDetalleDia) == 0 {
		return nil
	}
	detalle := filas[0].FestivosDetalleDia
	dias := make([]int, 0, len(detalle))
	for dia := range detalle {
		dias = append(dias, dia)
	}
	sort.Ints(dias)

	out := make([]DetalleFestivo, 0, len(dias))
	for _, dia := range dias {
		out = append(out, DetalleFestivo{Dia: dia, Usuarios: detalle[dia]})
	}
	return out
}

// Vacaciones builds the vacation allowance chart: used against remaining
// days out of the yearly allowance.
func Vacaciones(filas []models.ReporteVacaciones, individual bool) *Grafico {
	if len(filas) == 0 {
		return nil
	}
	if individual {
		u := filas[0]
		return &Grafico{
			Variante:  Donut,
			Etiquetas: []string{"Usados", "Restantes"},
			Series: []Serie{
				{Datos: []int{service.DiasVacacionesAnuales - u.DiasRestantes, u.DiasRestantes}, Color: colorRojo},
			},
		}
	}

	g := &Grafico{Variante: Barras}
	var usados, restantes []int
	for _, u := range filas {
		g.Etiquetas = append(g.Etiquetas, etiqueta(u.Nombres))
		usados = append(usados, service.DiasVacacionesAnuales-u.DiasRestantes)
		restantes = append(restantes, u.DiasRestantes)
	}
	g.Series = []Serie{
		{Etiqueta: "Usados", Datos: usados, Color: colorRojo},
		{Etiqueta: "Restantes", Datos: restantes, Color: colorAzul},
	}
	return g
}

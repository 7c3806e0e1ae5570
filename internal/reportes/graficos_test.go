package reportes

import (
	"testing"
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/service"
	"gestor-turnos/pkg/fechas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrabajados_VarianteYEtiquetas(t *testing.T) {
	filas := []models.ReporteTrabajado{
		{Nombres: "Ana María", DiasTrabajadosNoFestivo: 18, DiasFestivos: 2},
		{Nombres: "Berta", DiasTrabajadosNoFestivo: 20, DiasFestivos: 1},
	}

	individual := Trabajados(filas[:1], true, true)
	require.NotNil(t, individual)
	assert.Equal(t, Donut, individual.Variante)
	assert.Equal(t, []int{18, 2}, individual.Series[0].Datos)

	global := Trabajados(filas, false, true)
	require.NotNil(t, global)
	assert.Equal(t, Barras, global.Variante)
	assert.Equal(t, []string{"Ana", "Berta"}, global.Etiquetas, "labels are the first name token")
	require.Len(t, global.Series, 2)
	assert.Equal(t, []int{18, 20}, global.Series[0].Datos)

	anual := Trabajados(filas, false, false)
	require.Len(t, anual.Series, 1, "festivos series only exists for monthly reports")

	assert.Nil(t, Trabajados(nil, false, true))
}

func TestTurnos_Buckets(t *testing.T) {
	filas := []models.ReporteTurnos{
		{Nombres: "Ana", Manana: 5, Tarde: 3, Noche: 2},
		{Nombres: "Berta", Manana: 4, Tarde: 4, Noche: 4},
	}

	individual := Turnos(filas[:1], true)
	require.NotNil(t, individual)
	assert.Equal(t, Donut, individual.Variante)
	assert.Equal(t, []string{"Mañana", "Tarde", "Noche"}, individual.Etiquetas)
	assert.Equal(t, []int{5, 3, 2}, individual.Series[0].Datos)

	global := Turnos(filas, false)
	require.Len(t, global.Series, 3)
	assert.Equal(t, []int{2, 4}, global.Series[2].Datos)
}

func TestFestivos_SoloIndividual(t *testing.T) {
	filas := []models.ReporteFestivos{{
		Nombres: "Ana",
		FestivosTrabajados: []fechas.Fecha{
			fechas.Nueva(2025, time.December, 25),
			fechas.Nueva(2025, time.December, 6),
		},
	}}

	g := Festivos(filas, true)
	require.NotNil(t, g)
	assert.Equal(t, Donut, g.Variante)
	assert.Equal(t, []string{"25", "6"}, g.Etiquetas)
	assert.Equal(t, []int{1, 1}, g.Series[0].Datos)

	assert.Nil(t, Festivos(filas, false), "global view renders the detail list instead")
	assert.Nil(t, Festivos([]models.ReporteFestivos{{Nombres: "Ana"}}, true))
}

func TestFestivosDetalle_OrdenadoPorDia(t *testing.T) {
	filas := []models.ReporteFestivos{{
		Nombres: "Todos",
		FestivosDetalleDia: map[int][]string{
			25: {"Ana García (M)", "Berta López (N)"},
			6:  {"Carlos Ruiz (T)"},
		},
	}}

	detalle := FestivosDetalle(filas)
	require.Len(t, detalle, 2)
	assert.Equal(t, 6, detalle[0].Dia)
	assert.Equal(t, 25, detalle[1].Dia)
	assert.Len(t, detalle[1].Usuarios, 2)

	assert.Nil(t, FestivosDetalle(nil))
}

func TestVacaciones_UsadosYRestantes(t *testing.T) {
	filas := []models.ReporteVacaciones{
		{Nombres: "Ana", DiasRestantes: 27},
		{Nombres: "Berta", DiasRestantes: 31},
	}

	individual := Vacaciones(filas[:1], true)
	require.NotNil(t, individual)
	assert.Equal(t, []int{service.DiasVacacionesAnuales - 27, 27}, individual.Series[0].Datos)

	global := Vacaciones(filas, false)
	require.Len(t, global.Series, 2)
	assert.Equal(t, []int{4, 0}, global.Series[0].Datos)
	assert.Equal(t, []int{27, 31}, global.Series[1].Datos)
}

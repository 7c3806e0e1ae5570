package service

import (
	"testing"
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFestivoService_Crear(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewFestivoService(e.festivos)

	festivo := &models.Festivo{DiaMes: "25/12", Descripcion: "Navidad", Tipo: models.FestivoNacional}
	require.NoError(t, svc.Crear(festivo))
	assert.Equal(t, models.EstadoActivo, festivo.Estado)

	// Same pair and type is a duplicate; another type on the same day is not.
	err := svc.Crear(&models.Festivo{DiaMes: "25/12", Descripcion: "Otra", Tipo: models.FestivoNacional})
	assert.ErrorIs(t, err, ErrFestivoDuplicado)
	assert.NoError(t, svc.Crear(&models.Festivo{DiaMes: "25/12", Descripcion: "Local", Tipo: models.FestivoRegional}))
}

func TestFestivoService_Crear_Validacion(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewFestivoService(e.festivos)

	err := svc.Crear(&models.Festivo{DiaMes: "1/1", Descripcion: "x", Tipo: models.FestivoNacional})
	assert.ErrorIs(t, err, ErrFormatoDiaMes, "single-digit day fails the DD/MM pattern")

	err = svc.Crear(&models.Festivo{DiaMes: "30/02", Descripcion: "x", Tipo: models.FestivoNacional})
	assert.ErrorIs(t, err, ErrFechaInexistente)

	// 29/02 exists in leap years and is accepted.
	assert.NoError(t, svc.Crear(&models.Festivo{DiaMes: "29/02", Descripcion: "bisiesto", Tipo: models.FestivoNacional}))

	err = svc.Crear(&models.Festivo{DiaMes: "01/05", Descripcion: "x", Tipo: "Local"})
	assert.ErrorIs(t, err, ErrTipoFestivo)
}

func TestFestivoService_Listar_Ordenado(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewFestivoService(e.festivos)

	for _, dm := range []string{"25/12", "01/01", "15/08"} {
		require.NoError(t, svc.Crear(&models.Festivo{DiaMes: dm, Descripcion: dm, Tipo: models.FestivoNacional}))
	}

	festivos, err := svc.Listar()
	require.NoError(t, err)
	require.Len(t, festivos, 3)
	assert.Equal(t, "01/01", festivos[0].DiaMes)
	assert.Equal(t, "15/08", festivos[1].DiaMes)
	assert.Equal(t, "25/12", festivos[2].DiaMes)
}

func TestFestivoService_ActualizarParcial_Estado(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewFestivoService(e.festivos)

	festivo := &models.Festivo{DiaMes: "25/12", Descripcion: "Navidad", Tipo: models.FestivoNacional}
	require.NoError(t, svc.Crear(festivo))

	inactivo := models.EstadoInactivo
	actualizado, err := svc.ActualizarParcial(festivo.ID, ActualizacionFestivo{Estado: &inactivo})
	require.NoError(t, err)
	assert.Equal(t, models.EstadoInactivo, actualizado.Estado)
	assert.Equal(t, "Navidad", actualizado.Descripcion, "other fields untouched")

	invalido := "suspendido"
	_, err = svc.ActualizarParcial(festivo.ID, ActualizacionFestivo{Estado: &invalido})
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestFestivoService_FechasActivasDelMes(t *testing.T) {
	e := nuevoEntorno(t)
	svc := NewFestivoService(e.festivos)

	navidad := &models.Festivo{DiaMes: "25/12", Descripcion: "Navidad", Tipo: models.FestivoNacional}
	require.NoError(t, svc.Crear(navidad))
	require.NoError(t, svc.Crear(&models.Festivo{DiaMes: "01/01", Descripcion: "Año Nuevo", Tipo: models.FestivoNacional}))

	set, err := svc.FechasActivasDelMes(2025, 12)
	require.NoError(t, err)
	assert.True(t, set[fechas.Nueva(2025, time.December, 25)])
	assert.Len(t, set, 1, "holidays of other months are excluded")

	// A deactivated holiday stops shading.
	inactivo := models.EstadoInactivo
	_, err = svc.ActualizarParcial(navidad.ID, ActualizacionFestivo{Estado: &inactivo})
	require.NoError(t, err)

	set, err = svc.FechasActivasDelMes(2025, 12)
	require.NoError(t, err)
	assert.Empty(t, set)
}

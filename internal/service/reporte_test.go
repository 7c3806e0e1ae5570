package service

import (
	"testing"
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mesDe(m int) *int { return &m }

func (e *entorno) reportes() *ReporteService {
	festivoSvc := NewFestivoService(e.festivos)
	return NewReporteService(e.usuarios, e.roles, e.turnos, festivoSvc)
}

func (e *entorno) asignar(t *testing.T, usuarioID uint, fecha fechas.Fecha, codigo string) {
	t.Helper()
	svc := NewTurnoService(e.turnos, e.usuarios, e.ausencias)
	_, err := svc.Asignar(usuarioID, fecha, codigo, false)
	require.NoError(t, err)
}

func TestReporteService_Trabajados(t *testing.T) {
	e := nuevoEntorno(t)
	u := e.crearUsuario(t, "agarcia", 2)

	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 3), models.TurnoManana)      // 8h
	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 4), models.TurnoMananaCasa)  // 12h
	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 5), models.TurnoDescanso)    // not counted
	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 6), models.AusenciaVacaciones)

	reporte, err := e.reportes().Trabajados(models.ReporteRequest{Year: 2025, Month: mesDe(3)})
	require.NoError(t, err)
	require.Len(t, reporte, 1)

	fila := reporte[0]
	assert.Equal(t, 2, fila.DiasTrabajados, "rest and absence days are not worked days")
	assert.Equal(t, 20, fila.HorasTrabajadas)
	assert.Equal(t, 20, fila.HorasTrabajadasRaw)
	assert.Equal(t, map[string]int{"M": 1, "FM1": 1}, fila.TurnosCodigos)
}

func TestReporteService_Trabajados_FestivoSplit(t *testing.T) {
	e := nuevoEntorno(t)
	u := e.crearUsuario(t, "agarcia", 1)

	festivoSvc := NewFestivoService(e.festivos)
	require.NoError(t, festivoSvc.Crear(&models.Festivo{
		DiaMes: "25/12", Descripcion: "Navidad", Tipo: models.FestivoNacional,
	}))

	e.asignar(t, u.ID, fechas.Nueva(2025, time.December, 24), models.TurnoManana)
	e.asignar(t, u.ID, fechas.Nueva(2025, time.December, 25), models.TurnoNoche)

	reporte, err := e.reportes().Trabajados(models.ReporteRequest{Year: 2025, Month: mesDe(12)})
	require.NoError(t, err)
	require.Len(t, reporte, 1)

	fila := reporte[0]
	assert.Equal(t, 2, fila.DiasTrabajados)
	assert.Equal(t, 1, fila.DiasFestivos)
	assert.Equal(t, 1, fila.DiasTrabajadosNoFestivo)
}

func TestReporteService_Turnos_Buckets(t *testing.T) {
	e := nuevoEntorno(t)
	u := e.crearUsuario(t, "agarcia", 2)

	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 3), models.TurnoManana)
	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 4), models.TurnoMananaOficina)
	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 5), models.TurnoTarde)
	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 6), models.TurnoNoche)
	e.asignar(t, u.ID, fechas.Nueva(2025, time.March, 7), models.TurnoNocheCasa)

	reporte, err := e.reportes().Turnos(models.ReporteRequest{Year: 2025, Month: mesDe(3)})
	require.NoError(t, err)
	require.Len(t, reporte, 1)

	fila := reporte[0]
	assert.Equal(t, 2, fila.Manana, "FM* counts as mañana")
	assert.Equal(t, 1, fila.Tarde)
	assert.Equal(t, 2, fila.Noche, "FN* counts as noche")
	assert.Equal(t, 5, fila.Total)
	assert.Equal(t, 8+12+8+8+12, fila.HorasTrabajadas)
}

func TestReporteService_Festivos_SoloMensual(t *testing.T) {
	e := nuevoEntorno(t)
	e.crearUsuario(t, "agarcia", 1)

	_, err := e.reportes().Festivos(models.ReporteRequest{Year: 2025})
	assert.ErrorIs(t, err, ErrSoloMensual)
}

func TestReporteService_Festivos_Global(t *testing.T) {
	e := nuevoEntorno(t)
	u1 := e.crearUsuario(t, "agarcia", 1)
	u2 := e.crearUsuario(t, "blopez", 2)

	festivoSvc := NewFestivoService(e.festivos)
	require.NoError(t, festivoSvc.Crear(&models.Festivo{
		DiaMes: "25/12", Descripcion: "Navidad", Tipo: models.FestivoNacional,
	}))

	navidad := fechas.Nueva(2025, time.December, 25)
	e.asignar(t, u1.ID, navidad, models.TurnoManana)
	e.asignar(t, u2.ID, navidad, models.TurnoNoche)

	reporte, err := e.reportes().Festivos(models.ReporteRequest{Year: 2025, Month: mesDe(12)})
	require.NoError(t, err)
	require.Len(t, reporte, 1, "global report is one synthetic row")

	fila := reporte[0]
	assert.Equal(t, "Todos", fila.Nombres)
	require.Contains(t, fila.FestivosDetalleDia, 25)
	assert.Len(t, fila.FestivosDetalleDia[25], 2)
	assert.Contains(t, fila.FestivosDetalleDia[25][0], "(M)")
	require.Len(t, fila.FestivosFechas, 1)
	assert.True(t, navidad.Igual(fila.FestivosFechas[0]))
}

func TestReporteService_Festivos_Individual(t *testing.T) {
	e := nuevoEntorno(t)
	u := e.crearUsuario(t, "agarcia", 1)

	festivoSvc := NewFestivoService(e.festivos)
	require.NoError(t, festivoSvc.Crear(&models.Festivo{
		DiaMes: "25/12", Descripcion: "Navidad", Tipo: models.FestivoNacional,
	}))

	navidad := fechas.Nueva(2025, time.December, 25)
	e.asignar(t, u.ID, navidad, models.TurnoManana)
	e.asignar(t, u.ID, fechas.Nueva(2025, time.December, 24), models.TurnoManana)

	reporte, err := e.reportes().Festivos(models.ReporteRequest{Year: 2025, Month: mesDe(12), UsuarioID: &u.ID})
	require.NoError(t, err)
	require.Len(t, reporte, 1)
	require.Len(t, reporte[0].FestivosTrabajados, 1, "only holiday dates count")
	assert.True(t, navidad.Igual(reporte[0].FestivosTrabajados[0]))
}

func TestReporteService_Vacaciones(t *testing.T) {
	e := nuevoEntorno(t)
	u := e.crearUsuario(t, "agarcia", 2)

	cumple := fechas.Nueva(1990, time.May, 5)
	usuarioSvc := NewUsuarioService(e.usuarios, e.roles)
	_, err := usuarioSvc.ActualizarParcial(u.ID, ActualizacionUsuario{CumpleAnios: &cumple})
	require.NoError(t, err)

	turnoSvc := NewTurnoService(e.turnos, e.usuarios, e.ausencias)
	_, err = turnoSvc.AsignarAusenciaRango(u.ID,
		fechas.Nueva(2025, time.July, 14), fechas.Nueva(2025, time.July, 16),
		models.AusenciaVacaciones, "")
	require.NoError(t, err)
	e.asignar(t, u.ID, fechas.Nueva(2025, time.May, 5), models.AusenciaCumpleanos)

	reporte, err := e.reportes().Vacaciones(models.ReporteRequest{Year: 2025})
	require.NoError(t, err)
	require.Len(t, reporte, 1)

	fila := reporte[0]
	assert.Equal(t, 3, fila.VacacionesTomadas)
	assert.True(t, fila.CumpleanosTomado)
	assert.Equal(t, DiasVacacionesAnuales-4, fila.DiasRestantes)
}

func TestReporteService_Poblacion(t *testing.T) {
	e := nuevoEntorno(t)
	e.crearUsuario(t, "jefe", 1)
	e.crearUsuario(t, "operador", 2)
	e.crearUsuario(t, "emc", 3)

	reporte, err := e.reportes().Trabajados(models.ReporteRequest{Year: 2025})
	require.NoError(t, err)
	assert.Len(t, reporte, 2, "EMC users are outside the report population")

	otro := uint(999)
	_, err = e.reportes().Trabajados(models.ReporteRequest{Year: 2025, UsuarioID: &otro})
	assert.ErrorIs(t, err, ErrSinUsuarios)
}

package service

import (
	"path/filepath"
	"testing"
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/repository"
	"gestor-turnos/pkg/fechas"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type entorno struct {
	usuarios  repository.UsuarioRepository
	roles     repository.RolRepository
	turnos    repository.TurnoRepository
	festivos  repository.FestivoRepository
	ausencias repository.AusenciaRepository
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	// A file-backed DB: ":memory:" is per-connection under the sql pool.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	e := &entorno{}
	e.usuarios, err = repository.NewGormUsuarioRepository(db)
	require.NoError(t, err)
	e.roles, err = repository.NewGormRolRepository(db)
	require.NoError(t, err)
	e.turnos, err = repository.NewGormTurnoRepository(db)
	require.NoError(t, err)
	e.festivos, err = repository.NewGormFestivoRepository(db)
	require.NoError(t, err)
	e.ausencias, err = repository.NewGormAusenciaRepository(db)
	require.NoError(t, err)

	sembrarRoles(t, db)
	return e
}

func sembrarRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	roles := []models.Rol{
		{Nombre: "Jefe de Turno", Grupo: models.GrupoJefes},
		{Nombre: "Operador", Grupo: models.GrupoOperadores},
		{Nombre: "EMC", Grupo: models.GrupoEMC},
	}
	for i := range roles {
		require.NoError(t, db.Create(&roles[i]).Error)
	}
}

func (e *entorno) crearUsuario(t *testing.T, login string, rolID uint) *models.Usuario {
	t.Helper()
	svc := NewUsuarioService(e.usuarios, e.roles)
	u := &models.Usuario{
		Nombres:      "Nombre " + login,
		Apellidos:    "Apellido",
		Usuario:      login,
		FechaIngreso: fechas.Nueva(2024, time.January, 15),
		RolID:        rolID,
	}
	require.NoError(t, svc.Crear(u))
	return u
}

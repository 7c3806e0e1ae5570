package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/repository"
	"gestor-turnos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func nuevaApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	usuarioRepo, err := repository.NewGormUsuarioRepository(db)
	require.NoError(t, err)
	rolRepo, err := repository.NewGormRolRepository(db)
	require.NoError(t, err)
	turnoRepo, err := repository.NewGormTurnoRepository(db)
	require.NoError(t, err)
	festivoRepo, err := repository.NewGormFestivoRepository(db)
	require.NoError(t, err)
	ausenciaRepo, err := repository.NewGormAusenciaRepository(db)
	require.NoError(t, err)

	for _, rol := range []models.Rol{
		{Nombre: "Jefe de Turno", Grupo: models.GrupoJefes},
		{Nombre: "Operador", Grupo: models.GrupoOperadores},
	} {
		require.NoError(t, db.Create(&rol).Error)
	}

	usuarioSvc := service.NewUsuarioService(usuarioRepo, rolRepo)
	turnoSvc := service.NewTurnoService(turnoRepo, usuarioRepo, ausenciaRepo)
	festivoSvc := service.NewFestivoService(festivoRepo)
	reporteSvc := service.NewReporteService(usuarioRepo, rolRepo, turnoRepo, festivoSvc)

	app := fiber.New()
	NewHandler(usuarioSvc, turnoSvc, festivoSvc, reporteSvc, rolRepo).RegistrarRutas(app)
	return app
}

func peticion(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var lector io.Reader
	if body != nil {
		datos, err := json.Marshal(body)
		require.NoError(t, err)
		lector = bytes.NewReader(datos)
	}
	req := httptest.NewRequest(method, path, lector)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	datos, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, datos
}

func decodificar[T any](t *testing.T, datos []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(datos, &out))
	return out
}

func detalleDe(t *testing.T, datos []byte) string {
	t.Helper()
	return decodificar[map[string]string](t, datos)["detail"]
}

func crearUsuarioPrueba(t *testing.T, app *fiber.App, login string) models.Usuario {
	t.Helper()
	status, cuerpo := peticion(t, app, http.MethodPost, "/usuarios", fiber.Map{
		"nombres":       "Ana María",
		"apellidos":     "García",
		"usuario":       login,
		"fecha_ingreso": "2024-01-15",
		"rol_id":        1,
	})
	require.Equal(t, http.StatusCreated, status, string(cuerpo))
	return decodificar[models.Usuario](t, cuerpo)
}

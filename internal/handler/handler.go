package handler

import (
	"errors"
	"regexp"
	"time"

	"gestor-turnos/internal/repository"
	"gestor-turnos/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Client-side mirrors of these rules live in the registry forms; the server
// enforces the same ones.
var (
	patronSoloLetras = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	patronTelefono   = regexp.MustCompile(`^[0-9]{1,9}$`)
)

type Handler struct {
	usuarios  *service.UsuarioService
	turnos    *service.TurnoService
	festivos  *service.FestivoService
	reportes  *service.ReporteService
	rolRepo   repository.RolRepository
	validador *validator.Validate
	logger    *logrus.Logger
}

func NewHandler(
	usuarios *service.UsuarioService,
	turnos *service.TurnoService,
	festivos *service.FestivoService,
	reportes *service.ReporteService,
	rolRepo repository.RolRepository,
) *Handler {
	v := validator.New()
	_ = v.RegisterValidation("solo_letras", func(fl validator.FieldLevel) bool {
		return patronSoloLetras.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		return patronTelefono.MatchString(fl.Field().String())
	})

	return &Handler{
		usuarios:  usuarios,
		turnos:    turnos,
		festivos:  festivos,
		reportes:  reportes,
		rolRepo:   rolRepo,
		validador: v,
		logger:    logrus.New(),
	}
}

// RegistrarRutas wires the REST surface the dashboard consumes.
func (h *Handler) RegistrarRutas(app *fiber.App) {
	app.Get("/usuarios", h.ListarUsuarios)
	app.Post("/usuarios", h.CrearUsuario)
	app.Get("/usuarios/:id", h.ObtenerUsuario)
	app.Put("/usuarios/:id", h.ReemplazarUsuario)
	app.Patch("/usuarios/:id", h.ActualizarUsuario)
	app.Get("/usuarios/:id/ausencias", h.ListarAusenciasUsuario)

	app.Get("/roles", h.ListarRoles)

	app.Get("/turnos/mes/:year/:month", h.TurnosDelMes)
	app.Post("/turnos/asignar", h.AsignarTurno)
	app.Post("/turnos/cumpleanos/mes/:year/:month", h.AsignarCumpleanos)
	app.Post("/turnos/ausencia/rango", h.AsignarAusenciaRango)

	app.Get("/festivos/", h.ListarFestivos)
	app.Post("/festivos/", h.CrearFestivo)
	app.Patch("/festivos/:id", h.ActualizarFestivo)

	app.Post("/reportes/trabajados", h.ReporteTrabajados)
	app.Post("/reportes/turnos", h.ReporteTurnos)
	app.Post("/reportes/festivos", h.ReporteFestivos)
	app.Post("/reportes/vacaciones", h.ReporteVacaciones)
	app.Get("/reportes/years", h.ReporteYears)
}

// RequestLogger logs every request with its status and latency.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  c.Response().StatusCode(),
			"latency": time.Since(inicio),
		}).Info("request")
		return err
	}
}

// detalle writes the {"detail": ...} error envelope the dashboard surfaces
// in its notifications.
func detalle(c *fiber.Ctx, status int, mensaje string) error {
	return c.Status(status).JSON(fiber.Map{"detail": mensaje})
}

// responderError maps domain errors onto the right status code, defaulting
// to 500 with the message hidden behind a generic detail.
func (h *Handler) responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrUsuarioNoEncontrado):
		return detalle(c, fiber.StatusNotFound, "Usuario no encontrado")
	case errors.Is(err, repository.ErrFestivoNoEncontrado):
		return detalle(c, fiber.StatusNotFound, "Festivo no encontrado")
	case errors.Is(err, repository.ErrRolNoEncontrado):
		return detalle(c, fiber.StatusNotFound, "Rol no encontrado")
	case errors.Is(err, service.ErrSinUsuarios):
		return detalle(c, fiber.StatusNotFound, "No se encontraron usuarios válidos")
	case errors.Is(err, service.ErrLoginDuplicado),
		errors.Is(err, service.ErrFestivoDuplicado),
		errors.Is(err, service.ErrFechaIngresoVacia),
		errors.Is(err, service.ErrFechaSalidaVacia),
		errors.Is(err, service.ErrEstadoInvalido),
		errors.Is(err, service.ErrMesInvalido),
		errors.Is(err, service.ErrCodigoInvalido),
		errors.Is(err, service.ErrTipoAusencia),
		errors.Is(err, service.ErrTipoFestivo),
		errors.Is(err, service.ErrFormatoDiaMes),
		errors.Is(err, service.ErrFechaInexistente),
		errors.Is(err, service.ErrRangoInvertido),
		errors.Is(err, service.ErrAusenciaSolapada),
		errors.Is(err, service.ErrSoloMensual):
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	h.logger.WithError(err).Error("error interno")
	return detalle(c, fiber.StatusInternalServerError, "Error interno del servidor")
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return uint(id), nil
}

func parseYearMonth(c *fiber.Ctx) (int, int, error) {
	year, err := c.ParamsInt("year")
	if err != nil {
		return 0, 0, errors.New("año inválido")
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return 0, 0, errors.New("mes inválido")
	}
	return year, month, nil
}

package handler

import (
	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"

	"github.com/gofiber/fiber/v2"
)

type asignarTurnoRequest struct {
	UsuarioID uint         `json:"usuario_id" validate:"required"`
	Fecha     fechas.Fecha `json:"fecha"`
	Turno     string       `json:"turno" validate:"required"`
	EsReten   bool         `json:"es_reten"`
}

type ausenciaRangoRequest struct {
	UsuarioID   uint         `json:"usuario_id" validate:"required"`
	FechaInicio fechas.Fecha `json:"fecha_inicio"`
	FechaFin    fechas.Fecha `json:"fecha_fin"`
	Tipo        string       `json:"tipo" validate:"required"`
	Descripcion string       `json:"descripcion"`
}

// TurnosDelMes serves GET /turnos/mes/:year/:month with a one-based month.
func (h *Handler) TurnosDelMes(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	turnos, err := h.turnos.TurnosDelMes(year, month)
	if err != nil {
		return h.responderError(c, err)
	}
	if turnos == nil {
		turnos = []models.Turno{}
	}
	return c.JSON(turnos)
}

func (h *Handler) AsignarTurno(c *fiber.Ctx) error {
	var req asignarTurnoRequest
	if err := c.BodyParser(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := h.validador.Struct(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Fecha.IsZero() {
		return detalle(c, fiber.StatusBadRequest, "fecha es obligatoria")
	}
	turno, err := h.turnos.Asignar(req.UsuarioID, req.Fecha, req.Turno, req.EsReten)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(turno)
}

// AsignarCumpleanos triggers the server-side birthday auto-assignment for
// the month. The caller treats failures as best-effort.
func (h *Handler) AsignarCumpleanos(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	asignados, err := h.turnos.AsignarCumpleanosMes(year, month)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(fiber.Map{"asignados": asignados})
}

func (h *Handler) AsignarAusenciaRango(c *fiber.Ctx) error {
	var req ausenciaRangoRequest
	if err := c.BodyParser(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := h.validador.Struct(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	if req.FechaInicio.IsZero() || req.FechaFin.IsZero() {
		return detalle(c, fiber.StatusBadRequest, "fecha_inicio y fecha_fin son obligatorias")
	}
	ausencia, err := h.turnos.AsignarAusenciaRango(req.UsuarioID, req.FechaInicio, req.FechaFin, req.Tipo, req.Descripcion)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ausencia)
}

// ListarAusenciasUsuario serves GET /usuarios/:id/ausencias, newest first.
func (h *Handler) ListarAusenciasUsuario(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	ausencias, err := h.turnos.AusenciasDeUsuario(id)
	if err != nil {
		return h.responderError(c, err)
	}
	if ausencias == nil {
		ausencias = []models.Ausencia{}
	}
	return c.JSON(ausencias)
}

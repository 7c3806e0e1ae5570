package handler

import (
	"gestor-turnos/internal/models"
	"gestor-turnos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type crearFestivoRequest struct {
	DiaMes      string `json:"dia_mes" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Tipo        string `json:"tipo" validate:"required"`
	Estado      string `json:"estado" validate:"omitempty,oneof=activo inactivo"`
}

func (h *Handler) ListarFestivos(c *fiber.Ctx) error {
	festivos, err := h.festivos.Listar()
	if err != nil {
		return h.responderError(c, err)
	}
	if festivos == nil {
		festivos = []models.Festivo{}
	}
	return c.JSON(festivos)
}

func (h *Handler) CrearFestivo(c *fiber.Ctx) error {
	var req crearFestivoRequest
	if err := c.BodyParser(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := h.validador.Struct(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	festivo := &models.Festivo{
		DiaMes:      req.DiaMes,
		Descripcion: req.Descripcion,
		Tipo:        req.Tipo,
		Estado:      req.Estado,
	}
	if err := h.festivos.Crear(festivo); err != nil {
		return h.responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(festivo)
}

// ActualizarFestivo covers both full edits and the single-field estado
// toggle.
func (h *Handler) ActualizarFestivo(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	var cambios service.ActualizacionFestivo
	if err := c.BodyParser(&cambios); err != nil {
		return detalle(c, fiber.StatusBadRequest, "cuerpo de petición inválido")
	}
	festivo, err := h.festivos.ActualizarParcial(id, cambios)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(festivo)
}

package handler

import (
	"gestor-turnos/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) parseReporteRequest(c *fiber.Ctx) (models.ReporteRequest, error) {
	var req models.ReporteRequest
	if err := c.BodyParser(&req); err != nil {
		return req, err
	}
	return req, h.validador.Struct(&req)
}

func (h *Handler) ReporteTrabajados(c *fiber.Ctx) error {
	req, err := h.parseReporteRequest(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	reporte, err := h.reportes.Trabajados(req)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(reporte)
}

func (h *Handler) ReporteTurnos(c *fiber.Ctx) error {
	req, err := h.parseReporteRequest(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	reporte, err := h.reportes.Turnos(req)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(reporte)
}

func (h *Handler) ReporteFestivos(c *fiber.Ctx) error {
	req, err := h.parseReporteRequest(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	reporte, err := h.reportes.Festivos(req)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(reporte)
}

func (h *Handler) ReporteVacaciones(c *fiber.Ctx) error {
	req, err := h.parseReporteRequest(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	reporte, err := h.reportes.Vacaciones(req)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(reporte)
}

func (h *Handler) ReporteYears(c *fiber.Ctx) error {
	years, err := h.reportes.YearsDisponibles()
	if err != nil {
		return h.responderError(c, err)
	}
	if years == nil {
		years = []int{}
	}
	return c.JSON(years)
}

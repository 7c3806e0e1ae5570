package client

import (
	"context"

	"gestor-turnos/internal/models"
)

func (c *Client) ReporteTrabajados(ctx context.Context, req models.ReporteRequest) ([]models.ReporteTrabajado, error) {
	var reporte []models.ReporteTrabajado
	err := c.post(ctx, "/reportes/trabajados", req, &reporte)
	return reporte, err
}

func (c *Client) ReporteTurnos(ctx context.Context, req models.ReporteRequest) ([]models.ReporteTurnos, error) {
	var reporte []models.ReporteTurnos
	err := c.post(ctx, "/reportes/turnos", req, &reporte)
	return reporte, err
}

func (c *Client) ReporteFestivos(ctx context.Context, req models.ReporteRequest) ([]models.ReporteFestivos, error) {
	var reporte []models.ReporteFestivos
	err := c.post(ctx, "/reportes/festivos", req, &reporte)
	return reporte, err
}

func (c *Client) ReporteVacaciones(ctx context.Context, req models.ReporteRequest) ([]models.ReporteVacaciones, error) {
	var reporte []models.ReporteVacaciones
	err := c.post(ctx, "/reportes/vacaciones", req, &reporte)
	return reporte, err
}

func (c *Client) ReporteYears(ctx context.Context) ([]int, error) {
	var years []int
	err := c.get(ctx, "/reportes/years", &years)
	return years, err
}

package client

import (
	"context"
	"fmt"

	"gestor-turnos/internal/models"
)

func (c *Client) Festivos(ctx context.Context) ([]models.Festivo, error) {
	var festivos []models.Festivo
	err := c.get(ctx, "/festivos/", &festivos)
	return festivos, err
}

func (c *Client) CrearFestivo(ctx context.Context, festivo models.Festivo) (*models.Festivo, error) {
	var creado models.Festivo
	if err := c.post(ctx, "/festivos/", festivo, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

func (c *Client) ActualizarFestivo(ctx context.Context, id uint, campos map[string]any) (*models.Festivo, error) {
	var actualizado models.Festivo
	if err := c.patch(ctx, fmt.Sprintf("/festivos/%d", id), campos, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

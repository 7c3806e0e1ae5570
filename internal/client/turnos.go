package client

import (
	"context"
	"fmt"

	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"
)

// AsignacionTurno is the body of POST /turnos/asignar.
type AsignacionTurno struct {
	UsuarioID uint         `json:"usuario_id"`
	Fecha     fechas.Fecha `json:"fecha"`
	Turno     string       `json:"turno"`
	EsReten   bool         `json:"es_reten"`
}

// TurnosMes fetches the month's assignments. monthZeroBased is 0-11 at this
// boundary and converted to the one-based wire month here and only here.
func (c *Client) TurnosMes(ctx context.Context, year, monthZeroBased int) ([]models.Turno, error) {
	var turnos []models.Turno
	path := fmt.Sprintf("/turnos/mes/%d/%d", year, monthZeroBased+1)
	err := c.get(ctx, path, &turnos)
	return turnos, err
}

func (c *Client) AsignarTurno(ctx context.Context, asignacion AsignacionTurno) (*models.Turno, error) {
	var turno models.Turno
	if err := c.post(ctx, "/turnos/asignar", asignacion, &turno); err != nil {
		return nil, err
	}
	return &turno, nil
}

// AsignarCumpleanosMes triggers the server-side birthday auto-assignment and
// returns how many cells it seeded. Same zero-based month convention as
// TurnosMes.
func (c *Client) AsignarCumpleanosMes(ctx context.Context, year, monthZeroBased int) (int, error) {
	path := fmt.Sprintf("/turnos/cumpleanos/mes/%d/%d", year, monthZeroBased+1)
	var resp struct {
		Asignados int `json:"asignados"`
	}
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Asignados, nil
}

func (c *Client) AsignarAusenciaRango(ctx context.Context, usuarioID uint, inicio, fin fechas.Fecha, tipo, descripcion string) (*models.Ausencia, error) {
	body := map[string]any{
		"usuario_id":   usuarioID,
		"fecha_inicio": inicio,
		"fecha_fin":    fin,
		"tipo":         tipo,
	}
	if descripcion != "" {
		body["descripcion"] = descripcion
	}
	var ausencia models.Ausencia
	if err := c.post(ctx, "/turnos/ausencia/rango", body, &ausencia); err != nil {
		return nil, err
	}
	return &ausencia, nil
}

func (c *Client) AusenciasUsuario(ctx context.Context, usuarioID uint) ([]models.Ausencia, error) {
	var ausencias []models.Ausencia
	err := c.get(ctx, fmt.Sprintf("/usuarios/%d/ausencias", usuarioID), &ausencias)
	return ausencias, err
}

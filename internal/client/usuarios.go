package client

import (
	"context"
	"fmt"

	"gestor-turnos/internal/models"
)

func (c *Client) Usuarios(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := c.get(ctx, "/usuarios", &usuarios)
	return usuarios, err
}

func (c *Client) Roles(ctx context.Context) ([]models.Rol, error) {
	var roles []models.Rol
	err := c.get(ctx, "/roles", &roles)
	return roles, err
}

func (c *Client) CrearUsuario(ctx context.Context, usuario models.Usuario) (*models.Usuario, error) {
	var creado models.Usuario
	if err := c.post(ctx, "/usuarios", usuario, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// ActualizarUsuario sends a partial PATCH; only the given fields travel.
func (c *Client) ActualizarUsuario(ctx context.Context, id uint, campos map[string]any) (*models.Usuario, error) {
	var actualizado models.Usuario
	if err := c.patch(ctx, fmt.Sprintf("/usuarios/%d", id), campos, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

package handler

import (
	"gestor-turnos/internal/models"
	"gestor-turnos/internal/service"
	"gestor-turnos/pkg/fechas"

	"github.com/gofiber/fiber/v2"
)

type crearUsuarioRequest struct {
	Nombres      string        `json:"nombres" validate:"required,solo_letras"`
	Apellidos    string        `json:"apellidos" validate:"required,solo_letras"`
	Usuario      string        `json:"usuario" validate:"required"`
	CumpleAnios  *fechas.Fecha `json:"cumple_anios"`
	Telefono     string        `json:"telefono" validate:"omitempty,telefono"`
	FechaIngreso fechas.Fecha  `json:"fecha_ingreso"`
	FechaSalida  *fechas.Fecha `json:"fecha_salida"`
	Estado       string        `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	RolID        uint          `json:"rol_id" validate:"required"`
}

func (h *Handler) ListarUsuarios(c *fiber.Ctx) error {
	usuarios, err := h.usuarios.Listar()
	if err != nil {
		return h.responderError(c, err)
	}
	if usuarios == nil {
		usuarios = []models.Usuario{}
	}
	return c.JSON(usuarios)
}

func (h *Handler) CrearUsuario(c *fiber.Ctx) error {
	var req crearUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := h.validador.Struct(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	if req.FechaIngreso.IsZero() {
		return detalle(c, fiber.StatusBadRequest, "fecha_ingreso es obligatoria")
	}

	usuario := &models.Usuario{
		Nombres:      req.Nombres,
		Apellidos:    req.Apellidos,
		Usuario:      req.Usuario,
		CumpleAnios:  req.CumpleAnios,
		Telefono:     req.Telefono,
		FechaIngreso: req.FechaIngreso,
		FechaSalida:  req.FechaSalida,
		Estado:       req.Estado,
		RolID:        req.RolID,
	}
	if err := h.usuarios.Crear(usuario); err != nil {
		return h.responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

func (h *Handler) ObtenerUsuario(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	usuario, err := h.usuarios.Obtener(id)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(usuario)
}

// ReemplazarUsuario overwrites every editable field; it is the PUT rendition
// of the edit form, validated like create.
func (h *Handler) ReemplazarUsuario(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	var req crearUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := h.validador.Struct(&req); err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}

	cambios := service.ActualizacionUsuario{
		Nombres:     &req.Nombres,
		Apellidos:   &req.Apellidos,
		Usuario:     &req.Usuario,
		CumpleAnios: req.CumpleAnios,
		Telefono:    &req.Telefono,
		FechaSalida: req.FechaSalida,
		RolID:       &req.RolID,
	}
	if !req.FechaIngreso.IsZero() {
		cambios.FechaIngreso = &req.FechaIngreso
	}
	if req.Estado != "" {
		cambios.Estado = &req.Estado
	}
	usuario, err := h.usuarios.ActualizarParcial(id, cambios)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(usuario)
}

// ActualizarUsuario is the partial PATCH behind status toggles, the
// deactivation flow and single-field edits.
func (h *Handler) ActualizarUsuario(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detalle(c, fiber.StatusBadRequest, err.Error())
	}
	var cambios service.ActualizacionUsuario
	if err := c.BodyParser(&cambios); err != nil {
		return detalle(c, fiber.StatusBadRequest, "cuerpo de petición inválido")
	}
	if cambios.Nombres != nil && !patronSoloLetras.MatchString(*cambios.Nombres) {
		return detalle(c, fiber.StatusBadRequest, "nombres: solo se permiten letras y espacios")
	}
	if cambios.Apellidos != nil && !patronSoloLetras.MatchString(*cambios.Apellidos) {
		return detalle(c, fiber.StatusBadRequest, "apellidos: solo se permiten letras y espacios")
	}
	if cambios.Telefono != nil && *cambios.Telefono != "" && !patronTelefono.MatchString(*cambios.Telefono) {
		return detalle(c, fiber.StatusBadRequest, "teléfono: solo números, máximo 9 dígitos")
	}

	// Deactivation must carry the exit date in the same request.
	if cambios.Estado != nil && *cambios.Estado == models.EstadoInactivo {
		if cambios.FechaSalida == nil || cambios.FechaSalida.IsZero() {
			return detalle(c, fiber.StatusBadRequest, "debes seleccionar una fecha de salida")
		}
		usuario, err := h.usuarios.Desactivar(id, *cambios.FechaSalida)
		if err != nil {
			return h.responderError(c, err)
		}
		return c.JSON(usuario)
	}

	usuario, err := h.usuarios.ActualizarParcial(id, cambios)
	if err != nil {
		return h.responderError(c, err)
	}
	return c.JSON(usuario)
}

func (h *Handler) ListarRoles(c *fiber.Ctx) error {
	roles, err := h.rolRepo.GetAll()
	if err != nil {
		return h.responderError(c, err)
	}
	if roles == nil {
		roles = []models.Rol{}
	}
	return c.JSON(roles)
}

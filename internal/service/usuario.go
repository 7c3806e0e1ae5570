package service

import (
	"errors"
	"fmt"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/repository"
	"gestor-turnos/pkg/fechas"

	"github.com/sirupsen/logrus"
)

var (
	ErrLoginDuplicado    = errors.New("ya existe un usuario con ese login")
	ErrFechaIngresoVacia = errors.New("la fecha de ingreso es obligatoria")
	ErrFechaSalidaVacia  = errors.New("debes seleccionar una fecha de salida")
	ErrEstadoInvalido    = errors.New("estado debe ser 'activo' o 'inactivo'")
)

type UsuarioService struct {
	usuarioRepo repository.UsuarioRepository
	rolRepo     repository.RolRepository
	logger      *logrus.Logger
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository, rolRepo repository.RolRepository) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		rolRepo:     rolRepo,
		logger:      logrus.New(),
	}
}

func (s *UsuarioService) Crear(usuario *models.Usuario) error {
	if usuario.FechaIngreso.IsZero() {
		return ErrFechaIngresoVacia
	}
	if _, err := s.rolRepo.GetByID(usuario.RolID); err != nil {
		return fmt.Errorf("rol %d: %w", usuario.RolID, err)
	}
	existe, err := s.usuarioRepo.ExisteLogin(usuario.Usuario)
	if err != nil {
		return err
	}
	if existe {
		return ErrLoginDuplicado
	}
	if usuario.Estado == "" {
		usuario.Estado = models.EstadoActivo
	}
	if err := s.usuarioRepo.Create(usuario); err != nil {
		return err
	}
	s.logger.Infof("Usuario %d (%s) creado", usuario.ID, usuario.Usuario)
	return nil
}

func (s *UsuarioService) Listar() ([]models.Usuario, error) {
	return s.usuarioRepo.GetAll()
}

func (s *UsuarioService) Obtener(id uint) (*models.Usuario, error) {
	return s.usuarioRepo.GetByID(id)
}

// ActualizacionUsuario carries a partial update: nil fields stay untouched.
type ActualizacionUsuario struct {
	Nombres      *string       `json:"nombres"`
	Apellidos    *string       `json:"apellidos"`
	Usuario      *string       `json:"usuario"`
	CumpleAnios  *fechas.Fecha `json:"cumple_anios"`
	Telefono     *string       `json:"telefono"`
	FechaIngreso *fechas.Fecha `json:"fecha_ingreso"`
	FechaSalida  *fechas.Fecha `json:"fecha_salida"`
	Estado       *string       `json:"estado"`
	RolID        *uint         `json:"rol_id"`
}

func (a *ActualizacionUsuario) campos() map[string]any {
	campos := map[string]any{}
	if a.Nombres != nil {
		campos["nombres"] = *a.Nombres
	}
	if a.Apellidos != nil {
		campos["apellidos"] = *a.Apellidos
	}
	if a.Usuario != nil {
		campos["usuario"] = *a.Usuario
	}
	if a.CumpleAnios != nil {
		campos["cumple_anios"] = *a.CumpleAnios
	}
	if a.Telefono != nil {
		campos["telefono"] = *a.Telefono
	}
	if a.FechaIngreso != nil {
		campos["fecha_ingreso"] = *a.FechaIngreso
	}
	if a.FechaSalida != nil {
		campos["fecha_salida"] = *a.FechaSalida
	}
	if a.Estado != nil {
		campos["estado"] = *a.Estado
	}
	if a.RolID != nil {
		campos["rol_id"] = *a.RolID
	}
	return campos
}

func (s *UsuarioService) ActualizarParcial(id uint, cambios ActualizacionUsuario) (*models.Usuario, error) {
	if cambios.Estado != nil && *cambios.Estado != models.EstadoActivo && *cambios.Estado != models.EstadoInactivo {
		return nil, ErrEstadoInvalido
	}
	if cambios.RolID != nil {
		if _, err := s.rolRepo.GetByID(*cambios.RolID); err != nil {
			return nil, fmt.Errorf("rol %d: %w", *cambios.RolID, err)
		}
	}
	campos := cambios.campos()
	if len(campos) > 0 {
		if err := s.usuarioRepo.UpdateCampos(id, campos); err != nil {
			return nil, err
		}
	}
	return s.usuarioRepo.GetByID(id)
}

// Desactivar sets estado and fecha_salida together in one update; a
// deactivation without an exit date is rejected before touching the store.
func (s *UsuarioService) Desactivar(id uint, fechaSalida fechas.Fecha) (*models.Usuario, error) {
	if fechaSalida.IsZero() {
		return nil, ErrFechaSalidaVacia
	}
	err := s.usuarioRepo.UpdateCampos(id, map[string]any{
		"estado":       models.EstadoInactivo,
		"fecha_salida": fechaSalida,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Usuario %d desactivado con salida %s", id, fechaSalida)
	return s.usuarioRepo.GetByID(id)
}

// Reactivar flips estado back to activo. The recorded fecha_salida is kept
// as history, not cleared.
func (s *UsuarioService) Reactivar(id uint) (*models.Usuario, error) {
	err := s.usuarioRepo.UpdateCampos(id, map[string]any{"estado": models.EstadoActivo})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Usuario %d reactivado", id)
	return s.usuarioRepo.GetByID(id)
}

package repository

import (
	"errors"

	"gestor-turnos/internal/models"

	"gorm.io/gorm"
)

var ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

type UsuarioRepository interface {
	Create(usuario *models.Usuario) error
	GetByID(id uint) (*models.Usuario, error)
	GetAll() ([]models.Usuario, error)
	GetActivos() ([]models.Usuario, error)
	Save(usuario *models.Usuario) error
	UpdateCampos(id uint, campos map[string]any) error
	ExisteLogin(login string) (bool, error)
}

type GormUsuarioRepository struct {
	db *gorm.DB
}

func NewGormUsuarioRepository(db *gorm.DB) (UsuarioRepository, error) {
	if err := db.AutoMigrate(&models.Usuario{}); err != nil {
		return nil, err
	}
	return &GormUsuarioRepository{db: db}, nil
}

func (r *GormUsuarioRepository) Create(usuario *models.Usuario) error {
	return r.db.Create(usuario).Error
}

func (r *GormUsuarioRepository) GetByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.First(&usuario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *GormUsuarioRepository) GetAll() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Order("id asc").Find(&usuarios).Error
	return usuarios, err
}

func (r *GormUsuarioRepository) GetActivos() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Where("estado = ?", models.EstadoActivo).Order("id asc").Find(&usuarios).Error
	return usuarios, err
}

func (r *GormUsuarioRepository) Save(usuario *models.Usuario) error {
	return r.db.Save(usuario).Error
}

// UpdateCampos applies a partial update; only the given columns change.
func (r *GormUsuarioRepository) UpdateCampos(id uint, campos map[string]any) error {
	result := r.db.Model(&models.Usuario{}).Where("id = ?", id).Updates(campos)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUsuarioNoEncontrado
	}
	return nil
}

func (r *GormUsuarioRepository) ExisteLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Usuario{}).Where("usuario = ?", login).Count(&count).Error
	return count > 0, err
}

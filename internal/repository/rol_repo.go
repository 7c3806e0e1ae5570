package repository

import (
	"errors"

	"gestor-turnos/internal/models"

	"gorm.io/gorm"
)

var ErrRolNoEncontrado = errors.New("rol no encontrado")

type RolRepository interface {
	GetAll() ([]models.Rol, error)
	GetByID(id uint) (*models.Rol, error)
}

type GormRolRepository struct {
	db *gorm.DB
}

func NewGormRolRepository(db *gorm.DB) (RolRepository, error) {
	if err := db.AutoMigrate(&models.Rol{}); err != nil {
		return nil, err
	}
	return &GormRolRepository{db: db}, nil
}

func (r *GormRolRepository) GetAll() ([]models.Rol, error) {
	var roles []models.Rol
	err := r.db.Order("id asc").Find(&roles).Error
	return roles, err
}

func (r *GormRolRepository) GetByID(id uint) (*models.Rol, error) {
	var rol models.Rol
	err := r.db.First(&rol, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRolNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

package repository

import (
	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"

	"gorm.io/gorm"
)

type AusenciaRepository interface {
	Create(ausencia *models.Ausencia) error
	GetByUsuario(usuarioID uint) ([]models.Ausencia, error)
	GetByUsuarioRango(usuarioID uint, desde, hasta fechas.Fecha) ([]models.Ausencia, error)
}

type GormAusenciaRepository struct {
	db *gorm.DB
}

func NewGormAusenciaRepository(db *gorm.DB) (AusenciaRepository, error) {
	if err := db.AutoMigrate(&models.Ausencia{}); err != nil {
		return nil, err
	}
	return &GormAusenciaRepository{db: db}, nil
}

func (r *GormAusenciaRepository) Create(ausencia *models.Ausencia) error {
	return r.db.Create(ausencia).Error
}

func (r *GormAusenciaRepository) GetByUsuario(usuarioID uint) ([]models.Ausencia, error) {
	var ausencias []models.Ausencia
	err := r.db.Where("usuario_id = ?", usuarioID).
		Order("fecha_inicio desc").
		Find(&ausencias).Error
	return ausencias, err
}

func (r *GormAusenciaRepository) GetByUsuarioRango(usuarioID uint, desde, hasta fechas.Fecha) ([]models.Ausencia, error) {
	var ausencias []models.Ausencia
	err := r.db.Where("usuario_id = ? AND fecha_inicio <= ? AND fecha_fin >= ?", usuarioID, hasta, desde).
		Order("fecha_inicio asc").
		Find(&ausencias).Error
	return ausencias, err
}

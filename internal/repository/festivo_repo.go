package repository

import (
	"errors"

	"gestor-turnos/internal/models"

	"gorm.io/gorm"
)

var ErrFestivoNoEncontrado = errors.New("festivo no encontrado")

type FestivoRepository interface {
	GetAll() ([]models.Festivo, error)
	GetActivos() ([]models.Festivo, error)
	GetByID(id uint) (*models.Festivo, error)
	Create(festivo *models.Festivo) error
	Save(festivo *models.Festivo) error
	ExisteDuplicado(diaMes, tipo string) (bool, error)
}

type GormFestivoRepository struct {
	db *gorm.DB
}

func NewGormFestivoRepository(db *gorm.DB) (FestivoRepository, error) {
	if err := db.AutoMigrate(&models.Festivo{}); err != nil {
		return nil, err
	}
	return &GormFestivoRepository{db: db}, nil
}

func (r *GormFestivoRepository) GetAll() ([]models.Festivo, error) {
	var festivos []models.Festivo
	err := r.db.Find(&festivos).Error
	return festivos, err
}

func (r *GormFestivoRepository) GetActivos() ([]models.Festivo, error) {
	var festivos []models.Festivo
	err := r.db.Where("estado = ?", models.EstadoActivo).Find(&festivos).Error
	return festivos, err
}

func (r *GormFestivoRepository) GetByID(id uint) (*models.Festivo, error) {
	var festivo models.Festivo
	err := r.db.First(&festivo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFestivoNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &festivo, nil
}

func (r *GormFestivoRepository) Create(festivo *models.Festivo) error {
	return r.db.Create(festivo).Error
}

func (r *GormFestivoRepository) Save(festivo *models.Festivo) error {
	return r.db.Save(festivo).Error
}

func (r *GormFestivoRepository) ExisteDuplicado(diaMes, tipo string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Festivo{}).
		Where("dia_mes = ? AND tipo = ?", diaMes, tipo).
		Count(&count).Error
	return count > 0, err
}

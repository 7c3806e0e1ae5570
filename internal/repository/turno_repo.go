package repository

import (
	"errors"
	"sort"
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"

	"gorm.io/gorm"
)

type TurnoRepository interface {
	GetByMonth(year, month int) ([]models.Turno, error)
	GetByUsuarioFecha(usuarioID uint, fecha fechas.Fecha) (*models.Turno, error)
	GetByUsuarioRango(usuarioID uint, desde, hasta fechas.Fecha) ([]models.Turno, error)
	Upsert(turno *models.Turno) error
	CountCodigo(usuarioID uint, desde, hasta fechas.Fecha, codigo string) (int64, error)
	DistinctYears() ([]int, error)
}

type GormTurnoRepository struct {
	db *gorm.DB
}

func NewGormTurnoRepository(db *gorm.DB) (TurnoRepository, error) {
	if err := db.AutoMigrate(&models.Turno{}); err != nil {
		return nil, err
	}
	return &GormTurnoRepository{db: db}, nil
}

// GetByMonth returns every assignment of the one-based month as a half-open
// [first-of-month, first-of-next) range query.
func (r *GormTurnoRepository) GetByMonth(year, month int) ([]models.Turno, error) {
	desde := fechas.Nueva(year, time.Month(month), 1)
	hasta := fechas.Fecha{Time: desde.AddDate(0, 1, 0)}

	var turnos []models.Turno
	err := r.db.Where("fecha >= ? AND fecha < ?", desde, hasta).
		Order("fecha asc").
		Find(&turnos).Error
	return turnos, err
}

func (r *GormTurnoRepository) GetByUsuarioFecha(usuarioID uint, fecha fechas.Fecha) (*models.Turno, error) {
	var turno models.Turno
	err := r.db.Where("usuario_id = ? AND fecha = ?", usuarioID, fecha).First(&turno).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &turno, nil
}

func (r *GormTurnoRepository) GetByUsuarioRango(usuarioID uint, desde, hasta fechas.Fecha) ([]models.Turno, error) {
	var turnos []models.Turno
	err := r.db.Where("usuario_id = ? AND fecha >= ? AND fecha < ?", usuarioID, desde, hasta).
		Order("fecha asc").
		Find(&turnos).Error
	return turnos, err
}

// Upsert writes the assignment for (usuario, fecha), replacing an existing
// row in place so the per-pair uniqueness invariant holds. Every write that
// is not auto-generated marks the cell manual, so later auto-generation
// passes leave it alone; the flag never reverts once set.
func (r *GormTurnoRepository) Upsert(turno *models.Turno) error {
	existente, err := r.GetByUsuarioFecha(turno.UsuarioID, turno.Fecha)
	if err != nil {
		return err
	}
	if existente == nil {
		turno.ModificadoManual = !turno.GeneradoAutomatico
		return r.db.Create(turno).Error
	}
	turno.ID = existente.ID
	turno.CreatedAt = existente.CreatedAt
	turno.ModificadoManual = existente.ModificadoManual || !turno.GeneradoAutomatico
	return r.db.Save(turno).Error
}

func (r *GormTurnoRepository) CountCodigo(usuarioID uint, desde, hasta fechas.Fecha, codigo string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Turno{}).
		Where("usuario_id = ? AND fecha >= ? AND fecha < ? AND turno = ?", usuarioID, desde, hasta, codigo).
		Count(&count).Error
	return count, err
}

func (r *GormTurnoRepository) DistinctYears() ([]int, error) {
	var fechasTurnos []fechas.Fecha
	err := r.db.Model(&models.Turno{}).Distinct("fecha").Pluck("fecha", &fechasTurnos).Error
	if err != nil {
		return nil, err
	}
	vistos := map[int]bool{}
	var years []int
	for _, f := range fechasTurnos {
		if y := f.Year(); !vistos[y] {
			vistos[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

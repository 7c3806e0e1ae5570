package models

import (
	"time"

	"gestor-turnos/pkg/fechas"
)

// Ausencia records a multi-day exception as one row; the per-date absence
// codes the grid renders are written to turnos_asignados alongside it.
type Ausencia struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	UsuarioID   uint         `gorm:"not null;index" json:"usuario_id"`
	FechaInicio fechas.Fecha `gorm:"not null" json:"fecha_inicio"`
	FechaFin    fechas.Fecha `gorm:"not null" json:"fecha_fin"`
	Tipo        string       `gorm:"size:10;not null" json:"tipo"`
	Descripcion string       `json:"descripcion"`
	CreatedAt   time.Time    `json:"created_at"`

	Usuario Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (Ausencia) TableName() string {
	return "ausencias"
}

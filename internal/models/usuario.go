package models

import (
	"time"

	"gestor-turnos/pkg/fechas"
)

const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

type Usuario struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	Nombres      string        `gorm:"size:100;not null" json:"nombres"`
	Apellidos    string        `gorm:"size:100;not null" json:"apellidos"`
	Usuario      string        `gorm:"size:50;uniqueIndex;not null" json:"usuario"`
	CumpleAnios  *fechas.Fecha `json:"cumple_anios"`
	Telefono     string        `gorm:"size:20" json:"telefono"`
	FechaIngreso fechas.Fecha  `gorm:"not null" json:"fecha_ingreso"`
	FechaSalida  *fechas.Fecha `json:"fecha_salida"`
	Estado       string        `gorm:"size:20;default:'activo';index" json:"estado"`
	RolID        uint          `gorm:"not null;index" json:"rol_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Rol Rol `gorm:"foreignKey:RolID" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

func (u *Usuario) EsActivo() bool {
	return u.Estado == EstadoActivo
}

// NombreCompleto is the display name used in grids and reports.
func (u *Usuario) NombreCompleto() string {
	return u.Nombres + " " + u.Apellidos
}

// CumpleEnMes reports whether the user's birthday falls in the given
// one-based month.
func (u *Usuario) CumpleEnMes(mes int) bool {
	return u.CumpleAnios != nil && int(u.CumpleAnios.Month()) == mes
}

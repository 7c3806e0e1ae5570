package models

import (
	"strings"
	"time"
)

// Display groups, in fixed rendering order.
const (
	GrupoJefes      = "Jefes de Turno"
	GrupoOperadores = "Operadores"
	GrupoEMC        = "EMC"
	GrupoOtros      = "Otros"
)

// GruposOrdenados is the fixed group display order for grids and lists.
var GruposOrdenados = []string{GrupoJefes, GrupoOperadores, GrupoEMC, GrupoOtros}

type Rol struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Nombre      string    `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Descripcion string    `gorm:"size:255" json:"descripcion"`
	Grupo       string    `gorm:"size:50" json:"grupo"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Rol) TableName() string {
	return "roles"
}

// GrupoDisplay resolves the display group: the explicit tag when set,
// otherwise a substring match on the lowercased name. The substring match is
// a fallback for legacy rows created before the tag existed.
func (r *Rol) GrupoDisplay() string {
	if r.Grupo != "" {
		return r.Grupo
	}
	nombre := strings.ToLower(strings.TrimSpace(r.Nombre))
	switch {
	case strings.Contains(nombre, "jefe"):
		return GrupoJefes
	case strings.Contains(nombre, "operador"):
		return GrupoOperadores
	case strings.Contains(nombre, "emc"):
		return GrupoEMC
	}
	return GrupoOtros
}

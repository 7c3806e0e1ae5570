package models

import (
	"time"

	"gestor-turnos/pkg/fechas"
)

const (
	FestivoNacional = "Nacional"
	FestivoRegional = "Regional"
)

// Festivo is a recurring holiday keyed by day/month, no year.
type Festivo struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	DiaMes      string    `gorm:"size:5;not null;index" json:"dia_mes"`
	Descripcion string    `gorm:"size:255;not null" json:"descripcion"`
	Tipo        string    `gorm:"size:20;not null" json:"tipo"`
	Estado      string    `gorm:"size:20;default:'activo'" json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Festivo) TableName() string {
	return "festivos"
}

func (f *Festivo) EsActivo() bool {
	return f.Estado == EstadoActivo
}

func TipoFestivoValido(tipo string) bool {
	return tipo == FestivoNacional || tipo == FestivoRegional
}

// Par parses the stored day/month key. Rows only exist after validation, so
// a parse failure here means corrupted data and yields a zero pair that
// matches no date.
func (f *Festivo) Par() fechas.DiaMes {
	dm, err := fechas.ParseDiaMes(f.DiaMes)
	if err != nil {
		return fechas.DiaMes{}
	}
	return dm
}

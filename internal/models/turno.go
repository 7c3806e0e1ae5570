package models

import (
	"time"

	"gestor-turnos/pkg/fechas"
)

// Shift codes. M/T/N are office shifts, FM*/FN* are 12-hour home/office
// variants, d is a rest day. v/b/c are absence codes written by the absence
// range endpoint so the grid and reports read them like any other cell.
const (
	TurnoManana        = "M"
	TurnoTarde         = "T"
	TurnoNoche         = "N"
	TurnoMananaCasa    = "FM1"
	TurnoMananaOficina = "FM2"
	TurnoNocheCasa     = "FN1"
	TurnoNocheOficina  = "FN2"
	TurnoDescanso      = "d"

	AusenciaVacaciones = "v"
	AusenciaBaja       = "b"
	AusenciaCumpleanos = "c"
)

type Turno struct {
	ID                 uint         `gorm:"primarykey" json:"id"`
	UsuarioID          uint         `gorm:"not null;uniqueIndex:uq_usuario_fecha" json:"usuario_id"`
	Fecha              fechas.Fecha `gorm:"not null;uniqueIndex:uq_usuario_fecha" json:"fecha"`
	Turno              string       `gorm:"size:10;not null" json:"turno"`
	GeneradoAutomatico bool         `gorm:"default:false" json:"generado_automatico"`
	ModificadoManual   bool         `gorm:"default:false" json:"modificado_manual"`
	EsReten            bool         `gorm:"default:false" json:"es_reten"`
	Estado             string       `gorm:"size:20;default:'activo'" json:"estado"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`

	Usuario Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (Turno) TableName() string {
	return "turnos_asignados"
}

var codigosTurno = map[string]bool{
	TurnoManana: true, TurnoTarde: true, TurnoNoche: true,
	TurnoMananaCasa: true, TurnoMananaOficina: true,
	TurnoNocheCasa: true, TurnoNocheOficina: true,
	TurnoDescanso: true,
}

var codigosAusencia = map[string]bool{
	AusenciaVacaciones: true, AusenciaBaja: true, AusenciaCumpleanos: true,
}

func CodigoTurnoValido(codigo string) bool {
	return codigosTurno[codigo]
}

func CodigoAusenciaValido(codigo string) bool {
	return codigosAusencia[codigo]
}

// EsContable reports whether the code counts as a worked shift in reports.
func (t *Turno) EsContable() bool {
	return CodigoContable(t.Turno)
}

func CodigoContable(codigo string) bool {
	switch codigo {
	case TurnoManana, TurnoTarde, TurnoNoche,
		TurnoMananaCasa, TurnoMananaOficina,
		TurnoNocheCasa, TurnoNocheOficina:
		return true
	}
	return false
}

// HorasCodigo returns the hours a worked code represents: 8 for office
// shifts, 12 for the FM/FN variants, 0 otherwise.
func HorasCodigo(codigo string) int {
	switch codigo {
	case TurnoManana, TurnoTarde, TurnoNoche:
		return 8
	case TurnoMananaCasa, TurnoMananaOficina, TurnoNocheCasa, TurnoNocheOficina:
		return 12
	}
	return 0
}

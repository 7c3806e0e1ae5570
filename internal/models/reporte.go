package models

import "gestor-turnos/pkg/fechas"

// ReporteRequest filters a report: year always, month and usuario optional.
// Month is one-based here; this struct only travels on the wire.
type ReporteRequest struct {
	Year      int   `json:"year" validate:"required"`
	Month     *int  `json:"month" validate:"omitempty,min=1,max=12"`
	UsuarioID *uint `json:"usuario_id"`
}

type ReporteTrabajado struct {
	UsuarioID               uint                `json:"usuario_id"`
	Nombres                 string              `json:"nombres"`
	Apellidos               string              `json:"apellidos"`
	Rol                     string              `json:"rol"`
	DiasTrabajados          int                 `json:"dias_trabajados"`
	DiasFestivos            int                 `json:"dias_festivos"`
	DiasTrabajadosNoFestivo int                 `json:"dias_trabajados_no_festivo"`
	HorasTrabajadas         int                 `json:"horas_trabajadas"`
	HorasTrabajadasRaw      int                 `json:"horas_trabajadas_raw"`
	TurnosCodigos           map[string]int      `json:"turnos_codigos"`
	DiasDetalle             map[string][]string `json:"dias_detalle"`
}

type ReporteTurnos struct {
	UsuarioID       uint           `json:"usuario_id"`
	Nombres         string         `json:"nombres"`
	Apellidos       string         `json:"apellidos"`
	Rol             string         `json:"rol"`
	Manana          int            `json:"mañana"`
	Tarde           int            `json:"tarde"`
	Noche           int            `json:"noche"`
	Total           int            `json:"total"`
	HorasTrabajadas int            `json:"horas_trabajadas"`
	TurnosCodigos   map[string]int `json:"turnos_codigos"`
}

type ReporteFestivos struct {
	UsuarioID          uint               `json:"usuario_id"`
	Nombres            string             `json:"nombres"`
	Apellidos          string             `json:"apellidos"`
	Rol                string             `json:"rol"`
	FestivosTrabajados []fechas.Fecha     `json:"festivos_trabajados"`
	FestivosDetalleDia map[int][]string   `json:"festivos_detalle_dia,omitempty"`
	FestivosFechas     []fechas.Fecha     `json:"festivos_fechas,omitempty"`
}

type ReporteVacaciones struct {
	UsuarioID         uint   `json:"usuario_id"`
	Nombres           string `json:"nombres"`
	Apellidos         string `json:"apellidos"`
	Rol               string `json:"rol"`
	VacacionesTomadas int    `json:"vacaciones_tomadas"`
	CumpleanosTomado  bool   `json:"cumpleaños_tomado"`
	DiasRestantes     int    `json:"dias_restantes"`
}

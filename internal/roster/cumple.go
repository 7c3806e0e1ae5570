package roster

import (
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"
)

// DiasHastaCumple returns the number of days from hoy until the user's next
// birthday, 0 on the birthday itself and -1 when no birthday is recorded.
func DiasHastaCumple(u models.Usuario, hoy fechas.Fecha) int {
	if u.CumpleAnios == nil {
		return -1
	}
	cumple := time.Date(hoy.Year(), u.CumpleAnios.Month(), u.CumpleAnios.Day(), 0, 0, 0, 0, time.UTC)
	base := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
	if cumple.Before(base) {
		cumple = cumple.AddDate(1, 0, 0)
	}
	return int(cumple.Sub(base).Hours() / 24)
}

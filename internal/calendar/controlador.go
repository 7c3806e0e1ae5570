package calendar

import (
	"context"

	"gestor-turnos/internal/schedule"

	"github.com/sirupsen/logrus"
)

// Controlador ties navigation to the schedule store: every month change
// first seeds birthday cells for the month and then reloads it. The seeding
// is best effort; a failure is logged and the reload still runs.
type Controlador struct {
	Nav    *Navegacion
	turnos *schedule.Store
	logger *logrus.Logger
}

func NuevoControlador(nav *Navegacion, turnos *schedule.Store, logger *logrus.Logger) *Controlador {
	if logger == nil {
		logger = logrus.New()
	}
	return &Controlador{Nav: nav, turnos: turnos, logger: logger}
}

// Mostrar loads the currently displayed month.
func (c *Controlador) Mostrar(ctx context.Context) error {
	anio, mes := c.Nav.Anio(), c.Nav.MesCero()
	if n, err := c.turnos.PoblarCumpleanos(ctx, anio, mes); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"year": anio, "month": mes,
		}).Warn("no se pudieron poblar los cumpleaños del mes")
	} else if n > 0 {
		c.logger.WithField("asignados", n).Debug("cumpleaños poblados")
	}
	return c.turnos.Cargar(ctx, anio, mes)
}

// MesAnterior navigates one month back and reloads.
func (c *Controlador) MesAnterior(ctx context.Context) error {
	c.Nav.MesAnterior()
	return c.Mostrar(ctx)
}

// MesSiguiente navigates one month forward and reloads.
func (c *Controlador) MesSiguiente(ctx context.Context) error {
	c.Nav.MesSiguiente()
	return c.Mostrar(ctx)
}

// IrA jumps to a month and reloads.
func (c *Controlador) IrA(ctx context.Context, anio, mesCero int) error {
	c.Nav.IrA(anio, mesCero)
	return c.Mostrar(ctx)
}

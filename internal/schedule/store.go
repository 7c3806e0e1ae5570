// Package schedule holds the month of shift assignments the calendar grid
// renders, and pushes edits back to the backend.
package schedule

import (
	"context"
	"fmt"
	"sync"

	"gestor-turnos/internal/client"
	"gestor-turnos/internal/models"
	"gestor-turnos/pkg/fechas"
)

type Store struct {
	api *client.Client

	mu         sync.Mutex
	generacion uint64
	turnos     map[fechas.Fecha]map[uint]models.Turno
	errMsg     string
	cargando   bool
}

func NewStore(api *client.Client) *Store {
	return &Store{
		api:    api,
		turnos: map[fechas.Fecha]map[uint]models.Turno{},
	}
}

// Cargar fetches the month's assignments. The generation counter bumps on
// every call; a response whose generation is no longer current is discarded,
// so a slow fetch for a month the operator already left never overwrites the
// month they navigated to.
func (s *Store) Cargar(ctx context.Context, year, mesCero int) error {
	s.mu.Lock()
	s.generacion++
	gen := s.generacion
	s.cargando = true
	s.mu.Unlock()

	turnos, err := s.api.TurnosMes(ctx, year, mesCero)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generacion {
		return nil
	}
	s.cargando = false
	if err != nil {
		s.errMsg = "Error al cargar turnos: " + err.Error()
		return err
	}

	s.errMsg = ""
	s.turnos = map[fechas.Fecha]map[uint]models.Turno{}
	for _, t := range turnos {
		dia := s.turnos[t.Fecha]
		if dia == nil {
			dia = map[uint]models.Turno{}
			s.turnos[t.Fecha] = dia
		}
		dia[t.UsuarioID] = t
	}
	return nil
}

// Turno returns the assignment for a cell, or nil when the cell is empty.
func (s *Store) Turno(fecha fechas.Fecha, usuarioID uint) *models.Turno {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dia, ok := s.turnos[fecha]; ok {
		if t, ok := dia[usuarioID]; ok {
			return &t
		}
	}
	return nil
}

func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store) Cargando() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cargando
}

// RangoError reports a per-date write run that stopped partway: Aplicadas
// dates were written before the write for Fallida failed.
type RangoError struct {
	Aplicadas []fechas.Fecha
	Fallida   fechas.Fecha
	Err       error
}

func (e *RangoError) Error() string {
	return fmt.Sprintf("asignación interrumpida en %s tras %d fechas: %v",
		e.Fallida.Format(fechas.Layout), len(e.Aplicadas), e.Err)
}

func (e *RangoError) Unwrap() error { return e.Err }

// AsignarRango writes codigo for every date between a and b inclusive, in
// ascending order regardless of drag direction. The first failed write stops
// the run and the dates already applied are reported in the error.
func (s *Store) AsignarRango(ctx context.Context, usuarioID uint, a, b fechas.Fecha, codigo string, esReten bool) error {
	var aplicadas []fechas.Fecha
	for _, fecha := range fechas.RangoInclusivo(a, b) {
		_, err := s.api.AsignarTurno(ctx, client.AsignacionTurno{
			UsuarioID: usuarioID,
			Fecha:     fecha,
			Turno:     codigo,
			EsReten:   esReten,
		})
		if err != nil {
			return &RangoError{Aplicadas: aplicadas, Fallida: fecha, Err: err}
		}
		aplicadas = append(aplicadas, fecha)
	}
	return nil
}

// RegistrarAusencia records an absence over the selected span. The endpoints
// are normalized so the backend always receives inicio <= fin.
func (s *Store) RegistrarAusencia(ctx context.Context, usuarioID uint, a, b fechas.Fecha, tipo, descripcion string) error {
	inicio, fin := a, b
	if fin.Antes(inicio) {
		inicio, fin = fin, inicio
	}
	_, err := s.api.AsignarAusenciaRango(ctx, usuarioID, inicio, fin, tipo, descripcion)
	return err
}

// PoblarCumpleanos asks the backend to seed birthday cells for the month.
func (s *Store) PoblarCumpleanos(ctx context.Context, year, mesCero int) (int, error) {
	return s.api.AsignarCumpleanosMes(ctx, year, mesCero)
}

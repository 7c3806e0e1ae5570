package calendar

import "gestor-turnos/pkg/fechas"

type estadoSeleccion int

const (
	seleccionInactiva estadoSeleccion = iota
	seleccionando
)

// Seleccion tracks a drag over one person's row. While a drag is live only
// cells of the same person extend it; entering another row is ignored, so a
// selection can never span two people.
type Seleccion struct {
	estado    estadoSeleccion
	usuarioID uint
	origen    fechas.Fecha
	actual    fechas.Fecha
}

// Comenzar starts a drag anchored at the pressed cell.
func (s *Seleccion) Comenzar(usuarioID uint, fecha fechas.Fecha) {
	s.estado = seleccionando
	s.usuarioID = usuarioID
	s.origen = fecha
	s.actual = fecha
}

// Entrar extends the live drag to the hovered cell. Cells of another person
// and hovers with no drag in progress are ignored.
func (s *Seleccion) Entrar(usuarioID uint, fecha fechas.Fecha) {
	if s.estado != seleccionando || usuarioID != s.usuarioID {
		return
	}
	s.actual = fecha
}

// Activa reports whether a drag is in progress.
func (s *Seleccion) Activa() bool { return s.estado == seleccionando }

// UsuarioID returns the person the live drag belongs to, 0 when idle.
func (s *Seleccion) UsuarioID() uint {
	if s.estado != seleccionando {
		return 0
	}
	return s.usuarioID
}

// Fechas returns the selected span in ascending order, independent of drag
// direction. Empty when idle.
func (s *Seleccion) Fechas() []fechas.Fecha {
	if s.estado != seleccionando {
		return nil
	}
	return fechas.RangoInclusivo(s.origen, s.actual)
}

// Contiene reports whether the cell falls inside the live selection.
func (s *Seleccion) Contiene(usuarioID uint, fecha fechas.Fecha) bool {
	if s.estado != seleccionando || usuarioID != s.usuarioID {
		return false
	}
	inicio, fin := s.origen, s.actual
	if fin.Antes(inicio) {
		inicio, fin = fin, inicio
	}
	return !fecha.Antes(inicio) && !fin.Antes(fecha)
}

// Soltar ends the drag and returns the person and span it covered. The
// boolean is false when no drag was in progress.
func (s *Seleccion) Soltar() (uint, []fechas.Fecha, bool) {
	if s.estado != seleccionando {
		return 0, nil, false
	}
	usuarioID := s.usuarioID
	rango := fechas.RangoInclusivo(s.origen, s.actual)
	s.estado = seleccionInactiva
	return usuarioID, rango, true
}

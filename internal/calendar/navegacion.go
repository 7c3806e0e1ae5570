package calendar

import "sort"

// Navigation floor: the first month the dashboard can show.
const (
	AnioMinimo = 2025
	MesMinimo  = 0 // January, zero-based
)

// Navegacion tracks the displayed month and clamps movement at the floor.
// Months are zero-based here and converted at the API client boundary.
type Navegacion struct {
	anio    int
	mesCero int
	anios   []int
}

func NuevaNavegacion(anio, mesCero int) *Navegacion {
	n := &Navegacion{anio: anio, mesCero: mesCero, anios: []int{AnioMinimo}}
	n.clamp()
	n.incluirAnio()
	return n
}

// incluirAnio keeps the displayed year selectable: stepping into a year the
// backend has no data for yet still extends the picker.
func (n *Navegacion) incluirAnio() {
	for _, a := range n.anios {
		if a == n.anio {
			return
		}
	}
	n.anios = append(n.anios, n.anio)
	sort.Ints(n.anios)
}

func (n *Navegacion) Anio() int    { return n.anio }
func (n *Navegacion) MesCero() int { return n.mesCero }

// ActualizarAnios merges the years the backend reports data for with the
// floor year, so the year picker always offers at least the floor.
func (n *Navegacion) ActualizarAnios(disponibles []int) {
	set := map[int]bool{AnioMinimo: true}
	for _, a := range disponibles {
		if a >= AnioMinimo {
			set[a] = true
		}
	}
	anios := make([]int, 0, len(set))
	for a := range set {
		anios = append(anios, a)
	}
	sort.Ints(anios)
	n.anios = anios
	n.incluirAnio()
}

func (n *Navegacion) Anios() []int {
	out := make([]int, len(n.anios))
	copy(out, n.anios)
	return out
}

// MesAnterior steps one month back, stopping at the floor.
func (n *Navegacion) MesAnterior() {
	if n.anio == AnioMinimo && n.mesCero == MesMinimo {
		return
	}
	if n.mesCero == 0 {
		n.anio--
		n.mesCero = 11
	} else {
		n.mesCero--
	}
}

// MesSiguiente steps one month forward, extending the selectable years when
// it crosses into a new one.
func (n *Navegacion) MesSiguiente() {
	if n.mesCero == 11 {
		n.anio++
		n.mesCero = 0
		n.incluirAnio()
	} else {
		n.mesCero++
	}
}

// IrA jumps to a month, clamped at the floor.
func (n *Navegacion) IrA(anio, mesCero int) {
	n.anio = anio
	n.mesCero = mesCero
	n.clamp()
	n.incluirAnio()
}

func (n *Navegacion) clamp() {
	if n.mesCero < 0 {
		n.mesCero = 0
	}
	if n.mesCero > 11 {
		n.mesCero = 11
	}
	if n.anio < AnioMinimo || (n.anio == AnioMinimo && n.mesCero < MesMinimo) {
		n.anio = AnioMinimo
		n.mesCero = MesMinimo
	}
}

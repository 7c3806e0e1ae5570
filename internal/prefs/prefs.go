// Package prefs persists the operator's view preferences between sessions.
// Persistence is best effort: a missing or unreadable file yields defaults
// and write failures are only logged, never surfaced.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const archivo = "gestor-turnos-prefs.json"

// Claves de ordenación de la tabla de personal.
const (
	OrdenPorNombre   = "nombre"
	OrdenPorRol      = "rol"
	OrdenPorEstado   = "estado"
	OrdenAscendente  = "asc"
	OrdenDescendente = "desc"
)

type Preferencias struct {
	OrdenClave       string `json:"orden_clave"`
	OrdenDireccion   string `json:"orden_direccion"`
	FiltroRol        string `json:"filtro_rol"`
	FiltroEstado     string `json:"filtro_estado"`
	MostrarInactivos bool   `json:"mostrar_inactivos"`
}

func porDefecto() Preferencias {
	return Preferencias{
		OrdenClave:     OrdenPorNombre,
		OrdenDireccion: OrdenAscendente,
	}
}

type Almacen struct {
	ruta   string
	logger *logrus.Logger
}

// NuevoAlmacen stores preferences under dir, typically the user config dir.
func NuevoAlmacen(dir string, logger *logrus.Logger) *Almacen {
	if logger == nil {
		logger = logrus.New()
	}
	return &Almacen{ruta: filepath.Join(dir, archivo), logger: logger}
}

// Cargar reads the saved preferences, falling back to defaults on any error.
func (a *Almacen) Cargar() Preferencias {
	prefs := porDefecto()
	datos, err := os.ReadFile(a.ruta)
	if err != nil {
		a.logger.WithError(err).Debug("preferencias no disponibles, usando valores por defecto")
		return prefs
	}
	if err := json.Unmarshal(datos, &prefs); err != nil {
		a.logger.WithError(err).Debug("preferencias corruptas, usando valores por defecto")
		return porDefecto()
	}
	return prefs
}

// Guardar writes the preferences to disk, logging failures at debug level.
func (a *Almacen) Guardar(prefs Preferencias) {
	datos, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		a.logger.WithError(err).Debug("no se pudieron serializar las preferencias")
		return
	}
	if err := os.WriteFile(a.ruta, datos, 0o644); err != nil {
		a.logger.WithError(err).Debug("no se pudieron guardar las preferencias")
	}
}

package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlmacen_DefectosSinArchivo(t *testing.T) {
	a := NuevoAlmacen(t.TempDir(), nil)

	prefs := a.Cargar()
	assert.Equal(t, OrdenPorNombre, prefs.OrdenClave)
	assert.Equal(t, OrdenAscendente, prefs.OrdenDireccion)
	assert.False(t, prefs.MostrarInactivos)
}

func TestAlmacen_GuardarYCargar(t *testing.T) {
	dir := t.TempDir()
	a := NuevoAlmacen(dir, nil)

	a.Guardar(Preferencias{
		OrdenClave:       OrdenPorRol,
		OrdenDireccion:   OrdenDescendente,
		FiltroEstado:     "activo",
		MostrarInactivos: true,
	})

	leidas := NuevoAlmacen(dir, nil).Cargar()
	assert.Equal(t, OrdenPorRol, leidas.OrdenClave)
	assert.Equal(t, OrdenDescendente, leidas.OrdenDireccion)
	assert.Equal(t, "activo", leidas.FiltroEstado)
	assert.True(t, leidas.MostrarInactivos)
}

func TestAlmacen_ArchivoCorrupto(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, archivo), []byte("{no json"), 0o644))

	prefs := NuevoAlmacen(dir, nil).Cargar()
	assert.Equal(t, OrdenPorNombre, prefs.OrdenClave, "corrupt file falls back to defaults")
}

func TestAlmacen_GuardarFallaSilenciosa(t *testing.T) {
	a := NuevoAlmacen("/ruta/que/no/existe", nil)
	// Must not panic or surface the error.
	a.Guardar(Preferencias{OrdenClave: OrdenPorEstado})
}

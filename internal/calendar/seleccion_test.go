package calendar

import (
	"testing"
	"time"

	"gestor-turnos/pkg/fechas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(d int) fechas.Fecha {
	return fechas.Nueva(2025, time.February, d)
}

func TestSeleccion_ArrastreHaciaAdelante(t *testing.T) {
	var s Seleccion
	s.Comenzar(7, dia(10))
	s.Entrar(7, dia(13))

	require.True(t, s.Activa())
	rango := s.Fechas()
	require.Len(t, rango, 4)
	assert.Equal(t, dia(10), rango[0])
	assert.Equal(t, dia(13), rango[3])
}

func TestSeleccion_ArrastreHaciaAtras(t *testing.T) {
	var s Seleccion
	s.Comenzar(7, dia(13))
	s.Entrar(7, dia(10))

	rango := s.Fechas()
	require.Len(t, rango, 4)
	assert.Equal(t, dia(10), rango[0], "range is ascending regardless of drag direction")
	assert.Equal(t, dia(13), rango[3])
}

func TestSeleccion_IgnoraOtraPersona(t *testing.T) {
	var s Seleccion
	s.Comenzar(7, dia(10))
	s.Entrar(9, dia(20))

	rango := s.Fechas()
	require.Len(t, rango, 1, "hovering another person's row never extends the drag")
	assert.Equal(t, dia(10), rango[0])
	assert.True(t, s.Contiene(7, dia(10)))
	assert.False(t, s.Contiene(9, dia(20)))
}

func TestSeleccion_Soltar(t *testing.T) {
	var s Seleccion

	_, _, ok := s.Soltar()
	assert.False(t, ok, "releasing with no drag is a no-op")

	s.Comenzar(7, dia(12))
	s.Entrar(7, dia(11))
	usuarioID, rango, ok := s.Soltar()

	require.True(t, ok)
	assert.Equal(t, uint(7), usuarioID)
	assert.Equal(t, []fechas.Fecha{dia(11), dia(12)}, rango)
	assert.False(t, s.Activa())
	assert.Nil(t, s.Fechas())
}

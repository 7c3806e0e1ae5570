package fechas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangoInclusivo_Direccion(t *testing.T) {
	a := Nueva(2025, time.February, 10)
	b := Nueva(2025, time.February, 13)

	adelante := RangoInclusivo(a, b)
	atras := RangoInclusivo(b, a)

	require.Len(t, adelante, 4)
	assert.Equal(t, adelante, atras)
	assert.Equal(t, a, adelante[0])
	assert.Equal(t, b, adelante[3])
}

func TestRangoInclusivo_UnDia(t *testing.T) {
	f := Nueva(2025, time.July, 1)
	rango := RangoInclusivo(f, f)
	require.Len(t, rango, 1)
	assert.Equal(t, f, rango[0])
}

func TestFecha_Siguiente(t *testing.T) {
	assert.True(t, Nueva(2025, time.March, 1).Igual(Nueva(2025, time.February, 28).Siguiente()))
	assert.True(t, Nueva(2026, time.January, 1).Igual(Nueva(2025, time.December, 31).Siguiente()))
}

func TestDiasDelMes(t *testing.T) {
	assert.Len(t, DiasDelMes(2025, time.February), 28)
	assert.Len(t, DiasDelMes(2024, time.February), 29)
	assert.Len(t, DiasDelMes(2025, time.January), 31)
}

func TestFecha_JSON(t *testing.T) {
	f := Nueva(2025, time.December, 25)

	datos, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-25"`, string(datos))

	var otra Fecha
	require.NoError(t, json.Unmarshal(datos, &otra))
	assert.True(t, f.Igual(otra))
}

func TestParseDiaMes(t *testing.T) {
	tests := []struct {
		entrada string
		valido  bool
	}{
		{"01/01", true},
		{"31/12", true},
		{"25/12", true},
		{"1/1", false},
		{"32/01", false},
		{"01/13", false},
		{"00/05", false},
		{"2025-12-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.entrada, func(t *testing.T) {
			_, err := ParseDiaMes(tt.entrada)
			if tt.valido {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDiaMes_Materializable(t *testing.T) {
	feb29, err := ParseDiaMes("29/02")
	require.NoError(t, err)
	assert.True(t, feb29.Materializable(2024))
	assert.False(t, feb29.Materializable(2025))

	feb30, err := ParseDiaMes("30/02")
	require.NoError(t, err)
	assert.False(t, feb30.Materializable(2024))
}

func TestDiaMes_Clave(t *testing.T) {
	enero, _ := ParseDiaMes("15/01")
	diciembre, _ := ParseDiaMes("01/12")
	assert.Less(t, enero.Clave(), diciembre.Clave())
}

func TestDiaMes_Coincide(t *testing.T) {
	navidad, _ := ParseDiaMes("25/12")
	assert.True(t, navidad.Coincide(Nueva(2025, time.December, 25)))
	assert.False(t, navidad.Coincide(Nueva(2025, time.December, 24)))
}

func TestFecha_EsFinDeSemana(t *testing.T) {
	assert.True(t, Nueva(2025, time.February, 15).EsFinDeSemana())  // sábado
	assert.True(t, Nueva(2025, time.February, 16).EsFinDeSemana())  // domingo
	assert.False(t, Nueva(2025, time.February, 17).EsFinDeSemana()) // lunes
}

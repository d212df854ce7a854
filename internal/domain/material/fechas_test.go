package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateHuman_FormatosAceptados(t *testing.T) {
	tests := []struct {
		entrada string
		want    string
	}{
		{"021226", "2026-12-02"},      // ddmmaa
		{"02122026", "2026-12-02"},    // ddmmaaaa
		{"02/12/26", "2026-12-02"},    // separador /
		{"02-12-26", "2026-12-02"},    // separador -
		{"02.12.2026", "2026-12-02"},  // separador .
		{"2026-12-02", "2026-12-02"},  // ISO pasa tal cual
		{"  021226  ", "2026-12-02"},  // espacios alrededor
		{"010130", "2030-01-01"},      // año de dos dígitos -> 20aa
	}
	for _, tc := range tests {
		t.Run(tc.entrada, func(t *testing.T) {
			got, err := NormalizeDateHuman(tc.entrada)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeDateHuman_EntradasInvalidas(t *testing.T) {
	entradas := []string{
		"",
		"   ",
		"basura",
		"310226",   // 31 de febrero no existe
		"320126",   // día 32
		"001326",   // mes 13
		"12345",    // ni 6 ni 8 dígitos ni formato con separadores
		"2026/31/02",
	}
	for _, entrada := range entradas {
		t.Run(entrada, func(t *testing.T) {
			_, err := NormalizeDateHuman(entrada)
			assert.Error(t, err)
		})
	}
}

// Una fecha ISO tiene 8 dígitos pero en orden aaaa-mm-dd: debe reconocerse
// como ISO, no interpretarse como día 20 y mes 26.
func TestNormalizeDateHuman_ISOPasaIntacta(t *testing.T) {
	for _, iso := range []string{"2026-12-02", "2027-06-15", "2099-01-31"} {
		got, err := NormalizeDateHuman(iso)
		require.NoError(t, err)
		assert.Equal(t, iso, got)
	}
}

func TestNormalizeDateHuman_NoNormalizaDesbordes(t *testing.T) {
	// time.Date convertiría 31/04 en 01/05; aquí debe rechazarse
	_, err := NormalizeDateHuman("310426")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 10, d.Day())

	_, err = ParseDate("10/03/2026")
	assert.Error(t, err)
}

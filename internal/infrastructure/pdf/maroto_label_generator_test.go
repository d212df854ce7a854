package pdf

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRecortarCuentaRunas(t *testing.T) {
	// La "ó" ocupa dos bytes: un corte por bytes dejaría 31 caracteres (o una
	// runa partida por la mitad) en vez de los 32 pedidos.
	largo := "Limpiador multiusos automóvil con aroma cítrico"
	got := recortar(largo, 32)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 32, utf8.RuneCountInString(got))
	assert.Equal(t, "Limpiador multiusos automóvil co", got)

	assert.Equal(t, "Cinta aislante", recortar("Cinta aislante", 32))
	assert.Equal(t, "ñ", recortar("ñu", 1))
	assert.Equal(t, "", recortar("", 32))
}

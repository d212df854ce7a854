package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodigoValido(t *testing.T) {
	assert.True(t, CodigoValido("1234567"))
	assert.True(t, CodigoValido("0000001"))

	assert.False(t, CodigoValido(""))
	assert.False(t, CodigoValido("123456"))   // corto
	assert.False(t, CodigoValido("12345678")) // largo
	assert.False(t, CodigoValido("12345a7"))
	assert.False(t, CodigoValido(" 1234567"))
}

func TestEanValido(t *testing.T) {
	assert.True(t, EanValido("8412345678905"))
	assert.True(t, EanValido("")) // el EAN es opcional

	assert.False(t, EanValido("841234567890"))   // 12 dígitos
	assert.False(t, EanValido("84123456789050")) // 14 dígitos
	assert.False(t, EanValido("84123456789ab"))
}

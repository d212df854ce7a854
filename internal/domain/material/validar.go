package material

// CodigoValido comprueba el código interno: exactamente 7 dígitos ASCII.
func CodigoValido(codigo string) bool {
	return esNumerico(codigo, 7)
}

// EanValido comprueba el EAN: exactamente 13 dígitos. El vacío es válido
// (el EAN es opcional).
func EanValido(ean string) bool {
	if ean == "" {
		return true
	}
	return esNumerico(ean, 13)
}

func esNumerico(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

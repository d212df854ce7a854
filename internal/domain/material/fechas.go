package material

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ISODate formato de persistencia de la caducidad.
const ISODate = "2006-01-02"

// ParseDate interpreta una fecha ISO (YYYY-MM-DD) ya normalizada.
func ParseDate(iso string) (time.Time, error) {
	return time.Parse(ISODate, iso)
}

// formatos aceptados por NormalizeDateHuman cuando la entrada trae separadores.
var formatosHumanos = []string{
	"02-01-06", "02/01/06", "02.01.06",
	"02-01-2006", "02/01/2006", "02.01.2006",
	ISODate,
}

// NormalizeDateHuman acepta entrada humana de fecha (ddmmaa, ddmmaaaa, con
// separadores - / . o ISO) y devuelve la forma ISO YYYY-MM-DD. Los años de dos
// dígitos se interpretan como 20aa. Devuelve error si no hay interpretación
// posible o la fecha no existe en el calendario.
func NormalizeDateHuman(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("fecha vacía")
	}
	// Primero los formatos exactos: "2026-12-02" en ISO no debe caer en la rama
	// de 8 dígitos, que lo leería como día 20 y mes 26.
	for _, fmtStr := range formatosHumanos {
		if t, err := time.Parse(fmtStr, s); err == nil {
			return t.Format(ISODate), nil
		}
	}
	digits := soloDigitos(s)
	var d, m, y int
	switch len(digits) {
	case 6:
		d = atoi2(digits[0:2])
		m = atoi2(digits[2:4])
		y = 2000 + atoi2(digits[4:6])
	case 8:
		d = atoi2(digits[0:2])
		m = atoi2(digits[2:4])
		y = atoi4(digits[4:8])
	default:
		return "", fmt.Errorf("fecha no reconocida: %q", s)
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normaliza desbordes (32/01 -> 01/02); rechazamos fechas que no existían tal cual
	if t.Day() != d || int(t.Month()) != m || t.Year() != y {
		return "", fmt.Errorf("fecha inexistente: %q", s)
	}
	return t.Format(ISODate), nil
}

// dateOnly descarta la hora y la zona, dejando solo el día en UTC, para que
// las comparaciones de caducidad sean por fecha de calendario.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func soloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func atoi2(s string) int { return int(s[0]-'0')*10 + int(s[1]-'0') }

func atoi4(s string) int {
	return int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
}

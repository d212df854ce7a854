// Package material contiene las reglas puras del ciclo de vida de un material:
// derivación de estado a una fecha dada, etiqueta de presentación, orden de
// listado y validación de código/EAN/fecha. Sin acceso a reloj ni a almacén:
// "hoy" entra siempre como parámetro para que el cálculo sea determinista.
package material

import (
	"strings"
	"time"
)

// Estados base derivados. Los valores son los textos visibles del dominio.
const (
	EstadoCaducado   = "caducado"
	EstadoEnUso      = "en uso"
	EstadoVenceProx  = "vence prox"
	EstadoDisponible = "disponible"
	EstadoPrecintado = "precintado"
	EstadoRetirado   = "retirado"
	EstadoGastado    = "gastado"
	EstadoEscaneado  = "escaneado"
	EstadoErrorFecha = "error fecha"
)

// sortOrder posición de cada etiqueta en los listados (menor primero).
var sortOrder = map[string]int{
	EstadoCaducado:   0,
	EstadoEnUso:      1,
	EstadoVenceProx:  2,
	EstadoDisponible: 3,
	EstadoPrecintado: 4,
	EstadoRetirado:   5,
	EstadoGastado:    6,
	EstadoEscaneado:  7,
	EstadoErrorFecha: 8,
}

// Resolver deriva el estado de un material a partir de sus campos guardados y
// la fecha de consulta. Dos lecturas separadas por un cambio de día pueden
// legítimamente discrepar: el estado nunca se persiste.
type Resolver struct {
	AvisoDias int // antelación del aviso "vence prox"
}

// NewResolver construye el resolver con la antelación de aviso configurada.
func NewResolver(avisoDias int) Resolver {
	return Resolver{AvisoDias: avisoDias}
}

// BaseState deriva el estado base. Prioridad: terminales (gastado, retirado,
// escaneado), luego asignación (en uso), luego la fecha de caducidad.
func (r Resolver) BaseState(caducidad, operario, estadoGuardado string, hoy time.Time) string {
	switch estadoGuardado {
	case EstadoGastado:
		return EstadoGastado
	case EstadoRetirado:
		return EstadoRetirado
	case EstadoEscaneado:
		return EstadoEscaneado
	}
	if operario != "" {
		return EstadoEnUso
	}
	cad, err := ParseDate(caducidad)
	if err != nil {
		return EstadoErrorFecha
	}
	d := dateOnly(hoy)
	if cad.Before(d) {
		return EstadoCaducado
	}
	if !cad.After(d.AddDate(0, 0, r.AvisoDias)) {
		return EstadoVenceProx
	}
	return EstadoDisponible
}

// Label deriva la etiqueta de presentación: igual al estado base salvo para un
// material precintado sin operario, que antepone "P·" cuando el estado base es
// disponible / vence prox / caducado y muestra "precintado" en el resto.
func (r Resolver) Label(caducidad, operario, estadoGuardado string, hoy time.Time) string {
	base := r.BaseState(caducidad, operario, estadoGuardado, hoy)
	switch base {
	case EstadoGastado, EstadoRetirado, EstadoEscaneado:
		return base
	}
	if operario == "" && estadoGuardado == EstadoPrecintado {
		switch base {
		case EstadoDisponible, EstadoVenceProx, EstadoCaducado:
			return "P·" + base
		}
		return EstadoPrecintado
	}
	return base
}

// SortKey devuelve la posición de ordenación de una etiqueta. Las etiquetas
// precintadas ("P·...") ordenan como precintado; las desconocidas, al final.
func SortKey(label string) int {
	if strings.HasPrefix(label, "P·") {
		return sortOrder[EstadoPrecintado]
	}
	if k, ok := sortOrder[label]; ok {
		return k
	}
	return 99
}

// EsTerminal indica si un estado guardado está fuera de circulación
// (gastado, retirado o escaneado).
func EsTerminal(estado string) bool {
	switch estado {
	case EstadoGastado, EstadoRetirado, EstadoEscaneado:
		return true
	}
	return false
}

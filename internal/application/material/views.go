package material

import (
	"time"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
)

// formatoAsignacion presentación de la fecha de asignación en listados.
const formatoAsignacion = "02/01/2006 15:04:05"

// vista construye la MaterialView de un material con su estado derivado a
// "hoy". nombres mapea numero de operario -> nombre para el display.
func vista(resolver dommaterial.Resolver, m *entity.Material, nombres map[string]string, hoy time.Time) dto.MaterialView {
	base := resolver.BaseState(m.Caducidad, m.OperarioNumero, m.Estado, hoy)
	label := resolver.Label(m.Caducidad, m.OperarioNumero, m.Estado, hoy)

	asignadoAt := "-"
	if m.FechaAsignacion != nil && m.OperarioNumero != "" {
		asignadoAt = m.FechaAsignacion.Format(formatoAsignacion)
	}

	operario := "-"
	if m.OperarioNumero != "" {
		operario = m.OperarioNumero
		if nombre, ok := nombres[m.OperarioNumero]; ok && nombre != "" {
			operario = m.OperarioNumero + " - " + nombre
		}
	}

	// Para materiales en uso se señala aparte la caducidad crítica, que el
	// estado base "en uso" oculta
	critico := ""
	if base == dommaterial.EstadoEnUso {
		if cad, err := dommaterial.ParseDate(m.Caducidad); err == nil {
			d := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
			if cad.Before(d) {
				critico = dommaterial.EstadoCaducado
			} else if !cad.After(d.AddDate(0, 0, resolver.AvisoDias)) {
				critico = dommaterial.EstadoVenceProx
			}
		}
	}

	return dto.MaterialView{
		ID:            m.ID,
		Codigo:        m.Codigo,
		Ean:           oGuion(m.Ean),
		Descripcion:   oGuion(m.Descripcion),
		Caducidad:     m.Caducidad,
		Estado:        base,
		EstadoLabel:   label,
		AsignadoAt:    asignadoAt,
		Operario:      operario,
		EstadoCritico: critico,
	}
}

func oGuion(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

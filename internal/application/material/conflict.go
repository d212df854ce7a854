package material

import (
	"context"
	"time"

	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// ConflictDetector aplica la regla "un material activo por EAN y operario":
// un operario no puede tener dos materiales con el mismo EAN salvo que el
// anterior ya esté gastado, retirado o escaneado. Se comprueba solo al asignar;
// devolver/gastar/retirar no la reevalúan.
type ConflictDetector struct {
	resolver dommaterial.Resolver
}

// NewConflictDetector construye el detector con el resolver de estados.
func NewConflictDetector(resolver dommaterial.Resolver) ConflictDetector {
	return ConflictDetector{resolver: resolver}
}

// HasConflict indica si existe otro material (código distinto de excluirCodigo)
// con el mismo EAN asignado al operario cuyo estado base derivado a "hoy" no es
// terminal.
func (d ConflictDetector) HasConflict(ctx context.Context, mats repository.MaterialRepository, ean, operarioNumero, excluirCodigo string, hoy time.Time) (bool, error) {
	if ean == "" || operarioNumero == "" {
		return false, nil
	}
	otros, err := mats.ListByEanOperario(ctx, ean, operarioNumero, excluirCodigo)
	if err != nil {
		return false, err
	}
	for _, m := range otros {
		base := d.resolver.BaseState(m.Caducidad, m.OperarioNumero, m.Estado, hoy)
		if !dommaterial.EsTerminal(base) {
			return true, nil
		}
	}
	return false, nil
}

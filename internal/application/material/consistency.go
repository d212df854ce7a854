package material

import (
	"context"

	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// ConsistencyValidator impide la deriva del catálogo: dos materiales con el
// mismo EAN deben compartir descripción. Es un invariante blando (no hay
// constraint en el esquema), así que se comprueba por consulta en cada
// registro o actualización que aporte EAN y descripción a la vez.
//
// El repositorio se pasa en cada llamada para que la comprobación participe en
// la transacción del caso de uso que la invoca.
type ConsistencyValidator struct{}

// Check devuelve nil si el par (ean, descripcion) es compatible con el resto de
// materiales, o un *domain.ConflictoDescripcion con la descripción ya
// registrada si otro material (distinto de excluirCodigo) usa el mismo EAN con
// otra descripción. Con EAN o descripción vacíos no hay nada que validar.
func (ConsistencyValidator) Check(ctx context.Context, mats repository.MaterialRepository, ean, descripcion, excluirCodigo string) error {
	if ean == "" || descripcion == "" {
		return nil
	}
	existente, hay, err := mats.DescripcionDistinta(ctx, ean, descripcion, excluirCodigo)
	if err != nil {
		return err
	}
	if hay {
		return &domain.ConflictoDescripcion{Ean: ean, Existente: existente, Propuesta: descripcion}
	}
	return nil
}

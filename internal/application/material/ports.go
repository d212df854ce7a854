package material

import (
	"context"

	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción del almacén de
// materiales, con los repositorios de materiales y catálogo atados a la misma
// transacción. Si fn devuelve error se hace Rollback; si no, Commit. Es la
// única frontera transaccional del motor: cada operación mutadora se ejecuta
// entera o no se ejecuta.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		mats repository.MaterialRepository,
		cat repository.CatalogoRepository,
	) error) error
}

package material

import (
	"context"
	"strings"

	"github.com/jhoicas/materiales-api/internal/domain"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// AdminUseCase operaciones administrativas fuera del ciclo de vida: borrado de
// un material y purga de terminales tras exportar. Los handlers las restringen
// al rol admin.
type AdminUseCase struct {
	mats repository.MaterialRepository
}

// NewAdminUseCase construye el caso de uso administrativo.
func NewAdminUseCase(mats repository.MaterialRepository) *AdminUseCase {
	return &AdminUseCase{mats: mats}
}

// Eliminar borra físicamente un material por código.
func (uc *AdminUseCase) Eliminar(ctx context.Context, codigo string) error {
	codigo = strings.TrimSpace(codigo)
	if !dommaterial.CodigoValido(codigo) {
		return domain.ErrCodigoInvalido
	}
	ok, err := uc.mats.DeleteByCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// PurgarTerminales elimina los materiales gastados y retirados ya exportados a
// CSV. Los escaneados quedan fuera: no aparecen en la exportación previa y
// purgarlos destruiría filas nunca volcadas. Devuelve cuántos se eliminaron.
func (uc *AdminUseCase) PurgarTerminales(ctx context.Context) (int64, error) {
	return uc.mats.DeleteGastadosRetirados(ctx)
}

package memory

import (
	"context"
	"time"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// CatalogoRepository vista del catálogo EAN → descripción sobre el Store.
type CatalogoRepository struct {
	s *Store
}

// NewCatalogoRepository crea la vista de catálogo del almacén.
func NewCatalogoRepository(s *Store) *CatalogoRepository {
	return &CatalogoRepository{s: s}
}

var _ repository.CatalogoRepository = (*CatalogoRepository)(nil)

func (r *CatalogoRepository) GetDescripcion(_ context.Context, ean string) (string, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if e, ok := r.s.catalogo[ean]; ok && e.Descripcion != "" {
		return e.Descripcion, true, nil
	}
	for _, m := range r.s.materiales {
		if m.Ean == ean && m.Descripcion != "" {
			return m.Descripcion, true, nil
		}
	}
	return "", false, nil
}

func (r *CatalogoRepository) Upsert(_ context.Context, ean, descripcion string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.catalogo[ean] = entity.EntradaCatalogo{
		Ean:                ean,
		Descripcion:        descripcion,
		FechaActualizacion: time.Now(),
	}
	return nil
}

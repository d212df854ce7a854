package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// catalogoRepository implementación PostgreSQL del catálogo EAN → descripción.
type catalogoRepository struct {
	q Querier
}

// NewCatalogoRepository crea un repositorio de catálogo sobre el Querier dado.
func NewCatalogoRepository(q Querier) repository.CatalogoRepository {
	return &catalogoRepository{q: q}
}

func (r *catalogoRepository) GetDescripcion(ctx context.Context, ean string) (string, bool, error) {
	var desc string
	err := r.q.QueryRow(ctx, `SELECT descripcion FROM catalogo WHERE ean = $1`, ean).Scan(&desc)
	if err == nil && desc != "" {
		return desc, true, nil
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", false, fmt.Errorf("consultar catálogo: %w", err)
	}

	// Sin entrada de catálogo: la descripción de cualquier material ya
	// registrado con el EAN sirve igual.
	err = r.q.QueryRow(ctx,
		`SELECT descripcion FROM materiales WHERE ean = $1 AND descripcion IS NOT NULL LIMIT 1`,
		ean).Scan(&desc)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("consultar descripción en materiales: %w", err)
	}
	return desc, desc != "", nil
}

func (r *catalogoRepository) Upsert(ctx context.Context, ean, descripcion string) error {
	query := `
		INSERT INTO catalogo (ean, descripcion, fecha_actualizacion)
		VALUES ($1, $2, NOW())
		ON CONFLICT (ean) DO UPDATE SET
			descripcion = EXCLUDED.descripcion,
			fecha_actualizacion = NOW()`
	if _, err := r.q.Exec(ctx, query, ean, descripcion); err != nil {
		return fmt.Errorf("upsert catálogo: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// txRunner ejecuta los callbacks transaccionales del motor sobre pgx.
// Los repositorios entregados al callback están atados a la transacción:
// lo que el callback lee es lo que va a commitear.
type txRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner crea el ejecutor transaccional sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) appmaterial.TxRunner {
	return &txRunner{pool: pool}
}

func (t *txRunner) Run(ctx context.Context, fn func(repository.MaterialRepository, repository.CatalogoRepository) error) error {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback tras commit es no-op

	if err := fn(NewMaterialRepository(tx), NewCatalogoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Las sentencias son idempotentes;
// se ejecutan en el arranque y en el seed.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS operarios (
			numero   TEXT PRIMARY KEY,
			nombre   TEXT NOT NULL,
			rol      TEXT NOT NULL DEFAULT 'operario',
			activo   BOOLEAN NOT NULL DEFAULT TRUE,
			pin_hash TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS materiales (
			id              TEXT PRIMARY KEY,
			codigo          TEXT NOT NULL UNIQUE,
			caducidad       TEXT NOT NULL,
			estado          TEXT,
			operario_numero TEXT REFERENCES operarios(numero),
			ean             TEXT,
			descripcion     TEXT,
			fecha_asignacion TIMESTAMPTZ,
			fecha_registro   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_materiales_ean ON materiales(ean)`,
		`CREATE INDEX IF NOT EXISTS idx_materiales_operario ON materiales(operario_numero)`,
		`CREATE INDEX IF NOT EXISTS idx_materiales_estado ON materiales(estado)`,
		`CREATE TABLE IF NOT EXISTS catalogo (
			ean                 TEXT PRIMARY KEY,
			descripcion         TEXT NOT NULL,
			fecha_actualizacion TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

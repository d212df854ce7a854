package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// operarioRepository implementación PostgreSQL del repositorio de operarios.
type operarioRepository struct {
	q Querier
}

// NewOperarioRepository crea un repositorio de operarios sobre el Querier dado.
func NewOperarioRepository(q Querier) repository.OperarioRepository {
	return &operarioRepository{q: q}
}

const operarioColumns = `numero, nombre, rol, activo, COALESCE(pin_hash, '')`

func scanOperario(row pgx.Row) (*entity.Operario, error) {
	var o entity.Operario
	if err := row.Scan(&o.Numero, &o.Nombre, &o.Rol, &o.Activo, &o.PinHash); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *operarioRepository) GetByNumero(ctx context.Context, numero string) (*entity.Operario, error) {
	query := fmt.Sprintf(`SELECT %s FROM operarios WHERE numero = $1`, operarioColumns)
	o, err := scanOperario(r.q.QueryRow(ctx, query, numero))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar operario: %w", err)
	}
	return o, nil
}

func (r *operarioRepository) List(ctx context.Context) ([]*entity.Operario, error) {
	query := fmt.Sprintf(`SELECT %s FROM operarios ORDER BY numero ASC`, operarioColumns)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar operarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Operario
	for rows.Next() {
		o, err := scanOperario(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear fila: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *operarioRepository) Create(ctx context.Context, o *entity.Operario) error {
	query := `
		INSERT INTO operarios (numero, nombre, rol, activo, pin_hash)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))`
	_, err := r.q.Exec(ctx, query, o.Numero, o.Nombre, o.Rol, o.Activo, o.PinHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar operario: %w", err)
	}
	return nil
}

func (r *operarioRepository) Update(ctx context.Context, numero, nombre, rol string) (bool, error) {
	query := `UPDATE operarios SET nombre = $2, rol = $3 WHERE numero = $1`
	tag, err := r.q.Exec(ctx, query, numero, nombre, rol)
	if err != nil {
		return false, fmt.Errorf("actualizar operario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *operarioRepository) SetActivo(ctx context.Context, numero string, activo bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE operarios SET activo = $2 WHERE numero = $1`, numero, activo)
	if err != nil {
		return false, fmt.Errorf("activar/desactivar operario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *operarioRepository) Upsert(ctx context.Context, o *entity.Operario) error {
	query := `
		INSERT INTO operarios (numero, nombre, rol, activo, pin_hash)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (numero) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			rol = EXCLUDED.rol,
			activo = EXCLUDED.activo,
			pin_hash = COALESCE(EXCLUDED.pin_hash, operarios.pin_hash)`
	_, err := r.q.Exec(ctx, query, o.Numero, o.Nombre, o.Rol, o.Activo, o.PinHash)
	if err != nil {
		return fmt.Errorf("upsert operario: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// materialRepository implementación PostgreSQL del repositorio de materiales.
// Recibe un Querier para poder operar sobre el pool o dentro de una transacción.
type materialRepository struct {
	q Querier
}

// NewMaterialRepository crea un repositorio de materiales sobre el Querier dado.
func NewMaterialRepository(q Querier) repository.MaterialRepository {
	return &materialRepository{q: q}
}

const materialColumns = `id, codigo, caducidad, COALESCE(estado, ''), COALESCE(operario_numero, ''),
	COALESCE(ean, ''), COALESCE(descripcion, ''), fecha_asignacion, fecha_registro`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(&m.ID, &m.Codigo, &m.Caducidad, &m.Estado, &m.OperarioNumero,
		&m.Ean, &m.Descripcion, &m.FechaAsignacion, &m.FechaRegistro)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepository) GetByCodigo(ctx context.Context, codigo string) (*entity.Material, error) {
	query := fmt.Sprintf(`SELECT %s FROM materiales WHERE codigo = $1`, materialColumns)
	m, err := scanMaterial(r.q.QueryRow(ctx, query, codigo))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar material: %w", err)
	}
	return m, nil
}

func (r *materialRepository) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materiales (id, codigo, caducidad, estado, operario_numero, ean, descripcion, fecha_asignacion, fecha_registro)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Codigo, m.Caducidad, m.Estado, m.OperarioNumero,
		m.Ean, m.Descripcion, m.FechaAsignacion, m.FechaRegistro)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar material: %w", err)
	}
	return nil
}

func (r *materialRepository) UpdateDatos(ctx context.Context, codigo string, u repository.MaterialUpdate) (bool, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	idx := 1
	if u.Caducidad != nil {
		sets = append(sets, fmt.Sprintf("caducidad = $%d", idx))
		args = append(args, *u.Caducidad)
		idx++
	}
	if u.Ean != nil {
		sets = append(sets, fmt.Sprintf("ean = NULLIF($%d, '')", idx))
		args = append(args, *u.Ean)
		idx++
	}
	if u.Descripcion != nil {
		sets = append(sets, fmt.Sprintf("descripcion = NULLIF($%d, '')", idx))
		args = append(args, *u.Descripcion)
		idx++
	}
	if len(sets) == 0 {
		return false, nil
	}
	query := fmt.Sprintf("UPDATE materiales SET %s WHERE codigo = $%d",
		joinSets(sets), idx)
	args = append(args, codigo)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("actualizar material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func joinSets(sets []string) string {
	out := sets[0]
	for _, s := range sets[1:] {
		out += ", " + s
	}
	return out
}

func (r *materialRepository) Asignar(ctx context.Context, codigo, operarioNumero string, fecha time.Time) (bool, error) {
	query := `UPDATE materiales SET operario_numero = $2, fecha_asignacion = $3 WHERE codigo = $1`
	tag, err := r.q.Exec(ctx, query, codigo, operarioNumero, fecha)
	if err != nil {
		return false, fmt.Errorf("asignar material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *materialRepository) Devolver(ctx context.Context, codigo string) (bool, error) {
	query := `UPDATE materiales SET operario_numero = NULL, fecha_asignacion = NULL WHERE codigo = $1`
	tag, err := r.q.Exec(ctx, query, codigo)
	if err != nil {
		return false, fmt.Errorf("devolver material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *materialRepository) MarcarEstado(ctx context.Context, codigo, estado string) (bool, error) {
	query := `UPDATE materiales SET estado = $2, operario_numero = NULL, fecha_asignacion = NULL WHERE codigo = $1`
	tag, err := r.q.Exec(ctx, query, codigo, estado)
	if err != nil {
		return false, fmt.Errorf("marcar estado: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *materialRepository) Desprecintar(ctx context.Context, codigo string) (bool, error) {
	query := `UPDATE materiales SET estado = NULL WHERE codigo = $1 AND estado = $2`
	tag, err := r.q.Exec(ctx, query, codigo, material.EstadoPrecintado)
	if err != nil {
		return false, fmt.Errorf("desprecintar material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *materialRepository) Escanear(ctx context.Context, codigo string) (bool, error) {
	query := `UPDATE materiales SET estado = $2 WHERE codigo = $1 AND estado IN ($3, $4)`
	tag, err := r.q.Exec(ctx, query, codigo,
		material.EstadoEscaneado, material.EstadoGastado, material.EstadoRetirado)
	if err != nil {
		return false, fmt.Errorf("escanear material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *materialRepository) ListAll(ctx context.Context) ([]*entity.Material, error) {
	query := fmt.Sprintf(`SELECT %s FROM materiales ORDER BY codigo ASC`, materialColumns)
	return r.list(ctx, query)
}

func (r *materialRepository) ListParaEscanear(ctx context.Context) ([]*entity.Material, error) {
	query := fmt.Sprintf(`SELECT %s FROM materiales WHERE estado IN ($1, $2) ORDER BY fecha_registro ASC, codigo ASC`, materialColumns)
	return r.list(ctx, query, material.EstadoGastado, material.EstadoRetirado)
}

func (r *materialRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Material, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar materiales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear fila: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *materialRepository) CountParaEscanear(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM materiales WHERE estado IN ($1, $2)`,
		material.EstadoGastado, material.EstadoRetirado)
}

func (r *materialRepository) CountEscaneados(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM materiales WHERE estado = $1`, material.EstadoEscaneado)
}

func (r *materialRepository) CountByOperario(ctx context.Context, operarioNumero string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM materiales WHERE operario_numero = $1`, operarioNumero)
}

func (r *materialRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar materiales: %w", err)
	}
	return n, nil
}

func (r *materialRepository) DescripcionDistinta(ctx context.Context, ean, descripcion, excluirCodigo string) (string, bool, error) {
	query := `
		SELECT descripcion FROM materiales
		WHERE ean = $1 AND descripcion IS NOT NULL AND descripcion <> $2 AND codigo <> $3
		LIMIT 1`
	var otra string
	err := r.q.QueryRow(ctx, query, ean, descripcion, excluirCodigo).Scan(&otra)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("buscar descripción por EAN: %w", err)
	}
	return otra, true, nil
}

func (r *materialRepository) ListByEanOperario(ctx context.Context, ean, operarioNumero, excluirCodigo string) ([]*entity.Material, error) {
	query := fmt.Sprintf(`SELECT %s FROM materiales WHERE ean = $1 AND operario_numero = $2 AND codigo <> $3`, materialColumns)
	return r.list(ctx, query, ean, operarioNumero, excluirCodigo)
}

func (r *materialRepository) EstadosByOperario(ctx context.Context, operarioNumero string) (map[string]int, error) {
	query := `SELECT COALESCE(estado, ''), COUNT(*) FROM materiales WHERE operario_numero = $1 GROUP BY 1`
	rows, err := r.q.Query(ctx, query, operarioNumero)
	if err != nil {
		return nil, fmt.Errorf("contar estados por operario: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var estado string
		var n int
		if err := rows.Scan(&estado, &n); err != nil {
			return nil, fmt.Errorf("escanear fila: %w", err)
		}
		out[estado] = n
	}
	return out, rows.Err()
}

func (r *materialRepository) DeleteByCodigo(ctx context.Context, codigo string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM materiales WHERE codigo = $1`, codigo)
	if err != nil {
		return false, fmt.Errorf("eliminar material: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *materialRepository) DeleteGastadosRetirados(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM materiales WHERE estado IN ($1, $2)`,
		material.EstadoGastado, material.EstadoRetirado)
	if err != nil {
		return 0, fmt.Errorf("purgar materiales: %w", err)
	}
	return tag.RowsAffected(), nil
}

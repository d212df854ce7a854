package repository

import (
	"context"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

// OperarioRepository puerto de persistencia de operarios.
type OperarioRepository interface {
	// GetByNumero devuelve el operario (activo o no) o (nil, nil) si no existe.
	GetByNumero(ctx context.Context, numero string) (*entity.Operario, error)

	List(ctx context.Context) ([]*entity.Operario, error)

	// Create persiste un operario nuevo; domain.ErrDuplicate si el número existe.
	Create(ctx context.Context, o *entity.Operario) error

	// Update cambia nombre y rol. Devuelve false si el número no existe.
	Update(ctx context.Context, numero, nombre, rol string) (bool, error)

	// SetActivo activa o desactiva (baja lógica). Devuelve false si no existe.
	SetActivo(ctx context.Context, numero string, activo bool) (bool, error)

	// Upsert inserta o actualiza todos los campos (importación CSV).
	Upsert(ctx context.Context, o *entity.Operario) error
}

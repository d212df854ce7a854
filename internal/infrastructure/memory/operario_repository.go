package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// OperarioRepository vista de operarios sobre el Store.
type OperarioRepository struct {
	s *Store
}

// NewOperarioRepository crea la vista de operarios del almacén.
func NewOperarioRepository(s *Store) *OperarioRepository {
	return &OperarioRepository{s: s}
}

var _ repository.OperarioRepository = (*OperarioRepository)(nil)

func (r *OperarioRepository) GetByNumero(_ context.Context, numero string) (*entity.Operario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.operarios[numero]
	if !ok {
		return nil, nil
	}
	return cloneOperario(o), nil
}

func (r *OperarioRepository) List(_ context.Context) ([]*entity.Operario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Operario, 0, len(r.s.operarios))
	for _, o := range r.s.operarios {
		out = append(out, cloneOperario(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out, nil
}

func (r *OperarioRepository) Create(_ context.Context, o *entity.Operario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.operarios[o.Numero]; ok {
		return domain.ErrDuplicate
	}
	r.s.operarios[o.Numero] = cloneOperario(o)
	return nil
}

func (r *OperarioRepository) Update(_ context.Context, numero, nombre, rol string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.operarios[numero]
	if !ok {
		return false, nil
	}
	o.Nombre = nombre
	o.Rol = rol
	return true, nil
}

func (r *OperarioRepository) SetActivo(_ context.Context, numero string, activo bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.operarios[numero]
	if !ok {
		return false, nil
	}
	o.Activo = activo
	return true, nil
}

func (r *OperarioRepository) Upsert(_ context.Context, o *entity.Operario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if prev, ok := r.s.operarios[o.Numero]; ok && o.PinHash == "" {
		// Una importación sin PIN no pisa el PIN existente.
		c := cloneOperario(o)
		c.PinHash = prev.PinHash
		r.s.operarios[o.Numero] = c
		return nil
	}
	r.s.operarios[o.Numero] = cloneOperario(o)
	return nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// MaterialRepository vista de materiales sobre el Store.
type MaterialRepository struct {
	s *Store
}

// NewMaterialRepository crea la vista de materiales del almacén.
func NewMaterialRepository(s *Store) *MaterialRepository {
	return &MaterialRepository{s: s}
}

var _ repository.MaterialRepository = (*MaterialRepository)(nil)

func (r *MaterialRepository) GetByCodigo(_ context.Context, codigo string) (*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.materiales[codigo]
	if !ok {
		return nil, nil
	}
	return cloneMaterial(m), nil
}

func (r *MaterialRepository) Create(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materiales[m.Codigo]; ok {
		return domain.ErrDuplicate
	}
	r.s.materiales[m.Codigo] = cloneMaterial(m)
	return nil
}

func (r *MaterialRepository) UpdateDatos(_ context.Context, codigo string, u repository.MaterialUpdate) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materiales[codigo]
	if !ok {
		return false, nil
	}
	if u.Caducidad != nil {
		m.Caducidad = *u.Caducidad
	}
	if u.Ean != nil {
		m.Ean = *u.Ean
	}
	if u.Descripcion != nil {
		m.Descripcion = *u.Descripcion
	}
	return true, nil
}

func (r *MaterialRepository) Asignar(_ context.Context, codigo, operarioNumero string, fecha time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materiales[codigo]
	if !ok {
		return false, nil
	}
	m.OperarioNumero = operarioNumero
	m.FechaAsignacion = ptrTime(fecha)
	return true, nil
}

func (r *MaterialRepository) Devolver(_ context.Context, codigo string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materiales[codigo]
	if !ok {
		return false, nil
	}
	m.OperarioNumero = ""
	m.FechaAsignacion = nil
	return true, nil
}

func (r *MaterialRepository) MarcarEstado(_ context.Context, codigo, estado string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materiales[codigo]
	if !ok {
		return false, nil
	}
	m.Estado = estado
	m.OperarioNumero = ""
	m.FechaAsignacion = nil
	return true, nil
}

func (r *MaterialRepository) Desprecintar(_ context.Context, codigo string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materiales[codigo]
	if !ok || m.Estado != material.EstadoPrecintado {
		return false, nil
	}
	m.Estado = ""
	return true, nil
}

func (r *MaterialRepository) Escanear(_ context.Context, codigo string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materiales[codigo]
	if !ok {
		return false, nil
	}
	if m.Estado != material.EstadoGastado && m.Estado != material.EstadoRetirado {
		return false, nil
	}
	m.Estado = material.EstadoEscaneado
	return true, nil
}

func (r *MaterialRepository) ListAll(_ context.Context) ([]*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Material, 0, len(r.s.materiales))
	for _, m := range r.s.materiales {
		out = append(out, cloneMaterial(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (r *MaterialRepository) ListParaEscanear(_ context.Context) ([]*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Material
	for _, m := range r.s.materiales {
		if m.Estado == material.EstadoGastado || m.Estado == material.EstadoRetirado {
			out = append(out, cloneMaterial(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].FechaRegistro.Equal(out[j].FechaRegistro) {
			return out[i].FechaRegistro.Before(out[j].FechaRegistro)
		}
		return out[i].Codigo < out[j].Codigo
	})
	return out, nil
}

func (r *MaterialRepository) CountParaEscanear(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, m := range r.s.materiales {
		if m.Estado == material.EstadoGastado || m.Estado == material.EstadoRetirado {
			n++
		}
	}
	return n, nil
}

func (r *MaterialRepository) CountEscaneados(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, m := range r.s.materiales {
		if m.Estado == material.EstadoEscaneado {
			n++
		}
	}
	return n, nil
}

func (r *MaterialRepository) DescripcionDistinta(_ context.Context, ean, descripcion, excluirCodigo string) (string, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.materiales {
		if m.Ean == ean && m.Descripcion != "" && m.Descripcion != descripcion && m.Codigo != excluirCodigo {
			return m.Descripcion, true, nil
		}
	}
	return "", false, nil
}

func (r *MaterialRepository) ListByEanOperario(_ context.Context, ean, operarioNumero, excluirCodigo string) ([]*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Material
	for _, m := range r.s.materiales {
		if m.Ean == ean && m.OperarioNumero == operarioNumero && m.Codigo != excluirCodigo {
			out = append(out, cloneMaterial(m))
		}
	}
	return out, nil
}

func (r *MaterialRepository) CountByOperario(_ context.Context, operarioNumero string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, m := range r.s.materiales {
		if m.OperarioNumero == operarioNumero {
			n++
		}
	}
	return n, nil
}

func (r *MaterialRepository) EstadosByOperario(_ context.Context, operarioNumero string) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]int)
	for _, m := range r.s.materiales {
		if m.OperarioNumero == operarioNumero {
			out[m.Estado]++
		}
	}
	return out, nil
}

func (r *MaterialRepository) DeleteByCodigo(_ context.Context, codigo string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materiales[codigo]; !ok {
		return false, nil
	}
	delete(r.s.materiales, codigo)
	return true, nil
}

func (r *MaterialRepository) DeleteGastadosRetirados(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for codigo, m := range r.s.materiales {
		if m.Estado == material.EstadoGastado || m.Estado == material.EstadoRetirado {
			delete(r.s.materiales, codigo)
			n++
		}
	}
	return n, nil
}

package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// OperarioUseCase gestión de operarios: alta, edición, activación y baja
// lógica. La baja se rechaza mientras el operario tenga materiales asignados.
type OperarioUseCase struct {
	ops  repository.OperarioRepository
	mats repository.MaterialRepository
}

// NewOperarioUseCase construye el caso de uso.
func NewOperarioUseCase(ops repository.OperarioRepository, mats repository.MaterialRepository) *OperarioUseCase {
	return &OperarioUseCase{ops: ops, mats: mats}
}

// Create da de alta un operario activo. El rol por defecto es operario; un PIN
// no vacío se guarda hasheado con bcrypt.
func (uc *OperarioUseCase) Create(ctx context.Context, in dto.CreateOperarioRequest) (*dto.OperarioResponse, error) {
	numero := strings.TrimSpace(in.Numero)
	nombre := strings.TrimSpace(in.Nombre)
	rol := strings.ToLower(strings.TrimSpace(in.Rol))
	if numero == "" || nombre == "" {
		return nil, domain.ErrSinCambios
	}
	if rol == "" {
		rol = entity.RolOperario
	}
	if !entity.RolValido(rol) {
		return nil, domain.ErrRolInvalido
	}

	var pinHash string
	if in.Pin != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Pin), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		pinHash = string(hash)
	}

	o := &entity.Operario{
		Numero:  numero,
		Nombre:  nombre,
		Rol:     rol,
		Activo:  true,
		PinHash: pinHash,
	}
	if err := uc.ops.Create(ctx, o); err != nil {
		return nil, err
	}
	return toOperarioResponse(o), nil
}

// Update cambia nombre y rol de un operario existente.
func (uc *OperarioUseCase) Update(ctx context.Context, numero string, in dto.UpdateOperarioRequest) error {
	nombre := strings.TrimSpace(in.Nombre)
	rol := strings.ToLower(strings.TrimSpace(in.Rol))
	if nombre == "" {
		return domain.ErrSinCambios
	}
	if !entity.RolValido(rol) {
		return domain.ErrRolInvalido
	}
	ok, err := uc.ops.Update(ctx, numero, nombre, rol)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleActivo invierte la activación del operario y devuelve el nuevo estado.
func (uc *OperarioUseCase) ToggleActivo(ctx context.Context, numero string) (bool, error) {
	o, err := uc.ops.GetByNumero(ctx, numero)
	if err != nil {
		return false, err
	}
	if o == nil {
		return false, domain.ErrNotFound
	}
	nuevo := !o.Activo
	if _, err := uc.ops.SetActivo(ctx, numero, nuevo); err != nil {
		return false, err
	}
	return nuevo, nil
}

// Delete baja lógica (activo=false). Se rechaza con ErrOperarioConMateriales
// mientras algún material siga referenciando al operario.
func (uc *OperarioUseCase) Delete(ctx context.Context, numero string) error {
	asignados, err := uc.mats.CountByOperario(ctx, numero)
	if err != nil {
		return err
	}
	if asignados > 0 {
		return domain.ErrOperarioConMateriales
	}
	ok, err := uc.ops.SetActivo(ctx, numero, false)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Get devuelve un operario por número.
func (uc *OperarioUseCase) Get(ctx context.Context, numero string) (*dto.OperarioResponse, error) {
	o, err := uc.ops.GetByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOperarioResponse(o), nil
}

// List devuelve todos los operarios ordenados por número.
func (uc *OperarioUseCase) List(ctx context.Context) ([]dto.OperarioResponse, error) {
	lista, err := uc.ops.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperarioResponse, 0, len(lista))
	for _, o := range lista {
		out = append(out, *toOperarioResponse(o))
	}
	return out, nil
}

// Estadisticas resume los materiales del operario: cuántos tiene asignados y
// el desglose por estado guardado.
func (uc *OperarioUseCase) Estadisticas(ctx context.Context, numero string) (*dto.EstadisticasOperario, error) {
	asignados, err := uc.mats.CountByOperario(ctx, numero)
	if err != nil {
		return nil, err
	}
	porEstado, err := uc.mats.EstadosByOperario(ctx, numero)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasOperario{
		MaterialesAsignados: asignados,
		PorEstado:           porEstado,
	}, nil
}

func toOperarioResponse(o *entity.Operario) *dto.OperarioResponse {
	return &dto.OperarioResponse{
		Numero: o.Numero,
		Nombre: o.Nombre,
		Rol:    o.Rol,
		Activo: o.Activo,
	}
}

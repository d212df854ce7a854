package material

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// LifecycleUseCase orquesta el ciclo de vida de un material: registrar,
// actualizar, asignar, devolver, gastar, retirar y escanear. Las precondiciones
// son independientes del rol del llamante (la autorización es responsabilidad
// del middleware HTTP). Cada mutación se ejecuta dentro de una transacción del
// TxRunner: o se aplica entera o no se aplica.
type LifecycleUseCase struct {
	txRunner  TxRunner
	ops       repository.OperarioRepository
	resolver  dommaterial.Resolver
	validator ConsistencyValidator
	detector  ConflictDetector

	// now inyectable para que los tests fijen "hoy"; nunca se persiste el
	// estado derivado de esta fecha.
	now func() time.Time
}

// NewLifecycleUseCase construye el motor de ciclo de vida.
func NewLifecycleUseCase(txRunner TxRunner, ops repository.OperarioRepository, resolver dommaterial.Resolver) *LifecycleUseCase {
	return &LifecycleUseCase{
		txRunner: txRunner,
		ops:      ops,
		resolver: resolver,
		detector: NewConflictDetector(resolver),
		now:      time.Now,
	}
}

// Register da de alta un material precintado y sin operario.
// Si la descripción viene vacía y el EAN está en el catálogo, se autocompleta;
// si viene informada junto a un EAN, debe ser consistente con el resto de
// materiales de ese EAN. En el alta correcta se actualiza el catálogo.
func (uc *LifecycleUseCase) Register(ctx context.Context, in dto.RegisterMaterialRequest) error {
	codigo := strings.TrimSpace(in.Codigo)
	ean := strings.TrimSpace(in.Ean)
	descripcion := strings.TrimSpace(in.Descripcion)

	if !dommaterial.CodigoValido(codigo) {
		return domain.ErrCodigoInvalido
	}
	if !dommaterial.EanValido(ean) {
		return domain.ErrEanInvalido
	}
	caducidad, err := dommaterial.NormalizeDateHuman(in.Caducidad)
	if err != nil {
		return domain.ErrFechaInvalida
	}
	cad, err := dommaterial.ParseDate(caducidad)
	if err != nil {
		return domain.ErrFechaInvalida
	}
	ahora := uc.now()
	if cad.Before(truncarDia(ahora)) {
		// No se registran materiales ya caducados
		return domain.ErrFechaInvalida
	}

	return uc.txRunner.Run(ctx, func(mats repository.MaterialRepository, cat repository.CatalogoRepository) error {
		existente, err := mats.GetByCodigo(ctx, codigo)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrDuplicate
		}

		if descripcion == "" && ean != "" {
			if d, ok, err := cat.GetDescripcion(ctx, ean); err != nil {
				return err
			} else if ok {
				descripcion = d
			}
		}
		if descripcion == "" {
			return domain.ErrDescripcionObligatoria
		}
		if err := uc.validator.Check(ctx, mats, ean, descripcion, codigo); err != nil {
			return err
		}

		m := &entity.Material{
			ID:            uuid.New().String(),
			Codigo:        codigo,
			Caducidad:     caducidad,
			Estado:        dommaterial.EstadoPrecintado,
			Ean:           ean,
			Descripcion:   descripcion,
			FechaRegistro: ahora,
		}
		if err := mats.Create(ctx, m); err != nil {
			return err
		}
		if ean != "" {
			return cat.Upsert(ctx, ean, descripcion)
		}
		return nil
	})
}

// Update actualiza caducidad, EAN y/o descripción de un material existente.
// Cada campo indicado se valida por separado y la operación es todo-o-nada: si
// el par (EAN, descripción) resultante entra en conflicto con otro material,
// no se aplica ningún cambio.
func (uc *LifecycleUseCase) Update(ctx context.Context, codigo string, in dto.UpdateMaterialRequest) error {
	codigo = strings.TrimSpace(codigo)
	if !dommaterial.CodigoValido(codigo) {
		return domain.ErrCodigoInvalido
	}

	var upd repository.MaterialUpdate
	if in.Caducidad != nil && strings.TrimSpace(*in.Caducidad) != "" {
		cad, err := dommaterial.NormalizeDateHuman(*in.Caducidad)
		if err != nil {
			return domain.ErrFechaInvalida
		}
		upd.Caducidad = &cad
	}
	if in.Ean != nil {
		ean := strings.TrimSpace(*in.Ean)
		if !dommaterial.EanValido(ean) {
			return domain.ErrEanInvalido
		}
		upd.Ean = &ean
	}
	if in.Descripcion != nil {
		descripcion := strings.TrimSpace(*in.Descripcion)
		if descripcion == "" {
			// La descripción es obligatoria tras el alta; no se puede vaciar
			return domain.ErrDescripcionObligatoria
		}
		upd.Descripcion = &descripcion
	}
	if upd.Vacia() {
		return domain.ErrSinCambios
	}

	return uc.txRunner.Run(ctx, func(mats repository.MaterialRepository, cat repository.CatalogoRepository) error {
		m, err := mats.GetByCodigo(ctx, codigo)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}

		// Par (EAN, descripción) resultante tras aplicar la actualización
		eanFinal := m.Ean
		if upd.Ean != nil {
			eanFinal = *upd.Ean
		}
		descFinal := m.Descripcion
		if upd.Descripcion != nil {
			descFinal = *upd.Descripcion
		}
		if err := uc.validator.Check(ctx, mats, eanFinal, descFinal, codigo); err != nil {
			return err
		}

		ok, err := mats.UpdateDatos(ctx, codigo, upd)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		if eanFinal != "" && descFinal != "" {
			return cat.Upsert(ctx, eanFinal, descFinal)
		}
		return nil
	})
}

// Assign asigna el material al operario indicado y sella la fecha de
// asignación. Un material caducado nunca se asigna; uno que vence pronto exige
// confirmado=true (el llamante reintenta tras avisar al usuario). El detector
// de conflictos impide dos materiales activos con el mismo EAN para el mismo
// operario. Al asignar, el precinto se levanta (precintado -> disponible).
func (uc *LifecycleUseCase) Assign(ctx context.Context, codigo string, in dto.AssignMaterialRequest) error {
	codigo = strings.TrimSpace(codigo)
	numero := strings.TrimSpace(in.OperarioNumero)
	if !dommaterial.CodigoValido(codigo) {
		return domain.ErrCodigoInvalido
	}
	if numero == "" {
		return domain.ErrOperarioInactivo
	}

	op, err := uc.ops.GetByNumero(ctx, numero)
	if err != nil {
		return err
	}
	if op == nil || !op.Activo {
		return domain.ErrOperarioInactivo
	}

	ahora := uc.now()
	hoy := truncarDia(ahora)

	return uc.txRunner.Run(ctx, func(mats repository.MaterialRepository, _ repository.CatalogoRepository) error {
		m, err := mats.GetByCodigo(ctx, codigo)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}

		if cad, err := dommaterial.ParseDate(m.Caducidad); err == nil {
			if cad.Before(hoy) {
				return domain.ErrMaterialCaducado
			}
			if !cad.After(hoy.AddDate(0, 0, uc.resolver.AvisoDias)) && !in.Confirmado {
				return domain.ErrConfirmacionRequerida
			}
		}

		if m.Ean != "" {
			conflicto, err := uc.detector.HasConflict(ctx, mats, m.Ean, numero, codigo, hoy)
			if err != nil {
				return err
			}
			if conflicto {
				return domain.ErrConflictoOperario
			}
		}

		if _, err := mats.Asignar(ctx, codigo, numero, ahora); err != nil {
			return err
		}
		// El precinto se levanta al poner el material en circulación
		_, err = mats.Desprecintar(ctx, codigo)
		return err
	})
}

// Devolver limpia operario y fecha de asignación. Es idempotente: devolver un
// material sin asignar es un éxito sin cambios.
func (uc *LifecycleUseCase) Devolver(ctx context.Context, codigo string) error {
	codigo = strings.TrimSpace(codigo)
	if !dommaterial.CodigoValido(codigo) {
		return domain.ErrCodigoInvalido
	}
	return uc.txRunner.Run(ctx, func(mats repository.MaterialRepository, _ repository.CatalogoRepository) error {
		ok, err := mats.Devolver(ctx, codigo)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Gastar marca el material como gastado y lo desasigna. Permitido desde
// cualquier estado previo.
func (uc *LifecycleUseCase) Gastar(ctx context.Context, codigo string) error {
	return uc.marcar(ctx, codigo, dommaterial.EstadoGastado)
}

// Retirar marca el material como retirado y lo desasigna. Permitido desde
// cualquier estado previo.
func (uc *LifecycleUseCase) Retirar(ctx context.Context, codigo string) error {
	return uc.marcar(ctx, codigo, dommaterial.EstadoRetirado)
}

func (uc *LifecycleUseCase) marcar(ctx context.Context, codigo, estado string) error {
	codigo = strings.TrimSpace(codigo)
	if !dommaterial.CodigoValido(codigo) {
		return domain.ErrCodigoInvalido
	}
	return uc.txRunner.Run(ctx, func(mats repository.MaterialRepository, _ repository.CatalogoRepository) error {
		ok, err := mats.MarcarEstado(ctx, codigo, estado)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Escanear confirma físicamente un material gastado o retirado y lo pasa al
// estado terminal escaneado. Desde cualquier otro estado es un no-op: devuelve
// avanzado=false sin error.
func (uc *LifecycleUseCase) Escanear(ctx context.Context, codigo string) (avanzado bool, err error) {
	codigo = strings.TrimSpace(codigo)
	if !dommaterial.CodigoValido(codigo) {
		return false, domain.ErrCodigoInvalido
	}
	err = uc.txRunner.Run(ctx, func(mats repository.MaterialRepository, _ repository.CatalogoRepository) error {
		m, err := mats.GetByCodigo(ctx, codigo)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		avanzado, err = mats.Escanear(ctx, codigo)
		return err
	})
	return avanzado, err
}

// truncarDia deja solo la fecha de calendario en UTC.
func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

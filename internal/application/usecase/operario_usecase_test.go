package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/infrastructure/memory"
)

type opEntorno struct {
	store *memory.Store
	ops   *memory.OperarioRepository
	mats  *memory.MaterialRepository
	uc    *OperarioUseCase
}

func nuevoOpEntorno(t *testing.T) *opEntorno {
	t.Helper()
	store := memory.NewStore()
	ops := memory.NewOperarioRepository(store)
	mats := memory.NewMaterialRepository(store)
	return &opEntorno{store: store, ops: ops, mats: mats, uc: NewOperarioUseCase(ops, mats)}
}

func TestOperarioCreate_PinHasheado(t *testing.T) {
	e := nuevoOpEntorno(t)

	res, err := e.uc.Create(context.Background(), dto.CreateOperarioRequest{
		Numero: "3001", Nombre: "Marta Planta", Pin: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "3001", res.Numero)
	assert.Equal(t, entity.RolOperario, res.Rol, "rol por defecto")
	assert.True(t, res.Activo)

	o, err := e.ops.GetByNumero(context.Background(), "3001")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", o.PinHash, "el PIN nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(o.PinHash), []byte("1234")))
}

func TestOperarioCreate_Validaciones(t *testing.T) {
	e := nuevoOpEntorno(t)
	ctx := context.Background()

	_, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "", Nombre: "Sin número"})
	assert.ErrorIs(t, err, domain.ErrSinCambios)

	_, err = e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Marta", Rol: "gerente"})
	assert.ErrorIs(t, err, domain.ErrRolInvalido)

	_, err = e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Marta"})
	require.NoError(t, err)
	_, err = e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Clon"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El rol llega normalizado a minúsculas
	res, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3002", Nombre: "Luis", Rol: " Almacenero "})
	require.NoError(t, err)
	assert.Equal(t, entity.RolAlmacenero, res.Rol)
}

func TestOperarioUpdate(t *testing.T) {
	e := nuevoOpEntorno(t)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Marta"})
	require.NoError(t, err)

	require.NoError(t, e.uc.Update(ctx, "3001", dto.UpdateOperarioRequest{Nombre: "Marta P.", Rol: entity.RolAlmacenero}))
	o, err := e.uc.Get(ctx, "3001")
	require.NoError(t, err)
	assert.Equal(t, "Marta P.", o.Nombre)
	assert.Equal(t, entity.RolAlmacenero, o.Rol)

	assert.ErrorIs(t, e.uc.Update(ctx, "3001", dto.UpdateOperarioRequest{Nombre: "", Rol: entity.RolOperario}), domain.ErrSinCambios)
	assert.ErrorIs(t, e.uc.Update(ctx, "9999", dto.UpdateOperarioRequest{Nombre: "Nadie", Rol: entity.RolOperario}), domain.ErrNotFound)
}

func TestOperarioToggleActivo(t *testing.T) {
	e := nuevoOpEntorno(t)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Marta"})
	require.NoError(t, err)

	activo, err := e.uc.ToggleActivo(ctx, "3001")
	require.NoError(t, err)
	assert.False(t, activo)

	activo, err = e.uc.ToggleActivo(ctx, "3001")
	require.NoError(t, err)
	assert.True(t, activo)

	_, err = e.uc.ToggleActivo(ctx, "9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOperarioDelete_EsBajaLogica(t *testing.T) {
	e := nuevoOpEntorno(t)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Marta"})
	require.NoError(t, err)

	require.NoError(t, e.uc.Delete(ctx, "3001"))

	// El operario sigue existiendo, solo inactivo: el histórico de materiales
	// conserva la referencia
	o, err := e.uc.Get(ctx, "3001")
	require.NoError(t, err)
	assert.False(t, o.Activo)

	assert.ErrorIs(t, e.uc.Delete(ctx, "9999"), domain.ErrNotFound)
}

func TestOperarioDelete_RechazadaConMateriales(t *testing.T) {
	e := nuevoOpEntorno(t)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Marta"})
	require.NoError(t, err)

	asignado := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	require.NoError(t, e.mats.Create(ctx, &entity.Material{
		ID: "m-1", Codigo: "1000001", Caducidad: "2027-01-01",
		Descripcion: "Sellante", OperarioNumero: "3001",
		FechaAsignacion: &asignado, FechaRegistro: asignado,
	}))

	assert.ErrorIs(t, e.uc.Delete(ctx, "3001"), domain.ErrOperarioConMateriales)

	o, err := e.uc.Get(ctx, "3001")
	require.NoError(t, err)
	assert.True(t, o.Activo, "la baja rechazada no desactiva")

	// Al devolver el material la baja procede
	_, err = e.mats.Devolver(ctx, "1000001")
	require.NoError(t, err)
	assert.NoError(t, e.uc.Delete(ctx, "3001"))
}

func TestOperarioEstadisticas(t *testing.T) {
	e := nuevoOpEntorno(t)
	ctx := context.Background()
	_, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: "3001", Nombre: "Marta"})
	require.NoError(t, err)

	asignado := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	for _, codigo := range []string{"1000001", "1000002"} {
		require.NoError(t, e.mats.Create(ctx, &entity.Material{
			ID: "m-" + codigo, Codigo: codigo, Caducidad: "2027-01-01",
			Descripcion: "Material", OperarioNumero: "3001",
			FechaAsignacion: &asignado, FechaRegistro: asignado,
		}))
	}

	stats, err := e.uc.Estadisticas(ctx, "3001")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.MaterialesAsignados)
}

func TestOperarioList_OrdenadoPorNumero(t *testing.T) {
	e := nuevoOpEntorno(t)
	ctx := context.Background()
	for _, n := range []string{"3002", "3001", "1001"} {
		_, err := e.uc.Create(ctx, dto.CreateOperarioRequest{Numero: n, Nombre: "Op " + n})
		require.NoError(t, err)
	}

	lista, err := e.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 3)
	assert.Equal(t, "1001", lista[0].Numero)
	assert.Equal(t, "3001", lista[1].Numero)
	assert.Equal(t, "3002", lista[2].Numero)
}

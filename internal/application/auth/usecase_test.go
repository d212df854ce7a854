package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/materiales-api/pkg/jwt"
)

var cfgTest = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "materiales-api-test"}

func nuevoAuth(t *testing.T) (*AuthUseCase, *memory.OperarioRepository) {
	t.Helper()
	store := memory.NewStore()
	ops := memory.NewOperarioRepository(store)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, ops.Upsert(ctx, &entity.Operario{
		Numero: "1001", Nombre: "Administración", Rol: entity.RolAdmin, Activo: true, PinHash: string(hash),
	}))
	require.NoError(t, ops.Upsert(ctx, &entity.Operario{
		Numero: "3001", Nombre: "Marta Planta", Rol: entity.RolOperario, Activo: true,
	}))
	require.NoError(t, ops.Upsert(ctx, &entity.Operario{
		Numero: "3002", Nombre: "Baja Antigua", Rol: entity.RolOperario, Activo: false,
	}))

	return NewAuthUseCase(ops, cfgTest), ops
}

func TestLogin_ConPin(t *testing.T) {
	uc, _ := nuevoAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Numero: "1001", Pin: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "1001", res.Operario.Numero)
	assert.Equal(t, entity.RolAdmin, res.Operario.Rol)

	// El token lleva los claims del operario
	numero, nombre, role, err := pkgjwt.Parse(cfgTest.Secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "1001", numero)
	assert.Equal(t, "Administración", nombre)
	assert.Equal(t, entity.RolAdmin, role)
}

func TestLogin_PinIncorrecto(t *testing.T) {
	uc, _ := nuevoAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Numero: "1001", Pin: "0000"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Y con PIN vacío tampoco: el hash configurado obliga a presentarlo
	_, err = uc.Login(context.Background(), dto.LoginRequest{Numero: "1001"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinPinConfiguradoBastaElNumero(t *testing.T) {
	uc, _ := nuevoAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Numero: "3001"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolOperario, res.Operario.Rol)
	assert.NotEmpty(t, res.Token)
}

func TestLogin_InactivoOInexistente(t *testing.T) {
	uc, _ := nuevoAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Numero: "3002"})
	assert.ErrorIs(t, err, domain.ErrOperarioInactivo)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Numero: "9999"})
	assert.ErrorIs(t, err, domain.ErrOperarioInactivo)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Numero: "   "})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

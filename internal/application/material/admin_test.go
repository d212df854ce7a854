package material

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/materiales-api/internal/domain"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
)

func TestAdminEliminar(t *testing.T) {
	e := nuevoEntorno(t)
	admin := NewAdminUseCase(e.mats)
	ctx := context.Background()

	e.registrar(t, "1000001", "021227", "", "Sellante")

	require.NoError(t, admin.Eliminar(ctx, "1000001"))
	m, err := e.mats.GetByCodigo(ctx, "1000001")
	require.NoError(t, err)
	assert.Nil(t, m)

	assert.ErrorIs(t, admin.Eliminar(ctx, "1000001"), domain.ErrNotFound)
	assert.ErrorIs(t, admin.Eliminar(ctx, "abc"), domain.ErrCodigoInvalido)
}

func TestAdminPurgarTerminales(t *testing.T) {
	e := nuevoEntorno(t)
	admin := NewAdminUseCase(e.mats)
	ctx := context.Background()

	e.registrar(t, "1000001", "021227", "", "Se queda")
	e.registrar(t, "1000002", "021227", "", "Gastado")
	e.registrar(t, "1000003", "021227", "", "Retirado")
	require.NoError(t, e.uc.Gastar(ctx, "1000002"))
	require.NoError(t, e.uc.Retirar(ctx, "1000003"))

	n, err := admin.PurgarTerminales(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	m, err := e.mats.GetByCodigo(ctx, "1000001")
	require.NoError(t, err)
	assert.NotNil(t, m, "el precintado no entra en la purga")
	m, err = e.mats.GetByCodigo(ctx, "1000002")
	require.NoError(t, err)
	assert.Nil(t, m)
}

// La purga solo puede destruir lo que la exportación previa volcó: un material
// ya escaneado no aparece en el CSV de bajas y por tanto tampoco se purga.
func TestAdminPurgar_NoTocaEscaneados(t *testing.T) {
	e := nuevoEntorno(t)
	admin := NewAdminUseCase(e.mats)
	ctx := context.Background()

	e.registrar(t, "1000001", "021227", "", "Escaneado")
	e.registrar(t, "1000002", "021227", "", "Gastado")
	require.NoError(t, e.uc.Gastar(ctx, "1000001"))
	_, err := e.uc.Escanear(ctx, "1000001")
	require.NoError(t, err)
	require.NoError(t, e.uc.Gastar(ctx, "1000002"))

	// El escaneado ya no está en la lista exportable
	exportables, err := e.mats.ListParaEscanear(ctx)
	require.NoError(t, err)
	require.Len(t, exportables, 1)
	assert.Equal(t, "1000002", exportables[0].Codigo)

	n, err := admin.PurgarTerminales(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	m, err := e.mats.GetByCodigo(ctx, "1000001")
	require.NoError(t, err)
	require.NotNil(t, m, "el escaneado sobrevive a la purga")
	assert.Equal(t, dommaterial.EstadoEscaneado, m.Estado)
}

package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/infrastructure/memory"
)

type impEntorno struct {
	store *memory.Store
	ops   *memory.OperarioRepository
	mats  *memory.MaterialRepository
	uc    *ImportUseCase
}

func nuevoImpEntorno(t *testing.T) *impEntorno {
	t.Helper()
	store := memory.NewStore()
	ops := memory.NewOperarioRepository(store)
	lifecycle := appmaterial.NewLifecycleUseCase(memory.NewTxRunner(store), ops, dommaterial.NewResolver(7))
	return &impEntorno{
		store: store,
		ops:   ops,
		mats:  memory.NewMaterialRepository(store),
		uc:    NewImportUseCase(ops, lifecycle),
	}
}

func TestImportOperarios_ConEncabezadoYRoles(t *testing.T) {
	e := nuevoImpEntorno(t)
	csv := strings.Join([]string{
		"numero;nombre;rol;activo",
		"1001;Administración;admin;1",
		"2001;Luis Almacén;almacenero",
		"3001;Marta Planta",
		"3002;Baja Antigua;operario;0",
	}, "\n")

	res, err := e.uc.ImportOperarios(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Importados)
	assert.Empty(t, res.Errores)

	o, err := e.ops.GetByNumero(context.Background(), "2001")
	require.NoError(t, err)
	assert.Equal(t, entity.RolAlmacenero, o.Rol)
	assert.True(t, o.Activo)

	o, err = e.ops.GetByNumero(context.Background(), "3001")
	require.NoError(t, err)
	assert.Equal(t, entity.RolOperario, o.Rol, "sin columna de rol se asume operario")

	o, err = e.ops.GetByNumero(context.Background(), "3002")
	require.NoError(t, err)
	assert.False(t, o.Activo)
}

func TestImportOperarios_FilasMalasNoDetienen(t *testing.T) {
	e := nuevoImpEntorno(t)
	csv := strings.Join([]string{
		"1001;Administración",
		";Sin número",
		"3001;Marta Planta",
	}, "\n")

	res, err := e.uc.ImportOperarios(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Importados)
	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0], "fila 2")
}

func TestImportOperarios_Latin1ConPuntoYComa(t *testing.T) {
	e := nuevoImpEntorno(t)
	// "3001;José Martínez" en Windows-1252: é=0xE9, í=0xED
	raw := []byte("3001;Jos\xe9 Mart\xednez\n")

	res, err := e.uc.ImportOperarios(context.Background(), strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Importados)

	o, err := e.ops.GetByNumero(context.Background(), "3001")
	require.NoError(t, err)
	assert.Equal(t, "José Martínez", o.Nombre)
}

func TestImportOperarios_ReimportarSinPinConservaElPin(t *testing.T) {
	e := nuevoImpEntorno(t)
	ctx := context.Background()
	require.NoError(t, e.ops.Upsert(ctx, &entity.Operario{
		Numero: "1001", Nombre: "Administración", Rol: entity.RolAdmin,
		Activo: true, PinHash: "$2a$10$hashexistente",
	}))

	_, err := e.uc.ImportOperarios(ctx, strings.NewReader("1001;Administración Renombrada;admin\n"))
	require.NoError(t, err)

	o, err := e.ops.GetByNumero(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "Administración Renombrada", o.Nombre)
	assert.Equal(t, "$2a$10$hashexistente", o.PinHash)
}

func TestImportMateriales_PasaPorElRegistroNormal(t *testing.T) {
	e := nuevoImpEntorno(t)

	// Caducidades lejanas para que el registro no dependa del día de ejecución
	csv := strings.Join([]string{
		"codigo;caducidad;ean;descripcion",
		"1000001;021299;8412345678905;Sellante de juntas",
		"1000002;02/06/99;;Cinta adhesiva",
		"1000001;021299;;Duplicado",     // código repetido
		"1000003;010120;;Ya caducado",   // fecha pasada
		"1000004;021299;8400000000000;", // sin descripción ni catálogo
	}, "\n")

	res, err := e.uc.ImportMateriales(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Importados)
	require.Len(t, res.Errores, 3)
	assert.Contains(t, res.Errores[0], "1000001")
	assert.Contains(t, res.Errores[1], "1000003")
	assert.Contains(t, res.Errores[2], "1000004")

	m, err := e.mats.GetByCodigo(context.Background(), "1000001")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "2099-12-02", m.Caducidad)
	assert.Equal(t, dommaterial.EstadoPrecintado, m.Estado)
}

func TestImportMateriales_SeparadorComa(t *testing.T) {
	e := nuevoImpEntorno(t)

	res, err := e.uc.ImportMateriales(context.Background(),
		strings.NewReader("1000001,021299,,Sellante\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Importados)
}

func TestLeerCSV_FicheroVacio(t *testing.T) {
	e := nuevoImpEntorno(t)
	_, err := e.uc.ImportOperarios(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}

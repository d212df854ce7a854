package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/infrastructure/memory"
)

func nuevoExport(e *impEntorno) *ExportUseCase {
	query := appmaterial.NewQueryUseCase(e.mats, e.ops, memory.NewCatalogoRepository(e.store), dommaterial.NewResolver(7))
	return NewExportUseCase(e.mats, query)
}

func TestExportMateriales_CSVConPuntoYComa(t *testing.T) {
	e := nuevoImpEntorno(t)
	exp := nuevoExport(e)
	ctx := context.Background()

	_, err := e.uc.ImportMateriales(ctx, strings.NewReader(strings.Join([]string{
		"1000001;021299;8412345678905;Sellante de juntas",
		"1000002;021299;;Cinta adhesiva",
	}, "\n")))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exp.ExportMateriales(ctx, &buf))

	cr := csv.NewReader(&buf)
	cr.Comma = ';'
	filas, err := cr.ReadAll()
	require.NoError(t, err)

	require.Len(t, filas, 3)
	assert.Equal(t, "codigo", filas[0][0])
	assert.Equal(t, "1000001", filas[1][0])
	assert.Equal(t, "Sellante de juntas", filas[1][2])
	assert.Equal(t, "2099-12-02", filas[1][3])
	assert.Equal(t, "-", filas[2][1], "sin EAN se exporta guion")
}

func TestExportTerminales_SoloGastadosYRetirados(t *testing.T) {
	e := nuevoImpEntorno(t)
	exp := nuevoExport(e)
	ctx := context.Background()

	_, err := e.uc.ImportMateriales(ctx, strings.NewReader(strings.Join([]string{
		"1000001;021299;;Gastado",
		"1000002;021299;;Precintado vivo",
	}, "\n")))
	require.NoError(t, err)
	ok, err := e.mats.MarcarEstado(ctx, "1000001", dommaterial.EstadoGastado)
	require.NoError(t, err)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, exp.ExportTerminales(ctx, &buf))

	cr := csv.NewReader(&buf)
	cr.Comma = ';'
	filas, err := cr.ReadAll()
	require.NoError(t, err)

	require.Len(t, filas, 2, "cabecera + solo el gastado")
	assert.Equal(t, "1000001", filas[1][0])
	assert.Equal(t, dommaterial.EstadoGastado, filas[1][4])
}

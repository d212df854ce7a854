package material

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
)

func nuevaConsulta(e *entorno) *QueryUseCase {
	q := NewQueryUseCase(e.mats, e.ops, e.cat, dommaterial.NewResolver(7))
	q.now = func() time.Time { return hoyTest }
	return q
}

func codigos(vistas []dto.MaterialView) []string {
	out := make([]string, 0, len(vistas))
	for _, v := range vistas {
		out = append(out, v.Codigo)
	}
	return out
}

func TestList_OrdenPorPrioridadDeEstado(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	e.registrar(t, "1000001", "2027-01-01", "", "Disponible")  // precintado
	e.registrar(t, "1000002", "2027-01-01", "", "En uso")
	require.NoError(t, e.uc.Assign(ctx, "1000002", dto.AssignMaterialRequest{OperarioNumero: "3001"}))
	e.registrar(t, "1000003", "2026-03-12", "", "Vence pronto") // precintado que vence
	e.registrar(t, "1000004", "2027-01-01", "", "Gastado")
	require.NoError(t, e.uc.Gastar(ctx, "1000004"))
	// Caducado: alta directa, el registro normal no admite fechas pasadas
	e.crearDirecto(t, "1000005", "2026-01-01", "", "Caducado")

	vistas, err := q.List(ctx, "", "", dto.PageRequest{})
	require.NoError(t, err)

	// caducado < en uso < precintados (P·vence prox y P·disponible) < gastado
	assert.Equal(t, []string{"1000005", "1000002", "1000003", "1000001", "1000004"}, codigos(vistas))
	assert.Equal(t, dommaterial.EstadoCaducado, vistas[0].Estado)
	assert.Equal(t, "P·vence prox", vistas[2].EstadoLabel)
	assert.Equal(t, "P·disponible", vistas[3].EstadoLabel)
	assert.Equal(t, "3001 - Marta Planta", vistas[1].Operario)
}

func TestList_BusquedaSinAcentos(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	e.registrar(t, "1000001", "021227", "", "Batería de repuesto")
	e.registrar(t, "1000002", "021227", "", "Cinta adhesiva")

	vistas, err := q.List(ctx, "", "bateria", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000001"}, codigos(vistas))

	// También al revés: aguja con acento sobre texto sin él
	vistas, err = q.List(ctx, "", "adhesíva", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000002"}, codigos(vistas))

	// Y por código o EAN
	vistas, err = q.List(ctx, "", "1000002", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000002"}, codigos(vistas))
}

func TestList_FiltroPrecintado(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	e.registrar(t, "1000001", "2027-01-01", "", "Precintado")
	e.registrar(t, "1000002", "2027-01-01", "", "Asignado")
	require.NoError(t, e.uc.Assign(ctx, "1000002", dto.AssignMaterialRequest{OperarioNumero: "3001"}))

	vistas, err := q.List(ctx, dommaterial.EstadoPrecintado, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000001"}, codigos(vistas))
}

func TestList_FiltroCaducadoIncluyeEnUso(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	e.crearDirecto(t, "1000001", "2026-01-01", "", "Caducado suelto")
	// En uso con caducidad vencida: el estado base dice "en uso" pero el corte
	// del panel lo incluye
	e.crearDirectoAsignado(t, "1000002", "2026-01-01", "Caducado en uso", "3001")
	e.registrar(t, "1000003", "2027-01-01", "", "Sano")

	vistas, err := q.List(ctx, dommaterial.EstadoCaducado, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000001", "1000002"}, codigos(vistas))

	// La vista del en-uso caducado lo señala como crítico
	assert.Equal(t, dommaterial.EstadoEnUso, vistas[1].Estado)
	assert.Equal(t, dommaterial.EstadoCaducado, vistas[1].EstadoCritico)
}

func TestList_FiltroVenceProxIncluyeEnUso(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	e.registrar(t, "1000001", "2026-03-14", "", "Vence pronto en uso")
	require.NoError(t, e.uc.Assign(ctx, "1000001", dto.AssignMaterialRequest{OperarioNumero: "3001", Confirmado: true}))
	e.registrar(t, "1000002", "2027-01-01", "", "Lejos")

	vistas, err := q.List(ctx, dommaterial.EstadoVenceProx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000001"}, codigos(vistas))
	assert.Equal(t, dommaterial.EstadoVenceProx, vistas[0].EstadoCritico)
}

func TestList_Paginacion(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	for _, c := range []string{"1000001", "1000002", "1000003"} {
		e.registrar(t, c, "2027-01-01", "", "Material "+c)
	}

	vistas, err := q.List(ctx, "", "", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000001", "1000002"}, codigos(vistas))

	vistas, err = q.List(ctx, "", "", dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000003"}, codigos(vistas))

	vistas, err = q.List(ctx, "", "", dto.PageRequest{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, vistas)
}

func TestCheckCodigo(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	e.registrar(t, "1000001", "021227", "", "Ocupado")

	res, err := q.CheckCodigo(ctx, "1000001")
	require.NoError(t, err)
	assert.False(t, res.Disponible)

	res, err = q.CheckCodigo(ctx, "1000002")
	require.NoError(t, err)
	assert.True(t, res.Disponible)

	_, err = q.CheckCodigo(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrCodigoInvalido)
}

func TestDescripcionPorEan(t *testing.T) {
	e := nuevoEntorno(t)
	q := nuevaConsulta(e)
	ctx := context.Background()

	e.registrar(t, "1000001", "021227", "8412345678905", "Sellante de juntas")

	res, err := q.DescripcionPorEan(ctx, "8412345678905")
	require.NoError(t, err)
	assert.True(t, res.Existe)
	assert.Equal(t, "Sellante de juntas", res.Descripcion)

	res, err = q.DescripcionPorEan(ctx, "8400000000000")
	require.NoError(t, err)
	assert.False(t, res.Existe)

	_, err = q.DescripcionPorEan(ctx, "123")
	assert.ErrorIs(t, err, domain.ErrEanInvalido)
}

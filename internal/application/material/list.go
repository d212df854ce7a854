package material

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// QueryUseCase consultas de materiales: listado paginado con filtro por estado
// y búsqueda, autocompletado de descripción por EAN y comprobación de código.
// Solo lectura; el estado se deriva en cada llamada.
type QueryUseCase struct {
	mats     repository.MaterialRepository
	ops      repository.OperarioRepository
	cat      repository.CatalogoRepository
	resolver dommaterial.Resolver

	now func() time.Time
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(mats repository.MaterialRepository, ops repository.OperarioRepository, cat repository.CatalogoRepository, resolver dommaterial.Resolver) *QueryUseCase {
	return &QueryUseCase{mats: mats, ops: ops, cat: cat, resolver: resolver, now: time.Now}
}

// List devuelve los materiales filtrados por estado y texto, ordenados por
// (prioridad de etiqueta, caducidad, código) y paginados.
//
// El filtro de estado admite, además de las etiquetas exactas, los cortes del
// panel: "precintado" (precintados aunque su base sea otra), "vence prox" y
// "caducado" (también materiales en uso cuya caducidad cumpla la condición).
func (uc *QueryUseCase) List(ctx context.Context, estadoFilter, q string, page dto.PageRequest) ([]dto.MaterialView, error) {
	page.DefaultPage()
	todos, err := uc.mats.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	nombres, err := uc.nombresOperarios(ctx)
	if err != nil {
		return nil, err
	}

	hoy := uc.now()
	dia := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
	aguja := plegar(strings.TrimSpace(q))

	type fila struct {
		m     *entity.Material
		label string
	}
	var filas []fila
	for _, m := range todos {
		label := uc.resolver.Label(m.Caducidad, m.OperarioNumero, m.Estado, hoy)
		if !uc.coincideEstado(m, label, estadoFilter, dia) {
			continue
		}
		if aguja != "" && !coincideTexto(m, aguja) {
			continue
		}
		filas = append(filas, fila{m: m, label: label})
	}

	sort.Slice(filas, func(i, j int) bool {
		ki, kj := dommaterial.SortKey(filas[i].label), dommaterial.SortKey(filas[j].label)
		if ki != kj {
			return ki < kj
		}
		if filas[i].m.Caducidad != filas[j].m.Caducidad {
			return filas[i].m.Caducidad < filas[j].m.Caducidad
		}
		return filas[i].m.Codigo < filas[j].m.Codigo
	})

	if page.Offset >= len(filas) {
		return []dto.MaterialView{}, nil
	}
	fin := page.Offset + page.Limit
	if fin > len(filas) {
		fin = len(filas)
	}
	vistas := make([]dto.MaterialView, 0, fin-page.Offset)
	for _, f := range filas[page.Offset:fin] {
		vistas = append(vistas, vista(uc.resolver, f.m, nombres, hoy))
	}
	return vistas, nil
}

// DescripcionPorEan busca la descripción conocida de un EAN (catálogo primero,
// materiales después) para el autocompletado del formulario de alta.
func (uc *QueryUseCase) DescripcionPorEan(ctx context.Context, ean string) (*dto.DescripcionEanResponse, error) {
	ean = strings.TrimSpace(ean)
	if ean == "" || !dommaterial.EanValido(ean) {
		return nil, domain.ErrEanInvalido
	}
	descripcion, existe, err := uc.cat.GetDescripcion(ctx, ean)
	if err != nil {
		return nil, err
	}
	return &dto.DescripcionEanResponse{Descripcion: descripcion, Existe: existe}, nil
}

// CheckCodigo indica si un código de 7 dígitos está libre.
func (uc *QueryUseCase) CheckCodigo(ctx context.Context, codigo string) (*dto.CheckCodigoResponse, error) {
	codigo = strings.TrimSpace(codigo)
	if !dommaterial.CodigoValido(codigo) {
		return nil, domain.ErrCodigoInvalido
	}
	m, err := uc.mats.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return &dto.CheckCodigoResponse{Codigo: codigo, Disponible: m == nil}, nil
}

// Vistas construye las vistas de una lista de materiales ya cargada (la usan
// exportación y PDF para no duplicar el armado).
func (uc *QueryUseCase) Vistas(ctx context.Context, mats []*entity.Material) ([]dto.MaterialView, error) {
	nombres, err := uc.nombresOperarios(ctx)
	if err != nil {
		return nil, err
	}
	hoy := uc.now()
	vistas := make([]dto.MaterialView, 0, len(mats))
	for _, m := range mats {
		vistas = append(vistas, vista(uc.resolver, m, nombres, hoy))
	}
	return vistas, nil
}

func (uc *QueryUseCase) coincideEstado(m *entity.Material, label, filtro string, dia time.Time) bool {
	if filtro == "" || filtro == "todos" {
		return true
	}
	if label == filtro {
		return true
	}
	base := uc.resolver.BaseState(m.Caducidad, m.OperarioNumero, m.Estado, dia)
	if base == filtro {
		return true
	}
	switch filtro {
	case dommaterial.EstadoPrecintado:
		return m.Estado == dommaterial.EstadoPrecintado && m.OperarioNumero == ""
	case dommaterial.EstadoVenceProx, dommaterial.EstadoCaducado:
		// Los materiales en uso también cuentan si su caducidad cumple
		if dommaterial.EsTerminal(m.Estado) {
			return false
		}
		cad, err := dommaterial.ParseDate(m.Caducidad)
		if err != nil {
			return false
		}
		if filtro == dommaterial.EstadoCaducado {
			return cad.Before(dia)
		}
		return !cad.Before(dia) && !cad.After(dia.AddDate(0, 0, uc.resolver.AvisoDias))
	}
	return false
}

func (uc *QueryUseCase) nombresOperarios(ctx context.Context) (map[string]string, error) {
	lista, err := uc.ops.List(ctx)
	if err != nil {
		return nil, err
	}
	nombres := make(map[string]string, len(lista))
	for _, o := range lista {
		nombres[o.Numero] = o.Nombre
	}
	return nombres, nil
}

func coincideTexto(m *entity.Material, aguja string) bool {
	for _, campo := range []string{m.Codigo, m.Ean, m.Descripcion} {
		if strings.Contains(plegar(campo), aguja) {
			return true
		}
	}
	return false
}

// quitaAcentos descompone, elimina marcas diacríticas y recompone, para que la
// búsqueda encuentre "bateria" en "Batería".
var quitaAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func plegar(s string) string {
	plegado, _, err := transform.String(quitaAcentos, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return plegado
}

// Package pdf genera los documentos imprimibles del almacén con Maroto v2:
// hojas de etiquetas con código de barras Code128 por material y el informe
// de inventario con el estado derivado.
//
// Layout de la hoja de etiquetas (A4, 3 columnas):
//
//	┌───────────────┬───────────────┬───────────────┐
//	│ ▐║▌║▌║▌║▌║▌   │ ▐║▌║▌║▌║▌║▌   │ ▐║▌║▌║▌║▌║▌   │
//	│ 1234567       │ 2345678       │ 3456789       │
//	│ Descripción   │ Descripción   │ Descripción   │
//	│ Cad: 02/01/26 │ Cad: 15/03/26 │ Cad: —        │
//	└───────────────┴───────────────┴───────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/materiales-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// etiquetasPorFila etiquetas por fila en la hoja A4.
const etiquetasPorFila = 3

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLabelGenerator genera las hojas de etiquetas y el informe de
// inventario usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerarEtiquetas genera una hoja de etiquetas con el código de barras
// Code128 de cada material y devuelve los bytes del PDF.
func (g *MarotoLabelGenerator) GenerarEtiquetas(_ context.Context, vistas []dto.MaterialView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiquetas de materiales", true).
		Build()

	m := maroto.New(cfg)

	for i := 0; i < len(vistas); i += etiquetasPorFila {
		fin := i + etiquetasPorFila
		if fin > len(vistas) {
			fin = len(vistas)
		}
		m.AddRows(labelRow(vistas[i:fin]))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerarInforme genera el informe de inventario: una fila por material con
// su estado derivado a la fecha de emisión.
func (g *MarotoLabelGenerator) GenerarInforme(_ context.Context, titulo string, vistas []dto.MaterialView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(informeHeaderRow())
	for _, v := range vistas {
		m.AddRows(informeDetailRow(v))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// labelRow: hasta tres etiquetas lado a lado. El ancho 12 de Maroto se parte
// en columnas de 4.
func labelRow(vistas []dto.MaterialView) core.Row {
	ancho := 12 / etiquetasPorFila
	r := row.New(30)
	for _, v := range vistas {
		r.Add(labelCol(ancho, v))
	}
	// Columnas vacías para que la última fila incompleta no se estire
	for i := len(vistas); i < etiquetasPorFila; i++ {
		r.Add(col.New(ancho))
	}
	return r
}

// recortar corta la descripción a max caracteres contando runas: las
// descripciones llevan acentos y eñes y un corte por bytes podría partir
// una runa UTF-8 por la mitad.
func recortar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func labelCol(ancho int, v dto.MaterialView) core.Col {
	desc := recortar(v.Descripcion, 32)
	return col.New(ancho).Add(
		code.NewBar(v.Codigo, props.Barcode{
			Type:    barcode.Code128,
			Percent: 80,
			Center:  true,
			Top:     1,
		}),
		text.New(v.Codigo, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 17,
		}),
		text.New(desc, props.Text{
			Size: 7, Align: align.Center, Top: 22, Color: colorGray,
		}),
		text.New("Cad: "+v.Caducidad, props.Text{
			Size: 7, Align: align.Center, Top: 26, Color: colorGray,
		}),
	)
}

// informeHeaderRow: cabecera de la tabla del informe.
func informeHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Caducidad", 2, align.Center),
		h("Estado", 2, align.Center),
		h("Operario", 2, align.Left),
	)
}

// informeDetailRow: una fila por material. Los caducados van en rojo.
func informeDetailRow(v dto.MaterialView) core.Row {
	colorEstado := colorGray
	if v.Estado == "caducado" || v.Estado == "error fecha" {
		colorEstado = colorRed
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(v.Codigo, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(v.Descripcion, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(v.Caducidad, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(v.EstadoLabel, props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: colorEstado,
		})),
		col.New(2).Add(text.New(v.Operario, props.Text{Size: 8, Top: 1, Left: 1})),
	)
}

package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// ExportUseCase vuelca materiales a CSV (UTF-8, separador ';' como esperan las
// hojas de cálculo en castellano).
type ExportUseCase struct {
	mats  repository.MaterialRepository
	query *appmaterial.QueryUseCase
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(mats repository.MaterialRepository, query *appmaterial.QueryUseCase) *ExportUseCase {
	return &ExportUseCase{mats: mats, query: query}
}

// ExportMateriales escribe todos los materiales con su estado derivado.
func (uc *ExportUseCase) ExportMateriales(ctx context.Context, w io.Writer) error {
	todos, err := uc.mats.ListAll(ctx)
	if err != nil {
		return err
	}
	vistas, err := uc.query.Vistas(ctx, todos)
	if err != nil {
		return err
	}
	return escribirCSV(w, vistas)
}

// ExportTerminales escribe solo gastados y retirados; es el paso previo a la
// purga administrativa.
func (uc *ExportUseCase) ExportTerminales(ctx context.Context, w io.Writer) error {
	lista, err := uc.mats.ListParaEscanear(ctx)
	if err != nil {
		return err
	}
	vistas, err := uc.query.Vistas(ctx, lista)
	if err != nil {
		return err
	}
	return escribirCSV(w, vistas)
}

func escribirCSV(w io.Writer, vistas []dto.MaterialView) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"codigo", "ean", "descripcion", "caducidad", "estado", "estado_label", "operario", "asignado_at"}); err != nil {
		return fmt.Errorf("escribir cabecera CSV: %w", err)
	}
	for _, v := range vistas {
		fila := []string{v.Codigo, v.Ean, v.Descripcion, v.Caducidad, v.Estado, v.EstadoLabel, v.Operario, v.AsignadoAt}
		if err := cw.Write(fila); err != nil {
			return fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

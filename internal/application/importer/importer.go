// Package importer carga y vuelca ficheros CSV de operarios y materiales.
// Los CSV llegan de herramientas de oficina antiguas: se aceptan UTF-8 y
// Latin-1, y separador coma o punto y coma (se detecta en la primera línea).
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// Resultado resumen de una importación: filas aplicadas y errores por fila.
type Resultado struct {
	Importados int      `json:"importados"`
	Errores    []string `json:"errores"`
}

// ImportUseCase importaciones masivas. Cada fila pasa por la misma validación
// que el alta individual; una fila mala no detiene el resto.
type ImportUseCase struct {
	ops       repository.OperarioRepository
	lifecycle *appmaterial.LifecycleUseCase
}

// NewImportUseCase construye el caso de uso de importación.
func NewImportUseCase(ops repository.OperarioRepository, lifecycle *appmaterial.LifecycleUseCase) *ImportUseCase {
	return &ImportUseCase{ops: ops, lifecycle: lifecycle}
}

// ImportOperarios procesa un CSV numero;nombre[;rol[;activo]]. Las filas de
// encabezado se saltan; cada fila válida hace upsert del operario.
func (uc *ImportUseCase) ImportOperarios(ctx context.Context, r io.Reader) (*Resultado, error) {
	filas, err := leerCSV(r)
	if err != nil {
		return nil, err
	}
	res := &Resultado{Errores: []string{}}
	for i, fila := range filas {
		if len(fila) < 2 {
			continue
		}
		numero := strings.TrimSpace(fila[0])
		nombre := strings.TrimSpace(fila[1])
		if esEncabezado(numero) {
			continue
		}
		if numero == "" || nombre == "" {
			res.Errores = append(res.Errores, fmt.Sprintf("fila %d: número y nombre obligatorios", i+1))
			continue
		}
		rol := entity.RolOperario
		if len(fila) > 2 && strings.TrimSpace(fila[2]) != "" {
			rol = strings.ToLower(strings.TrimSpace(fila[2]))
			if !entity.RolValido(rol) {
				rol = entity.RolOperario
			}
		}
		activo := true
		if len(fila) > 3 {
			activo = strings.TrimSpace(fila[3]) != "0"
		}
		o := &entity.Operario{Numero: numero, Nombre: nombre, Rol: rol, Activo: activo}
		if err := uc.ops.Upsert(ctx, o); err != nil {
			res.Errores = append(res.Errores, fmt.Sprintf("fila %d: %v", i+1, err))
			continue
		}
		res.Importados++
	}
	return res, nil
}

// ImportMateriales procesa un CSV codigo;caducidad[;ean[;descripcion]].
// Cada fila pasa por el registro normal del motor: duplicados, fechas pasadas
// o descripciones ausentes quedan reflejados como errores de fila.
func (uc *ImportUseCase) ImportMateriales(ctx context.Context, r io.Reader) (*Resultado, error) {
	filas, err := leerCSV(r)
	if err != nil {
		return nil, err
	}
	res := &Resultado{Errores: []string{}}
	for i, fila := range filas {
		if len(fila) < 2 {
			continue
		}
		codigo := strings.TrimSpace(fila[0])
		if esEncabezado(codigo) {
			continue
		}
		req := dto.RegisterMaterialRequest{
			Codigo:    codigo,
			Caducidad: strings.TrimSpace(fila[1]),
		}
		if len(fila) > 2 {
			req.Ean = strings.TrimSpace(fila[2])
		}
		if len(fila) > 3 {
			req.Descripcion = strings.TrimSpace(fila[3])
		}
		if err := uc.lifecycle.Register(ctx, req); err != nil {
			res.Errores = append(res.Errores, fmt.Sprintf("fila %d (%s): %v", i+1, codigo, err))
			continue
		}
		res.Importados++
	}
	return res, nil
}

// esEncabezado filtra la primera fila de los CSV exportados por Excel.
func esEncabezado(primeraCol string) bool {
	switch strings.ToLower(primeraCol) {
	case "numero", "número", "id", "codigo", "código":
		return true
	}
	return false
}

// leerCSV lee todas las filas detectando codificación y separador.
func leerCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer fichero: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("fichero vacío")
	}
	if !utf8.Valid(raw) {
		// Exportaciones antiguas de Excel llegan en Latin-1 / Windows-1252
		dec, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.Windows1252.NewDecoder()))
		if err == nil {
			raw = dec
		}
	}

	primera, _, _ := strings.Cut(string(raw), "\n")
	sep := ','
	if strings.Contains(primera, ";") {
		sep = ';'
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	filas, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear CSV: %w", err)
	}
	return filas, nil
}

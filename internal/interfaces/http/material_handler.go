package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/application/importer"
	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
)

// LabelGenerator genera los PDF de etiquetas e informes del almacén.
type LabelGenerator interface {
	GenerarEtiquetas(ctx context.Context, vistas []dto.MaterialView) ([]byte, error)
	GenerarInforme(ctx context.Context, titulo string, vistas []dto.MaterialView) ([]byte, error)
}

// MaterialHandler maneja el ciclo de vida y las consultas de materiales.
type MaterialHandler struct {
	lifecycle *appmaterial.LifecycleUseCase
	query     *appmaterial.QueryUseCase
	admin     *appmaterial.AdminUseCase
	export    *importer.ExportUseCase
	labels    LabelGenerator
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(
	lifecycle *appmaterial.LifecycleUseCase,
	query *appmaterial.QueryUseCase,
	admin *appmaterial.AdminUseCase,
	export *importer.ExportUseCase,
	labels LabelGenerator,
) *MaterialHandler {
	return &MaterialHandler{lifecycle: lifecycle, query: query, admin: admin, export: export, labels: labels}
}

// Register godoc
// @Summary      Alta de material precintado
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMaterialRequest  true  "codigo (7 dígitos), caducidad, ean (opcional), descripcion (opcional si el EAN está en catálogo)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materiales [post]
func (h *MaterialHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return bad(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.lifecycle.Register(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "material registrado"})
}

// Update godoc
// @Summary      Actualizar caducidad, EAN y/o descripción
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Param        body    body  dto.UpdateMaterialRequest  true  "campos a cambiar; los omitidos no se tocan"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/materiales/{codigo} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return bad(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.lifecycle.Update(c.Context(), c.Params("codigo"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material actualizado"})
}

// Assign godoc
// @Summary      Asignar material a un operario
// @Description  Un material que vence pronto exige confirmado=true; uno caducado nunca se asigna.
// @Tags         materiales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Param        body    body  dto.AssignMaterialRequest  true  "operario_numero, confirmado"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/materiales/{codigo}/asignar [post]
func (h *MaterialHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return bad(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.lifecycle.Assign(c.Context(), c.Params("codigo"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material asignado"})
}

// Devolver godoc
// @Summary      Devolver material (desasignar)
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{codigo}/devolver [post]
func (h *MaterialHandler) Devolver(c *fiber.Ctx) error {
	if err := h.lifecycle.Devolver(c.Context(), c.Params("codigo")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material devuelto"})
}

// Gastar godoc
// @Summary      Marcar material como gastado
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{codigo}/gastar [post]
func (h *MaterialHandler) Gastar(c *fiber.Ctx) error {
	if err := h.lifecycle.Gastar(c.Context(), c.Params("codigo")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material gastado"})
}

// Retirar godoc
// @Summary      Marcar material como retirado
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{codigo}/retirar [post]
func (h *MaterialHandler) Retirar(c *fiber.Ctx) error {
	if err := h.lifecycle.Retirar(c.Context(), c.Params("codigo")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material retirado"})
}

// List godoc
// @Summary      Listado de materiales con estado derivado
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "etiqueta o corte: precintado, vence prox, caducado, todos"
// @Param        q       query  string  false  "búsqueda por código, EAN o descripción (sin acentos)"
// @Param        limit   query  int     false  "máx. filas (50 por defecto)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MaterialView
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/materiales [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return bad(c, "INVALID_QUERY", "paginación inválida")
	}
	vistas, err := h.query.List(c.Context(), c.Query("estado"), c.Query("q"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(vistas), "materiales": vistas})
}

// CheckCodigo godoc
// @Summary      Comprobar si un código está libre
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Success      200  {object}  dto.CheckCodigoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materiales/{codigo}/disponible [get]
func (h *MaterialHandler) CheckCodigo(c *fiber.Ctx) error {
	resp, err := h.query.CheckCodigo(c.Context(), c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DescripcionPorEan godoc
// @Summary      Autocompletar descripción por EAN
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        ean  path  string  true  "EAN-13"
// @Success      200  {object}  dto.DescripcionEanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materiales/ean/{ean}/descripcion [get]
func (h *MaterialHandler) DescripcionPorEan(c *fiber.Ctx) error {
	resp, err := h.query.DescripcionPorEan(c.Context(), c.Params("ean"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Export godoc
// @Summary      Exportar materiales a CSV
// @Tags         materiales
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/materiales/export [get]
func (h *MaterialHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="materiales.csv"`)
	if err := h.export.ExportMateriales(c.Context(), c.Response().BodyWriter()); err != nil {
		return respondError(c, err)
	}
	return nil
}

// ExportTerminales godoc
// @Summary      Exportar gastados y retirados a CSV (previo a la purga)
// @Tags         materiales
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/materiales/export/terminales [get]
func (h *MaterialHandler) ExportTerminales(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="materiales_baja.csv"`)
	if err := h.export.ExportTerminales(c.Context(), c.Response().BodyWriter()); err != nil {
		return respondError(c, err)
	}
	return nil
}

// Etiquetas godoc
// @Summary      Hoja de etiquetas PDF con código de barras
// @Description  Genera etiquetas Code128 para los materiales del filtro indicado.
// @Tags         materiales
// @Security     Bearer
// @Produce      application/pdf
// @Param        estado  query  string  false  "filtro de estado (vacío = todos)"
// @Param        q       query  string  false  "búsqueda"
// @Success      200  {string}  string
// @Router       /api/materiales/etiquetas [get]
func (h *MaterialHandler) Etiquetas(c *fiber.Ctx) error {
	vistas, err := h.query.List(c.Context(), c.Query("estado"), c.Query("q"), dto.PageRequest{Limit: 200})
	if err != nil {
		return respondError(c, err)
	}
	pdf, err := h.labels.GenerarEtiquetas(c.Context(), vistas)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="etiquetas.pdf"`)
	return c.Send(pdf)
}

// Informe godoc
// @Summary      Informe de inventario en PDF
// @Tags         materiales
// @Security     Bearer
// @Produce      application/pdf
// @Param        estado  query  string  false  "filtro de estado (vacío = todos)"
// @Success      200  {string}  string
// @Router       /api/materiales/informe [get]
func (h *MaterialHandler) Informe(c *fiber.Ctx) error {
	vistas, err := h.query.List(c.Context(), c.Query("estado"), "", dto.PageRequest{Limit: 200})
	if err != nil {
		return respondError(c, err)
	}
	pdf, err := h.labels.GenerarInforme(c.Context(), "Inventario de materiales", vistas)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}

// Delete godoc
// @Summary      Eliminar un material (administrativo)
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{codigo} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.admin.Eliminar(c.Context(), c.Params("codigo")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material eliminado"})
}

// Purge godoc
// @Summary      Purgar materiales gastados y retirados
// @Description  Pensado para después de exportar el CSV de bajas.
// @Tags         materiales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/materiales/purga [post]
func (h *MaterialHandler) Purge(c *fiber.Ctx) error {
	n, err := h.admin.PurgarTerminales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"eliminados": n})
}

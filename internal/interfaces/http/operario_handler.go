package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/application/usecase"
)

// OperarioHandler gestión de operarios (solo admin).
type OperarioHandler struct {
	uc *usecase.OperarioUseCase
}

// NewOperarioHandler construye el handler.
func NewOperarioHandler(uc *usecase.OperarioUseCase) *OperarioHandler {
	return &OperarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar operarios
// @Tags         operarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OperarioResponse
// @Router       /api/operarios [get]
func (h *OperarioHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(lista), "operarios": lista})
}

// Get godoc
// @Summary      Consultar un operario
// @Tags         operarios
// @Security     Bearer
// @Produce      json
// @Param        numero  path  string  true  "número de operario"
// @Success      200  {object}  dto.OperarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operarios/{numero} [get]
func (h *OperarioHandler) Get(c *fiber.Ctx) error {
	o, err := h.uc.Get(c.Context(), c.Params("numero"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// Create godoc
// @Summary      Alta de operario
// @Tags         operarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperarioRequest  true  "numero, nombre, rol (operario por defecto), pin (opcional)"
// @Success      201   {object}  dto.OperarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operarios [post]
func (h *OperarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperarioRequest
	if err := c.BodyParser(&in); err != nil {
		return bad(c, "INVALID_BODY", "cuerpo inválido")
	}
	o, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

// Update godoc
// @Summary      Cambiar nombre y rol de un operario
// @Tags         operarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        numero  path  string  true  "número de operario"
// @Param        body    body  dto.UpdateOperarioRequest  true  "nombre, rol"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operarios/{numero} [put]
func (h *OperarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOperarioRequest
	if err := c.BodyParser(&in); err != nil {
		return bad(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.uc.Update(c.Context(), c.Params("numero"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "operario actualizado"})
}

// ToggleActivo godoc
// @Summary      Activar o desactivar un operario
// @Tags         operarios
// @Security     Bearer
// @Produce      json
// @Param        numero  path  string  true  "número de operario"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operarios/{numero}/activo [post]
func (h *OperarioHandler) ToggleActivo(c *fiber.Ctx) error {
	activo, err := h.uc.ToggleActivo(c.Context(), c.Params("numero"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"activo": activo})
}

// Delete godoc
// @Summary      Baja lógica de un operario
// @Description  Se rechaza mientras el operario tenga materiales asignados.
// @Tags         operarios
// @Security     Bearer
// @Produce      json
// @Param        numero  path  string  true  "número de operario"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/operarios/{numero} [delete]
func (h *OperarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("numero")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "operario dado de baja"})
}

// Estadisticas godoc
// @Summary      Resumen de materiales de un operario
// @Tags         operarios
// @Security     Bearer
// @Produce      json
// @Param        numero  path  string  true  "número de operario"
// @Success      200  {object}  dto.EstadisticasOperario
// @Router       /api/operarios/{numero}/estadisticas [get]
func (h *OperarioHandler) Estadisticas(c *fiber.Ctx) error {
	resp, err := h.uc.Estadisticas(c.Context(), c.Params("numero"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

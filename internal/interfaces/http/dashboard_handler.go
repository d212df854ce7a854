package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/analytics"
)

// DashboardHandler contadores y alertas del panel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Contadores godoc
// @Summary      Contadores por estado, métricas y alertas de caducidad
// @Description  Se recalcula en cada llamada con el estado derivado a hoy.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ContadoresResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/contadores [get]
func (h *DashboardHandler) Contadores(c *fiber.Ctx) error {
	resp, err := h.uc.Contadores(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

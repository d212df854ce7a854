package http

import (
	"github.com/gofiber/fiber/v2"

	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
)

// ScanHandler maneja la cola de escaneo de bajas: los materiales gastados o
// retirados se confirman físicamente uno a uno, por orden de registro.
type ScanHandler struct {
	queue *appmaterial.ScanQueueUseCase
}

// NewScanHandler construye el handler.
func NewScanHandler(queue *appmaterial.ScanQueueUseCase) *ScanHandler {
	return &ScanHandler{queue: queue}
}

// Next godoc
// @Summary      Siguiente material de la cola de escaneo
// @Tags         escaneo
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QueueStepResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/escaneo/siguiente [get]
func (h *ScanHandler) Next(c *fiber.Ctx) error {
	resp, err := h.queue.Next(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Confirmar godoc
// @Summary      Confirmar el escaneo de un material
// @Description  Pasa a escaneado solo desde gastado/retirado; en otro caso avanzado=false sin error.
// @Tags         escaneo
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "código de 7 dígitos"
// @Success      200  {object}  dto.ScanConfirmResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/escaneo/{codigo} [post]
func (h *ScanHandler) Confirmar(c *fiber.Ctx) error {
	resp, err := h.queue.Confirmar(c.Context(), c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Pendientes godoc
// @Summary      Materiales pendientes de escanear
// @Tags         escaneo
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/escaneo/pendientes [get]
func (h *ScanHandler) Pendientes(c *fiber.Ctx) error {
	n, err := h.queue.Pendientes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"pendientes": n})
}

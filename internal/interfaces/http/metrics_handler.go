package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
)

// MetricsHandler expone las métricas agregadas por sucursal.
type MetricsHandler struct {
	uc *inventory.UseCase
}

// NewMetricsHandler construye el handler.
func NewMetricsHandler(uc *inventory.UseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// StoreMetrics godoc
// @Summary      Métricas de una sucursal (totales y por categoría)
// @Tags         metrics
// @Produce      json
// @Param        id   path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.StoreMetricsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/metrics [get]
func (h *MetricsHandler) StoreMetrics(c *fiber.Ctx) error {
	out := h.uc.StoreMetrics(c.Params("id"))
	if out == nil {
		return notFound(c, "sucursal")
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hvaldez/inventario-sucursales/internal/application/dto"
	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
)

// SearchHandler expone la búsqueda de texto libre y el escáner de códigos.
type SearchHandler struct {
	uc *inventory.UseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *inventory.UseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar productos por texto libre
// @Tags         search
// @Produce      json
// @Param        q  query  string  false  "Consulta (vacía devuelve todo)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	return c.JSON(h.uc.SearchProducts(c.Query("q")))
}

// Scan godoc
// @Summary      Resolver un código de barras escaneado
// @Tags         search
// @Produce      json
// @Param        code  query  string  true  "Código decodificado por el escáner"
// @Success      200   {object}  dto.StoreMatchListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scan [get]
func (h *SearchHandler) Scan(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	return c.JSON(h.uc.ScanBarcode(code))
}

// Templates godoc
// @Summary      Listar plantillas de producto
// @Tags         search
// @Produce      json
// @Success      200  {array}  dto.TemplateResponse
// @Router       /api/templates [get]
func (h *SearchHandler) Templates(c *fiber.Ctx) error {
	return c.JSON(h.uc.Templates())
}

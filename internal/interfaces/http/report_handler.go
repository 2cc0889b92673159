package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hvaldez/inventario-sucursales/internal/application/report"
)

// ReportHandler expone los listados compartibles en texto, HTML y PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func reportOptions(c *fiber.Ctx) report.Options {
	return report.Options{
		Comment:     c.Query("comment"),
		ArrivalNote: c.Query("arrival_note"),
	}
}

// StoreListing godoc
// @Summary      Listado de una sucursal (format=text|html|pdf|sales)
// @Tags         reports
// @Param        id       path   string  true   "ID de la sucursal"
// @Param        format   query  string  false  "Formato"  default(text)
// @Param        comment  query  string  false  "Comentario de encabezado"
// @Param        arrival_note  query  string  false  "Nota de próxima llegada"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/report [get]
func (h *ReportHandler) StoreListing(c *fiber.Ctx) error {
	id := c.Params("id")
	opts := reportOptions(c)
	switch c.Query("format", "text") {
	case "html":
		out, err := h.uc.StoreListingHTML(id, opts)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(out)
	case "pdf":
		out, err := h.uc.StoreListingPDF(id, opts)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(out)
	case "sales":
		out, err := h.uc.StoreSalesText(id, opts)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(out)
	default:
		out, err := h.uc.StoreListingText(id, opts)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(out)
	}
}

// GlobalListing godoc
// @Summary      Listado consolidado de la cadena (format=text|html|pdf)
// @Tags         reports
// @Param        format  query  string  false  "Formato"  default(text)
// @Success      200
// @Router       /api/reports/global [get]
func (h *ReportHandler) GlobalListing(c *fiber.Ctx) error {
	switch c.Query("format", "text") {
	case "html":
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(h.uc.GlobalListingHTML())
	case "pdf":
		out, err := h.uc.GlobalListingPDF()
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(out)
	default:
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(h.uc.GlobalListingText())
	}
}

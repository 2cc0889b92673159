// Package pdf implementa la versión PDF de los listados de inventario con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + Ubicación                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por categoría: Producto | Cant | Precio | Código de barras  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AGOTADOS: sección final con los productos sin existencia    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hvaldez/inventario-sucursales/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 176, Green: 0, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoListingGenerator implementa report.DocumentRenderer usando Maroto v2.
type MarotoListingGenerator struct{}

// NewMarotoListingGenerator construye el generador.
func NewMarotoListingGenerator() *MarotoListingGenerator { return &MarotoListingGenerator{} }

// RenderStoreListing genera el listado PDF de una sucursal.
func (g *MarotoListingGenerator) RenderStoreListing(section report.StoreSection) ([]byte, error) {
	m := newDocument(section.StoreName)
	addSectionRows(m, section, true)
	return generate(m)
}

// RenderGlobalListing genera el listado PDF consolidado de la cadena.
func (g *MarotoListingGenerator) RenderGlobalListing(sections []report.StoreSection) ([]byte, error) {
	m := newDocument("Inventario global")
	for _, section := range sections {
		addSectionRows(m, section, true)
		m.AddRows(row.New(6))
	}
	return generate(m)
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func addSectionRows(m core.Maroto, section report.StoreSection, withHeader bool) {
	if withHeader {
		m.AddRows(headerRow(section))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	}
	if section.Comment != "" {
		m.AddRows(noteRow(section.Comment))
	}
	if section.ArrivalNote != "" {
		m.AddRows(noteRow("Próxima llegada: " + section.ArrivalNote))
	}

	available, outOfStock := report.SplitAvailability(section.Rows)

	for _, group := range report.GroupByCategory(available) {
		m.AddRows(categoryRow(group.Name, colorPrimary))
		m.AddRows(tableHeaderRow())
		for _, r := range group.Rows {
			m.AddRows(productRow(r))
		}
	}

	if len(outOfStock) > 0 {
		m.AddRows(categoryRow("Agotados", colorAlert))
		for _, r := range report.SortedByName(outOfStock) {
			m.AddRows(outOfStockRow(r))
		}
	}
}

// headerRow: nombre de la sucursal + ubicación.
func headerRow(section report.StoreSection) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(section.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(section.Location, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
}

func noteRow(note string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(note, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}

func categoryRow(name string, color *props.Color) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: color, Top: 2,
		})),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Código", 4, align.Center),
	)
}

// productRow: una fila por producto, con código de barras inline.
func productRow(r report.ProductRow) core.Row {
	price := "$" + r.EffectivePrice().StringFixed(2)
	if r.OfferPrice != nil {
		price = fmt.Sprintf("$%s (antes $%s)", r.OfferPrice.StringFixed(2), r.Price.StringFixed(2))
	}
	cols := []core.Col{
		col.New(5).Add(text.New(r.Name, props.Text{Size: 8, Align: align.Left, Top: 2})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), props.Text{Size: 8, Align: align.Center, Top: 2})),
		col.New(2).Add(text.New(price, props.Text{Size: 8, Align: align.Right, Top: 2})),
	}
	if r.Barcode != "" {
		cols = append(cols, col.New(4).Add(code.NewBar(r.Barcode, props.Barcode{
			Percent: 70, Center: true,
		})))
	} else {
		cols = append(cols, col.New(4))
	}
	return row.New(10).Add(cols...)
}

func outOfStockRow(r report.ProductRow) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(r.Name, props.Text{Size: 8, Color: colorAlert, Top: 1})),
	)
}

// Package report genera los documentos compartibles del inventario (texto
// plano, HTML y PDF) a partir de snapshots ya resueltos. Los builders son
// funciones puras: reciben todo unido (nombre de categoría incluido) y
// devuelven cadenas, sin tocar estado ambiente ni hacer I/O.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// OtherCategoryLabel cubeta centinela para productos sin categoría resuelta.
const OtherCategoryLabel = "Otros"

// ProductRow es un renglón de reporte con la categoría ya unida por nombre.
type ProductRow struct {
	Name         string
	CategoryName string
	Quantity     int
	Price        decimal.Decimal
	OfferPrice   *decimal.Decimal // nil sin oferta
	Barcode      string
	Note         string
}

// EffectivePrice precio unitario a reportar (oferta si la hay).
func (r ProductRow) EffectivePrice() decimal.Decimal {
	if r.OfferPrice != nil {
		return *r.OfferPrice
	}
	return r.Price
}

// StoreSection productos de una sucursal más sus notas de encabezado.
type StoreSection struct {
	StoreName   string
	Location    string
	Comment     string
	ArrivalNote string
	Rows        []ProductRow
}

// CategoryGroup renglones de una misma categoría, ya ordenados por nombre.
type CategoryGroup struct {
	Name string
	Rows []ProductRow
}

// SplitAvailability separa disponibles de agotados conservando el orden.
func SplitAvailability(rows []ProductRow) (available, outOfStock []ProductRow) {
	for _, r := range rows {
		if r.Quantity > 0 {
			available = append(available, r)
		} else {
			outOfStock = append(outOfStock, r)
		}
	}
	return available, outOfStock
}

// GroupByCategory agrupa por nombre de categoría (centinela Otros para los
// no resueltos), categorías en orden alfabético y productos alfabéticos
// dentro de cada una.
func GroupByCategory(rows []ProductRow) []CategoryGroup {
	byName := make(map[string][]ProductRow)
	for _, r := range rows {
		name := strings.TrimSpace(r.CategoryName)
		if name == "" {
			name = OtherCategoryLabel
		}
		byName[name] = append(byName[name], r)
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]CategoryGroup, 0, len(names))
	for _, name := range names {
		group := CategoryGroup{Name: name, Rows: byName[name]}
		sort.Slice(group.Rows, func(i, j int) bool { return group.Rows[i].Name < group.Rows[j].Name })
		groups = append(groups, group)
	}
	return groups
}

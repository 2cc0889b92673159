// Package metrics agrega métricas de inventario por categoría o sucursal a
// partir de snapshots de productos. Reducciones puras, nunca lanzan.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
)

// LowStockThreshold stock igual o menor se considera "stock bajo".
const LowStockThreshold = 3

// CategorySummary totales de un conjunto de productos.
type CategorySummary struct {
	ProductCount  int
	TotalStock    int
	TotalValue    decimal.Decimal // suma de stock * precio vigente (oferta incluida)
	OfferCount    int
	LowStockCount int
}

// SummarizeCategoryProducts reduce la lista a sus totales. El precio
// unitario para el valor es el de oferta cuando hay una activa, el de lista
// si no. Lista vacía devuelve el resultado en ceros.
func SummarizeCategoryProducts(products []entity.Product) CategorySummary {
	s := CategorySummary{TotalValue: decimal.Zero}
	for _, p := range products {
		s.ProductCount++
		s.TotalStock += p.Stock
		s.TotalValue = s.TotalValue.Add(p.EffectivePrice().Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Offer != nil {
			s.OfferCount++
		}
		if p.Stock <= LowStockThreshold {
			s.LowStockCount++
		}
	}
	return s
}

// SummarizeByCategory agrupa por CategoryID y reduce cada grupo. Se usa para
// el tablero de métricas por sucursal.
func SummarizeByCategory(products []entity.Product) map[string]CategorySummary {
	byCategory := make(map[string][]entity.Product)
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}
	out := make(map[string]CategorySummary, len(byCategory))
	for id, group := range byCategory {
		out[id] = SummarizeCategoryProducts(group)
	}
	return out
}

package inventory

import (
	"sort"

	"github.com/hvaldez/inventario-sucursales/internal/application/dto"
	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
	"github.com/hvaldez/inventario-sucursales/internal/domain/metrics"
)

// StoreMetrics agrega las métricas de una sucursal: totales generales y
// desglose por categoría, ordenado por nombre. nil si la sucursal no existe.
func (uc *UseCase) StoreMetrics(storeID string) *dto.StoreMetricsResponse {
	uc.mu.Lock()
	if uc.findStore(storeID) == nil {
		uc.mu.Unlock()
		return nil
	}
	var products []entity.Product
	for _, p := range uc.st.Products {
		if p.StoreID == storeID {
			products = append(products, p)
		}
	}
	categoryName := make(map[string]string)
	for _, c := range uc.st.Categories {
		if c.StoreID == storeID {
			categoryName[c.ID] = c.Name
		}
	}
	uc.mu.Unlock()

	out := &dto.StoreMetricsResponse{
		StoreID: storeID,
		Totals:  toSummaryDTO("", "", metrics.SummarizeCategoryProducts(products)),
	}
	for id, summary := range metrics.SummarizeByCategory(products) {
		out.Categories = append(out.Categories, toSummaryDTO(id, categoryName[id], summary))
	}
	sort.Slice(out.Categories, func(i, j int) bool {
		return out.Categories[i].CategoryName < out.Categories[j].CategoryName
	})
	return out
}

func toSummaryDTO(categoryID, categoryName string, s metrics.CategorySummary) dto.CategorySummaryDTO {
	return dto.CategorySummaryDTO{
		CategoryID:    categoryID,
		CategoryName:  categoryName,
		ProductCount:  s.ProductCount,
		TotalStock:    s.TotalStock,
		TotalValue:    s.TotalValue,
		OfferCount:    s.OfferCount,
		LowStockCount: s.LowStockCount,
	}
}

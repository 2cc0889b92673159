package dto

import "github.com/shopspring/decimal"

// CategorySummaryDTO totales de una categoría (o de la sucursal completa).
type CategorySummaryDTO struct {
	CategoryID    string          `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	ProductCount  int             `json:"product_count"`
	TotalStock    int             `json:"total_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
	OfferCount    int             `json:"offer_count"`
	LowStockCount int             `json:"low_stock_count"`
}

// StoreMetricsResponse métricas de una sucursal: total y desglose por
// categoría.
type StoreMetricsResponse struct {
	StoreID    string               `json:"store_id"`
	Totals     CategorySummaryDTO   `json:"totals"`
	Categories []CategorySummaryDTO `json:"categories"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest entrada para ajustar el stock de un producto con un
// delta (positivo o negativo) y un motivo del catálogo.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"required"`
	Note   string `json:"note"`
}

// SetStockRequest entrada para fijar el stock absoluto de un producto.
type SetStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// ToggleOfferRequest entrada para activar o desactivar la oferta.
type ToggleOfferRequest struct {
	HasOffer   bool             `json:"has_offer"`
	OfferPrice *decimal.Decimal `json:"offer_price"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	StoreID        string    `json:"store_id"`
	Kind           string    `json:"kind"`
	Reason         string    `json:"reason"`
	Quantity       int       `json:"quantity"`
	PreviousStock  int       `json:"previous_stock"`
	ResultingStock int       `json:"resulting_stock"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}

package entity

import "time"

// Clases de movimiento de inventario.
const (
	MovementKindIncrease = "increase"
	MovementKindDecrease = "decrease"
	MovementKindInitial  = "initial"
)

// Motivos de movimiento de inventario.
const (
	MovementReasonRestock      = "restock"
	MovementReasonSale         = "sale"
	MovementReasonManualAdjust = "manual_adjust"
	MovementReasonTransfer     = "transfer"
	MovementReasonInitialLoad  = "initial_load"
)

// ValidMovementReason indica si el motivo pertenece al catálogo.
func ValidMovementReason(reason string) bool {
	switch reason {
	case MovementReasonRestock, MovementReasonSale, MovementReasonManualAdjust,
		MovementReasonTransfer, MovementReasonInitialLoad:
		return true
	}
	return false
}

// InventoryMovement registro inmutable de un cambio de stock, con el stock
// antes y después del delta. Se usa para auditoría y reportes de movimientos.
type InventoryMovement struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	StoreID        string    `json:"store_id"`
	Kind           string    `json:"kind"`   // increase, decrease, initial
	Reason         string    `json:"reason"` // restock, sale, manual_adjust, transfer, initial_load
	Quantity       int       `json:"quantity"` // valor absoluto del delta
	PreviousStock  int       `json:"previous_stock"`
	ResultingStock int       `json:"resulting_stock"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

package entity

import "time"

// Category representa una categoría de productos dentro de una sucursal.
// El nombre es único por sucursal (sin distinguir mayúsculas y recortando
// espacios); su ciclo de vida está atado al de la sucursal.
type Category struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

package entity

import "time"

// Store representa una sucursal física de la cadena. Es dueña de sus
// categorías y productos (borrado en cascada vía StoreID).
type Store struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

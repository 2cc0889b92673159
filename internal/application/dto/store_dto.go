package dto

import "time"

// CreateStoreRequest entrada para dar de alta una sucursal. El nombre no
// exige unicidad.
type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateStoreRequest entrada para actualizar una sucursal (merge parcial).
type UpdateStoreRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// StoreResponse salida de una sucursal.
type StoreResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StoreListResponse lista de sucursales.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
}

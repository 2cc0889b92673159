package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría en una sucursal.
type CreateCategoryRequest struct {
	StoreID     string `json:"store_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse lista de categorías de una sucursal.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

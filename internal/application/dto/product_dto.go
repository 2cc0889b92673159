package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. En el borde HTTP la
// oferta viaja como par has_offer/offer_price; el dominio lo guarda como
// variante etiquetada (Offer nil o con precio).
type CreateProductRequest struct {
	StoreID     string           `json:"store_id" validate:"required"`
	CategoryID  string           `json:"category_id" validate:"required"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Unit        string           `json:"unit"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	ImageURL    string           `json:"image_url"`
	Description string           `json:"description"`
	HasOffer    bool             `json:"has_offer"`
	OfferPrice  *decimal.Decimal `json:"offer_price"`
	Discount    *DiscountDTO     `json:"discount"`
	Barcodes    *BarcodesDTO     `json:"barcodes"`
	TemplateID  string           `json:"template_id"`
}

// UpdateProductRequest merge parcial sobre el producto existente.
// HasOffer=false explícito limpia el precio de oferta; HasOffer=true exige
// OfferPrice (misma regla que el alta).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	ImageURL    *string          `json:"image_url"`
	Description *string          `json:"description"`
	HasOffer    *bool            `json:"has_offer"`
	OfferPrice  *decimal.Decimal `json:"offer_price"`
	Discount    *DiscountDTO     `json:"discount"`
	Barcodes    *BarcodesDTO     `json:"barcodes"`
}

// DiscountDTO condiciones de promoción.
type DiscountDTO struct {
	MonthsNoInterest int        `json:"months_no_interest"`
	CashOnly         bool       `json:"cash_only"`
	ExpiresAt        *time.Time `json:"expires_at"`
}

// BarcodesDTO códigos de barras del producto.
type BarcodesDTO struct {
	UPC string `json:"upc"`
	Box string `json:"box"`
}

// PriceSnapshotDTO entrada del historial de precios.
type PriceSnapshotDTO struct {
	Price      decimal.Decimal  `json:"price"`
	OfferPrice *decimal.Decimal `json:"offer_price,omitempty"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// ChangeEntryDTO entrada de la bitácora de cambios.
type ChangeEntryDTO struct {
	Field string    `json:"field"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	At    time.Time `json:"at"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string             `json:"id"`
	StoreID        string             `json:"store_id"`
	CategoryID     string             `json:"category_id"`
	Name           string             `json:"name"`
	Unit           string             `json:"unit"`
	Price          decimal.Decimal    `json:"price"`
	PreviousPrice  *decimal.Decimal   `json:"previous_price,omitempty"`
	PriceUpdatedAt *time.Time         `json:"price_updated_at,omitempty"`
	PriceHistory   []PriceSnapshotDTO `json:"price_history,omitempty"`
	Stock          int                `json:"stock"`
	ImageURL       string             `json:"image_url,omitempty"`
	Description    string             `json:"description,omitempty"`
	HasOffer       bool               `json:"has_offer"`
	OfferPrice     *decimal.Decimal   `json:"offer_price,omitempty"`
	Discount       *DiscountDTO       `json:"discount,omitempty"`
	Barcodes       *BarcodesDTO       `json:"barcodes,omitempty"`
	ChangeLog      []ChangeEntryDTO   `json:"change_log,omitempty"`
	TemplateID     string             `json:"template_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

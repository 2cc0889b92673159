package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible de una sucursal. CategoryID debe
// referir a una categoría de la misma sucursal (StoreID). Stock nunca es
// negativo; los cambios de stock pasan por movimientos de inventario.
type Product struct {
	ID             string           `json:"id"`
	StoreID        string           `json:"store_id"`
	CategoryID     string           `json:"category_id"`
	Name           string           `json:"name"`
	Unit           string           `json:"unit,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	PreviousPrice  *decimal.Decimal `json:"previous_price,omitempty"`
	PriceUpdatedAt *time.Time       `json:"price_updated_at,omitempty"`
	PriceHistory   []PriceSnapshot  `json:"price_history,omitempty"` // append-only, ascendente en el tiempo
	Stock          int              `json:"stock"`
	ImageURL       string           `json:"image_url,omitempty"`
	Description    string           `json:"description,omitempty"`
	Offer          *Offer           `json:"offer,omitempty"`
	Discount       *DiscountInfo    `json:"discount,omitempty"`
	Barcodes       *Barcodes        `json:"barcodes,omitempty"`
	ChangeLog      []ChangeEntry    `json:"change_log,omitempty"`
	TemplateID     string           `json:"template_id,omitempty"` // vacío si no referencia una plantilla
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Offer es una oferta activa. Un puntero nil significa "sin oferta": el
// invariante "precio de oferta presente sii la oferta está activa" queda
// garantizado por el tipo, no por convención.
type Offer struct {
	Price decimal.Decimal `json:"price"`
}

// EffectivePrice devuelve el precio unitario vigente: el de oferta si hay
// una activa, el de lista en caso contrario.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.Offer != nil {
		return p.Offer.Price
	}
	return p.Price
}

// DiscountInfo condiciones de promoción asociadas a un producto.
type DiscountInfo struct {
	MonthsNoInterest int        `json:"months_no_interest,omitempty"` // meses sin intereses; 0 = no aplica
	CashOnly         bool       `json:"cash_only,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"` // nil = sin vencimiento
}

// Barcodes códigos de barras propios del producto.
type Barcodes struct {
	UPC string `json:"upc,omitempty"`
	Box string `json:"box,omitempty"` // código de caja
}

// PriceSnapshot registro inmutable de un precio vigente en un momento dado.
type PriceSnapshot struct {
	Price      decimal.Decimal  `json:"price"`
	OfferPrice *decimal.Decimal `json:"offer_price,omitempty"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// ChangeEntry entrada de bitácora de cambios de un producto.
type ChangeEntry struct {
	Field string    `json:"field"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	At    time.Time `json:"at"`
}

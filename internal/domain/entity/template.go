package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductTemplate es una plantilla reutilizable de producto: sirve para
// prellenar altas y para que un mismo código de barras resuelva al mismo
// artículo lógico en todas las sucursales.
type ProductTemplate struct {
	ID         string           `json:"id"`
	SKU        string           `json:"sku"` // código maestro
	Name       string           `json:"name"`
	BasePrice  decimal.Decimal  `json:"base_price"`
	Barcodes   *Barcodes        `json:"barcodes,omitempty"`
	Aliases    []string         `json:"aliases,omitempty"` // códigos UPC alternos del mismo artículo
	References []StoreReference `json:"references,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// StoreReference historial de códigos con los que una sucursal ha
// registrado el artículo de la plantilla.
type StoreReference struct {
	StoreID      string    `json:"store_id"`
	Code         string    `json:"code"`
	RegisteredAt time.Time `json:"registered_at"`
}

// AllCodes devuelve el conjunto de códigos de la plantilla: SKU maestro,
// códigos de barras propios, alias y referencias por sucursal.
func (t *ProductTemplate) AllCodes() []string {
	codes := make([]string, 0, 3+len(t.Aliases)+len(t.References))
	if t.SKU != "" {
		codes = append(codes, t.SKU)
	}
	if t.Barcodes != nil {
		if t.Barcodes.UPC != "" {
			codes = append(codes, t.Barcodes.UPC)
		}
		if t.Barcodes.Box != "" {
			codes = append(codes, t.Barcodes.Box)
		}
	}
	codes = append(codes, t.Aliases...)
	for _, ref := range t.References {
		if ref.Code != "" {
			codes = append(codes, ref.Code)
		}
	}
	return codes
}

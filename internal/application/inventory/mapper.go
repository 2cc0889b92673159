package inventory

import (
	"github.com/hvaldez/inventario-sucursales/internal/application/dto"
	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
)

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		StoreID:     c.StoreID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// toProductResponse aplana la variante de oferta al par has_offer/offer_price
// que espera el borde HTTP.
func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:             p.ID,
		StoreID:        p.StoreID,
		CategoryID:     p.CategoryID,
		Name:           p.Name,
		Unit:           p.Unit,
		Price:          p.Price,
		PreviousPrice:  p.PreviousPrice,
		PriceUpdatedAt: p.PriceUpdatedAt,
		Stock:          p.Stock,
		ImageURL:       p.ImageURL,
		Description:    p.Description,
		TemplateID:     p.TemplateID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Offer != nil {
		out.HasOffer = true
		price := p.Offer.Price
		out.OfferPrice = &price
	}
	if p.Discount != nil {
		out.Discount = &dto.DiscountDTO{
			MonthsNoInterest: p.Discount.MonthsNoInterest,
			CashOnly:         p.Discount.CashOnly,
			ExpiresAt:        p.Discount.ExpiresAt,
		}
	}
	if p.Barcodes != nil {
		out.Barcodes = &dto.BarcodesDTO{UPC: p.Barcodes.UPC, Box: p.Barcodes.Box}
	}
	for _, s := range p.PriceHistory {
		out.PriceHistory = append(out.PriceHistory, dto.PriceSnapshotDTO{
			Price:      s.Price,
			OfferPrice: s.OfferPrice,
			RecordedAt: s.RecordedAt,
		})
	}
	for _, c := range p.ChangeLog {
		out.ChangeLog = append(out.ChangeLog, dto.ChangeEntryDTO{
			Field: c.Field, From: c.From, To: c.To, At: c.At,
		})
	}
	return out
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		StoreID:        m.StoreID,
		Kind:           m.Kind,
		Reason:         m.Reason,
		Quantity:       m.Quantity,
		PreviousStock:  m.PreviousStock,
		ResultingStock: m.ResultingStock,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}

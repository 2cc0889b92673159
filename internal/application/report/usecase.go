package report

import (
	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
	"github.com/hvaldez/inventario-sucursales/internal/domain"
	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
)

// UseCase arma las secciones de reporte desde los snapshots de la fachada y
// delega el render. La resolución de nombres de categoría ocurre aquí, de
// modo que los builders nunca consultan estado ambiente.
type UseCase struct {
	inv *inventory.UseCase
	pdf DocumentRenderer
}

// NewUseCase construye el caso de uso. pdf puede ser nil si solo se generan
// texto y HTML.
func NewUseCase(inv *inventory.UseCase, pdf DocumentRenderer) *UseCase {
	return &UseCase{inv: inv, pdf: pdf}
}

// Options notas opcionales de encabezado del reporte.
type Options struct {
	Comment     string
	ArrivalNote string
}

// buildSection resuelve el snapshot de una sucursal a renglones de reporte.
func (uc *UseCase) buildSection(store entity.Store, opts Options) StoreSection {
	categories := uc.inv.SnapshotCategories()
	categoryName := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryName[c.ID] = c.Name
	}
	templates := uc.inv.TemplateIndex()

	section := StoreSection{
		StoreName:   store.Name,
		Location:    store.Location,
		Comment:     opts.Comment,
		ArrivalNote: opts.ArrivalNote,
	}
	for _, p := range uc.inv.SnapshotProducts() {
		if p.StoreID != store.ID {
			continue
		}
		row := ProductRow{
			Name:         p.Name,
			CategoryName: categoryName[p.CategoryID],
			Quantity:     p.Stock,
			Price:        p.Price,
		}
		if p.Offer != nil {
			price := p.Offer.Price
			row.OfferPrice = &price
		}
		row.Barcode = productCode(p, templates)
		section.Rows = append(section.Rows, row)
	}
	return section
}

// productCode elige el código a imprimir: UPC propio, código de caja o, en
// su defecto, el SKU maestro de la plantilla.
func productCode(p entity.Product, templates map[string]entity.ProductTemplate) string {
	if p.Barcodes != nil {
		if p.Barcodes.UPC != "" {
			return p.Barcodes.UPC
		}
		if p.Barcodes.Box != "" {
			return p.Barcodes.Box
		}
	}
	if p.TemplateID != "" {
		if tpl, ok := templates[p.TemplateID]; ok {
			return tpl.SKU
		}
	}
	return ""
}

func (uc *UseCase) storeSection(storeID string, opts Options) (StoreSection, error) {
	for _, s := range uc.inv.SnapshotStores() {
		if s.ID == storeID {
			return uc.buildSection(s, opts), nil
		}
	}
	return StoreSection{}, domain.ErrNotFound
}

func (uc *UseCase) allSections() []StoreSection {
	stores := uc.inv.SnapshotStores()
	sections := make([]StoreSection, 0, len(stores))
	for _, s := range stores {
		sections = append(sections, uc.buildSection(s, Options{}))
	}
	return sections
}

// StoreListingHTML listado HTML de una sucursal.
func (uc *UseCase) StoreListingHTML(storeID string, opts Options) (string, error) {
	section, err := uc.storeSection(storeID, opts)
	if err != nil {
		return "", err
	}
	return BuildStoreListingHTML(section), nil
}

// GlobalListingHTML listado HTML consolidado de la cadena.
func (uc *UseCase) GlobalListingHTML() string {
	return BuildGlobalListingHTML(uc.allSections())
}

// StoreListingText listado en texto plano de una sucursal.
func (uc *UseCase) StoreListingText(storeID string, opts Options) (string, error) {
	section, err := uc.storeSection(storeID, opts)
	if err != nil {
		return "", err
	}
	return BuildStoreListingText(section), nil
}

// GlobalListingText listado consolidado en texto plano.
func (uc *UseCase) GlobalListingText() string {
	return BuildGlobalListingText(uc.allSections())
}

// StoreSalesText lista de venta de una sucursal (secciones en orden fijo).
func (uc *UseCase) StoreSalesText(storeID string, opts Options) (string, error) {
	section, err := uc.storeSection(storeID, opts)
	if err != nil {
		return "", err
	}
	return BuildStoreSalesText(section), nil
}

// StoreListingPDF listado PDF de una sucursal vía el renderer.
func (uc *UseCase) StoreListingPDF(storeID string, opts Options) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	section, err := uc.storeSection(storeID, opts)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderStoreListing(section)
}

// GlobalListingPDF listado PDF consolidado vía el renderer.
func (uc *UseCase) GlobalListingPDF() ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.pdf.RenderGlobalListing(uc.allSections())
}

package inventory

import (
	"github.com/hvaldez/inventario-sucursales/internal/application/dto"
	"github.com/hvaldez/inventario-sucursales/internal/domain/search"
)

// SearchProducts filtra el catálogo por texto libre. Con consulta vacía
// devuelve el catálogo completo (comportamiento observado de la caja de
// búsqueda: vacío = sin filtro).
func (uc *UseCase) SearchProducts(query string) *dto.ProductListResponse {
	products := search.FilterByQuery(uc.SnapshotProducts(), query, uc.TemplateIndex())
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *toProductResponse(&products[i]))
	}
	return &dto.ProductListResponse{Items: items}
}

// ScanBarcode resuelve un código de escáner a coincidencias producto +
// sucursal, expandiendo por plantilla compartida.
func (uc *UseCase) ScanBarcode(code string) *dto.StoreMatchListResponse {
	matches := search.FindStoreMatches(uc.SnapshotProducts(), uc.SnapshotStores(), code, uc.TemplateIndex())
	items := make([]dto.StoreMatchResponse, 0, len(matches))
	for i := range matches {
		m := matches[i]
		item := dto.StoreMatchResponse{Product: *toProductResponse(&m.Product), StoreID: m.Product.StoreID}
		if m.Store != nil {
			item.StoreName = m.Store.Name
		}
		items = append(items, item)
	}
	return &dto.StoreMatchListResponse{Code: code, Items: items}
}

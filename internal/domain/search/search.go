// Package search contiene las funciones puras de búsqueda de productos:
// texto libre (caja de búsqueda) y códigos de barras (escáner). No toca
// estado global; recibe snapshots resueltos por el caller.
package search

import (
	"strings"

	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
)

// Normalize recorta espacios y pasa a minúsculas. Cadena vacía si no hay nada.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// productCodes reúne los códigos propios del producto más, si referencia una
// plantilla, el SKU maestro y todos los códigos cruzados de la plantilla.
func productCodes(p entity.Product, templates map[string]entity.ProductTemplate) []string {
	var codes []string
	if p.Barcodes != nil {
		if p.Barcodes.UPC != "" {
			codes = append(codes, p.Barcodes.UPC)
		}
		if p.Barcodes.Box != "" {
			codes = append(codes, p.Barcodes.Box)
		}
	}
	if p.TemplateID != "" {
		if tpl, ok := templates[p.TemplateID]; ok {
			codes = append(codes, tpl.AllCodes()...)
		}
	}
	return codes
}

// ProductMatchesQuery indica si el producto coincide con la consulta por
// subcadena en nombre, descripción o cualquiera de sus códigos.
//
// Una consulta vacía NO coincide con ningún producto, mientras que
// FilterByQuery con consulta vacía devuelve la lista completa. La asimetría
// viene del comportamiento observado en producción y se conserva a propósito.
func ProductMatchesQuery(p entity.Product, query string, templates map[string]entity.ProductTemplate) bool {
	q := Normalize(query)
	if q == "" {
		return false
	}
	if strings.Contains(Normalize(p.Name), q) || strings.Contains(Normalize(p.Description), q) {
		return true
	}
	for _, code := range productCodes(p, templates) {
		if strings.Contains(Normalize(code), q) {
			return true
		}
	}
	return false
}

// FilterByQuery filtra productos por consulta de texto libre conservando el
// orden de entrada. Con consulta vacía devuelve la lista sin tocar.
func FilterByQuery(products []entity.Product, query string, templates map[string]entity.ProductTemplate) []entity.Product {
	if Normalize(query) == "" {
		return products
	}
	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if ProductMatchesQuery(p, query, templates) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FindByBarcode devuelve los productos cuyo conjunto de códigos contiene el
// código exacto (normalizado: sin espacios al borde, sin distinguir
// mayúsculas). No es búsqueda por subcadena.
func FindByBarcode(products []entity.Product, code string, templates map[string]entity.ProductTemplate) []entity.Product {
	c := Normalize(code)
	if c == "" {
		return nil
	}
	var matched []entity.Product
	for _, p := range products {
		for _, pc := range productCodes(p, templates) {
			if Normalize(pc) == c {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// StoreMatch es un producto encontrado por escáner junto con su sucursal.
type StoreMatch struct {
	Product entity.Product
	Store   *entity.Store // nil si la sucursal ya no existe
}

// FindStoreMatches busca por código exacto y resuelve la sucursal de cada
// coincidencia. Además expande por membresía de plantilla: si el código
// pertenece al conjunto de códigos de una plantilla, se incluye todo
// producto que la referencia aunque no tenga el código de forma directa.
// Deduplica por id de producto y conserva el orden de entrada.
func FindStoreMatches(products []entity.Product, stores []entity.Store, code string, templates map[string]entity.ProductTemplate) []StoreMatch {
	c := Normalize(code)
	if c == "" {
		return nil
	}

	// Plantillas cuyo conjunto de códigos contiene el código buscado.
	templateHit := make(map[string]bool, len(templates))
	for id, tpl := range templates {
		for _, tc := range tpl.AllCodes() {
			if Normalize(tc) == c {
				templateHit[id] = true
				break
			}
		}
	}

	storesByID := make(map[string]*entity.Store, len(stores))
	for i := range stores {
		storesByID[stores[i].ID] = &stores[i]
	}

	seen := make(map[string]bool)
	var matches []StoreMatch
	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		hit := p.TemplateID != "" && templateHit[p.TemplateID]
		if !hit {
			for _, pc := range productCodes(p, templates) {
				if Normalize(pc) == c {
					hit = true
					break
				}
			}
		}
		if !hit {
			continue
		}
		seen[p.ID] = true
		matches = append(matches, StoreMatch{Product: p, Store: storesByID[p.StoreID]})
	}
	return matches
}

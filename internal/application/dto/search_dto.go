package dto

// StoreMatchResponse una coincidencia de escáner: producto más su sucursal.
type StoreMatchResponse struct {
	Product   ProductResponse `json:"product"`
	StoreID   string          `json:"store_id"`
	StoreName string          `json:"store_name,omitempty"`
}

// StoreMatchListResponse coincidencias de un código escaneado.
type StoreMatchListResponse struct {
	Code  string               `json:"code"`
	Items []StoreMatchResponse `json:"items"`
}

// TemplateResponse salida de una plantilla de producto.
type TemplateResponse struct {
	ID      string   `json:"id"`
	SKU     string   `json:"sku"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

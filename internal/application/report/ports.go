package report

// DocumentRenderer convierte un listado ya resuelto en un documento binario
// compartible (PDF). Implementado en infrastructure/pdf con Maroto.
type DocumentRenderer interface {
	RenderStoreListing(section StoreSection) ([]byte, error)
	RenderGlobalListing(sections []StoreSection) ([]byte, error)
}

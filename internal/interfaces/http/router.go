package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
	"github.com/hvaldez/inventario-sucursales/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	ReportUC    *report.UseCase
}

// Router registra las rutas de la API. Esta capa es el colaborador externo
// de la fachada: solo traduce HTTP, sin reglas de negocio.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sucursales
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.InventoryUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Métricas y reportes por sucursal
	metricsHandler := NewMetricsHandler(deps.InventoryUC)
	stores.Get("/:id/metrics", metricsHandler.StoreMetrics)
	reportHandler := NewReportHandler(deps.ReportUC)
	stores.Get("/:id/report", reportHandler.StoreListing)

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.InventoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/:id", categoryHandler.Delete)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/stock", productHandler.SetStock)
	products.Put("/:id/offer", productHandler.ToggleOffer)

	// Movimientos de inventario
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	products.Post("/:id/adjust", inventoryHandler.AdjustStock)
	api.Get("/inventory/movements", inventoryHandler.Movements)

	// Búsqueda y escáner
	searchHandler := NewSearchHandler(deps.InventoryUC)
	api.Get("/search", searchHandler.Search)
	api.Get("/scan", searchHandler.Scan)
	api.Get("/templates", searchHandler.Templates)

	// Reporte global
	api.Get("/reports/global", reportHandler.GlobalListing)
}

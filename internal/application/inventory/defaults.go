package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hvaldez/inventario-sucursales/internal/domain/entity"
)

// defaultState arma el dataset inicial: dos sucursales en Monterrey con sus
// categorías base y un catálogo corto. Se usa en el primer arranque y cuando
// el blob persistido está ausente o corrupto. IDs fijos para que el dataset
// sea reproducible entre reinicios y pruebas.
func defaultState() persistedState {
	seeded := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	stores := []entity.Store{
		{
			ID:        "suc-valle-oriente",
			Name:      "Game Center Valle Oriente",
			Location:  "Av. Lázaro Cárdenas 1000, San Pedro Garza García",
			CreatedAt: seeded,
			UpdatedAt: seeded,
		},
		{
			ID:        "suc-plaza-fiesta",
			Name:      "Game Center Plaza Fiesta",
			Location:  "Plaza Fiesta San Agustín, San Pedro Garza García",
			CreatedAt: seeded,
			UpdatedAt: seeded,
		},
	}

	categories := []entity.Category{
		{ID: "cat-vo-consolas", StoreID: "suc-valle-oriente", Name: "Consolas", CreatedAt: seeded},
		{ID: "cat-vo-juegos", StoreID: "suc-valle-oriente", Name: "Juegos", CreatedAt: seeded},
		{ID: "cat-vo-accesorios", StoreID: "suc-valle-oriente", Name: "Accesorios", CreatedAt: seeded},
		{ID: "cat-pf-consolas", StoreID: "suc-plaza-fiesta", Name: "Consolas", CreatedAt: seeded},
		{ID: "cat-pf-juegos", StoreID: "suc-plaza-fiesta", Name: "Juegos", CreatedAt: seeded},
	}

	templates := []entity.ProductTemplate{
		{
			ID:        "tpl-switch-oled",
			SKU:       "NSW-OLED-BLANCO",
			Name:      "Consola Switch OLED Blanca",
			BasePrice: price(8999),
			Barcodes:  &entity.Barcodes{UPC: "045496882280", Box: "BOX-OLED-01"},
			Aliases:   []string{"045496882297"},
			CreatedAt: seeded,
		},
		{
			ID:        "tpl-control-pro",
			SKU:       "NSW-CTRL-PRO",
			Name:      "Control Pro Inalámbrico",
			BasePrice: price(1899),
			Barcodes:  &entity.Barcodes{UPC: "045496430528"},
			CreatedAt: seeded,
		},
	}

	products := []entity.Product{
		{
			ID: "prod-vo-oled", StoreID: "suc-valle-oriente", CategoryID: "cat-vo-consolas",
			Name: "Consola Switch OLED Blanca", Unit: "pieza", Price: price(8999), Stock: 6,
			Barcodes: &entity.Barcodes{UPC: "045496882280", Box: "BOX-OLED-01"},
			TemplateID: "tpl-switch-oled", CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "prod-vo-zelda", StoreID: "suc-valle-oriente", CategoryID: "cat-vo-juegos",
			Name: "Zelda: Tears of the Kingdom", Unit: "pieza", Price: price(1699), Stock: 12,
			Barcodes: &entity.Barcodes{UPC: "045496598624"},
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "prod-vo-mariokart", StoreID: "suc-valle-oriente", CategoryID: "cat-vo-juegos",
			Name: "Mario Kart 8 Deluxe", Unit: "pieza", Price: price(1499), Stock: 3,
			Offer:    &entity.Offer{Price: price(1199)},
			Barcodes: &entity.Barcodes{UPC: "045496590475"},
			CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "prod-vo-control", StoreID: "suc-valle-oriente", CategoryID: "cat-vo-accesorios",
			Name: "Control Pro Inalámbrico", Unit: "pieza", Price: price(1899), Stock: 2,
			TemplateID: "tpl-control-pro", CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "prod-pf-oled", StoreID: "suc-plaza-fiesta", CategoryID: "cat-pf-consolas",
			Name: "Consola Switch OLED Blanca", Unit: "pieza", Price: price(9199), Stock: 4,
			TemplateID: "tpl-switch-oled", CreatedAt: seeded, UpdatedAt: seeded,
		},
		{
			ID: "prod-pf-smash", StoreID: "suc-plaza-fiesta", CategoryID: "cat-pf-juegos",
			Name: "Super Smash Bros Ultimate", Unit: "pieza", Price: price(1599), Stock: 0,
			Barcodes: &entity.Barcodes{UPC: "045496594909"},
			CreatedAt: seeded, UpdatedAt: seeded,
		},
	}

	movements := make([]entity.InventoryMovement, 0, len(products))
	for _, p := range products {
		if p.Stock == 0 {
			continue
		}
		movements = append(movements, entity.InventoryMovement{
			ID:             "mov-inicial-" + p.ID,
			ProductID:      p.ID,
			StoreID:        p.StoreID,
			Kind:           entity.MovementKindInitial,
			Reason:         entity.MovementReasonInitialLoad,
			Quantity:       p.Stock,
			PreviousStock:  0,
			ResultingStock: p.Stock,
			CreatedAt:      seeded,
		})
	}

	return persistedState{
		Stores:     stores,
		Categories: categories,
		Products:   products,
		Templates:  templates,
		Movements:  movements,
	}
}

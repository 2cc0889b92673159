package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
	"github.com/hvaldez/inventario-sucursales/internal/application/report"
	"github.com/hvaldez/inventario-sucursales/internal/infrastructure/bolt"
	infrapdf "github.com/hvaldez/inventario-sucursales/internal/infrastructure/pdf"
	httpRouter "github.com/hvaldez/inventario-sucursales/internal/interfaces/http"
	"github.com/hvaldez/inventario-sucursales/pkg/config"
	"github.com/hvaldez/inventario-sucursales/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	gateway, err := bolt.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer gateway.Close()

	// Bus de eventos: los interesados se suscriben de forma explícita en
	// lugar de observar estado global reactivo.
	bus := EventBus.New()
	subscribeEventLog(bus, log)

	inventoryUC := inventory.NewUseCase(gateway, bus, log)
	if err := inventoryUC.Load(); err != nil {
		log.Fatal().Err(err).Msg("cargar estado de inventario")
	}

	pdfGenerator := infrapdf.NewMarotoListingGenerator()
	reportUC := report.NewUseCase(inventoryUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDF grandes tardan
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "ready": inventoryUC.Ready()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// subscribeEventLog registra un oyente de bitácora para cada tópico del bus.
func subscribeEventLog(bus EventBus.Bus, log *logger.Logger) {
	topics := []string{
		inventory.TopicStoreChanged,
		inventory.TopicCategoryChanged,
		inventory.TopicProductChanged,
		inventory.TopicMovementRecorded,
	}
	for _, topic := range topics {
		t := topic
		_ = bus.Subscribe(t, func(action string, id string) {
			log.Debug().Str("topic", t).Str("action", action).Str("id", id).Msg("evento de inventario")
		})
	}
	_ = bus.Subscribe(inventory.TopicStateLoaded, func(storeCount int) {
		log.Info().Int("stores", storeCount).Msg("estado de inventario cargado")
	})
}

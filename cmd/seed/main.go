// seed restablece el almacén local al dataset por defecto. Útil para dejar
// un dispositivo de demostración en estado conocido o para aislar pruebas
// manuales.
//
// Uso: go run ./cmd/seed [ruta/inventario.db]
// Por defecto usa STORAGE_PATH o inventario.db en el directorio actual.
package main

import (
	"fmt"
	"os"

	"github.com/hvaldez/inventario-sucursales/internal/application/inventory"
	"github.com/hvaldez/inventario-sucursales/internal/infrastructure/bolt"
	"github.com/hvaldez/inventario-sucursales/pkg/config"
	"github.com/hvaldez/inventario-sucursales/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	path := cfg.Storage.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	gateway, err := bolt.Open(path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer gateway.Close()

	uc := inventory.NewUseCase(gateway, nil, log)
	if err := uc.ResetToDefaults(); err != nil {
		log.Fatal().Err(err).Msg("restablecer datos por defecto")
	}

	log.Info().Str("path", path).Msg("almacén restablecido al dataset por defecto")
}

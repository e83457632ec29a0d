package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/adapters/memory"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/adapters/sheets"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/services"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/handlers"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/middleware"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
)

// @title Sistema de Inventario API
// @version 1.0
// @description Acciones de inventario sobre un almacén tabular.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := buildStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize tabular store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := &ports.ServiceContainer{
		Admin:     services.NewAdminService(store),
		Categoria: services.NewCategoriaService(store),
		Producto:  services.NewProductoService(store),
		Ledger:    services.NewLedgerService(store, cfg.Ranges, logger),
		Resumen:   services.NewResumenService(store),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildStore picks the spreadsheet-backed store when one is configured and
// the in-memory store otherwise.
func buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.TabularStore, error) {
	if cfg.SpreadsheetID == "" {
		logger.Info("Using in-memory tabular store")
		return memory.NewStore(logger), nil
	}

	store, err := sheets.NewStore(ctx, cfg.GoogleCredentialsFile, cfg.SpreadsheetID, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Using spreadsheet tabular store", slog.String("spreadsheet_id", cfg.SpreadsheetID))
	return store, nil
}

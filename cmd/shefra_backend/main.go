package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/shefra_converter/internal/adapters/quotes/erapi"
	portsrepo "github.com/SscSPs/shefra_converter/internal/core/ports/repositories"
	"github.com/SscSPs/shefra_converter/internal/core/services"
	"github.com/SscSPs/shefra_converter/internal/handlers"
	"github.com/SscSPs/shefra_converter/internal/middleware"
	"github.com/SscSPs/shefra_converter/internal/platform/config"
	"github.com/SscSPs/shefra_converter/internal/platform/metrics"
	"github.com/SscSPs/shefra_converter/internal/repositories/static"
	"github.com/SscSPs/shefra_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

// @title Shefra Converter API
// @version 1.0
// @description Converts amounts in 12 currencies into Shefras and suggests what they can buy.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appMetrics := metrics.New()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	catalogRepo, err := newCatalogRepository(cfg)
	if err != nil {
		logger.Error("Failed to load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	quoteClient := erapi.NewClient(cfg.RatesAPIURL, erapi.WithRateLimit(cfg.RatesMaxRPS, cfg.RatesBurst))

	repos := portsrepo.RepositoryProvider{
		QuoteSource: quoteClient,
		CatalogRepo: catalogRepo,
	}
	container := services.NewServiceContainer(cfg, repos, appMetrics)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(appMetrics),
		middleware.PosthogMiddleware(posthogClient),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, appMetrics, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("rates_api_url", cfg.RatesAPIURL),
		slog.Duration("rates_fetch_timeout", cfg.RatesFetchTimeout),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newCatalogRepository(cfg *config.Config) (*static.CatalogRepository, error) {
	if cfg.CatalogFile != "" {
		return static.NewCatalogRepositoryFromFile(cfg.CatalogFile)
	}
	return static.NewDefaultCatalogRepository()
}

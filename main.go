package main

import (
	"time"

	"github.com/ColorMeBooth/colorme-backend/config"
	"github.com/ColorMeBooth/colorme-backend/content"
	"github.com/ColorMeBooth/colorme-backend/handlers"
	"github.com/ColorMeBooth/colorme-backend/internal/webhook"
	"github.com/ColorMeBooth/colorme-backend/logger"
	"github.com/ColorMeBooth/colorme-backend/router"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := content.LoadCatalog(cfg.Content.EventsFile)
	if err != nil {
		log.Fatalf("Failed to load event catalog: %v", err)
	}
	log.Infow("Event catalog loaded", "pages", len(catalog.List()))

	relay := webhook.NewClient(
		cfg.Webhook.URL,
		cfg.Webhook.APIKey,
		webhook.WithTimeout(time.Duration(cfg.Webhook.TimeoutSeconds)*time.Second),
	)

	deps := router.Dependencies{
		Config:           cfg,
		QuotationHandler: handlers.NewQuotationHandler(cfg.Webhook, relay, catalog),
		EventsHandler:    handlers.NewEventsHandler(catalog),
		HealthHandler:    handlers.NewHealthHandler(Version),
		Logger:           log,
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

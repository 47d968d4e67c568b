package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brewrain/brewrain-backend/config"
	"github.com/brewrain/brewrain-backend/internal/app/controller"
	"github.com/brewrain/brewrain-backend/internal/app/repository"
	"github.com/brewrain/brewrain-backend/internal/app/service"
	"github.com/brewrain/brewrain-backend/internal/catalog"
	"github.com/brewrain/brewrain-backend/internal/middleware"
	"github.com/brewrain/brewrain-backend/internal/router"
	"github.com/brewrain/brewrain-backend/internal/scheduler"
	"github.com/brewrain/brewrain-backend/pkg/logger"
	"github.com/brewrain/brewrain-backend/pkg/whatsapp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting "+cfg.Store.Name+" Order Backend", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Load the catalog once into read-only state
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", err)
	}

	// Initialize repositories
	cartRepo := repository.NewCartRepository()

	// Initialize services
	catalogService := service.NewCatalogService(cat)
	cartService := service.NewCartService(cartRepo, cat)
	orderService := service.NewOrderService(cartRepo, cfg.Store.Name, whatsapp.LinkBuilder{
		BaseURL:      cfg.WhatsApp.BaseURL,
		SellerNumber: cfg.WhatsApp.SellerNumber,
	})

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Cart.SessionTTL)

	// Setup router
	r := router.NewRouter(
		catalogController,
		cartController,
		orderController,
		sessionMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the abandoned-cart sweeper
	sweeper := scheduler.NewCartSweeper(cartRepo, cfg.Cart.SweepSchedule, cfg.Cart.SessionTTL)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("Failed to start cart sweeper", err)
	}
	defer sweeper.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

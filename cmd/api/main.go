package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Holly45vd/products/internal/authz"
	"github.com/Holly45vd/products/internal/config"
	"github.com/Holly45vd/products/internal/database"
	"github.com/Holly45vd/products/internal/handler"
	"github.com/Holly45vd/products/internal/repository"
	"github.com/Holly45vd/products/internal/router"
	"github.com/Holly45vd/products/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting products API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	client, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from database")
		}
	}()

	db := client.Database(cfg.Database.Database)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db, logger)
	savedRepo := repository.NewSavedRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, savedRepo, logger)
	savedService := service.NewSavedService(productRepo, savedRepo, logger)
	importService := service.NewImportService(productRepo, logger)
	bulkService := service.NewBulkService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(catalogService, logger)
	savedHandler := handler.NewSavedHandler(savedService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	adminHandler := handler.NewAdminHandler(importService, bulkService, logger)

	// Admin allow-list
	policy := authz.NewPolicy(cfg.Auth.AdminUIDs, cfg.Auth.AdminEmails)

	// Initialize router
	mux := router.New(productHandler, savedHandler, orderHandler, adminHandler, policy, cfg.Auth.JWTSecret, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

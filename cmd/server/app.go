package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PanDora7855/task-manager-backend/internal/config"
	"github.com/PanDora7855/task-manager-backend/internal/store"
	"github.com/PanDora7855/task-manager-backend/internal/store/memory"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore
}

// newApplication creates a new application instance with all dependencies
// initialized. The task store starts seeded with sample records; nothing
// is persisted beyond the process lifetime.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		taskStore: memory.NewSeededTaskStore(),
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// The in-memory collection is simply discarded.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}

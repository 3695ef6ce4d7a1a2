// Package main implements the entry point for the task manager API server,
// which serves CRUD operations over an in-memory task collection.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/PanDora7855/task-manager-backend/internal/config"
	"github.com/PanDora7855/task-manager-backend/internal/platform/logger"
)

// main initializes configuration, sets up logging, injects dependencies,
// and starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger := logger.Setup(cfg.Server)

	// Log configuration details using structured logging
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger), nil
}

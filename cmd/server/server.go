package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may keep running
// once a shutdown has been requested.
const shutdownTimeout = 10 * time.Second

// startHTTPServer runs the HTTP server until the context is canceled or a
// SIGINT/SIGTERM arrives, then drains in-flight requests. The task
// collection lives only in memory, so shutdown discards it; there is
// nothing to flush or close besides the listener.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	// ListenAndServe blocks; surface its failure through a channel so
	// the select below can react to it alongside shutdown triggers.
	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	select {
	case sig := <-shutdownCh:
		app.logger.Info("Shutdown signal received, draining requests",
			"signal", sig.String(),
			"timeout", shutdownTimeout.String())
	case <-ctx.Done():
		app.logger.Info("Context canceled, draining requests")
	case err := <-errCh:
		app.logger.Error("Server failed", "error", err)
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()

	app.logger.Info("Server stopped; in-memory task collection discarded")
	return nil
}

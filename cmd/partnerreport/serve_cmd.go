package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/partner-report/internal/adapters/http"
)

const serverShutdownTimeout = 15 * time.Second

// ServeCmd runs the HTTP server until the process is signaled.
type ServeCmd struct{}

// Run starts the server and blocks until ctx is canceled or the server
// fails, then drains in-flight requests and flushes telemetry.
func (c *ServeCmd) Run(ctx context.Context, g *Globals, s *streams) error {
	injector, otel, err := bootstrap(ctx, g, s)
	if err != nil {
		return err
	}
	logger := do.MustInvoke[*slog.Logger](injector)
	defer flushTelemetry(otel, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal", slog.Any("cause", context.Cause(ctx)))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	if err := <-serverErr; err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

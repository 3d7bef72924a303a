package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/partner-report/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

// RunCmd applies one command stream and prints the report block.
type RunCmd struct {
	Input string `arg:"" optional:"" default:"-" help:"Command stream: '-' for stdin, a file path, or an http(s) URL."`
}

// Run executes a single batch. The report is written to standard output only
// when every line applied cleanly.
func (c *RunCmd) Run(ctx context.Context, g *Globals, s *streams) error {
	injector, otel, err := bootstrap(ctx, g, s)
	if err != nil {
		return err
	}
	logger := do.MustInvoke[*slog.Logger](injector)
	defer flushTelemetry(otel, logger)

	runs, err := do.Invoke[ports.RunService](injector)
	if err != nil {
		return fmt.Errorf("resolving run service: %w", err)
	}
	src := do.MustInvoke[ports.CommandSource](injector)

	r, err := src.Open(ctx, c.Input)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	rep, err := runs.Run(ctx, r)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(s.out, rep.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// flushTelemetry gives exporters a bounded window to drain.
func flushTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

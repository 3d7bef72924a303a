package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/partner-report/internal/domain/report"
)

// RunService defines the service port for one complete batch: consume a
// command stream into a fresh store and report on it.
// Implemented by the application layer; called by the CLI and HTTP adapters.
type RunService interface {
	// Run applies every line of r in order and returns the relationship
	// report. The first failing line aborts the run and no report is
	// returned. The store used by the run is discarded before Run returns.
	Run(ctx context.Context, r io.Reader) (*report.Report, error)
}

// CommandSource opens the command stream named by a location.
// Implemented by the source adapter; called by the CLI.
type CommandSource interface {
	// Open returns a reader over the command stream. The caller must close it.
	// Returns domain.ErrNotFound if a file location does not exist and
	// domain.ErrUnavailable if a remote location cannot be fetched.
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

package sqlite

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// EngineName is the configuration value selecting this engine.
const EngineName = "sqlite"

// Factory opens a new in-memory SQLite store per run.
type Factory struct{}

// Compile-time interface check.
var _ ports.StoreFactory = Factory{}

// NewFactory creates a sqlite store factory.
func NewFactory() Factory {
	return Factory{}
}

// Open returns a new empty store with the schema applied.
func (Factory) Open(ctx context.Context) (ports.EntityStore, error) {
	s, err := Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return s, nil
}

// Engine returns "sqlite".
func (Factory) Engine() string {
	return EngineName
}

// Name identifies the factory in readiness checks.
func (Factory) Name() string {
	return "store"
}

// HealthCheck opens a throwaway database, pings it, and closes it.
func (Factory) HealthCheck(ctx context.Context) error {
	s, err := Open(ctx)
	if err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("sqlite: ping: %w", err)
	}
	return nil
}

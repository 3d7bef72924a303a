package memory

import (
	"context"

	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// EngineName is the configuration value selecting this engine.
const EngineName = "memory"

// Factory opens a new memory store per run.
type Factory struct{}

// Compile-time interface check.
var _ ports.StoreFactory = Factory{}

// NewFactory creates a memory store factory.
func NewFactory() Factory {
	return Factory{}
}

// Open returns a new empty store.
func (Factory) Open(_ context.Context) (ports.EntityStore, error) {
	return New(), nil
}

// Engine returns "memory".
func (Factory) Engine() string {
	return EngineName
}

// Name identifies the factory in readiness checks.
func (Factory) Name() string {
	return "store"
}

// HealthCheck only fails when ctx is done; the memory engine has no
// external resources.
func (Factory) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// Package store selects the entity store engine named in configuration.
package store

import (
	"fmt"

	"github.com/jsamuelsen11/partner-report/internal/adapters/store/memory"
	"github.com/jsamuelsen11/partner-report/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// Factory is a StoreFactory that can also report its health.
type Factory interface {
	ports.StoreFactory
	ports.HealthChecker
}

// NewFactory returns the factory for the named engine.
func NewFactory(engine string) (Factory, error) {
	switch engine {
	case memory.EngineName:
		return memory.NewFactory(), nil
	case sqlite.EngineName:
		return sqlite.NewFactory(), nil
	default:
		return nil, fmt.Errorf("unknown store engine %q", engine)
	}
}

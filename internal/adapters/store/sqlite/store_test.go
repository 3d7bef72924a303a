package sqlite_test

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/partner-report/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/partner-report/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

func TestStore_Conformance(t *testing.T) {
	t.Parallel()

	storetest.Run(t, func(t *testing.T) ports.EntityStore {
		s, err := sqlite.Open(context.Background())
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		return s
	})
}

func TestStore_DatabasesAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	first, err := sqlite.Open(ctx)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = first.Close() })

	second, err := sqlite.Open(ctx)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	if _, err := first.InsertCompany(ctx, "Globex"); err != nil {
		t.Fatalf("InsertCompany() error = %v", err)
	}

	st, err := second.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if st.Companies != 0 {
		t.Errorf("second store Companies = %d, want 0", st.Companies)
	}
}

func TestFactory_HealthCheck(t *testing.T) {
	t.Parallel()

	f := sqlite.NewFactory()
	if err := f.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
	if f.Engine() != sqlite.EngineName {
		t.Errorf("Engine() = %q, want %q", f.Engine(), sqlite.EngineName)
	}
	if f.Name() != "store" {
		t.Errorf("Name() = %q, want %q", f.Name(), "store")
	}
}

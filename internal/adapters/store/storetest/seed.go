package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/domain/command"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// seed applies command lines directly to s and returns the id assigned to
// each created entity keyed by name. Contacts are not keyed.
func seed(t *testing.T, s ports.EntityStore, lines ...string) map[string]int64 {
	t.Helper()

	ctx := context.Background()
	ids := make(map[string]int64)

	for _, line := range lines {
		cmd, err := command.Parse(line)
		if err != nil {
			t.Fatalf("seed: parsing %q: %v", line, err)
		}

		switch c := cmd.(type) {
		case command.Partner:
			ids[c.Name], err = s.InsertPartner(ctx, c.Name)
		case command.Company:
			ids[c.Name], err = s.InsertCompany(ctx, c.Name)
		case command.Employee:
			ids[c.Name], err = s.InsertEmployee(ctx, c.Name, c.Company)
		case command.Contact:
			_, err = s.InsertContact(ctx, c.Employee, c.Partner, c.Type)
		}
		if err != nil {
			t.Fatalf("seed: applying %q: %v", line, err)
		}
	}

	return ids
}

func requireDuplicate(t *testing.T, err error, kind domain.Kind, name string) {
	t.Helper()

	var derr *domain.DuplicateKeyError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want *DuplicateKeyError", err)
	}
	if derr.Kind != kind || derr.Name != name {
		t.Errorf("DuplicateKeyError = {%q, %q}, want {%q, %q}", derr.Kind, derr.Name, kind, name)
	}
}

func requireNotFound(t *testing.T, err error, kind domain.Kind, name string) {
	t.Helper()

	var nerr *domain.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if nerr.Kind != kind || nerr.Name != name {
		t.Errorf("NotFoundError = {%q, %q}, want {%q, %q}", nerr.Kind, nerr.Name, kind, name)
	}
}

// mustInsert returns a function that fails the test on an insert error and
// otherwise yields the new id, so it can wrap an insert call directly.
func mustInsert(t *testing.T) func(int64, error) int64 {
	t.Helper()
	return func(id int64, err error) int64 {
		t.Helper()
		if err != nil {
			t.Fatalf("insert error = %v", err)
		}
		return id
	}
}

func mustStats(t *testing.T, s ports.EntityStore) graph.Stats {
	t.Helper()

	st, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	return st
}

package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/partner-report/internal/adapters/store/memory"
	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/domain/command"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
	"github.com/jsamuelsen11/partner-report/mocks"
)

// referenceInput is the canonical example stream; its report is
// referenceReport.
const referenceInput = `Partner Chris
Partner Molly
Company Globex
Company ACME
Employee Laurie Globex
Company Hooli
Employee Abdi Hooli
Employee Jamie Globex
Contact Laurie Chris email
Contact Laurie Molly call
Partner Rezzan
Contact Abdi Molly email
Contact Laurie Chris coffee
`

const referenceReport = "ACME: No current relationship\nGlobex: Chris (2)\nHooli: Molly (1)\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// --- Apply ---

func TestInterpreter_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cmd   command.Command
		setup func(*mocks.MockEntityStore)
	}{
		{
			name: "partner",
			cmd:  command.Partner{Name: "Chris"},
			setup: func(m *mocks.MockEntityStore) {
				m.EXPECT().InsertPartner(mock.Anything, "Chris").Return(1, nil)
			},
		},
		{
			name: "company",
			cmd:  command.Company{Name: "Globex"},
			setup: func(m *mocks.MockEntityStore) {
				m.EXPECT().InsertCompany(mock.Anything, "Globex").Return(1, nil)
			},
		},
		{
			name: "employee",
			cmd:  command.Employee{Name: "Laurie", Company: "Globex"},
			setup: func(m *mocks.MockEntityStore) {
				m.EXPECT().InsertEmployee(mock.Anything, "Laurie", "Globex").Return(1, nil)
			},
		},
		{
			name: "contact",
			cmd:  command.Contact{Employee: "Laurie", Partner: "Chris", Type: graph.ContactCoffee},
			setup: func(m *mocks.MockEntityStore) {
				m.EXPECT().InsertContact(mock.Anything, "Laurie", "Chris", graph.ContactCoffee).Return(1, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockEntityStore(t)
			tt.setup(store)

			in := NewInterpreter(discardLogger(), nil)
			if err := in.Apply(context.Background(), store, tt.cmd); err != nil {
				t.Fatalf("Apply() error = %v, want nil", err)
			}
		})
	}
}

func TestInterpreter_Apply_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEntityStore(t)
	want := &domain.NotFoundError{Kind: domain.KindCompany, Name: "Initech"}
	store.EXPECT().InsertEmployee(mock.Anything, "Milton", "Initech").Return(0, want)

	in := NewInterpreter(discardLogger(), nil)
	err := in.Apply(context.Background(), store, command.Employee{Name: "Milton", Company: "Initech"})

	if !errors.Is(err, want) {
		t.Errorf("Apply() error = %v, want %v", err, want)
	}
}

// --- Consume ---

func TestInterpreter_Consume_ReferenceScenario(t *testing.T) {
	t.Parallel()

	store := memory.New()
	in := NewInterpreter(discardLogger(), nil)

	n, err := in.Consume(context.Background(), store, strings.NewReader(referenceInput))
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if n != 13 {
		t.Errorf("Consume() = %d lines, want 13", n)
	}

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := graph.Stats{Partners: 3, Companies: 3, Employees: 3, Contacts: 4}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestInterpreter_Consume_Lines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines int
	}{
		{name: "empty input", input: "", wantLines: 0},
		{name: "final line without newline", input: "Partner Chris\nCompany Globex", wantLines: 2},
		{name: "crlf line endings", input: "Partner Chris\r\nCompany Globex\r\n", wantLines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := memory.New()
			in := NewInterpreter(discardLogger(), nil)

			n, err := in.Consume(context.Background(), store, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Consume() error = %v", err)
			}
			if n != tt.wantLines {
				t.Errorf("Consume() = %d lines, want %d", n, tt.wantLines)
			}
		})
	}
}

func TestInterpreter_Consume_CRLFNamesAreClean(t *testing.T) {
	t.Parallel()

	store := memory.New()
	in := NewInterpreter(discardLogger(), nil)

	if _, err := in.Consume(context.Background(), store, strings.NewReader("Company Globex\r\n")); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	companies, err := store.ListCompanies(context.Background())
	if err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}
	if len(companies) != 1 || companies[0].Name != "Globex" {
		t.Errorf("ListCompanies() = %+v, want one company named Globex", companies)
	}
}

func TestInterpreter_Consume_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantIs    error
		wantMsg   string
		wantCount int
	}{
		{
			name:      "unknown verb",
			input:     "Partner Chris\nLunch Chris Laurie\n",
			wantLine:  2,
			wantIs:    domain.ErrUnknownCommand,
			wantMsg:   `line 2: unknown command type: "Lunch"`,
			wantCount: 1,
		},
		{
			name:      "empty line",
			input:     "Partner Chris\n\nPartner Molly\n",
			wantLine:  2,
			wantIs:    domain.ErrUnknownCommand,
			wantMsg:   `line 2: unknown command type: ""`,
			wantCount: 1,
		},
		{
			name:      "lowercase verb",
			input:     "partner Chris\n",
			wantLine:  1,
			wantIs:    domain.ErrUnknownCommand,
			wantCount: 0,
		},
		{
			name:      "wrong arity",
			input:     "Employee Laurie\n",
			wantLine:  1,
			wantIs:    domain.ErrMalformedCommand,
			wantCount: 0,
		},
		{
			name:      "duplicate partner",
			input:     "Partner Chris\nPartner Chris\n",
			wantLine:  2,
			wantIs:    domain.ErrDuplicateKey,
			wantCount: 1,
		},
		{
			name:      "employee of unknown company",
			input:     "Employee Laurie Globex\n",
			wantLine:  1,
			wantIs:    domain.ErrNotFound,
			wantCount: 0,
		},
		{
			name:      "contact with unknown employee",
			input:     "Partner Chris\nContact Laurie Chris email\n",
			wantLine:  2,
			wantIs:    domain.ErrNotFound,
			wantCount: 1,
		},
		{
			name:      "invalid contact type before lookups",
			input:     "Contact Nobody Nobody lunch\n",
			wantLine:  1,
			wantIs:    domain.ErrInvalidValue,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := memory.New()
			in := NewInterpreter(discardLogger(), nil)

			n, err := in.Consume(context.Background(), store, strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if n != tt.wantCount {
				t.Errorf("Consume() = %d lines, want %d", n, tt.wantCount)
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}

			var lerr *domain.LineError
			if !errors.As(err, &lerr) {
				t.Fatalf("error = %v, want *LineError", err)
			}
			if lerr.Line != tt.wantLine {
				t.Errorf("LineError.Line = %d, want %d", lerr.Line, tt.wantLine)
			}

			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestInterpreter_Consume_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	store := memory.New()
	in := NewInterpreter(discardLogger(), nil)

	input := "Partner Chris\nBogus\nPartner Molly\n"
	if _, err := in.Consume(context.Background(), store, strings.NewReader(input)); err == nil {
		t.Fatal("expected error, got nil")
	}

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Partners != 1 {
		t.Errorf("Partners = %d, want 1 (lines after the failure must not be applied)", stats.Partners)
	}
}

func TestInterpreter_Consume_LineTooLong(t *testing.T) {
	t.Parallel()

	store := memory.New()
	in := NewInterpreter(discardLogger(), nil)

	input := "Partner " + strings.Repeat("x", maxLineBytes+1) + "\n"
	_, err := in.Consume(context.Background(), store, strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, domain.ErrUnknownCommand) {
		t.Errorf("error = %v, want a read error rather than ErrUnknownCommand", err)
	}
}

func TestInterpreter_Consume_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := mocks.NewMockEntityStore(t)
	in := NewInterpreter(discardLogger(), nil)

	_, err := in.Consume(ctx, store, strings.NewReader("Partner Chris\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Consume() error = %v, want context.Canceled", err)
	}
}

func TestNewInterpreter_NilDependencies(t *testing.T) {
	t.Parallel()

	in := NewInterpreter(nil, nil)
	if in.logger == nil {
		t.Error("NewInterpreter(nil logger) should create a no-op logger, got nil")
	}
	if in.metrics == nil {
		t.Error("NewInterpreter(nil metrics) should create no-op metrics, got nil")
	}
}

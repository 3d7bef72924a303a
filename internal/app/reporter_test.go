package app

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/partner-report/internal/adapters/store/memory"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
	"github.com/jsamuelsen11/partner-report/internal/domain/report"
	"github.com/jsamuelsen11/partner-report/mocks"
)

func loadStore(t *testing.T, input string) *memory.Store {
	t.Helper()

	store := memory.New()
	in := NewInterpreter(discardLogger(), nil)
	if _, err := in.Consume(context.Background(), store, strings.NewReader(input)); err != nil {
		t.Fatalf("loading store: %v", err)
	}
	return store
}

func TestReporter_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "reference scenario",
			input: referenceInput,
			want:  referenceReport,
		},
		{
			name:  "no companies",
			input: "Partner Chris\n",
			want:  "",
		},
		{
			name:  "employees without contacts",
			input: "Company Initech\nEmployee Milton Initech\n",
			want:  "Initech: No current relationship\n",
		},
		{
			name: "tie resolves to earliest partner",
			input: "Partner Molly\nPartner Chris\nCompany Globex\nEmployee Laurie Globex\n" +
				"Contact Laurie Chris email\nContact Laurie Molly call\n",
			want: "Globex: Molly (1)\n",
		},
		{
			name: "counts span employees",
			input: "Partner Chris\nPartner Molly\nCompany Globex\nEmployee Laurie Globex\nEmployee Jamie Globex\n" +
				"Contact Laurie Molly email\nContact Jamie Chris call\nContact Jamie Chris coffee\n",
			want: "Globex: Chris (2)\n",
		},
		{
			name:  "byte order sorting",
			input: "Company beta\nCompany Alpha\nCompany alpha\n",
			want:  "Alpha: No current relationship\nalpha: No current relationship\nbeta: No current relationship\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := loadStore(t, tt.input)
			rp := NewReporter(4, discardLogger())

			got, err := rp.Report(context.Background(), store)
			if err != nil {
				t.Fatalf("Report() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Report() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestReporter_Report_Idempotent(t *testing.T) {
	t.Parallel()

	store := loadStore(t, referenceInput)
	rp := NewReporter(2, discardLogger())

	first, err := rp.Report(context.Background(), store)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	for range 5 {
		again, err := rp.Report(context.Background(), store)
		if err != nil {
			t.Fatalf("Report() error = %v", err)
		}
		if again.String() != first.String() {
			t.Errorf("Report() = %q, want %q", again.String(), first.String())
		}
	}
}

func TestReporter_Report_KeepsCompanyOrderWithManyWorkers(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEntityStore(t)
	store.EXPECT().ListCompanies(mock.Anything).Return([]graph.Company{
		{ID: 3, Name: "ACME"},
		{ID: 1, Name: "Globex"},
		{ID: 2, Name: "Hooli"},
	}, nil)
	store.EXPECT().ContactCountsForCompany(mock.Anything, int64(3)).Return(nil, nil)
	store.EXPECT().ContactCountsForCompany(mock.Anything, int64(1)).Return([]graph.ContactCount{
		{PartnerID: 1, Partner: "Chris", Count: 2},
		{PartnerID: 2, Partner: "Molly", Count: 1},
	}, nil)
	store.EXPECT().ContactCountsForCompany(mock.Anything, int64(2)).Return([]graph.ContactCount{
		{PartnerID: 2, Partner: "Molly", Count: 1},
	}, nil)

	rp := NewReporter(8, discardLogger())
	got, err := rp.Report(context.Background(), store)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	want := []report.Relationship{
		{Company: "ACME"},
		{Company: "Globex", Partner: "Chris", Count: 2},
		{Company: "Hooli", Partner: "Molly", Count: 1},
	}
	if !slices.Equal(got.Relationships, want) {
		t.Errorf("Relationships = %+v, want %+v", got.Relationships, want)
	}
}

func TestReporter_Report_ListError(t *testing.T) {
	t.Parallel()

	errDown := errors.New("engine down")
	store := mocks.NewMockEntityStore(t)
	store.EXPECT().ListCompanies(mock.Anything).Return(nil, errDown)

	rp := NewReporter(1, discardLogger())
	_, err := rp.Report(context.Background(), store)

	if !errors.Is(err, errDown) {
		t.Errorf("Report() error = %v, want %v", err, errDown)
	}
}

func TestReporter_Report_CountError(t *testing.T) {
	t.Parallel()

	errDown := errors.New("engine down")
	store := mocks.NewMockEntityStore(t)
	store.EXPECT().ListCompanies(mock.Anything).Return([]graph.Company{{ID: 1, Name: "Globex"}}, nil)
	store.EXPECT().ContactCountsForCompany(mock.Anything, int64(1)).Return(nil, errDown)

	rp := NewReporter(1, discardLogger())
	_, err := rp.Report(context.Background(), store)

	if !errors.Is(err, errDown) {
		t.Fatalf("Report() error = %v, want %v", err, errDown)
	}
	if !strings.Contains(err.Error(), `company "Globex"`) {
		t.Errorf("error = %q, want it to name company \"Globex\"", err.Error())
	}
}

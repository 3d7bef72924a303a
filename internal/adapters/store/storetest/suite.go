// Package storetest provides a conformance suite that every ports.EntityStore
// implementation must pass. Engine packages call Run from their own tests.
package storetest

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// OpenFunc returns a new empty store. The suite closes it.
type OpenFunc func(t *testing.T) ports.EntityStore

// Run executes the conformance suite against stores produced by open.
func Run(t *testing.T, open OpenFunc) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s ports.EntityStore)
	}{
		{"ids are monotonic per collection", testMonotonicIDs},
		{"duplicate names are rejected without partial rows", testDuplicates},
		{"employee requires existing company", testEmployeeRequiresCompany},
		{"contact requires existing employee and partner", testContactRequiresReferences},
		{"contact type is validated before lookups", testContactTypeFirst},
		{"insert errors carry only the domain message", testInsertErrorMessages},
		{"companies are listed by name", testListCompanies},
		{"contact counts join through employees", testContactCounts},
		{"stats count every collection", testStats},
		{"concurrent reads after writes", testConcurrentReads},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := open(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func testMonotonicIDs(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()

	first := mustInsert(t)(s.InsertPartner(ctx, "Chris"))
	second := mustInsert(t)(s.InsertPartner(ctx, "Molly"))
	company := mustInsert(t)(s.InsertCompany(ctx, "Globex"))

	if first != 1 || second != 2 {
		t.Errorf("partner ids = %d, %d, want 1, 2", first, second)
	}
	if company != 1 {
		t.Errorf("company id = %d, want 1 (ids are assigned per collection)", company)
	}
}

func testDuplicates(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()
	seed(t, s, "Partner Chris", "Company Globex", "Employee Laurie Globex")

	_, err := s.InsertPartner(ctx, "Chris")
	requireDuplicate(t, err, domain.KindPartner, "Chris")

	_, err = s.InsertCompany(ctx, "Globex")
	requireDuplicate(t, err, domain.KindCompany, "Globex")

	_, err = s.InsertEmployee(ctx, "Laurie", "Globex")
	requireDuplicate(t, err, domain.KindEmployee, "Laurie")

	want := graph.Stats{Partners: 1, Companies: 1, Employees: 1}
	if st := mustStats(t, s); st != want {
		t.Errorf("Stats() = %+v, want %+v", st, want)
	}

	if next := mustInsert(t)(s.InsertPartner(ctx, "Molly")); next != 2 {
		t.Errorf("next partner id = %d, want 2 (failed insert must not consume an id)", next)
	}
}

func testEmployeeRequiresCompany(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()

	_, err := s.InsertEmployee(ctx, "Laurie", "Globex")
	requireNotFound(t, err, domain.KindCompany, "Globex")

	// Unknown company is reported even when the employee name is taken.
	seed(t, s, "Company Hooli", "Employee Abdi Hooli")
	_, err = s.InsertEmployee(ctx, "Abdi", "Globex")
	requireNotFound(t, err, domain.KindCompany, "Globex")

	if st := mustStats(t, s); st.Employees != 1 {
		t.Errorf("Employees = %d, want 1", st.Employees)
	}
}

func testContactRequiresReferences(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()
	seed(t, s, "Partner Chris", "Company Globex", "Employee Laurie Globex")

	_, err := s.InsertContact(ctx, "Jamie", "Chris", graph.ContactEmail)
	requireNotFound(t, err, domain.KindEmployee, "Jamie")

	_, err = s.InsertContact(ctx, "Laurie", "Molly", graph.ContactEmail)
	requireNotFound(t, err, domain.KindPartner, "Molly")

	if st := mustStats(t, s); st.Contacts != 0 {
		t.Errorf("Contacts = %d, want 0", st.Contacts)
	}
}

func testContactTypeFirst(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()

	_, err := s.InsertContact(ctx, "Nobody", "Nobody", graph.ContactType("invalid"))
	if !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("error = %v, want ErrInvalidValue", err)
	}

	var verr *domain.InvalidValueError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *InvalidValueError", err)
	}
	if verr.Field != graph.FieldContactType || verr.Value != "invalid" {
		t.Errorf("InvalidValueError = {%q, %q}, want {%q, %q}", verr.Field, verr.Value, graph.FieldContactType, "invalid")
	}
}

func testInsertErrorMessages(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()
	seed(t, s, "Partner Chris", "Company Globex", "Employee Laurie Globex")

	tests := []struct {
		name   string
		insert func() (int64, error)
		want   string
	}{
		{
			name:   "duplicate partner",
			insert: func() (int64, error) { return s.InsertPartner(ctx, "Chris") },
			want:   `duplicate key: partner "Chris" already exists`,
		},
		{
			name:   "duplicate company",
			insert: func() (int64, error) { return s.InsertCompany(ctx, "Globex") },
			want:   `duplicate key: company "Globex" already exists`,
		},
		{
			name:   "unknown company",
			insert: func() (int64, error) { return s.InsertEmployee(ctx, "Jamie", "B") },
			want:   `company "B": not found`,
		},
		{
			name:   "duplicate employee",
			insert: func() (int64, error) { return s.InsertEmployee(ctx, "Laurie", "Globex") },
			want:   `duplicate key: employee "Laurie" already exists`,
		},
		{
			name:   "unknown employee",
			insert: func() (int64, error) { return s.InsertContact(ctx, "Jamie", "Chris", graph.ContactCall) },
			want:   `employee "Jamie": not found`,
		},
		{
			name:   "unknown partner",
			insert: func() (int64, error) { return s.InsertContact(ctx, "Laurie", "Molly", graph.ContactCall) },
			want:   `partner "Molly": not found`,
		},
	}

	for _, tt := range tests {
		_, err := tt.insert()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("%s: error = %q, want %q", tt.name, err.Error(), tt.want)
		}
	}
}

func testListCompanies(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()

	companies, err := s.ListCompanies(ctx)
	if err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("ListCompanies() on empty store = %v, want none", companies)
	}

	seed(t, s, "Company Hooli", "Company Globex", "Company ACME", "Company acme")

	companies, err = s.ListCompanies(ctx)
	if err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}

	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	if want := []string{"ACME", "Globex", "Hooli", "acme"}; !slices.Equal(names, want) {
		t.Fatalf("company names = %v, want %v", names, want)
	}
	if companies[0].ID != 3 {
		t.Errorf("ACME id = %d, want 3", companies[0].ID)
	}
}

func testContactCounts(t *testing.T, s ports.EntityStore) {
	ids := seed(t, s,
		"Partner Chris",
		"Partner Molly",
		"Company Globex",
		"Company ACME",
		"Employee Laurie Globex",
		"Company Hooli",
		"Employee Abdi Hooli",
		"Employee Jamie Globex",
		"Contact Laurie Chris email",
		"Contact Laurie Molly call",
		"Partner Rezzan",
		"Contact Abdi Molly email",
		"Contact Laurie Chris coffee",
		"Contact Jamie Molly coffee",
	)

	tests := []struct {
		company int64
		name    string
		want    []graph.ContactCount
	}{
		{
			company: ids["Globex"],
			name:    "Globex",
			want: []graph.ContactCount{
				{PartnerID: ids["Chris"], Partner: "Chris", Count: 2},
				{PartnerID: ids["Molly"], Partner: "Molly", Count: 2},
			},
		},
		{
			company: ids["Hooli"],
			name:    "Hooli",
			want:    []graph.ContactCount{{PartnerID: ids["Molly"], Partner: "Molly", Count: 1}},
		},
		{company: ids["ACME"], name: "ACME", want: []graph.ContactCount{}},
		{company: 999, name: "unknown", want: []graph.ContactCount{}},
	}

	for _, tt := range tests {
		got, err := s.ContactCountsForCompany(context.Background(), tt.company)
		if err != nil {
			t.Fatalf("ContactCountsForCompany(%s) error = %v", tt.name, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ContactCountsForCompany(%s) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func testStats(t *testing.T, s ports.EntityStore) {
	seed(t, s,
		"Partner Chris",
		"Partner Molly",
		"Company Globex",
		"Employee Laurie Globex",
		"Contact Laurie Chris email",
		"Contact Laurie Chris call",
		"Contact Laurie Molly coffee",
	)

	want := graph.Stats{Partners: 2, Companies: 1, Employees: 1, Contacts: 3}
	if st := mustStats(t, s); st != want {
		t.Errorf("Stats() = %+v, want %+v", st, want)
	}
}

func testConcurrentReads(t *testing.T, s ports.EntityStore) {
	ctx := context.Background()
	ids := seed(t, s,
		"Partner Chris",
		"Company Globex",
		"Company Hooli",
		"Employee Laurie Globex",
		"Employee Abdi Hooli",
		"Contact Laurie Chris email",
		"Contact Abdi Chris call",
	)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for range 10 {
		for _, company := range []string{"Globex", "Hooli"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				counts, err := s.ContactCountsForCompany(ctx, ids[company])
				if err != nil {
					errs <- err
					return
				}
				if len(counts) != 1 || counts[0].Count != 1 {
					errs <- errors.New(company + ": unexpected counts")
				}
			}()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

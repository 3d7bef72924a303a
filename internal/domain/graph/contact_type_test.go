package graph

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/partner-report/internal/domain"
)

func TestContactType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  ContactType
		want bool
	}{
		{name: "email is valid", typ: ContactEmail, want: true},
		{name: "call is valid", typ: ContactCall, want: true},
		{name: "coffee is valid", typ: ContactCoffee, want: true},
		{name: "empty string is invalid", typ: "", want: false},
		{name: "unknown value is invalid", typ: "fax", want: false},
		{name: "case sensitive", typ: "Email", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("ContactType(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestParseContactType(t *testing.T) {
	t.Parallel()

	t.Run("accepts known types", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"email", "call", "coffee"} {
			got, err := ParseContactType(raw)
			if err != nil {
				t.Errorf("ParseContactType(%q) error = %v", raw, err)
			}
			if got.String() != raw {
				t.Errorf("ParseContactType(%q) = %q", raw, got)
			}
		}
	})

	t.Run("rejects unknown type with field and value", func(t *testing.T) {
		t.Parallel()

		_, err := ParseContactType("invalid")
		if !errors.Is(err, domain.ErrInvalidValue) {
			t.Fatalf("ParseContactType(invalid) error = %v, want ErrInvalidValue", err)
		}

		var verr *domain.InvalidValueError
		if !errors.As(err, &verr) {
			t.Fatalf("errors.As(err, *InvalidValueError) = false, got %T", err)
		}
		if verr.Field != FieldContactType || verr.Value != "invalid" {
			t.Errorf("InvalidValueError = {%q, %q}, want {contact_type, invalid}", verr.Field, verr.Value)
		}
	})
}

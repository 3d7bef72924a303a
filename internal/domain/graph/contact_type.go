package graph

import "github.com/jsamuelsen11/partner-report/internal/domain"

// ContactType is the channel of a Contact.
type ContactType string

const (
	ContactEmail  ContactType = "email"
	ContactCall   ContactType = "call"
	ContactCoffee ContactType = "coffee"
)

// FieldContactType is the field name reported when a contact type is rejected.
const FieldContactType = "contact_type"

// IsValid returns true if the contact type is one of the defined constants.
func (t ContactType) IsValid() bool {
	switch t {
	case ContactEmail, ContactCall, ContactCoffee:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t ContactType) String() string {
	return string(t)
}

// ParseContactType converts a raw token into a ContactType. Matching is
// case-sensitive. Returns a *domain.InvalidValueError for any other token.
func ParseContactType(raw string) (ContactType, error) {
	t := ContactType(raw)
	if !t.IsValid() {
		return "", &domain.InvalidValueError{Field: FieldContactType, Value: raw}
	}
	return t, nil
}

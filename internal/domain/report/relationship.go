// Package report selects each company's dominant partner and renders the
// relationship report.
package report

import (
	"fmt"

	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
)

// noRelationship is printed for a company whose employees logged no contacts.
const noRelationship = "No current relationship"

// Relationship is one company's dominant partner. A zero Count means the
// company has no current relationship and Partner is empty.
type Relationship struct {
	Company string
	Partner string
	Count   int
}

// HasPartner reports whether a dominant partner was found.
func (r Relationship) HasPartner() bool {
	return r.Count > 0
}

// String renders the report line for this company.
func (r Relationship) String() string {
	if !r.HasPartner() {
		return fmt.Sprintf("%s: %s", r.Company, noRelationship)
	}
	return fmt.Sprintf("%s: %s (%d)", r.Company, r.Partner, r.Count)
}

// Dominant picks the partner with the strictly highest count. On a tie the
// first maximum in counts wins, so callers control tie resolution through the
// order of counts.
func Dominant(company string, counts []graph.ContactCount) Relationship {
	best := Relationship{Company: company}
	for _, c := range counts {
		if c.Count > best.Count {
			best.Partner = c.Partner
			best.Count = c.Count
		}
	}
	return best
}

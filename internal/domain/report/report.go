package report

import "strings"

// Report is the ordered list of per-company relationships.
type Report struct {
	Relationships []Relationship
}

// String renders every line joined by newlines with one trailing newline.
// An empty report renders as the empty string.
func (r Report) String() string {
	var b strings.Builder
	for _, rel := range r.Relationships {
		b.WriteString(rel.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Package command defines the closed set of commands accepted on the input
// stream and the parser that turns one line into a Command.
//
// Parsing is separate from application: a line is fully validated into one of
// Partner, Company, Employee, or Contact before any store mutation happens.
package command

import "github.com/jsamuelsen11/partner-report/internal/domain/graph"

// Verb is the first token of a command line.
type Verb string

const (
	VerbPartner  Verb = "Partner"
	VerbCompany  Verb = "Company"
	VerbEmployee Verb = "Employee"
	VerbContact  Verb = "Contact"
)

// String implements fmt.Stringer.
func (v Verb) String() string {
	return string(v)
}

// Command is implemented only by the variants in this package.
type Command interface {
	Verb() Verb
	sealed()
}

// Partner creates a partner.
type Partner struct {
	Name string
}

// Company creates a company.
type Company struct {
	Name string
}

// Employee creates an employee of an existing company.
type Employee struct {
	Name    string
	Company string
}

// Contact records a contact between an existing employee and partner.
type Contact struct {
	Employee string
	Partner  string
	Type     graph.ContactType
}

func (Partner) Verb() Verb  { return VerbPartner }
func (Company) Verb() Verb  { return VerbCompany }
func (Employee) Verb() Verb { return VerbEmployee }
func (Contact) Verb() Verb  { return VerbContact }

func (Partner) sealed()  {}
func (Company) sealed()  {}
func (Employee) sealed() {}
func (Contact) sealed()  {}

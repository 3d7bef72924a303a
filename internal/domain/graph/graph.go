// Package graph defines the relationship graph entities: partners, companies,
// employees, and the contacts employees log with partners.
package graph

// Partner is an external individual that employees contact.
type Partner struct {
	ID   int64
	Name string
}

// Company is an organization that employs Employees.
type Company struct {
	ID   int64
	Name string
}

// Employee belongs to exactly one Company and logs Contacts.
type Employee struct {
	ID        int64
	Name      string
	CompanyID int64
}

// Contact is a single interaction linking one Employee to one Partner.
type Contact struct {
	ID         int64
	EmployeeID int64
	PartnerID  int64
	Type       ContactType
}

// ContactCount is the number of contacts a company's employees logged with
// one partner.
type ContactCount struct {
	PartnerID int64
	Partner   string
	Count     int
}

// Stats holds the size of each entity collection.
type Stats struct {
	Partners  int
	Companies int
	Employees int
	Contacts  int
}

// Package memory provides the arena-backed implementation of the entity store.
// Each collection is a growable slice whose index+1 is the surrogate id, with
// parallel name indices used for referential resolution. Entities never point
// at each other; references are ids.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// Compile-time interface check.
var _ ports.EntityStore = (*Store)(nil)

// errClosed is returned by every operation after Close.
var errClosed = fmt.Errorf("memory store closed: %w", domain.ErrUnavailable)

// Store implements ports.EntityStore in memory. It is safe for concurrent
// use; the reporter reads companies in parallel once writes are done.
type Store struct {
	mu sync.RWMutex

	partners  []graph.Partner
	companies []graph.Company
	employees []graph.Employee
	contacts  []graph.Contact

	partnerByName  map[string]int // name -> index into partners
	companyByName  map[string]int // name -> index into companies
	employeeByName map[string]int // name -> index into employees

	employeesByCompany map[int][]int // company index -> employee indices
	contactsByEmployee map[int][]int // employee index -> contact indices

	closed bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		partnerByName:      make(map[string]int),
		companyByName:      make(map[string]int),
		employeeByName:     make(map[string]int),
		employeesByCompany: make(map[int][]int),
		contactsByEmployee: make(map[int][]int),
	}
}

// InsertPartner creates a partner.
func (s *Store) InsertPartner(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errClosed
	}
	if _, exists := s.partnerByName[name]; exists {
		return 0, &domain.DuplicateKeyError{Kind: domain.KindPartner, Name: name}
	}

	idx := len(s.partners)
	id := toID(idx)
	s.partners = append(s.partners, graph.Partner{ID: id, Name: name})
	s.partnerByName[name] = idx
	return id, nil
}

// InsertCompany creates a company.
func (s *Store) InsertCompany(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errClosed
	}
	if _, exists := s.companyByName[name]; exists {
		return 0, &domain.DuplicateKeyError{Kind: domain.KindCompany, Name: name}
	}

	idx := len(s.companies)
	id := toID(idx)
	s.companies = append(s.companies, graph.Company{ID: id, Name: name})
	s.companyByName[name] = idx
	return id, nil
}

// InsertEmployee creates an employee of an existing company.
func (s *Store) InsertEmployee(_ context.Context, name, companyName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errClosed
	}

	companyIdx, ok := s.companyByName[companyName]
	if !ok {
		return 0, &domain.NotFoundError{Kind: domain.KindCompany, Name: companyName}
	}
	if _, exists := s.employeeByName[name]; exists {
		return 0, &domain.DuplicateKeyError{Kind: domain.KindEmployee, Name: name}
	}

	idx := len(s.employees)
	id := toID(idx)
	s.employees = append(s.employees, graph.Employee{
		ID:        id,
		Name:      name,
		CompanyID: s.companies[companyIdx].ID,
	})
	s.employeeByName[name] = idx
	s.employeesByCompany[companyIdx] = append(s.employeesByCompany[companyIdx], idx)
	return id, nil
}

// InsertContact records a contact between an existing employee and partner.
func (s *Store) InsertContact(_ context.Context, employeeName, partnerName string, contactType graph.ContactType) (int64, error) {
	if !contactType.IsValid() {
		return 0, &domain.InvalidValueError{Field: graph.FieldContactType, Value: contactType.String()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errClosed
	}

	employeeIdx, ok := s.employeeByName[employeeName]
	if !ok {
		return 0, &domain.NotFoundError{Kind: domain.KindEmployee, Name: employeeName}
	}
	partnerIdx, ok := s.partnerByName[partnerName]
	if !ok {
		return 0, &domain.NotFoundError{Kind: domain.KindPartner, Name: partnerName}
	}

	idx := len(s.contacts)
	id := toID(idx)
	s.contacts = append(s.contacts, graph.Contact{
		ID:         id,
		EmployeeID: s.employees[employeeIdx].ID,
		PartnerID:  s.partners[partnerIdx].ID,
		Type:       contactType,
	})
	s.contactsByEmployee[employeeIdx] = append(s.contactsByEmployee[employeeIdx], idx)
	return id, nil
}

// ListCompanies returns a copy of all companies ordered by name.
func (s *Store) ListCompanies(_ context.Context) ([]graph.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errClosed
	}

	companies := slices.Clone(s.companies)
	slices.SortFunc(companies, func(a, b graph.Company) int {
		return strings.Compare(a.Name, b.Name)
	})
	return companies, nil
}

// ContactCountsForCompany groups the contacts of the company's employees by
// partner. An unknown company id yields no counts.
func (s *Store) ContactCountsForCompany(_ context.Context, companyID int64) ([]graph.ContactCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errClosed
	}

	companyIdx, ok := indexOf(companyID, len(s.companies))
	if !ok {
		return []graph.ContactCount{}, nil
	}

	perPartner := make(map[int]int)
	for _, employeeIdx := range s.employeesByCompany[companyIdx] {
		for _, contactIdx := range s.contactsByEmployee[employeeIdx] {
			partnerIdx, _ := indexOf(s.contacts[contactIdx].PartnerID, len(s.partners))
			perPartner[partnerIdx]++
		}
	}

	partnerIdxs := make([]int, 0, len(perPartner))
	for idx := range perPartner {
		partnerIdxs = append(partnerIdxs, idx)
	}
	slices.Sort(partnerIdxs)

	counts := make([]graph.ContactCount, 0, len(partnerIdxs))
	for _, idx := range partnerIdxs {
		p := s.partners[idx]
		counts = append(counts, graph.ContactCount{
			PartnerID: p.ID,
			Partner:   p.Name,
			Count:     perPartner[idx],
		})
	}
	return counts, nil
}

// Stats returns the size of each collection.
func (s *Store) Stats(_ context.Context) (graph.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return graph.Stats{}, errClosed
	}

	return graph.Stats{
		Partners:  len(s.partners),
		Companies: len(s.companies),
		Employees: len(s.employees),
		Contacts:  len(s.contacts),
	}, nil
}

// Close drops every collection. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.partners, s.companies, s.employees, s.contacts = nil, nil, nil, nil
	clear(s.partnerByName)
	clear(s.companyByName)
	clear(s.employeeByName)
	clear(s.employeesByCompany)
	clear(s.contactsByEmployee)
	return nil
}

// indexOf maps a surrogate id back to its arena index.
func indexOf(id int64, size int) (int, bool) {
	if id < 1 || id > int64(size) {
		return 0, false
	}
	return int(id - 1), true
}

func toID(idx int) int64 {
	return int64(idx) + 1
}

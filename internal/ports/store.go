package ports

import (
	"context"

	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
)

// EntityStore holds the partner, company, employee, and contact collections
// for a single run. Implemented by the memory and sqlite store adapters.
//
// Inserts either succeed completely or leave the store unchanged. Name lookups
// are exact and case-sensitive.
type EntityStore interface {
	// InsertPartner creates a partner and returns its surrogate id.
	// Returns *domain.DuplicateKeyError if the name exists.
	InsertPartner(ctx context.Context, name string) (int64, error)

	// InsertCompany creates a company and returns its surrogate id.
	// Returns *domain.DuplicateKeyError if the name exists.
	InsertCompany(ctx context.Context, name string) (int64, error)

	// InsertEmployee creates an employee of the named company.
	// Returns *domain.NotFoundError if the company does not exist, then
	// *domain.DuplicateKeyError if the employee name exists.
	InsertEmployee(ctx context.Context, name, companyName string) (int64, error)

	// InsertContact records a contact between the named employee and partner.
	// Returns *domain.InvalidValueError if contactType is not allowed, then
	// *domain.NotFoundError if the employee or partner does not exist.
	InsertContact(ctx context.Context, employeeName, partnerName string, contactType graph.ContactType) (int64, error)

	// ListCompanies returns all companies ordered by name ascending.
	ListCompanies(ctx context.Context) ([]graph.Company, error)

	// ContactCountsForCompany returns, for each partner contacted by the
	// company's employees, the number of contacts. Partners without contacts
	// are omitted. Entries are ordered by partner id.
	ContactCountsForCompany(ctx context.Context, companyID int64) ([]graph.ContactCount, error)

	// Stats returns the size of each collection.
	Stats(ctx context.Context) (graph.Stats, error)

	// Close releases the store. The store must not be used afterwards.
	Close() error
}

// StoreFactory opens a fresh, empty EntityStore for each run.
type StoreFactory interface {
	// Open returns a new empty store. The caller must Close it.
	Open(ctx context.Context) (EntityStore, error)

	// Engine returns the storage engine name (e.g., "memory", "sqlite").
	Engine() string
}

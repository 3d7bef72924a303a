// Package sqlite provides the embedded relational implementation of the entity
// store. Each store owns a private in-memory SQLite database (modernc.org/sqlite,
// no cgo) pinned to a single connection, so the database lives exactly as long
// as the store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

const (
	driverName = "sqlite"

	// memoryDSN opens a private database per connection; the pool is capped
	// at one connection so every statement sees the same database.
	memoryDSN = ":memory:"
)

// Compile-time interface check.
var _ ports.EntityStore = (*Store)(nil)

// Store implements ports.EntityStore on SQLite.
type Store struct {
	db *sql.DB
}

// Open creates a new in-memory database and applies the schema.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open(driverName, memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

// InsertPartner creates a partner.
func (s *Store) InsertPartner(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := requireAbsent(ctx, tx, queryPartnerID, domain.KindPartner, name); err != nil {
			return err
		}
		var err error
		id, err = insert(ctx, tx, insertPartner, name)
		return err
	})
	if err != nil {
		return 0, insertError(domain.KindPartner, err)
	}
	return id, nil
}

// InsertCompany creates a company.
func (s *Store) InsertCompany(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := requireAbsent(ctx, tx, queryCompanyID, domain.KindCompany, name); err != nil {
			return err
		}
		var err error
		id, err = insert(ctx, tx, insertCompany, name)
		return err
	})
	if err != nil {
		return 0, insertError(domain.KindCompany, err)
	}
	return id, nil
}

// InsertEmployee creates an employee of an existing company.
func (s *Store) InsertEmployee(ctx context.Context, name, companyName string) (int64, error) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		companyID, err := lookup(ctx, tx, queryCompanyID, domain.KindCompany, companyName)
		if err != nil {
			return err
		}
		if err := requireAbsent(ctx, tx, queryEmployeeID, domain.KindEmployee, name); err != nil {
			return err
		}
		id, err = insert(ctx, tx, insertEmployee, name, companyID)
		return err
	})
	if err != nil {
		return 0, insertError(domain.KindEmployee, err)
	}
	return id, nil
}

// InsertContact records a contact between an existing employee and partner.
func (s *Store) InsertContact(ctx context.Context, employeeName, partnerName string, contactType graph.ContactType) (int64, error) {
	if !contactType.IsValid() {
		return 0, &domain.InvalidValueError{Field: graph.FieldContactType, Value: contactType.String()}
	}

	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		employeeID, err := lookup(ctx, tx, queryEmployeeID, domain.KindEmployee, employeeName)
		if err != nil {
			return err
		}
		partnerID, err := lookup(ctx, tx, queryPartnerID, domain.KindPartner, partnerName)
		if err != nil {
			return err
		}
		id, err = insert(ctx, tx, insertContact, employeeID, partnerID, contactType.String())
		return err
	})
	if err != nil {
		return 0, insertError(domain.KindContact, err)
	}
	return id, nil
}

// ListCompanies returns all companies ordered by name.
func (s *Store) ListCompanies(ctx context.Context) ([]graph.Company, error) {
	rows, err := s.db.QueryContext(ctx, queryCompanies)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	companies := []graph.Company{}
	for rows.Next() {
		var c graph.Company
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

// ContactCountsForCompany runs the contacts/employees/partners join for one
// company grouped by partner.
func (s *Store) ContactCountsForCompany(ctx context.Context, companyID int64) ([]graph.ContactCount, error) {
	rows, err := s.db.QueryContext(ctx, queryContactCounts, companyID)
	if err != nil {
		return nil, fmt.Errorf("counting contacts for company %d: %w", companyID, err)
	}
	defer func() { _ = rows.Close() }()

	counts := []graph.ContactCount{}
	for rows.Next() {
		var c graph.ContactCount
		if err := rows.Scan(&c.PartnerID, &c.Partner, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning contact count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counting contacts for company %d: %w", companyID, err)
	}
	return counts, nil
}

// Stats returns the size of each table.
func (s *Store) Stats(ctx context.Context) (graph.Stats, error) {
	var st graph.Stats
	err := s.db.QueryRowContext(ctx, queryStats).Scan(&st.Partners, &st.Companies, &st.Employees, &st.Contacts)
	if err != nil {
		return graph.Stats{}, fmt.Errorf("reading stats: %w", err)
	}
	return st, nil
}

// Close closes the database, discarding its contents.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// inTx runs fn in a transaction, rolling back on any error so a failed
// insert leaves no partial row.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// lookup resolves a name to its id, returning *domain.NotFoundError when absent.
func lookup(ctx context.Context, tx *sql.Tx, query string, kind domain.Kind, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, query, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, &domain.NotFoundError{Kind: kind, Name: name}
	}
	if err != nil {
		return 0, fmt.Errorf("looking up %s %q: %w", kind, name, err)
	}
	return id, nil
}

// requireAbsent returns *domain.DuplicateKeyError when name already exists.
func requireAbsent(ctx context.Context, tx *sql.Tx, query string, kind domain.Kind, name string) error {
	_, err := lookup(ctx, tx, query, kind, name)
	if err == nil {
		return &domain.DuplicateKeyError{Kind: kind, Name: name}
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// insertError returns domain errors unchanged and wraps driver failures with
// the collection name.
func insertError(kind domain.Kind, err error) error {
	var nf *domain.NotFoundError
	var dk *domain.DuplicateKeyError
	if errors.As(err, &nf) || errors.As(err, &dk) {
		return err
	}
	return fmt.Errorf("inserting %s: %w", kind, err)
}

func insert(ctx context.Context, tx *sql.Tx, stmt string, args ...any) (int64, error) {
	res, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

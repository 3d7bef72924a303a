package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/partner-report/internal/app/fanout"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
	"github.com/jsamuelsen11/partner-report/internal/domain/report"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// Reporter derives the relationship report from a fully populated store.
type Reporter struct {
	workers int
	logger  *slog.Logger
}

// NewReporter creates a Reporter that aggregates up to workers companies
// at a time.
func NewReporter(workers int, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reporter{workers: workers, logger: logger}
}

// Report lists the companies by name and resolves each one's dominant
// partner. It only reads from store, so it must run after all writes.
func (rp *Reporter) Report(ctx context.Context, store ports.EntityStore) (*report.Report, error) {
	companies, err := store.ListCompanies(ctx)
	if err != nil {
		rp.logger.ErrorContext(ctx, "failed to list companies",
			slog.String("operation", "Report"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	rels, err := fanout.Map(ctx, rp.workers, companies, func(ctx context.Context, c graph.Company) (report.Relationship, error) {
		counts, err := store.ContactCountsForCompany(ctx, c.ID)
		if err != nil {
			return report.Relationship{}, fmt.Errorf("counting contacts for company %q: %w", c.Name, err)
		}
		return report.Dominant(c.Name, counts), nil
	})
	if err != nil {
		rp.logger.ErrorContext(ctx, "failed to aggregate contacts",
			slog.String("operation", "Report"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &report.Report{Relationships: rels}, nil
}

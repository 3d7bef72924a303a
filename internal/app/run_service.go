package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/partner-report/internal/domain/report"
	"github.com/jsamuelsen11/partner-report/internal/platform/telemetry"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// Compile-time check that RunService implements ports.RunService.
var _ ports.RunService = (*RunService)(nil)

// RunService implements ports.RunService. Every call gets its own store, so
// concurrent runs never observe each other's entities.
type RunService struct {
	stores      ports.StoreFactory
	interpreter *Interpreter
	reporter    *Reporter
	logger      *slog.Logger
	metrics     *telemetry.Metrics
}

// NewRunService creates a RunService. A nil logger discards output and a nil
// metrics records nothing.
func NewRunService(
	stores ports.StoreFactory,
	interpreter *Interpreter,
	reporter *Reporter,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *RunService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	return &RunService{
		stores:      stores,
		interpreter: interpreter,
		reporter:    reporter,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run consumes r into a fresh store and returns the report.
func (s *RunService) Run(ctx context.Context, r io.Reader) (rep *report.Report, err error) {
	start := time.Now()
	engine := s.stores.Engine()

	ctx, span := otel.GetTracerProvider().Tracer("app").Start(ctx, "RunService.Run")
	span.SetAttributes(attribute.String("store.engine", engine))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.recordRun(ctx, engine, start, rep, err)
	}()

	store, err := s.stores.Open(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to open store",
			slog.String("operation", "Run"),
			slog.String("engine", engine),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("opening %s store: %w", engine, err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close store",
				slog.String("operation", "Run"),
				slog.String("engine", engine),
				slog.Any("error", cerr),
			)
		}
	}()

	lines, err := s.interpreter.Consume(ctx, store, r)
	if err != nil {
		s.logger.ErrorContext(ctx, "run aborted",
			slog.String("operation", "Run"),
			slog.Int("lines_applied", lines),
			slog.Any("error", err),
		)
		return nil, err
	}

	rep, err = s.reporter.Report(ctx, store)
	if err != nil {
		return nil, err
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading store stats: %w", err)
	}
	s.logger.InfoContext(ctx, "run complete",
		slog.String("engine", engine),
		slog.Int("lines", lines),
		slog.Int("partners", stats.Partners),
		slog.Int("companies", stats.Companies),
		slog.Int("employees", stats.Employees),
		slog.Int("contacts", stats.Contacts),
		slog.Duration("elapsed", time.Since(start)),
	)

	return rep, nil
}

func (s *RunService) recordRun(ctx context.Context, engine string, start time.Time, rep *report.Report, err error) {
	result := telemetry.ResultSuccess
	if err != nil {
		result = telemetry.ResultError
	}
	attrs := metric.WithAttributes(
		telemetry.AttrEngine.String(engine),
		telemetry.AttrResult.String(result),
	)
	s.metrics.RunDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	if rep != nil {
		s.metrics.CompaniesReported.Add(ctx, int64(len(rep.Relationships)), metric.WithAttributes(
			telemetry.AttrEngine.String(engine),
		))
	}
}

package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/domain/command"
	"github.com/jsamuelsen11/partner-report/internal/platform/telemetry"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// maxLineBytes bounds a single command line.
const maxLineBytes = 1 << 20

// Interpreter parses command lines and applies them to an entity store in
// arrival order.
type Interpreter struct {
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewInterpreter creates an Interpreter. A nil logger discards output and a
// nil metrics records nothing.
func NewInterpreter(logger *slog.Logger, metrics *telemetry.Metrics) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	return &Interpreter{logger: logger, metrics: metrics}
}

// Apply performs the store mutation for one parsed command.
func (in *Interpreter) Apply(ctx context.Context, store ports.EntityStore, cmd command.Command) error {
	var err error
	switch c := cmd.(type) {
	case command.Partner:
		_, err = store.InsertPartner(ctx, c.Name)
	case command.Company:
		_, err = store.InsertCompany(ctx, c.Name)
	case command.Employee:
		_, err = store.InsertEmployee(ctx, c.Name, c.Company)
	case command.Contact:
		_, err = store.InsertContact(ctx, c.Employee, c.Partner, c.Type)
	default:
		err = fmt.Errorf("unhandled command %T", cmd)
	}
	return err
}

// Consume reads r line by line, parsing and applying each line before the
// next is read. It returns the number of lines applied.
//
// A trailing carriage return is stripped from every line and a final line
// without a newline is still applied. The first failure stops consumption
// and is returned as a *domain.LineError.
func (in *Interpreter) Consume(ctx context.Context, store ports.EntityStore, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		lineNo := n + 1

		cmd, err := command.Parse(sc.Text())
		if err == nil {
			err = in.Apply(ctx, store, cmd)
		}
		in.record(ctx, cmd, err)
		if err != nil {
			in.logger.DebugContext(ctx, "command rejected",
				slog.String("operation", "Consume"),
				slog.Int("line", lineNo),
				slog.Any("error", err),
			)
			return n, &domain.LineError{Line: lineNo, Err: err}
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("reading commands after line %d: %w", n, err)
	}
	return n, nil
}

func (in *Interpreter) record(ctx context.Context, cmd command.Command, err error) {
	verb := "unknown"
	if cmd != nil {
		verb = cmd.Verb().String()
	}
	result := telemetry.ResultSuccess
	if err != nil {
		result = telemetry.ResultError
	}
	in.metrics.CommandsTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrVerb.String(verb),
		telemetry.AttrResult.String(result),
	))
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/partner-report/internal/adapters/http"
	"github.com/jsamuelsen11/partner-report/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/partner-report/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/partner-report/internal/adapters/source"
	"github.com/jsamuelsen11/partner-report/internal/adapters/store"
	"github.com/jsamuelsen11/partner-report/internal/app"
	"github.com/jsamuelsen11/partner-report/internal/platform/config"
	"github.com/jsamuelsen11/partner-report/internal/platform/health"
	"github.com/jsamuelsen11/partner-report/internal/platform/httpclient"
	"github.com/jsamuelsen11/partner-report/internal/platform/logging"
	"github.com/jsamuelsen11/partner-report/internal/platform/telemetry"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// commandSourceName identifies the remote command source in traces, metrics,
// and readiness results.
const commandSourceName = "command-source"

// bootstrap loads configuration, builds the logger and telemetry, and returns
// a DI container with the full dependency graph registered. The logger writes
// to the error stream so standard output carries only the report.
func bootstrap(ctx context.Context, g *Globals, s *streams) (*do.RootScope, *otelProviders, error) {
	cfg, err := config.Load(g.Profile, config.WithConfigDir(g.ConfigDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, s.err)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, s)

	return injector, otel, nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. The providers are
// nil and metrics are no-ops when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{metrics: telemetry.NewNoopMetrics()}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, s *streams) {
	// Outbound: storage engine and command sources.
	do.Provide(injector, func(_ do.Injector) (store.Factory, error) {
		return store.NewFactory(cfg.Store.Engine)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Source, commandSourceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CommandSource, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return source.New(s.in, client), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.RunService, error) {
		stores, err := do.Invoke[store.Factory](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewRunService(stores,
			app.NewInterpreter(logger, metrics),
			app.NewReporter(cfg.Report.Workers, logger),
			logger, metrics,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		stores, err := do.Invoke[store.Factory](i)
		if err != nil {
			return nil, err
		}
		registry := health.New()
		registry.Register(stores)
		registry.Register(do.MustInvoke[*httpclient.Client](i))
		return registry, nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (*handlers.ReportHandler, error) {
		runs, err := do.Invoke[ports.RunService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewReportHandler(runs, cfg.Server.MaxBodyBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry, err := do.Invoke[ports.HealthRegistry](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		reportH, err := do.Invoke[*handlers.ReportHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(reportH, healthH,
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

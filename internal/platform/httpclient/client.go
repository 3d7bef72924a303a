// Package httpclient provides the instrumented HTTP fetcher used to read
// command streams from http(s) URLs. Every fetch passes through a circuit
// breaker, an optional rate limiter, an OpenTelemetry client span, and
// retry with exponential backoff:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry → HTTP GET
//
// Construction:
//
//	client := httpclient.New(&cfg.Source, "command-source", metrics, logger)
//
// Fetching a command stream:
//
//	body, err := client.Fetch(ctx, "https://example.com/commands.txt")
//	defer body.Close()
//
// Request IDs set by inbound middleware are forwarded as X-Request-ID:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/partner-report/internal/platform/config"
	"github.com/jsamuelsen11/partner-report/internal/platform/telemetry"
)

type requestIDKey struct{}

// WithRequestID returns a new context carrying the inbound request ID so
// that outbound fetches can forward it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// StatusError reports a fetch that completed with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
}

// retryConfig holds the retry policy values extracted from config.RetryConfig
// using unexported types to avoid leaking the config package through the API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client fetches remote command streams.
type Client struct {
	httpClient  *http.Client
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a fetcher configured from the source section of the config.
//
// The serviceName identifies the remote peer in traces, metrics, and health
// results. If metrics is nil, metric recording is skipped.
func New(cfg *config.SourceConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A 4xx means the caller asked for something that does not exist;
		// the remote itself is fine.
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.StatusCode < http.StatusInternalServerError && se.StatusCode != http.StatusTooManyRequests
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		serviceName: serviceName,
		breaker:     cb,
		limiter:     limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch issues a GET for rawURL and returns the response body on a 2xx
// status. The caller must close the returned body.
//
// A non-2xx final status yields a *StatusError. When the breaker is open the
// error wraps gobreaker.ErrOpenState and no request is made.
func (c *Client) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return nil, err
		}

		spanCtx, span := c.startSpan(ctx, u)
		defer span.End()

		r, err := c.getWithRetry(spanCtx, u)
		c.finishSpan(span, r, err)
		return r, err
	})

	c.recordMetrics(ctx, start, resp, err)

	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Name returns the remote peer identifier. Together with HealthCheck it
// satisfies ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports remote availability from the circuit breaker state
// without making a network call.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// newRequest builds a GET carrying the request ID and trace context.
func (c *Client) newRequest(ctx context.Context, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req, nil
}

func (c *Client) startSpan(ctx context.Context, u *url.URL) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	return tracer.Start(ctx, "HTTP GET "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", u.Redacted()),
			attribute.String("peer.service", c.serviceName),
		),
	)
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	var se *StatusError
	switch {
	case resp != nil:
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	case errors.As(err, &se):
		span.SetAttributes(attribute.Int("http.status_code", se.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejections are counted too.
func (c *Client) recordMetrics(ctx context.Context, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := telemetry.ResultError
	var se *StatusError
	switch {
	case resp != nil:
		statusCode = resp.StatusCode
		result = telemetry.ResultSuccess
	case errors.As(err, &se):
		statusCode = se.StatusCode
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(http.MethodGet),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps a non-negative int into uint32. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

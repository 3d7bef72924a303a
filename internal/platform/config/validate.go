package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Store.validate(),
		c.Report.validate(),
		c.Server.validate(),
		c.Source.validate(),
		c.Telemetry.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Engine {
	case "memory", "sqlite":
		return nil
	default:
		return fmt.Errorf("store.engine must be one of: memory, sqlite; got %q", s.Engine)
	}
}

func (r *ReportConfig) validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("report.workers must be >= 1, got %d", r.Workers)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be positive, got %d", s.MaxBodyBytes))
	}

	return errors.Join(errs...)
}

func (so *SourceConfig) validate() error {
	var errs []error

	if so.Timeout <= 0 {
		errs = append(errs, errors.New("source.timeout must be positive"))
	}
	if so.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("source.retry.max_attempts must be >= 1, got %d", so.Retry.MaxAttempts))
	}
	if so.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("source.retry.multiplier must be positive, got %f", so.Retry.Multiplier))
	}
	if so.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("source.circuit_breaker.max_failures must be >= 1, got %d",
			so.CircuitBreaker.MaxFailures))
	}
	if so.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("source.rate_limit.requests_per_second must be >= 0, got %f",
			so.RateLimit.RequestsPerSecond))
	}
	if so.RateLimit.RequestsPerSecond > 0 && so.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("source.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			so.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}

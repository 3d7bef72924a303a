package config

const (
	defaultServerPort   = 8080
	defaultMaxBodyBytes = 4 << 20

	defaultReportWorkers = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "text",

		"store.engine": "memory",

		"report.workers": defaultReportWorkers,

		"server.host":           "0.0.0.0",
		"server.port":           defaultServerPort,
		"server.read_timeout":   "5s",
		"server.write_timeout":  "30s",
		"server.idle_timeout":   "120s",
		"server.max_body_bytes": defaultMaxBodyBytes,

		"source.timeout":                         "30s",
		"source.retry.max_attempts":              defaultRetryMaxAttempts,
		"source.retry.initial_interval":          "100ms",
		"source.retry.max_interval":              "10s",
		"source.retry.multiplier":                defaultRetryMultiplier,
		"source.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"source.circuit_breaker.timeout":         "30s",
		"source.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"source.rate_limit.requests_per_second":  0,
		"source.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "partner-report",
	}
}

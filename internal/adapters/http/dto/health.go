package dto

// Health status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks is present only on readiness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse converts registry results into a readiness body and
// reports whether every check passed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = HealthOK
	}

	status := HealthReady
	if !healthy {
		status = HealthNotReady
	}
	return HealthResponse{Status: status, Checks: checks}, healthy
}

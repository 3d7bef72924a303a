package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/partner-report/internal/domain/report"
)

func referenceReport() *report.Report {
	return &report.Report{Relationships: []report.Relationship{
		{Company: "ACME"},
		{Company: "Globex", Partner: "Chris", Count: 2},
		{Company: "Hooli", Partner: "Molly", Count: 1},
	}}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

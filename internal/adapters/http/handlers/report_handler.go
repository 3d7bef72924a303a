package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/partner-report/internal/adapters/http/dto"
	"github.com/jsamuelsen11/partner-report/internal/platform/logging"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// ReportHandler runs a command stream posted in the request body.
type ReportHandler struct {
	runs         ports.RunService
	maxBodyBytes int64
}

// NewReportHandler creates a ReportHandler. Bodies larger than maxBodyBytes
// are rejected with 413.
func NewReportHandler(runs ports.RunService, maxBodyBytes int64) *ReportHandler {
	return &ReportHandler{runs: runs, maxBodyBytes: maxBodyBytes}
}

// CreateReport handles POST /api/v1/reports. The text/plain body is applied
// to a fresh store and the report block is returned as text, or as JSON when
// the client accepts application/json.
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	if err := dto.ValidateCommandStream(r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer func() { _ = body.Close() }()

	rep, err := h.runs.Run(r.Context(), body)
	if err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "report run rejected",
			slog.String("operation", "CreateReport"),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, dto.ToReportResponse(rep))
		return
	}
	writeText(w, http.StatusOK, rep.String())
}

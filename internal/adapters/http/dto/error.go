package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/partner-report/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Line is an
// extension member naming the 1-based input line that failed.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Line     int           `json:"line,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail describes the offending token of a rejected command.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a run error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := errorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var lerr *domain.LineError
	if errors.As(err, &lerr) {
		resp.Line = lerr.Line
	}
	if d, ok := errorDetail(err); ok {
		resp.Errors = []ErrorDetail{d}
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json with the mapped
// status code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// errorToStatus maps domain sentinels and transport errors to HTTP status codes.
func errorToStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrUnknownCommand),
		errors.Is(err, domain.ErrMalformedCommand),
		errors.Is(err, domain.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorDetail extracts the offending token from a typed domain error.
func errorDetail(err error) (ErrorDetail, bool) {
	var (
		unknown   *domain.UnknownCommandError
		malformed *domain.MalformedCommandError
		invalid   *domain.InvalidValueError
		notFound  *domain.NotFoundError
		duplicate *domain.DuplicateKeyError
	)
	switch {
	case errors.As(err, &unknown):
		return ErrorDetail{Location: "verb", Message: "unknown command type", Value: unknown.Verb}, true
	case errors.As(err, &malformed):
		return ErrorDetail{
			Location: "arguments",
			Message:  fmt.Sprintf("%s takes %d argument(s)", malformed.Verb, malformed.Want),
			Value:    malformed.Got,
		}, true
	case errors.As(err, &invalid):
		return ErrorDetail{Location: invalid.Field, Message: "not an allowed value", Value: invalid.Value}, true
	case errors.As(err, &notFound):
		return ErrorDetail{Location: string(notFound.Kind), Message: "not found", Value: notFound.Name}, true
	case errors.As(err, &duplicate):
		return ErrorDetail{Location: string(duplicate.Kind), Message: "already exists", Value: duplicate.Name}, true
	default:
		return ErrorDetail{}, false
	}
}

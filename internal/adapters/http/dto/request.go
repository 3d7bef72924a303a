package dto

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// ErrUnsupportedMediaType is returned when a command stream is posted with a
// content type other than text/plain.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// MediaTypeText is the only accepted request body type for a command stream.
const MediaTypeText = "text/plain"

// ValidateCommandStream checks that r carries a plain-text command stream.
// A missing Content-Type is accepted.
func ValidateCommandStream(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || mt != MediaTypeText {
		return fmt.Errorf("%w: %q, want %s", ErrUnsupportedMediaType, ct, MediaTypeText)
	}
	return nil
}

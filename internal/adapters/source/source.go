// Package source opens command streams for the CLI. A location is either
// "-" (standard input), an http(s) URL fetched through the resilient HTTP
// client, or a file path.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/ports"
)

// Stdin is the location naming standard input.
const Stdin = "-"

// Fetcher retrieves a remote command stream. Implemented by
// *httpclient.Client.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

// Compile-time interface check.
var _ ports.CommandSource = (*Source)(nil)

// Source implements ports.CommandSource.
type Source struct {
	stdin   io.Reader
	fetcher Fetcher
}

// New creates a Source reading "-" from stdin and URLs through fetcher.
// A nil fetcher rejects URL locations.
func New(stdin io.Reader, fetcher Fetcher) *Source {
	return &Source{stdin: stdin, fetcher: fetcher}
}

// Open returns a reader over the stream at location. The caller must close
// it; closing the stdin stream leaves the underlying reader open.
func (s *Source) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case location == "" || location == Stdin:
		return io.NopCloser(s.stdin), nil
	case isURL(location):
		return s.openURL(ctx, location)
	default:
		return openFile(location)
	}
}

func (s *Source) openURL(ctx context.Context, location string) (io.ReadCloser, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("remote sources disabled: %w", domain.ErrUnavailable)
	}
	body, err := s.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("fetching command source: %w: %w", domain.ErrUnavailable, err)
	}
	return body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.NotFoundError{Kind: domain.KindFile, Name: path}
	}
	if err != nil {
		return nil, fmt.Errorf("opening command file: %w", err)
	}
	return f, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/partner-report/internal/adapters/http"
	"github.com/jsamuelsen11/partner-report/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig(), http.NotFoundHandler(), nil)

	if s == nil {
		t.Fatal("NewServer() returned nil")
	}
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{name: "ipv4", host: "127.0.0.1", port: 9090, want: "127.0.0.1:9090"},
		{name: "all interfaces", host: "0.0.0.0", port: 8080, want: "0.0.0.0:8080"},
		{name: "ipv6", host: "::1", port: 8080, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.ServerConfig{Host: tt.host, Port: tt.port}
			s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig(), newServiceRouter(), discardLogger())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	// Serve returns nil on graceful shutdown, so we collect the error in a channel.
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ln)
	}()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost,
		"http://"+ln.Addr().String()+"/api/v1/reports", strings.NewReader(referenceInput))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(body) != referenceReport {
		t.Errorf("body = %q, want %q", body, referenceReport)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Serve() error = %v, want nil after shutdown", err)
	}
}

func TestServer_StartAndShutdownDefaultTimeout(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig(), http.NotFoundHandler(), discardLogger())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	// Give the server a moment to start listening.
	time.Sleep(50 * time.Millisecond)

	// Pass a context without a deadline -- should use the default 10s timeout.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Start() error = %v, want nil after shutdown", err)
	}
}

func TestServer_StartListenError(t *testing.T) {
	t.Parallel()

	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = taken.Close() })

	cfg := testServerConfig()
	cfg.Port = taken.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	err = s.Start()

	if err == nil {
		t.Fatal("Start() on an occupied port should fail")
	}
	if !strings.Contains(err.Error(), "listening on") {
		t.Errorf("error = %q, want it to contain %q", err.Error(), "listening on")
	}
}

package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRequestIDAssignedAndEchoed(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("request id not propagated: ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "caller-42" {
		t.Fatalf("incoming request id not kept: %q", seen)
	}
}

func TestLoggingMiddlewareAttachesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := zerolog.New(&buf)

	h := RequestIDMiddleware(LoggingMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{`"message":"request started"`, `"message":"inside handler"`, `"message":"request completed"`, `"status":418`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s:\n%s", want, out)
		}
	}
	if strings.Count(out, `"request_id":"rid-1"`) != 3 {
		t.Fatalf("request id not on every line:\n%s", out)
	}
}

func TestResponseWriterKeepsFlusher(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	var w http.ResponseWriter = &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	f, ok := w.(http.Flusher)
	if !ok {
		t.Fatalf("wrapper lost http.Flusher")
	}
	f.Flush()
	if !rec.Flushed {
		t.Fatalf("Flush was not forwarded")
	}
}

func TestTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	var ok bool
	h := TimeoutMiddleware(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !ok || time.Until(deadline) > 50*time.Millisecond {
		t.Fatalf("expected a deadline within the timeout, got ok=%v deadline=%v", ok, deadline)
	}
}

func TestNewRecoversPanics(t *testing.T) {
	t.Parallel()

	s := New(Config{Addr: ":0", ShutdownTimeout: time.Second}, "test", zerolog.Nop())
	s.Router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("request id header missing")
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	t.Parallel()

	s := New(Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}, "test", zerolog.Nop())
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() after Shutdown should return nil, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	if err := (Config{}).Validate(); err == nil {
		t.Fatalf("expected error for empty config")
	}
	if err := (Config{Addr: ":8080", ShutdownTimeout: time.Second}).Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

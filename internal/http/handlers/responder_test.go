package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nhl-team-insights/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.String() == "" {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteErrorOmitsRequestIDWhenUnknown(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	writeError(rr, req, http.StatusBadRequest, "boom", logger)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if _, ok := body["requestId"]; ok {
		t.Fatalf("expected no requestId, got %v", body)
	}
	if body["error"] != "boom" {
		t.Fatalf("unexpected error %q", body["error"])
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	if got := loggerFromContext(nil, logger); got != logger {
		t.Fatalf("expected fallback logger for nil request")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := loggerFromContext(req, logger); got != logger {
		t.Fatalf("expected fallback logger when context has none")
	}
}

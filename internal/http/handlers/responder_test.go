package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/render"
	"github.com/preston-bernstein/gamescout-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, games.ErrorResponse{Error: "boom"}, logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte(`"requestId":"abc123"`)) {
		t.Fatalf("expected requestId in body, got %s", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("failed to encode response")) {
		t.Fatalf("expected encode error to be logged, got %s", buf.String())
	}
}

func TestWriteHTMLSetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	writeHTML(rr, http.StatusOK, render.Must(), render.Page{}, nil)

	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("<form")) {
		t.Fatalf("expected rendered form, got %s", rr.Body.String())
	}
}

func TestLoggerFromContextNilRequest(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	if got := loggerFromContext(nil, logger); got != logger {
		t.Fatalf("expected fallback logger for nil request")
	}
}

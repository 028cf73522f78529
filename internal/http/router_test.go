package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/http/handlers"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
	"github.com/preston-bernstein/gamescout-service/internal/testutil"
)

func newTestRouter(p *testutil.StubProvider) http.Handler {
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(testutil.NewSearchService(p), nil, logger)
	return NewRouter(h, RouterOptions{Logger: logger, Metrics: metrics.NewRecorder()})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	p := &testutil.StubProvider{
		Records: []games.Record{testutil.SampleRecord("612", "Portal 2", "4.99")},
		Payload: json.RawMessage(`[]`),
	}
	router := newTestRouter(p)

	cases := map[string]int{
		"/api/health":             http.StatusOK,
		"/api/search?game=portal": http.StatusOK,
		"/api/search":             http.StatusBadRequest,
		"/api/game/612":           http.StatusOK,
		"/":                       http.StatusOK,
		"/search?game=portal":     http.StatusOK,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterPathsAreCaseInsensitive(t *testing.T) {
	p := &testutil.StubProvider{Payload: json.RawMessage(`{}`)}
	router := newTestRouter(p)

	for _, path := range []string{"/API/Health", "/Api/SEARCH?game=portal", "/api/health/"} {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
	}

	rr := testutil.Serve(router, http.MethodGet, "/API/Game/AbC", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := p.LastLookupID(); got != "AbC" {
		t.Fatalf("expected id case preserved, got %q", got)
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(&testutil.StubProvider{})

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp games.ErrorResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Error != "endpoint not found" || len(resp.Available) == 0 {
		t.Fatalf("unexpected 404 body %+v", resp)
	}
	if resp.RequestID == "" || resp.RequestID != rr.Header().Get("X-Request-ID") {
		t.Fatalf("expected request id echoed in body and header, got %q / %q", resp.RequestID, rr.Header().Get("X-Request-ID"))
	}
}

func TestRouterRejectsUnsupportedMethod(t *testing.T) {
	router := newTestRouter(&testutil.StubProvider{})

	rr := testutil.Serve(router, http.MethodDelete, "/api/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterAddsCORSHeaders(t *testing.T) {
	router := newTestRouter(&testutil.StubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}

func TestRouterAnswersPreflight(t *testing.T) {
	router := newTestRouter(&testutil.StubProvider{})

	req := httptest.NewRequest(http.MethodOptions, "/api/search?game=portal", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := testutil.ServeRequest(router, req)

	if rr.Code >= 300 {
		t.Fatalf("expected successful preflight, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("expected CORS headers on preflight")
	}
}

type panickingGateway struct{}

func (panickingGateway) Search(context.Context, string) (games.ResponseEnvelope, error) {
	panic("boom")
}

func (panickingGateway) GameByID(context.Context, string) (json.RawMessage, error) {
	panic("boom")
}

func TestRouterRecoversFromPanics(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	router := NewRouter(handlers.NewHandler(panickingGateway{}, nil, logger), RouterOptions{Logger: logger})

	rr := testutil.Serve(router, http.MethodGet, "/api/search?game=portal", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	rr = testutil.Serve(router, http.MethodGet, "/api/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"/API/Search":   "/api/search",
		"/api/GAME/XyZ": "/api/game/XyZ",
		"/Api/Game/a/B": "/api/game/a/B",
		"/":             "/",
		"/Search":       "/search",
		"/api/gam":      "/api/gam",
		"/API/GAME/":    "/api/game/",
	}
	for in, want := range cases {
		if got := canonicalPath(in); got != want {
			t.Fatalf("canonicalPath(%s) = %s, want %s", in, got, want)
		}
	}
}

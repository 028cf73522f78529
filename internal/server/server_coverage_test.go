package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/gamescout-service/internal/config"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
)

// metricsSetupSuccess allows us to force a handler to test buildMetrics success path.
func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	rec := metrics.NewRecorder()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	return rec, handler, func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics port, got %s", srv.Addr())
	}

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "# metrics" {
		t.Fatalf("expected metrics handler on /metrics, got %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 off /metrics, got %d", rr.Code)
	}
}

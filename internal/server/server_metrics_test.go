package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/gamescout-service/internal/config"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
	"github.com/preston-bernstein/gamescout-service/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: "fixture",
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: false},
		Provider: "fixture",
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected metrics listener disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: "fixture",
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no telemetry shutdown for injected recorder")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected injected shutdown to succeed, got %v", err)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" CheapShark ", nil); got != "cheapshark" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", &testutil.StubProvider{}); got != "*testutil.stubprovider" {
		t.Fatalf("expected derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
}

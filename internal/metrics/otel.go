package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "gamescout-service"
	meterName          = "github.com/preston-bernstein/gamescout-service"
	otlpExportInterval = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup wires a meter provider with a Prometheus reader and, when an endpoint is
// configured, a periodic OTLP/HTTP reader. It returns the Recorder, the /metrics
// handler and the provider shutdown. A disabled config yields an in-memory Recorder
// and a nil handler.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("metrics: prometheus exporter: %w", err)
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("metrics: otlp exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("metrics: resource: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(append(opts, sdkmetric.WithResource(res))...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, fmt.Errorf("metrics: instruments: %w", err)
	}

	return newRecorder(inst), promHandler, provider.Shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpExportInterval)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), nil
}

type otelInstruments struct {
	ctx               context.Context
	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)

	requests, err := meter.Int64Counter("http_requests_total",
		metric.WithDescription("HTTP requests served"))
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms",
		metric.WithDescription("HTTP request latency"), metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	providerAttempts, err := meter.Int64Counter("provider_attempts_total",
		metric.WithDescription("Upstream pricing API calls"))
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total",
		metric.WithDescription("Failed upstream pricing API calls by kind"))
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms",
		metric.WithDescription("Upstream pricing API latency"), metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               context.Background(),
		requests:          requests,
		requestLatencyMs:  requestLatency,
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.requests.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	o.requestLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordProviderAttempt(provider, op string, duration time.Duration, kind string) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrProvider, provider),
		attribute.String(AttrOp, op),
	}
	o.providerAttempts.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	o.providerLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if kind != "" {
		o.providerErrors.Add(o.ctx, 1, metric.WithAttributes(append(attrs, attribute.String(AttrKind, kind))...))
	}
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/gamescout-service/internal/config"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
	"github.com/preston-bernstein/gamescout-service/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.PriceProvider {
	base, name := selectProvider(cfg, f.logger)
	return f.wrap(base, name)
}

func (f providerFactory) wrap(base providers.PriceProvider, name string) providers.PriceProvider {
	return providers.NewInstrumentedProvider(base, name, f.logger, f.metrics)
}

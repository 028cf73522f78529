package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/config"
	"github.com/preston-bernstein/gamescout-service/internal/providers"
	"github.com/preston-bernstein/gamescout-service/internal/providers/cheapshark"
	"github.com/preston-bernstein/gamescout-service/internal/providers/fixture"
)

const (
	providerCheapShark = "cheapshark"
	providerFixture    = "fixture"
)

// selectProvider returns the configured provider and the name it reports under.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.PriceProvider, string) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case providerFixture:
		return fixture.New(), providerFixture
	case providerCheapShark, "":
		return newCheapShark(cfg), providerCheapShark
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to cheapshark", slog.String("provider", cfg.Provider))
		}
		return newCheapShark(cfg), providerCheapShark
	}
}

func newCheapShark(cfg config.Config) *cheapshark.Client {
	return cheapshark.NewClient(cheapshark.Config{
		BaseURL: cfg.CheapShark.BaseURL,
		Timeout: cfg.CheapShark.Timeout,
	})
}

package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
)

const (
	OpSearch = "search"
	OpLookup = "lookup"
)

// instrumentedProvider records one metric sample per upstream call and logs each
// failure once. It passes every call through exactly once; there is no retry.
type instrumentedProvider struct {
	inner   PriceProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and failure logging.
func NewInstrumentedProvider(inner PriceProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) PriceProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) SearchGames(ctx context.Context, title string, params SearchParams) ([]games.Record, error) {
	start := p.now()
	records, err := p.inner.SearchGames(ctx, title, params)
	p.observe(ctx, OpSearch, start, err, slog.String(logging.FieldTitle, title))
	if err == nil {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "upstream search complete",
			slog.String(logging.FieldTitle, title), slog.Int(logging.FieldCount, len(records)))
	}
	return records, err
}

func (p *instrumentedProvider) LookupGame(ctx context.Context, id string) (json.RawMessage, error) {
	start := p.now()
	payload, err := p.inner.LookupGame(ctx, id)
	p.observe(ctx, OpLookup, start, err, slog.String(logging.FieldGameID, id))
	return payload, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	kind := KindOf(err)
	p.metrics.RecordProviderAttempt(p.name, op, time.Since(start), string(kind))
	if err == nil {
		return
	}
	args := append([]any{
		slog.String(logging.FieldOp, op),
		slog.String(logging.FieldKind, string(kind)),
		slog.Any("error", err),
	}, attrs...)
	logWithProvider(ctx, p.logger, slog.LevelError, p.name, "upstream call failed", args...)
}

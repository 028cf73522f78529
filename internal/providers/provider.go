package providers

//go:generate mockgen -destination=../mocks/provider_mock.go -package=mocks github.com/preston-bernstein/gamescout-service/internal/providers PriceProvider

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
)

// SearchParams are the fixed options sent with a title search.
type SearchParams struct {
	Limit int
	Exact bool
}

// PriceProvider is the upstream pricing API. Each method issues exactly one
// outbound call; failures are *UpstreamError values.
type PriceProvider interface {
	// SearchGames lists games whose title matches title.
	SearchGames(ctx context.Context, title string, params SearchParams) ([]games.Record, error)
	// LookupGame returns the upstream payload for a single game untouched.
	LookupGame(ctx context.Context, id string) (json.RawMessage, error)
}

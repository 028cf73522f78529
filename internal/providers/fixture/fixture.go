package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/providers"
)

// Provider serves a static catalogue for local runs without network access.
type Provider struct {
	catalogue []games.Record
}

// New creates a fixture provider backed by the built-in catalogue.
func New() *Provider {
	return &Provider{catalogue: defaultCatalogue()}
}

// SearchGames returns catalogue entries whose name contains title, case-insensitively.
// Exact requests a whole-name match instead.
func (p *Provider) SearchGames(ctx context.Context, title string, params providers.SearchParams) ([]games.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, providers.Unavailable("fixture", providers.OpSearch, 0, err)
	}
	needle := strings.ToLower(strings.TrimSpace(title))
	out := make([]games.Record, 0)
	for _, rec := range p.catalogue {
		name := strings.ToLower(rec.ExternalName)
		if (params.Exact && name == needle) || (!params.Exact && strings.Contains(name, needle)) {
			out = append(out, rec)
		}
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

// LookupGame returns a details payload shaped like the upstream one.
func (p *Provider) LookupGame(ctx context.Context, id string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, providers.Unavailable("fixture", providers.OpLookup, 0, err)
	}
	for _, rec := range p.catalogue {
		if rec.GameID != id {
			continue
		}
		details := map[string]any{
			"info":  map[string]string{"title": rec.ExternalName, "thumb": rec.ThumbnailURL},
			"deals": []map[string]string{},
		}
		if rec.CheapestPrice != nil && rec.CheapestDealID != nil {
			details["deals"] = []map[string]string{{"dealID": *rec.CheapestDealID, "price": *rec.CheapestPrice}}
		}
		data, err := json.Marshal(details)
		if err != nil {
			return nil, providers.Malformed("fixture", providers.OpLookup, err)
		}
		return data, nil
	}
	// Unknown ids come back as an empty array upstream.
	return json.RawMessage(`[]`), nil
}

func defaultCatalogue() []games.Record {
	priced := func(id, name, price, deal string) games.Record {
		return games.Record{
			GameID:         id,
			ExternalName:   name,
			CheapestPrice:  &price,
			CheapestDealID: &deal,
			ThumbnailURL:   fmt.Sprintf("https://cdn.example.test/thumbs/%s.jpg", id),
		}
	}
	return []games.Record{
		priced("612", "Portal 2", "4.99", "fixture-deal-612"),
		priced("68", "Portal", "1.99", "fixture-deal-68"),
		priced("167613", "The Witcher 3: Wild Hunt", "7.99", "fixture-deal-167613"),
		priced("223007", "Elden Ring", "35.99", "fixture-deal-223007"),
		{GameID: "5000", ExternalName: "Portal Prelude", ThumbnailURL: "https://cdn.example.test/thumbs/5000.jpg"},
	}
}

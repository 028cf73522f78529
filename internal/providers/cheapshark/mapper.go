package cheapshark

import (
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
)

func mapGame(g gameResponse) games.Record {
	rec := games.Record{
		GameID:         strings.TrimSpace(g.GameID),
		ExternalName:   strings.TrimSpace(g.External),
		CheapestDealID: optional(g.CheapestDealID),
		ThumbnailURL:   strings.TrimSpace(g.Thumb),
	}
	if g.Cheapest != nil {
		price := string(*g.Cheapest)
		rec.CheapestPrice = optional(&price)
	}
	if rec.ExternalName == "" {
		rec.ExternalName = strings.TrimSpace(g.InternalName)
	}
	return rec
}

func mapGames(in []gameResponse) []games.Record {
	out := make([]games.Record, 0, len(in))
	for _, g := range in {
		out = append(out, mapGame(g))
	}
	return out
}

// optional drops nil and blank values so the domain only sees present fields.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

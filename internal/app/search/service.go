package search

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/providers"
)

const defaultRedirectURL = "https://www.cheapshark.com/redirect"

// Config holds the fixed search options and the storefront redirect base.
type Config struct {
	Params      providers.SearchParams
	RedirectURL string
}

// Service validates queries, calls the price provider once per request and maps
// upstream records into results.
type Service struct {
	provider    providers.PriceProvider
	params      providers.SearchParams
	redirectURL string
}

// NewService constructs a Service backed by provider.
func NewService(provider providers.PriceProvider, cfg Config) *Service {
	redirect := strings.TrimSpace(cfg.RedirectURL)
	if redirect == "" {
		redirect = defaultRedirectURL
	}
	return &Service{
		provider:    provider,
		params:      cfg.Params,
		redirectURL: redirect,
	}
}

// Search looks up games by title. A blank title fails with ErrInvalidArgument
// before any upstream call.
func (s *Service) Search(ctx context.Context, title string) (games.ResponseEnvelope, error) {
	query := strings.TrimSpace(title)
	if query == "" {
		return games.ResponseEnvelope{}, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}

	records, err := s.provider.SearchGames(ctx, query, s.params)
	if err != nil {
		return games.ResponseEnvelope{}, err
	}

	results := make([]games.GameResult, 0, len(records))
	for _, r := range records {
		results = append(results, s.toResult(r))
	}
	return games.NewResponseEnvelope(query, results), nil
}

// GameByID returns the upstream payload for one game without reshaping it.
func (s *Service) GameByID(ctx context.Context, id string) (json.RawMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}
	return s.provider.LookupGame(ctx, id)
}

func (s *Service) toResult(r games.Record) games.GameResult {
	result := games.GameResult{
		GameID:       r.GameID,
		Name:         r.ExternalName,
		ThumbnailURL: r.ThumbnailURL,
	}
	if price, ok := parsePrice(r.CheapestPrice); ok {
		result.LowestPrice = &price
	}
	if r.CheapestDealID != nil && strings.TrimSpace(*r.CheapestDealID) != "" {
		result.DealReference = s.dealURL(strings.TrimSpace(*r.CheapestDealID))
	}
	return result
}

func (s *Service) dealURL(dealID string) string {
	return s.redirectURL + "?dealID=" + url.QueryEscape(dealID)
}

// parsePrice accepts only finite decimal numbers. A missing or non-numeric price
// means the price is unavailable.
func parsePrice(raw *string) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

package testutil

import (
	"github.com/preston-bernstein/gamescout-service/internal/app/search"
	"github.com/preston-bernstein/gamescout-service/internal/providers"
)

// TestRedirectURL is the deal redirect base used by NewSearchService.
const TestRedirectURL = "https://deals.test/redirect"

// NewSearchService builds a search service over provider with the default search options.
func NewSearchService(provider providers.PriceProvider) *search.Service {
	return search.NewService(provider, search.Config{
		Params:      providers.SearchParams{Limit: 10},
		RedirectURL: TestRedirectURL,
	})
}

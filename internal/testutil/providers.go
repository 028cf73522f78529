package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/providers"
)

// StubProvider returns canned data and counts calls.
type StubProvider struct {
	Records []games.Record
	Payload json.RawMessage
	Err     error

	mu          sync.Mutex
	searchCalls int
	lookupCalls int
	lastTitle   string
	lastParams  providers.SearchParams
	lastID      string
}

func (p *StubProvider) SearchGames(ctx context.Context, title string, params providers.SearchParams) ([]games.Record, error) {
	_ = ctx
	p.mu.Lock()
	p.searchCalls++
	p.lastTitle = title
	p.lastParams = params
	p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Records, nil
}

func (p *StubProvider) LookupGame(ctx context.Context, id string) (json.RawMessage, error) {
	_ = ctx
	p.mu.Lock()
	p.lookupCalls++
	p.lastID = id
	p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Payload, nil
}

// SearchCalls reports how many searches reached the stub.
func (p *StubProvider) SearchCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searchCalls
}

// LookupCalls reports how many lookups reached the stub.
func (p *StubProvider) LookupCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lookupCalls
}

// LastSearch returns the title and params of the most recent search.
func (p *StubProvider) LastSearch() (string, providers.SearchParams) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastTitle, p.lastParams
}

// LastLookupID returns the id of the most recent lookup.
func (p *StubProvider) LastLookupID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastID
}

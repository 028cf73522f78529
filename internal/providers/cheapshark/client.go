package cheapshark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/providers"
)

var errNotArray = errors.New("expected a JSON array of games")

// Config controls how the client reaches the CheapShark API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client queries the CheapShark games endpoint.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a CheapShark client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// SearchGames issues one GET /games?title= call and decodes the array of matches.
func (c *Client) SearchGames(ctx context.Context, title string, params providers.SearchParams) ([]games.Record, error) {
	q := url.Values{}
	q.Set("title", title)
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	q.Set("exact", exactFlag(params.Exact))

	body, err := c.get(ctx, providers.OpSearch, q)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, providers.Malformed(providerName, providers.OpSearch, errNotArray)
	}
	var payload []gameResponse
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, providers.Malformed(providerName, providers.OpSearch, err)
	}
	return mapGames(payload), nil
}

// LookupGame issues one GET /games?id= call and returns the body as-is once it is
// known to be valid JSON.
func (c *Client) LookupGame(ctx context.Context, id string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", id)

	body, err := c.get(ctx, providers.OpLookup, q)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, providers.Malformed(providerName, providers.OpLookup, errors.New("response is not valid JSON"))
	}
	return json.RawMessage(trimmed), nil
}

func (c *Client) get(ctx context.Context, op string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, providers.Unavailable(providerName, op, 0, err)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.Unavailable(providerName, op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, providers.Unavailable(providerName, op, resp.StatusCode,
			fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(snippet))))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, providers.Unavailable(providerName, op, resp.StatusCode, err)
	}
	if len(body) > maxBodyBytes {
		return nil, providers.Malformed(providerName, op, fmt.Errorf("response exceeds %d bytes", maxBodyBytes))
	}
	return body, nil
}

func exactFlag(exact bool) string {
	if exact {
		return "1"
	}
	return "0"
}

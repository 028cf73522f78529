package games

// Record is one game as the upstream pricing API reports it. Optional fields are
// nil when the upstream omitted them.
type Record struct {
	GameID         string
	ExternalName   string
	CheapestPrice  *string
	CheapestDealID *string
	ThumbnailURL   string
}

// GameResult is the client-facing shape of a Record. LowestPrice and DealReference
// are absent when the upstream had no usable price.
type GameResult struct {
	GameID        string   `json:"gameId,omitempty"`
	Name          string   `json:"name"`
	LowestPrice   *float64 `json:"lowestPrice,omitempty"`
	DealReference string   `json:"dealReference,omitempty"`
	ThumbnailURL  string   `json:"thumbnailUrl,omitempty"`
}

// PriceAvailable reports whether the result carries a lowest price.
func (g GameResult) PriceAvailable() bool {
	return g.LowestPrice != nil
}

// ResponseEnvelope wraps every successful search.
type ResponseEnvelope struct {
	Success     bool         `json:"success"`
	Query       string       `json:"query"`
	ResultCount int          `json:"resultCount"`
	Results     []GameResult `json:"results"`
}

// NewResponseEnvelope builds a successful envelope whose ResultCount always matches
// the results slice; a nil slice is encoded as [].
func NewResponseEnvelope(query string, results []GameResult) ResponseEnvelope {
	if results == nil {
		results = []GameResult{}
	}
	return ResponseEnvelope{
		Success:     true,
		Query:       query,
		ResultCount: len(results),
		Results:     results,
	}
}

// DetailsEnvelope wraps the raw upstream payload returned by a lookup by id.
type DetailsEnvelope struct {
	Success bool `json:"success"`
	Details any  `json:"detalles"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Code      string   `json:"code,omitempty"`
	Detail    string   `json:"detail,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
	Available []string `json:"available,omitempty"`
}

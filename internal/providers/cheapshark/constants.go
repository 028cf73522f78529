package cheapshark

import "time"

const (
	providerName = "cheapshark"

	defaultBaseURL     = "https://www.cheapshark.com/api/1.0"
	defaultHTTPTimeout = 5 * time.Second
	userAgent          = "gamescout-service/1.0"

	// Upper bound on a decoded upstream body.
	maxBodyBytes = 2 << 20
	// Bytes of a non-2xx body kept for diagnostics.
	maxErrorBodyBytes = 512
)

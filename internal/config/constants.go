package config

import "time"

const (
	envFile = "ENV_FILE"

	defaultEnvFile = ".env"

	// Upstream search parameters; the pricing API caps results server-side as well.
	defaultSearchLimit = 10
	defaultTimeout     = 5 * time.Second
)

package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `env:"METRICS_ENABLED" env-default:"true"`
	Port         string `env:"METRICS_PORT" env-default:"9090"`
	OtlpEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" env-default:"gamescout-service"`
	OtlpInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"true"`
}

package logging

import "log/slog"

// Structured log keys shared across handlers, middleware and providers.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldOp         = "op"
	FieldKind       = "kind"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldQuery      = "query"
	FieldClientIP   = "client_ip"
	FieldStatusCode = "status_code"
	FieldTitle      = "title"
	FieldGameID     = "game_id"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable covers transport failures, timeouts and non-2xx responses.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamMalformed means the upstream answered with a payload of the wrong shape.
	ErrUpstreamMalformed = errors.New("upstream payload malformed")
)

// Kind classifies an upstream failure for logs and metrics.
type Kind string

const (
	KindUnavailable Kind = "upstream_unavailable"
	KindMalformed   Kind = "upstream_malformed"
)

// UpstreamError describes one failed upstream call.
type UpstreamError struct {
	Provider   string
	Op         string
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Provider, e.Op, e.sentinel())
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind so callers can use errors.Is.
func (e *UpstreamError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *UpstreamError) sentinel() error {
	if e.Kind == KindMalformed {
		return ErrUpstreamMalformed
	}
	return ErrUpstreamUnavailable
}

// Unavailable builds a KindUnavailable error.
func Unavailable(provider, op string, status int, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Op: op, Kind: KindUnavailable, StatusCode: status, Err: err}
}

// Malformed builds a KindMalformed error.
func Malformed(provider, op string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Op: op, Kind: KindMalformed, Err: err}
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// KindOf reports the failure kind of err. Errors that did not come from a provider
// (a cancelled context, for instance) count as unavailable.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if upErr, ok := AsUpstreamError(err); ok {
		return upErr.Kind
	}
	if errors.Is(err, ErrUpstreamMalformed) {
		return KindMalformed
	}
	return KindUnavailable
}

package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	errorKinds      map[string]int
	lastCallLatency time.Duration
}

// Recorder keeps in-memory counters for upstream calls and forwards every
// observation to the OpenTelemetry instruments when they are configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt counts one upstream call. kind is empty on success and
// names the failure class otherwise.
func (r *Recorder) RecordProviderAttempt(provider, op string, duration time.Duration, kind string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{errorKinds: make(map[string]int)}
		r.stats[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if kind != "" {
		stats.errors++
		stats.errorKinds[kind]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, op, duration, kind)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// Snapshot is a copy of the stats recorded for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	ErrorKinds      map[string]int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	kinds := make(map[string]int, len(stats.errorKinds))
	for k, v := range stats.errorKinds {
		kinds[k] = v
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		ErrorKinds:      kinds,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

package metrics

import (
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("cheapshark", "search", 10*time.Millisecond, "")
	rec.RecordProviderAttempt("cheapshark", "search", 15*time.Millisecond, "upstream_malformed")
	rec.RecordProviderAttempt("cheapshark", "lookup", 20*time.Millisecond, "upstream_unavailable")

	if got := rec.ProviderCalls("cheapshark"); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
	if got := rec.ProviderErrors("cheapshark"); got != 2 {
		t.Fatalf("expected 2 errors, got %d", got)
	}

	snap := rec.Snapshot("cheapshark")
	if snap.LastCallLatency != 20*time.Millisecond {
		t.Fatalf("expected last latency to be 20ms, got %s", snap.LastCallLatency)
	}
	if snap.ErrorKinds["upstream_malformed"] != 1 || snap.ErrorKinds["upstream_unavailable"] != 1 {
		t.Fatalf("unexpected error kinds %+v", snap.ErrorKinds)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("fixture", "search", time.Millisecond, "upstream_unavailable")

	snap := rec.Snapshot("fixture")
	snap.ErrorKinds["upstream_unavailable"] = 99

	if got := rec.Snapshot("fixture").ErrorKinds["upstream_unavailable"]; got != 1 {
		t.Fatalf("expected recorder state untouched, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("cheapshark", "search", time.Millisecond, "")
	rec.RecordHTTPRequest("GET", "/api/health", 200, time.Millisecond)
	if snap := rec.Snapshot("cheapshark"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestUnknownProviderSnapshotIsEmpty(t *testing.T) {
	if snap := NewRecorder().Snapshot("missing"); snap.Calls != 0 || snap.Errors != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetch("/teams/:id", 10*time.Millisecond, nil)
	rec.RecordFetch("/teams/:id", 15*time.Millisecond, errors.New("boom"))

	if got := rec.FetchCalls("/teams/:id"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.FetchErrors("/teams/:id"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("/teams/:id")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("/schedule"); other != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for unknown endpoint, got %+v", other)
	}
}

func TestRecorderTracksDegradedSections(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDegraded("previous.media")
	rec.RecordDegraded("previous.media")
	rec.RecordDegraded("next.opponent")

	if got := rec.DegradedCount("previous.media"); got != 2 {
		t.Fatalf("expected 2 degraded media sections, got %d", got)
	}
	if got := rec.DegradedCount("next.opponent"); got != 1 {
		t.Fatalf("expected 1 degraded opponent section, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("/teams/:id", time.Millisecond, nil)
	rec.RecordDegraded("roster")
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.FetchCalls("/teams/:id") != 0 || rec.DegradedCount("roster") != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}

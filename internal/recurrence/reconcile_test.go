package recurrence

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func materializedAt(seriesID uuid.UUID, start time.Time) Event {
	return Event{
		ID:           uuid.NewString(),
		SeriesID:     &seriesID,
		StartAt:      start,
		EndAt:        start.Add(50 * time.Minute),
		Kind:         KindOccurrence,
		Status:       "scheduled",
		Materialized: true,
	}
}

func virtualAt(seriesID uuid.UUID, start time.Time) Event {
	return Event{
		ID:       VirtualID(seriesID, start),
		SeriesID: &seriesID,
		StartAt:  start,
		EndAt:    start.Add(50 * time.Minute),
		Kind:     KindOccurrence,
		Status:   "scheduled",
	}
}

func TestReconcile_SuppressionTolerance(t *testing.T) {
	seriesID := uuid.New()
	base := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		drift      time.Duration
		suppressed bool
	}{
		{"exact match", 0, true},
		{"30s later", 30 * time.Second, true},
		{"30s earlier", -30 * time.Second, true},
		{"exactly tolerance", 60 * time.Second, true},
		{"120s later", 120 * time.Second, false},
		{"120s earlier", -120 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []Event{materializedAt(seriesID, base)}
			cands := []Event{virtualAt(seriesID, base.Add(tt.drift))}

			merged := Reconcile(rows, cands, DefaultSuppressionTolerance)

			wantLen := 2
			if tt.suppressed {
				wantLen = 1
			}
			if len(merged) != wantLen {
				t.Fatalf("got %d events, want %d", len(merged), wantLen)
			}
			if tt.suppressed && !merged[0].Materialized {
				t.Error("surviving event should be the materialized row")
			}
		})
	}
}

func TestReconcile_DifferentSeriesNotSuppressed(t *testing.T) {
	base := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)
	rows := []Event{materializedAt(uuid.New(), base)}
	cands := []Event{virtualAt(uuid.New(), base)}

	merged := Reconcile(rows, cands, DefaultSuppressionTolerance)
	if len(merged) != 2 {
		t.Fatalf("got %d events, want 2: a row from one series must not suppress another series' occurrence", len(merged))
	}
}

func TestReconcile_StandaloneRowsPassThrough(t *testing.T) {
	base := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)
	standalone := Event{
		ID:           uuid.NewString(),
		StartAt:      base,
		EndAt:        base.Add(time.Hour),
		Kind:         KindSingle,
		Status:       "scheduled",
		Materialized: true,
	}
	cand := virtualAt(uuid.New(), base)

	merged := Reconcile([]Event{standalone}, []Event{cand}, DefaultSuppressionTolerance)
	if len(merged) != 2 {
		t.Fatalf("got %d events, want 2", len(merged))
	}
}

func TestReconcile_SortedAscendingTiesMaterializedFirst(t *testing.T) {
	seriesA := uuid.New()
	seriesB := uuid.New()
	base := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)

	rows := []Event{
		materializedAt(seriesA, base.Add(2*time.Hour)),
		materializedAt(seriesA, base),
	}
	cands := []Event{
		virtualAt(seriesB, base), // exact tie with a materialized row
		virtualAt(seriesB, base.Add(time.Hour)),
	}

	merged := Reconcile(rows, cands, DefaultSuppressionTolerance)
	if len(merged) != 4 {
		t.Fatalf("got %d events, want 4", len(merged))
	}

	for i := 1; i < len(merged); i++ {
		if merged[i].StartAt.Before(merged[i-1].StartAt) {
			t.Fatalf("events not sorted ascending at index %d", i)
		}
	}
	if !merged[0].Materialized || merged[1].Materialized {
		t.Error("on an exact start tie, the materialized row must come first")
	}
}

func TestReconcile_SurvivorsFlaggedNeedsPersist(t *testing.T) {
	seriesID := uuid.New()
	base := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)

	rows := []Event{materializedAt(seriesID, base)}
	cands := []Event{
		virtualAt(seriesID, base),                   // suppressed
		virtualAt(seriesID, base.Add(7*24*time.Hour)), // survives
	}

	merged := Reconcile(rows, cands, DefaultSuppressionTolerance)
	if len(merged) != 2 {
		t.Fatalf("got %d events, want 2", len(merged))
	}
	for _, ev := range merged {
		if ev.Materialized && ev.NeedsPersist {
			t.Error("materialized rows must not be flagged NeedsPersist")
		}
		if !ev.Materialized && !ev.NeedsPersist {
			t.Error("surviving virtual occurrences must be flagged NeedsPersist")
		}
	}
}

func TestReconcile_ZeroToleranceFallsBackToDefault(t *testing.T) {
	seriesID := uuid.New()
	base := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)

	rows := []Event{materializedAt(seriesID, base)}
	cands := []Event{virtualAt(seriesID, base.Add(30*time.Second))}

	merged := Reconcile(rows, cands, 0)
	if len(merged) != 1 {
		t.Errorf("zero tolerance should fall back to the 60s default and suppress, got %d events", len(merged))
	}
}

func TestVirtualID_StableAndDistinct(t *testing.T) {
	seriesID := uuid.New()
	start := time.Date(2024, time.January, 8, 14, 0, 0, 0, time.UTC)

	if VirtualID(seriesID, start) != VirtualID(seriesID, start) {
		t.Error("VirtualID must be deterministic for identical inputs")
	}
	if VirtualID(seriesID, start) == VirtualID(seriesID, start.Add(time.Hour)) {
		t.Error("VirtualID must differ for different instants")
	}
	if VirtualID(seriesID, start) == VirtualID(uuid.New(), start) {
		t.Error("VirtualID must differ for different series")
	}

	// The instant is keyed in UTC, so equal instants in different zones agree.
	ny, err := LoadZone("America/New_York")
	if err != nil {
		t.Fatalf("LoadZone failed: %v", err)
	}
	if VirtualID(seriesID, start) != VirtualID(seriesID, start.In(ny)) {
		t.Error("VirtualID must be zone-independent for equal instants")
	}
}

package recurrence

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultSuppressionTolerance absorbs rounding drift between a stored row
// and a freshly recomputed occurrence. It is not meant to merge genuinely
// different schedules.
const DefaultSuppressionTolerance = 60 * time.Second

type EventKind string

const (
	KindSingle     EventKind = "single"
	KindOccurrence EventKind = "occurrence"
)

// Event is one entry in the unified calendar: either a persisted appointment
// row or a virtual occurrence computed from a series.
type Event struct {
	ID       string     `json:"id"`
	SeriesID *uuid.UUID `json:"series_id,omitempty"`
	StaffID  uuid.UUID  `json:"staff_id"`
	ClientID uuid.UUID  `json:"client_id"`
	Title    string     `json:"title"`
	StartAt  time.Time  `json:"start_at"`
	EndAt    time.Time  `json:"end_at"`
	Kind     EventKind  `json:"appointment_type"`
	Status   string     `json:"status"`
	Cost     *int64     `json:"cost,omitempty"`

	// Materialized marks events backed by a database row. A materialized
	// event is authoritative over any virtual occurrence near its instant.
	Materialized bool `json:"materialized"`

	// NeedsPersist marks virtual occurrences the caller may materialize.
	// Reconciliation itself never writes; persisting stays on the caller so
	// the read path has no side effects.
	NeedsPersist bool `json:"-"`
}

// VirtualID derives the stable synthetic identity of a computed occurrence
// from its series and start instant. Repeated queries over the same window
// produce the same IDs, which UI diffing depends on.
func VirtualID(seriesID uuid.UUID, startAt time.Time) string {
	return seriesID.String() + ":" + strconv.FormatInt(startAt.UTC().Unix(), 10)
}

// Reconcile merges persisted rows with virtual candidates into one sorted
// calendar. A candidate is suppressed when its series already has a
// materialized row within tolerance of the candidate's start. Surviving
// candidates come back flagged NeedsPersist. Ordering is ascending by start
// instant; on an exact tie the materialized row renders first.
func Reconcile(materialized, virtual []Event, tolerance time.Duration) []Event {
	if tolerance <= 0 {
		tolerance = DefaultSuppressionTolerance
	}

	bySeries := make(map[uuid.UUID][]time.Time)
	for _, ev := range materialized {
		if ev.SeriesID != nil {
			bySeries[*ev.SeriesID] = append(bySeries[*ev.SeriesID], ev.StartAt)
		}
	}

	merged := make([]Event, 0, len(materialized)+len(virtual))
	merged = append(merged, materialized...)

	for _, cand := range virtual {
		if cand.SeriesID != nil && suppressed(bySeries[*cand.SeriesID], cand.StartAt, tolerance) {
			continue
		}
		cand.Materialized = false
		cand.NeedsPersist = true
		merged = append(merged, cand)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].StartAt.Equal(merged[j].StartAt) {
			return merged[i].StartAt.Before(merged[j].StartAt)
		}
		return merged[i].Materialized && !merged[j].Materialized
	})

	return merged
}

func suppressed(rows []time.Time, start time.Time, tolerance time.Duration) bool {
	for _, rowStart := range rows {
		diff := rowStart.Sub(start)
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			return true
		}
	}
	return false
}

package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/juniperhealth/juniper_backend/internal/recurrence"
)

func nyZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func TestResolveWindow_DateOnlyEndIsInclusive(t *testing.T) {
	ny := nyZone(t)
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, ny)

	start, end, err := resolveWindow(Query{Start: "2024-01-01", End: "2024-01-22"}, ny, now, 30, 7)
	if err != nil {
		t.Fatalf("resolveWindow failed: %v", err)
	}

	if start.Location() != ny || start.Day() != 1 || start.Hour() != 0 {
		t.Errorf("start = %s, want 2024-01-01 00:00 in New York", start)
	}
	// The end date itself still belongs to the window.
	if end.Day() != 22 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("end = %s, want 2024-01-22 23:59", end)
	}

	// A weekly 09:00 series over that window yields all four Mondays,
	// including the one on the end date.
	occs, err := recurrence.Expand(recurrence.ExpandRequest{
		Rule:        "FREQ=WEEKLY",
		SeriesStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, ny),
		StartHour:   9,
		WindowStart: start,
		WindowEnd:   end,
		Now:         now,
		Location:    ny,
	})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(occs) != 4 {
		t.Fatalf("got %d occurrences, want 4 (Jan 1, 8, 15, 22)", len(occs))
	}
	if occs[3].Day() != 22 {
		t.Errorf("last occurrence = %s, want January 22", occs[3].Format("2006-01-02"))
	}
}

func TestResolveWindow_BareDatesUseCallerZone(t *testing.T) {
	ny := nyZone(t)
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, ny)

	start, _, err := resolveWindow(Query{Start: "2024-06-15", End: "2024-06-30"}, ny, now, 30, 7)
	if err != nil {
		t.Fatalf("resolveWindow failed: %v", err)
	}
	// Midnight New York, not midnight UTC: June is EDT (UTC-4).
	if got := start.UTC(); got.Day() != 15 || got.Hour() != 4 {
		t.Errorf("start UTC = %s, want 2024-06-15 04:00", got)
	}
}

func TestResolveWindow_RFC3339PassesThrough(t *testing.T) {
	ny := nyZone(t)
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, ny)

	start, end, err := resolveWindow(Query{
		Start: "2024-01-05T08:30:00Z",
		End:   "2024-02-01T17:00:00-05:00",
	}, ny, now, 30, 7)
	if err != nil {
		t.Fatalf("resolveWindow failed: %v", err)
	}
	if !start.Equal(time.Date(2024, time.January, 5, 8, 30, 0, 0, time.UTC)) {
		t.Errorf("start = %s, want 2024-01-05T08:30:00Z", start)
	}
	if !end.Equal(time.Date(2024, time.February, 1, 22, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %s, want 2024-02-01T22:00:00Z", end)
	}
}

func TestResolveWindow_DefaultsAnchorAtNow(t *testing.T) {
	ny := nyZone(t)
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, ny)

	start, end, err := resolveWindow(Query{}, ny, now, 30, 7)
	if err != nil {
		t.Fatalf("resolveWindow failed: %v", err)
	}
	if want := now.AddDate(0, 0, -30); !start.Equal(want) {
		t.Errorf("default start = %s, want %s", start, want)
	}
	if want := now.AddDate(0, 7, 0); !end.Equal(want) {
		t.Errorf("default end = %s, want %s", end, want)
	}
}

func TestResolveWindow_Invalid(t *testing.T) {
	ny := nyZone(t)
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, ny)

	tests := []struct {
		name string
		q    Query
	}{
		{"garbage start", Query{Start: "soon"}},
		{"garbage end", Query{End: "2024-13-45"}},
		{"end before start", Query{Start: "2024-03-20", End: "2024-03-10"}},
		{"end equals start", Query{Start: "2024-03-10T10:00:00Z", End: "2024-03-10T10:00:00Z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := resolveWindow(tt.q, ny, now, 30, 7)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("expected ErrInvalidWindow, got %v", err)
			}
		})
	}
}

package recurrence

import (
	"errors"
	"testing"
	"time"
)

func weeklyRequest(t *testing.T) ExpandRequest {
	t.Helper()
	ny := mustZone(t, "America/New_York")
	return ExpandRequest{
		Rule:        "FREQ=WEEKLY;INTERVAL=1",
		SeriesStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, ny),
		StartHour:   9,
		StartMinute: 0,
		WindowStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, ny),
		WindowEnd:   time.Date(2024, time.January, 22, 23, 59, 0, 0, ny),
		Now:         time.Date(2024, time.January, 1, 0, 0, 0, 0, ny),
		Location:    ny,
	}
}

func TestExpand_WeeklySeries(t *testing.T) {
	occs, err := Expand(weeklyRequest(t))
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	wantDays := []int{1, 8, 15, 22}
	if len(occs) != len(wantDays) {
		t.Fatalf("got %d occurrences, want %d", len(occs), len(wantDays))
	}
	for i, occ := range occs {
		if occ.Day() != wantDays[i] || occ.Month() != time.January {
			t.Errorf("occurrence %d = %s, want January %d", i, occ.Format("2006-01-02"), wantDays[i])
		}
		if occ.Hour() != 9 || occ.Minute() != 0 {
			t.Errorf("occurrence %d local clock = %02d:%02d, want 09:00", i, occ.Hour(), occ.Minute())
		}
		// January in New York is EST: 09:00 local is 14:00 UTC.
		if occ.UTC().Hour() != 14 {
			t.Errorf("occurrence %d UTC hour = %d, want 14", i, occ.UTC().Hour())
		}
	}
}

func TestExpand_AscendingNoDuplicates(t *testing.T) {
	req := weeklyRequest(t)
	req.Rule = "FREQ=DAILY"
	req.WindowEnd = time.Date(2024, time.March, 31, 23, 59, 0, 0, req.Location)

	occs, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(occs) == 0 {
		t.Fatal("expected occurrences")
	}
	for i := 1; i < len(occs); i++ {
		if !occs[i].After(occs[i-1]) {
			t.Fatalf("occurrences not strictly ascending at %d: %s then %s", i, occs[i-1], occs[i])
		}
	}

	start, end := req.EffectiveWindow()
	for _, occ := range occs {
		if occ.Before(start) || occ.After(end) {
			t.Errorf("occurrence %s outside effective window [%s, %s]", occ, start, end)
		}
	}
}

func TestExpand_Deterministic(t *testing.T) {
	req := weeklyRequest(t)
	first, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	second, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated expansion differs: %d vs %d occurrences", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("occurrence %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestExpand_GenerationCapClampsWindow(t *testing.T) {
	req := weeklyRequest(t)
	// Seven-month query window, but a 30-day generation cap.
	req.WindowEnd = time.Date(2024, time.August, 1, 0, 0, 0, 0, req.Location)
	req.CapDays = 30

	occs, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	capEnd := req.Now.AddDate(0, 0, 30)
	if len(occs) == 0 {
		t.Fatal("expected occurrences inside the cap")
	}
	for _, occ := range occs {
		if occ.After(capEnd) {
			t.Errorf("occurrence %s beyond now+30d cap %s", occ, capEnd)
		}
	}
}

func TestExpand_UntilDateClampsWindow(t *testing.T) {
	req := weeklyRequest(t)
	req.WindowEnd = time.Date(2024, time.June, 1, 0, 0, 0, 0, req.Location)
	until := time.Date(2024, time.January, 15, 0, 0, 0, 0, req.Location)
	req.Until = &until

	occs, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	// Jan 1, Jan 8, and Jan 15 itself (until is inclusive).
	if len(occs) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(occs))
	}
	if occs[2].Day() != 15 {
		t.Errorf("last occurrence = %s, want January 15", occs[2].Format("2006-01-02"))
	}
}

func TestExpand_ResumesAfterWatermark(t *testing.T) {
	req := weeklyRequest(t)
	// Everything through Jan 9 is already materialized.
	watermark := time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC)
	req.LastGeneratedUntil = &watermark

	occs, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if len(occs) != 2 {
		t.Fatalf("got %d occurrences, want 2 (Jan 15 and Jan 22)", len(occs))
	}
	if occs[0].Day() != 15 || occs[1].Day() != 22 {
		t.Errorf("occurrences = %s, %s; want Jan 15 and Jan 22",
			occs[0].Format("2006-01-02"), occs[1].Format("2006-01-02"))
	}
}

func TestExpand_WatermarkKeepsSameDayOccurrences(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	now := time.Date(2024, time.January, 1, 10, 0, 0, 0, ny)
	base := ExpandRequest{
		Rule:        "FREQ=WEEKLY",
		SeriesStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, ny),
		StartHour:   15,
		WindowStart: now,
		// Ends Jan 29 10:00, five hours before that Monday's occurrence.
		WindowEnd: now.AddDate(0, 0, 28),
		Now:       now,
		Location:  ny,
	}

	first, err := Expand(base)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("first pass got %d occurrences, want 4 (Jan 1, 8, 15, 22)", len(first))
	}

	// A materialization run stores its effective end as the watermark.
	_, watermark := base.EffectiveWindow()
	wm := watermark.UTC()

	next := base
	next.LastGeneratedUntil = &wm
	next.WindowEnd = now.AddDate(0, 0, 56)

	second, err := Expand(next)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	// Jan 29 15:00 sits between the watermark and the following midnight.
	// It was outside the first pass, so the follow-up must surface it.
	if len(second) == 0 {
		t.Fatal("expected occurrences after the watermark")
	}
	if second[0].Month() != time.January || second[0].Day() != 29 || second[0].Hour() != 15 {
		t.Errorf("first resumed occurrence = %s, want 2024-01-29 15:00",
			second[0].Format("2006-01-02 15:04"))
	}
}

func TestExpand_SeriesStartBoundsWindow(t *testing.T) {
	req := weeklyRequest(t)
	// Query window opens before the series exists.
	req.WindowStart = time.Date(2023, time.December, 1, 0, 0, 0, 0, req.Location)

	occs, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(occs) == 0 || occs[0].Year() != 2024 || occs[0].Day() != 1 {
		t.Errorf("first occurrence should be the series start 2024-01-01, got %v", occs)
	}
}

func TestExpand_EmptyEffectiveWindow(t *testing.T) {
	req := weeklyRequest(t)
	req.WindowStart = time.Date(2024, time.February, 1, 0, 0, 0, 0, req.Location)
	req.WindowEnd = time.Date(2024, time.January, 1, 0, 0, 0, 0, req.Location)

	occs, err := Expand(req)
	if err != nil {
		t.Fatalf("empty window must not be an error, got %v", err)
	}
	if len(occs) != 0 {
		t.Errorf("expected no occurrences, got %d", len(occs))
	}
}

func TestExpand_MalformedRule(t *testing.T) {
	req := weeklyRequest(t)
	req.Rule = "FREQ=SOMETIMES;WHENEVER"

	_, err := Expand(req)
	if err == nil {
		t.Fatal("expected error for malformed rule")
	}
	if !errors.Is(err, ErrInvalidRecurrenceRule) {
		t.Errorf("expected ErrInvalidRecurrenceRule, got %v", err)
	}
}

func TestExpand_DSTTransitionKeepsLocalClock(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	req := ExpandRequest{
		Rule:        "FREQ=WEEKLY",
		SeriesStart: time.Date(2024, time.March, 4, 0, 0, 0, 0, ny),
		StartHour:   9,
		WindowStart: time.Date(2024, time.March, 4, 0, 0, 0, 0, ny),
		WindowEnd:   time.Date(2024, time.March, 18, 23, 59, 0, 0, ny),
		Now:         time.Date(2024, time.March, 4, 0, 0, 0, 0, ny),
		Location:    ny,
	}

	occs, err := Expand(req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(occs) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(occs))
	}

	// Mar 4 is EST (14:00 UTC); Mar 11 and 18 are EDT (13:00 UTC). The local
	// clock stays 09:00 across the transition.
	wantUTCHours := []int{14, 13, 13}
	for i, occ := range occs {
		if occ.Hour() != 9 {
			t.Errorf("occurrence %d local hour = %d, want 9", i, occ.Hour())
		}
		if occ.UTC().Hour() != wantUTCHours[i] {
			t.Errorf("occurrence %d UTC hour = %d, want %d", i, occ.UTC().Hour(), wantUTCHours[i])
		}
	}
}

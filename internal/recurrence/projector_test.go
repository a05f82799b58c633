package recurrence

import (
	"errors"
	"testing"
	"time"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := LoadZone(name)
	if err != nil {
		t.Fatalf("LoadZone(%q) failed: %v", name, err)
	}
	return loc
}

func TestLoadZone_Invalid(t *testing.T) {
	tests := []struct {
		name string
		zone string
	}{
		{"empty", ""},
		{"garbage", "Not/AZone"},
		{"offset literal", "UTC+3:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadZone(tt.zone)
			if err == nil {
				t.Fatalf("expected error for zone %q", tt.zone)
			}
			if !errors.Is(err, ErrInvalidTimezone) {
				t.Errorf("expected ErrInvalidTimezone, got %v", err)
			}
		})
	}
}

func TestToUTC_DSTBoundaries(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		hour    int
		wantUTC string
	}{
		// EST (UTC-5)
		{"winter", 2024, time.January, 1, 9, "2024-01-01T14:00:00Z"},
		// EDT (UTC-4)
		{"summer", 2024, time.July, 1, 9, "2024-07-01T13:00:00Z"},
		// Day of the spring-forward transition (2024-03-10); 09:00 exists.
		{"spring forward day", 2024, time.March, 10, 9, "2024-03-10T13:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToUTC(tt.year, tt.month, tt.day, tt.hour, 0, ny)
			want, _ := time.Parse(time.RFC3339, tt.wantUTC)
			if !got.Equal(want) {
				t.Errorf("ToUTC = %s, want %s", got.Format(time.RFC3339), tt.wantUTC)
			}
		})
	}
}

func TestToUTC_SkippedLocalTimeResolvesDeterministically(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	// 02:30 on 2024-03-10 does not exist in New York. The projection must
	// still return some instant, and the same one every call.
	first := ToUTC(2024, time.March, 10, 2, 30, ny)
	second := ToUTC(2024, time.March, 10, 2, 30, ny)
	if !first.Equal(second) {
		t.Errorf("skipped local time resolved differently across calls: %s vs %s", first, second)
	}
}

func TestToLocalWallClock_RoundTrip(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	utc := ToUTC(2024, time.January, 8, 9, 30, ny)
	date, hour, minute := ToLocalWallClock(utc, ny)

	if date.Year() != 2024 || date.Month() != time.January || date.Day() != 8 {
		t.Errorf("round-trip date = %s, want 2024-01-08", date.Format("2006-01-02"))
	}
	if hour != 9 || minute != 30 {
		t.Errorf("round-trip clock = %02d:%02d, want 09:30", hour, minute)
	}
}

func TestAtTimeOfDay(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	day := time.Date(2024, time.June, 15, 23, 45, 12, 0, ny)
	got := AtTimeOfDay(day, 10, 0, ny)
	want := time.Date(2024, time.June, 15, 10, 0, 0, 0, ny)
	if !got.Equal(want) {
		t.Errorf("AtTimeOfDay = %s, want %s", got, want)
	}
}

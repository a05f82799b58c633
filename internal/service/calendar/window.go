package calendar

import (
	"time"

	"github.com/juniperhealth/juniper_backend/internal/recurrence"
)

// resolveWindow turns raw query bounds into concrete instants. Bare dates are
// interpreted in loc, and a date-only end covers its whole day, so asking for
// [2024-01-01, 2024-01-22] includes appointments on the 22nd. Empty bounds
// fall back to the default window anchored at now.
func resolveWindow(q Query, loc *time.Location, now time.Time, backDays, forwardMonths int) (time.Time, time.Time, error) {
	start := now.AddDate(0, 0, -backDays)
	end := now.AddDate(0, forwardMonths, 0)

	if q.Start != "" {
		t, _, err := parseWindowBound(q.Start, loc)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidWindow
		}
		start = t
	}
	if q.End != "" {
		t, dateOnly, err := parseWindowBound(q.End, loc)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidWindow
		}
		if dateOnly {
			t = recurrence.AtTimeOfDay(t, 23, 59, loc)
		}
		end = t
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}
	return start, end, nil
}

// parseWindowBound accepts an RFC3339 instant or a bare date. The second
// return reports the date-only case so the caller can widen an end bound.
func parseWindowBound(s string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), false, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

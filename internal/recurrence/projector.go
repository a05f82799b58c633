// Package recurrence implements the recurring-appointment engine: timezone
// projection, RRULE expansion against a bounded generation window, and the
// read-side reconciliation of persisted appointments with computed
// occurrences. Everything in this package is pure — no database access, no
// clocks other than the ones passed in.
package recurrence

import (
	"fmt"
	"time"
)

// LoadZone resolves an IANA zone name into a *time.Location.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty zone name", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// CombineLocal builds the local wall-clock instant for a calendar date plus
// a time-of-day in loc. Skipped or ambiguous local times around DST
// transitions resolve the way time.Date resolves them; no custom rules.
func CombineLocal(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

// ToUTC converts a local wall-clock date and time-of-day to its UTC instant.
// Recurrence math happens in local time; this is the single boundary where
// occurrences become UTC instants.
func ToUTC(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	return CombineLocal(year, month, day, hour, minute, loc).UTC()
}

// ToLocalWallClock is the inverse projection: the local calendar date
// (midnight in loc) and time-of-day of a UTC instant.
func ToLocalWallClock(utc time.Time, loc *time.Location) (date time.Time, hour, minute int) {
	local := utc.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), local.Hour(), local.Minute()
}

// AtTimeOfDay re-anchors t's calendar date in loc at hour:minute, keeping the
// date and replacing the clock.
func AtTimeOfDay(t time.Time, hour, minute int, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc)
}

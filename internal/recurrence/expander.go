package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ExpandRequest describes one series' recurrence within a query window.
// All times are wall-clock instants in Location; the caller converts the
// resulting occurrences to UTC via the projector.
type ExpandRequest struct {
	// Rule is the raw RRULE string, e.g. "FREQ=WEEKLY;INTERVAL=1".
	Rule string

	// SeriesStart is the first day the series exists (local). Its clock
	// component is ignored; StartHour/StartMinute position the occurrence
	// within each day.
	SeriesStart time.Time
	StartHour   int
	StartMinute int

	// WindowStart / WindowEnd are the requested query window (local).
	WindowStart time.Time
	WindowEnd   time.Time

	// Until is the series' hard-stop date (local, inclusive). Nil = none.
	Until *time.Time

	// CapDays limits generation to Now+CapDays. Zero = uncapped.
	CapDays int

	// LastGeneratedUntil is the watermark through which occurrences are known
	// to be materialized already. Expansion resumes at the watermark instant
	// itself; an occurrence landing exactly on it is re-covered, which is
	// harmless because materialization upserts and reconciliation suppresses.
	// Nil = no watermark.
	LastGeneratedUntil *time.Time

	// Now anchors the CapDays clamp. Callers pass their request-scoped
	// clock so expansion stays deterministic.
	Now time.Time

	Location *time.Location
}

// EffectiveWindow applies the series' clamps to the requested window:
// the start is pushed forward past the series start and the generation
// watermark, the end is pulled back by the generation cap and the hard-stop
// date. A start at or after the end means there is nothing to expand.
func (r ExpandRequest) EffectiveWindow() (start, end time.Time) {
	start = r.WindowStart

	seriesStart := AtTimeOfDay(r.SeriesStart, r.StartHour, r.StartMinute, r.Location)
	if seriesStart.After(start) {
		start = seriesStart
	}
	if r.LastGeneratedUntil != nil {
		// Resume at the watermark instant. Jumping to the next day boundary
		// instead would lose any occurrence falling between the watermark
		// and that midnight.
		if resume := r.LastGeneratedUntil.In(r.Location); resume.After(start) {
			start = resume
		}
	}

	end = r.WindowEnd
	if r.CapDays > 0 {
		capEnd := r.Now.In(r.Location).AddDate(0, 0, r.CapDays)
		if capEnd.Before(end) {
			end = capEnd
		}
	}
	if r.Until != nil {
		// Until is a date; occurrences on that day still count.
		untilEnd := AtTimeOfDay(r.Until.In(r.Location), 23, 59, r.Location)
		if untilEnd.Before(end) {
			end = untilEnd
		}
	}

	return start, end
}

// ValidateRule reports whether a recurrence rule string parses.
func ValidateRule(rule string) error {
	if _, err := rrule.StrToRRule(strings.TrimSpace(rule)); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecurrenceRule, rule, err)
	}
	return nil
}

// Expand evaluates the recurrence rule over the clamped window and returns
// the local occurrence instants, ascending, bounds inclusive. It is pure:
// identical inputs yield identical output. A window that clamps to nothing
// returns an empty slice, not an error; only an unparseable rule fails, and
// that failure wraps ErrInvalidRecurrenceRule so callers can skip the series
// instead of aborting a whole calendar query.
func Expand(req ExpandRequest) ([]time.Time, error) {
	if req.Location == nil {
		return nil, fmt.Errorf("%w: nil location", ErrInvalidTimezone)
	}

	rule, err := rrule.StrToRRule(strings.TrimSpace(req.Rule))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRecurrenceRule, req.Rule, err)
	}

	// Anchor DTSTART at the series' first day with its local time-of-day so
	// every generated instant carries the series clock.
	y, m, d := req.SeriesStart.In(req.Location).Date()
	rule.DTStart(CombineLocal(y, m, d, req.StartHour, req.StartMinute, req.Location))

	start, end := req.EffectiveWindow()
	if !start.Before(end) {
		return nil, nil
	}

	return rule.Between(start, end, true), nil
}

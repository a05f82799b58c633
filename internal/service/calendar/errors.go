package calendar

import "errors"

var (
	ErrSeriesNotFound   = errors.New("appointment series not found")
	ErrPracticeNotFound = errors.New("practice not found")
	ErrInvalidRule      = errors.New("recurrence rule does not parse")
	ErrInvalidTimezone  = errors.New("unknown timezone")
	ErrInvalidWindow    = errors.New("window end must be after window start")
	ErrSeriesInactive   = errors.New("appointment series is deactivated")
)

package recurrence

import "errors"

var (
	ErrInvalidTimezone       = errors.New("invalid timezone or local time input")
	ErrInvalidRecurrenceRule = errors.New("invalid recurrence rule")
)

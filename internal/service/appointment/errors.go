package appointment

import "errors"

var (
	ErrNotFound         = errors.New("appointment not found")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrOverlapping      = errors.New("staff member already has an appointment in this range")
	ErrStaffBusy        = errors.New("staff member has an external busy block in this range")
	ErrAlreadyCompleted = errors.New("appointment is already completed")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
)

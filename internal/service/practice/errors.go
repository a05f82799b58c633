package practice

import "errors"

var (
	ErrNotFound         = errors.New("practice not found")
	ErrSlugTaken        = errors.New("practice slug already in use")
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrEmailTaken       = errors.New("email already registered in this practice")
	ErrInvalidTimezone  = errors.New("invalid IANA timezone")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

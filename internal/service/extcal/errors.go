package extcal

import "errors"

var (
	ErrChannelNotFound    = errors.New("unknown watch channel")
	ErrConnectionNotFound = errors.New("no calendar connection for staff member")
	ErrConnectionDegraded = errors.New("calendar connection needs reconnect")

	// ErrSyncCursorExpired is returned by a Provider when the incremental
	// cursor is no longer valid (HTTP 410 from Google). The synchronizer
	// clears the stored token and lets the next notification run a full
	// resync; it never retries in a loop.
	ErrSyncCursorExpired = errors.New("provider sync cursor expired")

	ErrTokenRefresh = errors.New("provider access token refresh failed")
	ErrProviderAPI  = errors.New("provider API request failed")
)

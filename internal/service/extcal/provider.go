package extcal

import (
	"context"
	"time"
)

// Resource states carried in the provider's push notification header.
const (
	ResourceStateSync      = "sync"
	ResourceStateExists    = "exists"
	ResourceStateNotExists = "not_exists"
)

// EventChange is one entry in a provider delta feed. Start/End are nil for
// date-only (all-day) events, which busy/free sync ignores.
type EventChange struct {
	ID     string
	Status string // "confirmed" | "tentative" | "cancelled"
	Start  *time.Time
	End    *time.Time
}

func (c EventChange) Cancelled() bool {
	return c.Status == "cancelled"
}

// Timed reports whether the change carries concrete start and end instants.
func (c EventChange) Timed() bool {
	return c.Start != nil && c.End != nil
}

// TimeWindow bounds the initial fetch when no sync token exists yet.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

type ListResult struct {
	Changes       []EventChange
	NextSyncToken string
}

// Provider is the external calendar API surface the synchronizer depends on.
type Provider interface {
	// ListChanges fetches the delta since syncToken, or the bounded window
	// when syncToken is empty. Returns ErrSyncCursorExpired when the
	// provider reports the cursor invalid.
	ListChanges(ctx context.Context, accessToken, calendarID, syncToken string, window TimeWindow) (ListResult, error)

	// Watch registers a push channel for the calendar and returns the
	// provider-assigned resource id and channel expiry.
	Watch(ctx context.Context, accessToken, calendarID, channelID, address string) (resourceID string, expires time.Time, err error)
}

// TokenSource hides refresh-token storage and renewal behind "get a valid
// access token". Failures wrap ErrTokenRefresh.
type TokenSource interface {
	AccessToken(ctx context.Context, conn Connection) (string, error)
}

// Package extcal mirrors staff members' external calendars into opaque busy
// blocks. Only start and end instants cross the boundary; titles, attendees
// and descriptions never leave the provider.
package extcal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/juniperhealth/juniper_backend/config"
)

// SubjectConnectionDegraded is published when a refresh token stops working
// and the connection is flagged for reconnect; the notification worker emails
// the staff member.
const SubjectConnectionDegraded = "juniper.calendar.connection.degraded"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Notification is the decoded push from the provider webhook. ChannelID and
// ResourceState come from headers; the body is empty by design.
type Notification struct {
	ChannelID     string
	ResourceID    string
	ResourceState string
}

type ConnectRequest struct {
	StaffID      uuid.UUID
	AccountEmail string
	// RefreshTokenEnc is already encrypted by the OAuth callback handler.
	RefreshTokenEnc string
	CalendarID      string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// HandleNotification runs one incremental sync pass for the channel. The
	// only error a webhook handler should turn into a non-200 is
	// ErrChannelNotFound; everything else is absorbed so the provider does
	// not retry-storm us.
	HandleNotification(ctx context.Context, n Notification) error

	// Connect stores a staff member's provider link and registers the push
	// channel for their calendar.
	Connect(ctx context.Context, practiceID uuid.UUID, req ConnectRequest) (Connection, error)

	// Disconnect deactivates the connection, removes its watch channel and
	// purges all mirrored blocks for the staff member.
	Disconnect(ctx context.Context, practiceID, staffID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type extcalService struct {
	store    Store
	provider Provider
	tokens   TokenSource
	nc       *nats.Conn
	cfg      *config.Config
}

func New(store Store, provider Provider, tokens TokenSource, nc *nats.Conn, cfg *config.Config) Service {
	return &extcalService{
		store:    store,
		provider: provider,
		tokens:   tokens,
		nc:       nc,
		cfg:      cfg,
	}
}

func (s *extcalService) HandleNotification(ctx context.Context, n Notification) error {
	ch, err := s.store.ChannelByID(ctx, n.ChannelID)
	if err != nil {
		return err
	}

	// The provider sends a "sync" ping right after watch registration; it
	// carries no changes.
	if n.ResourceState == ResourceStateSync {
		return nil
	}

	conn, err := s.store.ConnectionFor(ctx, ch.StaffID, ch.Provider)
	if err != nil {
		if errors.Is(err, ErrConnectionNotFound) {
			slog.Warn("extcal: notification for channel without connection",
				"channel_id", n.ChannelID, "staff_id", ch.StaffID)
			return nil
		}
		return err
	}
	if conn.Status != "active" {
		// Already flagged; nothing to do until the staff member reconnects.
		return nil
	}

	accessToken, err := s.tokens.AccessToken(ctx, conn)
	if err != nil {
		if errors.Is(err, ErrTokenRefresh) {
			return s.degradeConnection(ctx, conn)
		}
		return err
	}

	return s.syncChannel(ctx, accessToken, ch)
}

// syncChannel pulls the delta feed and applies every change to the mirror.
func (s *extcalService) syncChannel(ctx context.Context, accessToken string, ch Channel) error {
	var syncToken string
	if ch.SyncToken != nil {
		syncToken = *ch.SyncToken
	}

	now := time.Now().UTC()
	window := TimeWindow{
		Start: now,
		End:   now.AddDate(0, 0, s.cfg.Calendar.InitialSyncWindowDays),
	}

	res, err := s.provider.ListChanges(ctx, accessToken, ch.ProviderCalendarID, syncToken, window)
	if err != nil {
		if errors.Is(err, ErrSyncCursorExpired) {
			// Drop the cursor and wait for the next notification to run a
			// fresh windowed fetch. No retry here.
			if serr := s.store.SaveSyncToken(ctx, ch.ChannelID, nil); serr != nil {
				return serr
			}
			slog.Info("extcal: sync cursor expired, cleared",
				"channel_id", ch.ChannelID, "staff_id", ch.StaffID)
			return nil
		}
		return fmt.Errorf("list provider changes: %w", err)
	}

	for _, change := range res.Changes {
		if err := s.applyChange(ctx, ch, change); err != nil {
			return err
		}
	}

	if res.NextSyncToken != "" {
		token := res.NextSyncToken
		if err := s.store.SaveSyncToken(ctx, ch.ChannelID, &token); err != nil {
			return err
		}
	}
	return nil
}

func (s *extcalService) applyChange(ctx context.Context, ch Channel, change EventChange) error {
	if change.Cancelled() {
		// Deleting an already-absent block is a no-op, so replayed
		// cancellations converge.
		return s.store.DeleteBlock(ctx, ch.StaffID, ch.Provider, change.ID)
	}
	if !change.Timed() {
		// All-day events have no instants to block out.
		return nil
	}
	return s.store.UpsertBlock(ctx, Block{
		PracticeID:      ch.PracticeID,
		StaffID:         ch.StaffID,
		Source:          ch.Provider,
		ExternalEventID: change.ID,
		Start:           change.Start.UTC(),
		End:             change.End.UTC(),
	})
}

func (s *extcalService) degradeConnection(ctx context.Context, conn Connection) error {
	if err := s.store.MarkConnectionDegraded(ctx, conn.ID); err != nil {
		return err
	}
	slog.Warn("extcal: connection degraded",
		"connection_id", conn.ID, "staff_id", conn.StaffID, "account", conn.AccountEmail)
	s.publishDegraded(conn)
	return nil
}

func (s *extcalService) publishDegraded(conn Connection) {
	if s.nc == nil {
		return
	}
	if err := s.nc.Publish(SubjectConnectionDegraded, []byte(conn.ID.String())); err != nil {
		slog.Warn("extcal: publish degraded event failed", "connection_id", conn.ID, "err", err)
	}
}

// ---------------------------------------------------------------------------
// Connection lifecycle
// ---------------------------------------------------------------------------

func (s *extcalService) Connect(ctx context.Context, practiceID uuid.UUID, req ConnectRequest) (Connection, error) {
	conn, err := s.store.SaveConnection(ctx, Connection{
		PracticeID:      practiceID,
		StaffID:         req.StaffID,
		Provider:        "google",
		AccountEmail:    req.AccountEmail,
		RefreshTokenEnc: req.RefreshTokenEnc,
	})
	if err != nil {
		return Connection{}, err
	}

	accessToken, err := s.tokens.AccessToken(ctx, conn)
	if err != nil {
		return Connection{}, err
	}

	channelID := uuid.New().String()
	resourceID, expires, err := s.provider.Watch(ctx, accessToken, req.CalendarID, channelID, s.cfg.Calendar.Google.WebhookURL)
	if err != nil {
		return Connection{}, fmt.Errorf("register watch channel: %w", err)
	}

	ch := Channel{
		PracticeID:         practiceID,
		StaffID:            req.StaffID,
		Provider:           conn.Provider,
		ChannelID:          channelID,
		ProviderCalendarID: req.CalendarID,
		ExpiresAt:          &expires,
	}
	if resourceID != "" {
		ch.ResourceID = &resourceID
	}
	if err := s.store.SaveChannel(ctx, ch); err != nil {
		return Connection{}, err
	}

	// Seed the mirror immediately instead of waiting for the first push.
	if err := s.syncChannel(ctx, accessToken, ch); err != nil {
		slog.Warn("extcal: initial sync failed, will recover on next notification",
			"channel_id", channelID, "staff_id", req.StaffID, "err", err)
	}

	return conn, nil
}

func (s *extcalService) Disconnect(ctx context.Context, practiceID, staffID uuid.UUID) error {
	conn, err := s.store.ConnectionFor(ctx, staffID, "google")
	if err != nil {
		return err
	}
	if conn.PracticeID != practiceID {
		return ErrConnectionNotFound
	}

	if err := s.store.DeactivateConnection(ctx, conn.ID); err != nil {
		return err
	}
	if err := s.store.RemoveStaffChannels(ctx, staffID, conn.Provider); err != nil {
		return err
	}
	if err := s.store.DeleteStaffBlocks(ctx, staffID, conn.Provider); err != nil {
		return err
	}
	return nil
}

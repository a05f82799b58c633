package extcal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/internal/repo"
	entconn "github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
	entchan "github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
	entblock "github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
)

// Connection and Channel are the synchronizer's views of the persisted
// rows; keeping them plain structs lets the state machine run against an
// in-memory store in tests.

type Connection struct {
	ID              uuid.UUID
	PracticeID      uuid.UUID
	StaffID         uuid.UUID
	Provider        string
	AccountEmail    string
	RefreshTokenEnc string
	Status          string // "active" | "needs_reconnect"
}

type Channel struct {
	PracticeID         uuid.UUID
	StaffID            uuid.UUID
	Provider           string
	ChannelID          string
	ResourceID         *string
	ProviderCalendarID string
	SyncToken          *string
	ExpiresAt          *time.Time
}

// Block is an opaque busy interval. There is deliberately no title or
// attendee field anywhere in the type; event content cannot leak because it
// is never carried.
type Block struct {
	PracticeID      uuid.UUID
	StaffID         uuid.UUID
	Source          string
	ExternalEventID string
	Start           time.Time
	End             time.Time
}

type Store interface {
	ChannelByID(ctx context.Context, channelID string) (Channel, error)
	SaveChannel(ctx context.Context, ch Channel) error
	RemoveChannel(ctx context.Context, channelID string) error
	RemoveStaffChannels(ctx context.Context, staffID uuid.UUID, provider string) error
	// SaveSyncToken stores the provider's new cursor; nil clears it and
	// forces a full resync on the next notification.
	SaveSyncToken(ctx context.Context, channelID string, token *string) error

	ConnectionFor(ctx context.Context, staffID uuid.UUID, provider string) (Connection, error)
	SaveConnection(ctx context.Context, conn Connection) (Connection, error)
	MarkConnectionDegraded(ctx context.Context, connID uuid.UUID) error
	DeactivateConnection(ctx context.Context, connID uuid.UUID) error

	// UpsertBlock is idempotent on (staff, source, external event id).
	UpsertBlock(ctx context.Context, b Block) error
	DeleteBlock(ctx context.Context, staffID uuid.UUID, source, externalEventID string) error
	DeleteStaffBlocks(ctx context.Context, staffID uuid.UUID, source string) error
}

// ---------------------------------------------------------------------------
// ent-backed implementation
// ---------------------------------------------------------------------------

type entStore struct {
	db *repo.Client
}

func NewStore(db *repo.Client) Store {
	return &entStore{db: db}
}

func (s *entStore) ChannelByID(ctx context.Context, channelID string) (Channel, error) {
	row, err := s.db.CalendarWatchChannel.Query().
		Where(entchan.ChannelID(channelID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return Channel{}, ErrChannelNotFound
		}
		return Channel{}, fmt.Errorf("get channel: %w", err)
	}
	return Channel{
		PracticeID:         row.PracticeID,
		StaffID:            row.StaffID,
		Provider:           string(row.Provider),
		ChannelID:          row.ChannelID,
		ResourceID:         row.ResourceID,
		ProviderCalendarID: row.ProviderCalendarID,
		SyncToken:          row.SyncToken,
		ExpiresAt:          row.ExpiresAt,
	}, nil
}

func (s *entStore) SaveChannel(ctx context.Context, ch Channel) error {
	c := s.db.CalendarWatchChannel.Create().
		SetPracticeID(ch.PracticeID).
		SetStaffID(ch.StaffID).
		SetProvider(entchan.Provider(ch.Provider)).
		SetChannelID(ch.ChannelID).
		SetProviderCalendarID(ch.ProviderCalendarID)
	if ch.ResourceID != nil {
		c = c.SetResourceID(*ch.ResourceID)
	}
	if ch.SyncToken != nil {
		c = c.SetSyncToken(*ch.SyncToken)
	}
	if ch.ExpiresAt != nil {
		c = c.SetExpiresAt(*ch.ExpiresAt)
	}
	if err := c.Exec(ctx); err != nil {
		return fmt.Errorf("save channel: %w", err)
	}
	return nil
}

func (s *entStore) RemoveChannel(ctx context.Context, channelID string) error {
	_, err := s.db.CalendarWatchChannel.Delete().
		Where(entchan.ChannelID(channelID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove channel: %w", err)
	}
	return nil
}

func (s *entStore) RemoveStaffChannels(ctx context.Context, staffID uuid.UUID, provider string) error {
	_, err := s.db.CalendarWatchChannel.Delete().
		Where(
			entchan.StaffID(staffID),
			entchan.ProviderEQ(entchan.Provider(provider)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove staff channels: %w", err)
	}
	return nil
}

func (s *entStore) SaveSyncToken(ctx context.Context, channelID string, token *string) error {
	upd := s.db.CalendarWatchChannel.Update().
		Where(entchan.ChannelID(channelID))
	if token == nil {
		upd = upd.ClearSyncToken()
	} else {
		upd = upd.SetSyncToken(*token)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("save sync token: %w", err)
	}
	return nil
}

func (s *entStore) ConnectionFor(ctx context.Context, staffID uuid.UUID, provider string) (Connection, error) {
	row, err := s.db.CalendarConnection.Query().
		Where(
			entconn.StaffID(staffID),
			entconn.ProviderEQ(entconn.Provider(provider)),
			entconn.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return Connection{}, ErrConnectionNotFound
		}
		return Connection{}, fmt.Errorf("get connection: %w", err)
	}
	return Connection{
		ID:              row.ID,
		PracticeID:      row.PracticeID,
		StaffID:         row.StaffID,
		Provider:        string(row.Provider),
		AccountEmail:    row.AccountEmail,
		RefreshTokenEnc: row.RefreshTokenEnc,
		Status:          string(row.Status),
	}, nil
}

func (s *entStore) SaveConnection(ctx context.Context, conn Connection) (Connection, error) {
	row, err := s.db.CalendarConnection.Create().
		SetPracticeID(conn.PracticeID).
		SetStaffID(conn.StaffID).
		SetProvider(entconn.Provider(conn.Provider)).
		SetAccountEmail(conn.AccountEmail).
		SetRefreshTokenEnc(conn.RefreshTokenEnc).
		Save(ctx)
	if err != nil {
		return Connection{}, fmt.Errorf("save connection: %w", err)
	}
	conn.ID = row.ID
	conn.Status = string(row.Status)
	return conn, nil
}

func (s *entStore) MarkConnectionDegraded(ctx context.Context, connID uuid.UUID) error {
	if err := s.db.CalendarConnection.UpdateOneID(connID).
		SetStatus(entconn.StatusNeedsReconnect).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark connection degraded: %w", err)
	}
	return nil
}

func (s *entStore) DeactivateConnection(ctx context.Context, connID uuid.UUID) error {
	if err := s.db.CalendarConnection.UpdateOneID(connID).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("deactivate connection: %w", err)
	}
	return nil
}

func (s *entStore) UpsertBlock(ctx context.Context, b Block) error {
	err := s.db.StaffCalendarBlock.Create().
		SetPracticeID(b.PracticeID).
		SetStaffID(b.StaffID).
		SetSource(entblock.Source(b.Source)).
		SetExternalEventID(b.ExternalEventID).
		SetStartTime(b.Start).
		SetEndTime(b.End).
		OnConflictColumns(entblock.FieldStaffID, entblock.FieldSource, entblock.FieldExternalEventID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert block: %w", err)
	}
	return nil
}

func (s *entStore) DeleteBlock(ctx context.Context, staffID uuid.UUID, source, externalEventID string) error {
	_, err := s.db.StaffCalendarBlock.Delete().
		Where(
			entblock.StaffID(staffID),
			entblock.SourceEQ(entblock.Source(source)),
			entblock.ExternalEventID(externalEventID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

func (s *entStore) DeleteStaffBlocks(ctx context.Context, staffID uuid.UUID, source string) error {
	_, err := s.db.StaffCalendarBlock.Delete().
		Where(
			entblock.StaffID(staffID),
			entblock.SourceEQ(entblock.Source(source)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete staff blocks: %w", err)
	}
	return nil
}

package extcal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/config"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeStore struct {
	channels    map[string]Channel
	connections map[uuid.UUID]Connection // by staff id
	blocks      map[string]Block         // by external event id

	degraded       []uuid.UUID
	savedTokens    []*string
	deletedBlocks  []string
	removedStaff   []uuid.UUID
	deactivatedIDs []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		channels:    map[string]Channel{},
		connections: map[uuid.UUID]Connection{},
		blocks:      map[string]Block{},
	}
}

func (f *fakeStore) ChannelByID(_ context.Context, channelID string) (Channel, error) {
	ch, ok := f.channels[channelID]
	if !ok {
		return Channel{}, ErrChannelNotFound
	}
	return ch, nil
}

func (f *fakeStore) SaveChannel(_ context.Context, ch Channel) error {
	f.channels[ch.ChannelID] = ch
	return nil
}

func (f *fakeStore) RemoveChannel(_ context.Context, channelID string) error {
	delete(f.channels, channelID)
	return nil
}

func (f *fakeStore) RemoveStaffChannels(_ context.Context, staffID uuid.UUID, _ string) error {
	f.removedStaff = append(f.removedStaff, staffID)
	for id, ch := range f.channels {
		if ch.StaffID == staffID {
			delete(f.channels, id)
		}
	}
	return nil
}

func (f *fakeStore) SaveSyncToken(_ context.Context, channelID string, token *string) error {
	f.savedTokens = append(f.savedTokens, token)
	ch := f.channels[channelID]
	ch.SyncToken = token
	f.channels[channelID] = ch
	return nil
}

func (f *fakeStore) ConnectionFor(_ context.Context, staffID uuid.UUID, _ string) (Connection, error) {
	conn, ok := f.connections[staffID]
	if !ok {
		return Connection{}, ErrConnectionNotFound
	}
	return conn, nil
}

func (f *fakeStore) SaveConnection(_ context.Context, conn Connection) (Connection, error) {
	conn.ID = uuid.New()
	conn.Status = "active"
	f.connections[conn.StaffID] = conn
	return conn, nil
}

func (f *fakeStore) MarkConnectionDegraded(_ context.Context, connID uuid.UUID) error {
	f.degraded = append(f.degraded, connID)
	for staffID, conn := range f.connections {
		if conn.ID == connID {
			conn.Status = "needs_reconnect"
			f.connections[staffID] = conn
		}
	}
	return nil
}

func (f *fakeStore) DeactivateConnection(_ context.Context, connID uuid.UUID) error {
	f.deactivatedIDs = append(f.deactivatedIDs, connID)
	return nil
}

func (f *fakeStore) UpsertBlock(_ context.Context, b Block) error {
	f.blocks[b.ExternalEventID] = b
	return nil
}

func (f *fakeStore) DeleteBlock(_ context.Context, _ uuid.UUID, _, externalEventID string) error {
	f.deletedBlocks = append(f.deletedBlocks, externalEventID)
	delete(f.blocks, externalEventID)
	return nil
}

func (f *fakeStore) DeleteStaffBlocks(_ context.Context, staffID uuid.UUID, _ string) error {
	for id, b := range f.blocks {
		if b.StaffID == staffID {
			delete(f.blocks, id)
		}
	}
	return nil
}

type fakeProvider struct {
	result ListResult
	err    error
	calls  int

	gotSyncToken string
	gotWindow    TimeWindow
}

func (f *fakeProvider) ListChanges(_ context.Context, _, _, syncToken string, window TimeWindow) (ListResult, error) {
	f.calls++
	f.gotSyncToken = syncToken
	f.gotWindow = window
	if f.err != nil {
		return ListResult{}, f.err
	}
	return f.result, nil
}

func (f *fakeProvider) Watch(_ context.Context, _, _, _, _ string) (string, time.Time, error) {
	return "resource-1", time.Now().Add(24 * time.Hour), nil
}

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) AccessToken(_ context.Context, _ Connection) (string, error) {
	return f.token, f.err
}

// ---------------------------------------------------------------------------
// fixtures
// ---------------------------------------------------------------------------

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config defaults: %v", err)
	}
	return cfg
}

func seed(store *fakeStore) (Channel, Connection) {
	staffID := uuid.New()
	practiceID := uuid.New()

	conn := Connection{
		ID:              uuid.New(),
		PracticeID:      practiceID,
		StaffID:         staffID,
		Provider:        "google",
		AccountEmail:    "dr.chen@example.com",
		RefreshTokenEnc: "enc",
		Status:          "active",
	}
	store.connections[staffID] = conn

	ch := Channel{
		PracticeID:         practiceID,
		StaffID:            staffID,
		Provider:           "google",
		ChannelID:          "chan-1",
		ProviderCalendarID: "primary",
	}
	store.channels[ch.ChannelID] = ch
	return ch, conn
}

func timed(id string, start, end time.Time) EventChange {
	return EventChange{ID: id, Status: "confirmed", Start: &start, End: &end}
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestHandleNotification_UnknownChannel(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	err := svc.HandleNotification(context.Background(), Notification{ChannelID: "nope", ResourceState: ResourceStateExists})
	if !errors.Is(err, ErrChannelNotFound) {
		t.Fatalf("err = %v, want ErrChannelNotFound", err)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times for unknown channel", provider.calls)
	}
}

func TestHandleNotification_SyncStateNoSideEffects(t *testing.T) {
	store := newFakeStore()
	seed(store)
	provider := &fakeProvider{}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateSync})
	if err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}
	if provider.calls != 0 {
		t.Fatal("sync ping must not hit the provider")
	}
	if len(store.savedTokens) != 0 || len(store.blocks) != 0 {
		t.Fatal("sync ping must not touch the store")
	}
}

func TestHandleNotification_UpsertsTimedEvents(t *testing.T) {
	store := newFakeStore()
	ch, _ := seed(store)

	start := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	provider := &fakeProvider{result: ListResult{
		Changes:       []EventChange{timed("ev-1", start, end)},
		NextSyncToken: "tok-next",
	}}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}

	b, ok := store.blocks["ev-1"]
	if !ok {
		t.Fatal("block not upserted")
	}
	if b.StaffID != ch.StaffID || b.PracticeID != ch.PracticeID {
		t.Fatal("block owner mismatch")
	}
	if !b.Start.Equal(start) || !b.End.Equal(end) {
		t.Fatalf("block window = [%s, %s]", b.Start, b.End)
	}
	if b.Source != "google" {
		t.Fatalf("block source = %q", b.Source)
	}

	if len(store.savedTokens) != 1 || store.savedTokens[0] == nil || *store.savedTokens[0] != "tok-next" {
		t.Fatalf("sync token not persisted: %v", store.savedTokens)
	}
}

func TestHandleNotification_CancellationIsIdempotent(t *testing.T) {
	store := newFakeStore()
	ch, _ := seed(store)
	store.blocks["ev-1"] = Block{StaffID: ch.StaffID, ExternalEventID: "ev-1"}

	provider := &fakeProvider{result: ListResult{
		Changes:       []EventChange{{ID: "ev-1", Status: "cancelled"}},
		NextSyncToken: "tok-1",
	}}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	// First delivery removes the block.
	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if _, ok := store.blocks["ev-1"]; ok {
		t.Fatal("block survived cancellation")
	}

	// Replay of the same cancellation converges without error.
	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("replayed delivery: %v", err)
	}
	if len(store.deletedBlocks) != 2 {
		t.Fatalf("delete called %d times, want 2", len(store.deletedBlocks))
	}
}

func TestHandleNotification_AllDayEventsSkipped(t *testing.T) {
	store := newFakeStore()
	seed(store)

	provider := &fakeProvider{result: ListResult{
		Changes:       []EventChange{{ID: "ev-allday", Status: "confirmed"}}, // no instants
		NextSyncToken: "tok-1",
	}}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}
	if len(store.blocks) != 0 {
		t.Fatal("all-day event must not produce a block")
	}
}

func TestHandleNotification_ExpiredCursorClearsTokenAndAcks(t *testing.T) {
	store := newFakeStore()
	ch, _ := seed(store)
	stale := "tok-stale"
	ch.SyncToken = &stale
	store.channels[ch.ChannelID] = ch
	store.blocks["ev-keep"] = Block{StaffID: ch.StaffID, ExternalEventID: "ev-keep"}

	provider := &fakeProvider{err: ErrSyncCursorExpired}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists})
	if err != nil {
		t.Fatalf("expired cursor must ack, got %v", err)
	}

	if len(store.savedTokens) != 1 || store.savedTokens[0] != nil {
		t.Fatalf("token not cleared: %v", store.savedTokens)
	}
	if _, ok := store.blocks["ev-keep"]; !ok {
		t.Fatal("existing blocks must be untouched on cursor expiry")
	}
	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want exactly 1 (no retry loop)", provider.calls)
	}
}

func TestHandleNotification_ExpiredCursorThenResync(t *testing.T) {
	store := newFakeStore()
	ch, _ := seed(store)
	stale := "tok-stale"
	ch.SyncToken = &stale
	store.channels[ch.ChannelID] = ch

	provider := &fakeProvider{err: ErrSyncCursorExpired}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("expiry pass: %v", err)
	}

	// Next notification runs a windowed fetch because the cursor is gone.
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	provider.err = nil
	provider.result = ListResult{
		Changes:       []EventChange{timed("ev-2", start, start.Add(time.Hour))},
		NextSyncToken: "tok-fresh",
	}
	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("resync pass: %v", err)
	}

	if provider.gotSyncToken != "" {
		t.Fatalf("resync used stale token %q", provider.gotSyncToken)
	}
	if provider.gotWindow.Start.IsZero() || provider.gotWindow.End.IsZero() {
		t.Fatal("resync must bound the fetch with a window")
	}
	if _, ok := store.blocks["ev-2"]; !ok {
		t.Fatal("resync did not mirror the event")
	}
}

func TestHandleNotification_TokenRefreshFailureDegradesConnection(t *testing.T) {
	store := newFakeStore()
	_, conn := seed(store)

	provider := &fakeProvider{}
	tokens := &fakeTokens{err: ErrTokenRefresh}
	svc := New(store, provider, tokens, nil, testConfig(t))

	err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists})
	if err != nil {
		t.Fatalf("degraded path must still ack, got %v", err)
	}
	if len(store.degraded) != 1 || store.degraded[0] != conn.ID {
		t.Fatalf("connection not marked degraded: %v", store.degraded)
	}
	if provider.calls != 0 {
		t.Fatal("must not hit the provider without an access token")
	}

	// Subsequent notifications for the degraded connection are quiet no-ops.
	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("second delivery: %v", err)
	}
	if len(store.degraded) != 1 {
		t.Fatal("degraded connection flagged twice")
	}
}

func TestHandleNotification_BlocksCarryNoEventContent(t *testing.T) {
	store := newFakeStore()
	seed(store)

	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	provider := &fakeProvider{result: ListResult{
		Changes:       []EventChange{timed("ev-private", start, start.Add(30*time.Minute))},
		NextSyncToken: "tok",
	}}
	svc := New(store, provider, &fakeTokens{token: "at"}, nil, testConfig(t))

	if err := svc.HandleNotification(context.Background(), Notification{ChannelID: "chan-1", ResourceState: ResourceStateExists}); err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}

	// The mirrored record is only an owner, an interval and the provider's
	// event id. Anything else about the event stays at the provider.
	b := store.blocks["ev-private"]
	if b.ExternalEventID != "ev-private" {
		t.Fatalf("external id = %q", b.ExternalEventID)
	}
	if b.Start.IsZero() || b.End.IsZero() {
		t.Fatal("interval missing")
	}
}

func TestDisconnect_PurgesMirrorAndChannels(t *testing.T) {
	store := newFakeStore()
	ch, conn := seed(store)
	store.blocks["ev-1"] = Block{StaffID: ch.StaffID, ExternalEventID: "ev-1"}

	svc := New(store, &fakeProvider{}, &fakeTokens{token: "at"}, nil, testConfig(t))

	if err := svc.Disconnect(context.Background(), conn.PracticeID, conn.StaffID); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if len(store.deactivatedIDs) != 1 || store.deactivatedIDs[0] != conn.ID {
		t.Fatal("connection not deactivated")
	}
	if len(store.blocks) != 0 {
		t.Fatal("mirrored blocks not purged")
	}
	if _, ok := store.channels[ch.ChannelID]; ok {
		t.Fatal("watch channel not removed")
	}
}

func TestDisconnect_WrongPractice(t *testing.T) {
	store := newFakeStore()
	_, conn := seed(store)

	svc := New(store, &fakeProvider{}, &fakeTokens{token: "at"}, nil, testConfig(t))

	err := svc.Disconnect(context.Background(), uuid.New(), conn.StaffID)
	if !errors.Is(err, ErrConnectionNotFound) {
		t.Fatalf("err = %v, want ErrConnectionNotFound", err)
	}
	if len(store.deactivatedIDs) != 0 {
		t.Fatal("cross-practice disconnect must not deactivate")
	}
}

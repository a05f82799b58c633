package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/internal/recurrence"
	"github.com/juniperhealth/juniper_backend/internal/repo"
	entappt "github.com/juniperhealth/juniper_backend/internal/repo/appointment"
	entseries "github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
	entpractice "github.com/juniperhealth/juniper_backend/internal/repo/practice"
)

// SubjectSeriesChanged is the NATS subject family published when a series is
// created or its recurrence edited; the materialization worker listens on it.
const SubjectSeriesChanged = "juniper.series.changed"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Query is one calendar read. Start and End are the raw bounds as received:
// RFC3339 instants or bare dates, interpreted in the resolved timezone. Empty
// bounds fall back to the configured default window (30 days back, 7 months
// forward by default), anchored to now in that timezone.
type Query struct {
	Start    string
	End      string
	Timezone string
}

type CreateSeriesRequest struct {
	StaffID           uuid.UUID
	ClientID          uuid.UUID
	Title             string
	Rule              string
	SeriesStartDate   time.Time
	StartHour         int8
	StartMinute       int8
	DurationMinutes   int
	Timezone          string
	UntilDate         *time.Time
	GenerationCapDays *int
	CostEstimate      *int64
}

type UpdateSeriesRequest struct {
	Title             *string
	Rule              *string
	StartHour         *int8
	StartMinute       *int8
	DurationMinutes   *int
	UntilDate         *time.Time
	GenerationCapDays *int
	CostEstimate      *int64
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// GetCalendar is the one entry point UI code calls for calendar
	// rendering: persisted rows merged with computed occurrences, sorted.
	GetCalendar(ctx context.Context, practiceID uuid.UUID, q Query) ([]recurrence.Event, error)

	// Series management
	ListSeries(ctx context.Context, practiceID uuid.UUID) ([]*repo.AppointmentSeries, error)
	CreateSeries(ctx context.Context, practiceID uuid.UUID, req CreateSeriesRequest) (*repo.AppointmentSeries, error)
	UpdateSeries(ctx context.Context, practiceID, seriesID uuid.UUID, req UpdateSeriesRequest) (*repo.AppointmentSeries, error)
	DeactivateSeries(ctx context.Context, practiceID, seriesID uuid.UUID) error

	// MaterializeSeries persists the series' occurrences through now+horizon
	// and advances the generation watermark. Idempotent: the upsert keys on
	// (series_id, start_time).
	MaterializeSeries(ctx context.Context, practiceID, seriesID uuid.UUID, horizonDays int) (int, error)

	// MaterializeAllDue runs MaterializeSeries for every active series across
	// practices. The rolling cron job calls this nightly.
	MaterializeAllDue(ctx context.Context, horizonDays int) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type calendarService struct {
	db  *repo.Client
	nc  *nats.Conn
	cfg *config.Config
}

func New(db *repo.Client, nc *nats.Conn, cfg *config.Config) Service {
	return &calendarService{db: db, nc: nc, cfg: cfg}
}

func (s *calendarService) tolerance() time.Duration {
	return time.Duration(s.cfg.Calendar.SuppressionToleranceSeconds) * time.Second
}

// ---------------------------------------------------------------------------
// Unified calendar query
// ---------------------------------------------------------------------------

func (s *calendarService) GetCalendar(ctx context.Context, practiceID uuid.UUID, q Query) ([]recurrence.Event, error) {
	zone := q.Timezone
	if zone == "" {
		practice, err := s.db.Practice.Query().
			Where(entpractice.ID(practiceID), entpractice.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrPracticeNotFound
			}
			return nil, fmt.Errorf("get practice: %w", err)
		}
		zone = practice.Timezone
	}

	loc, err := recurrence.LoadZone(zone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	now := time.Now().In(loc)
	windowStart, windowEnd, err := resolveWindow(q, loc, now,
		s.cfg.Calendar.DefaultWindowBackDays, s.cfg.Calendar.DefaultWindowForwardMonths)
	if err != nil {
		return nil, err
	}

	// The end bound is inclusive, same as expansion, so a row landing
	// exactly on it does not hide behind its virtual twin.
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.PracticeID(practiceID),
			entappt.StartTimeGTE(windowStart.UTC()),
			entappt.StartTimeLTE(windowEnd.UTC()),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	materialized := make([]recurrence.Event, 0, len(rows))
	for _, row := range rows {
		materialized = append(materialized, rowEvent(row))
	}

	series, err := s.db.AppointmentSeries.Query().
		Where(
			entseries.PracticeID(practiceID),
			entseries.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}

	var virtual []recurrence.Event
	for _, sr := range series {
		occs, err := s.expandSeries(sr, windowStart, windowEnd, now)
		if err != nil {
			// One corrupt series must not blank out the whole calendar.
			slog.Warn("calendar: skipping series",
				"series_id", sr.ID,
				"practice_id", practiceID,
				"err", err,
			)
			continue
		}
		virtual = append(virtual, occs...)
	}

	return recurrence.Reconcile(materialized, virtual, s.tolerance()), nil
}

// expandSeries computes the series' virtual occurrences for the window,
// already projected to UTC.
func (s *calendarService) expandSeries(sr *repo.AppointmentSeries, windowStart, windowEnd, now time.Time) ([]recurrence.Event, error) {
	loc, err := recurrence.LoadZone(sr.Timezone)
	if err != nil {
		return nil, err
	}

	req := recurrence.ExpandRequest{
		Rule:               sr.Rrule,
		SeriesStart:        sr.SeriesStartDate,
		StartHour:          int(sr.StartHour),
		StartMinute:        int(sr.StartMinute),
		WindowStart:        windowStart.In(loc),
		WindowEnd:          windowEnd.In(loc),
		Until:              sr.UntilDate,
		LastGeneratedUntil: sr.LastGeneratedUntil,
		Now:                now,
		Location:           loc,
	}
	if sr.GenerationCapDays != nil {
		req.CapDays = *sr.GenerationCapDays
	}

	occs, err := recurrence.Expand(req)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(sr.DurationMinutes) * time.Minute
	events := make([]recurrence.Event, 0, len(occs))
	for _, occ := range occs {
		startUTC := occ.UTC()
		seriesID := sr.ID
		events = append(events, recurrence.Event{
			ID:       recurrence.VirtualID(sr.ID, startUTC),
			SeriesID: &seriesID,
			StaffID:  sr.StaffID,
			ClientID: sr.ClientID,
			Title:    sr.Title,
			StartAt:  startUTC,
			EndAt:    startUTC.Add(duration),
			Kind:     recurrence.KindOccurrence,
			Status:   string(entappt.StatusScheduled),
			Cost:     sr.CostEstimate,
		})
	}
	return events, nil
}

func rowEvent(row *repo.Appointment) recurrence.Event {
	kind := recurrence.KindSingle
	if row.SeriesID != nil {
		kind = recurrence.KindOccurrence
	}
	cost := row.Cost
	return recurrence.Event{
		ID:           row.ID.String(),
		SeriesID:     row.SeriesID,
		StaffID:      row.StaffID,
		ClientID:     row.ClientID,
		Title:        row.Title,
		StartAt:      row.StartTime,
		EndAt:        row.EndTime,
		Kind:         kind,
		Status:       string(row.Status),
		Cost:         &cost,
		Materialized: true,
	}
}

// ---------------------------------------------------------------------------
// Series management
// ---------------------------------------------------------------------------

func (s *calendarService) ListSeries(ctx context.Context, practiceID uuid.UUID) ([]*repo.AppointmentSeries, error) {
	series, err := s.db.AppointmentSeries.Query().
		Where(entseries.PracticeID(practiceID)).
		Order(entseries.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return series, nil
}

func (s *calendarService) CreateSeries(ctx context.Context, practiceID uuid.UUID, req CreateSeriesRequest) (*repo.AppointmentSeries, error) {
	if err := recurrence.ValidateRule(req.Rule); err != nil {
		return nil, ErrInvalidRule
	}
	if _, err := recurrence.LoadZone(req.Timezone); err != nil {
		return nil, ErrInvalidTimezone
	}

	c := s.db.AppointmentSeries.Create().
		SetPracticeID(practiceID).
		SetStaffID(req.StaffID).
		SetClientID(req.ClientID).
		SetTitle(req.Title).
		SetRrule(req.Rule).
		SetSeriesStartDate(req.SeriesStartDate).
		SetStartHour(req.StartHour).
		SetStartMinute(req.StartMinute).
		SetTimezone(req.Timezone)

	if req.DurationMinutes > 0 {
		c = c.SetDurationMinutes(req.DurationMinutes)
	}
	if req.UntilDate != nil {
		c = c.SetUntilDate(*req.UntilDate)
	}
	if req.GenerationCapDays != nil {
		c = c.SetGenerationCapDays(*req.GenerationCapDays)
	}
	if req.CostEstimate != nil {
		c = c.SetCostEstimate(*req.CostEstimate)
	}

	sr, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create series: %w", err)
	}

	s.publishSeriesChanged(sr.ID)
	return sr, nil
}

func (s *calendarService) UpdateSeries(ctx context.Context, practiceID, seriesID uuid.UUID, req UpdateSeriesRequest) (*repo.AppointmentSeries, error) {
	sr, err := s.getSeries(ctx, practiceID, seriesID)
	if err != nil {
		return nil, err
	}
	if !sr.IsActive {
		return nil, ErrSeriesInactive
	}

	upd := s.db.AppointmentSeries.UpdateOne(sr)

	if req.Rule != nil {
		if err := recurrence.ValidateRule(*req.Rule); err != nil {
			return nil, ErrInvalidRule
		}
		// The recurrence changed, so previously generated instants are no
		// longer trustworthy; reset the watermark and regenerate.
		upd = upd.SetRrule(*req.Rule).ClearLastGeneratedUntil()
	}
	if req.Title != nil {
		upd = upd.SetTitle(*req.Title)
	}
	if req.StartHour != nil {
		upd = upd.SetStartHour(*req.StartHour).ClearLastGeneratedUntil()
	}
	if req.StartMinute != nil {
		upd = upd.SetStartMinute(*req.StartMinute).ClearLastGeneratedUntil()
	}
	if req.DurationMinutes != nil {
		upd = upd.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.UntilDate != nil {
		upd = upd.SetUntilDate(*req.UntilDate)
	}
	if req.GenerationCapDays != nil {
		upd = upd.SetGenerationCapDays(*req.GenerationCapDays)
	}
	if req.CostEstimate != nil {
		upd = upd.SetCostEstimate(*req.CostEstimate)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update series: %w", err)
	}

	s.publishSeriesChanged(updated.ID)
	return updated, nil
}

// DeactivateSeries soft-deactivates; materialized occurrences keep their
// back-reference, so the series row must survive.
func (s *calendarService) DeactivateSeries(ctx context.Context, practiceID, seriesID uuid.UUID) error {
	sr, err := s.getSeries(ctx, practiceID, seriesID)
	if err != nil {
		return err
	}
	if err := s.db.AppointmentSeries.UpdateOne(sr).SetIsActive(false).Exec(ctx); err != nil {
		return fmt.Errorf("deactivate series: %w", err)
	}
	return nil
}

func (s *calendarService) getSeries(ctx context.Context, practiceID, seriesID uuid.UUID) (*repo.AppointmentSeries, error) {
	sr, err := s.db.AppointmentSeries.Query().
		Where(entseries.ID(seriesID), entseries.PracticeID(practiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSeriesNotFound
		}
		return nil, fmt.Errorf("get series: %w", err)
	}
	return sr, nil
}

func (s *calendarService) publishSeriesChanged(seriesID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("%s.%s", SubjectSeriesChanged, seriesID)
	if err := s.nc.Publish(subject, []byte(seriesID.String())); err != nil {
		slog.Warn("calendar: publish series change failed", "series_id", seriesID, "err", err)
	}
}

// ---------------------------------------------------------------------------
// Materialization
// ---------------------------------------------------------------------------

func (s *calendarService) MaterializeSeries(ctx context.Context, practiceID, seriesID uuid.UUID, horizonDays int) (int, error) {
	sr, err := s.getSeries(ctx, practiceID, seriesID)
	if err != nil {
		return 0, err
	}
	if !sr.IsActive {
		return 0, ErrSeriesInactive
	}
	if horizonDays <= 0 {
		horizonDays = s.cfg.Calendar.MaterializeHorizonDays
	}

	loc, err := recurrence.LoadZone(sr.Timezone)
	if err != nil {
		return 0, ErrInvalidTimezone
	}

	now := time.Now().In(loc)
	req := recurrence.ExpandRequest{
		Rule:               sr.Rrule,
		SeriesStart:        sr.SeriesStartDate,
		StartHour:          int(sr.StartHour),
		StartMinute:        int(sr.StartMinute),
		WindowStart:        now,
		WindowEnd:          now.AddDate(0, 0, horizonDays),
		Until:              sr.UntilDate,
		LastGeneratedUntil: sr.LastGeneratedUntil,
		Now:                now,
		Location:           loc,
	}
	if sr.GenerationCapDays != nil {
		req.CapDays = *sr.GenerationCapDays
	}

	occs, err := recurrence.Expand(req)
	if err != nil {
		if errors.Is(err, recurrence.ErrInvalidRecurrenceRule) {
			return 0, ErrInvalidRule
		}
		return 0, fmt.Errorf("expand series: %w", err)
	}

	duration := time.Duration(sr.DurationMinutes) * time.Minute
	for _, occ := range occs {
		startUTC := occ.UTC()
		c := s.db.Appointment.Create().
			SetPracticeID(sr.PracticeID).
			SetStaffID(sr.StaffID).
			SetClientID(sr.ClientID).
			SetSeriesID(sr.ID).
			SetTitle(sr.Title).
			SetStartTime(startUTC).
			SetEndTime(startUTC.Add(duration))
		if sr.CostEstimate != nil {
			c = c.SetCost(*sr.CostEstimate)
		}
		// Converges with concurrent materialization of the same occurrence.
		if err := c.OnConflictColumns(entappt.FieldSeriesID, entappt.FieldStartTime).
			Ignore().
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("upsert occurrence at %s: %w", startUTC, err)
		}
	}

	// The watermark only ever moves forward; a horizon shorter than a
	// previous run must not regress it.
	_, watermark := req.EffectiveWindow()
	if sr.LastGeneratedUntil == nil || watermark.UTC().After(*sr.LastGeneratedUntil) {
		if err := s.db.AppointmentSeries.UpdateOne(sr).
			SetLastGeneratedUntil(watermark.UTC()).
			Exec(ctx); err != nil {
			return len(occs), fmt.Errorf("advance watermark: %w", err)
		}
	}

	return len(occs), nil
}

func (s *calendarService) MaterializeAllDue(ctx context.Context, horizonDays int) error {
	series, err := s.db.AppointmentSeries.Query().
		Where(entseries.IsActive(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list active series: %w", err)
	}

	for _, sr := range series {
		if _, err := s.MaterializeSeries(ctx, sr.PracticeID, sr.ID, horizonDays); err != nil {
			// One broken series must not stall the rolling window for the rest.
			slog.Warn("materialize: skipping series", "series_id", sr.ID, "err", err)
		}
	}
	return nil
}

package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/internal/repo"
	entappt "github.com/juniperhealth/juniper_backend/internal/repo/appointment"
	entblock "github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	StaffID  *uuid.UUID
	ClientID *uuid.UUID
	Status   *string
	From     *time.Time
	To       *time.Time
	Page     int
	PerPage  int
}

type BookRequest struct {
	StaffID   uuid.UUID
	ClientID  uuid.UUID
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Cost      int64
	Notes     *string
}

type CancelRequest struct {
	Reason *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, practiceID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, practiceID, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, practiceID uuid.UUID, req BookRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, practiceID, apptID uuid.UUID, req CancelRequest) error
	Complete(ctx context.Context, practiceID, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &appointmentService{db: db}
}

func (s *appointmentService) List(ctx context.Context, practiceID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().
		Where(entappt.PracticeID(practiceID))

	if req.StaffID != nil {
		q = q.Where(entappt.StaffID(*req.StaffID))
	}
	if req.ClientID != nil {
		q = q.Where(entappt.ClientID(*req.ClientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	q = q.Order(entappt.ByStartTime(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, practiceID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.PracticeID(practiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Book(ctx context.Context, practiceID uuid.UUID, req BookRequest) (*repo.Appointment, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	// Existing non-cancelled appointments for this staff member that overlap.
	overlaps, err := s.db.Appointment.Query().
		Where(
			entappt.StaffID(req.StaffID),
			entappt.StatusNotIn(entappt.StatusCancelled),
			entappt.StartTimeLT(req.EndTime),
			entappt.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return nil, ErrOverlapping
	}

	// Busy blocks mirrored from the staff member's external calendar count
	// as unavailable time too.
	busy, err := s.db.StaffCalendarBlock.Query().
		Where(
			entblock.StaffID(req.StaffID),
			entblock.StartTimeLT(req.EndTime),
			entblock.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check busy blocks: %w", err)
	}
	if busy {
		return nil, ErrStaffBusy
	}

	c := s.db.Appointment.Create().
		SetPracticeID(practiceID).
		SetStaffID(req.StaffID).
		SetClientID(req.ClientID).
		SetTitle(req.Title).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		SetCost(req.Cost)

	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Cancel(ctx context.Context, practiceID, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.GetByID(ctx, practiceID, apptID)
	if err != nil {
		return err
	}

	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now())

	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) Complete(ctx context.Context, practiceID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, practiceID, apptID)
	if err != nil {
		return err
	}

	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}

	return s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointment"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
	"github.com/juniperhealth/juniper_backend/internal/repo/clientprofile"
	"github.com/juniperhealth/juniper_backend/internal/repo/practice"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment          = "Appointment"
	TypeAppointmentSeries    = "AppointmentSeries"
	TypeCalendarConnection   = "CalendarConnection"
	TypeCalendarWatchChannel = "CalendarWatchChannel"
	TypeClientProfile        = "ClientProfile"
	TypePractice             = "Practice"
	TypeStaffCalendarBlock   = "StaffCalendarBlock"
	TypeStaffMember          = "StaffMember"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	practice_id         *uuid.UUID
	staff_id            *uuid.UUID
	client_id           *uuid.UUID
	series_id           *uuid.UUID
	title               *string
	start_time          *time.Time
	end_time            *time.Time
	status              *appointment.Status
	cost                *int64
	addcost             *int64
	notes               *string
	cancellation_reason *string
	cancelled_at        *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Appointment, error)
	predicates          []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPracticeID sets the "practice_id" field.
func (m *AppointmentMutation) SetPracticeID(u uuid.UUID) {
	m.practice_id = &u
}

// PracticeID returns the value of the "practice_id" field in the mutation.
func (m *AppointmentMutation) PracticeID() (r uuid.UUID, exists bool) {
	v := m.practice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeID returns the old "practice_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPracticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeID: %w", err)
	}
	return oldValue.PracticeID, nil
}

// ResetPracticeID resets all changes to the "practice_id" field.
func (m *AppointmentMutation) ResetPracticeID() {
	m.practice_id = nil
}

// SetStaffID sets the "staff_id" field.
func (m *AppointmentMutation) SetStaffID(u uuid.UUID) {
	m.staff_id = &u
}

// StaffID returns the value of the "staff_id" field in the mutation.
func (m *AppointmentMutation) StaffID() (r uuid.UUID, exists bool) {
	v := m.staff_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffID returns the old "staff_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStaffID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffID: %w", err)
	}
	return oldValue.StaffID, nil
}

// ResetStaffID resets all changes to the "staff_id" field.
func (m *AppointmentMutation) ResetStaffID() {
	m.staff_id = nil
}

// SetClientID sets the "client_id" field.
func (m *AppointmentMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *AppointmentMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *AppointmentMutation) ResetClientID() {
	m.client_id = nil
}

// SetSeriesID sets the "series_id" field.
func (m *AppointmentMutation) SetSeriesID(u uuid.UUID) {
	m.series_id = &u
}

// SeriesID returns the value of the "series_id" field in the mutation.
func (m *AppointmentMutation) SeriesID() (r uuid.UUID, exists bool) {
	v := m.series_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSeriesID returns the old "series_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldSeriesID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeriesID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeriesID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeriesID: %w", err)
	}
	return oldValue.SeriesID, nil
}

// ClearSeriesID clears the value of the "series_id" field.
func (m *AppointmentMutation) ClearSeriesID() {
	m.series_id = nil
	m.clearedFields[appointment.FieldSeriesID] = struct{}{}
}

// SeriesIDCleared returns if the "series_id" field was cleared in this mutation.
func (m *AppointmentMutation) SeriesIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldSeriesID]
	return ok
}

// ResetSeriesID resets all changes to the "series_id" field.
func (m *AppointmentMutation) ResetSeriesID() {
	m.series_id = nil
	delete(m.clearedFields, appointment.FieldSeriesID)
}

// SetTitle sets the "title" field.
func (m *AppointmentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AppointmentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AppointmentMutation) ResetTitle() {
	m.title = nil
}

// SetStartTime sets the "start_time" field.
func (m *AppointmentMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AppointmentMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AppointmentMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *AppointmentMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AppointmentMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AppointmentMutation) ResetEndTime() {
	m.end_time = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetCost sets the "cost" field.
func (m *AppointmentMutation) SetCost(i int64) {
	m.cost = &i
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *AppointmentMutation) Cost() (r int64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCost(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds i to the "cost" field.
func (m *AppointmentMutation) AddCost(i int64) {
	if m.addcost != nil {
		*m.addcost += i
	} else {
		m.addcost = &i
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *AppointmentMutation) AddedCost() (r int64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *AppointmentMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetNotes sets the "notes" field.
func (m *AppointmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AppointmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *AppointmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[appointment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AppointmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[appointment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AppointmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, appointment.FieldNotes)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *AppointmentMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *AppointmentMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *AppointmentMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[appointment.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *AppointmentMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *AppointmentMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, appointment.FieldCancellationReason)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *AppointmentMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *AppointmentMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *AppointmentMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[appointment.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *AppointmentMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *AppointmentMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, appointment.FieldCancelledAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AppointmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AppointmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AppointmentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[appointment.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AppointmentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AppointmentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, appointment.FieldCompletedAt)
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.practice_id != nil {
		fields = append(fields, appointment.FieldPracticeID)
	}
	if m.staff_id != nil {
		fields = append(fields, appointment.FieldStaffID)
	}
	if m.client_id != nil {
		fields = append(fields, appointment.FieldClientID)
	}
	if m.series_id != nil {
		fields = append(fields, appointment.FieldSeriesID)
	}
	if m.title != nil {
		fields = append(fields, appointment.FieldTitle)
	}
	if m.start_time != nil {
		fields = append(fields, appointment.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, appointment.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.cost != nil {
		fields = append(fields, appointment.FieldCost)
	}
	if m.notes != nil {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.cancelled_at != nil {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.completed_at != nil {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldPracticeID:
		return m.PracticeID()
	case appointment.FieldStaffID:
		return m.StaffID()
	case appointment.FieldClientID:
		return m.ClientID()
	case appointment.FieldSeriesID:
		return m.SeriesID()
	case appointment.FieldTitle:
		return m.Title()
	case appointment.FieldStartTime:
		return m.StartTime()
	case appointment.FieldEndTime:
		return m.EndTime()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldCost:
		return m.Cost()
	case appointment.FieldNotes:
		return m.Notes()
	case appointment.FieldCancellationReason:
		return m.CancellationReason()
	case appointment.FieldCancelledAt:
		return m.CancelledAt()
	case appointment.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldPracticeID:
		return m.OldPracticeID(ctx)
	case appointment.FieldStaffID:
		return m.OldStaffID(ctx)
	case appointment.FieldClientID:
		return m.OldClientID(ctx)
	case appointment.FieldSeriesID:
		return m.OldSeriesID(ctx)
	case appointment.FieldTitle:
		return m.OldTitle(ctx)
	case appointment.FieldStartTime:
		return m.OldStartTime(ctx)
	case appointment.FieldEndTime:
		return m.OldEndTime(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldCost:
		return m.OldCost(ctx)
	case appointment.FieldNotes:
		return m.OldNotes(ctx)
	case appointment.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	case appointment.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case appointment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldPracticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeID(v)
		return nil
	case appointment.FieldStaffID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffID(v)
		return nil
	case appointment.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case appointment.FieldSeriesID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeriesID(v)
		return nil
	case appointment.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case appointment.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case appointment.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldCost:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case appointment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case appointment.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	case appointment.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case appointment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addcost != nil {
		fields = append(fields, appointment.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCost:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldSeriesID) {
		fields = append(fields, appointment.FieldSeriesID)
	}
	if m.FieldCleared(appointment.FieldNotes) {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.FieldCleared(appointment.FieldCancellationReason) {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.FieldCleared(appointment.FieldCancelledAt) {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.FieldCleared(appointment.FieldCompletedAt) {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldSeriesID:
		m.ClearSeriesID()
		return nil
	case appointment.FieldNotes:
		m.ClearNotes()
		return nil
	case appointment.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	case appointment.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldPracticeID:
		m.ResetPracticeID()
		return nil
	case appointment.FieldStaffID:
		m.ResetStaffID()
		return nil
	case appointment.FieldClientID:
		m.ResetClientID()
		return nil
	case appointment.FieldSeriesID:
		m.ResetSeriesID()
		return nil
	case appointment.FieldTitle:
		m.ResetTitle()
		return nil
	case appointment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case appointment.FieldEndTime:
		m.ResetEndTime()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldCost:
		m.ResetCost()
		return nil
	case appointment.FieldNotes:
		m.ResetNotes()
		return nil
	case appointment.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	case appointment.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// AppointmentSeriesMutation represents an operation that mutates the AppointmentSeries nodes in the graph.
type AppointmentSeriesMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	practice_id            *uuid.UUID
	staff_id               *uuid.UUID
	client_id              *uuid.UUID
	title                  *string
	rrule                  *string
	series_start_date      *time.Time
	start_hour             *int8
	addstart_hour          *int8
	start_minute           *int8
	addstart_minute        *int8
	duration_minutes       *int
	addduration_minutes    *int
	timezone               *string
	until_date             *time.Time
	generation_cap_days    *int
	addgeneration_cap_days *int
	last_generated_until   *time.Time
	cost_estimate          *int64
	addcost_estimate       *int64
	is_active              *bool
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*AppointmentSeries, error)
	predicates             []predicate.AppointmentSeries
}

var _ ent.Mutation = (*AppointmentSeriesMutation)(nil)

// appointmentseriesOption allows management of the mutation configuration using functional options.
type appointmentseriesOption func(*AppointmentSeriesMutation)

// newAppointmentSeriesMutation creates new mutation for the AppointmentSeries entity.
func newAppointmentSeriesMutation(c config, op Op, opts ...appointmentseriesOption) *AppointmentSeriesMutation {
	m := &AppointmentSeriesMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointmentSeries,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentSeriesID sets the ID field of the mutation.
func withAppointmentSeriesID(id uuid.UUID) appointmentseriesOption {
	return func(m *AppointmentSeriesMutation) {
		var (
			err   error
			once  sync.Once
			value *AppointmentSeries
		)
		m.oldValue = func(ctx context.Context) (*AppointmentSeries, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppointmentSeries.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointmentSeries sets the old AppointmentSeries of the mutation.
func withAppointmentSeries(node *AppointmentSeries) appointmentseriesOption {
	return func(m *AppointmentSeriesMutation) {
		m.oldValue = func(context.Context) (*AppointmentSeries, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentSeriesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentSeriesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AppointmentSeries entities.
func (m *AppointmentSeriesMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentSeriesMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentSeriesMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppointmentSeries.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentSeriesMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentSeriesMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentSeriesMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentSeriesMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentSeriesMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentSeriesMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPracticeID sets the "practice_id" field.
func (m *AppointmentSeriesMutation) SetPracticeID(u uuid.UUID) {
	m.practice_id = &u
}

// PracticeID returns the value of the "practice_id" field in the mutation.
func (m *AppointmentSeriesMutation) PracticeID() (r uuid.UUID, exists bool) {
	v := m.practice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeID returns the old "practice_id" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldPracticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeID: %w", err)
	}
	return oldValue.PracticeID, nil
}

// ResetPracticeID resets all changes to the "practice_id" field.
func (m *AppointmentSeriesMutation) ResetPracticeID() {
	m.practice_id = nil
}

// SetStaffID sets the "staff_id" field.
func (m *AppointmentSeriesMutation) SetStaffID(u uuid.UUID) {
	m.staff_id = &u
}

// StaffID returns the value of the "staff_id" field in the mutation.
func (m *AppointmentSeriesMutation) StaffID() (r uuid.UUID, exists bool) {
	v := m.staff_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffID returns the old "staff_id" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldStaffID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffID: %w", err)
	}
	return oldValue.StaffID, nil
}

// ResetStaffID resets all changes to the "staff_id" field.
func (m *AppointmentSeriesMutation) ResetStaffID() {
	m.staff_id = nil
}

// SetClientID sets the "client_id" field.
func (m *AppointmentSeriesMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *AppointmentSeriesMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *AppointmentSeriesMutation) ResetClientID() {
	m.client_id = nil
}

// SetTitle sets the "title" field.
func (m *AppointmentSeriesMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AppointmentSeriesMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AppointmentSeriesMutation) ResetTitle() {
	m.title = nil
}

// SetRrule sets the "rrule" field.
func (m *AppointmentSeriesMutation) SetRrule(s string) {
	m.rrule = &s
}

// Rrule returns the value of the "rrule" field in the mutation.
func (m *AppointmentSeriesMutation) Rrule() (r string, exists bool) {
	v := m.rrule
	if v == nil {
		return
	}
	return *v, true
}

// OldRrule returns the old "rrule" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldRrule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRrule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRrule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRrule: %w", err)
	}
	return oldValue.Rrule, nil
}

// ResetRrule resets all changes to the "rrule" field.
func (m *AppointmentSeriesMutation) ResetRrule() {
	m.rrule = nil
}

// SetSeriesStartDate sets the "series_start_date" field.
func (m *AppointmentSeriesMutation) SetSeriesStartDate(t time.Time) {
	m.series_start_date = &t
}

// SeriesStartDate returns the value of the "series_start_date" field in the mutation.
func (m *AppointmentSeriesMutation) SeriesStartDate() (r time.Time, exists bool) {
	v := m.series_start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSeriesStartDate returns the old "series_start_date" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldSeriesStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeriesStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeriesStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeriesStartDate: %w", err)
	}
	return oldValue.SeriesStartDate, nil
}

// ResetSeriesStartDate resets all changes to the "series_start_date" field.
func (m *AppointmentSeriesMutation) ResetSeriesStartDate() {
	m.series_start_date = nil
}

// SetStartHour sets the "start_hour" field.
func (m *AppointmentSeriesMutation) SetStartHour(i int8) {
	m.start_hour = &i
	m.addstart_hour = nil
}

// StartHour returns the value of the "start_hour" field in the mutation.
func (m *AppointmentSeriesMutation) StartHour() (r int8, exists bool) {
	v := m.start_hour
	if v == nil {
		return
	}
	return *v, true
}

// OldStartHour returns the old "start_hour" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldStartHour(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartHour: %w", err)
	}
	return oldValue.StartHour, nil
}

// AddStartHour adds i to the "start_hour" field.
func (m *AppointmentSeriesMutation) AddStartHour(i int8) {
	if m.addstart_hour != nil {
		*m.addstart_hour += i
	} else {
		m.addstart_hour = &i
	}
}

// AddedStartHour returns the value that was added to the "start_hour" field in this mutation.
func (m *AppointmentSeriesMutation) AddedStartHour() (r int8, exists bool) {
	v := m.addstart_hour
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartHour resets all changes to the "start_hour" field.
func (m *AppointmentSeriesMutation) ResetStartHour() {
	m.start_hour = nil
	m.addstart_hour = nil
}

// SetStartMinute sets the "start_minute" field.
func (m *AppointmentSeriesMutation) SetStartMinute(i int8) {
	m.start_minute = &i
	m.addstart_minute = nil
}

// StartMinute returns the value of the "start_minute" field in the mutation.
func (m *AppointmentSeriesMutation) StartMinute() (r int8, exists bool) {
	v := m.start_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldStartMinute returns the old "start_minute" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldStartMinute(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartMinute: %w", err)
	}
	return oldValue.StartMinute, nil
}

// AddStartMinute adds i to the "start_minute" field.
func (m *AppointmentSeriesMutation) AddStartMinute(i int8) {
	if m.addstart_minute != nil {
		*m.addstart_minute += i
	} else {
		m.addstart_minute = &i
	}
}

// AddedStartMinute returns the value that was added to the "start_minute" field in this mutation.
func (m *AppointmentSeriesMutation) AddedStartMinute() (r int8, exists bool) {
	v := m.addstart_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartMinute resets all changes to the "start_minute" field.
func (m *AppointmentSeriesMutation) ResetStartMinute() {
	m.start_minute = nil
	m.addstart_minute = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *AppointmentSeriesMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *AppointmentSeriesMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *AppointmentSeriesMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *AppointmentSeriesMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *AppointmentSeriesMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetTimezone sets the "timezone" field.
func (m *AppointmentSeriesMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *AppointmentSeriesMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *AppointmentSeriesMutation) ResetTimezone() {
	m.timezone = nil
}

// SetUntilDate sets the "until_date" field.
func (m *AppointmentSeriesMutation) SetUntilDate(t time.Time) {
	m.until_date = &t
}

// UntilDate returns the value of the "until_date" field in the mutation.
func (m *AppointmentSeriesMutation) UntilDate() (r time.Time, exists bool) {
	v := m.until_date
	if v == nil {
		return
	}
	return *v, true
}

// OldUntilDate returns the old "until_date" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldUntilDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUntilDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUntilDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUntilDate: %w", err)
	}
	return oldValue.UntilDate, nil
}

// ClearUntilDate clears the value of the "until_date" field.
func (m *AppointmentSeriesMutation) ClearUntilDate() {
	m.until_date = nil
	m.clearedFields[appointmentseries.FieldUntilDate] = struct{}{}
}

// UntilDateCleared returns if the "until_date" field was cleared in this mutation.
func (m *AppointmentSeriesMutation) UntilDateCleared() bool {
	_, ok := m.clearedFields[appointmentseries.FieldUntilDate]
	return ok
}

// ResetUntilDate resets all changes to the "until_date" field.
func (m *AppointmentSeriesMutation) ResetUntilDate() {
	m.until_date = nil
	delete(m.clearedFields, appointmentseries.FieldUntilDate)
}

// SetGenerationCapDays sets the "generation_cap_days" field.
func (m *AppointmentSeriesMutation) SetGenerationCapDays(i int) {
	m.generation_cap_days = &i
	m.addgeneration_cap_days = nil
}

// GenerationCapDays returns the value of the "generation_cap_days" field in the mutation.
func (m *AppointmentSeriesMutation) GenerationCapDays() (r int, exists bool) {
	v := m.generation_cap_days
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationCapDays returns the old "generation_cap_days" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldGenerationCapDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationCapDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationCapDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationCapDays: %w", err)
	}
	return oldValue.GenerationCapDays, nil
}

// AddGenerationCapDays adds i to the "generation_cap_days" field.
func (m *AppointmentSeriesMutation) AddGenerationCapDays(i int) {
	if m.addgeneration_cap_days != nil {
		*m.addgeneration_cap_days += i
	} else {
		m.addgeneration_cap_days = &i
	}
}

// AddedGenerationCapDays returns the value that was added to the "generation_cap_days" field in this mutation.
func (m *AppointmentSeriesMutation) AddedGenerationCapDays() (r int, exists bool) {
	v := m.addgeneration_cap_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationCapDays clears the value of the "generation_cap_days" field.
func (m *AppointmentSeriesMutation) ClearGenerationCapDays() {
	m.generation_cap_days = nil
	m.addgeneration_cap_days = nil
	m.clearedFields[appointmentseries.FieldGenerationCapDays] = struct{}{}
}

// GenerationCapDaysCleared returns if the "generation_cap_days" field was cleared in this mutation.
func (m *AppointmentSeriesMutation) GenerationCapDaysCleared() bool {
	_, ok := m.clearedFields[appointmentseries.FieldGenerationCapDays]
	return ok
}

// ResetGenerationCapDays resets all changes to the "generation_cap_days" field.
func (m *AppointmentSeriesMutation) ResetGenerationCapDays() {
	m.generation_cap_days = nil
	m.addgeneration_cap_days = nil
	delete(m.clearedFields, appointmentseries.FieldGenerationCapDays)
}

// SetLastGeneratedUntil sets the "last_generated_until" field.
func (m *AppointmentSeriesMutation) SetLastGeneratedUntil(t time.Time) {
	m.last_generated_until = &t
}

// LastGeneratedUntil returns the value of the "last_generated_until" field in the mutation.
func (m *AppointmentSeriesMutation) LastGeneratedUntil() (r time.Time, exists bool) {
	v := m.last_generated_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLastGeneratedUntil returns the old "last_generated_until" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldLastGeneratedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastGeneratedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastGeneratedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastGeneratedUntil: %w", err)
	}
	return oldValue.LastGeneratedUntil, nil
}

// ClearLastGeneratedUntil clears the value of the "last_generated_until" field.
func (m *AppointmentSeriesMutation) ClearLastGeneratedUntil() {
	m.last_generated_until = nil
	m.clearedFields[appointmentseries.FieldLastGeneratedUntil] = struct{}{}
}

// LastGeneratedUntilCleared returns if the "last_generated_until" field was cleared in this mutation.
func (m *AppointmentSeriesMutation) LastGeneratedUntilCleared() bool {
	_, ok := m.clearedFields[appointmentseries.FieldLastGeneratedUntil]
	return ok
}

// ResetLastGeneratedUntil resets all changes to the "last_generated_until" field.
func (m *AppointmentSeriesMutation) ResetLastGeneratedUntil() {
	m.last_generated_until = nil
	delete(m.clearedFields, appointmentseries.FieldLastGeneratedUntil)
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *AppointmentSeriesMutation) SetCostEstimate(i int64) {
	m.cost_estimate = &i
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *AppointmentSeriesMutation) CostEstimate() (r int64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldCostEstimate(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds i to the "cost_estimate" field.
func (m *AppointmentSeriesMutation) AddCostEstimate(i int64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += i
	} else {
		m.addcost_estimate = &i
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *AppointmentSeriesMutation) AddedCostEstimate() (r int64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (m *AppointmentSeriesMutation) ClearCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
	m.clearedFields[appointmentseries.FieldCostEstimate] = struct{}{}
}

// CostEstimateCleared returns if the "cost_estimate" field was cleared in this mutation.
func (m *AppointmentSeriesMutation) CostEstimateCleared() bool {
	_, ok := m.clearedFields[appointmentseries.FieldCostEstimate]
	return ok
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *AppointmentSeriesMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
	delete(m.clearedFields, appointmentseries.FieldCostEstimate)
}

// SetIsActive sets the "is_active" field.
func (m *AppointmentSeriesMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AppointmentSeriesMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AppointmentSeries entity.
// If the AppointmentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentSeriesMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AppointmentSeriesMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the AppointmentSeriesMutation builder.
func (m *AppointmentSeriesMutation) Where(ps ...predicate.AppointmentSeries) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentSeriesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentSeriesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppointmentSeries, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentSeriesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentSeriesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppointmentSeries).
func (m *AppointmentSeriesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentSeriesMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, appointmentseries.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointmentseries.FieldUpdatedAt)
	}
	if m.practice_id != nil {
		fields = append(fields, appointmentseries.FieldPracticeID)
	}
	if m.staff_id != nil {
		fields = append(fields, appointmentseries.FieldStaffID)
	}
	if m.client_id != nil {
		fields = append(fields, appointmentseries.FieldClientID)
	}
	if m.title != nil {
		fields = append(fields, appointmentseries.FieldTitle)
	}
	if m.rrule != nil {
		fields = append(fields, appointmentseries.FieldRrule)
	}
	if m.series_start_date != nil {
		fields = append(fields, appointmentseries.FieldSeriesStartDate)
	}
	if m.start_hour != nil {
		fields = append(fields, appointmentseries.FieldStartHour)
	}
	if m.start_minute != nil {
		fields = append(fields, appointmentseries.FieldStartMinute)
	}
	if m.duration_minutes != nil {
		fields = append(fields, appointmentseries.FieldDurationMinutes)
	}
	if m.timezone != nil {
		fields = append(fields, appointmentseries.FieldTimezone)
	}
	if m.until_date != nil {
		fields = append(fields, appointmentseries.FieldUntilDate)
	}
	if m.generation_cap_days != nil {
		fields = append(fields, appointmentseries.FieldGenerationCapDays)
	}
	if m.last_generated_until != nil {
		fields = append(fields, appointmentseries.FieldLastGeneratedUntil)
	}
	if m.cost_estimate != nil {
		fields = append(fields, appointmentseries.FieldCostEstimate)
	}
	if m.is_active != nil {
		fields = append(fields, appointmentseries.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentSeriesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointmentseries.FieldCreatedAt:
		return m.CreatedAt()
	case appointmentseries.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointmentseries.FieldPracticeID:
		return m.PracticeID()
	case appointmentseries.FieldStaffID:
		return m.StaffID()
	case appointmentseries.FieldClientID:
		return m.ClientID()
	case appointmentseries.FieldTitle:
		return m.Title()
	case appointmentseries.FieldRrule:
		return m.Rrule()
	case appointmentseries.FieldSeriesStartDate:
		return m.SeriesStartDate()
	case appointmentseries.FieldStartHour:
		return m.StartHour()
	case appointmentseries.FieldStartMinute:
		return m.StartMinute()
	case appointmentseries.FieldDurationMinutes:
		return m.DurationMinutes()
	case appointmentseries.FieldTimezone:
		return m.Timezone()
	case appointmentseries.FieldUntilDate:
		return m.UntilDate()
	case appointmentseries.FieldGenerationCapDays:
		return m.GenerationCapDays()
	case appointmentseries.FieldLastGeneratedUntil:
		return m.LastGeneratedUntil()
	case appointmentseries.FieldCostEstimate:
		return m.CostEstimate()
	case appointmentseries.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentSeriesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointmentseries.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointmentseries.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointmentseries.FieldPracticeID:
		return m.OldPracticeID(ctx)
	case appointmentseries.FieldStaffID:
		return m.OldStaffID(ctx)
	case appointmentseries.FieldClientID:
		return m.OldClientID(ctx)
	case appointmentseries.FieldTitle:
		return m.OldTitle(ctx)
	case appointmentseries.FieldRrule:
		return m.OldRrule(ctx)
	case appointmentseries.FieldSeriesStartDate:
		return m.OldSeriesStartDate(ctx)
	case appointmentseries.FieldStartHour:
		return m.OldStartHour(ctx)
	case appointmentseries.FieldStartMinute:
		return m.OldStartMinute(ctx)
	case appointmentseries.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case appointmentseries.FieldTimezone:
		return m.OldTimezone(ctx)
	case appointmentseries.FieldUntilDate:
		return m.OldUntilDate(ctx)
	case appointmentseries.FieldGenerationCapDays:
		return m.OldGenerationCapDays(ctx)
	case appointmentseries.FieldLastGeneratedUntil:
		return m.OldLastGeneratedUntil(ctx)
	case appointmentseries.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case appointmentseries.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown AppointmentSeries field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentSeriesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointmentseries.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointmentseries.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointmentseries.FieldPracticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeID(v)
		return nil
	case appointmentseries.FieldStaffID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffID(v)
		return nil
	case appointmentseries.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case appointmentseries.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case appointmentseries.FieldRrule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRrule(v)
		return nil
	case appointmentseries.FieldSeriesStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeriesStartDate(v)
		return nil
	case appointmentseries.FieldStartHour:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartHour(v)
		return nil
	case appointmentseries.FieldStartMinute:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartMinute(v)
		return nil
	case appointmentseries.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case appointmentseries.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case appointmentseries.FieldUntilDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUntilDate(v)
		return nil
	case appointmentseries.FieldGenerationCapDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationCapDays(v)
		return nil
	case appointmentseries.FieldLastGeneratedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastGeneratedUntil(v)
		return nil
	case appointmentseries.FieldCostEstimate:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case appointmentseries.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown AppointmentSeries field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentSeriesMutation) AddedFields() []string {
	var fields []string
	if m.addstart_hour != nil {
		fields = append(fields, appointmentseries.FieldStartHour)
	}
	if m.addstart_minute != nil {
		fields = append(fields, appointmentseries.FieldStartMinute)
	}
	if m.addduration_minutes != nil {
		fields = append(fields, appointmentseries.FieldDurationMinutes)
	}
	if m.addgeneration_cap_days != nil {
		fields = append(fields, appointmentseries.FieldGenerationCapDays)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, appointmentseries.FieldCostEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentSeriesMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointmentseries.FieldStartHour:
		return m.AddedStartHour()
	case appointmentseries.FieldStartMinute:
		return m.AddedStartMinute()
	case appointmentseries.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case appointmentseries.FieldGenerationCapDays:
		return m.AddedGenerationCapDays()
	case appointmentseries.FieldCostEstimate:
		return m.AddedCostEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentSeriesMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointmentseries.FieldStartHour:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartHour(v)
		return nil
	case appointmentseries.FieldStartMinute:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartMinute(v)
		return nil
	case appointmentseries.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case appointmentseries.FieldGenerationCapDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationCapDays(v)
		return nil
	case appointmentseries.FieldCostEstimate:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown AppointmentSeries numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentSeriesMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointmentseries.FieldUntilDate) {
		fields = append(fields, appointmentseries.FieldUntilDate)
	}
	if m.FieldCleared(appointmentseries.FieldGenerationCapDays) {
		fields = append(fields, appointmentseries.FieldGenerationCapDays)
	}
	if m.FieldCleared(appointmentseries.FieldLastGeneratedUntil) {
		fields = append(fields, appointmentseries.FieldLastGeneratedUntil)
	}
	if m.FieldCleared(appointmentseries.FieldCostEstimate) {
		fields = append(fields, appointmentseries.FieldCostEstimate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentSeriesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentSeriesMutation) ClearField(name string) error {
	switch name {
	case appointmentseries.FieldUntilDate:
		m.ClearUntilDate()
		return nil
	case appointmentseries.FieldGenerationCapDays:
		m.ClearGenerationCapDays()
		return nil
	case appointmentseries.FieldLastGeneratedUntil:
		m.ClearLastGeneratedUntil()
		return nil
	case appointmentseries.FieldCostEstimate:
		m.ClearCostEstimate()
		return nil
	}
	return fmt.Errorf("unknown AppointmentSeries nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentSeriesMutation) ResetField(name string) error {
	switch name {
	case appointmentseries.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointmentseries.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointmentseries.FieldPracticeID:
		m.ResetPracticeID()
		return nil
	case appointmentseries.FieldStaffID:
		m.ResetStaffID()
		return nil
	case appointmentseries.FieldClientID:
		m.ResetClientID()
		return nil
	case appointmentseries.FieldTitle:
		m.ResetTitle()
		return nil
	case appointmentseries.FieldRrule:
		m.ResetRrule()
		return nil
	case appointmentseries.FieldSeriesStartDate:
		m.ResetSeriesStartDate()
		return nil
	case appointmentseries.FieldStartHour:
		m.ResetStartHour()
		return nil
	case appointmentseries.FieldStartMinute:
		m.ResetStartMinute()
		return nil
	case appointmentseries.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case appointmentseries.FieldTimezone:
		m.ResetTimezone()
		return nil
	case appointmentseries.FieldUntilDate:
		m.ResetUntilDate()
		return nil
	case appointmentseries.FieldGenerationCapDays:
		m.ResetGenerationCapDays()
		return nil
	case appointmentseries.FieldLastGeneratedUntil:
		m.ResetLastGeneratedUntil()
		return nil
	case appointmentseries.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case appointmentseries.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown AppointmentSeries field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentSeriesMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentSeriesMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentSeriesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentSeriesMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentSeriesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentSeriesMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentSeriesMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AppointmentSeries unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentSeriesMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AppointmentSeries edge %s", name)
}

// CalendarConnectionMutation represents an operation that mutates the CalendarConnection nodes in the graph.
type CalendarConnectionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	practice_id       *uuid.UUID
	staff_id          *uuid.UUID
	provider          *calendarconnection.Provider
	account_email     *string
	refresh_token_enc *string
	status            *calendarconnection.Status
	is_active         *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CalendarConnection, error)
	predicates        []predicate.CalendarConnection
}

var _ ent.Mutation = (*CalendarConnectionMutation)(nil)

// calendarconnectionOption allows management of the mutation configuration using functional options.
type calendarconnectionOption func(*CalendarConnectionMutation)

// newCalendarConnectionMutation creates new mutation for the CalendarConnection entity.
func newCalendarConnectionMutation(c config, op Op, opts ...calendarconnectionOption) *CalendarConnectionMutation {
	m := &CalendarConnectionMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarConnection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarConnectionID sets the ID field of the mutation.
func withCalendarConnectionID(id uuid.UUID) calendarconnectionOption {
	return func(m *CalendarConnectionMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarConnection
		)
		m.oldValue = func(ctx context.Context) (*CalendarConnection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarConnection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarConnection sets the old CalendarConnection of the mutation.
func withCalendarConnection(node *CalendarConnection) calendarconnectionOption {
	return func(m *CalendarConnectionMutation) {
		m.oldValue = func(context.Context) (*CalendarConnection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarConnectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarConnectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarConnection entities.
func (m *CalendarConnectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarConnectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarConnectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarConnection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarConnectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarConnectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarConnectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CalendarConnectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CalendarConnectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CalendarConnectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPracticeID sets the "practice_id" field.
func (m *CalendarConnectionMutation) SetPracticeID(u uuid.UUID) {
	m.practice_id = &u
}

// PracticeID returns the value of the "practice_id" field in the mutation.
func (m *CalendarConnectionMutation) PracticeID() (r uuid.UUID, exists bool) {
	v := m.practice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeID returns the old "practice_id" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldPracticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeID: %w", err)
	}
	return oldValue.PracticeID, nil
}

// ResetPracticeID resets all changes to the "practice_id" field.
func (m *CalendarConnectionMutation) ResetPracticeID() {
	m.practice_id = nil
}

// SetStaffID sets the "staff_id" field.
func (m *CalendarConnectionMutation) SetStaffID(u uuid.UUID) {
	m.staff_id = &u
}

// StaffID returns the value of the "staff_id" field in the mutation.
func (m *CalendarConnectionMutation) StaffID() (r uuid.UUID, exists bool) {
	v := m.staff_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffID returns the old "staff_id" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldStaffID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffID: %w", err)
	}
	return oldValue.StaffID, nil
}

// ResetStaffID resets all changes to the "staff_id" field.
func (m *CalendarConnectionMutation) ResetStaffID() {
	m.staff_id = nil
}

// SetProvider sets the "provider" field.
func (m *CalendarConnectionMutation) SetProvider(c calendarconnection.Provider) {
	m.provider = &c
}

// Provider returns the value of the "provider" field in the mutation.
func (m *CalendarConnectionMutation) Provider() (r calendarconnection.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldProvider(ctx context.Context) (v calendarconnection.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *CalendarConnectionMutation) ResetProvider() {
	m.provider = nil
}

// SetAccountEmail sets the "account_email" field.
func (m *CalendarConnectionMutation) SetAccountEmail(s string) {
	m.account_email = &s
}

// AccountEmail returns the value of the "account_email" field in the mutation.
func (m *CalendarConnectionMutation) AccountEmail() (r string, exists bool) {
	v := m.account_email
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountEmail returns the old "account_email" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldAccountEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountEmail: %w", err)
	}
	return oldValue.AccountEmail, nil
}

// ResetAccountEmail resets all changes to the "account_email" field.
func (m *CalendarConnectionMutation) ResetAccountEmail() {
	m.account_email = nil
}

// SetRefreshTokenEnc sets the "refresh_token_enc" field.
func (m *CalendarConnectionMutation) SetRefreshTokenEnc(s string) {
	m.refresh_token_enc = &s
}

// RefreshTokenEnc returns the value of the "refresh_token_enc" field in the mutation.
func (m *CalendarConnectionMutation) RefreshTokenEnc() (r string, exists bool) {
	v := m.refresh_token_enc
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenEnc returns the old "refresh_token_enc" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldRefreshTokenEnc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenEnc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenEnc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenEnc: %w", err)
	}
	return oldValue.RefreshTokenEnc, nil
}

// ResetRefreshTokenEnc resets all changes to the "refresh_token_enc" field.
func (m *CalendarConnectionMutation) ResetRefreshTokenEnc() {
	m.refresh_token_enc = nil
}

// SetStatus sets the "status" field.
func (m *CalendarConnectionMutation) SetStatus(c calendarconnection.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CalendarConnectionMutation) Status() (r calendarconnection.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldStatus(ctx context.Context) (v calendarconnection.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CalendarConnectionMutation) ResetStatus() {
	m.status = nil
}

// SetIsActive sets the "is_active" field.
func (m *CalendarConnectionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *CalendarConnectionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the CalendarConnection entity.
// If the CalendarConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarConnectionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *CalendarConnectionMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the CalendarConnectionMutation builder.
func (m *CalendarConnectionMutation) Where(ps ...predicate.CalendarConnection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarConnectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarConnectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarConnection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarConnectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarConnectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarConnection).
func (m *CalendarConnectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarConnectionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, calendarconnection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, calendarconnection.FieldUpdatedAt)
	}
	if m.practice_id != nil {
		fields = append(fields, calendarconnection.FieldPracticeID)
	}
	if m.staff_id != nil {
		fields = append(fields, calendarconnection.FieldStaffID)
	}
	if m.provider != nil {
		fields = append(fields, calendarconnection.FieldProvider)
	}
	if m.account_email != nil {
		fields = append(fields, calendarconnection.FieldAccountEmail)
	}
	if m.refresh_token_enc != nil {
		fields = append(fields, calendarconnection.FieldRefreshTokenEnc)
	}
	if m.status != nil {
		fields = append(fields, calendarconnection.FieldStatus)
	}
	if m.is_active != nil {
		fields = append(fields, calendarconnection.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarConnectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarconnection.FieldCreatedAt:
		return m.CreatedAt()
	case calendarconnection.FieldUpdatedAt:
		return m.UpdatedAt()
	case calendarconnection.FieldPracticeID:
		return m.PracticeID()
	case calendarconnection.FieldStaffID:
		return m.StaffID()
	case calendarconnection.FieldProvider:
		return m.Provider()
	case calendarconnection.FieldAccountEmail:
		return m.AccountEmail()
	case calendarconnection.FieldRefreshTokenEnc:
		return m.RefreshTokenEnc()
	case calendarconnection.FieldStatus:
		return m.Status()
	case calendarconnection.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarConnectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarconnection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case calendarconnection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case calendarconnection.FieldPracticeID:
		return m.OldPracticeID(ctx)
	case calendarconnection.FieldStaffID:
		return m.OldStaffID(ctx)
	case calendarconnection.FieldProvider:
		return m.OldProvider(ctx)
	case calendarconnection.FieldAccountEmail:
		return m.OldAccountEmail(ctx)
	case calendarconnection.FieldRefreshTokenEnc:
		return m.OldRefreshTokenEnc(ctx)
	case calendarconnection.FieldStatus:
		return m.OldStatus(ctx)
	case calendarconnection.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarConnection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarConnectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarconnection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case calendarconnection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case calendarconnection.FieldPracticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeID(v)
		return nil
	case calendarconnection.FieldStaffID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffID(v)
		return nil
	case calendarconnection.FieldProvider:
		v, ok := value.(calendarconnection.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case calendarconnection.FieldAccountEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountEmail(v)
		return nil
	case calendarconnection.FieldRefreshTokenEnc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenEnc(v)
		return nil
	case calendarconnection.FieldStatus:
		v, ok := value.(calendarconnection.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case calendarconnection.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarConnection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarConnectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarConnectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarConnectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarConnection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarConnectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarConnectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarConnectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CalendarConnection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarConnectionMutation) ResetField(name string) error {
	switch name {
	case calendarconnection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case calendarconnection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case calendarconnection.FieldPracticeID:
		m.ResetPracticeID()
		return nil
	case calendarconnection.FieldStaffID:
		m.ResetStaffID()
		return nil
	case calendarconnection.FieldProvider:
		m.ResetProvider()
		return nil
	case calendarconnection.FieldAccountEmail:
		m.ResetAccountEmail()
		return nil
	case calendarconnection.FieldRefreshTokenEnc:
		m.ResetRefreshTokenEnc()
		return nil
	case calendarconnection.FieldStatus:
		m.ResetStatus()
		return nil
	case calendarconnection.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown CalendarConnection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarConnectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarConnectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarConnectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarConnectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarConnectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarConnectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarConnectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalendarConnection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarConnectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalendarConnection edge %s", name)
}

// CalendarWatchChannelMutation represents an operation that mutates the CalendarWatchChannel nodes in the graph.
type CalendarWatchChannelMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	practice_id          *uuid.UUID
	staff_id             *uuid.UUID
	provider             *calendarwatchchannel.Provider
	channel_id           *string
	resource_id          *string
	provider_calendar_id *string
	sync_token           *string
	expires_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*CalendarWatchChannel, error)
	predicates           []predicate.CalendarWatchChannel
}

var _ ent.Mutation = (*CalendarWatchChannelMutation)(nil)

// calendarwatchchannelOption allows management of the mutation configuration using functional options.
type calendarwatchchannelOption func(*CalendarWatchChannelMutation)

// newCalendarWatchChannelMutation creates new mutation for the CalendarWatchChannel entity.
func newCalendarWatchChannelMutation(c config, op Op, opts ...calendarwatchchannelOption) *CalendarWatchChannelMutation {
	m := &CalendarWatchChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarWatchChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarWatchChannelID sets the ID field of the mutation.
func withCalendarWatchChannelID(id uuid.UUID) calendarwatchchannelOption {
	return func(m *CalendarWatchChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarWatchChannel
		)
		m.oldValue = func(ctx context.Context) (*CalendarWatchChannel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarWatchChannel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarWatchChannel sets the old CalendarWatchChannel of the mutation.
func withCalendarWatchChannel(node *CalendarWatchChannel) calendarwatchchannelOption {
	return func(m *CalendarWatchChannelMutation) {
		m.oldValue = func(context.Context) (*CalendarWatchChannel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarWatchChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarWatchChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarWatchChannel entities.
func (m *CalendarWatchChannelMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarWatchChannelMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarWatchChannelMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarWatchChannel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarWatchChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarWatchChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarWatchChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CalendarWatchChannelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CalendarWatchChannelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CalendarWatchChannelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPracticeID sets the "practice_id" field.
func (m *CalendarWatchChannelMutation) SetPracticeID(u uuid.UUID) {
	m.practice_id = &u
}

// PracticeID returns the value of the "practice_id" field in the mutation.
func (m *CalendarWatchChannelMutation) PracticeID() (r uuid.UUID, exists bool) {
	v := m.practice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeID returns the old "practice_id" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldPracticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeID: %w", err)
	}
	return oldValue.PracticeID, nil
}

// ResetPracticeID resets all changes to the "practice_id" field.
func (m *CalendarWatchChannelMutation) ResetPracticeID() {
	m.practice_id = nil
}

// SetStaffID sets the "staff_id" field.
func (m *CalendarWatchChannelMutation) SetStaffID(u uuid.UUID) {
	m.staff_id = &u
}

// StaffID returns the value of the "staff_id" field in the mutation.
func (m *CalendarWatchChannelMutation) StaffID() (r uuid.UUID, exists bool) {
	v := m.staff_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffID returns the old "staff_id" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldStaffID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffID: %w", err)
	}
	return oldValue.StaffID, nil
}

// ResetStaffID resets all changes to the "staff_id" field.
func (m *CalendarWatchChannelMutation) ResetStaffID() {
	m.staff_id = nil
}

// SetProvider sets the "provider" field.
func (m *CalendarWatchChannelMutation) SetProvider(c calendarwatchchannel.Provider) {
	m.provider = &c
}

// Provider returns the value of the "provider" field in the mutation.
func (m *CalendarWatchChannelMutation) Provider() (r calendarwatchchannel.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldProvider(ctx context.Context) (v calendarwatchchannel.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *CalendarWatchChannelMutation) ResetProvider() {
	m.provider = nil
}

// SetChannelID sets the "channel_id" field.
func (m *CalendarWatchChannelMutation) SetChannelID(s string) {
	m.channel_id = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *CalendarWatchChannelMutation) ChannelID() (r string, exists bool) {
	v := m.channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *CalendarWatchChannelMutation) ResetChannelID() {
	m.channel_id = nil
}

// SetResourceID sets the "resource_id" field.
func (m *CalendarWatchChannelMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *CalendarWatchChannelMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldResourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *CalendarWatchChannelMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[calendarwatchchannel.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *CalendarWatchChannelMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[calendarwatchchannel.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *CalendarWatchChannelMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, calendarwatchchannel.FieldResourceID)
}

// SetProviderCalendarID sets the "provider_calendar_id" field.
func (m *CalendarWatchChannelMutation) SetProviderCalendarID(s string) {
	m.provider_calendar_id = &s
}

// ProviderCalendarID returns the value of the "provider_calendar_id" field in the mutation.
func (m *CalendarWatchChannelMutation) ProviderCalendarID() (r string, exists bool) {
	v := m.provider_calendar_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderCalendarID returns the old "provider_calendar_id" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldProviderCalendarID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderCalendarID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderCalendarID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderCalendarID: %w", err)
	}
	return oldValue.ProviderCalendarID, nil
}

// ResetProviderCalendarID resets all changes to the "provider_calendar_id" field.
func (m *CalendarWatchChannelMutation) ResetProviderCalendarID() {
	m.provider_calendar_id = nil
}

// SetSyncToken sets the "sync_token" field.
func (m *CalendarWatchChannelMutation) SetSyncToken(s string) {
	m.sync_token = &s
}

// SyncToken returns the value of the "sync_token" field in the mutation.
func (m *CalendarWatchChannelMutation) SyncToken() (r string, exists bool) {
	v := m.sync_token
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncToken returns the old "sync_token" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldSyncToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncToken: %w", err)
	}
	return oldValue.SyncToken, nil
}

// ClearSyncToken clears the value of the "sync_token" field.
func (m *CalendarWatchChannelMutation) ClearSyncToken() {
	m.sync_token = nil
	m.clearedFields[calendarwatchchannel.FieldSyncToken] = struct{}{}
}

// SyncTokenCleared returns if the "sync_token" field was cleared in this mutation.
func (m *CalendarWatchChannelMutation) SyncTokenCleared() bool {
	_, ok := m.clearedFields[calendarwatchchannel.FieldSyncToken]
	return ok
}

// ResetSyncToken resets all changes to the "sync_token" field.
func (m *CalendarWatchChannelMutation) ResetSyncToken() {
	m.sync_token = nil
	delete(m.clearedFields, calendarwatchchannel.FieldSyncToken)
}

// SetExpiresAt sets the "expires_at" field.
func (m *CalendarWatchChannelMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *CalendarWatchChannelMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the CalendarWatchChannel entity.
// If the CalendarWatchChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarWatchChannelMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *CalendarWatchChannelMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[calendarwatchchannel.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *CalendarWatchChannelMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[calendarwatchchannel.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *CalendarWatchChannelMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, calendarwatchchannel.FieldExpiresAt)
}

// Where appends a list predicates to the CalendarWatchChannelMutation builder.
func (m *CalendarWatchChannelMutation) Where(ps ...predicate.CalendarWatchChannel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarWatchChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarWatchChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarWatchChannel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarWatchChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarWatchChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarWatchChannel).
func (m *CalendarWatchChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarWatchChannelMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, calendarwatchchannel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, calendarwatchchannel.FieldUpdatedAt)
	}
	if m.practice_id != nil {
		fields = append(fields, calendarwatchchannel.FieldPracticeID)
	}
	if m.staff_id != nil {
		fields = append(fields, calendarwatchchannel.FieldStaffID)
	}
	if m.provider != nil {
		fields = append(fields, calendarwatchchannel.FieldProvider)
	}
	if m.channel_id != nil {
		fields = append(fields, calendarwatchchannel.FieldChannelID)
	}
	if m.resource_id != nil {
		fields = append(fields, calendarwatchchannel.FieldResourceID)
	}
	if m.provider_calendar_id != nil {
		fields = append(fields, calendarwatchchannel.FieldProviderCalendarID)
	}
	if m.sync_token != nil {
		fields = append(fields, calendarwatchchannel.FieldSyncToken)
	}
	if m.expires_at != nil {
		fields = append(fields, calendarwatchchannel.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarWatchChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarwatchchannel.FieldCreatedAt:
		return m.CreatedAt()
	case calendarwatchchannel.FieldUpdatedAt:
		return m.UpdatedAt()
	case calendarwatchchannel.FieldPracticeID:
		return m.PracticeID()
	case calendarwatchchannel.FieldStaffID:
		return m.StaffID()
	case calendarwatchchannel.FieldProvider:
		return m.Provider()
	case calendarwatchchannel.FieldChannelID:
		return m.ChannelID()
	case calendarwatchchannel.FieldResourceID:
		return m.ResourceID()
	case calendarwatchchannel.FieldProviderCalendarID:
		return m.ProviderCalendarID()
	case calendarwatchchannel.FieldSyncToken:
		return m.SyncToken()
	case calendarwatchchannel.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarWatchChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarwatchchannel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case calendarwatchchannel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case calendarwatchchannel.FieldPracticeID:
		return m.OldPracticeID(ctx)
	case calendarwatchchannel.FieldStaffID:
		return m.OldStaffID(ctx)
	case calendarwatchchannel.FieldProvider:
		return m.OldProvider(ctx)
	case calendarwatchchannel.FieldChannelID:
		return m.OldChannelID(ctx)
	case calendarwatchchannel.FieldResourceID:
		return m.OldResourceID(ctx)
	case calendarwatchchannel.FieldProviderCalendarID:
		return m.OldProviderCalendarID(ctx)
	case calendarwatchchannel.FieldSyncToken:
		return m.OldSyncToken(ctx)
	case calendarwatchchannel.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarWatchChannel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarWatchChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarwatchchannel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case calendarwatchchannel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case calendarwatchchannel.FieldPracticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeID(v)
		return nil
	case calendarwatchchannel.FieldStaffID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffID(v)
		return nil
	case calendarwatchchannel.FieldProvider:
		v, ok := value.(calendarwatchchannel.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case calendarwatchchannel.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case calendarwatchchannel.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case calendarwatchchannel.FieldProviderCalendarID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderCalendarID(v)
		return nil
	case calendarwatchchannel.FieldSyncToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncToken(v)
		return nil
	case calendarwatchchannel.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarWatchChannel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarWatchChannelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarWatchChannelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarWatchChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarWatchChannel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarWatchChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarwatchchannel.FieldResourceID) {
		fields = append(fields, calendarwatchchannel.FieldResourceID)
	}
	if m.FieldCleared(calendarwatchchannel.FieldSyncToken) {
		fields = append(fields, calendarwatchchannel.FieldSyncToken)
	}
	if m.FieldCleared(calendarwatchchannel.FieldExpiresAt) {
		fields = append(fields, calendarwatchchannel.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarWatchChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarWatchChannelMutation) ClearField(name string) error {
	switch name {
	case calendarwatchchannel.FieldResourceID:
		m.ClearResourceID()
		return nil
	case calendarwatchchannel.FieldSyncToken:
		m.ClearSyncToken()
		return nil
	case calendarwatchchannel.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarWatchChannel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarWatchChannelMutation) ResetField(name string) error {
	switch name {
	case calendarwatchchannel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case calendarwatchchannel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case calendarwatchchannel.FieldPracticeID:
		m.ResetPracticeID()
		return nil
	case calendarwatchchannel.FieldStaffID:
		m.ResetStaffID()
		return nil
	case calendarwatchchannel.FieldProvider:
		m.ResetProvider()
		return nil
	case calendarwatchchannel.FieldChannelID:
		m.ResetChannelID()
		return nil
	case calendarwatchchannel.FieldResourceID:
		m.ResetResourceID()
		return nil
	case calendarwatchchannel.FieldProviderCalendarID:
		m.ResetProviderCalendarID()
		return nil
	case calendarwatchchannel.FieldSyncToken:
		m.ResetSyncToken()
		return nil
	case calendarwatchchannel.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarWatchChannel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarWatchChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarWatchChannelMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarWatchChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarWatchChannelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarWatchChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarWatchChannelMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarWatchChannelMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalendarWatchChannel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarWatchChannelMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalendarWatchChannel edge %s", name)
}

// ClientProfileMutation represents an operation that mutates the ClientProfile nodes in the graph.
type ClientProfileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	practice_id   *uuid.UUID
	first_name    *string
	last_name     *string
	email         *string
	phone         *string
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ClientProfile, error)
	predicates    []predicate.ClientProfile
}

var _ ent.Mutation = (*ClientProfileMutation)(nil)

// clientprofileOption allows management of the mutation configuration using functional options.
type clientprofileOption func(*ClientProfileMutation)

// newClientProfileMutation creates new mutation for the ClientProfile entity.
func newClientProfileMutation(c config, op Op, opts ...clientprofileOption) *ClientProfileMutation {
	m := &ClientProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeClientProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientProfileID sets the ID field of the mutation.
func withClientProfileID(id uuid.UUID) clientprofileOption {
	return func(m *ClientProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientProfile
		)
		m.oldValue = func(ctx context.Context) (*ClientProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientProfile sets the old ClientProfile of the mutation.
func withClientProfile(node *ClientProfile) clientprofileOption {
	return func(m *ClientProfileMutation) {
		m.oldValue = func(context.Context) (*ClientProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClientProfile entities.
func (m *ClientProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClientProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClientProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClientProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClientProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClientProfileMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClientProfileMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClientProfileMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[clientprofile.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClientProfileMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[clientprofile.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClientProfileMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, clientprofile.FieldDeletedAt)
}

// SetPracticeID sets the "practice_id" field.
func (m *ClientProfileMutation) SetPracticeID(u uuid.UUID) {
	m.practice_id = &u
}

// PracticeID returns the value of the "practice_id" field in the mutation.
func (m *ClientProfileMutation) PracticeID() (r uuid.UUID, exists bool) {
	v := m.practice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeID returns the old "practice_id" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldPracticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeID: %w", err)
	}
	return oldValue.PracticeID, nil
}

// ResetPracticeID resets all changes to the "practice_id" field.
func (m *ClientProfileMutation) ResetPracticeID() {
	m.practice_id = nil
}

// SetFirstName sets the "first_name" field.
func (m *ClientProfileMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *ClientProfileMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *ClientProfileMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *ClientProfileMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *ClientProfileMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *ClientProfileMutation) ResetLastName() {
	m.last_name = nil
}

// SetEmail sets the "email" field.
func (m *ClientProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ClientProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ClientProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[clientprofile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ClientProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[clientprofile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ClientProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, clientprofile.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *ClientProfileMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClientProfileMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ClientProfileMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[clientprofile.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ClientProfileMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[clientprofile.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClientProfileMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, clientprofile.FieldPhone)
}

// SetIsActive sets the "is_active" field.
func (m *ClientProfileMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClientProfileMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClientProfileMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the ClientProfileMutation builder.
func (m *ClientProfileMutation) Where(ps ...predicate.ClientProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientProfile).
func (m *ClientProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, clientprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clientprofile.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, clientprofile.FieldDeletedAt)
	}
	if m.practice_id != nil {
		fields = append(fields, clientprofile.FieldPracticeID)
	}
	if m.first_name != nil {
		fields = append(fields, clientprofile.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, clientprofile.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, clientprofile.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, clientprofile.FieldPhone)
	}
	if m.is_active != nil {
		fields = append(fields, clientprofile.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientprofile.FieldCreatedAt:
		return m.CreatedAt()
	case clientprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case clientprofile.FieldDeletedAt:
		return m.DeletedAt()
	case clientprofile.FieldPracticeID:
		return m.PracticeID()
	case clientprofile.FieldFirstName:
		return m.FirstName()
	case clientprofile.FieldLastName:
		return m.LastName()
	case clientprofile.FieldEmail:
		return m.Email()
	case clientprofile.FieldPhone:
		return m.Phone()
	case clientprofile.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clientprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clientprofile.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case clientprofile.FieldPracticeID:
		return m.OldPracticeID(ctx)
	case clientprofile.FieldFirstName:
		return m.OldFirstName(ctx)
	case clientprofile.FieldLastName:
		return m.OldLastName(ctx)
	case clientprofile.FieldEmail:
		return m.OldEmail(ctx)
	case clientprofile.FieldPhone:
		return m.OldPhone(ctx)
	case clientprofile.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown ClientProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clientprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clientprofile.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case clientprofile.FieldPracticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeID(v)
		return nil
	case clientprofile.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case clientprofile.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case clientprofile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case clientprofile.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case clientprofile.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown ClientProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClientProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clientprofile.FieldDeletedAt) {
		fields = append(fields, clientprofile.FieldDeletedAt)
	}
	if m.FieldCleared(clientprofile.FieldEmail) {
		fields = append(fields, clientprofile.FieldEmail)
	}
	if m.FieldCleared(clientprofile.FieldPhone) {
		fields = append(fields, clientprofile.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientProfileMutation) ClearField(name string) error {
	switch name {
	case clientprofile.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case clientprofile.FieldEmail:
		m.ClearEmail()
		return nil
	case clientprofile.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown ClientProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientProfileMutation) ResetField(name string) error {
	switch name {
	case clientprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clientprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clientprofile.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case clientprofile.FieldPracticeID:
		m.ResetPracticeID()
		return nil
	case clientprofile.FieldFirstName:
		m.ResetFirstName()
		return nil
	case clientprofile.FieldLastName:
		m.ResetLastName()
		return nil
	case clientprofile.FieldEmail:
		m.ResetEmail()
		return nil
	case clientprofile.FieldPhone:
		m.ResetPhone()
		return nil
	case clientprofile.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown ClientProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClientProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClientProfile edge %s", name)
}

// PracticeMutation represents an operation that mutates the Practice nodes in the graph.
type PracticeMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	name          *string
	slug          *string
	timezone      *string
	phone         *string
	address       *string
	is_active     *bool
	clearedFields map[string]struct{}
	staff         map[uuid.UUID]struct{}
	removedstaff  map[uuid.UUID]struct{}
	clearedstaff  bool
	done          bool
	oldValue      func(context.Context) (*Practice, error)
	predicates    []predicate.Practice
}

var _ ent.Mutation = (*PracticeMutation)(nil)

// practiceOption allows management of the mutation configuration using functional options.
type practiceOption func(*PracticeMutation)

// newPracticeMutation creates new mutation for the Practice entity.
func newPracticeMutation(c config, op Op, opts ...practiceOption) *PracticeMutation {
	m := &PracticeMutation{
		config:        c,
		op:            op,
		typ:           TypePractice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeID sets the ID field of the mutation.
func withPracticeID(id uuid.UUID) practiceOption {
	return func(m *PracticeMutation) {
		var (
			err   error
			once  sync.Once
			value *Practice
		)
		m.oldValue = func(ctx context.Context) (*Practice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Practice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPractice sets the old Practice of the mutation.
func withPractice(node *Practice) practiceOption {
	return func(m *PracticeMutation) {
		m.oldValue = func(context.Context) (*Practice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Practice entities.
func (m *PracticeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Practice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PracticeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PracticeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PracticeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PracticeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PracticeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PracticeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PracticeMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PracticeMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PracticeMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[practice.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PracticeMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[practice.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PracticeMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, practice.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *PracticeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PracticeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PracticeMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *PracticeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *PracticeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *PracticeMutation) ResetSlug() {
	m.slug = nil
}

// SetTimezone sets the "timezone" field.
func (m *PracticeMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *PracticeMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *PracticeMutation) ResetTimezone() {
	m.timezone = nil
}

// SetPhone sets the "phone" field.
func (m *PracticeMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PracticeMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *PracticeMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[practice.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *PracticeMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[practice.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *PracticeMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, practice.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *PracticeMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PracticeMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *PracticeMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[practice.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *PracticeMutation) AddressCleared() bool {
	_, ok := m.clearedFields[practice.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *PracticeMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, practice.FieldAddress)
}

// SetIsActive sets the "is_active" field.
func (m *PracticeMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PracticeMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Practice entity.
// If the Practice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PracticeMutation) ResetIsActive() {
	m.is_active = nil
}

// AddStaffIDs adds the "staff" edge to the StaffMember entity by ids.
func (m *PracticeMutation) AddStaffIDs(ids ...uuid.UUID) {
	if m.staff == nil {
		m.staff = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.staff[ids[i]] = struct{}{}
	}
}

// ClearStaff clears the "staff" edge to the StaffMember entity.
func (m *PracticeMutation) ClearStaff() {
	m.clearedstaff = true
}

// StaffCleared reports if the "staff" edge to the StaffMember entity was cleared.
func (m *PracticeMutation) StaffCleared() bool {
	return m.clearedstaff
}

// RemoveStaffIDs removes the "staff" edge to the StaffMember entity by IDs.
func (m *PracticeMutation) RemoveStaffIDs(ids ...uuid.UUID) {
	if m.removedstaff == nil {
		m.removedstaff = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.staff, ids[i])
		m.removedstaff[ids[i]] = struct{}{}
	}
}

// RemovedStaff returns the removed IDs of the "staff" edge to the StaffMember entity.
func (m *PracticeMutation) RemovedStaffIDs() (ids []uuid.UUID) {
	for id := range m.removedstaff {
		ids = append(ids, id)
	}
	return
}

// StaffIDs returns the "staff" edge IDs in the mutation.
func (m *PracticeMutation) StaffIDs() (ids []uuid.UUID) {
	for id := range m.staff {
		ids = append(ids, id)
	}
	return
}

// ResetStaff resets all changes to the "staff" edge.
func (m *PracticeMutation) ResetStaff() {
	m.staff = nil
	m.clearedstaff = false
	m.removedstaff = nil
}

// Where appends a list predicates to the PracticeMutation builder.
func (m *PracticeMutation) Where(ps ...predicate.Practice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Practice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Practice).
func (m *PracticeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, practice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, practice.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, practice.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, practice.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, practice.FieldSlug)
	}
	if m.timezone != nil {
		fields = append(fields, practice.FieldTimezone)
	}
	if m.phone != nil {
		fields = append(fields, practice.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, practice.FieldAddress)
	}
	if m.is_active != nil {
		fields = append(fields, practice.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practice.FieldCreatedAt:
		return m.CreatedAt()
	case practice.FieldUpdatedAt:
		return m.UpdatedAt()
	case practice.FieldDeletedAt:
		return m.DeletedAt()
	case practice.FieldName:
		return m.Name()
	case practice.FieldSlug:
		return m.Slug()
	case practice.FieldTimezone:
		return m.Timezone()
	case practice.FieldPhone:
		return m.Phone()
	case practice.FieldAddress:
		return m.Address()
	case practice.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case practice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case practice.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case practice.FieldName:
		return m.OldName(ctx)
	case practice.FieldSlug:
		return m.OldSlug(ctx)
	case practice.FieldTimezone:
		return m.OldTimezone(ctx)
	case practice.FieldPhone:
		return m.OldPhone(ctx)
	case practice.FieldAddress:
		return m.OldAddress(ctx)
	case practice.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Practice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case practice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case practice.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case practice.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case practice.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case practice.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case practice.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case practice.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case practice.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Practice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Practice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practice.FieldDeletedAt) {
		fields = append(fields, practice.FieldDeletedAt)
	}
	if m.FieldCleared(practice.FieldPhone) {
		fields = append(fields, practice.FieldPhone)
	}
	if m.FieldCleared(practice.FieldAddress) {
		fields = append(fields, practice.FieldAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeMutation) ClearField(name string) error {
	switch name {
	case practice.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case practice.FieldPhone:
		m.ClearPhone()
		return nil
	case practice.FieldAddress:
		m.ClearAddress()
		return nil
	}
	return fmt.Errorf("unknown Practice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeMutation) ResetField(name string) error {
	switch name {
	case practice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case practice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case practice.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case practice.FieldName:
		m.ResetName()
		return nil
	case practice.FieldSlug:
		m.ResetSlug()
		return nil
	case practice.FieldTimezone:
		m.ResetTimezone()
		return nil
	case practice.FieldPhone:
		m.ResetPhone()
		return nil
	case practice.FieldAddress:
		m.ResetAddress()
		return nil
	case practice.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Practice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.staff != nil {
		edges = append(edges, practice.EdgeStaff)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case practice.EdgeStaff:
		ids := make([]ent.Value, 0, len(m.staff))
		for id := range m.staff {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstaff != nil {
		edges = append(edges, practice.EdgeStaff)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case practice.EdgeStaff:
		ids := make([]ent.Value, 0, len(m.removedstaff))
		for id := range m.removedstaff {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstaff {
		edges = append(edges, practice.EdgeStaff)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeMutation) EdgeCleared(name string) bool {
	switch name {
	case practice.EdgeStaff:
		return m.clearedstaff
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Practice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeMutation) ResetEdge(name string) error {
	switch name {
	case practice.EdgeStaff:
		m.ResetStaff()
		return nil
	}
	return fmt.Errorf("unknown Practice edge %s", name)
}

// StaffCalendarBlockMutation represents an operation that mutates the StaffCalendarBlock nodes in the graph.
type StaffCalendarBlockMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	practice_id       *uuid.UUID
	staff_id          *uuid.UUID
	source            *staffcalendarblock.Source
	external_event_id *string
	start_time        *time.Time
	end_time          *time.Time
	label             *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*StaffCalendarBlock, error)
	predicates        []predicate.StaffCalendarBlock
}

var _ ent.Mutation = (*StaffCalendarBlockMutation)(nil)

// staffcalendarblockOption allows management of the mutation configuration using functional options.
type staffcalendarblockOption func(*StaffCalendarBlockMutation)

// newStaffCalendarBlockMutation creates new mutation for the StaffCalendarBlock entity.
func newStaffCalendarBlockMutation(c config, op Op, opts ...staffcalendarblockOption) *StaffCalendarBlockMutation {
	m := &StaffCalendarBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeStaffCalendarBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaffCalendarBlockID sets the ID field of the mutation.
func withStaffCalendarBlockID(id uuid.UUID) staffcalendarblockOption {
	return func(m *StaffCalendarBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *StaffCalendarBlock
		)
		m.oldValue = func(ctx context.Context) (*StaffCalendarBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StaffCalendarBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaffCalendarBlock sets the old StaffCalendarBlock of the mutation.
func withStaffCalendarBlock(node *StaffCalendarBlock) staffcalendarblockOption {
	return func(m *StaffCalendarBlockMutation) {
		m.oldValue = func(context.Context) (*StaffCalendarBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaffCalendarBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaffCalendarBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StaffCalendarBlock entities.
func (m *StaffCalendarBlockMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaffCalendarBlockMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaffCalendarBlockMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StaffCalendarBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StaffCalendarBlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StaffCalendarBlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StaffCalendarBlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StaffCalendarBlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StaffCalendarBlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StaffCalendarBlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPracticeID sets the "practice_id" field.
func (m *StaffCalendarBlockMutation) SetPracticeID(u uuid.UUID) {
	m.practice_id = &u
}

// PracticeID returns the value of the "practice_id" field in the mutation.
func (m *StaffCalendarBlockMutation) PracticeID() (r uuid.UUID, exists bool) {
	v := m.practice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeID returns the old "practice_id" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldPracticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeID: %w", err)
	}
	return oldValue.PracticeID, nil
}

// ResetPracticeID resets all changes to the "practice_id" field.
func (m *StaffCalendarBlockMutation) ResetPracticeID() {
	m.practice_id = nil
}

// SetStaffID sets the "staff_id" field.
func (m *StaffCalendarBlockMutation) SetStaffID(u uuid.UUID) {
	m.staff_id = &u
}

// StaffID returns the value of the "staff_id" field in the mutation.
func (m *StaffCalendarBlockMutation) StaffID() (r uuid.UUID, exists bool) {
	v := m.staff_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffID returns the old "staff_id" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldStaffID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffID: %w", err)
	}
	return oldValue.StaffID, nil
}

// ResetStaffID resets all changes to the "staff_id" field.
func (m *StaffCalendarBlockMutation) ResetStaffID() {
	m.staff_id = nil
}

// SetSource sets the "source" field.
func (m *StaffCalendarBlockMutation) SetSource(s staffcalendarblock.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *StaffCalendarBlockMutation) Source() (r staffcalendarblock.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldSource(ctx context.Context) (v staffcalendarblock.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *StaffCalendarBlockMutation) ResetSource() {
	m.source = nil
}

// SetExternalEventID sets the "external_event_id" field.
func (m *StaffCalendarBlockMutation) SetExternalEventID(s string) {
	m.external_event_id = &s
}

// ExternalEventID returns the value of the "external_event_id" field in the mutation.
func (m *StaffCalendarBlockMutation) ExternalEventID() (r string, exists bool) {
	v := m.external_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalEventID returns the old "external_event_id" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldExternalEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalEventID: %w", err)
	}
	return oldValue.ExternalEventID, nil
}

// ResetExternalEventID resets all changes to the "external_event_id" field.
func (m *StaffCalendarBlockMutation) ResetExternalEventID() {
	m.external_event_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *StaffCalendarBlockMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *StaffCalendarBlockMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *StaffCalendarBlockMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *StaffCalendarBlockMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *StaffCalendarBlockMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *StaffCalendarBlockMutation) ResetEndTime() {
	m.end_time = nil
}

// SetLabel sets the "label" field.
func (m *StaffCalendarBlockMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *StaffCalendarBlockMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the StaffCalendarBlock entity.
// If the StaffCalendarBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffCalendarBlockMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *StaffCalendarBlockMutation) ResetLabel() {
	m.label = nil
}

// Where appends a list predicates to the StaffCalendarBlockMutation builder.
func (m *StaffCalendarBlockMutation) Where(ps ...predicate.StaffCalendarBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaffCalendarBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaffCalendarBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StaffCalendarBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaffCalendarBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaffCalendarBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StaffCalendarBlock).
func (m *StaffCalendarBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaffCalendarBlockMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, staffcalendarblock.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, staffcalendarblock.FieldUpdatedAt)
	}
	if m.practice_id != nil {
		fields = append(fields, staffcalendarblock.FieldPracticeID)
	}
	if m.staff_id != nil {
		fields = append(fields, staffcalendarblock.FieldStaffID)
	}
	if m.source != nil {
		fields = append(fields, staffcalendarblock.FieldSource)
	}
	if m.external_event_id != nil {
		fields = append(fields, staffcalendarblock.FieldExternalEventID)
	}
	if m.start_time != nil {
		fields = append(fields, staffcalendarblock.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, staffcalendarblock.FieldEndTime)
	}
	if m.label != nil {
		fields = append(fields, staffcalendarblock.FieldLabel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaffCalendarBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staffcalendarblock.FieldCreatedAt:
		return m.CreatedAt()
	case staffcalendarblock.FieldUpdatedAt:
		return m.UpdatedAt()
	case staffcalendarblock.FieldPracticeID:
		return m.PracticeID()
	case staffcalendarblock.FieldStaffID:
		return m.StaffID()
	case staffcalendarblock.FieldSource:
		return m.Source()
	case staffcalendarblock.FieldExternalEventID:
		return m.ExternalEventID()
	case staffcalendarblock.FieldStartTime:
		return m.StartTime()
	case staffcalendarblock.FieldEndTime:
		return m.EndTime()
	case staffcalendarblock.FieldLabel:
		return m.Label()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaffCalendarBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staffcalendarblock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case staffcalendarblock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case staffcalendarblock.FieldPracticeID:
		return m.OldPracticeID(ctx)
	case staffcalendarblock.FieldStaffID:
		return m.OldStaffID(ctx)
	case staffcalendarblock.FieldSource:
		return m.OldSource(ctx)
	case staffcalendarblock.FieldExternalEventID:
		return m.OldExternalEventID(ctx)
	case staffcalendarblock.FieldStartTime:
		return m.OldStartTime(ctx)
	case staffcalendarblock.FieldEndTime:
		return m.OldEndTime(ctx)
	case staffcalendarblock.FieldLabel:
		return m.OldLabel(ctx)
	}
	return nil, fmt.Errorf("unknown StaffCalendarBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffCalendarBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staffcalendarblock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case staffcalendarblock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case staffcalendarblock.FieldPracticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeID(v)
		return nil
	case staffcalendarblock.FieldStaffID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffID(v)
		return nil
	case staffcalendarblock.FieldSource:
		v, ok := value.(staffcalendarblock.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case staffcalendarblock.FieldExternalEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalEventID(v)
		return nil
	case staffcalendarblock.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case staffcalendarblock.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case staffcalendarblock.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	}
	return fmt.Errorf("unknown StaffCalendarBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaffCalendarBlockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaffCalendarBlockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffCalendarBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StaffCalendarBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaffCalendarBlockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaffCalendarBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaffCalendarBlockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StaffCalendarBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaffCalendarBlockMutation) ResetField(name string) error {
	switch name {
	case staffcalendarblock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case staffcalendarblock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case staffcalendarblock.FieldPracticeID:
		m.ResetPracticeID()
		return nil
	case staffcalendarblock.FieldStaffID:
		m.ResetStaffID()
		return nil
	case staffcalendarblock.FieldSource:
		m.ResetSource()
		return nil
	case staffcalendarblock.FieldExternalEventID:
		m.ResetExternalEventID()
		return nil
	case staffcalendarblock.FieldStartTime:
		m.ResetStartTime()
		return nil
	case staffcalendarblock.FieldEndTime:
		m.ResetEndTime()
		return nil
	case staffcalendarblock.FieldLabel:
		m.ResetLabel()
		return nil
	}
	return fmt.Errorf("unknown StaffCalendarBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaffCalendarBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaffCalendarBlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaffCalendarBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaffCalendarBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaffCalendarBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaffCalendarBlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaffCalendarBlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StaffCalendarBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaffCalendarBlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StaffCalendarBlock edge %s", name)
}

// StaffMemberMutation represents an operation that mutates the StaffMember nodes in the graph.
type StaffMemberMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	first_name      *string
	last_name       *string
	email           *string
	password_hash   *string
	role            *staffmember.Role
	license_number  *string
	is_active       *bool
	clearedFields   map[string]struct{}
	practice        *uuid.UUID
	clearedpractice bool
	done            bool
	oldValue        func(context.Context) (*StaffMember, error)
	predicates      []predicate.StaffMember
}

var _ ent.Mutation = (*StaffMemberMutation)(nil)

// staffmemberOption allows management of the mutation configuration using functional options.
type staffmemberOption func(*StaffMemberMutation)

// newStaffMemberMutation creates new mutation for the StaffMember entity.
func newStaffMemberMutation(c config, op Op, opts ...staffmemberOption) *StaffMemberMutation {
	m := &StaffMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeStaffMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaffMemberID sets the ID field of the mutation.
func withStaffMemberID(id uuid.UUID) staffmemberOption {
	return func(m *StaffMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *StaffMember
		)
		m.oldValue = func(ctx context.Context) (*StaffMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StaffMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaffMember sets the old StaffMember of the mutation.
func withStaffMember(node *StaffMember) staffmemberOption {
	return func(m *StaffMemberMutation) {
		m.oldValue = func(context.Context) (*StaffMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaffMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaffMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StaffMember entities.
func (m *StaffMemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaffMemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaffMemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StaffMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StaffMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StaffMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StaffMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StaffMemberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StaffMemberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StaffMemberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPracticeID sets the "practice_id" field.
func (m *StaffMemberMutation) SetPracticeID(u uuid.UUID) {
	m.practice = &u
}

// PracticeID returns the value of the "practice_id" field in the mutation.
func (m *StaffMemberMutation) PracticeID() (r uuid.UUID, exists bool) {
	v := m.practice
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeID returns the old "practice_id" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldPracticeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeID: %w", err)
	}
	return oldValue.PracticeID, nil
}

// ResetPracticeID resets all changes to the "practice_id" field.
func (m *StaffMemberMutation) ResetPracticeID() {
	m.practice = nil
}

// SetFirstName sets the "first_name" field.
func (m *StaffMemberMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *StaffMemberMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *StaffMemberMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *StaffMemberMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *StaffMemberMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *StaffMemberMutation) ResetLastName() {
	m.last_name = nil
}

// SetEmail sets the "email" field.
func (m *StaffMemberMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *StaffMemberMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *StaffMemberMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *StaffMemberMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *StaffMemberMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *StaffMemberMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *StaffMemberMutation) SetRole(s staffmember.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *StaffMemberMutation) Role() (r staffmember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldRole(ctx context.Context) (v staffmember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *StaffMemberMutation) ResetRole() {
	m.role = nil
}

// SetLicenseNumber sets the "license_number" field.
func (m *StaffMemberMutation) SetLicenseNumber(s string) {
	m.license_number = &s
}

// LicenseNumber returns the value of the "license_number" field in the mutation.
func (m *StaffMemberMutation) LicenseNumber() (r string, exists bool) {
	v := m.license_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseNumber returns the old "license_number" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldLicenseNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseNumber: %w", err)
	}
	return oldValue.LicenseNumber, nil
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (m *StaffMemberMutation) ClearLicenseNumber() {
	m.license_number = nil
	m.clearedFields[staffmember.FieldLicenseNumber] = struct{}{}
}

// LicenseNumberCleared returns if the "license_number" field was cleared in this mutation.
func (m *StaffMemberMutation) LicenseNumberCleared() bool {
	_, ok := m.clearedFields[staffmember.FieldLicenseNumber]
	return ok
}

// ResetLicenseNumber resets all changes to the "license_number" field.
func (m *StaffMemberMutation) ResetLicenseNumber() {
	m.license_number = nil
	delete(m.clearedFields, staffmember.FieldLicenseNumber)
}

// SetIsActive sets the "is_active" field.
func (m *StaffMemberMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *StaffMemberMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the StaffMember entity.
// If the StaffMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMemberMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *StaffMemberMutation) ResetIsActive() {
	m.is_active = nil
}

// ClearPractice clears the "practice" edge to the Practice entity.
func (m *StaffMemberMutation) ClearPractice() {
	m.clearedpractice = true
	m.clearedFields[staffmember.FieldPracticeID] = struct{}{}
}

// PracticeCleared reports if the "practice" edge to the Practice entity was cleared.
func (m *StaffMemberMutation) PracticeCleared() bool {
	return m.clearedpractice
}

// PracticeIDs returns the "practice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PracticeID instead. It exists only for internal usage by the builders.
func (m *StaffMemberMutation) PracticeIDs() (ids []uuid.UUID) {
	if id := m.practice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPractice resets all changes to the "practice" edge.
func (m *StaffMemberMutation) ResetPractice() {
	m.practice = nil
	m.clearedpractice = false
}

// Where appends a list predicates to the StaffMemberMutation builder.
func (m *StaffMemberMutation) Where(ps ...predicate.StaffMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaffMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaffMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StaffMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaffMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaffMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StaffMember).
func (m *StaffMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaffMemberMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, staffmember.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, staffmember.FieldUpdatedAt)
	}
	if m.practice != nil {
		fields = append(fields, staffmember.FieldPracticeID)
	}
	if m.first_name != nil {
		fields = append(fields, staffmember.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, staffmember.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, staffmember.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, staffmember.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, staffmember.FieldRole)
	}
	if m.license_number != nil {
		fields = append(fields, staffmember.FieldLicenseNumber)
	}
	if m.is_active != nil {
		fields = append(fields, staffmember.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaffMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staffmember.FieldCreatedAt:
		return m.CreatedAt()
	case staffmember.FieldUpdatedAt:
		return m.UpdatedAt()
	case staffmember.FieldPracticeID:
		return m.PracticeID()
	case staffmember.FieldFirstName:
		return m.FirstName()
	case staffmember.FieldLastName:
		return m.LastName()
	case staffmember.FieldEmail:
		return m.Email()
	case staffmember.FieldPasswordHash:
		return m.PasswordHash()
	case staffmember.FieldRole:
		return m.Role()
	case staffmember.FieldLicenseNumber:
		return m.LicenseNumber()
	case staffmember.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaffMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staffmember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case staffmember.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case staffmember.FieldPracticeID:
		return m.OldPracticeID(ctx)
	case staffmember.FieldFirstName:
		return m.OldFirstName(ctx)
	case staffmember.FieldLastName:
		return m.OldLastName(ctx)
	case staffmember.FieldEmail:
		return m.OldEmail(ctx)
	case staffmember.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case staffmember.FieldRole:
		return m.OldRole(ctx)
	case staffmember.FieldLicenseNumber:
		return m.OldLicenseNumber(ctx)
	case staffmember.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown StaffMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staffmember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case staffmember.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case staffmember.FieldPracticeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeID(v)
		return nil
	case staffmember.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case staffmember.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case staffmember.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case staffmember.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case staffmember.FieldRole:
		v, ok := value.(staffmember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case staffmember.FieldLicenseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseNumber(v)
		return nil
	case staffmember.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown StaffMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaffMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaffMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StaffMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaffMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staffmember.FieldLicenseNumber) {
		fields = append(fields, staffmember.FieldLicenseNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaffMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaffMemberMutation) ClearField(name string) error {
	switch name {
	case staffmember.FieldLicenseNumber:
		m.ClearLicenseNumber()
		return nil
	}
	return fmt.Errorf("unknown StaffMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaffMemberMutation) ResetField(name string) error {
	switch name {
	case staffmember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case staffmember.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case staffmember.FieldPracticeID:
		m.ResetPracticeID()
		return nil
	case staffmember.FieldFirstName:
		m.ResetFirstName()
		return nil
	case staffmember.FieldLastName:
		m.ResetLastName()
		return nil
	case staffmember.FieldEmail:
		m.ResetEmail()
		return nil
	case staffmember.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case staffmember.FieldRole:
		m.ResetRole()
		return nil
	case staffmember.FieldLicenseNumber:
		m.ResetLicenseNumber()
		return nil
	case staffmember.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown StaffMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaffMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.practice != nil {
		edges = append(edges, staffmember.EdgePractice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaffMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case staffmember.EdgePractice:
		if id := m.practice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaffMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaffMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaffMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpractice {
		edges = append(edges, staffmember.EdgePractice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaffMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case staffmember.EdgePractice:
		return m.clearedpractice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaffMemberMutation) ClearEdge(name string) error {
	switch name {
	case staffmember.EdgePractice:
		m.ClearPractice()
		return nil
	}
	return fmt.Errorf("unknown StaffMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaffMemberMutation) ResetEdge(name string) error {
	switch name {
	case staffmember.EdgePractice:
		m.ResetPractice()
		return nil
	}
	return fmt.Errorf("unknown StaffMember edge %s", name)
}

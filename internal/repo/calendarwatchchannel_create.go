// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
)

// CalendarWatchChannelCreate is the builder for creating a CalendarWatchChannel entity.
type CalendarWatchChannelCreate struct {
	config
	mutation *CalendarWatchChannelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarWatchChannelCreate) SetCreatedAt(v time.Time) *CalendarWatchChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarWatchChannelCreate) SetNillableCreatedAt(v *time.Time) *CalendarWatchChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CalendarWatchChannelCreate) SetUpdatedAt(v time.Time) *CalendarWatchChannelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CalendarWatchChannelCreate) SetNillableUpdatedAt(v *time.Time) *CalendarWatchChannelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPracticeID sets the "practice_id" field.
func (_c *CalendarWatchChannelCreate) SetPracticeID(v uuid.UUID) *CalendarWatchChannelCreate {
	_c.mutation.SetPracticeID(v)
	return _c
}

// SetStaffID sets the "staff_id" field.
func (_c *CalendarWatchChannelCreate) SetStaffID(v uuid.UUID) *CalendarWatchChannelCreate {
	_c.mutation.SetStaffID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *CalendarWatchChannelCreate) SetProvider(v calendarwatchchannel.Provider) *CalendarWatchChannelCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetChannelID sets the "channel_id" field.
func (_c *CalendarWatchChannelCreate) SetChannelID(v string) *CalendarWatchChannelCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *CalendarWatchChannelCreate) SetResourceID(v string) *CalendarWatchChannelCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_c *CalendarWatchChannelCreate) SetNillableResourceID(v *string) *CalendarWatchChannelCreate {
	if v != nil {
		_c.SetResourceID(*v)
	}
	return _c
}

// SetProviderCalendarID sets the "provider_calendar_id" field.
func (_c *CalendarWatchChannelCreate) SetProviderCalendarID(v string) *CalendarWatchChannelCreate {
	_c.mutation.SetProviderCalendarID(v)
	return _c
}

// SetSyncToken sets the "sync_token" field.
func (_c *CalendarWatchChannelCreate) SetSyncToken(v string) *CalendarWatchChannelCreate {
	_c.mutation.SetSyncToken(v)
	return _c
}

// SetNillableSyncToken sets the "sync_token" field if the given value is not nil.
func (_c *CalendarWatchChannelCreate) SetNillableSyncToken(v *string) *CalendarWatchChannelCreate {
	if v != nil {
		_c.SetSyncToken(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *CalendarWatchChannelCreate) SetExpiresAt(v time.Time) *CalendarWatchChannelCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *CalendarWatchChannelCreate) SetNillableExpiresAt(v *time.Time) *CalendarWatchChannelCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarWatchChannelCreate) SetID(v uuid.UUID) *CalendarWatchChannelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalendarWatchChannelCreate) SetNillableID(v *uuid.UUID) *CalendarWatchChannelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CalendarWatchChannelMutation object of the builder.
func (_c *CalendarWatchChannelCreate) Mutation() *CalendarWatchChannelMutation {
	return _c.mutation
}

// Save creates the CalendarWatchChannel in the database.
func (_c *CalendarWatchChannelCreate) Save(ctx context.Context) (*CalendarWatchChannel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarWatchChannelCreate) SaveX(ctx context.Context) *CalendarWatchChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarWatchChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarWatchChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarWatchChannelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarwatchchannel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := calendarwatchchannel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := calendarwatchchannel.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarWatchChannelCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CalendarWatchChannel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CalendarWatchChannel.updated_at"`)}
	}
	if _, ok := _c.mutation.PracticeID(); !ok {
		return &ValidationError{Name: "practice_id", err: errors.New(`repo: missing required field "CalendarWatchChannel.practice_id"`)}
	}
	if _, ok := _c.mutation.StaffID(); !ok {
		return &ValidationError{Name: "staff_id", err: errors.New(`repo: missing required field "CalendarWatchChannel.staff_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required field "CalendarWatchChannel.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := calendarwatchchannel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`repo: missing required field "CalendarWatchChannel.channel_id"`)}
	}
	if v, ok := _c.mutation.ChannelID(); ok {
		if err := calendarwatchchannel.ChannelIDValidator(v); err != nil {
			return &ValidationError{Name: "channel_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.channel_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ResourceID(); ok {
		if err := calendarwatchchannel.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.resource_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProviderCalendarID(); !ok {
		return &ValidationError{Name: "provider_calendar_id", err: errors.New(`repo: missing required field "CalendarWatchChannel.provider_calendar_id"`)}
	}
	if v, ok := _c.mutation.ProviderCalendarID(); ok {
		if err := calendarwatchchannel.ProviderCalendarIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_calendar_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.provider_calendar_id": %w`, err)}
		}
	}
	return nil
}

func (_c *CalendarWatchChannelCreate) sqlSave(ctx context.Context) (*CalendarWatchChannel, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalendarWatchChannelCreate) createSpec() (*CalendarWatchChannel, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarWatchChannel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarwatchchannel.Table, sqlgraph.NewFieldSpec(calendarwatchchannel.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarwatchchannel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarwatchchannel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PracticeID(); ok {
		_spec.SetField(calendarwatchchannel.FieldPracticeID, field.TypeUUID, value)
		_node.PracticeID = value
	}
	if value, ok := _c.mutation.StaffID(); ok {
		_spec.SetField(calendarwatchchannel.FieldStaffID, field.TypeUUID, value)
		_node.StaffID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(calendarwatchchannel.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ChannelID(); ok {
		_spec.SetField(calendarwatchchannel.FieldChannelID, field.TypeString, value)
		_node.ChannelID = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(calendarwatchchannel.FieldResourceID, field.TypeString, value)
		_node.ResourceID = &value
	}
	if value, ok := _c.mutation.ProviderCalendarID(); ok {
		_spec.SetField(calendarwatchchannel.FieldProviderCalendarID, field.TypeString, value)
		_node.ProviderCalendarID = value
	}
	if value, ok := _c.mutation.SyncToken(); ok {
		_spec.SetField(calendarwatchchannel.FieldSyncToken, field.TypeString, value)
		_node.SyncToken = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(calendarwatchchannel.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalendarWatchChannel.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarWatchChannelUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarWatchChannelCreate) OnConflict(opts ...sql.ConflictOption) *CalendarWatchChannelUpsertOne {
	_c.conflict = opts
	return &CalendarWatchChannelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarWatchChannel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarWatchChannelCreate) OnConflictColumns(columns ...string) *CalendarWatchChannelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarWatchChannelUpsertOne{
		create: _c,
	}
}

type (
	// CalendarWatchChannelUpsertOne is the builder for "upsert"-ing
	//  one CalendarWatchChannel node.
	CalendarWatchChannelUpsertOne struct {
		create *CalendarWatchChannelCreate
	}

	// CalendarWatchChannelUpsert is the "OnConflict" setter.
	CalendarWatchChannelUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarWatchChannelUpsert) SetUpdatedAt(v time.Time) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateUpdatedAt() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldUpdatedAt)
	return u
}

// SetPracticeID sets the "practice_id" field.
func (u *CalendarWatchChannelUpsert) SetPracticeID(v uuid.UUID) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldPracticeID, v)
	return u
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdatePracticeID() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldPracticeID)
	return u
}

// SetStaffID sets the "staff_id" field.
func (u *CalendarWatchChannelUpsert) SetStaffID(v uuid.UUID) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldStaffID, v)
	return u
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateStaffID() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldStaffID)
	return u
}

// SetProvider sets the "provider" field.
func (u *CalendarWatchChannelUpsert) SetProvider(v calendarwatchchannel.Provider) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateProvider() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldProvider)
	return u
}

// SetChannelID sets the "channel_id" field.
func (u *CalendarWatchChannelUpsert) SetChannelID(v string) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldChannelID, v)
	return u
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateChannelID() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldChannelID)
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *CalendarWatchChannelUpsert) SetResourceID(v string) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldResourceID, v)
	return u
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateResourceID() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldResourceID)
	return u
}

// ClearResourceID clears the value of the "resource_id" field.
func (u *CalendarWatchChannelUpsert) ClearResourceID() *CalendarWatchChannelUpsert {
	u.SetNull(calendarwatchchannel.FieldResourceID)
	return u
}

// SetProviderCalendarID sets the "provider_calendar_id" field.
func (u *CalendarWatchChannelUpsert) SetProviderCalendarID(v string) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldProviderCalendarID, v)
	return u
}

// UpdateProviderCalendarID sets the "provider_calendar_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateProviderCalendarID() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldProviderCalendarID)
	return u
}

// SetSyncToken sets the "sync_token" field.
func (u *CalendarWatchChannelUpsert) SetSyncToken(v string) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldSyncToken, v)
	return u
}

// UpdateSyncToken sets the "sync_token" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateSyncToken() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldSyncToken)
	return u
}

// ClearSyncToken clears the value of the "sync_token" field.
func (u *CalendarWatchChannelUpsert) ClearSyncToken() *CalendarWatchChannelUpsert {
	u.SetNull(calendarwatchchannel.FieldSyncToken)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *CalendarWatchChannelUpsert) SetExpiresAt(v time.Time) *CalendarWatchChannelUpsert {
	u.Set(calendarwatchchannel.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsert) UpdateExpiresAt() *CalendarWatchChannelUpsert {
	u.SetExcluded(calendarwatchchannel.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *CalendarWatchChannelUpsert) ClearExpiresAt() *CalendarWatchChannelUpsert {
	u.SetNull(calendarwatchchannel.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CalendarWatchChannel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarwatchchannel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarWatchChannelUpsertOne) UpdateNewValues() *CalendarWatchChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(calendarwatchchannel.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(calendarwatchchannel.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarWatchChannel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalendarWatchChannelUpsertOne) Ignore() *CalendarWatchChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarWatchChannelUpsertOne) DoNothing() *CalendarWatchChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarWatchChannelCreate.OnConflict
// documentation for more info.
func (u *CalendarWatchChannelUpsertOne) Update(set func(*CalendarWatchChannelUpsert)) *CalendarWatchChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarWatchChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarWatchChannelUpsertOne) SetUpdatedAt(v time.Time) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateUpdatedAt() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *CalendarWatchChannelUpsertOne) SetPracticeID(v uuid.UUID) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdatePracticeID() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *CalendarWatchChannelUpsertOne) SetStaffID(v uuid.UUID) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateStaffID() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateStaffID()
	})
}

// SetProvider sets the "provider" field.
func (u *CalendarWatchChannelUpsertOne) SetProvider(v calendarwatchchannel.Provider) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateProvider() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateProvider()
	})
}

// SetChannelID sets the "channel_id" field.
func (u *CalendarWatchChannelUpsertOne) SetChannelID(v string) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateChannelID() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateChannelID()
	})
}

// SetResourceID sets the "resource_id" field.
func (u *CalendarWatchChannelUpsertOne) SetResourceID(v string) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateResourceID() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateResourceID()
	})
}

// ClearResourceID clears the value of the "resource_id" field.
func (u *CalendarWatchChannelUpsertOne) ClearResourceID() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.ClearResourceID()
	})
}

// SetProviderCalendarID sets the "provider_calendar_id" field.
func (u *CalendarWatchChannelUpsertOne) SetProviderCalendarID(v string) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetProviderCalendarID(v)
	})
}

// UpdateProviderCalendarID sets the "provider_calendar_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateProviderCalendarID() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateProviderCalendarID()
	})
}

// SetSyncToken sets the "sync_token" field.
func (u *CalendarWatchChannelUpsertOne) SetSyncToken(v string) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetSyncToken(v)
	})
}

// UpdateSyncToken sets the "sync_token" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateSyncToken() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateSyncToken()
	})
}

// ClearSyncToken clears the value of the "sync_token" field.
func (u *CalendarWatchChannelUpsertOne) ClearSyncToken() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.ClearSyncToken()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CalendarWatchChannelUpsertOne) SetExpiresAt(v time.Time) *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertOne) UpdateExpiresAt() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *CalendarWatchChannelUpsertOne) ClearExpiresAt() *CalendarWatchChannelUpsertOne {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.ClearExpiresAt()
	})
}

// Exec executes the query.
func (u *CalendarWatchChannelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CalendarWatchChannelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarWatchChannelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalendarWatchChannelUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CalendarWatchChannelUpsertOne.ID is not supported by MySQL driver. Use CalendarWatchChannelUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalendarWatchChannelUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalendarWatchChannelCreateBulk is the builder for creating many CalendarWatchChannel entities in bulk.
type CalendarWatchChannelCreateBulk struct {
	config
	err      error
	builders []*CalendarWatchChannelCreate
	conflict []sql.ConflictOption
}

// Save creates the CalendarWatchChannel entities in the database.
func (_c *CalendarWatchChannelCreateBulk) Save(ctx context.Context) ([]*CalendarWatchChannel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarWatchChannel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarWatchChannelMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CalendarWatchChannelCreateBulk) SaveX(ctx context.Context) []*CalendarWatchChannel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarWatchChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarWatchChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalendarWatchChannel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarWatchChannelUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarWatchChannelCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalendarWatchChannelUpsertBulk {
	_c.conflict = opts
	return &CalendarWatchChannelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarWatchChannel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarWatchChannelCreateBulk) OnConflictColumns(columns ...string) *CalendarWatchChannelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarWatchChannelUpsertBulk{
		create: _c,
	}
}

// CalendarWatchChannelUpsertBulk is the builder for "upsert"-ing
// a bulk of CalendarWatchChannel nodes.
type CalendarWatchChannelUpsertBulk struct {
	create *CalendarWatchChannelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalendarWatchChannel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarwatchchannel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarWatchChannelUpsertBulk) UpdateNewValues() *CalendarWatchChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(calendarwatchchannel.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(calendarwatchchannel.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarWatchChannel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalendarWatchChannelUpsertBulk) Ignore() *CalendarWatchChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarWatchChannelUpsertBulk) DoNothing() *CalendarWatchChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarWatchChannelCreateBulk.OnConflict
// documentation for more info.
func (u *CalendarWatchChannelUpsertBulk) Update(set func(*CalendarWatchChannelUpsert)) *CalendarWatchChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarWatchChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarWatchChannelUpsertBulk) SetUpdatedAt(v time.Time) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateUpdatedAt() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *CalendarWatchChannelUpsertBulk) SetPracticeID(v uuid.UUID) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdatePracticeID() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *CalendarWatchChannelUpsertBulk) SetStaffID(v uuid.UUID) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateStaffID() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateStaffID()
	})
}

// SetProvider sets the "provider" field.
func (u *CalendarWatchChannelUpsertBulk) SetProvider(v calendarwatchchannel.Provider) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateProvider() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateProvider()
	})
}

// SetChannelID sets the "channel_id" field.
func (u *CalendarWatchChannelUpsertBulk) SetChannelID(v string) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateChannelID() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateChannelID()
	})
}

// SetResourceID sets the "resource_id" field.
func (u *CalendarWatchChannelUpsertBulk) SetResourceID(v string) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateResourceID() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateResourceID()
	})
}

// ClearResourceID clears the value of the "resource_id" field.
func (u *CalendarWatchChannelUpsertBulk) ClearResourceID() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.ClearResourceID()
	})
}

// SetProviderCalendarID sets the "provider_calendar_id" field.
func (u *CalendarWatchChannelUpsertBulk) SetProviderCalendarID(v string) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetProviderCalendarID(v)
	})
}

// UpdateProviderCalendarID sets the "provider_calendar_id" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateProviderCalendarID() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateProviderCalendarID()
	})
}

// SetSyncToken sets the "sync_token" field.
func (u *CalendarWatchChannelUpsertBulk) SetSyncToken(v string) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetSyncToken(v)
	})
}

// UpdateSyncToken sets the "sync_token" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateSyncToken() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateSyncToken()
	})
}

// ClearSyncToken clears the value of the "sync_token" field.
func (u *CalendarWatchChannelUpsertBulk) ClearSyncToken() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.ClearSyncToken()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CalendarWatchChannelUpsertBulk) SetExpiresAt(v time.Time) *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CalendarWatchChannelUpsertBulk) UpdateExpiresAt() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *CalendarWatchChannelUpsertBulk) ClearExpiresAt() *CalendarWatchChannelUpsertBulk {
	return u.Update(func(s *CalendarWatchChannelUpsert) {
		s.ClearExpiresAt()
	})
}

// Exec executes the query.
func (u *CalendarWatchChannelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CalendarWatchChannelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CalendarWatchChannelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarWatchChannelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

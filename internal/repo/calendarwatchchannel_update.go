// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// CalendarWatchChannelUpdate is the builder for updating CalendarWatchChannel entities.
type CalendarWatchChannelUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarWatchChannelMutation
}

// Where appends a list predicates to the CalendarWatchChannelUpdate builder.
func (_u *CalendarWatchChannelUpdate) Where(ps ...predicate.CalendarWatchChannel) *CalendarWatchChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarWatchChannelUpdate) SetUpdatedAt(v time.Time) *CalendarWatchChannelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *CalendarWatchChannelUpdate) SetPracticeID(v uuid.UUID) *CalendarWatchChannelUpdate {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillablePracticeID(v *uuid.UUID) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *CalendarWatchChannelUpdate) SetStaffID(v uuid.UUID) *CalendarWatchChannelUpdate {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillableStaffID(v *uuid.UUID) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CalendarWatchChannelUpdate) SetProvider(v calendarwatchchannel.Provider) *CalendarWatchChannelUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillableProvider(v *calendarwatchchannel.Provider) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *CalendarWatchChannelUpdate) SetChannelID(v string) *CalendarWatchChannelUpdate {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillableChannelID(v *string) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *CalendarWatchChannelUpdate) SetResourceID(v string) *CalendarWatchChannelUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillableResourceID(v *string) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *CalendarWatchChannelUpdate) ClearResourceID() *CalendarWatchChannelUpdate {
	_u.mutation.ClearResourceID()
	return _u
}

// SetProviderCalendarID sets the "provider_calendar_id" field.
func (_u *CalendarWatchChannelUpdate) SetProviderCalendarID(v string) *CalendarWatchChannelUpdate {
	_u.mutation.SetProviderCalendarID(v)
	return _u
}

// SetNillableProviderCalendarID sets the "provider_calendar_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillableProviderCalendarID(v *string) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetProviderCalendarID(*v)
	}
	return _u
}

// SetSyncToken sets the "sync_token" field.
func (_u *CalendarWatchChannelUpdate) SetSyncToken(v string) *CalendarWatchChannelUpdate {
	_u.mutation.SetSyncToken(v)
	return _u
}

// SetNillableSyncToken sets the "sync_token" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillableSyncToken(v *string) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetSyncToken(*v)
	}
	return _u
}

// ClearSyncToken clears the value of the "sync_token" field.
func (_u *CalendarWatchChannelUpdate) ClearSyncToken() *CalendarWatchChannelUpdate {
	_u.mutation.ClearSyncToken()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CalendarWatchChannelUpdate) SetExpiresAt(v time.Time) *CalendarWatchChannelUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdate) SetNillableExpiresAt(v *time.Time) *CalendarWatchChannelUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *CalendarWatchChannelUpdate) ClearExpiresAt() *CalendarWatchChannelUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the CalendarWatchChannelMutation object of the builder.
func (_u *CalendarWatchChannelUpdate) Mutation() *CalendarWatchChannelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarWatchChannelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarWatchChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarWatchChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarWatchChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarWatchChannelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarwatchchannel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarWatchChannelUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := calendarwatchchannel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChannelID(); ok {
		if err := calendarwatchchannel.ChannelIDValidator(v); err != nil {
			return &ValidationError{Name: "channel_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.channel_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceID(); ok {
		if err := calendarwatchchannel.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.resource_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderCalendarID(); ok {
		if err := calendarwatchchannel.ProviderCalendarIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_calendar_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.provider_calendar_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarWatchChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarwatchchannel.Table, calendarwatchchannel.Columns, sqlgraph.NewFieldSpec(calendarwatchchannel.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarwatchchannel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(calendarwatchchannel.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(calendarwatchchannel.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(calendarwatchchannel.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(calendarwatchchannel.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(calendarwatchchannel.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(calendarwatchchannel.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderCalendarID(); ok {
		_spec.SetField(calendarwatchchannel.FieldProviderCalendarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyncToken(); ok {
		_spec.SetField(calendarwatchchannel.FieldSyncToken, field.TypeString, value)
	}
	if _u.mutation.SyncTokenCleared() {
		_spec.ClearField(calendarwatchchannel.FieldSyncToken, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(calendarwatchchannel.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(calendarwatchchannel.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarwatchchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarWatchChannelUpdateOne is the builder for updating a single CalendarWatchChannel entity.
type CalendarWatchChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarWatchChannelMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarWatchChannelUpdateOne) SetUpdatedAt(v time.Time) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *CalendarWatchChannelUpdateOne) SetPracticeID(v uuid.UUID) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillablePracticeID(v *uuid.UUID) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *CalendarWatchChannelUpdateOne) SetStaffID(v uuid.UUID) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillableStaffID(v *uuid.UUID) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CalendarWatchChannelUpdateOne) SetProvider(v calendarwatchchannel.Provider) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillableProvider(v *calendarwatchchannel.Provider) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *CalendarWatchChannelUpdateOne) SetChannelID(v string) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillableChannelID(v *string) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *CalendarWatchChannelUpdateOne) SetResourceID(v string) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillableResourceID(v *string) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *CalendarWatchChannelUpdateOne) ClearResourceID() *CalendarWatchChannelUpdateOne {
	_u.mutation.ClearResourceID()
	return _u
}

// SetProviderCalendarID sets the "provider_calendar_id" field.
func (_u *CalendarWatchChannelUpdateOne) SetProviderCalendarID(v string) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetProviderCalendarID(v)
	return _u
}

// SetNillableProviderCalendarID sets the "provider_calendar_id" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillableProviderCalendarID(v *string) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetProviderCalendarID(*v)
	}
	return _u
}

// SetSyncToken sets the "sync_token" field.
func (_u *CalendarWatchChannelUpdateOne) SetSyncToken(v string) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetSyncToken(v)
	return _u
}

// SetNillableSyncToken sets the "sync_token" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillableSyncToken(v *string) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetSyncToken(*v)
	}
	return _u
}

// ClearSyncToken clears the value of the "sync_token" field.
func (_u *CalendarWatchChannelUpdateOne) ClearSyncToken() *CalendarWatchChannelUpdateOne {
	_u.mutation.ClearSyncToken()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CalendarWatchChannelUpdateOne) SetExpiresAt(v time.Time) *CalendarWatchChannelUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CalendarWatchChannelUpdateOne) SetNillableExpiresAt(v *time.Time) *CalendarWatchChannelUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *CalendarWatchChannelUpdateOne) ClearExpiresAt() *CalendarWatchChannelUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the CalendarWatchChannelMutation object of the builder.
func (_u *CalendarWatchChannelUpdateOne) Mutation() *CalendarWatchChannelMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarWatchChannelUpdate builder.
func (_u *CalendarWatchChannelUpdateOne) Where(ps ...predicate.CalendarWatchChannel) *CalendarWatchChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarWatchChannelUpdateOne) Select(field string, fields ...string) *CalendarWatchChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarWatchChannel entity.
func (_u *CalendarWatchChannelUpdateOne) Save(ctx context.Context) (*CalendarWatchChannel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarWatchChannelUpdateOne) SaveX(ctx context.Context) *CalendarWatchChannel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarWatchChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarWatchChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarWatchChannelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarwatchchannel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarWatchChannelUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := calendarwatchchannel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChannelID(); ok {
		if err := calendarwatchchannel.ChannelIDValidator(v); err != nil {
			return &ValidationError{Name: "channel_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.channel_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceID(); ok {
		if err := calendarwatchchannel.ResourceIDValidator(v); err != nil {
			return &ValidationError{Name: "resource_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.resource_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderCalendarID(); ok {
		if err := calendarwatchchannel.ProviderCalendarIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_calendar_id", err: fmt.Errorf(`repo: validator failed for field "CalendarWatchChannel.provider_calendar_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarWatchChannelUpdateOne) sqlSave(ctx context.Context) (_node *CalendarWatchChannel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarwatchchannel.Table, calendarwatchchannel.Columns, sqlgraph.NewFieldSpec(calendarwatchchannel.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CalendarWatchChannel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarwatchchannel.FieldID)
		for _, f := range fields {
			if !calendarwatchchannel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != calendarwatchchannel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarwatchchannel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(calendarwatchchannel.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(calendarwatchchannel.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(calendarwatchchannel.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(calendarwatchchannel.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(calendarwatchchannel.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(calendarwatchchannel.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderCalendarID(); ok {
		_spec.SetField(calendarwatchchannel.FieldProviderCalendarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyncToken(); ok {
		_spec.SetField(calendarwatchchannel.FieldSyncToken, field.TypeString, value)
	}
	if _u.mutation.SyncTokenCleared() {
		_spec.ClearField(calendarwatchchannel.FieldSyncToken, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(calendarwatchchannel.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(calendarwatchchannel.FieldExpiresAt, field.TypeTime)
	}
	_node = &CalendarWatchChannel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarwatchchannel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// CalendarConnectionUpdate is the builder for updating CalendarConnection entities.
type CalendarConnectionUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarConnectionMutation
}

// Where appends a list predicates to the CalendarConnectionUpdate builder.
func (_u *CalendarConnectionUpdate) Where(ps ...predicate.CalendarConnection) *CalendarConnectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarConnectionUpdate) SetUpdatedAt(v time.Time) *CalendarConnectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *CalendarConnectionUpdate) SetPracticeID(v uuid.UUID) *CalendarConnectionUpdate {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *CalendarConnectionUpdate) SetNillablePracticeID(v *uuid.UUID) *CalendarConnectionUpdate {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *CalendarConnectionUpdate) SetStaffID(v uuid.UUID) *CalendarConnectionUpdate {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *CalendarConnectionUpdate) SetNillableStaffID(v *uuid.UUID) *CalendarConnectionUpdate {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CalendarConnectionUpdate) SetProvider(v calendarconnection.Provider) *CalendarConnectionUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CalendarConnectionUpdate) SetNillableProvider(v *calendarconnection.Provider) *CalendarConnectionUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccountEmail sets the "account_email" field.
func (_u *CalendarConnectionUpdate) SetAccountEmail(v string) *CalendarConnectionUpdate {
	_u.mutation.SetAccountEmail(v)
	return _u
}

// SetNillableAccountEmail sets the "account_email" field if the given value is not nil.
func (_u *CalendarConnectionUpdate) SetNillableAccountEmail(v *string) *CalendarConnectionUpdate {
	if v != nil {
		_u.SetAccountEmail(*v)
	}
	return _u
}

// SetRefreshTokenEnc sets the "refresh_token_enc" field.
func (_u *CalendarConnectionUpdate) SetRefreshTokenEnc(v string) *CalendarConnectionUpdate {
	_u.mutation.SetRefreshTokenEnc(v)
	return _u
}

// SetNillableRefreshTokenEnc sets the "refresh_token_enc" field if the given value is not nil.
func (_u *CalendarConnectionUpdate) SetNillableRefreshTokenEnc(v *string) *CalendarConnectionUpdate {
	if v != nil {
		_u.SetRefreshTokenEnc(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CalendarConnectionUpdate) SetStatus(v calendarconnection.Status) *CalendarConnectionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalendarConnectionUpdate) SetNillableStatus(v *calendarconnection.Status) *CalendarConnectionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CalendarConnectionUpdate) SetIsActive(v bool) *CalendarConnectionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CalendarConnectionUpdate) SetNillableIsActive(v *bool) *CalendarConnectionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the CalendarConnectionMutation object of the builder.
func (_u *CalendarConnectionUpdate) Mutation() *CalendarConnectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarConnectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarConnectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarConnectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarConnectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarConnectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarConnectionUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := calendarconnection.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountEmail(); ok {
		if err := calendarconnection.AccountEmailValidator(v); err != nil {
			return &ValidationError{Name: "account_email", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.account_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := calendarconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarConnectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarconnection.Table, calendarconnection.Columns, sqlgraph.NewFieldSpec(calendarconnection.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(calendarconnection.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(calendarconnection.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(calendarconnection.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccountEmail(); ok {
		_spec.SetField(calendarconnection.FieldAccountEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshTokenEnc(); ok {
		_spec.SetField(calendarconnection.FieldRefreshTokenEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calendarconnection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(calendarconnection.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarConnectionUpdateOne is the builder for updating a single CalendarConnection entity.
type CalendarConnectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarConnectionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarConnectionUpdateOne) SetUpdatedAt(v time.Time) *CalendarConnectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *CalendarConnectionUpdateOne) SetPracticeID(v uuid.UUID) *CalendarConnectionUpdateOne {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *CalendarConnectionUpdateOne) SetNillablePracticeID(v *uuid.UUID) *CalendarConnectionUpdateOne {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *CalendarConnectionUpdateOne) SetStaffID(v uuid.UUID) *CalendarConnectionUpdateOne {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *CalendarConnectionUpdateOne) SetNillableStaffID(v *uuid.UUID) *CalendarConnectionUpdateOne {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CalendarConnectionUpdateOne) SetProvider(v calendarconnection.Provider) *CalendarConnectionUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CalendarConnectionUpdateOne) SetNillableProvider(v *calendarconnection.Provider) *CalendarConnectionUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccountEmail sets the "account_email" field.
func (_u *CalendarConnectionUpdateOne) SetAccountEmail(v string) *CalendarConnectionUpdateOne {
	_u.mutation.SetAccountEmail(v)
	return _u
}

// SetNillableAccountEmail sets the "account_email" field if the given value is not nil.
func (_u *CalendarConnectionUpdateOne) SetNillableAccountEmail(v *string) *CalendarConnectionUpdateOne {
	if v != nil {
		_u.SetAccountEmail(*v)
	}
	return _u
}

// SetRefreshTokenEnc sets the "refresh_token_enc" field.
func (_u *CalendarConnectionUpdateOne) SetRefreshTokenEnc(v string) *CalendarConnectionUpdateOne {
	_u.mutation.SetRefreshTokenEnc(v)
	return _u
}

// SetNillableRefreshTokenEnc sets the "refresh_token_enc" field if the given value is not nil.
func (_u *CalendarConnectionUpdateOne) SetNillableRefreshTokenEnc(v *string) *CalendarConnectionUpdateOne {
	if v != nil {
		_u.SetRefreshTokenEnc(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CalendarConnectionUpdateOne) SetStatus(v calendarconnection.Status) *CalendarConnectionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalendarConnectionUpdateOne) SetNillableStatus(v *calendarconnection.Status) *CalendarConnectionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CalendarConnectionUpdateOne) SetIsActive(v bool) *CalendarConnectionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CalendarConnectionUpdateOne) SetNillableIsActive(v *bool) *CalendarConnectionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the CalendarConnectionMutation object of the builder.
func (_u *CalendarConnectionUpdateOne) Mutation() *CalendarConnectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarConnectionUpdate builder.
func (_u *CalendarConnectionUpdateOne) Where(ps ...predicate.CalendarConnection) *CalendarConnectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarConnectionUpdateOne) Select(field string, fields ...string) *CalendarConnectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarConnection entity.
func (_u *CalendarConnectionUpdateOne) Save(ctx context.Context) (*CalendarConnection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarConnectionUpdateOne) SaveX(ctx context.Context) *CalendarConnection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarConnectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarConnectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarConnectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarConnectionUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := calendarconnection.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountEmail(); ok {
		if err := calendarconnection.AccountEmailValidator(v); err != nil {
			return &ValidationError{Name: "account_email", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.account_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := calendarconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarConnectionUpdateOne) sqlSave(ctx context.Context) (_node *CalendarConnection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarconnection.Table, calendarconnection.Columns, sqlgraph.NewFieldSpec(calendarconnection.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CalendarConnection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarconnection.FieldID)
		for _, f := range fields {
			if !calendarconnection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != calendarconnection.FieldID {
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
		_spec.SetField(calendarconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(calendarconnection.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(calendarconnection.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(calendarconnection.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccountEmail(); ok {
		_spec.SetField(calendarconnection.FieldAccountEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshTokenEnc(); ok {
		_spec.SetField(calendarconnection.FieldRefreshTokenEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calendarconnection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(calendarconnection.FieldIsActive, field.TypeBool, value)
	}
	_node = &CalendarConnection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

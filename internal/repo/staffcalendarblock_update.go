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
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
)

// StaffCalendarBlockUpdate is the builder for updating StaffCalendarBlock entities.
type StaffCalendarBlockUpdate struct {
	config
	hooks    []Hook
	mutation *StaffCalendarBlockMutation
}

// Where appends a list predicates to the StaffCalendarBlockUpdate builder.
func (_u *StaffCalendarBlockUpdate) Where(ps ...predicate.StaffCalendarBlock) *StaffCalendarBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaffCalendarBlockUpdate) SetUpdatedAt(v time.Time) *StaffCalendarBlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *StaffCalendarBlockUpdate) SetPracticeID(v uuid.UUID) *StaffCalendarBlockUpdate {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdate) SetNillablePracticeID(v *uuid.UUID) *StaffCalendarBlockUpdate {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *StaffCalendarBlockUpdate) SetStaffID(v uuid.UUID) *StaffCalendarBlockUpdate {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdate) SetNillableStaffID(v *uuid.UUID) *StaffCalendarBlockUpdate {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StaffCalendarBlockUpdate) SetSource(v staffcalendarblock.Source) *StaffCalendarBlockUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdate) SetNillableSource(v *staffcalendarblock.Source) *StaffCalendarBlockUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalEventID sets the "external_event_id" field.
func (_u *StaffCalendarBlockUpdate) SetExternalEventID(v string) *StaffCalendarBlockUpdate {
	_u.mutation.SetExternalEventID(v)
	return _u
}

// SetNillableExternalEventID sets the "external_event_id" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdate) SetNillableExternalEventID(v *string) *StaffCalendarBlockUpdate {
	if v != nil {
		_u.SetExternalEventID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *StaffCalendarBlockUpdate) SetStartTime(v time.Time) *StaffCalendarBlockUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdate) SetNillableStartTime(v *time.Time) *StaffCalendarBlockUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *StaffCalendarBlockUpdate) SetEndTime(v time.Time) *StaffCalendarBlockUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdate) SetNillableEndTime(v *time.Time) *StaffCalendarBlockUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *StaffCalendarBlockUpdate) SetLabel(v string) *StaffCalendarBlockUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdate) SetNillableLabel(v *string) *StaffCalendarBlockUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// Mutation returns the StaffCalendarBlockMutation object of the builder.
func (_u *StaffCalendarBlockUpdate) Mutation() *StaffCalendarBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StaffCalendarBlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffCalendarBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StaffCalendarBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffCalendarBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaffCalendarBlockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staffcalendarblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StaffCalendarBlockUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := staffcalendarblock.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalEventID(); ok {
		if err := staffcalendarblock.ExternalEventIDValidator(v); err != nil {
			return &ValidationError{Name: "external_event_id", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.external_event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := staffcalendarblock.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.label": %w`, err)}
		}
	}
	return nil
}

func (_u *StaffCalendarBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staffcalendarblock.Table, staffcalendarblock.Columns, sqlgraph.NewFieldSpec(staffcalendarblock.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staffcalendarblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(staffcalendarblock.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(staffcalendarblock.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(staffcalendarblock.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalEventID(); ok {
		_spec.SetField(staffcalendarblock.FieldExternalEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(staffcalendarblock.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(staffcalendarblock.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(staffcalendarblock.FieldLabel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffcalendarblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StaffCalendarBlockUpdateOne is the builder for updating a single StaffCalendarBlock entity.
type StaffCalendarBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaffCalendarBlockMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaffCalendarBlockUpdateOne) SetUpdatedAt(v time.Time) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *StaffCalendarBlockUpdateOne) SetPracticeID(v uuid.UUID) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdateOne) SetNillablePracticeID(v *uuid.UUID) *StaffCalendarBlockUpdateOne {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *StaffCalendarBlockUpdateOne) SetStaffID(v uuid.UUID) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdateOne) SetNillableStaffID(v *uuid.UUID) *StaffCalendarBlockUpdateOne {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StaffCalendarBlockUpdateOne) SetSource(v staffcalendarblock.Source) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdateOne) SetNillableSource(v *staffcalendarblock.Source) *StaffCalendarBlockUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalEventID sets the "external_event_id" field.
func (_u *StaffCalendarBlockUpdateOne) SetExternalEventID(v string) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetExternalEventID(v)
	return _u
}

// SetNillableExternalEventID sets the "external_event_id" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdateOne) SetNillableExternalEventID(v *string) *StaffCalendarBlockUpdateOne {
	if v != nil {
		_u.SetExternalEventID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *StaffCalendarBlockUpdateOne) SetStartTime(v time.Time) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdateOne) SetNillableStartTime(v *time.Time) *StaffCalendarBlockUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *StaffCalendarBlockUpdateOne) SetEndTime(v time.Time) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdateOne) SetNillableEndTime(v *time.Time) *StaffCalendarBlockUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *StaffCalendarBlockUpdateOne) SetLabel(v string) *StaffCalendarBlockUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *StaffCalendarBlockUpdateOne) SetNillableLabel(v *string) *StaffCalendarBlockUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// Mutation returns the StaffCalendarBlockMutation object of the builder.
func (_u *StaffCalendarBlockUpdateOne) Mutation() *StaffCalendarBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the StaffCalendarBlockUpdate builder.
func (_u *StaffCalendarBlockUpdateOne) Where(ps ...predicate.StaffCalendarBlock) *StaffCalendarBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StaffCalendarBlockUpdateOne) Select(field string, fields ...string) *StaffCalendarBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StaffCalendarBlock entity.
func (_u *StaffCalendarBlockUpdateOne) Save(ctx context.Context) (*StaffCalendarBlock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffCalendarBlockUpdateOne) SaveX(ctx context.Context) *StaffCalendarBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StaffCalendarBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffCalendarBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaffCalendarBlockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staffcalendarblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StaffCalendarBlockUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := staffcalendarblock.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalEventID(); ok {
		if err := staffcalendarblock.ExternalEventIDValidator(v); err != nil {
			return &ValidationError{Name: "external_event_id", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.external_event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := staffcalendarblock.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.label": %w`, err)}
		}
	}
	return nil
}

func (_u *StaffCalendarBlockUpdateOne) sqlSave(ctx context.Context) (_node *StaffCalendarBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staffcalendarblock.Table, staffcalendarblock.Columns, sqlgraph.NewFieldSpec(staffcalendarblock.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StaffCalendarBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staffcalendarblock.FieldID)
		for _, f := range fields {
			if !staffcalendarblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != staffcalendarblock.FieldID {
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
		_spec.SetField(staffcalendarblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(staffcalendarblock.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(staffcalendarblock.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(staffcalendarblock.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalEventID(); ok {
		_spec.SetField(staffcalendarblock.FieldExternalEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(staffcalendarblock.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(staffcalendarblock.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(staffcalendarblock.FieldLabel, field.TypeString, value)
	}
	_node = &StaffCalendarBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffcalendarblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

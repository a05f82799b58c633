// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
)

// StaffCalendarBlockDelete is the builder for deleting a StaffCalendarBlock entity.
type StaffCalendarBlockDelete struct {
	config
	hooks    []Hook
	mutation *StaffCalendarBlockMutation
}

// Where appends a list predicates to the StaffCalendarBlockDelete builder.
func (_d *StaffCalendarBlockDelete) Where(ps ...predicate.StaffCalendarBlock) *StaffCalendarBlockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StaffCalendarBlockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StaffCalendarBlockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StaffCalendarBlockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(staffcalendarblock.Table, sqlgraph.NewFieldSpec(staffcalendarblock.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// StaffCalendarBlockDeleteOne is the builder for deleting a single StaffCalendarBlock entity.
type StaffCalendarBlockDeleteOne struct {
	_d *StaffCalendarBlockDelete
}

// Where appends a list predicates to the StaffCalendarBlockDelete builder.
func (_d *StaffCalendarBlockDeleteOne) Where(ps ...predicate.StaffCalendarBlock) *StaffCalendarBlockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StaffCalendarBlockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{staffcalendarblock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StaffCalendarBlockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// CalendarConnectionDelete is the builder for deleting a CalendarConnection entity.
type CalendarConnectionDelete struct {
	config
	hooks    []Hook
	mutation *CalendarConnectionMutation
}

// Where appends a list predicates to the CalendarConnectionDelete builder.
func (_d *CalendarConnectionDelete) Where(ps ...predicate.CalendarConnection) *CalendarConnectionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CalendarConnectionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarConnectionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CalendarConnectionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calendarconnection.Table, sqlgraph.NewFieldSpec(calendarconnection.FieldID, field.TypeUUID))
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

// CalendarConnectionDeleteOne is the builder for deleting a single CalendarConnection entity.
type CalendarConnectionDeleteOne struct {
	_d *CalendarConnectionDelete
}

// Where appends a list predicates to the CalendarConnectionDelete builder.
func (_d *CalendarConnectionDeleteOne) Where(ps ...predicate.CalendarConnection) *CalendarConnectionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CalendarConnectionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calendarconnection.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarConnectionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

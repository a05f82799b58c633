// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// AppointmentSeriesDelete is the builder for deleting a AppointmentSeries entity.
type AppointmentSeriesDelete struct {
	config
	hooks    []Hook
	mutation *AppointmentSeriesMutation
}

// Where appends a list predicates to the AppointmentSeriesDelete builder.
func (_d *AppointmentSeriesDelete) Where(ps ...predicate.AppointmentSeries) *AppointmentSeriesDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AppointmentSeriesDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentSeriesDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AppointmentSeriesDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(appointmentseries.Table, sqlgraph.NewFieldSpec(appointmentseries.FieldID, field.TypeUUID))
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

// AppointmentSeriesDeleteOne is the builder for deleting a single AppointmentSeries entity.
type AppointmentSeriesDeleteOne struct {
	_d *AppointmentSeriesDelete
}

// Where appends a list predicates to the AppointmentSeriesDelete builder.
func (_d *AppointmentSeriesDeleteOne) Where(ps ...predicate.AppointmentSeries) *AppointmentSeriesDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AppointmentSeriesDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{appointmentseries.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentSeriesDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarwatchchannel"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// CalendarWatchChannelDelete is the builder for deleting a CalendarWatchChannel entity.
type CalendarWatchChannelDelete struct {
	config
	hooks    []Hook
	mutation *CalendarWatchChannelMutation
}

// Where appends a list predicates to the CalendarWatchChannelDelete builder.
func (_d *CalendarWatchChannelDelete) Where(ps ...predicate.CalendarWatchChannel) *CalendarWatchChannelDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CalendarWatchChannelDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarWatchChannelDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CalendarWatchChannelDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calendarwatchchannel.Table, sqlgraph.NewFieldSpec(calendarwatchchannel.FieldID, field.TypeUUID))
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

// CalendarWatchChannelDeleteOne is the builder for deleting a single CalendarWatchChannel entity.
type CalendarWatchChannelDeleteOne struct {
	_d *CalendarWatchChannelDelete
}

// Where appends a list predicates to the CalendarWatchChannelDelete builder.
func (_d *CalendarWatchChannelDeleteOne) Where(ps ...predicate.CalendarWatchChannel) *CalendarWatchChannelDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CalendarWatchChannelDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calendarwatchchannel.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarWatchChannelDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

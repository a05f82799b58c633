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
	"github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// AppointmentSeriesUpdate is the builder for updating AppointmentSeries entities.
type AppointmentSeriesUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentSeriesMutation
}

// Where appends a list predicates to the AppointmentSeriesUpdate builder.
func (_u *AppointmentSeriesUpdate) Where(ps ...predicate.AppointmentSeries) *AppointmentSeriesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentSeriesUpdate) SetUpdatedAt(v time.Time) *AppointmentSeriesUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *AppointmentSeriesUpdate) SetPracticeID(v uuid.UUID) *AppointmentSeriesUpdate {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillablePracticeID(v *uuid.UUID) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *AppointmentSeriesUpdate) SetStaffID(v uuid.UUID) *AppointmentSeriesUpdate {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableStaffID(v *uuid.UUID) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *AppointmentSeriesUpdate) SetClientID(v uuid.UUID) *AppointmentSeriesUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableClientID(v *uuid.UUID) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AppointmentSeriesUpdate) SetTitle(v string) *AppointmentSeriesUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableTitle(v *string) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRrule sets the "rrule" field.
func (_u *AppointmentSeriesUpdate) SetRrule(v string) *AppointmentSeriesUpdate {
	_u.mutation.SetRrule(v)
	return _u
}

// SetNillableRrule sets the "rrule" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableRrule(v *string) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetRrule(*v)
	}
	return _u
}

// SetSeriesStartDate sets the "series_start_date" field.
func (_u *AppointmentSeriesUpdate) SetSeriesStartDate(v time.Time) *AppointmentSeriesUpdate {
	_u.mutation.SetSeriesStartDate(v)
	return _u
}

// SetNillableSeriesStartDate sets the "series_start_date" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableSeriesStartDate(v *time.Time) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetSeriesStartDate(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *AppointmentSeriesUpdate) SetStartHour(v int8) *AppointmentSeriesUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableStartHour(v *int8) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *AppointmentSeriesUpdate) AddStartHour(v int8) *AppointmentSeriesUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AppointmentSeriesUpdate) SetStartMinute(v int8) *AppointmentSeriesUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableStartMinute(v *int8) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AppointmentSeriesUpdate) AddStartMinute(v int8) *AppointmentSeriesUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentSeriesUpdate) SetDurationMinutes(v int) *AppointmentSeriesUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableDurationMinutes(v *int) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentSeriesUpdate) AddDurationMinutes(v int) *AppointmentSeriesUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AppointmentSeriesUpdate) SetTimezone(v string) *AppointmentSeriesUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableTimezone(v *string) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetUntilDate sets the "until_date" field.
func (_u *AppointmentSeriesUpdate) SetUntilDate(v time.Time) *AppointmentSeriesUpdate {
	_u.mutation.SetUntilDate(v)
	return _u
}

// SetNillableUntilDate sets the "until_date" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableUntilDate(v *time.Time) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetUntilDate(*v)
	}
	return _u
}

// ClearUntilDate clears the value of the "until_date" field.
func (_u *AppointmentSeriesUpdate) ClearUntilDate() *AppointmentSeriesUpdate {
	_u.mutation.ClearUntilDate()
	return _u
}

// SetGenerationCapDays sets the "generation_cap_days" field.
func (_u *AppointmentSeriesUpdate) SetGenerationCapDays(v int) *AppointmentSeriesUpdate {
	_u.mutation.ResetGenerationCapDays()
	_u.mutation.SetGenerationCapDays(v)
	return _u
}

// SetNillableGenerationCapDays sets the "generation_cap_days" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableGenerationCapDays(v *int) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetGenerationCapDays(*v)
	}
	return _u
}

// AddGenerationCapDays adds value to the "generation_cap_days" field.
func (_u *AppointmentSeriesUpdate) AddGenerationCapDays(v int) *AppointmentSeriesUpdate {
	_u.mutation.AddGenerationCapDays(v)
	return _u
}

// ClearGenerationCapDays clears the value of the "generation_cap_days" field.
func (_u *AppointmentSeriesUpdate) ClearGenerationCapDays() *AppointmentSeriesUpdate {
	_u.mutation.ClearGenerationCapDays()
	return _u
}

// SetLastGeneratedUntil sets the "last_generated_until" field.
func (_u *AppointmentSeriesUpdate) SetLastGeneratedUntil(v time.Time) *AppointmentSeriesUpdate {
	_u.mutation.SetLastGeneratedUntil(v)
	return _u
}

// SetNillableLastGeneratedUntil sets the "last_generated_until" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableLastGeneratedUntil(v *time.Time) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetLastGeneratedUntil(*v)
	}
	return _u
}

// ClearLastGeneratedUntil clears the value of the "last_generated_until" field.
func (_u *AppointmentSeriesUpdate) ClearLastGeneratedUntil() *AppointmentSeriesUpdate {
	_u.mutation.ClearLastGeneratedUntil()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *AppointmentSeriesUpdate) SetCostEstimate(v int64) *AppointmentSeriesUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableCostEstimate(v *int64) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *AppointmentSeriesUpdate) AddCostEstimate(v int64) *AppointmentSeriesUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (_u *AppointmentSeriesUpdate) ClearCostEstimate() *AppointmentSeriesUpdate {
	_u.mutation.ClearCostEstimate()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppointmentSeriesUpdate) SetIsActive(v bool) *AppointmentSeriesUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppointmentSeriesUpdate) SetNillableIsActive(v *bool) *AppointmentSeriesUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AppointmentSeriesMutation object of the builder.
func (_u *AppointmentSeriesUpdate) Mutation() *AppointmentSeriesMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentSeriesUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentSeriesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentSeriesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentSeriesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentSeriesUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentseries.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentSeriesUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := appointmentseries.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rrule(); ok {
		if err := appointmentseries.RruleValidator(v); err != nil {
			return &ValidationError{Name: "rrule", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.rrule": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := appointmentseries.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.timezone": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentSeriesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentseries.Table, appointmentseries.Columns, sqlgraph.NewFieldSpec(appointmentseries.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentseries.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(appointmentseries.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(appointmentseries.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(appointmentseries.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(appointmentseries.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rrule(); ok {
		_spec.SetField(appointmentseries.FieldRrule, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeriesStartDate(); ok {
		_spec.SetField(appointmentseries.FieldSeriesStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(appointmentseries.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(appointmentseries.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(appointmentseries.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(appointmentseries.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmentseries.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointmentseries.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(appointmentseries.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.UntilDate(); ok {
		_spec.SetField(appointmentseries.FieldUntilDate, field.TypeTime, value)
	}
	if _u.mutation.UntilDateCleared() {
		_spec.ClearField(appointmentseries.FieldUntilDate, field.TypeTime)
	}
	if value, ok := _u.mutation.GenerationCapDays(); ok {
		_spec.SetField(appointmentseries.FieldGenerationCapDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationCapDays(); ok {
		_spec.AddField(appointmentseries.FieldGenerationCapDays, field.TypeInt, value)
	}
	if _u.mutation.GenerationCapDaysCleared() {
		_spec.ClearField(appointmentseries.FieldGenerationCapDays, field.TypeInt)
	}
	if value, ok := _u.mutation.LastGeneratedUntil(); ok {
		_spec.SetField(appointmentseries.FieldLastGeneratedUntil, field.TypeTime, value)
	}
	if _u.mutation.LastGeneratedUntilCleared() {
		_spec.ClearField(appointmentseries.FieldLastGeneratedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(appointmentseries.FieldCostEstimate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(appointmentseries.FieldCostEstimate, field.TypeInt64, value)
	}
	if _u.mutation.CostEstimateCleared() {
		_spec.ClearField(appointmentseries.FieldCostEstimate, field.TypeInt64)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(appointmentseries.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentseries.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentSeriesUpdateOne is the builder for updating a single AppointmentSeries entity.
type AppointmentSeriesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentSeriesMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentSeriesUpdateOne) SetUpdatedAt(v time.Time) *AppointmentSeriesUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *AppointmentSeriesUpdateOne) SetPracticeID(v uuid.UUID) *AppointmentSeriesUpdateOne {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillablePracticeID(v *uuid.UUID) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetStaffID sets the "staff_id" field.
func (_u *AppointmentSeriesUpdateOne) SetStaffID(v uuid.UUID) *AppointmentSeriesUpdateOne {
	_u.mutation.SetStaffID(v)
	return _u
}

// SetNillableStaffID sets the "staff_id" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableStaffID(v *uuid.UUID) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetStaffID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *AppointmentSeriesUpdateOne) SetClientID(v uuid.UUID) *AppointmentSeriesUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableClientID(v *uuid.UUID) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AppointmentSeriesUpdateOne) SetTitle(v string) *AppointmentSeriesUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableTitle(v *string) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRrule sets the "rrule" field.
func (_u *AppointmentSeriesUpdateOne) SetRrule(v string) *AppointmentSeriesUpdateOne {
	_u.mutation.SetRrule(v)
	return _u
}

// SetNillableRrule sets the "rrule" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableRrule(v *string) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetRrule(*v)
	}
	return _u
}

// SetSeriesStartDate sets the "series_start_date" field.
func (_u *AppointmentSeriesUpdateOne) SetSeriesStartDate(v time.Time) *AppointmentSeriesUpdateOne {
	_u.mutation.SetSeriesStartDate(v)
	return _u
}

// SetNillableSeriesStartDate sets the "series_start_date" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableSeriesStartDate(v *time.Time) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetSeriesStartDate(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *AppointmentSeriesUpdateOne) SetStartHour(v int8) *AppointmentSeriesUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableStartHour(v *int8) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *AppointmentSeriesUpdateOne) AddStartHour(v int8) *AppointmentSeriesUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AppointmentSeriesUpdateOne) SetStartMinute(v int8) *AppointmentSeriesUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableStartMinute(v *int8) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AppointmentSeriesUpdateOne) AddStartMinute(v int8) *AppointmentSeriesUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentSeriesUpdateOne) SetDurationMinutes(v int) *AppointmentSeriesUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableDurationMinutes(v *int) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentSeriesUpdateOne) AddDurationMinutes(v int) *AppointmentSeriesUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *AppointmentSeriesUpdateOne) SetTimezone(v string) *AppointmentSeriesUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableTimezone(v *string) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetUntilDate sets the "until_date" field.
func (_u *AppointmentSeriesUpdateOne) SetUntilDate(v time.Time) *AppointmentSeriesUpdateOne {
	_u.mutation.SetUntilDate(v)
	return _u
}

// SetNillableUntilDate sets the "until_date" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableUntilDate(v *time.Time) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetUntilDate(*v)
	}
	return _u
}

// ClearUntilDate clears the value of the "until_date" field.
func (_u *AppointmentSeriesUpdateOne) ClearUntilDate() *AppointmentSeriesUpdateOne {
	_u.mutation.ClearUntilDate()
	return _u
}

// SetGenerationCapDays sets the "generation_cap_days" field.
func (_u *AppointmentSeriesUpdateOne) SetGenerationCapDays(v int) *AppointmentSeriesUpdateOne {
	_u.mutation.ResetGenerationCapDays()
	_u.mutation.SetGenerationCapDays(v)
	return _u
}

// SetNillableGenerationCapDays sets the "generation_cap_days" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableGenerationCapDays(v *int) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetGenerationCapDays(*v)
	}
	return _u
}

// AddGenerationCapDays adds value to the "generation_cap_days" field.
func (_u *AppointmentSeriesUpdateOne) AddGenerationCapDays(v int) *AppointmentSeriesUpdateOne {
	_u.mutation.AddGenerationCapDays(v)
	return _u
}

// ClearGenerationCapDays clears the value of the "generation_cap_days" field.
func (_u *AppointmentSeriesUpdateOne) ClearGenerationCapDays() *AppointmentSeriesUpdateOne {
	_u.mutation.ClearGenerationCapDays()
	return _u
}

// SetLastGeneratedUntil sets the "last_generated_until" field.
func (_u *AppointmentSeriesUpdateOne) SetLastGeneratedUntil(v time.Time) *AppointmentSeriesUpdateOne {
	_u.mutation.SetLastGeneratedUntil(v)
	return _u
}

// SetNillableLastGeneratedUntil sets the "last_generated_until" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableLastGeneratedUntil(v *time.Time) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetLastGeneratedUntil(*v)
	}
	return _u
}

// ClearLastGeneratedUntil clears the value of the "last_generated_until" field.
func (_u *AppointmentSeriesUpdateOne) ClearLastGeneratedUntil() *AppointmentSeriesUpdateOne {
	_u.mutation.ClearLastGeneratedUntil()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *AppointmentSeriesUpdateOne) SetCostEstimate(v int64) *AppointmentSeriesUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableCostEstimate(v *int64) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *AppointmentSeriesUpdateOne) AddCostEstimate(v int64) *AppointmentSeriesUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (_u *AppointmentSeriesUpdateOne) ClearCostEstimate() *AppointmentSeriesUpdateOne {
	_u.mutation.ClearCostEstimate()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppointmentSeriesUpdateOne) SetIsActive(v bool) *AppointmentSeriesUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppointmentSeriesUpdateOne) SetNillableIsActive(v *bool) *AppointmentSeriesUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AppointmentSeriesMutation object of the builder.
func (_u *AppointmentSeriesUpdateOne) Mutation() *AppointmentSeriesMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentSeriesUpdate builder.
func (_u *AppointmentSeriesUpdateOne) Where(ps ...predicate.AppointmentSeries) *AppointmentSeriesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentSeriesUpdateOne) Select(field string, fields ...string) *AppointmentSeriesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentSeries entity.
func (_u *AppointmentSeriesUpdateOne) Save(ctx context.Context) (*AppointmentSeries, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentSeriesUpdateOne) SaveX(ctx context.Context) *AppointmentSeries {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentSeriesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentSeriesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentSeriesUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentseries.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentSeriesUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := appointmentseries.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rrule(); ok {
		if err := appointmentseries.RruleValidator(v); err != nil {
			return &ValidationError{Name: "rrule", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.rrule": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := appointmentseries.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.timezone": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentSeriesUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentSeries, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentseries.Table, appointmentseries.Columns, sqlgraph.NewFieldSpec(appointmentseries.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentSeries.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmentseries.FieldID)
		for _, f := range fields {
			if !appointmentseries.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmentseries.FieldID {
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
		_spec.SetField(appointmentseries.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(appointmentseries.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StaffID(); ok {
		_spec.SetField(appointmentseries.FieldStaffID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(appointmentseries.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(appointmentseries.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rrule(); ok {
		_spec.SetField(appointmentseries.FieldRrule, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeriesStartDate(); ok {
		_spec.SetField(appointmentseries.FieldSeriesStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(appointmentseries.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(appointmentseries.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(appointmentseries.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(appointmentseries.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmentseries.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointmentseries.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(appointmentseries.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.UntilDate(); ok {
		_spec.SetField(appointmentseries.FieldUntilDate, field.TypeTime, value)
	}
	if _u.mutation.UntilDateCleared() {
		_spec.ClearField(appointmentseries.FieldUntilDate, field.TypeTime)
	}
	if value, ok := _u.mutation.GenerationCapDays(); ok {
		_spec.SetField(appointmentseries.FieldGenerationCapDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationCapDays(); ok {
		_spec.AddField(appointmentseries.FieldGenerationCapDays, field.TypeInt, value)
	}
	if _u.mutation.GenerationCapDaysCleared() {
		_spec.ClearField(appointmentseries.FieldGenerationCapDays, field.TypeInt)
	}
	if value, ok := _u.mutation.LastGeneratedUntil(); ok {
		_spec.SetField(appointmentseries.FieldLastGeneratedUntil, field.TypeTime, value)
	}
	if _u.mutation.LastGeneratedUntilCleared() {
		_spec.ClearField(appointmentseries.FieldLastGeneratedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(appointmentseries.FieldCostEstimate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(appointmentseries.FieldCostEstimate, field.TypeInt64, value)
	}
	if _u.mutation.CostEstimateCleared() {
		_spec.ClearField(appointmentseries.FieldCostEstimate, field.TypeInt64)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(appointmentseries.FieldIsActive, field.TypeBool, value)
	}
	_node = &AppointmentSeries{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentseries.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
)

// AppointmentSeriesCreate is the builder for creating a AppointmentSeries entity.
type AppointmentSeriesCreate struct {
	config
	mutation *AppointmentSeriesMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentSeriesCreate) SetCreatedAt(v time.Time) *AppointmentSeriesCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableCreatedAt(v *time.Time) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentSeriesCreate) SetUpdatedAt(v time.Time) *AppointmentSeriesCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPracticeID sets the "practice_id" field.
func (_c *AppointmentSeriesCreate) SetPracticeID(v uuid.UUID) *AppointmentSeriesCreate {
	_c.mutation.SetPracticeID(v)
	return _c
}

// SetStaffID sets the "staff_id" field.
func (_c *AppointmentSeriesCreate) SetStaffID(v uuid.UUID) *AppointmentSeriesCreate {
	_c.mutation.SetStaffID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *AppointmentSeriesCreate) SetClientID(v uuid.UUID) *AppointmentSeriesCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AppointmentSeriesCreate) SetTitle(v string) *AppointmentSeriesCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetRrule sets the "rrule" field.
func (_c *AppointmentSeriesCreate) SetRrule(v string) *AppointmentSeriesCreate {
	_c.mutation.SetRrule(v)
	return _c
}

// SetSeriesStartDate sets the "series_start_date" field.
func (_c *AppointmentSeriesCreate) SetSeriesStartDate(v time.Time) *AppointmentSeriesCreate {
	_c.mutation.SetSeriesStartDate(v)
	return _c
}

// SetStartHour sets the "start_hour" field.
func (_c *AppointmentSeriesCreate) SetStartHour(v int8) *AppointmentSeriesCreate {
	_c.mutation.SetStartHour(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *AppointmentSeriesCreate) SetStartMinute(v int8) *AppointmentSeriesCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AppointmentSeriesCreate) SetDurationMinutes(v int) *AppointmentSeriesCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableDurationMinutes(v *int) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *AppointmentSeriesCreate) SetTimezone(v string) *AppointmentSeriesCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetUntilDate sets the "until_date" field.
func (_c *AppointmentSeriesCreate) SetUntilDate(v time.Time) *AppointmentSeriesCreate {
	_c.mutation.SetUntilDate(v)
	return _c
}

// SetNillableUntilDate sets the "until_date" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableUntilDate(v *time.Time) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetUntilDate(*v)
	}
	return _c
}

// SetGenerationCapDays sets the "generation_cap_days" field.
func (_c *AppointmentSeriesCreate) SetGenerationCapDays(v int) *AppointmentSeriesCreate {
	_c.mutation.SetGenerationCapDays(v)
	return _c
}

// SetNillableGenerationCapDays sets the "generation_cap_days" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableGenerationCapDays(v *int) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetGenerationCapDays(*v)
	}
	return _c
}

// SetLastGeneratedUntil sets the "last_generated_until" field.
func (_c *AppointmentSeriesCreate) SetLastGeneratedUntil(v time.Time) *AppointmentSeriesCreate {
	_c.mutation.SetLastGeneratedUntil(v)
	return _c
}

// SetNillableLastGeneratedUntil sets the "last_generated_until" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableLastGeneratedUntil(v *time.Time) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetLastGeneratedUntil(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *AppointmentSeriesCreate) SetCostEstimate(v int64) *AppointmentSeriesCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableCostEstimate(v *int64) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AppointmentSeriesCreate) SetIsActive(v bool) *AppointmentSeriesCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableIsActive(v *bool) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentSeriesCreate) SetID(v uuid.UUID) *AppointmentSeriesCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentSeriesCreate) SetNillableID(v *uuid.UUID) *AppointmentSeriesCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentSeriesMutation object of the builder.
func (_c *AppointmentSeriesCreate) Mutation() *AppointmentSeriesMutation {
	return _c.mutation
}

// Save creates the AppointmentSeries in the database.
func (_c *AppointmentSeriesCreate) Save(ctx context.Context) (*AppointmentSeries, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentSeriesCreate) SaveX(ctx context.Context) *AppointmentSeries {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentSeriesCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentSeriesCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentSeriesCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointmentseries.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointmentseries.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := appointmentseries.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := appointmentseries.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointmentseries.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentSeriesCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AppointmentSeries.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AppointmentSeries.updated_at"`)}
	}
	if _, ok := _c.mutation.PracticeID(); !ok {
		return &ValidationError{Name: "practice_id", err: errors.New(`repo: missing required field "AppointmentSeries.practice_id"`)}
	}
	if _, ok := _c.mutation.StaffID(); !ok {
		return &ValidationError{Name: "staff_id", err: errors.New(`repo: missing required field "AppointmentSeries.staff_id"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "AppointmentSeries.client_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "AppointmentSeries.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := appointmentseries.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rrule(); !ok {
		return &ValidationError{Name: "rrule", err: errors.New(`repo: missing required field "AppointmentSeries.rrule"`)}
	}
	if v, ok := _c.mutation.Rrule(); ok {
		if err := appointmentseries.RruleValidator(v); err != nil {
			return &ValidationError{Name: "rrule", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.rrule": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeriesStartDate(); !ok {
		return &ValidationError{Name: "series_start_date", err: errors.New(`repo: missing required field "AppointmentSeries.series_start_date"`)}
	}
	if _, ok := _c.mutation.StartHour(); !ok {
		return &ValidationError{Name: "start_hour", err: errors.New(`repo: missing required field "AppointmentSeries.start_hour"`)}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`repo: missing required field "AppointmentSeries.start_minute"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "AppointmentSeries.duration_minutes"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "AppointmentSeries.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := appointmentseries.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "AppointmentSeries.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "AppointmentSeries.is_active"`)}
	}
	return nil
}

func (_c *AppointmentSeriesCreate) sqlSave(ctx context.Context) (*AppointmentSeries, error) {
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

func (_c *AppointmentSeriesCreate) createSpec() (*AppointmentSeries, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentSeries{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmentseries.Table, sqlgraph.NewFieldSpec(appointmentseries.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointmentseries.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentseries.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PracticeID(); ok {
		_spec.SetField(appointmentseries.FieldPracticeID, field.TypeUUID, value)
		_node.PracticeID = value
	}
	if value, ok := _c.mutation.StaffID(); ok {
		_spec.SetField(appointmentseries.FieldStaffID, field.TypeUUID, value)
		_node.StaffID = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(appointmentseries.FieldClientID, field.TypeUUID, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(appointmentseries.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Rrule(); ok {
		_spec.SetField(appointmentseries.FieldRrule, field.TypeString, value)
		_node.Rrule = value
	}
	if value, ok := _c.mutation.SeriesStartDate(); ok {
		_spec.SetField(appointmentseries.FieldSeriesStartDate, field.TypeTime, value)
		_node.SeriesStartDate = value
	}
	if value, ok := _c.mutation.StartHour(); ok {
		_spec.SetField(appointmentseries.FieldStartHour, field.TypeInt8, value)
		_node.StartHour = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(appointmentseries.FieldStartMinute, field.TypeInt8, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmentseries.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(appointmentseries.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.UntilDate(); ok {
		_spec.SetField(appointmentseries.FieldUntilDate, field.TypeTime, value)
		_node.UntilDate = &value
	}
	if value, ok := _c.mutation.GenerationCapDays(); ok {
		_spec.SetField(appointmentseries.FieldGenerationCapDays, field.TypeInt, value)
		_node.GenerationCapDays = &value
	}
	if value, ok := _c.mutation.LastGeneratedUntil(); ok {
		_spec.SetField(appointmentseries.FieldLastGeneratedUntil, field.TypeTime, value)
		_node.LastGeneratedUntil = &value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(appointmentseries.FieldCostEstimate, field.TypeInt64, value)
		_node.CostEstimate = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(appointmentseries.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AppointmentSeries.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentSeriesUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentSeriesCreate) OnConflict(opts ...sql.ConflictOption) *AppointmentSeriesUpsertOne {
	_c.conflict = opts
	return &AppointmentSeriesUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AppointmentSeries.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentSeriesCreate) OnConflictColumns(columns ...string) *AppointmentSeriesUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentSeriesUpsertOne{
		create: _c,
	}
}

type (
	// AppointmentSeriesUpsertOne is the builder for "upsert"-ing
	//  one AppointmentSeries node.
	AppointmentSeriesUpsertOne struct {
		create *AppointmentSeriesCreate
	}

	// AppointmentSeriesUpsert is the "OnConflict" setter.
	AppointmentSeriesUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentSeriesUpsert) SetUpdatedAt(v time.Time) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateUpdatedAt() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldUpdatedAt)
	return u
}

// SetPracticeID sets the "practice_id" field.
func (u *AppointmentSeriesUpsert) SetPracticeID(v uuid.UUID) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldPracticeID, v)
	return u
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdatePracticeID() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldPracticeID)
	return u
}

// SetStaffID sets the "staff_id" field.
func (u *AppointmentSeriesUpsert) SetStaffID(v uuid.UUID) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldStaffID, v)
	return u
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateStaffID() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldStaffID)
	return u
}

// SetClientID sets the "client_id" field.
func (u *AppointmentSeriesUpsert) SetClientID(v uuid.UUID) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateClientID() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldClientID)
	return u
}

// SetTitle sets the "title" field.
func (u *AppointmentSeriesUpsert) SetTitle(v string) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateTitle() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldTitle)
	return u
}

// SetRrule sets the "rrule" field.
func (u *AppointmentSeriesUpsert) SetRrule(v string) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldRrule, v)
	return u
}

// UpdateRrule sets the "rrule" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateRrule() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldRrule)
	return u
}

// SetSeriesStartDate sets the "series_start_date" field.
func (u *AppointmentSeriesUpsert) SetSeriesStartDate(v time.Time) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldSeriesStartDate, v)
	return u
}

// UpdateSeriesStartDate sets the "series_start_date" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateSeriesStartDate() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldSeriesStartDate)
	return u
}

// SetStartHour sets the "start_hour" field.
func (u *AppointmentSeriesUpsert) SetStartHour(v int8) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldStartHour, v)
	return u
}

// UpdateStartHour sets the "start_hour" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateStartHour() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldStartHour)
	return u
}

// AddStartHour adds v to the "start_hour" field.
func (u *AppointmentSeriesUpsert) AddStartHour(v int8) *AppointmentSeriesUpsert {
	u.Add(appointmentseries.FieldStartHour, v)
	return u
}

// SetStartMinute sets the "start_minute" field.
func (u *AppointmentSeriesUpsert) SetStartMinute(v int8) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldStartMinute, v)
	return u
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateStartMinute() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldStartMinute)
	return u
}

// AddStartMinute adds v to the "start_minute" field.
func (u *AppointmentSeriesUpsert) AddStartMinute(v int8) *AppointmentSeriesUpsert {
	u.Add(appointmentseries.FieldStartMinute, v)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *AppointmentSeriesUpsert) SetDurationMinutes(v int) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateDurationMinutes() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *AppointmentSeriesUpsert) AddDurationMinutes(v int) *AppointmentSeriesUpsert {
	u.Add(appointmentseries.FieldDurationMinutes, v)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *AppointmentSeriesUpsert) SetTimezone(v string) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateTimezone() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldTimezone)
	return u
}

// SetUntilDate sets the "until_date" field.
func (u *AppointmentSeriesUpsert) SetUntilDate(v time.Time) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldUntilDate, v)
	return u
}

// UpdateUntilDate sets the "until_date" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateUntilDate() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldUntilDate)
	return u
}

// ClearUntilDate clears the value of the "until_date" field.
func (u *AppointmentSeriesUpsert) ClearUntilDate() *AppointmentSeriesUpsert {
	u.SetNull(appointmentseries.FieldUntilDate)
	return u
}

// SetGenerationCapDays sets the "generation_cap_days" field.
func (u *AppointmentSeriesUpsert) SetGenerationCapDays(v int) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldGenerationCapDays, v)
	return u
}

// UpdateGenerationCapDays sets the "generation_cap_days" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateGenerationCapDays() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldGenerationCapDays)
	return u
}

// AddGenerationCapDays adds v to the "generation_cap_days" field.
func (u *AppointmentSeriesUpsert) AddGenerationCapDays(v int) *AppointmentSeriesUpsert {
	u.Add(appointmentseries.FieldGenerationCapDays, v)
	return u
}

// ClearGenerationCapDays clears the value of the "generation_cap_days" field.
func (u *AppointmentSeriesUpsert) ClearGenerationCapDays() *AppointmentSeriesUpsert {
	u.SetNull(appointmentseries.FieldGenerationCapDays)
	return u
}

// SetLastGeneratedUntil sets the "last_generated_until" field.
func (u *AppointmentSeriesUpsert) SetLastGeneratedUntil(v time.Time) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldLastGeneratedUntil, v)
	return u
}

// UpdateLastGeneratedUntil sets the "last_generated_until" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateLastGeneratedUntil() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldLastGeneratedUntil)
	return u
}

// ClearLastGeneratedUntil clears the value of the "last_generated_until" field.
func (u *AppointmentSeriesUpsert) ClearLastGeneratedUntil() *AppointmentSeriesUpsert {
	u.SetNull(appointmentseries.FieldLastGeneratedUntil)
	return u
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AppointmentSeriesUpsert) SetCostEstimate(v int64) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldCostEstimate, v)
	return u
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateCostEstimate() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldCostEstimate)
	return u
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AppointmentSeriesUpsert) AddCostEstimate(v int64) *AppointmentSeriesUpsert {
	u.Add(appointmentseries.FieldCostEstimate, v)
	return u
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (u *AppointmentSeriesUpsert) ClearCostEstimate() *AppointmentSeriesUpsert {
	u.SetNull(appointmentseries.FieldCostEstimate)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AppointmentSeriesUpsert) SetIsActive(v bool) *AppointmentSeriesUpsert {
	u.Set(appointmentseries.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AppointmentSeriesUpsert) UpdateIsActive() *AppointmentSeriesUpsert {
	u.SetExcluded(appointmentseries.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AppointmentSeries.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointmentseries.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentSeriesUpsertOne) UpdateNewValues() *AppointmentSeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(appointmentseries.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(appointmentseries.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AppointmentSeries.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppointmentSeriesUpsertOne) Ignore() *AppointmentSeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentSeriesUpsertOne) DoNothing() *AppointmentSeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentSeriesCreate.OnConflict
// documentation for more info.
func (u *AppointmentSeriesUpsertOne) Update(set func(*AppointmentSeriesUpsert)) *AppointmentSeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentSeriesUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentSeriesUpsertOne) SetUpdatedAt(v time.Time) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateUpdatedAt() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *AppointmentSeriesUpsertOne) SetPracticeID(v uuid.UUID) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdatePracticeID() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *AppointmentSeriesUpsertOne) SetStaffID(v uuid.UUID) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateStaffID() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateStaffID()
	})
}

// SetClientID sets the "client_id" field.
func (u *AppointmentSeriesUpsertOne) SetClientID(v uuid.UUID) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateClientID() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateClientID()
	})
}

// SetTitle sets the "title" field.
func (u *AppointmentSeriesUpsertOne) SetTitle(v string) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateTitle() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateTitle()
	})
}

// SetRrule sets the "rrule" field.
func (u *AppointmentSeriesUpsertOne) SetRrule(v string) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetRrule(v)
	})
}

// UpdateRrule sets the "rrule" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateRrule() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateRrule()
	})
}

// SetSeriesStartDate sets the "series_start_date" field.
func (u *AppointmentSeriesUpsertOne) SetSeriesStartDate(v time.Time) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetSeriesStartDate(v)
	})
}

// UpdateSeriesStartDate sets the "series_start_date" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateSeriesStartDate() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateSeriesStartDate()
	})
}

// SetStartHour sets the "start_hour" field.
func (u *AppointmentSeriesUpsertOne) SetStartHour(v int8) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetStartHour(v)
	})
}

// AddStartHour adds v to the "start_hour" field.
func (u *AppointmentSeriesUpsertOne) AddStartHour(v int8) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddStartHour(v)
	})
}

// UpdateStartHour sets the "start_hour" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateStartHour() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateStartHour()
	})
}

// SetStartMinute sets the "start_minute" field.
func (u *AppointmentSeriesUpsertOne) SetStartMinute(v int8) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetStartMinute(v)
	})
}

// AddStartMinute adds v to the "start_minute" field.
func (u *AppointmentSeriesUpsertOne) AddStartMinute(v int8) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddStartMinute(v)
	})
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateStartMinute() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateStartMinute()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *AppointmentSeriesUpsertOne) SetDurationMinutes(v int) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *AppointmentSeriesUpsertOne) AddDurationMinutes(v int) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateDurationMinutes() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *AppointmentSeriesUpsertOne) SetTimezone(v string) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateTimezone() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateTimezone()
	})
}

// SetUntilDate sets the "until_date" field.
func (u *AppointmentSeriesUpsertOne) SetUntilDate(v time.Time) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetUntilDate(v)
	})
}

// UpdateUntilDate sets the "until_date" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateUntilDate() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateUntilDate()
	})
}

// ClearUntilDate clears the value of the "until_date" field.
func (u *AppointmentSeriesUpsertOne) ClearUntilDate() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearUntilDate()
	})
}

// SetGenerationCapDays sets the "generation_cap_days" field.
func (u *AppointmentSeriesUpsertOne) SetGenerationCapDays(v int) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetGenerationCapDays(v)
	})
}

// AddGenerationCapDays adds v to the "generation_cap_days" field.
func (u *AppointmentSeriesUpsertOne) AddGenerationCapDays(v int) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddGenerationCapDays(v)
	})
}

// UpdateGenerationCapDays sets the "generation_cap_days" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateGenerationCapDays() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateGenerationCapDays()
	})
}

// ClearGenerationCapDays clears the value of the "generation_cap_days" field.
func (u *AppointmentSeriesUpsertOne) ClearGenerationCapDays() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearGenerationCapDays()
	})
}

// SetLastGeneratedUntil sets the "last_generated_until" field.
func (u *AppointmentSeriesUpsertOne) SetLastGeneratedUntil(v time.Time) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetLastGeneratedUntil(v)
	})
}

// UpdateLastGeneratedUntil sets the "last_generated_until" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateLastGeneratedUntil() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateLastGeneratedUntil()
	})
}

// ClearLastGeneratedUntil clears the value of the "last_generated_until" field.
func (u *AppointmentSeriesUpsertOne) ClearLastGeneratedUntil() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearLastGeneratedUntil()
	})
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AppointmentSeriesUpsertOne) SetCostEstimate(v int64) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetCostEstimate(v)
	})
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AppointmentSeriesUpsertOne) AddCostEstimate(v int64) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddCostEstimate(v)
	})
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateCostEstimate() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateCostEstimate()
	})
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (u *AppointmentSeriesUpsertOne) ClearCostEstimate() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearCostEstimate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AppointmentSeriesUpsertOne) SetIsActive(v bool) *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertOne) UpdateIsActive() *AppointmentSeriesUpsertOne {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AppointmentSeriesUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentSeriesCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentSeriesUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppointmentSeriesUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AppointmentSeriesUpsertOne.ID is not supported by MySQL driver. Use AppointmentSeriesUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppointmentSeriesUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppointmentSeriesCreateBulk is the builder for creating many AppointmentSeries entities in bulk.
type AppointmentSeriesCreateBulk struct {
	config
	err      error
	builders []*AppointmentSeriesCreate
	conflict []sql.ConflictOption
}

// Save creates the AppointmentSeries entities in the database.
func (_c *AppointmentSeriesCreateBulk) Save(ctx context.Context) ([]*AppointmentSeries, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentSeries, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentSeriesMutation)
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
func (_c *AppointmentSeriesCreateBulk) SaveX(ctx context.Context) []*AppointmentSeries {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentSeriesCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentSeriesCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AppointmentSeries.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentSeriesUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentSeriesCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppointmentSeriesUpsertBulk {
	_c.conflict = opts
	return &AppointmentSeriesUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AppointmentSeries.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentSeriesCreateBulk) OnConflictColumns(columns ...string) *AppointmentSeriesUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentSeriesUpsertBulk{
		create: _c,
	}
}

// AppointmentSeriesUpsertBulk is the builder for "upsert"-ing
// a bulk of AppointmentSeries nodes.
type AppointmentSeriesUpsertBulk struct {
	create *AppointmentSeriesCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AppointmentSeries.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointmentseries.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentSeriesUpsertBulk) UpdateNewValues() *AppointmentSeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(appointmentseries.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(appointmentseries.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AppointmentSeries.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppointmentSeriesUpsertBulk) Ignore() *AppointmentSeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentSeriesUpsertBulk) DoNothing() *AppointmentSeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentSeriesCreateBulk.OnConflict
// documentation for more info.
func (u *AppointmentSeriesUpsertBulk) Update(set func(*AppointmentSeriesUpsert)) *AppointmentSeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentSeriesUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentSeriesUpsertBulk) SetUpdatedAt(v time.Time) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateUpdatedAt() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *AppointmentSeriesUpsertBulk) SetPracticeID(v uuid.UUID) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdatePracticeID() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *AppointmentSeriesUpsertBulk) SetStaffID(v uuid.UUID) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateStaffID() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateStaffID()
	})
}

// SetClientID sets the "client_id" field.
func (u *AppointmentSeriesUpsertBulk) SetClientID(v uuid.UUID) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateClientID() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateClientID()
	})
}

// SetTitle sets the "title" field.
func (u *AppointmentSeriesUpsertBulk) SetTitle(v string) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateTitle() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateTitle()
	})
}

// SetRrule sets the "rrule" field.
func (u *AppointmentSeriesUpsertBulk) SetRrule(v string) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetRrule(v)
	})
}

// UpdateRrule sets the "rrule" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateRrule() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateRrule()
	})
}

// SetSeriesStartDate sets the "series_start_date" field.
func (u *AppointmentSeriesUpsertBulk) SetSeriesStartDate(v time.Time) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetSeriesStartDate(v)
	})
}

// UpdateSeriesStartDate sets the "series_start_date" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateSeriesStartDate() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateSeriesStartDate()
	})
}

// SetStartHour sets the "start_hour" field.
func (u *AppointmentSeriesUpsertBulk) SetStartHour(v int8) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetStartHour(v)
	})
}

// AddStartHour adds v to the "start_hour" field.
func (u *AppointmentSeriesUpsertBulk) AddStartHour(v int8) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddStartHour(v)
	})
}

// UpdateStartHour sets the "start_hour" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateStartHour() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateStartHour()
	})
}

// SetStartMinute sets the "start_minute" field.
func (u *AppointmentSeriesUpsertBulk) SetStartMinute(v int8) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetStartMinute(v)
	})
}

// AddStartMinute adds v to the "start_minute" field.
func (u *AppointmentSeriesUpsertBulk) AddStartMinute(v int8) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddStartMinute(v)
	})
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateStartMinute() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateStartMinute()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *AppointmentSeriesUpsertBulk) SetDurationMinutes(v int) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *AppointmentSeriesUpsertBulk) AddDurationMinutes(v int) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateDurationMinutes() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *AppointmentSeriesUpsertBulk) SetTimezone(v string) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateTimezone() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateTimezone()
	})
}

// SetUntilDate sets the "until_date" field.
func (u *AppointmentSeriesUpsertBulk) SetUntilDate(v time.Time) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetUntilDate(v)
	})
}

// UpdateUntilDate sets the "until_date" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateUntilDate() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateUntilDate()
	})
}

// ClearUntilDate clears the value of the "until_date" field.
func (u *AppointmentSeriesUpsertBulk) ClearUntilDate() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearUntilDate()
	})
}

// SetGenerationCapDays sets the "generation_cap_days" field.
func (u *AppointmentSeriesUpsertBulk) SetGenerationCapDays(v int) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetGenerationCapDays(v)
	})
}

// AddGenerationCapDays adds v to the "generation_cap_days" field.
func (u *AppointmentSeriesUpsertBulk) AddGenerationCapDays(v int) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddGenerationCapDays(v)
	})
}

// UpdateGenerationCapDays sets the "generation_cap_days" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateGenerationCapDays() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateGenerationCapDays()
	})
}

// ClearGenerationCapDays clears the value of the "generation_cap_days" field.
func (u *AppointmentSeriesUpsertBulk) ClearGenerationCapDays() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearGenerationCapDays()
	})
}

// SetLastGeneratedUntil sets the "last_generated_until" field.
func (u *AppointmentSeriesUpsertBulk) SetLastGeneratedUntil(v time.Time) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetLastGeneratedUntil(v)
	})
}

// UpdateLastGeneratedUntil sets the "last_generated_until" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateLastGeneratedUntil() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateLastGeneratedUntil()
	})
}

// ClearLastGeneratedUntil clears the value of the "last_generated_until" field.
func (u *AppointmentSeriesUpsertBulk) ClearLastGeneratedUntil() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearLastGeneratedUntil()
	})
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AppointmentSeriesUpsertBulk) SetCostEstimate(v int64) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetCostEstimate(v)
	})
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AppointmentSeriesUpsertBulk) AddCostEstimate(v int64) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.AddCostEstimate(v)
	})
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateCostEstimate() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateCostEstimate()
	})
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (u *AppointmentSeriesUpsertBulk) ClearCostEstimate() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.ClearCostEstimate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AppointmentSeriesUpsertBulk) SetIsActive(v bool) *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AppointmentSeriesUpsertBulk) UpdateIsActive() *AppointmentSeriesUpsertBulk {
	return u.Update(func(s *AppointmentSeriesUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AppointmentSeriesUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AppointmentSeriesCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentSeriesCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentSeriesUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

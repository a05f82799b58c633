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
	"github.com/juniperhealth/juniper_backend/internal/repo/staffcalendarblock"
)

// StaffCalendarBlockCreate is the builder for creating a StaffCalendarBlock entity.
type StaffCalendarBlockCreate struct {
	config
	mutation *StaffCalendarBlockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StaffCalendarBlockCreate) SetCreatedAt(v time.Time) *StaffCalendarBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StaffCalendarBlockCreate) SetNillableCreatedAt(v *time.Time) *StaffCalendarBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StaffCalendarBlockCreate) SetUpdatedAt(v time.Time) *StaffCalendarBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StaffCalendarBlockCreate) SetNillableUpdatedAt(v *time.Time) *StaffCalendarBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPracticeID sets the "practice_id" field.
func (_c *StaffCalendarBlockCreate) SetPracticeID(v uuid.UUID) *StaffCalendarBlockCreate {
	_c.mutation.SetPracticeID(v)
	return _c
}

// SetStaffID sets the "staff_id" field.
func (_c *StaffCalendarBlockCreate) SetStaffID(v uuid.UUID) *StaffCalendarBlockCreate {
	_c.mutation.SetStaffID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *StaffCalendarBlockCreate) SetSource(v staffcalendarblock.Source) *StaffCalendarBlockCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetExternalEventID sets the "external_event_id" field.
func (_c *StaffCalendarBlockCreate) SetExternalEventID(v string) *StaffCalendarBlockCreate {
	_c.mutation.SetExternalEventID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *StaffCalendarBlockCreate) SetStartTime(v time.Time) *StaffCalendarBlockCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *StaffCalendarBlockCreate) SetEndTime(v time.Time) *StaffCalendarBlockCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *StaffCalendarBlockCreate) SetLabel(v string) *StaffCalendarBlockCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *StaffCalendarBlockCreate) SetNillableLabel(v *string) *StaffCalendarBlockCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StaffCalendarBlockCreate) SetID(v uuid.UUID) *StaffCalendarBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StaffCalendarBlockCreate) SetNillableID(v *uuid.UUID) *StaffCalendarBlockCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StaffCalendarBlockMutation object of the builder.
func (_c *StaffCalendarBlockCreate) Mutation() *StaffCalendarBlockMutation {
	return _c.mutation
}

// Save creates the StaffCalendarBlock in the database.
func (_c *StaffCalendarBlockCreate) Save(ctx context.Context) (*StaffCalendarBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StaffCalendarBlockCreate) SaveX(ctx context.Context) *StaffCalendarBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffCalendarBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffCalendarBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StaffCalendarBlockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staffcalendarblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staffcalendarblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Label(); !ok {
		v := staffcalendarblock.DefaultLabel
		_c.mutation.SetLabel(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := staffcalendarblock.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StaffCalendarBlockCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StaffCalendarBlock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "StaffCalendarBlock.updated_at"`)}
	}
	if _, ok := _c.mutation.PracticeID(); !ok {
		return &ValidationError{Name: "practice_id", err: errors.New(`repo: missing required field "StaffCalendarBlock.practice_id"`)}
	}
	if _, ok := _c.mutation.StaffID(); !ok {
		return &ValidationError{Name: "staff_id", err: errors.New(`repo: missing required field "StaffCalendarBlock.staff_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`repo: missing required field "StaffCalendarBlock.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := staffcalendarblock.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalEventID(); !ok {
		return &ValidationError{Name: "external_event_id", err: errors.New(`repo: missing required field "StaffCalendarBlock.external_event_id"`)}
	}
	if v, ok := _c.mutation.ExternalEventID(); ok {
		if err := staffcalendarblock.ExternalEventIDValidator(v); err != nil {
			return &ValidationError{Name: "external_event_id", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.external_event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "StaffCalendarBlock.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "StaffCalendarBlock.end_time"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`repo: missing required field "StaffCalendarBlock.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := staffcalendarblock.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`repo: validator failed for field "StaffCalendarBlock.label": %w`, err)}
		}
	}
	return nil
}

func (_c *StaffCalendarBlockCreate) sqlSave(ctx context.Context) (*StaffCalendarBlock, error) {
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

func (_c *StaffCalendarBlockCreate) createSpec() (*StaffCalendarBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &StaffCalendarBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staffcalendarblock.Table, sqlgraph.NewFieldSpec(staffcalendarblock.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staffcalendarblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staffcalendarblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PracticeID(); ok {
		_spec.SetField(staffcalendarblock.FieldPracticeID, field.TypeUUID, value)
		_node.PracticeID = value
	}
	if value, ok := _c.mutation.StaffID(); ok {
		_spec.SetField(staffcalendarblock.FieldStaffID, field.TypeUUID, value)
		_node.StaffID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(staffcalendarblock.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExternalEventID(); ok {
		_spec.SetField(staffcalendarblock.FieldExternalEventID, field.TypeString, value)
		_node.ExternalEventID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(staffcalendarblock.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(staffcalendarblock.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(staffcalendarblock.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StaffCalendarBlock.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffCalendarBlockUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffCalendarBlockCreate) OnConflict(opts ...sql.ConflictOption) *StaffCalendarBlockUpsertOne {
	_c.conflict = opts
	return &StaffCalendarBlockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaffCalendarBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffCalendarBlockCreate) OnConflictColumns(columns ...string) *StaffCalendarBlockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffCalendarBlockUpsertOne{
		create: _c,
	}
}

type (
	// StaffCalendarBlockUpsertOne is the builder for "upsert"-ing
	//  one StaffCalendarBlock node.
	StaffCalendarBlockUpsertOne struct {
		create *StaffCalendarBlockCreate
	}

	// StaffCalendarBlockUpsert is the "OnConflict" setter.
	StaffCalendarBlockUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffCalendarBlockUpsert) SetUpdatedAt(v time.Time) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdateUpdatedAt() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldUpdatedAt)
	return u
}

// SetPracticeID sets the "practice_id" field.
func (u *StaffCalendarBlockUpsert) SetPracticeID(v uuid.UUID) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldPracticeID, v)
	return u
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdatePracticeID() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldPracticeID)
	return u
}

// SetStaffID sets the "staff_id" field.
func (u *StaffCalendarBlockUpsert) SetStaffID(v uuid.UUID) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldStaffID, v)
	return u
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdateStaffID() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldStaffID)
	return u
}

// SetSource sets the "source" field.
func (u *StaffCalendarBlockUpsert) SetSource(v staffcalendarblock.Source) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdateSource() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldSource)
	return u
}

// SetExternalEventID sets the "external_event_id" field.
func (u *StaffCalendarBlockUpsert) SetExternalEventID(v string) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldExternalEventID, v)
	return u
}

// UpdateExternalEventID sets the "external_event_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdateExternalEventID() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldExternalEventID)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *StaffCalendarBlockUpsert) SetStartTime(v time.Time) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdateStartTime() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *StaffCalendarBlockUpsert) SetEndTime(v time.Time) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdateEndTime() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldEndTime)
	return u
}

// SetLabel sets the "label" field.
func (u *StaffCalendarBlockUpsert) SetLabel(v string) *StaffCalendarBlockUpsert {
	u.Set(staffcalendarblock.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsert) UpdateLabel() *StaffCalendarBlockUpsert {
	u.SetExcluded(staffcalendarblock.FieldLabel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StaffCalendarBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staffcalendarblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaffCalendarBlockUpsertOne) UpdateNewValues() *StaffCalendarBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(staffcalendarblock.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(staffcalendarblock.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaffCalendarBlock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StaffCalendarBlockUpsertOne) Ignore() *StaffCalendarBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffCalendarBlockUpsertOne) DoNothing() *StaffCalendarBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffCalendarBlockCreate.OnConflict
// documentation for more info.
func (u *StaffCalendarBlockUpsertOne) Update(set func(*StaffCalendarBlockUpsert)) *StaffCalendarBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffCalendarBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffCalendarBlockUpsertOne) SetUpdatedAt(v time.Time) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdateUpdatedAt() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *StaffCalendarBlockUpsertOne) SetPracticeID(v uuid.UUID) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdatePracticeID() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *StaffCalendarBlockUpsertOne) SetStaffID(v uuid.UUID) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdateStaffID() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateStaffID()
	})
}

// SetSource sets the "source" field.
func (u *StaffCalendarBlockUpsertOne) SetSource(v staffcalendarblock.Source) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdateSource() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateSource()
	})
}

// SetExternalEventID sets the "external_event_id" field.
func (u *StaffCalendarBlockUpsertOne) SetExternalEventID(v string) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetExternalEventID(v)
	})
}

// UpdateExternalEventID sets the "external_event_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdateExternalEventID() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateExternalEventID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *StaffCalendarBlockUpsertOne) SetStartTime(v time.Time) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdateStartTime() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *StaffCalendarBlockUpsertOne) SetEndTime(v time.Time) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdateEndTime() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateEndTime()
	})
}

// SetLabel sets the "label" field.
func (u *StaffCalendarBlockUpsertOne) SetLabel(v string) *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertOne) UpdateLabel() *StaffCalendarBlockUpsertOne {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateLabel()
	})
}

// Exec executes the query.
func (u *StaffCalendarBlockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StaffCalendarBlockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffCalendarBlockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StaffCalendarBlockUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StaffCalendarBlockUpsertOne.ID is not supported by MySQL driver. Use StaffCalendarBlockUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StaffCalendarBlockUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StaffCalendarBlockCreateBulk is the builder for creating many StaffCalendarBlock entities in bulk.
type StaffCalendarBlockCreateBulk struct {
	config
	err      error
	builders []*StaffCalendarBlockCreate
	conflict []sql.ConflictOption
}

// Save creates the StaffCalendarBlock entities in the database.
func (_c *StaffCalendarBlockCreateBulk) Save(ctx context.Context) ([]*StaffCalendarBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StaffCalendarBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StaffCalendarBlockMutation)
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
func (_c *StaffCalendarBlockCreateBulk) SaveX(ctx context.Context) []*StaffCalendarBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffCalendarBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffCalendarBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StaffCalendarBlock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffCalendarBlockUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffCalendarBlockCreateBulk) OnConflict(opts ...sql.ConflictOption) *StaffCalendarBlockUpsertBulk {
	_c.conflict = opts
	return &StaffCalendarBlockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaffCalendarBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffCalendarBlockCreateBulk) OnConflictColumns(columns ...string) *StaffCalendarBlockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffCalendarBlockUpsertBulk{
		create: _c,
	}
}

// StaffCalendarBlockUpsertBulk is the builder for "upsert"-ing
// a bulk of StaffCalendarBlock nodes.
type StaffCalendarBlockUpsertBulk struct {
	create *StaffCalendarBlockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StaffCalendarBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staffcalendarblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaffCalendarBlockUpsertBulk) UpdateNewValues() *StaffCalendarBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(staffcalendarblock.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(staffcalendarblock.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaffCalendarBlock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StaffCalendarBlockUpsertBulk) Ignore() *StaffCalendarBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffCalendarBlockUpsertBulk) DoNothing() *StaffCalendarBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffCalendarBlockCreateBulk.OnConflict
// documentation for more info.
func (u *StaffCalendarBlockUpsertBulk) Update(set func(*StaffCalendarBlockUpsert)) *StaffCalendarBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffCalendarBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffCalendarBlockUpsertBulk) SetUpdatedAt(v time.Time) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdateUpdatedAt() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *StaffCalendarBlockUpsertBulk) SetPracticeID(v uuid.UUID) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdatePracticeID() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *StaffCalendarBlockUpsertBulk) SetStaffID(v uuid.UUID) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdateStaffID() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateStaffID()
	})
}

// SetSource sets the "source" field.
func (u *StaffCalendarBlockUpsertBulk) SetSource(v staffcalendarblock.Source) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdateSource() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateSource()
	})
}

// SetExternalEventID sets the "external_event_id" field.
func (u *StaffCalendarBlockUpsertBulk) SetExternalEventID(v string) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetExternalEventID(v)
	})
}

// UpdateExternalEventID sets the "external_event_id" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdateExternalEventID() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateExternalEventID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *StaffCalendarBlockUpsertBulk) SetStartTime(v time.Time) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdateStartTime() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *StaffCalendarBlockUpsertBulk) SetEndTime(v time.Time) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdateEndTime() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateEndTime()
	})
}

// SetLabel sets the "label" field.
func (u *StaffCalendarBlockUpsertBulk) SetLabel(v string) *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *StaffCalendarBlockUpsertBulk) UpdateLabel() *StaffCalendarBlockUpsertBulk {
	return u.Update(func(s *StaffCalendarBlockUpsert) {
		s.UpdateLabel()
	})
}

// Exec executes the query.
func (u *StaffCalendarBlockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StaffCalendarBlockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StaffCalendarBlockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffCalendarBlockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

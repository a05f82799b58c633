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
	"github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
)

// CalendarConnectionCreate is the builder for creating a CalendarConnection entity.
type CalendarConnectionCreate struct {
	config
	mutation *CalendarConnectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarConnectionCreate) SetCreatedAt(v time.Time) *CalendarConnectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarConnectionCreate) SetNillableCreatedAt(v *time.Time) *CalendarConnectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CalendarConnectionCreate) SetUpdatedAt(v time.Time) *CalendarConnectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CalendarConnectionCreate) SetNillableUpdatedAt(v *time.Time) *CalendarConnectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPracticeID sets the "practice_id" field.
func (_c *CalendarConnectionCreate) SetPracticeID(v uuid.UUID) *CalendarConnectionCreate {
	_c.mutation.SetPracticeID(v)
	return _c
}

// SetStaffID sets the "staff_id" field.
func (_c *CalendarConnectionCreate) SetStaffID(v uuid.UUID) *CalendarConnectionCreate {
	_c.mutation.SetStaffID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *CalendarConnectionCreate) SetProvider(v calendarconnection.Provider) *CalendarConnectionCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAccountEmail sets the "account_email" field.
func (_c *CalendarConnectionCreate) SetAccountEmail(v string) *CalendarConnectionCreate {
	_c.mutation.SetAccountEmail(v)
	return _c
}

// SetRefreshTokenEnc sets the "refresh_token_enc" field.
func (_c *CalendarConnectionCreate) SetRefreshTokenEnc(v string) *CalendarConnectionCreate {
	_c.mutation.SetRefreshTokenEnc(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CalendarConnectionCreate) SetStatus(v calendarconnection.Status) *CalendarConnectionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CalendarConnectionCreate) SetNillableStatus(v *calendarconnection.Status) *CalendarConnectionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *CalendarConnectionCreate) SetIsActive(v bool) *CalendarConnectionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *CalendarConnectionCreate) SetNillableIsActive(v *bool) *CalendarConnectionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarConnectionCreate) SetID(v uuid.UUID) *CalendarConnectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalendarConnectionCreate) SetNillableID(v *uuid.UUID) *CalendarConnectionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CalendarConnectionMutation object of the builder.
func (_c *CalendarConnectionCreate) Mutation() *CalendarConnectionMutation {
	return _c.mutation
}

// Save creates the CalendarConnection in the database.
func (_c *CalendarConnectionCreate) Save(ctx context.Context) (*CalendarConnection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarConnectionCreate) SaveX(ctx context.Context) *CalendarConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarConnectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarConnectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarConnectionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarconnection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := calendarconnection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := calendarconnection.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := calendarconnection.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := calendarconnection.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarConnectionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CalendarConnection.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CalendarConnection.updated_at"`)}
	}
	if _, ok := _c.mutation.PracticeID(); !ok {
		return &ValidationError{Name: "practice_id", err: errors.New(`repo: missing required field "CalendarConnection.practice_id"`)}
	}
	if _, ok := _c.mutation.StaffID(); !ok {
		return &ValidationError{Name: "staff_id", err: errors.New(`repo: missing required field "CalendarConnection.staff_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required field "CalendarConnection.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := calendarconnection.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccountEmail(); !ok {
		return &ValidationError{Name: "account_email", err: errors.New(`repo: missing required field "CalendarConnection.account_email"`)}
	}
	if v, ok := _c.mutation.AccountEmail(); ok {
		if err := calendarconnection.AccountEmailValidator(v); err != nil {
			return &ValidationError{Name: "account_email", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.account_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RefreshTokenEnc(); !ok {
		return &ValidationError{Name: "refresh_token_enc", err: errors.New(`repo: missing required field "CalendarConnection.refresh_token_enc"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "CalendarConnection.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := calendarconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CalendarConnection.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "CalendarConnection.is_active"`)}
	}
	return nil
}

func (_c *CalendarConnectionCreate) sqlSave(ctx context.Context) (*CalendarConnection, error) {
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

func (_c *CalendarConnectionCreate) createSpec() (*CalendarConnection, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarConnection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarconnection.Table, sqlgraph.NewFieldSpec(calendarconnection.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarconnection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarconnection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PracticeID(); ok {
		_spec.SetField(calendarconnection.FieldPracticeID, field.TypeUUID, value)
		_node.PracticeID = value
	}
	if value, ok := _c.mutation.StaffID(); ok {
		_spec.SetField(calendarconnection.FieldStaffID, field.TypeUUID, value)
		_node.StaffID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(calendarconnection.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.AccountEmail(); ok {
		_spec.SetField(calendarconnection.FieldAccountEmail, field.TypeString, value)
		_node.AccountEmail = value
	}
	if value, ok := _c.mutation.RefreshTokenEnc(); ok {
		_spec.SetField(calendarconnection.FieldRefreshTokenEnc, field.TypeString, value)
		_node.RefreshTokenEnc = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(calendarconnection.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(calendarconnection.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalendarConnection.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarConnectionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarConnectionCreate) OnConflict(opts ...sql.ConflictOption) *CalendarConnectionUpsertOne {
	_c.conflict = opts
	return &CalendarConnectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarConnection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarConnectionCreate) OnConflictColumns(columns ...string) *CalendarConnectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarConnectionUpsertOne{
		create: _c,
	}
}

type (
	// CalendarConnectionUpsertOne is the builder for "upsert"-ing
	//  one CalendarConnection node.
	CalendarConnectionUpsertOne struct {
		create *CalendarConnectionCreate
	}

	// CalendarConnectionUpsert is the "OnConflict" setter.
	CalendarConnectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarConnectionUpsert) SetUpdatedAt(v time.Time) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdateUpdatedAt() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldUpdatedAt)
	return u
}

// SetPracticeID sets the "practice_id" field.
func (u *CalendarConnectionUpsert) SetPracticeID(v uuid.UUID) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldPracticeID, v)
	return u
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdatePracticeID() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldPracticeID)
	return u
}

// SetStaffID sets the "staff_id" field.
func (u *CalendarConnectionUpsert) SetStaffID(v uuid.UUID) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldStaffID, v)
	return u
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdateStaffID() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldStaffID)
	return u
}

// SetProvider sets the "provider" field.
func (u *CalendarConnectionUpsert) SetProvider(v calendarconnection.Provider) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdateProvider() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldProvider)
	return u
}

// SetAccountEmail sets the "account_email" field.
func (u *CalendarConnectionUpsert) SetAccountEmail(v string) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldAccountEmail, v)
	return u
}

// UpdateAccountEmail sets the "account_email" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdateAccountEmail() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldAccountEmail)
	return u
}

// SetRefreshTokenEnc sets the "refresh_token_enc" field.
func (u *CalendarConnectionUpsert) SetRefreshTokenEnc(v string) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldRefreshTokenEnc, v)
	return u
}

// UpdateRefreshTokenEnc sets the "refresh_token_enc" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdateRefreshTokenEnc() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldRefreshTokenEnc)
	return u
}

// SetStatus sets the "status" field.
func (u *CalendarConnectionUpsert) SetStatus(v calendarconnection.Status) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdateStatus() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldStatus)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *CalendarConnectionUpsert) SetIsActive(v bool) *CalendarConnectionUpsert {
	u.Set(calendarconnection.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *CalendarConnectionUpsert) UpdateIsActive() *CalendarConnectionUpsert {
	u.SetExcluded(calendarconnection.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CalendarConnection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarconnection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarConnectionUpsertOne) UpdateNewValues() *CalendarConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(calendarconnection.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(calendarconnection.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarConnection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalendarConnectionUpsertOne) Ignore() *CalendarConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarConnectionUpsertOne) DoNothing() *CalendarConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarConnectionCreate.OnConflict
// documentation for more info.
func (u *CalendarConnectionUpsertOne) Update(set func(*CalendarConnectionUpsert)) *CalendarConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarConnectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarConnectionUpsertOne) SetUpdatedAt(v time.Time) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdateUpdatedAt() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *CalendarConnectionUpsertOne) SetPracticeID(v uuid.UUID) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdatePracticeID() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *CalendarConnectionUpsertOne) SetStaffID(v uuid.UUID) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdateStaffID() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateStaffID()
	})
}

// SetProvider sets the "provider" field.
func (u *CalendarConnectionUpsertOne) SetProvider(v calendarconnection.Provider) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdateProvider() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateProvider()
	})
}

// SetAccountEmail sets the "account_email" field.
func (u *CalendarConnectionUpsertOne) SetAccountEmail(v string) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetAccountEmail(v)
	})
}

// UpdateAccountEmail sets the "account_email" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdateAccountEmail() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateAccountEmail()
	})
}

// SetRefreshTokenEnc sets the "refresh_token_enc" field.
func (u *CalendarConnectionUpsertOne) SetRefreshTokenEnc(v string) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetRefreshTokenEnc(v)
	})
}

// UpdateRefreshTokenEnc sets the "refresh_token_enc" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdateRefreshTokenEnc() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateRefreshTokenEnc()
	})
}

// SetStatus sets the "status" field.
func (u *CalendarConnectionUpsertOne) SetStatus(v calendarconnection.Status) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdateStatus() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateStatus()
	})
}

// SetIsActive sets the "is_active" field.
func (u *CalendarConnectionUpsertOne) SetIsActive(v bool) *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *CalendarConnectionUpsertOne) UpdateIsActive() *CalendarConnectionUpsertOne {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *CalendarConnectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CalendarConnectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarConnectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalendarConnectionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CalendarConnectionUpsertOne.ID is not supported by MySQL driver. Use CalendarConnectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalendarConnectionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalendarConnectionCreateBulk is the builder for creating many CalendarConnection entities in bulk.
type CalendarConnectionCreateBulk struct {
	config
	err      error
	builders []*CalendarConnectionCreate
	conflict []sql.ConflictOption
}

// Save creates the CalendarConnection entities in the database.
func (_c *CalendarConnectionCreateBulk) Save(ctx context.Context) ([]*CalendarConnection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarConnection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarConnectionMutation)
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
func (_c *CalendarConnectionCreateBulk) SaveX(ctx context.Context) []*CalendarConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarConnectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarConnectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalendarConnection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarConnectionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarConnectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalendarConnectionUpsertBulk {
	_c.conflict = opts
	return &CalendarConnectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarConnection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarConnectionCreateBulk) OnConflictColumns(columns ...string) *CalendarConnectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarConnectionUpsertBulk{
		create: _c,
	}
}

// CalendarConnectionUpsertBulk is the builder for "upsert"-ing
// a bulk of CalendarConnection nodes.
type CalendarConnectionUpsertBulk struct {
	create *CalendarConnectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalendarConnection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarconnection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarConnectionUpsertBulk) UpdateNewValues() *CalendarConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(calendarconnection.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(calendarconnection.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarConnection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalendarConnectionUpsertBulk) Ignore() *CalendarConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarConnectionUpsertBulk) DoNothing() *CalendarConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarConnectionCreateBulk.OnConflict
// documentation for more info.
func (u *CalendarConnectionUpsertBulk) Update(set func(*CalendarConnectionUpsert)) *CalendarConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarConnectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarConnectionUpsertBulk) SetUpdatedAt(v time.Time) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdateUpdatedAt() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *CalendarConnectionUpsertBulk) SetPracticeID(v uuid.UUID) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdatePracticeID() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdatePracticeID()
	})
}

// SetStaffID sets the "staff_id" field.
func (u *CalendarConnectionUpsertBulk) SetStaffID(v uuid.UUID) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetStaffID(v)
	})
}

// UpdateStaffID sets the "staff_id" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdateStaffID() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateStaffID()
	})
}

// SetProvider sets the "provider" field.
func (u *CalendarConnectionUpsertBulk) SetProvider(v calendarconnection.Provider) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdateProvider() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateProvider()
	})
}

// SetAccountEmail sets the "account_email" field.
func (u *CalendarConnectionUpsertBulk) SetAccountEmail(v string) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetAccountEmail(v)
	})
}

// UpdateAccountEmail sets the "account_email" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdateAccountEmail() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateAccountEmail()
	})
}

// SetRefreshTokenEnc sets the "refresh_token_enc" field.
func (u *CalendarConnectionUpsertBulk) SetRefreshTokenEnc(v string) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetRefreshTokenEnc(v)
	})
}

// UpdateRefreshTokenEnc sets the "refresh_token_enc" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdateRefreshTokenEnc() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateRefreshTokenEnc()
	})
}

// SetStatus sets the "status" field.
func (u *CalendarConnectionUpsertBulk) SetStatus(v calendarconnection.Status) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdateStatus() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateStatus()
	})
}

// SetIsActive sets the "is_active" field.
func (u *CalendarConnectionUpsertBulk) SetIsActive(v bool) *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *CalendarConnectionUpsertBulk) UpdateIsActive() *CalendarConnectionUpsertBulk {
	return u.Update(func(s *CalendarConnectionUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *CalendarConnectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CalendarConnectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CalendarConnectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarConnectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

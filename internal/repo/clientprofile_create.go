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
	"github.com/juniperhealth/juniper_backend/internal/repo/clientprofile"
)

// ClientProfileCreate is the builder for creating a ClientProfile entity.
type ClientProfileCreate struct {
	config
	mutation *ClientProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientProfileCreate) SetCreatedAt(v time.Time) *ClientProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableCreatedAt(v *time.Time) *ClientProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClientProfileCreate) SetUpdatedAt(v time.Time) *ClientProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableUpdatedAt(v *time.Time) *ClientProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClientProfileCreate) SetDeletedAt(v time.Time) *ClientProfileCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableDeletedAt(v *time.Time) *ClientProfileCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPracticeID sets the "practice_id" field.
func (_c *ClientProfileCreate) SetPracticeID(v uuid.UUID) *ClientProfileCreate {
	_c.mutation.SetPracticeID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *ClientProfileCreate) SetFirstName(v string) *ClientProfileCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *ClientProfileCreate) SetLastName(v string) *ClientProfileCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ClientProfileCreate) SetEmail(v string) *ClientProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableEmail(v *string) *ClientProfileCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClientProfileCreate) SetPhone(v string) *ClientProfileCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillablePhone(v *string) *ClientProfileCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ClientProfileCreate) SetIsActive(v bool) *ClientProfileCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableIsActive(v *bool) *ClientProfileCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClientProfileCreate) SetID(v uuid.UUID) *ClientProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableID(v *uuid.UUID) *ClientProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ClientProfileMutation object of the builder.
func (_c *ClientProfileCreate) Mutation() *ClientProfileMutation {
	return _c.mutation
}

// Save creates the ClientProfile in the database.
func (_c *ClientProfileCreate) Save(ctx context.Context) (*ClientProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientProfileCreate) SaveX(ctx context.Context) *ClientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clientprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := clientprofile.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clientprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClientProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClientProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.PracticeID(); !ok {
		return &ValidationError{Name: "practice_id", err: errors.New(`repo: missing required field "ClientProfile.practice_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "ClientProfile.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := clientprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "ClientProfile.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := clientprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := clientprofile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := clientprofile.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ClientProfile.is_active"`)}
	}
	return nil
}

func (_c *ClientProfileCreate) sqlSave(ctx context.Context) (*ClientProfile, error) {
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

func (_c *ClientProfileCreate) createSpec() (*ClientProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientprofile.Table, sqlgraph.NewFieldSpec(clientprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clientprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(clientprofile.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.PracticeID(); ok {
		_spec.SetField(clientprofile.FieldPracticeID, field.TypeUUID, value)
		_node.PracticeID = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(clientprofile.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(clientprofile.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(clientprofile.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(clientprofile.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(clientprofile.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientProfileCreate) OnConflict(opts ...sql.ConflictOption) *ClientProfileUpsertOne {
	_c.conflict = opts
	return &ClientProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientProfileCreate) OnConflictColumns(columns ...string) *ClientProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientProfileUpsertOne{
		create: _c,
	}
}

type (
	// ClientProfileUpsertOne is the builder for "upsert"-ing
	//  one ClientProfile node.
	ClientProfileUpsertOne struct {
		create *ClientProfileCreate
	}

	// ClientProfileUpsert is the "OnConflict" setter.
	ClientProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientProfileUpsert) SetUpdatedAt(v time.Time) *ClientProfileUpsert {
	u.Set(clientprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateUpdatedAt() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClientProfileUpsert) SetDeletedAt(v time.Time) *ClientProfileUpsert {
	u.Set(clientprofile.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateDeletedAt() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClientProfileUpsert) ClearDeletedAt() *ClientProfileUpsert {
	u.SetNull(clientprofile.FieldDeletedAt)
	return u
}

// SetPracticeID sets the "practice_id" field.
func (u *ClientProfileUpsert) SetPracticeID(v uuid.UUID) *ClientProfileUpsert {
	u.Set(clientprofile.FieldPracticeID, v)
	return u
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdatePracticeID() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldPracticeID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *ClientProfileUpsert) SetFirstName(v string) *ClientProfileUpsert {
	u.Set(clientprofile.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateFirstName() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *ClientProfileUpsert) SetLastName(v string) *ClientProfileUpsert {
	u.Set(clientprofile.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateLastName() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldLastName)
	return u
}

// SetEmail sets the "email" field.
func (u *ClientProfileUpsert) SetEmail(v string) *ClientProfileUpsert {
	u.Set(clientprofile.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateEmail() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *ClientProfileUpsert) ClearEmail() *ClientProfileUpsert {
	u.SetNull(clientprofile.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *ClientProfileUpsert) SetPhone(v string) *ClientProfileUpsert {
	u.Set(clientprofile.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdatePhone() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *ClientProfileUpsert) ClearPhone() *ClientProfileUpsert {
	u.SetNull(clientprofile.FieldPhone)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ClientProfileUpsert) SetIsActive(v bool) *ClientProfileUpsert {
	u.Set(clientprofile.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateIsActive() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientProfileUpsertOne) UpdateNewValues() *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clientprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clientprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClientProfileUpsertOne) Ignore() *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientProfileUpsertOne) DoNothing() *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientProfileCreate.OnConflict
// documentation for more info.
func (u *ClientProfileUpsertOne) Update(set func(*ClientProfileUpsert)) *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientProfileUpsertOne) SetUpdatedAt(v time.Time) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateUpdatedAt() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClientProfileUpsertOne) SetDeletedAt(v time.Time) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateDeletedAt() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClientProfileUpsertOne) ClearDeletedAt() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *ClientProfileUpsertOne) SetPracticeID(v uuid.UUID) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdatePracticeID() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdatePracticeID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *ClientProfileUpsertOne) SetFirstName(v string) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateFirstName() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *ClientProfileUpsertOne) SetLastName(v string) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateLastName() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *ClientProfileUpsertOne) SetEmail(v string) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateEmail() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ClientProfileUpsertOne) ClearEmail() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ClientProfileUpsertOne) SetPhone(v string) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdatePhone() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ClientProfileUpsertOne) ClearPhone() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearPhone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClientProfileUpsertOne) SetIsActive(v bool) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateIsActive() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ClientProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClientProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClientProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClientProfileUpsertOne.ID is not supported by MySQL driver. Use ClientProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClientProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClientProfileCreateBulk is the builder for creating many ClientProfile entities in bulk.
type ClientProfileCreateBulk struct {
	config
	err      error
	builders []*ClientProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the ClientProfile entities in the database.
func (_c *ClientProfileCreateBulk) Save(ctx context.Context) ([]*ClientProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientProfileMutation)
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
func (_c *ClientProfileCreateBulk) SaveX(ctx context.Context) []*ClientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClientProfileUpsertBulk {
	_c.conflict = opts
	return &ClientProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientProfileCreateBulk) OnConflictColumns(columns ...string) *ClientProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientProfileUpsertBulk{
		create: _c,
	}
}

// ClientProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of ClientProfile nodes.
type ClientProfileUpsertBulk struct {
	create *ClientProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientProfileUpsertBulk) UpdateNewValues() *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clientprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clientprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClientProfileUpsertBulk) Ignore() *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientProfileUpsertBulk) DoNothing() *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ClientProfileUpsertBulk) Update(set func(*ClientProfileUpsert)) *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientProfileUpsertBulk) SetUpdatedAt(v time.Time) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateUpdatedAt() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClientProfileUpsertBulk) SetDeletedAt(v time.Time) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateDeletedAt() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClientProfileUpsertBulk) ClearDeletedAt() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *ClientProfileUpsertBulk) SetPracticeID(v uuid.UUID) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdatePracticeID() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdatePracticeID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *ClientProfileUpsertBulk) SetFirstName(v string) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateFirstName() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *ClientProfileUpsertBulk) SetLastName(v string) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateLastName() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *ClientProfileUpsertBulk) SetEmail(v string) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateEmail() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ClientProfileUpsertBulk) ClearEmail() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ClientProfileUpsertBulk) SetPhone(v string) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdatePhone() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ClientProfileUpsertBulk) ClearPhone() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearPhone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClientProfileUpsertBulk) SetIsActive(v bool) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateIsActive() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ClientProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClientProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClientProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

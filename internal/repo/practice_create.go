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
	"github.com/juniperhealth/juniper_backend/internal/repo/practice"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
)

// PracticeCreate is the builder for creating a Practice entity.
type PracticeCreate struct {
	config
	mutation *PracticeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeCreate) SetCreatedAt(v time.Time) *PracticeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeCreate) SetNillableCreatedAt(v *time.Time) *PracticeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PracticeCreate) SetUpdatedAt(v time.Time) *PracticeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PracticeCreate) SetNillableUpdatedAt(v *time.Time) *PracticeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PracticeCreate) SetDeletedAt(v time.Time) *PracticeCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PracticeCreate) SetNillableDeletedAt(v *time.Time) *PracticeCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PracticeCreate) SetName(v string) *PracticeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *PracticeCreate) SetSlug(v string) *PracticeCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *PracticeCreate) SetTimezone(v string) *PracticeCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *PracticeCreate) SetNillableTimezone(v *string) *PracticeCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PracticeCreate) SetPhone(v string) *PracticeCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PracticeCreate) SetNillablePhone(v *string) *PracticeCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *PracticeCreate) SetAddress(v string) *PracticeCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PracticeCreate) SetNillableAddress(v *string) *PracticeCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PracticeCreate) SetIsActive(v bool) *PracticeCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PracticeCreate) SetNillableIsActive(v *bool) *PracticeCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeCreate) SetID(v uuid.UUID) *PracticeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PracticeCreate) SetNillableID(v *uuid.UUID) *PracticeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddStaffIDs adds the "staff" edge to the StaffMember entity by IDs.
func (_c *PracticeCreate) AddStaffIDs(ids ...uuid.UUID) *PracticeCreate {
	_c.mutation.AddStaffIDs(ids...)
	return _c
}

// AddStaff adds the "staff" edges to the StaffMember entity.
func (_c *PracticeCreate) AddStaff(v ...*StaffMember) *PracticeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStaffIDs(ids...)
}

// Mutation returns the PracticeMutation object of the builder.
func (_c *PracticeCreate) Mutation() *PracticeMutation {
	return _c.mutation
}

// Save creates the Practice in the database.
func (_c *PracticeCreate) Save(ctx context.Context) (*Practice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeCreate) SaveX(ctx context.Context) *Practice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := practice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := practice.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := practice.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := practice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Practice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Practice.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Practice.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := practice.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Practice.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Practice.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := practice.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Practice.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Practice.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := practice.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Practice.timezone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := practice.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Practice.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Practice.is_active"`)}
	}
	return nil
}

func (_c *PracticeCreate) sqlSave(ctx context.Context) (*Practice, error) {
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

func (_c *PracticeCreate) createSpec() (*Practice, *sqlgraph.CreateSpec) {
	var (
		_node = &Practice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practice.Table, sqlgraph.NewFieldSpec(practice.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(practice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(practice.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(practice.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(practice.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(practice.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(practice.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(practice.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(practice.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.StaffIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   practice.StaffTable,
			Columns: []string{practice.StaffColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(staffmember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Practice.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeCreate) OnConflict(opts ...sql.ConflictOption) *PracticeUpsertOne {
	_c.conflict = opts
	return &PracticeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Practice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeCreate) OnConflictColumns(columns ...string) *PracticeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeUpsertOne{
		create: _c,
	}
}

type (
	// PracticeUpsertOne is the builder for "upsert"-ing
	//  one Practice node.
	PracticeUpsertOne struct {
		create *PracticeCreate
	}

	// PracticeUpsert is the "OnConflict" setter.
	PracticeUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PracticeUpsert) SetUpdatedAt(v time.Time) *PracticeUpsert {
	u.Set(practice.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PracticeUpsert) UpdateUpdatedAt() *PracticeUpsert {
	u.SetExcluded(practice.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PracticeUpsert) SetDeletedAt(v time.Time) *PracticeUpsert {
	u.Set(practice.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PracticeUpsert) UpdateDeletedAt() *PracticeUpsert {
	u.SetExcluded(practice.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PracticeUpsert) ClearDeletedAt() *PracticeUpsert {
	u.SetNull(practice.FieldDeletedAt)
	return u
}

// SetName sets the "name" field.
func (u *PracticeUpsert) SetName(v string) *PracticeUpsert {
	u.Set(practice.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PracticeUpsert) UpdateName() *PracticeUpsert {
	u.SetExcluded(practice.FieldName)
	return u
}

// SetSlug sets the "slug" field.
func (u *PracticeUpsert) SetSlug(v string) *PracticeUpsert {
	u.Set(practice.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *PracticeUpsert) UpdateSlug() *PracticeUpsert {
	u.SetExcluded(practice.FieldSlug)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *PracticeUpsert) SetTimezone(v string) *PracticeUpsert {
	u.Set(practice.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PracticeUpsert) UpdateTimezone() *PracticeUpsert {
	u.SetExcluded(practice.FieldTimezone)
	return u
}

// SetPhone sets the "phone" field.
func (u *PracticeUpsert) SetPhone(v string) *PracticeUpsert {
	u.Set(practice.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PracticeUpsert) UpdatePhone() *PracticeUpsert {
	u.SetExcluded(practice.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *PracticeUpsert) ClearPhone() *PracticeUpsert {
	u.SetNull(practice.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *PracticeUpsert) SetAddress(v string) *PracticeUpsert {
	u.Set(practice.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PracticeUpsert) UpdateAddress() *PracticeUpsert {
	u.SetExcluded(practice.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *PracticeUpsert) ClearAddress() *PracticeUpsert {
	u.SetNull(practice.FieldAddress)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PracticeUpsert) SetIsActive(v bool) *PracticeUpsert {
	u.Set(practice.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PracticeUpsert) UpdateIsActive() *PracticeUpsert {
	u.SetExcluded(practice.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Practice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(practice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PracticeUpsertOne) UpdateNewValues() *PracticeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(practice.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(practice.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Practice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PracticeUpsertOne) Ignore() *PracticeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeUpsertOne) DoNothing() *PracticeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeCreate.OnConflict
// documentation for more info.
func (u *PracticeUpsertOne) Update(set func(*PracticeUpsert)) *PracticeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PracticeUpsertOne) SetUpdatedAt(v time.Time) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdateUpdatedAt() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PracticeUpsertOne) SetDeletedAt(v time.Time) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdateDeletedAt() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PracticeUpsertOne) ClearDeletedAt() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *PracticeUpsertOne) SetName(v string) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdateName() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *PracticeUpsertOne) SetSlug(v string) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdateSlug() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateSlug()
	})
}

// SetTimezone sets the "timezone" field.
func (u *PracticeUpsertOne) SetTimezone(v string) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdateTimezone() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateTimezone()
	})
}

// SetPhone sets the "phone" field.
func (u *PracticeUpsertOne) SetPhone(v string) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdatePhone() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PracticeUpsertOne) ClearPhone() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *PracticeUpsertOne) SetAddress(v string) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdateAddress() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PracticeUpsertOne) ClearAddress() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.ClearAddress()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PracticeUpsertOne) SetIsActive(v bool) *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PracticeUpsertOne) UpdateIsActive() *PracticeUpsertOne {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PracticeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PracticeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PracticeUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PracticeUpsertOne.ID is not supported by MySQL driver. Use PracticeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PracticeUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PracticeCreateBulk is the builder for creating many Practice entities in bulk.
type PracticeCreateBulk struct {
	config
	err      error
	builders []*PracticeCreate
	conflict []sql.ConflictOption
}

// Save creates the Practice entities in the database.
func (_c *PracticeCreateBulk) Save(ctx context.Context) ([]*Practice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Practice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeMutation)
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
func (_c *PracticeCreateBulk) SaveX(ctx context.Context) []*Practice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Practice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeCreateBulk) OnConflict(opts ...sql.ConflictOption) *PracticeUpsertBulk {
	_c.conflict = opts
	return &PracticeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Practice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeCreateBulk) OnConflictColumns(columns ...string) *PracticeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeUpsertBulk{
		create: _c,
	}
}

// PracticeUpsertBulk is the builder for "upsert"-ing
// a bulk of Practice nodes.
type PracticeUpsertBulk struct {
	create *PracticeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Practice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(practice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PracticeUpsertBulk) UpdateNewValues() *PracticeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(practice.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(practice.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Practice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PracticeUpsertBulk) Ignore() *PracticeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeUpsertBulk) DoNothing() *PracticeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeCreateBulk.OnConflict
// documentation for more info.
func (u *PracticeUpsertBulk) Update(set func(*PracticeUpsert)) *PracticeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PracticeUpsertBulk) SetUpdatedAt(v time.Time) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdateUpdatedAt() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PracticeUpsertBulk) SetDeletedAt(v time.Time) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdateDeletedAt() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PracticeUpsertBulk) ClearDeletedAt() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *PracticeUpsertBulk) SetName(v string) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdateName() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *PracticeUpsertBulk) SetSlug(v string) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdateSlug() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateSlug()
	})
}

// SetTimezone sets the "timezone" field.
func (u *PracticeUpsertBulk) SetTimezone(v string) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdateTimezone() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateTimezone()
	})
}

// SetPhone sets the "phone" field.
func (u *PracticeUpsertBulk) SetPhone(v string) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdatePhone() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PracticeUpsertBulk) ClearPhone() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *PracticeUpsertBulk) SetAddress(v string) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdateAddress() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *PracticeUpsertBulk) ClearAddress() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.ClearAddress()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PracticeUpsertBulk) SetIsActive(v bool) *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PracticeUpsertBulk) UpdateIsActive() *PracticeUpsertBulk {
	return u.Update(func(s *PracticeUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PracticeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PracticeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PracticeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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

// StaffMemberCreate is the builder for creating a StaffMember entity.
type StaffMemberCreate struct {
	config
	mutation *StaffMemberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StaffMemberCreate) SetCreatedAt(v time.Time) *StaffMemberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StaffMemberCreate) SetNillableCreatedAt(v *time.Time) *StaffMemberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StaffMemberCreate) SetUpdatedAt(v time.Time) *StaffMemberCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StaffMemberCreate) SetNillableUpdatedAt(v *time.Time) *StaffMemberCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPracticeID sets the "practice_id" field.
func (_c *StaffMemberCreate) SetPracticeID(v uuid.UUID) *StaffMemberCreate {
	_c.mutation.SetPracticeID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *StaffMemberCreate) SetFirstName(v string) *StaffMemberCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *StaffMemberCreate) SetLastName(v string) *StaffMemberCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *StaffMemberCreate) SetEmail(v string) *StaffMemberCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *StaffMemberCreate) SetPasswordHash(v string) *StaffMemberCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *StaffMemberCreate) SetRole(v staffmember.Role) *StaffMemberCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *StaffMemberCreate) SetNillableRole(v *staffmember.Role) *StaffMemberCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetLicenseNumber sets the "license_number" field.
func (_c *StaffMemberCreate) SetLicenseNumber(v string) *StaffMemberCreate {
	_c.mutation.SetLicenseNumber(v)
	return _c
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_c *StaffMemberCreate) SetNillableLicenseNumber(v *string) *StaffMemberCreate {
	if v != nil {
		_c.SetLicenseNumber(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *StaffMemberCreate) SetIsActive(v bool) *StaffMemberCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *StaffMemberCreate) SetNillableIsActive(v *bool) *StaffMemberCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StaffMemberCreate) SetID(v uuid.UUID) *StaffMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StaffMemberCreate) SetNillableID(v *uuid.UUID) *StaffMemberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPractice sets the "practice" edge to the Practice entity.
func (_c *StaffMemberCreate) SetPractice(v *Practice) *StaffMemberCreate {
	return _c.SetPracticeID(v.ID)
}

// Mutation returns the StaffMemberMutation object of the builder.
func (_c *StaffMemberCreate) Mutation() *StaffMemberMutation {
	return _c.mutation
}

// Save creates the StaffMember in the database.
func (_c *StaffMemberCreate) Save(ctx context.Context) (*StaffMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StaffMemberCreate) SaveX(ctx context.Context) *StaffMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StaffMemberCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staffmember.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staffmember.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := staffmember.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := staffmember.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := staffmember.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StaffMemberCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StaffMember.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "StaffMember.updated_at"`)}
	}
	if _, ok := _c.mutation.PracticeID(); !ok {
		return &ValidationError{Name: "practice_id", err: errors.New(`repo: missing required field "StaffMember.practice_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "StaffMember.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := staffmember.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "StaffMember.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "StaffMember.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := staffmember.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "StaffMember.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "StaffMember.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := staffmember.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "StaffMember.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`repo: missing required field "StaffMember.password_hash"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "StaffMember.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := staffmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "StaffMember.role": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LicenseNumber(); ok {
		if err := staffmember.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "StaffMember.license_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "StaffMember.is_active"`)}
	}
	if len(_c.mutation.PracticeIDs()) == 0 {
		return &ValidationError{Name: "practice", err: errors.New(`repo: missing required edge "StaffMember.practice"`)}
	}
	return nil
}

func (_c *StaffMemberCreate) sqlSave(ctx context.Context) (*StaffMember, error) {
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

func (_c *StaffMemberCreate) createSpec() (*StaffMember, *sqlgraph.CreateSpec) {
	var (
		_node = &StaffMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staffmember.Table, sqlgraph.NewFieldSpec(staffmember.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staffmember.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staffmember.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(staffmember.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(staffmember.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(staffmember.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(staffmember.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(staffmember.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.LicenseNumber(); ok {
		_spec.SetField(staffmember.FieldLicenseNumber, field.TypeString, value)
		_node.LicenseNumber = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(staffmember.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.PracticeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   staffmember.PracticeTable,
			Columns: []string{staffmember.PracticeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(practice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PracticeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StaffMember.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffMemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffMemberCreate) OnConflict(opts ...sql.ConflictOption) *StaffMemberUpsertOne {
	_c.conflict = opts
	return &StaffMemberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaffMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffMemberCreate) OnConflictColumns(columns ...string) *StaffMemberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffMemberUpsertOne{
		create: _c,
	}
}

type (
	// StaffMemberUpsertOne is the builder for "upsert"-ing
	//  one StaffMember node.
	StaffMemberUpsertOne struct {
		create *StaffMemberCreate
	}

	// StaffMemberUpsert is the "OnConflict" setter.
	StaffMemberUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffMemberUpsert) SetUpdatedAt(v time.Time) *StaffMemberUpsert {
	u.Set(staffmember.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdateUpdatedAt() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldUpdatedAt)
	return u
}

// SetPracticeID sets the "practice_id" field.
func (u *StaffMemberUpsert) SetPracticeID(v uuid.UUID) *StaffMemberUpsert {
	u.Set(staffmember.FieldPracticeID, v)
	return u
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdatePracticeID() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldPracticeID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *StaffMemberUpsert) SetFirstName(v string) *StaffMemberUpsert {
	u.Set(staffmember.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdateFirstName() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *StaffMemberUpsert) SetLastName(v string) *StaffMemberUpsert {
	u.Set(staffmember.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdateLastName() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldLastName)
	return u
}

// SetEmail sets the "email" field.
func (u *StaffMemberUpsert) SetEmail(v string) *StaffMemberUpsert {
	u.Set(staffmember.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdateEmail() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffMemberUpsert) SetPasswordHash(v string) *StaffMemberUpsert {
	u.Set(staffmember.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdatePasswordHash() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldPasswordHash)
	return u
}

// SetRole sets the "role" field.
func (u *StaffMemberUpsert) SetRole(v staffmember.Role) *StaffMemberUpsert {
	u.Set(staffmember.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdateRole() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldRole)
	return u
}

// SetLicenseNumber sets the "license_number" field.
func (u *StaffMemberUpsert) SetLicenseNumber(v string) *StaffMemberUpsert {
	u.Set(staffmember.FieldLicenseNumber, v)
	return u
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdateLicenseNumber() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldLicenseNumber)
	return u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *StaffMemberUpsert) ClearLicenseNumber() *StaffMemberUpsert {
	u.SetNull(staffmember.FieldLicenseNumber)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *StaffMemberUpsert) SetIsActive(v bool) *StaffMemberUpsert {
	u.Set(staffmember.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StaffMemberUpsert) UpdateIsActive() *StaffMemberUpsert {
	u.SetExcluded(staffmember.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StaffMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staffmember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaffMemberUpsertOne) UpdateNewValues() *StaffMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(staffmember.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(staffmember.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaffMember.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StaffMemberUpsertOne) Ignore() *StaffMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffMemberUpsertOne) DoNothing() *StaffMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffMemberCreate.OnConflict
// documentation for more info.
func (u *StaffMemberUpsertOne) Update(set func(*StaffMemberUpsert)) *StaffMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffMemberUpsertOne) SetUpdatedAt(v time.Time) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdateUpdatedAt() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *StaffMemberUpsertOne) SetPracticeID(v uuid.UUID) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdatePracticeID() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdatePracticeID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *StaffMemberUpsertOne) SetFirstName(v string) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdateFirstName() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *StaffMemberUpsertOne) SetLastName(v string) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdateLastName() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *StaffMemberUpsertOne) SetEmail(v string) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdateEmail() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffMemberUpsertOne) SetPasswordHash(v string) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdatePasswordHash() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetRole sets the "role" field.
func (u *StaffMemberUpsertOne) SetRole(v staffmember.Role) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdateRole() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateRole()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *StaffMemberUpsertOne) SetLicenseNumber(v string) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdateLicenseNumber() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateLicenseNumber()
	})
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *StaffMemberUpsertOne) ClearLicenseNumber() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.ClearLicenseNumber()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StaffMemberUpsertOne) SetIsActive(v bool) *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StaffMemberUpsertOne) UpdateIsActive() *StaffMemberUpsertOne {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *StaffMemberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StaffMemberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffMemberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StaffMemberUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StaffMemberUpsertOne.ID is not supported by MySQL driver. Use StaffMemberUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StaffMemberUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StaffMemberCreateBulk is the builder for creating many StaffMember entities in bulk.
type StaffMemberCreateBulk struct {
	config
	err      error
	builders []*StaffMemberCreate
	conflict []sql.ConflictOption
}

// Save creates the StaffMember entities in the database.
func (_c *StaffMemberCreateBulk) Save(ctx context.Context) ([]*StaffMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StaffMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StaffMemberMutation)
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
func (_c *StaffMemberCreateBulk) SaveX(ctx context.Context) []*StaffMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StaffMember.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffMemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffMemberCreateBulk) OnConflict(opts ...sql.ConflictOption) *StaffMemberUpsertBulk {
	_c.conflict = opts
	return &StaffMemberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaffMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffMemberCreateBulk) OnConflictColumns(columns ...string) *StaffMemberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffMemberUpsertBulk{
		create: _c,
	}
}

// StaffMemberUpsertBulk is the builder for "upsert"-ing
// a bulk of StaffMember nodes.
type StaffMemberUpsertBulk struct {
	create *StaffMemberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StaffMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staffmember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaffMemberUpsertBulk) UpdateNewValues() *StaffMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(staffmember.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(staffmember.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaffMember.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StaffMemberUpsertBulk) Ignore() *StaffMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffMemberUpsertBulk) DoNothing() *StaffMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffMemberCreateBulk.OnConflict
// documentation for more info.
func (u *StaffMemberUpsertBulk) Update(set func(*StaffMemberUpsert)) *StaffMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffMemberUpsertBulk) SetUpdatedAt(v time.Time) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdateUpdatedAt() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPracticeID sets the "practice_id" field.
func (u *StaffMemberUpsertBulk) SetPracticeID(v uuid.UUID) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetPracticeID(v)
	})
}

// UpdatePracticeID sets the "practice_id" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdatePracticeID() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdatePracticeID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *StaffMemberUpsertBulk) SetFirstName(v string) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdateFirstName() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *StaffMemberUpsertBulk) SetLastName(v string) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdateLastName() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *StaffMemberUpsertBulk) SetEmail(v string) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdateEmail() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffMemberUpsertBulk) SetPasswordHash(v string) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdatePasswordHash() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetRole sets the "role" field.
func (u *StaffMemberUpsertBulk) SetRole(v staffmember.Role) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdateRole() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateRole()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *StaffMemberUpsertBulk) SetLicenseNumber(v string) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdateLicenseNumber() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateLicenseNumber()
	})
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *StaffMemberUpsertBulk) ClearLicenseNumber() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.ClearLicenseNumber()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StaffMemberUpsertBulk) SetIsActive(v bool) *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StaffMemberUpsertBulk) UpdateIsActive() *StaffMemberUpsertBulk {
	return u.Update(func(s *StaffMemberUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *StaffMemberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StaffMemberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StaffMemberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffMemberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/juniperhealth/juniper_backend/internal/repo/practice"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
	"github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
)

// StaffMemberUpdate is the builder for updating StaffMember entities.
type StaffMemberUpdate struct {
	config
	hooks    []Hook
	mutation *StaffMemberMutation
}

// Where appends a list predicates to the StaffMemberUpdate builder.
func (_u *StaffMemberUpdate) Where(ps ...predicate.StaffMember) *StaffMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaffMemberUpdate) SetUpdatedAt(v time.Time) *StaffMemberUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *StaffMemberUpdate) SetPracticeID(v uuid.UUID) *StaffMemberUpdate {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillablePracticeID(v *uuid.UUID) *StaffMemberUpdate {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *StaffMemberUpdate) SetFirstName(v string) *StaffMemberUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillableFirstName(v *string) *StaffMemberUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *StaffMemberUpdate) SetLastName(v string) *StaffMemberUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillableLastName(v *string) *StaffMemberUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *StaffMemberUpdate) SetEmail(v string) *StaffMemberUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillableEmail(v *string) *StaffMemberUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *StaffMemberUpdate) SetPasswordHash(v string) *StaffMemberUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillablePasswordHash(v *string) *StaffMemberUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *StaffMemberUpdate) SetRole(v staffmember.Role) *StaffMemberUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillableRole(v *staffmember.Role) *StaffMemberUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *StaffMemberUpdate) SetLicenseNumber(v string) *StaffMemberUpdate {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillableLicenseNumber(v *string) *StaffMemberUpdate {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (_u *StaffMemberUpdate) ClearLicenseNumber() *StaffMemberUpdate {
	_u.mutation.ClearLicenseNumber()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StaffMemberUpdate) SetIsActive(v bool) *StaffMemberUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StaffMemberUpdate) SetNillableIsActive(v *bool) *StaffMemberUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPractice sets the "practice" edge to the Practice entity.
func (_u *StaffMemberUpdate) SetPractice(v *Practice) *StaffMemberUpdate {
	return _u.SetPracticeID(v.ID)
}

// Mutation returns the StaffMemberMutation object of the builder.
func (_u *StaffMemberUpdate) Mutation() *StaffMemberMutation {
	return _u.mutation
}

// ClearPractice clears the "practice" edge to the Practice entity.
func (_u *StaffMemberUpdate) ClearPractice() *StaffMemberUpdate {
	_u.mutation.ClearPractice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StaffMemberUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StaffMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaffMemberUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staffmember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StaffMemberUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := staffmember.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "StaffMember.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := staffmember.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "StaffMember.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := staffmember.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "StaffMember.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := staffmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "StaffMember.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := staffmember.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "StaffMember.license_number": %w`, err)}
		}
	}
	if _u.mutation.PracticeCleared() && len(_u.mutation.PracticeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StaffMember.practice"`)
	}
	return nil
}

func (_u *StaffMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staffmember.Table, staffmember.Columns, sqlgraph.NewFieldSpec(staffmember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staffmember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(staffmember.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(staffmember.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(staffmember.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(staffmember.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(staffmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(staffmember.FieldLicenseNumber, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberCleared() {
		_spec.ClearField(staffmember.FieldLicenseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(staffmember.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.PracticeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PracticeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StaffMemberUpdateOne is the builder for updating a single StaffMember entity.
type StaffMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaffMemberMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaffMemberUpdateOne) SetUpdatedAt(v time.Time) *StaffMemberUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *StaffMemberUpdateOne) SetPracticeID(v uuid.UUID) *StaffMemberUpdateOne {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillablePracticeID(v *uuid.UUID) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *StaffMemberUpdateOne) SetFirstName(v string) *StaffMemberUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillableFirstName(v *string) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *StaffMemberUpdateOne) SetLastName(v string) *StaffMemberUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillableLastName(v *string) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *StaffMemberUpdateOne) SetEmail(v string) *StaffMemberUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillableEmail(v *string) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *StaffMemberUpdateOne) SetPasswordHash(v string) *StaffMemberUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillablePasswordHash(v *string) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *StaffMemberUpdateOne) SetRole(v staffmember.Role) *StaffMemberUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillableRole(v *staffmember.Role) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *StaffMemberUpdateOne) SetLicenseNumber(v string) *StaffMemberUpdateOne {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillableLicenseNumber(v *string) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (_u *StaffMemberUpdateOne) ClearLicenseNumber() *StaffMemberUpdateOne {
	_u.mutation.ClearLicenseNumber()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StaffMemberUpdateOne) SetIsActive(v bool) *StaffMemberUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StaffMemberUpdateOne) SetNillableIsActive(v *bool) *StaffMemberUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPractice sets the "practice" edge to the Practice entity.
func (_u *StaffMemberUpdateOne) SetPractice(v *Practice) *StaffMemberUpdateOne {
	return _u.SetPracticeID(v.ID)
}

// Mutation returns the StaffMemberMutation object of the builder.
func (_u *StaffMemberUpdateOne) Mutation() *StaffMemberMutation {
	return _u.mutation
}

// ClearPractice clears the "practice" edge to the Practice entity.
func (_u *StaffMemberUpdateOne) ClearPractice() *StaffMemberUpdateOne {
	_u.mutation.ClearPractice()
	return _u
}

// Where appends a list predicates to the StaffMemberUpdate builder.
func (_u *StaffMemberUpdateOne) Where(ps ...predicate.StaffMember) *StaffMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StaffMemberUpdateOne) Select(field string, fields ...string) *StaffMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StaffMember entity.
func (_u *StaffMemberUpdateOne) Save(ctx context.Context) (*StaffMember, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffMemberUpdateOne) SaveX(ctx context.Context) *StaffMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StaffMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaffMemberUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staffmember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StaffMemberUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := staffmember.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "StaffMember.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := staffmember.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "StaffMember.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := staffmember.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "StaffMember.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := staffmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "StaffMember.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := staffmember.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "StaffMember.license_number": %w`, err)}
		}
	}
	if _u.mutation.PracticeCleared() && len(_u.mutation.PracticeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StaffMember.practice"`)
	}
	return nil
}

func (_u *StaffMemberUpdateOne) sqlSave(ctx context.Context) (_node *StaffMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staffmember.Table, staffmember.Columns, sqlgraph.NewFieldSpec(staffmember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StaffMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staffmember.FieldID)
		for _, f := range fields {
			if !staffmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != staffmember.FieldID {
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
		_spec.SetField(staffmember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(staffmember.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(staffmember.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(staffmember.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(staffmember.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(staffmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(staffmember.FieldLicenseNumber, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberCleared() {
		_spec.ClearField(staffmember.FieldLicenseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(staffmember.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.PracticeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PracticeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StaffMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

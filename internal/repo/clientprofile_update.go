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
	"github.com/juniperhealth/juniper_backend/internal/repo/clientprofile"
	"github.com/juniperhealth/juniper_backend/internal/repo/predicate"
)

// ClientProfileUpdate is the builder for updating ClientProfile entities.
type ClientProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ClientProfileMutation
}

// Where appends a list predicates to the ClientProfileUpdate builder.
func (_u *ClientProfileUpdate) Where(ps ...predicate.ClientProfile) *ClientProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientProfileUpdate) SetUpdatedAt(v time.Time) *ClientProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClientProfileUpdate) SetDeletedAt(v time.Time) *ClientProfileUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableDeletedAt(v *time.Time) *ClientProfileUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClientProfileUpdate) ClearDeletedAt() *ClientProfileUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *ClientProfileUpdate) SetPracticeID(v uuid.UUID) *ClientProfileUpdate {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillablePracticeID(v *uuid.UUID) *ClientProfileUpdate {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ClientProfileUpdate) SetFirstName(v string) *ClientProfileUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableFirstName(v *string) *ClientProfileUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ClientProfileUpdate) SetLastName(v string) *ClientProfileUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableLastName(v *string) *ClientProfileUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClientProfileUpdate) SetEmail(v string) *ClientProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableEmail(v *string) *ClientProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClientProfileUpdate) ClearEmail() *ClientProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClientProfileUpdate) SetPhone(v string) *ClientProfileUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillablePhone(v *string) *ClientProfileUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClientProfileUpdate) ClearPhone() *ClientProfileUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClientProfileUpdate) SetIsActive(v bool) *ClientProfileUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableIsActive(v *bool) *ClientProfileUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ClientProfileMutation object of the builder.
func (_u *ClientProfileUpdate) Mutation() *ClientProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientProfileUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := clientprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := clientprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clientprofile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clientprofile.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientprofile.Table, clientprofile.Columns, sqlgraph.NewFieldSpec(clientprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clientprofile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clientprofile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(clientprofile.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(clientprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(clientprofile.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clientprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clientprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clientprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clientprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clientprofile.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientProfileUpdateOne is the builder for updating a single ClientProfile entity.
type ClientProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientProfileUpdateOne) SetUpdatedAt(v time.Time) *ClientProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClientProfileUpdateOne) SetDeletedAt(v time.Time) *ClientProfileUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableDeletedAt(v *time.Time) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClientProfileUpdateOne) ClearDeletedAt() *ClientProfileUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPracticeID sets the "practice_id" field.
func (_u *ClientProfileUpdateOne) SetPracticeID(v uuid.UUID) *ClientProfileUpdateOne {
	_u.mutation.SetPracticeID(v)
	return _u
}

// SetNillablePracticeID sets the "practice_id" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillablePracticeID(v *uuid.UUID) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetPracticeID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ClientProfileUpdateOne) SetFirstName(v string) *ClientProfileUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableFirstName(v *string) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ClientProfileUpdateOne) SetLastName(v string) *ClientProfileUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableLastName(v *string) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClientProfileUpdateOne) SetEmail(v string) *ClientProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableEmail(v *string) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClientProfileUpdateOne) ClearEmail() *ClientProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClientProfileUpdateOne) SetPhone(v string) *ClientProfileUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillablePhone(v *string) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClientProfileUpdateOne) ClearPhone() *ClientProfileUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClientProfileUpdateOne) SetIsActive(v bool) *ClientProfileUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableIsActive(v *bool) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ClientProfileMutation object of the builder.
func (_u *ClientProfileUpdateOne) Mutation() *ClientProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClientProfileUpdate builder.
func (_u *ClientProfileUpdateOne) Where(ps ...predicate.ClientProfile) *ClientProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientProfileUpdateOne) Select(field string, fields ...string) *ClientProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientProfile entity.
func (_u *ClientProfileUpdateOne) Save(ctx context.Context) (*ClientProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientProfileUpdateOne) SaveX(ctx context.Context) *ClientProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientProfileUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := clientprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := clientprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clientprofile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clientprofile.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientProfileUpdateOne) sqlSave(ctx context.Context) (_node *ClientProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientprofile.Table, clientprofile.Columns, sqlgraph.NewFieldSpec(clientprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClientProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientprofile.FieldID)
		for _, f := range fields {
			if !clientprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clientprofile.FieldID {
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
		_spec.SetField(clientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clientprofile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clientprofile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PracticeID(); ok {
		_spec.SetField(clientprofile.FieldPracticeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(clientprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(clientprofile.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clientprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clientprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clientprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clientprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clientprofile.FieldIsActive, field.TypeBool, value)
	}
	_node = &ClientProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

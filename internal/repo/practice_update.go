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

// PracticeUpdate is the builder for updating Practice entities.
type PracticeUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeMutation
}

// Where appends a list predicates to the PracticeUpdate builder.
func (_u *PracticeUpdate) Where(ps ...predicate.Practice) *PracticeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeUpdate) SetUpdatedAt(v time.Time) *PracticeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PracticeUpdate) SetDeletedAt(v time.Time) *PracticeUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PracticeUpdate) SetNillableDeletedAt(v *time.Time) *PracticeUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PracticeUpdate) ClearDeletedAt() *PracticeUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *PracticeUpdate) SetName(v string) *PracticeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PracticeUpdate) SetNillableName(v *string) *PracticeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *PracticeUpdate) SetSlug(v string) *PracticeUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PracticeUpdate) SetNillableSlug(v *string) *PracticeUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *PracticeUpdate) SetTimezone(v string) *PracticeUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *PracticeUpdate) SetNillableTimezone(v *string) *PracticeUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PracticeUpdate) SetPhone(v string) *PracticeUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PracticeUpdate) SetNillablePhone(v *string) *PracticeUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PracticeUpdate) ClearPhone() *PracticeUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PracticeUpdate) SetAddress(v string) *PracticeUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PracticeUpdate) SetNillableAddress(v *string) *PracticeUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PracticeUpdate) ClearAddress() *PracticeUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PracticeUpdate) SetIsActive(v bool) *PracticeUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PracticeUpdate) SetNillableIsActive(v *bool) *PracticeUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddStaffIDs adds the "staff" edge to the StaffMember entity by IDs.
func (_u *PracticeUpdate) AddStaffIDs(ids ...uuid.UUID) *PracticeUpdate {
	_u.mutation.AddStaffIDs(ids...)
	return _u
}

// AddStaff adds the "staff" edges to the StaffMember entity.
func (_u *PracticeUpdate) AddStaff(v ...*StaffMember) *PracticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStaffIDs(ids...)
}

// Mutation returns the PracticeMutation object of the builder.
func (_u *PracticeUpdate) Mutation() *PracticeMutation {
	return _u.mutation
}

// ClearStaff clears all "staff" edges to the StaffMember entity.
func (_u *PracticeUpdate) ClearStaff() *PracticeUpdate {
	_u.mutation.ClearStaff()
	return _u
}

// RemoveStaffIDs removes the "staff" edge to StaffMember entities by IDs.
func (_u *PracticeUpdate) RemoveStaffIDs(ids ...uuid.UUID) *PracticeUpdate {
	_u.mutation.RemoveStaffIDs(ids...)
	return _u
}

// RemoveStaff removes "staff" edges to StaffMember entities.
func (_u *PracticeUpdate) RemoveStaff(v ...*StaffMember) *PracticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStaffIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := practice.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Practice.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := practice.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Practice.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := practice.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Practice.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := practice.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Practice.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practice.Table, practice.Columns, sqlgraph.NewFieldSpec(practice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(practice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(practice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(practice.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(practice.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(practice.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(practice.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(practice.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(practice.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(practice.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(practice.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStaffIDs(); len(nodes) > 0 && !_u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StaffIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeUpdateOne is the builder for updating a single Practice entity.
type PracticeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeUpdateOne) SetUpdatedAt(v time.Time) *PracticeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PracticeUpdateOne) SetDeletedAt(v time.Time) *PracticeUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PracticeUpdateOne) SetNillableDeletedAt(v *time.Time) *PracticeUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PracticeUpdateOne) ClearDeletedAt() *PracticeUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *PracticeUpdateOne) SetName(v string) *PracticeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PracticeUpdateOne) SetNillableName(v *string) *PracticeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *PracticeUpdateOne) SetSlug(v string) *PracticeUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PracticeUpdateOne) SetNillableSlug(v *string) *PracticeUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *PracticeUpdateOne) SetTimezone(v string) *PracticeUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *PracticeUpdateOne) SetNillableTimezone(v *string) *PracticeUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PracticeUpdateOne) SetPhone(v string) *PracticeUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PracticeUpdateOne) SetNillablePhone(v *string) *PracticeUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PracticeUpdateOne) ClearPhone() *PracticeUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PracticeUpdateOne) SetAddress(v string) *PracticeUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PracticeUpdateOne) SetNillableAddress(v *string) *PracticeUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PracticeUpdateOne) ClearAddress() *PracticeUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PracticeUpdateOne) SetIsActive(v bool) *PracticeUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PracticeUpdateOne) SetNillableIsActive(v *bool) *PracticeUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddStaffIDs adds the "staff" edge to the StaffMember entity by IDs.
func (_u *PracticeUpdateOne) AddStaffIDs(ids ...uuid.UUID) *PracticeUpdateOne {
	_u.mutation.AddStaffIDs(ids...)
	return _u
}

// AddStaff adds the "staff" edges to the StaffMember entity.
func (_u *PracticeUpdateOne) AddStaff(v ...*StaffMember) *PracticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStaffIDs(ids...)
}

// Mutation returns the PracticeMutation object of the builder.
func (_u *PracticeUpdateOne) Mutation() *PracticeMutation {
	return _u.mutation
}

// ClearStaff clears all "staff" edges to the StaffMember entity.
func (_u *PracticeUpdateOne) ClearStaff() *PracticeUpdateOne {
	_u.mutation.ClearStaff()
	return _u
}

// RemoveStaffIDs removes the "staff" edge to StaffMember entities by IDs.
func (_u *PracticeUpdateOne) RemoveStaffIDs(ids ...uuid.UUID) *PracticeUpdateOne {
	_u.mutation.RemoveStaffIDs(ids...)
	return _u
}

// RemoveStaff removes "staff" edges to StaffMember entities.
func (_u *PracticeUpdateOne) RemoveStaff(v ...*StaffMember) *PracticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStaffIDs(ids...)
}

// Where appends a list predicates to the PracticeUpdate builder.
func (_u *PracticeUpdateOne) Where(ps ...predicate.Practice) *PracticeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeUpdateOne) Select(field string, fields ...string) *PracticeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Practice entity.
func (_u *PracticeUpdateOne) Save(ctx context.Context) (*Practice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeUpdateOne) SaveX(ctx context.Context) *Practice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := practice.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Practice.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := practice.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Practice.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := practice.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Practice.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := practice.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Practice.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeUpdateOne) sqlSave(ctx context.Context) (_node *Practice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practice.Table, practice.Columns, sqlgraph.NewFieldSpec(practice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Practice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practice.FieldID)
		for _, f := range fields {
			if !practice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != practice.FieldID {
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
		_spec.SetField(practice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(practice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(practice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(practice.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(practice.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(practice.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(practice.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(practice.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(practice.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(practice.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(practice.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStaffIDs(); len(nodes) > 0 && !_u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StaffIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Practice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

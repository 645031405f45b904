// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/predicate"
	"github.com/vendrahq/vendra/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetParentUserID sets the "parent_user_id" field.
func (_u *UserUpdate) SetParentUserID(v string) *UserUpdate {
	_u.mutation.SetParentUserID(v)
	return _u
}

// SetNillableParentUserID sets the "parent_user_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableParentUserID(v *string) *UserUpdate {
	if v != nil {
		_u.SetParentUserID(*v)
	}
	return _u
}

// ClearParentUserID clears the value of the "parent_user_id" field.
func (_u *UserUpdate) ClearParentUserID() *UserUpdate {
	_u.mutation.ClearParentUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdate) ClearEmail() *UserUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *UserUpdate) SetPhoneNumber(v string) *UserUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePhoneNumber(v *string) *UserUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *UserUpdate) ClearPhoneNumber() *UserUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetBusinessType sets the "business_type" field.
func (_u *UserUpdate) SetBusinessType(v user.BusinessType) *UserUpdate {
	_u.mutation.SetBusinessType(v)
	return _u
}

// SetNillableBusinessType sets the "business_type" field if the given value is not nil.
func (_u *UserUpdate) SetNillableBusinessType(v *user.BusinessType) *UserUpdate {
	if v != nil {
		_u.SetBusinessType(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdate) SetTimezone(v string) *UserUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTimezone(v *string) *UserUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *UserUpdate) SetLanguage(v string) *UserUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLanguage(v *string) *UserUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *UserUpdate) ClearLanguage() *UserUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetDefaultCancelableBeforeHours sets the "default_cancelable_before_hours" field.
func (_u *UserUpdate) SetDefaultCancelableBeforeHours(v int) *UserUpdate {
	_u.mutation.ResetDefaultCancelableBeforeHours()
	_u.mutation.SetDefaultCancelableBeforeHours(v)
	return _u
}

// SetNillableDefaultCancelableBeforeHours sets the "default_cancelable_before_hours" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDefaultCancelableBeforeHours(v *int) *UserUpdate {
	if v != nil {
		_u.SetDefaultCancelableBeforeHours(*v)
	}
	return _u
}

// AddDefaultCancelableBeforeHours adds value to the "default_cancelable_before_hours" field.
func (_u *UserUpdate) AddDefaultCancelableBeforeHours(v int) *UserUpdate {
	_u.mutation.AddDefaultCancelableBeforeHours(v)
	return _u
}

// SetPlaybookURL sets the "playbook_url" field.
func (_u *UserUpdate) SetPlaybookURL(v string) *UserUpdate {
	_u.mutation.SetPlaybookURL(v)
	return _u
}

// SetNillablePlaybookURL sets the "playbook_url" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePlaybookURL(v *string) *UserUpdate {
	if v != nil {
		_u.SetPlaybookURL(*v)
	}
	return _u
}

// ClearPlaybookURL clears the value of the "playbook_url" field.
func (_u *UserUpdate) ClearPlaybookURL() *UserUpdate {
	_u.mutation.ClearPlaybookURL()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserUpdate) SetIsActive(v bool) *UserUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsActive(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessType(); ok {
		if err := user.BusinessTypeValidator(v); err != nil {
			return &ValidationError{Name: "business_type", err: fmt.Errorf(`ent: validator failed for field "User.business_type": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentUserID(); ok {
		_spec.SetField(user.FieldParentUserID, field.TypeString, value)
	}
	if _u.mutation.ParentUserIDCleared() {
		_spec.ClearField(user.FieldParentUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(user.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(user.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessType(); ok {
		_spec.SetField(user.FieldBusinessType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(user.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(user.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCancelableBeforeHours(); ok {
		_spec.SetField(user.FieldDefaultCancelableBeforeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultCancelableBeforeHours(); ok {
		_spec.AddField(user.FieldDefaultCancelableBeforeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlaybookURL(); ok {
		_spec.SetField(user.FieldPlaybookURL, field.TypeString, value)
	}
	if _u.mutation.PlaybookURLCleared() {
		_spec.ClearField(user.FieldPlaybookURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetParentUserID sets the "parent_user_id" field.
func (_u *UserUpdateOne) SetParentUserID(v string) *UserUpdateOne {
	_u.mutation.SetParentUserID(v)
	return _u
}

// SetNillableParentUserID sets the "parent_user_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableParentUserID(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetParentUserID(*v)
	}
	return _u
}

// ClearParentUserID clears the value of the "parent_user_id" field.
func (_u *UserUpdateOne) ClearParentUserID() *UserUpdateOne {
	_u.mutation.ClearParentUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdateOne) ClearEmail() *UserUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *UserUpdateOne) SetPhoneNumber(v string) *UserUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePhoneNumber(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *UserUpdateOne) ClearPhoneNumber() *UserUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetBusinessType sets the "business_type" field.
func (_u *UserUpdateOne) SetBusinessType(v user.BusinessType) *UserUpdateOne {
	_u.mutation.SetBusinessType(v)
	return _u
}

// SetNillableBusinessType sets the "business_type" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableBusinessType(v *user.BusinessType) *UserUpdateOne {
	if v != nil {
		_u.SetBusinessType(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdateOne) SetTimezone(v string) *UserUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTimezone(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *UserUpdateOne) SetLanguage(v string) *UserUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLanguage(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *UserUpdateOne) ClearLanguage() *UserUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetDefaultCancelableBeforeHours sets the "default_cancelable_before_hours" field.
func (_u *UserUpdateOne) SetDefaultCancelableBeforeHours(v int) *UserUpdateOne {
	_u.mutation.ResetDefaultCancelableBeforeHours()
	_u.mutation.SetDefaultCancelableBeforeHours(v)
	return _u
}

// SetNillableDefaultCancelableBeforeHours sets the "default_cancelable_before_hours" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDefaultCancelableBeforeHours(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetDefaultCancelableBeforeHours(*v)
	}
	return _u
}

// AddDefaultCancelableBeforeHours adds value to the "default_cancelable_before_hours" field.
func (_u *UserUpdateOne) AddDefaultCancelableBeforeHours(v int) *UserUpdateOne {
	_u.mutation.AddDefaultCancelableBeforeHours(v)
	return _u
}

// SetPlaybookURL sets the "playbook_url" field.
func (_u *UserUpdateOne) SetPlaybookURL(v string) *UserUpdateOne {
	_u.mutation.SetPlaybookURL(v)
	return _u
}

// SetNillablePlaybookURL sets the "playbook_url" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePlaybookURL(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPlaybookURL(*v)
	}
	return _u
}

// ClearPlaybookURL clears the value of the "playbook_url" field.
func (_u *UserUpdateOne) ClearPlaybookURL() *UserUpdateOne {
	_u.mutation.ClearPlaybookURL()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserUpdateOne) SetIsActive(v bool) *UserUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsActive(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessType(); ok {
		if err := user.BusinessTypeValidator(v); err != nil {
			return &ValidationError{Name: "business_type", err: fmt.Errorf(`ent: validator failed for field "User.business_type": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentUserID(); ok {
		_spec.SetField(user.FieldParentUserID, field.TypeString, value)
	}
	if _u.mutation.ParentUserIDCleared() {
		_spec.ClearField(user.FieldParentUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(user.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(user.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessType(); ok {
		_spec.SetField(user.FieldBusinessType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(user.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(user.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCancelableBeforeHours(); ok {
		_spec.SetField(user.FieldDefaultCancelableBeforeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultCancelableBeforeHours(); ok {
		_spec.AddField(user.FieldDefaultCancelableBeforeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlaybookURL(); ok {
		_spec.SetField(user.FieldPlaybookURL, field.TypeString, value)
	}
	if _u.mutation.PlaybookURLCleared() {
		_spec.ClearField(user.FieldPlaybookURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

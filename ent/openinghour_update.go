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
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/predicate"
)

// OpeningHourUpdate is the builder for updating OpeningHour entities.
type OpeningHourUpdate struct {
	config
	hooks    []Hook
	mutation *OpeningHourMutation
}

// Where appends a list predicates to the OpeningHourUpdate builder.
func (_u *OpeningHourUpdate) Where(ps ...predicate.OpeningHour) *OpeningHourUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerType sets the "owner_type" field.
func (_u *OpeningHourUpdate) SetOwnerType(v openinghour.OwnerType) *OpeningHourUpdate {
	_u.mutation.SetOwnerType(v)
	return _u
}

// SetNillableOwnerType sets the "owner_type" field if the given value is not nil.
func (_u *OpeningHourUpdate) SetNillableOwnerType(v *openinghour.OwnerType) *OpeningHourUpdate {
	if v != nil {
		_u.SetOwnerType(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *OpeningHourUpdate) SetDayOfWeek(v int) *OpeningHourUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *OpeningHourUpdate) SetNillableDayOfWeek(v *int) *OpeningHourUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *OpeningHourUpdate) AddDayOfWeek(v int) *OpeningHourUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetOpenTime sets the "open_time" field.
func (_u *OpeningHourUpdate) SetOpenTime(v string) *OpeningHourUpdate {
	_u.mutation.SetOpenTime(v)
	return _u
}

// SetNillableOpenTime sets the "open_time" field if the given value is not nil.
func (_u *OpeningHourUpdate) SetNillableOpenTime(v *string) *OpeningHourUpdate {
	if v != nil {
		_u.SetOpenTime(*v)
	}
	return _u
}

// ClearOpenTime clears the value of the "open_time" field.
func (_u *OpeningHourUpdate) ClearOpenTime() *OpeningHourUpdate {
	_u.mutation.ClearOpenTime()
	return _u
}

// SetCloseTime sets the "close_time" field.
func (_u *OpeningHourUpdate) SetCloseTime(v string) *OpeningHourUpdate {
	_u.mutation.SetCloseTime(v)
	return _u
}

// SetNillableCloseTime sets the "close_time" field if the given value is not nil.
func (_u *OpeningHourUpdate) SetNillableCloseTime(v *string) *OpeningHourUpdate {
	if v != nil {
		_u.SetCloseTime(*v)
	}
	return _u
}

// ClearCloseTime clears the value of the "close_time" field.
func (_u *OpeningHourUpdate) ClearCloseTime() *OpeningHourUpdate {
	_u.mutation.ClearCloseTime()
	return _u
}

// SetIsClosed sets the "is_closed" field.
func (_u *OpeningHourUpdate) SetIsClosed(v bool) *OpeningHourUpdate {
	_u.mutation.SetIsClosed(v)
	return _u
}

// SetNillableIsClosed sets the "is_closed" field if the given value is not nil.
func (_u *OpeningHourUpdate) SetNillableIsClosed(v *bool) *OpeningHourUpdate {
	if v != nil {
		_u.SetIsClosed(*v)
	}
	return _u
}

// SetLastOrderTime sets the "last_order_time" field.
func (_u *OpeningHourUpdate) SetLastOrderTime(v string) *OpeningHourUpdate {
	_u.mutation.SetLastOrderTime(v)
	return _u
}

// SetNillableLastOrderTime sets the "last_order_time" field if the given value is not nil.
func (_u *OpeningHourUpdate) SetNillableLastOrderTime(v *string) *OpeningHourUpdate {
	if v != nil {
		_u.SetLastOrderTime(*v)
	}
	return _u
}

// ClearLastOrderTime clears the value of the "last_order_time" field.
func (_u *OpeningHourUpdate) ClearLastOrderTime() *OpeningHourUpdate {
	_u.mutation.ClearLastOrderTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OpeningHourUpdate) SetUpdatedAt(v time.Time) *OpeningHourUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OpeningHourMutation object of the builder.
func (_u *OpeningHourUpdate) Mutation() *OpeningHourMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OpeningHourUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OpeningHourUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OpeningHourUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OpeningHourUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OpeningHourUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := openinghour.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OpeningHourUpdate) check() error {
	if v, ok := _u.mutation.OwnerType(); ok {
		if err := openinghour.OwnerTypeValidator(v); err != nil {
			return &ValidationError{Name: "owner_type", err: fmt.Errorf(`ent: validator failed for field "OpeningHour.owner_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := openinghour.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`ent: validator failed for field "OpeningHour.day_of_week": %w`, err)}
		}
	}
	return nil
}

func (_u *OpeningHourUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(openinghour.Table, openinghour.Columns, sqlgraph.NewFieldSpec(openinghour.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerType(); ok {
		_spec.SetField(openinghour.FieldOwnerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(openinghour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(openinghour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenTime(); ok {
		_spec.SetField(openinghour.FieldOpenTime, field.TypeString, value)
	}
	if _u.mutation.OpenTimeCleared() {
		_spec.ClearField(openinghour.FieldOpenTime, field.TypeString)
	}
	if value, ok := _u.mutation.CloseTime(); ok {
		_spec.SetField(openinghour.FieldCloseTime, field.TypeString, value)
	}
	if _u.mutation.CloseTimeCleared() {
		_spec.ClearField(openinghour.FieldCloseTime, field.TypeString)
	}
	if value, ok := _u.mutation.IsClosed(); ok {
		_spec.SetField(openinghour.FieldIsClosed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastOrderTime(); ok {
		_spec.SetField(openinghour.FieldLastOrderTime, field.TypeString, value)
	}
	if _u.mutation.LastOrderTimeCleared() {
		_spec.ClearField(openinghour.FieldLastOrderTime, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(openinghour.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{openinghour.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OpeningHourUpdateOne is the builder for updating a single OpeningHour entity.
type OpeningHourUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OpeningHourMutation
}

// SetOwnerType sets the "owner_type" field.
func (_u *OpeningHourUpdateOne) SetOwnerType(v openinghour.OwnerType) *OpeningHourUpdateOne {
	_u.mutation.SetOwnerType(v)
	return _u
}

// SetNillableOwnerType sets the "owner_type" field if the given value is not nil.
func (_u *OpeningHourUpdateOne) SetNillableOwnerType(v *openinghour.OwnerType) *OpeningHourUpdateOne {
	if v != nil {
		_u.SetOwnerType(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *OpeningHourUpdateOne) SetDayOfWeek(v int) *OpeningHourUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *OpeningHourUpdateOne) SetNillableDayOfWeek(v *int) *OpeningHourUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *OpeningHourUpdateOne) AddDayOfWeek(v int) *OpeningHourUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetOpenTime sets the "open_time" field.
func (_u *OpeningHourUpdateOne) SetOpenTime(v string) *OpeningHourUpdateOne {
	_u.mutation.SetOpenTime(v)
	return _u
}

// SetNillableOpenTime sets the "open_time" field if the given value is not nil.
func (_u *OpeningHourUpdateOne) SetNillableOpenTime(v *string) *OpeningHourUpdateOne {
	if v != nil {
		_u.SetOpenTime(*v)
	}
	return _u
}

// ClearOpenTime clears the value of the "open_time" field.
func (_u *OpeningHourUpdateOne) ClearOpenTime() *OpeningHourUpdateOne {
	_u.mutation.ClearOpenTime()
	return _u
}

// SetCloseTime sets the "close_time" field.
func (_u *OpeningHourUpdateOne) SetCloseTime(v string) *OpeningHourUpdateOne {
	_u.mutation.SetCloseTime(v)
	return _u
}

// SetNillableCloseTime sets the "close_time" field if the given value is not nil.
func (_u *OpeningHourUpdateOne) SetNillableCloseTime(v *string) *OpeningHourUpdateOne {
	if v != nil {
		_u.SetCloseTime(*v)
	}
	return _u
}

// ClearCloseTime clears the value of the "close_time" field.
func (_u *OpeningHourUpdateOne) ClearCloseTime() *OpeningHourUpdateOne {
	_u.mutation.ClearCloseTime()
	return _u
}

// SetIsClosed sets the "is_closed" field.
func (_u *OpeningHourUpdateOne) SetIsClosed(v bool) *OpeningHourUpdateOne {
	_u.mutation.SetIsClosed(v)
	return _u
}

// SetNillableIsClosed sets the "is_closed" field if the given value is not nil.
func (_u *OpeningHourUpdateOne) SetNillableIsClosed(v *bool) *OpeningHourUpdateOne {
	if v != nil {
		_u.SetIsClosed(*v)
	}
	return _u
}

// SetLastOrderTime sets the "last_order_time" field.
func (_u *OpeningHourUpdateOne) SetLastOrderTime(v string) *OpeningHourUpdateOne {
	_u.mutation.SetLastOrderTime(v)
	return _u
}

// SetNillableLastOrderTime sets the "last_order_time" field if the given value is not nil.
func (_u *OpeningHourUpdateOne) SetNillableLastOrderTime(v *string) *OpeningHourUpdateOne {
	if v != nil {
		_u.SetLastOrderTime(*v)
	}
	return _u
}

// ClearLastOrderTime clears the value of the "last_order_time" field.
func (_u *OpeningHourUpdateOne) ClearLastOrderTime() *OpeningHourUpdateOne {
	_u.mutation.ClearLastOrderTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OpeningHourUpdateOne) SetUpdatedAt(v time.Time) *OpeningHourUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OpeningHourMutation object of the builder.
func (_u *OpeningHourUpdateOne) Mutation() *OpeningHourMutation {
	return _u.mutation
}

// Where appends a list predicates to the OpeningHourUpdate builder.
func (_u *OpeningHourUpdateOne) Where(ps ...predicate.OpeningHour) *OpeningHourUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OpeningHourUpdateOne) Select(field string, fields ...string) *OpeningHourUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OpeningHour entity.
func (_u *OpeningHourUpdateOne) Save(ctx context.Context) (*OpeningHour, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OpeningHourUpdateOne) SaveX(ctx context.Context) *OpeningHour {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OpeningHourUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OpeningHourUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OpeningHourUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := openinghour.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OpeningHourUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerType(); ok {
		if err := openinghour.OwnerTypeValidator(v); err != nil {
			return &ValidationError{Name: "owner_type", err: fmt.Errorf(`ent: validator failed for field "OpeningHour.owner_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := openinghour.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`ent: validator failed for field "OpeningHour.day_of_week": %w`, err)}
		}
	}
	return nil
}

func (_u *OpeningHourUpdateOne) sqlSave(ctx context.Context) (_node *OpeningHour, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(openinghour.Table, openinghour.Columns, sqlgraph.NewFieldSpec(openinghour.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OpeningHour.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, openinghour.FieldID)
		for _, f := range fields {
			if !openinghour.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != openinghour.FieldID {
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
	if value, ok := _u.mutation.OwnerType(); ok {
		_spec.SetField(openinghour.FieldOwnerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(openinghour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(openinghour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenTime(); ok {
		_spec.SetField(openinghour.FieldOpenTime, field.TypeString, value)
	}
	if _u.mutation.OpenTimeCleared() {
		_spec.ClearField(openinghour.FieldOpenTime, field.TypeString)
	}
	if value, ok := _u.mutation.CloseTime(); ok {
		_spec.SetField(openinghour.FieldCloseTime, field.TypeString, value)
	}
	if _u.mutation.CloseTimeCleared() {
		_spec.ClearField(openinghour.FieldCloseTime, field.TypeString)
	}
	if value, ok := _u.mutation.IsClosed(); ok {
		_spec.SetField(openinghour.FieldIsClosed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastOrderTime(); ok {
		_spec.SetField(openinghour.FieldLastOrderTime, field.TypeString, value)
	}
	if _u.mutation.LastOrderTimeCleared() {
		_spec.ClearField(openinghour.FieldLastOrderTime, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(openinghour.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OpeningHour{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{openinghour.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

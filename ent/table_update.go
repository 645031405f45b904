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
	"github.com/vendrahq/vendra/ent/table"
)

// TableUpdate is the builder for updating Table entities.
type TableUpdate struct {
	config
	hooks    []Hook
	mutation *TableMutation
}

// Where appends a list predicates to the TableUpdate builder.
func (_u *TableUpdate) Where(ps ...predicate.Table) *TableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTableNumber sets the "table_number" field.
func (_u *TableUpdate) SetTableNumber(v int) *TableUpdate {
	_u.mutation.ResetTableNumber()
	_u.mutation.SetTableNumber(v)
	return _u
}

// SetNillableTableNumber sets the "table_number" field if the given value is not nil.
func (_u *TableUpdate) SetNillableTableNumber(v *int) *TableUpdate {
	if v != nil {
		_u.SetTableNumber(*v)
	}
	return _u
}

// AddTableNumber adds value to the "table_number" field.
func (_u *TableUpdate) AddTableNumber(v int) *TableUpdate {
	_u.mutation.AddTableNumber(v)
	return _u
}

// SetMinSeats sets the "min_seats" field.
func (_u *TableUpdate) SetMinSeats(v int) *TableUpdate {
	_u.mutation.ResetMinSeats()
	_u.mutation.SetMinSeats(v)
	return _u
}

// SetNillableMinSeats sets the "min_seats" field if the given value is not nil.
func (_u *TableUpdate) SetNillableMinSeats(v *int) *TableUpdate {
	if v != nil {
		_u.SetMinSeats(*v)
	}
	return _u
}

// AddMinSeats adds value to the "min_seats" field.
func (_u *TableUpdate) AddMinSeats(v int) *TableUpdate {
	_u.mutation.AddMinSeats(v)
	return _u
}

// SetMaxSeats sets the "max_seats" field.
func (_u *TableUpdate) SetMaxSeats(v int) *TableUpdate {
	_u.mutation.ResetMaxSeats()
	_u.mutation.SetMaxSeats(v)
	return _u
}

// SetNillableMaxSeats sets the "max_seats" field if the given value is not nil.
func (_u *TableUpdate) SetNillableMaxSeats(v *int) *TableUpdate {
	if v != nil {
		_u.SetMaxSeats(*v)
	}
	return _u
}

// AddMaxSeats adds value to the "max_seats" field.
func (_u *TableUpdate) AddMaxSeats(v int) *TableUpdate {
	_u.mutation.AddMaxSeats(v)
	return _u
}

// SetPositionLabel sets the "position_label" field.
func (_u *TableUpdate) SetPositionLabel(v string) *TableUpdate {
	_u.mutation.SetPositionLabel(v)
	return _u
}

// SetNillablePositionLabel sets the "position_label" field if the given value is not nil.
func (_u *TableUpdate) SetNillablePositionLabel(v *string) *TableUpdate {
	if v != nil {
		_u.SetPositionLabel(*v)
	}
	return _u
}

// ClearPositionLabel clears the value of the "position_label" field.
func (_u *TableUpdate) ClearPositionLabel() *TableUpdate {
	_u.mutation.ClearPositionLabel()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TableUpdate) SetIsActive(v bool) *TableUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TableUpdate) SetNillableIsActive(v *bool) *TableUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TableUpdate) SetUpdatedAt(v time.Time) *TableUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TableMutation object of the builder.
func (_u *TableUpdate) Mutation() *TableMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TableUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TableUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := table.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(table.Table, table.Columns, sqlgraph.NewFieldSpec(table.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TableNumber(); ok {
		_spec.SetField(table.FieldTableNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTableNumber(); ok {
		_spec.AddField(table.FieldTableNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinSeats(); ok {
		_spec.SetField(table.FieldMinSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSeats(); ok {
		_spec.AddField(table.FieldMinSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSeats(); ok {
		_spec.SetField(table.FieldMaxSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSeats(); ok {
		_spec.AddField(table.FieldMaxSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PositionLabel(); ok {
		_spec.SetField(table.FieldPositionLabel, field.TypeString, value)
	}
	if _u.mutation.PositionLabelCleared() {
		_spec.ClearField(table.FieldPositionLabel, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(table.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(table.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{table.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TableUpdateOne is the builder for updating a single Table entity.
type TableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TableMutation
}

// SetTableNumber sets the "table_number" field.
func (_u *TableUpdateOne) SetTableNumber(v int) *TableUpdateOne {
	_u.mutation.ResetTableNumber()
	_u.mutation.SetTableNumber(v)
	return _u
}

// SetNillableTableNumber sets the "table_number" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableTableNumber(v *int) *TableUpdateOne {
	if v != nil {
		_u.SetTableNumber(*v)
	}
	return _u
}

// AddTableNumber adds value to the "table_number" field.
func (_u *TableUpdateOne) AddTableNumber(v int) *TableUpdateOne {
	_u.mutation.AddTableNumber(v)
	return _u
}

// SetMinSeats sets the "min_seats" field.
func (_u *TableUpdateOne) SetMinSeats(v int) *TableUpdateOne {
	_u.mutation.ResetMinSeats()
	_u.mutation.SetMinSeats(v)
	return _u
}

// SetNillableMinSeats sets the "min_seats" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableMinSeats(v *int) *TableUpdateOne {
	if v != nil {
		_u.SetMinSeats(*v)
	}
	return _u
}

// AddMinSeats adds value to the "min_seats" field.
func (_u *TableUpdateOne) AddMinSeats(v int) *TableUpdateOne {
	_u.mutation.AddMinSeats(v)
	return _u
}

// SetMaxSeats sets the "max_seats" field.
func (_u *TableUpdateOne) SetMaxSeats(v int) *TableUpdateOne {
	_u.mutation.ResetMaxSeats()
	_u.mutation.SetMaxSeats(v)
	return _u
}

// SetNillableMaxSeats sets the "max_seats" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableMaxSeats(v *int) *TableUpdateOne {
	if v != nil {
		_u.SetMaxSeats(*v)
	}
	return _u
}

// AddMaxSeats adds value to the "max_seats" field.
func (_u *TableUpdateOne) AddMaxSeats(v int) *TableUpdateOne {
	_u.mutation.AddMaxSeats(v)
	return _u
}

// SetPositionLabel sets the "position_label" field.
func (_u *TableUpdateOne) SetPositionLabel(v string) *TableUpdateOne {
	_u.mutation.SetPositionLabel(v)
	return _u
}

// SetNillablePositionLabel sets the "position_label" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillablePositionLabel(v *string) *TableUpdateOne {
	if v != nil {
		_u.SetPositionLabel(*v)
	}
	return _u
}

// ClearPositionLabel clears the value of the "position_label" field.
func (_u *TableUpdateOne) ClearPositionLabel() *TableUpdateOne {
	_u.mutation.ClearPositionLabel()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TableUpdateOne) SetIsActive(v bool) *TableUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableIsActive(v *bool) *TableUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TableUpdateOne) SetUpdatedAt(v time.Time) *TableUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TableMutation object of the builder.
func (_u *TableUpdateOne) Mutation() *TableMutation {
	return _u.mutation
}

// Where appends a list predicates to the TableUpdate builder.
func (_u *TableUpdateOne) Where(ps ...predicate.Table) *TableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TableUpdateOne) Select(field string, fields ...string) *TableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Table entity.
func (_u *TableUpdateOne) Save(ctx context.Context) (*Table, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableUpdateOne) SaveX(ctx context.Context) *Table {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TableUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := table.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TableUpdateOne) sqlSave(ctx context.Context) (_node *Table, err error) {
	_spec := sqlgraph.NewUpdateSpec(table.Table, table.Columns, sqlgraph.NewFieldSpec(table.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Table.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, table.FieldID)
		for _, f := range fields {
			if !table.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != table.FieldID {
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
	if value, ok := _u.mutation.TableNumber(); ok {
		_spec.SetField(table.FieldTableNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTableNumber(); ok {
		_spec.AddField(table.FieldTableNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinSeats(); ok {
		_spec.SetField(table.FieldMinSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSeats(); ok {
		_spec.AddField(table.FieldMinSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSeats(); ok {
		_spec.SetField(table.FieldMaxSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSeats(); ok {
		_spec.AddField(table.FieldMaxSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PositionLabel(); ok {
		_spec.SetField(table.FieldPositionLabel, field.TypeString, value)
	}
	if _u.mutation.PositionLabelCleared() {
		_spec.ClearField(table.FieldPositionLabel, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(table.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(table.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Table{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{table.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

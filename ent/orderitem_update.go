// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/predicate"
)

// OrderItemUpdate is the builder for updating OrderItem entities.
type OrderItemUpdate struct {
	config
	hooks    []Hook
	mutation *OrderItemMutation
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdate) Where(ps ...predicate.OrderItem) *OrderItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *OrderItemUpdate) SetItemID(v string) *OrderItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableItemID(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderItemUpdate) SetQuantity(v int) *OrderItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableQuantity(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderItemUpdate) AddQuantity(v int) *OrderItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPriceAtTime sets the "price_at_time" field.
func (_u *OrderItemUpdate) SetPriceAtTime(v decimal.Decimal) *OrderItemUpdate {
	_u.mutation.SetPriceAtTime(v)
	return _u
}

// SetNillablePriceAtTime sets the "price_at_time" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillablePriceAtTime(v *decimal.Decimal) *OrderItemUpdate {
	if v != nil {
		_u.SetPriceAtTime(*v)
	}
	return _u
}

// SetCostAtTime sets the "cost_at_time" field.
func (_u *OrderItemUpdate) SetCostAtTime(v decimal.Decimal) *OrderItemUpdate {
	_u.mutation.SetCostAtTime(v)
	return _u
}

// SetNillableCostAtTime sets the "cost_at_time" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableCostAtTime(v *decimal.Decimal) *OrderItemUpdate {
	if v != nil {
		_u.SetCostAtTime(*v)
	}
	return _u
}

// ClearCostAtTime clears the value of the "cost_at_time" field.
func (_u *OrderItemUpdate) ClearCostAtTime() *OrderItemUpdate {
	_u.mutation.ClearCostAtTime()
	return _u
}

// SetNameAtTime sets the "name_at_time" field.
func (_u *OrderItemUpdate) SetNameAtTime(v string) *OrderItemUpdate {
	_u.mutation.SetNameAtTime(v)
	return _u
}

// SetNillableNameAtTime sets the "name_at_time" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableNameAtTime(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetNameAtTime(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderItemUpdate) SetNotes(v string) *OrderItemUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableNotes(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderItemUpdate) ClearNotes() *OrderItemUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdate) Mutation() *OrderItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(orderitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriceAtTime(); ok {
		_spec.SetField(orderitem.FieldPriceAtTime, field.TypeOther, value)
	}
	if value, ok := _u.mutation.CostAtTime(); ok {
		_spec.SetField(orderitem.FieldCostAtTime, field.TypeOther, value)
	}
	if _u.mutation.CostAtTimeCleared() {
		_spec.ClearField(orderitem.FieldCostAtTime, field.TypeOther)
	}
	if value, ok := _u.mutation.NameAtTime(); ok {
		_spec.SetField(orderitem.FieldNameAtTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(orderitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(orderitem.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderItemUpdateOne is the builder for updating a single OrderItem entity.
type OrderItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *OrderItemUpdateOne) SetItemID(v string) *OrderItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableItemID(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderItemUpdateOne) SetQuantity(v int) *OrderItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableQuantity(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderItemUpdateOne) AddQuantity(v int) *OrderItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPriceAtTime sets the "price_at_time" field.
func (_u *OrderItemUpdateOne) SetPriceAtTime(v decimal.Decimal) *OrderItemUpdateOne {
	_u.mutation.SetPriceAtTime(v)
	return _u
}

// SetNillablePriceAtTime sets the "price_at_time" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillablePriceAtTime(v *decimal.Decimal) *OrderItemUpdateOne {
	if v != nil {
		_u.SetPriceAtTime(*v)
	}
	return _u
}

// SetCostAtTime sets the "cost_at_time" field.
func (_u *OrderItemUpdateOne) SetCostAtTime(v decimal.Decimal) *OrderItemUpdateOne {
	_u.mutation.SetCostAtTime(v)
	return _u
}

// SetNillableCostAtTime sets the "cost_at_time" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableCostAtTime(v *decimal.Decimal) *OrderItemUpdateOne {
	if v != nil {
		_u.SetCostAtTime(*v)
	}
	return _u
}

// ClearCostAtTime clears the value of the "cost_at_time" field.
func (_u *OrderItemUpdateOne) ClearCostAtTime() *OrderItemUpdateOne {
	_u.mutation.ClearCostAtTime()
	return _u
}

// SetNameAtTime sets the "name_at_time" field.
func (_u *OrderItemUpdateOne) SetNameAtTime(v string) *OrderItemUpdateOne {
	_u.mutation.SetNameAtTime(v)
	return _u
}

// SetNillableNameAtTime sets the "name_at_time" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableNameAtTime(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetNameAtTime(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderItemUpdateOne) SetNotes(v string) *OrderItemUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableNotes(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderItemUpdateOne) ClearNotes() *OrderItemUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdateOne) Mutation() *OrderItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdateOne) Where(ps ...predicate.OrderItem) *OrderItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderItemUpdateOne) Select(field string, fields ...string) *OrderItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderItem entity.
func (_u *OrderItemUpdateOne) Save(ctx context.Context) (*OrderItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdateOne) SaveX(ctx context.Context) *OrderItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdateOne) sqlSave(ctx context.Context) (_node *OrderItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderitem.FieldID)
		for _, f := range fields {
			if !orderitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderitem.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(orderitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriceAtTime(); ok {
		_spec.SetField(orderitem.FieldPriceAtTime, field.TypeOther, value)
	}
	if value, ok := _u.mutation.CostAtTime(); ok {
		_spec.SetField(orderitem.FieldCostAtTime, field.TypeOther, value)
	}
	if _u.mutation.CostAtTimeCleared() {
		_spec.ClearField(orderitem.FieldCostAtTime, field.TypeOther)
	}
	if value, ok := _u.mutation.NameAtTime(); ok {
		_spec.SetField(orderitem.FieldNameAtTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(orderitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(orderitem.FieldNotes, field.TypeString)
	}
	_node = &OrderItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

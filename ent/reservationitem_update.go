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
	"github.com/vendrahq/vendra/ent/predicate"
	"github.com/vendrahq/vendra/ent/reservationitem"
)

// ReservationItemUpdate is the builder for updating ReservationItem entities.
type ReservationItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationItemMutation
}

// Where appends a list predicates to the ReservationItemUpdate builder.
func (_u *ReservationItemUpdate) Where(ps ...predicate.ReservationItem) *ReservationItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReservationItemUpdate) SetItemID(v string) *ReservationItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReservationItemUpdate) SetNillableItemID(v *string) *ReservationItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ReservationItemUpdate) SetQuantity(v int) *ReservationItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ReservationItemUpdate) SetNillableQuantity(v *int) *ReservationItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ReservationItemUpdate) AddQuantity(v int) *ReservationItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPriceAtTime sets the "price_at_time" field.
func (_u *ReservationItemUpdate) SetPriceAtTime(v decimal.Decimal) *ReservationItemUpdate {
	_u.mutation.SetPriceAtTime(v)
	return _u
}

// SetNillablePriceAtTime sets the "price_at_time" field if the given value is not nil.
func (_u *ReservationItemUpdate) SetNillablePriceAtTime(v *decimal.Decimal) *ReservationItemUpdate {
	if v != nil {
		_u.SetPriceAtTime(*v)
	}
	return _u
}

// SetNameAtTime sets the "name_at_time" field.
func (_u *ReservationItemUpdate) SetNameAtTime(v string) *ReservationItemUpdate {
	_u.mutation.SetNameAtTime(v)
	return _u
}

// SetNillableNameAtTime sets the "name_at_time" field if the given value is not nil.
func (_u *ReservationItemUpdate) SetNillableNameAtTime(v *string) *ReservationItemUpdate {
	if v != nil {
		_u.SetNameAtTime(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReservationItemUpdate) SetNotes(v string) *ReservationItemUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReservationItemUpdate) SetNillableNotes(v *string) *ReservationItemUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReservationItemUpdate) ClearNotes() *ReservationItemUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ReservationItemMutation object of the builder.
func (_u *ReservationItemUpdate) Mutation() *ReservationItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationItemUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := reservationitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "ReservationItem.quantity": %w`, err)}
		}
	}
	if _u.mutation.ReservationCleared() && len(_u.mutation.ReservationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReservationItem.reservation"`)
	}
	return nil
}

func (_u *ReservationItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservationitem.Table, reservationitem.Columns, sqlgraph.NewFieldSpec(reservationitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reservationitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(reservationitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(reservationitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriceAtTime(); ok {
		_spec.SetField(reservationitem.FieldPriceAtTime, field.TypeOther, value)
	}
	if value, ok := _u.mutation.NameAtTime(); ok {
		_spec.SetField(reservationitem.FieldNameAtTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reservationitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(reservationitem.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationItemUpdateOne is the builder for updating a single ReservationItem entity.
type ReservationItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *ReservationItemUpdateOne) SetItemID(v string) *ReservationItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReservationItemUpdateOne) SetNillableItemID(v *string) *ReservationItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ReservationItemUpdateOne) SetQuantity(v int) *ReservationItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ReservationItemUpdateOne) SetNillableQuantity(v *int) *ReservationItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ReservationItemUpdateOne) AddQuantity(v int) *ReservationItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPriceAtTime sets the "price_at_time" field.
func (_u *ReservationItemUpdateOne) SetPriceAtTime(v decimal.Decimal) *ReservationItemUpdateOne {
	_u.mutation.SetPriceAtTime(v)
	return _u
}

// SetNillablePriceAtTime sets the "price_at_time" field if the given value is not nil.
func (_u *ReservationItemUpdateOne) SetNillablePriceAtTime(v *decimal.Decimal) *ReservationItemUpdateOne {
	if v != nil {
		_u.SetPriceAtTime(*v)
	}
	return _u
}

// SetNameAtTime sets the "name_at_time" field.
func (_u *ReservationItemUpdateOne) SetNameAtTime(v string) *ReservationItemUpdateOne {
	_u.mutation.SetNameAtTime(v)
	return _u
}

// SetNillableNameAtTime sets the "name_at_time" field if the given value is not nil.
func (_u *ReservationItemUpdateOne) SetNillableNameAtTime(v *string) *ReservationItemUpdateOne {
	if v != nil {
		_u.SetNameAtTime(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReservationItemUpdateOne) SetNotes(v string) *ReservationItemUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReservationItemUpdateOne) SetNillableNotes(v *string) *ReservationItemUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReservationItemUpdateOne) ClearNotes() *ReservationItemUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ReservationItemMutation object of the builder.
func (_u *ReservationItemUpdateOne) Mutation() *ReservationItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReservationItemUpdate builder.
func (_u *ReservationItemUpdateOne) Where(ps ...predicate.ReservationItem) *ReservationItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationItemUpdateOne) Select(field string, fields ...string) *ReservationItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReservationItem entity.
func (_u *ReservationItemUpdateOne) Save(ctx context.Context) (*ReservationItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationItemUpdateOne) SaveX(ctx context.Context) *ReservationItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationItemUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := reservationitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "ReservationItem.quantity": %w`, err)}
		}
	}
	if _u.mutation.ReservationCleared() && len(_u.mutation.ReservationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReservationItem.reservation"`)
	}
	return nil
}

func (_u *ReservationItemUpdateOne) sqlSave(ctx context.Context) (_node *ReservationItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservationitem.Table, reservationitem.Columns, sqlgraph.NewFieldSpec(reservationitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReservationItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservationitem.FieldID)
		for _, f := range fields {
			if !reservationitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reservationitem.FieldID {
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
		_spec.SetField(reservationitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(reservationitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(reservationitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriceAtTime(); ok {
		_spec.SetField(reservationitem.FieldPriceAtTime, field.TypeOther, value)
	}
	if value, ok := _u.mutation.NameAtTime(); ok {
		_spec.SetField(reservationitem.FieldNameAtTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reservationitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(reservationitem.FieldNotes, field.TypeString)
	}
	_node = &ReservationItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
)

// ReservationItemCreate is the builder for creating a ReservationItem entity.
type ReservationItemCreate struct {
	config
	mutation *ReservationItemMutation
	hooks    []Hook
}

// SetReservationID sets the "reservation_id" field.
func (_c *ReservationItemCreate) SetReservationID(v string) *ReservationItemCreate {
	_c.mutation.SetReservationID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReservationItemCreate) SetItemID(v string) *ReservationItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ReservationItemCreate) SetQuantity(v int) *ReservationItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetPriceAtTime sets the "price_at_time" field.
func (_c *ReservationItemCreate) SetPriceAtTime(v decimal.Decimal) *ReservationItemCreate {
	_c.mutation.SetPriceAtTime(v)
	return _c
}

// SetNillablePriceAtTime sets the "price_at_time" field if the given value is not nil.
func (_c *ReservationItemCreate) SetNillablePriceAtTime(v *decimal.Decimal) *ReservationItemCreate {
	if v != nil {
		_c.SetPriceAtTime(*v)
	}
	return _c
}

// SetNameAtTime sets the "name_at_time" field.
func (_c *ReservationItemCreate) SetNameAtTime(v string) *ReservationItemCreate {
	_c.mutation.SetNameAtTime(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ReservationItemCreate) SetNotes(v string) *ReservationItemCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ReservationItemCreate) SetNillableNotes(v *string) *ReservationItemCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReservationItemCreate) SetCreatedAt(v time.Time) *ReservationItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReservationItemCreate) SetNillableCreatedAt(v *time.Time) *ReservationItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReservationItemCreate) SetID(v string) *ReservationItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReservation sets the "reservation" edge to the Reservation entity.
func (_c *ReservationItemCreate) SetReservation(v *Reservation) *ReservationItemCreate {
	return _c.SetReservationID(v.ID)
}

// Mutation returns the ReservationItemMutation object of the builder.
func (_c *ReservationItemCreate) Mutation() *ReservationItemMutation {
	return _c.mutation
}

// Save creates the ReservationItem in the database.
func (_c *ReservationItemCreate) Save(ctx context.Context) (*ReservationItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReservationItemCreate) SaveX(ctx context.Context) *ReservationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReservationItemCreate) defaults() {
	if _, ok := _c.mutation.PriceAtTime(); !ok {
		v := reservationitem.DefaultPriceAtTime
		_c.mutation.SetPriceAtTime(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reservationitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReservationItemCreate) check() error {
	if _, ok := _c.mutation.ReservationID(); !ok {
		return &ValidationError{Name: "reservation_id", err: errors.New(`ent: missing required field "ReservationItem.reservation_id"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReservationItem.item_id"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "ReservationItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := reservationitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "ReservationItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceAtTime(); !ok {
		return &ValidationError{Name: "price_at_time", err: errors.New(`ent: missing required field "ReservationItem.price_at_time"`)}
	}
	if _, ok := _c.mutation.NameAtTime(); !ok {
		return &ValidationError{Name: "name_at_time", err: errors.New(`ent: missing required field "ReservationItem.name_at_time"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReservationItem.created_at"`)}
	}
	if len(_c.mutation.ReservationIDs()) == 0 {
		return &ValidationError{Name: "reservation", err: errors.New(`ent: missing required edge "ReservationItem.reservation"`)}
	}
	return nil
}

func (_c *ReservationItemCreate) sqlSave(ctx context.Context) (*ReservationItem, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ReservationItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReservationItemCreate) createSpec() (*ReservationItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReservationItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reservationitem.Table, sqlgraph.NewFieldSpec(reservationitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reservationitem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(reservationitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.PriceAtTime(); ok {
		_spec.SetField(reservationitem.FieldPriceAtTime, field.TypeOther, value)
		_node.PriceAtTime = value
	}
	if value, ok := _c.mutation.NameAtTime(); ok {
		_spec.SetField(reservationitem.FieldNameAtTime, field.TypeString, value)
		_node.NameAtTime = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(reservationitem.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reservationitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReservationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reservationitem.ReservationTable,
			Columns: []string{reservationitem.ReservationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReservationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReservationItemCreateBulk is the builder for creating many ReservationItem entities in bulk.
type ReservationItemCreateBulk struct {
	config
	err      error
	builders []*ReservationItemCreate
}

// Save creates the ReservationItem entities in the database.
func (_c *ReservationItemCreateBulk) Save(ctx context.Context) ([]*ReservationItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReservationItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReservationItemMutation)
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
func (_c *ReservationItemCreateBulk) SaveX(ctx context.Context) []*ReservationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

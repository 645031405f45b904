// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
)

// ReservationCreate is the builder for creating a Reservation entity.
type ReservationCreate struct {
	config
	mutation *ReservationMutation
	hooks    []Hook
}

// SetBusinessUserID sets the "business_user_id" field.
func (_c *ReservationCreate) SetBusinessUserID(v string) *ReservationCreate {
	_c.mutation.SetBusinessUserID(v)
	return _c
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *ReservationCreate) SetOwnerUserID(v string) *ReservationCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetTableID sets the "table_id" field.
func (_c *ReservationCreate) SetTableID(v string) *ReservationCreate {
	_c.mutation.SetTableID(v)
	return _c
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableTableID(v *string) *ReservationCreate {
	if v != nil {
		_c.SetTableID(*v)
	}
	return _c
}

// SetCustomerPhoneNumber sets the "customer_phone_number" field.
func (_c *ReservationCreate) SetCustomerPhoneNumber(v string) *ReservationCreate {
	_c.mutation.SetCustomerPhoneNumber(v)
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *ReservationCreate) SetCustomerName(v string) *ReservationCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetReservationDate sets the "reservation_date" field.
func (_c *ReservationCreate) SetReservationDate(v string) *ReservationCreate {
	_c.mutation.SetReservationDate(v)
	return _c
}

// SetReservationTime sets the "reservation_time" field.
func (_c *ReservationCreate) SetReservationTime(v string) *ReservationCreate {
	_c.mutation.SetReservationTime(v)
	return _c
}

// SetNumberOfGuests sets the "number_of_guests" field.
func (_c *ReservationCreate) SetNumberOfGuests(v int) *ReservationCreate {
	_c.mutation.SetNumberOfGuests(v)
	return _c
}

// SetNillableNumberOfGuests sets the "number_of_guests" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableNumberOfGuests(v *int) *ReservationCreate {
	if v != nil {
		_c.SetNumberOfGuests(*v)
	}
	return _c
}

// SetReservationType sets the "reservation_type" field.
func (_c *ReservationCreate) SetReservationType(v reservation.ReservationType) *ReservationCreate {
	_c.mutation.SetReservationType(v)
	return _c
}

// SetNillableReservationType sets the "reservation_type" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableReservationType(v *reservation.ReservationType) *ReservationCreate {
	if v != nil {
		_c.SetReservationType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReservationCreate) SetStatus(v reservation.Status) *ReservationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableStatus(v *reservation.Status) *ReservationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ReservationCreate) SetNotes(v string) *ReservationCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableNotes(v *string) *ReservationCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReservationCreate) SetCreatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableCreatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReservationCreate) SetUpdatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableUpdatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReservationCreate) SetID(v string) *ReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddItemIDs adds the "items" edge to the ReservationItem entity by IDs.
func (_c *ReservationCreate) AddItemIDs(ids ...string) *ReservationCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ReservationItem entity.
func (_c *ReservationCreate) AddItems(v ...*ReservationItem) *ReservationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the ReservationMutation object of the builder.
func (_c *ReservationCreate) Mutation() *ReservationMutation {
	return _c.mutation
}

// Save creates the Reservation in the database.
func (_c *ReservationCreate) Save(ctx context.Context) (*Reservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReservationCreate) SaveX(ctx context.Context) *Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReservationCreate) defaults() {
	if _, ok := _c.mutation.ReservationType(); !ok {
		v := reservation.DefaultReservationType
		_c.mutation.SetReservationType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reservation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reservation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReservationCreate) check() error {
	if _, ok := _c.mutation.BusinessUserID(); !ok {
		return &ValidationError{Name: "business_user_id", err: errors.New(`ent: missing required field "Reservation.business_user_id"`)}
	}
	if _, ok := _c.mutation.OwnerUserID(); !ok {
		return &ValidationError{Name: "owner_user_id", err: errors.New(`ent: missing required field "Reservation.owner_user_id"`)}
	}
	if _, ok := _c.mutation.CustomerPhoneNumber(); !ok {
		return &ValidationError{Name: "customer_phone_number", err: errors.New(`ent: missing required field "Reservation.customer_phone_number"`)}
	}
	if _, ok := _c.mutation.CustomerName(); !ok {
		return &ValidationError{Name: "customer_name", err: errors.New(`ent: missing required field "Reservation.customer_name"`)}
	}
	if _, ok := _c.mutation.ReservationDate(); !ok {
		return &ValidationError{Name: "reservation_date", err: errors.New(`ent: missing required field "Reservation.reservation_date"`)}
	}
	if _, ok := _c.mutation.ReservationTime(); !ok {
		return &ValidationError{Name: "reservation_time", err: errors.New(`ent: missing required field "Reservation.reservation_time"`)}
	}
	if _, ok := _c.mutation.ReservationType(); !ok {
		return &ValidationError{Name: "reservation_type", err: errors.New(`ent: missing required field "Reservation.reservation_type"`)}
	}
	if v, ok := _c.mutation.ReservationType(); ok {
		if err := reservation.ReservationTypeValidator(v); err != nil {
			return &ValidationError{Name: "reservation_type", err: fmt.Errorf(`ent: validator failed for field "Reservation.reservation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Reservation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reservation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Reservation.updated_at"`)}
	}
	return nil
}

func (_c *ReservationCreate) sqlSave(ctx context.Context) (*Reservation, error) {
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
			return nil, fmt.Errorf("unexpected Reservation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReservationCreate) createSpec() (*Reservation, *sqlgraph.CreateSpec) {
	var (
		_node = &Reservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reservation.Table, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessUserID(); ok {
		_spec.SetField(reservation.FieldBusinessUserID, field.TypeString, value)
		_node.BusinessUserID = value
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(reservation.FieldOwnerUserID, field.TypeString, value)
		_node.OwnerUserID = value
	}
	if value, ok := _c.mutation.TableID(); ok {
		_spec.SetField(reservation.FieldTableID, field.TypeString, value)
		_node.TableID = &value
	}
	if value, ok := _c.mutation.CustomerPhoneNumber(); ok {
		_spec.SetField(reservation.FieldCustomerPhoneNumber, field.TypeString, value)
		_node.CustomerPhoneNumber = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(reservation.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.ReservationDate(); ok {
		_spec.SetField(reservation.FieldReservationDate, field.TypeString, value)
		_node.ReservationDate = value
	}
	if value, ok := _c.mutation.ReservationTime(); ok {
		_spec.SetField(reservation.FieldReservationTime, field.TypeString, value)
		_node.ReservationTime = value
	}
	if value, ok := _c.mutation.NumberOfGuests(); ok {
		_spec.SetField(reservation.FieldNumberOfGuests, field.TypeInt, value)
		_node.NumberOfGuests = &value
	}
	if value, ok := _c.mutation.ReservationType(); ok {
		_spec.SetField(reservation.FieldReservationType, field.TypeEnum, value)
		_node.ReservationType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(reservation.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reservation.ItemsTable,
			Columns: []string{reservation.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservationitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReservationCreateBulk is the builder for creating many Reservation entities in bulk.
type ReservationCreateBulk struct {
	config
	err      error
	builders []*ReservationCreate
}

// Save creates the Reservation entities in the database.
func (_c *ReservationCreateBulk) Save(ctx context.Context) ([]*Reservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReservationMutation)
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
func (_c *ReservationCreateBulk) SaveX(ctx context.Context) []*Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
)

// SupportTicketCreate is the builder for creating a SupportTicket entity.
type SupportTicketCreate struct {
	config
	mutation *SupportTicketMutation
	hooks    []Hook
}

// SetBusinessID sets the "business_id" field.
func (_c *SupportTicketCreate) SetBusinessID(v string) *SupportTicketCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *SupportTicketCreate) SetCustomerID(v string) *SupportTicketCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetRelatedOrderID sets the "related_order_id" field.
func (_c *SupportTicketCreate) SetRelatedOrderID(v string) *SupportTicketCreate {
	_c.mutation.SetRelatedOrderID(v)
	return _c
}

// SetNillableRelatedOrderID sets the "related_order_id" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableRelatedOrderID(v *string) *SupportTicketCreate {
	if v != nil {
		_c.SetRelatedOrderID(*v)
	}
	return _c
}

// SetRelatedReservationID sets the "related_reservation_id" field.
func (_c *SupportTicketCreate) SetRelatedReservationID(v string) *SupportTicketCreate {
	_c.mutation.SetRelatedReservationID(v)
	return _c
}

// SetNillableRelatedReservationID sets the "related_reservation_id" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableRelatedReservationID(v *string) *SupportTicketCreate {
	if v != nil {
		_c.SetRelatedReservationID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SupportTicketCreate) SetSessionID(v string) *SupportTicketCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableSessionID(v *string) *SupportTicketCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *SupportTicketCreate) SetSubject(v string) *SupportTicketCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableSubject(v *string) *SupportTicketCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SupportTicketCreate) SetStatus(v supportticket.Status) *SupportTicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableStatus(v *supportticket.Status) *SupportTicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SupportTicketCreate) SetPriority(v supportticket.Priority) *SupportTicketCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillablePriority(v *supportticket.Priority) *SupportTicketCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAssignedEmployeeID sets the "assigned_employee_id" field.
func (_c *SupportTicketCreate) SetAssignedEmployeeID(v string) *SupportTicketCreate {
	_c.mutation.SetAssignedEmployeeID(v)
	return _c
}

// SetNillableAssignedEmployeeID sets the "assigned_employee_id" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableAssignedEmployeeID(v *string) *SupportTicketCreate {
	if v != nil {
		_c.SetAssignedEmployeeID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupportTicketCreate) SetCreatedAt(v time.Time) *SupportTicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableCreatedAt(v *time.Time) *SupportTicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupportTicketCreate) SetUpdatedAt(v time.Time) *SupportTicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupportTicketCreate) SetNillableUpdatedAt(v *time.Time) *SupportTicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupportTicketCreate) SetID(v string) *SupportTicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by IDs.
func (_c *SupportTicketCreate) AddMessageIDs(ids ...string) *SupportTicketCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the TicketMessage entity.
func (_c *SupportTicketCreate) AddMessages(v ...*TicketMessage) *SupportTicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the SupportTicketMutation object of the builder.
func (_c *SupportTicketCreate) Mutation() *SupportTicketMutation {
	return _c.mutation
}

// Save creates the SupportTicket in the database.
func (_c *SupportTicketCreate) Save(ctx context.Context) (*SupportTicket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupportTicketCreate) SaveX(ctx context.Context) *SupportTicket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportTicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportTicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupportTicketCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := supportticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := supportticket.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supportticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supportticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupportTicketCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "SupportTicket.business_id"`)}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "SupportTicket.customer_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SupportTicket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := supportticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupportTicket.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "SupportTicket.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := supportticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SupportTicket.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SupportTicket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SupportTicket.updated_at"`)}
	}
	return nil
}

func (_c *SupportTicketCreate) sqlSave(ctx context.Context) (*SupportTicket, error) {
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
			return nil, fmt.Errorf("unexpected SupportTicket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupportTicketCreate) createSpec() (*SupportTicket, *sqlgraph.CreateSpec) {
	var (
		_node = &SupportTicket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supportticket.Table, sqlgraph.NewFieldSpec(supportticket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(supportticket.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(supportticket.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.RelatedOrderID(); ok {
		_spec.SetField(supportticket.FieldRelatedOrderID, field.TypeString, value)
		_node.RelatedOrderID = &value
	}
	if value, ok := _c.mutation.RelatedReservationID(); ok {
		_spec.SetField(supportticket.FieldRelatedReservationID, field.TypeString, value)
		_node.RelatedReservationID = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(supportticket.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(supportticket.FieldSubject, field.TypeString, value)
		_node.Subject = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(supportticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(supportticket.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.AssignedEmployeeID(); ok {
		_spec.SetField(supportticket.FieldAssignedEmployeeID, field.TypeString, value)
		_node.AssignedEmployeeID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supportticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supportticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supportticket.MessagesTable,
			Columns: []string{supportticket.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticketmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SupportTicketCreateBulk is the builder for creating many SupportTicket entities in bulk.
type SupportTicketCreateBulk struct {
	config
	err      error
	builders []*SupportTicketCreate
}

// Save creates the SupportTicket entities in the database.
func (_c *SupportTicketCreateBulk) Save(ctx context.Context) ([]*SupportTicket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupportTicket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupportTicketMutation)
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
func (_c *SupportTicketCreateBulk) SaveX(ctx context.Context) []*SupportTicket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportTicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportTicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

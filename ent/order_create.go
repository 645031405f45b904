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
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
}

// SetBusinessID sets the "business_id" field.
func (_c *OrderCreate) SetBusinessID(v string) *OrderCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *OrderCreate) SetUserID(v string) *OrderCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCustomerPhoneNumber sets the "customer_phone_number" field.
func (_c *OrderCreate) SetCustomerPhoneNumber(v string) *OrderCreate {
	_c.mutation.SetCustomerPhoneNumber(v)
	return _c
}

// SetDeliveryType sets the "delivery_type" field.
func (_c *OrderCreate) SetDeliveryType(v order.DeliveryType) *OrderCreate {
	_c.mutation.SetDeliveryType(v)
	return _c
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_c *OrderCreate) SetNillableDeliveryType(v *order.DeliveryType) *OrderCreate {
	if v != nil {
		_c.SetDeliveryType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *OrderCreate) SetStatus(v order.Status) *OrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableStatus(v *order.Status) *OrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestType sets the "request_type" field.
func (_c *OrderCreate) SetRequestType(v order.RequestType) *OrderCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_c *OrderCreate) SetNillableRequestType(v *order.RequestType) *OrderCreate {
	if v != nil {
		_c.SetRequestType(*v)
	}
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *OrderCreate) SetScheduledFor(v time.Time) *OrderCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_c *OrderCreate) SetNillableScheduledFor(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetScheduledFor(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *OrderCreate) SetSubtotal(v decimal.Decimal) *OrderCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *OrderCreate) SetNillableSubtotal(v *decimal.Decimal) *OrderCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetDeliveryPrice sets the "delivery_price" field.
func (_c *OrderCreate) SetDeliveryPrice(v decimal.Decimal) *OrderCreate {
	_c.mutation.SetDeliveryPrice(v)
	return _c
}

// SetNillableDeliveryPrice sets the "delivery_price" field if the given value is not nil.
func (_c *OrderCreate) SetNillableDeliveryPrice(v *decimal.Decimal) *OrderCreate {
	if v != nil {
		_c.SetDeliveryPrice(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *OrderCreate) SetTotal(v decimal.Decimal) *OrderCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTotal(v *decimal.Decimal) *OrderCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *OrderCreate) SetPaymentMethod(v order.PaymentMethod) *OrderCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *OrderCreate) SetNillablePaymentMethod(v *order.PaymentMethod) *OrderCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *OrderCreate) SetPaymentStatus(v order.PaymentStatus) *OrderCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *OrderCreate) SetNillablePaymentStatus(v *order.PaymentStatus) *OrderCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *OrderCreate) SetNotes(v string) *OrderCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *OrderCreate) SetNillableNotes(v *string) *OrderCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetLocationAddress sets the "location_address" field.
func (_c *OrderCreate) SetLocationAddress(v string) *OrderCreate {
	_c.mutation.SetLocationAddress(v)
	return _c
}

// SetNillableLocationAddress sets the "location_address" field if the given value is not nil.
func (_c *OrderCreate) SetNillableLocationAddress(v *string) *OrderCreate {
	if v != nil {
		_c.SetLocationAddress(*v)
	}
	return _c
}

// SetLanguageUsed sets the "language_used" field.
func (_c *OrderCreate) SetLanguageUsed(v string) *OrderCreate {
	_c.mutation.SetLanguageUsed(v)
	return _c
}

// SetNillableLanguageUsed sets the "language_used" field if the given value is not nil.
func (_c *OrderCreate) SetNillableLanguageUsed(v *string) *OrderCreate {
	if v != nil {
		_c.SetLanguageUsed(*v)
	}
	return _c
}

// SetOrderSource sets the "order_source" field.
func (_c *OrderCreate) SetOrderSource(v order.OrderSource) *OrderCreate {
	_c.mutation.SetOrderSource(v)
	return _c
}

// SetNillableOrderSource sets the "order_source" field if the given value is not nil.
func (_c *OrderCreate) SetNillableOrderSource(v *order.OrderSource) *OrderCreate {
	if v != nil {
		_c.SetOrderSource(*v)
	}
	return _c
}

// SetFirstResponseAt sets the "first_response_at" field.
func (_c *OrderCreate) SetFirstResponseAt(v time.Time) *OrderCreate {
	_c.mutation.SetFirstResponseAt(v)
	return _c
}

// SetNillableFirstResponseAt sets the "first_response_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableFirstResponseAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetFirstResponseAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *OrderCreate) SetCompletedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCompletedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *OrderCreate) SetCancelledAt(v time.Time) *OrderCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCancelledAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderCreate) SetUpdatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableUpdatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v string) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_c *OrderCreate) AddItemIDs(ids ...string) *OrderCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_c *OrderCreate) AddItems(v ...*OrderItem) *OrderCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddStatusHistoryIDs adds the "status_history" edge to the OrderStatusHistory entity by IDs.
func (_c *OrderCreate) AddStatusHistoryIDs(ids ...string) *OrderCreate {
	_c.mutation.AddStatusHistoryIDs(ids...)
	return _c
}

// AddStatusHistory adds the "status_history" edges to the OrderStatusHistory entity.
func (_c *OrderCreate) AddStatusHistory(v ...*OrderStatusHistory) *OrderCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusHistoryIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := order.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		v := order.DefaultRequestType
		_c.mutation.SetRequestType(v)
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		v := order.DefaultSubtotal
		_c.mutation.SetSubtotal(v)
	}
	if _, ok := _c.mutation.DeliveryPrice(); !ok {
		v := order.DefaultDeliveryPrice
		_c.mutation.SetDeliveryPrice(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := order.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		v := order.DefaultPaymentMethod
		_c.mutation.SetPaymentMethod(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := order.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.OrderSource(); !ok {
		v := order.DefaultOrderSource
		_c.mutation.SetOrderSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Order.business_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Order.user_id"`)}
	}
	if _, ok := _c.mutation.CustomerPhoneNumber(); !ok {
		return &ValidationError{Name: "customer_phone_number", err: errors.New(`ent: missing required field "Order.customer_phone_number"`)}
	}
	if v, ok := _c.mutation.DeliveryType(); ok {
		if err := order.DeliveryTypeValidator(v); err != nil {
			return &ValidationError{Name: "delivery_type", err: fmt.Errorf(`ent: validator failed for field "Order.delivery_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Order.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "Order.request_type"`)}
	}
	if v, ok := _c.mutation.RequestType(); ok {
		if err := order.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Order.request_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Order.subtotal"`)}
	}
	if _, ok := _c.mutation.DeliveryPrice(); !ok {
		return &ValidationError{Name: "delivery_price", err: errors.New(`ent: missing required field "Order.delivery_price"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Order.total"`)}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`ent: missing required field "Order.payment_method"`)}
	}
	if v, ok := _c.mutation.PaymentMethod(); ok {
		if err := order.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Order.payment_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`ent: missing required field "Order.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := order.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Order.payment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderSource(); !ok {
		return &ValidationError{Name: "order_source", err: errors.New(`ent: missing required field "Order.order_source"`)}
	}
	if v, ok := _c.mutation.OrderSource(); ok {
		if err := order.OrderSourceValidator(v); err != nil {
			return &ValidationError{Name: "order_source", err: fmt.Errorf(`ent: validator failed for field "Order.order_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Order.updated_at"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
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
			return nil, fmt.Errorf("unexpected Order.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(order.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(order.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CustomerPhoneNumber(); ok {
		_spec.SetField(order.FieldCustomerPhoneNumber, field.TypeString, value)
		_node.CustomerPhoneNumber = value
	}
	if value, ok := _c.mutation.DeliveryType(); ok {
		_spec.SetField(order.FieldDeliveryType, field.TypeEnum, value)
		_node.DeliveryType = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(order.FieldRequestType, field.TypeEnum, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(order.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(order.FieldSubtotal, field.TypeOther, value)
		_node.Subtotal = value
	}
	if value, ok := _c.mutation.DeliveryPrice(); ok {
		_spec.SetField(order.FieldDeliveryPrice, field.TypeOther, value)
		_node.DeliveryPrice = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(order.FieldTotal, field.TypeOther, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(order.FieldPaymentMethod, field.TypeEnum, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(order.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.LocationAddress(); ok {
		_spec.SetField(order.FieldLocationAddress, field.TypeString, value)
		_node.LocationAddress = &value
	}
	if value, ok := _c.mutation.LanguageUsed(); ok {
		_spec.SetField(order.FieldLanguageUsed, field.TypeString, value)
		_node.LanguageUsed = &value
	}
	if value, ok := _c.mutation.OrderSource(); ok {
		_spec.SetField(order.FieldOrderSource, field.TypeEnum, value)
		_node.OrderSource = value
	}
	if value, ok := _c.mutation.FirstResponseAt(); ok {
		_spec.SetField(order.FieldFirstResponseAt, field.TypeTime, value)
		_node.FirstResponseAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(order.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(order.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.StatusHistoryTable,
			Columns: []string{order.StatusHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderstatushistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
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
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

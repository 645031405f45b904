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
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
	"github.com/vendrahq/vendra/ent/predicate"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *OrderUpdate) SetDeliveryType(v order.DeliveryType) *OrderUpdate {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDeliveryType(v *order.DeliveryType) *OrderUpdate {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *OrderUpdate) ClearDeliveryType() *OrderUpdate {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v order.Status) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *order.Status) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *OrderUpdate) SetRequestType(v order.RequestType) *OrderUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableRequestType(v *order.RequestType) *OrderUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *OrderUpdate) SetScheduledFor(v time.Time) *OrderUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableScheduledFor(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *OrderUpdate) ClearScheduledFor() *OrderUpdate {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *OrderUpdate) SetSubtotal(v decimal.Decimal) *OrderUpdate {
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableSubtotal(v *decimal.Decimal) *OrderUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// SetDeliveryPrice sets the "delivery_price" field.
func (_u *OrderUpdate) SetDeliveryPrice(v decimal.Decimal) *OrderUpdate {
	_u.mutation.SetDeliveryPrice(v)
	return _u
}

// SetNillableDeliveryPrice sets the "delivery_price" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDeliveryPrice(v *decimal.Decimal) *OrderUpdate {
	if v != nil {
		_u.SetDeliveryPrice(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *OrderUpdate) SetTotal(v decimal.Decimal) *OrderUpdate {
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTotal(v *decimal.Decimal) *OrderUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *OrderUpdate) SetPaymentMethod(v order.PaymentMethod) *OrderUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePaymentMethod(v *order.PaymentMethod) *OrderUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *OrderUpdate) SetPaymentStatus(v order.PaymentStatus) *OrderUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePaymentStatus(v *order.PaymentStatus) *OrderUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderUpdate) SetNotes(v string) *OrderUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableNotes(v *string) *OrderUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderUpdate) ClearNotes() *OrderUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetLocationAddress sets the "location_address" field.
func (_u *OrderUpdate) SetLocationAddress(v string) *OrderUpdate {
	_u.mutation.SetLocationAddress(v)
	return _u
}

// SetNillableLocationAddress sets the "location_address" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableLocationAddress(v *string) *OrderUpdate {
	if v != nil {
		_u.SetLocationAddress(*v)
	}
	return _u
}

// ClearLocationAddress clears the value of the "location_address" field.
func (_u *OrderUpdate) ClearLocationAddress() *OrderUpdate {
	_u.mutation.ClearLocationAddress()
	return _u
}

// SetLanguageUsed sets the "language_used" field.
func (_u *OrderUpdate) SetLanguageUsed(v string) *OrderUpdate {
	_u.mutation.SetLanguageUsed(v)
	return _u
}

// SetNillableLanguageUsed sets the "language_used" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableLanguageUsed(v *string) *OrderUpdate {
	if v != nil {
		_u.SetLanguageUsed(*v)
	}
	return _u
}

// ClearLanguageUsed clears the value of the "language_used" field.
func (_u *OrderUpdate) ClearLanguageUsed() *OrderUpdate {
	_u.mutation.ClearLanguageUsed()
	return _u
}

// SetOrderSource sets the "order_source" field.
func (_u *OrderUpdate) SetOrderSource(v order.OrderSource) *OrderUpdate {
	_u.mutation.SetOrderSource(v)
	return _u
}

// SetNillableOrderSource sets the "order_source" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrderSource(v *order.OrderSource) *OrderUpdate {
	if v != nil {
		_u.SetOrderSource(*v)
	}
	return _u
}

// SetFirstResponseAt sets the "first_response_at" field.
func (_u *OrderUpdate) SetFirstResponseAt(v time.Time) *OrderUpdate {
	_u.mutation.SetFirstResponseAt(v)
	return _u
}

// SetNillableFirstResponseAt sets the "first_response_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableFirstResponseAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetFirstResponseAt(*v)
	}
	return _u
}

// ClearFirstResponseAt clears the value of the "first_response_at" field.
func (_u *OrderUpdate) ClearFirstResponseAt() *OrderUpdate {
	_u.mutation.ClearFirstResponseAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OrderUpdate) SetCompletedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCompletedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OrderUpdate) ClearCompletedAt() *OrderUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *OrderUpdate) SetCancelledAt(v time.Time) *OrderUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCancelledAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *OrderUpdate) ClearCancelledAt() *OrderUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdate) AddItemIDs(ids ...string) *OrderUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdate) AddItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddStatusHistoryIDs adds the "status_history" edge to the OrderStatusHistory entity by IDs.
func (_u *OrderUpdate) AddStatusHistoryIDs(ids ...string) *OrderUpdate {
	_u.mutation.AddStatusHistoryIDs(ids...)
	return _u
}

// AddStatusHistory adds the "status_history" edges to the OrderStatusHistory entity.
func (_u *OrderUpdate) AddStatusHistory(v ...*OrderStatusHistory) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusHistoryIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdate) ClearItems() *OrderUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdate) RemoveItemIDs(ids ...string) *OrderUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdate) RemoveItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearStatusHistory clears all "status_history" edges to the OrderStatusHistory entity.
func (_u *OrderUpdate) ClearStatusHistory() *OrderUpdate {
	_u.mutation.ClearStatusHistory()
	return _u
}

// RemoveStatusHistoryIDs removes the "status_history" edge to OrderStatusHistory entities by IDs.
func (_u *OrderUpdate) RemoveStatusHistoryIDs(ids ...string) *OrderUpdate {
	_u.mutation.RemoveStatusHistoryIDs(ids...)
	return _u
}

// RemoveStatusHistory removes "status_history" edges to OrderStatusHistory entities.
func (_u *OrderUpdate) RemoveStatusHistory(v ...*OrderStatusHistory) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.DeliveryType(); ok {
		if err := order.DeliveryTypeValidator(v); err != nil {
			return &ValidationError{Name: "delivery_type", err: fmt.Errorf(`ent: validator failed for field "Order.delivery_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestType(); ok {
		if err := order.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Order.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := order.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Order.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := order.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Order.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderSource(); ok {
		if err := order.OrderSourceValidator(v); err != nil {
			return &ValidationError{Name: "order_source", err: fmt.Errorf(`ent: validator failed for field "Order.order_source": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(order.FieldDeliveryType, field.TypeEnum, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(order.FieldDeliveryType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(order.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(order.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(order.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(order.FieldSubtotal, field.TypeOther, value)
	}
	if value, ok := _u.mutation.DeliveryPrice(); ok {
		_spec.SetField(order.FieldDeliveryPrice, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(order.FieldTotal, field.TypeOther, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(order.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(order.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(order.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.LocationAddress(); ok {
		_spec.SetField(order.FieldLocationAddress, field.TypeString, value)
	}
	if _u.mutation.LocationAddressCleared() {
		_spec.ClearField(order.FieldLocationAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageUsed(); ok {
		_spec.SetField(order.FieldLanguageUsed, field.TypeString, value)
	}
	if _u.mutation.LanguageUsedCleared() {
		_spec.ClearField(order.FieldLanguageUsed, field.TypeString)
	}
	if value, ok := _u.mutation.OrderSource(); ok {
		_spec.SetField(order.FieldOrderSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FirstResponseAt(); ok {
		_spec.SetField(order.FieldFirstResponseAt, field.TypeTime, value)
	}
	if _u.mutation.FirstResponseAtCleared() {
		_spec.ClearField(order.FieldFirstResponseAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(order.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(order.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(order.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(order.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusHistoryIDs(); len(nodes) > 0 && !_u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *OrderUpdateOne) SetDeliveryType(v order.DeliveryType) *OrderUpdateOne {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDeliveryType(v *order.DeliveryType) *OrderUpdateOne {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *OrderUpdateOne) ClearDeliveryType() *OrderUpdateOne {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v order.Status) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *order.Status) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *OrderUpdateOne) SetRequestType(v order.RequestType) *OrderUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableRequestType(v *order.RequestType) *OrderUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *OrderUpdateOne) SetScheduledFor(v time.Time) *OrderUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableScheduledFor(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *OrderUpdateOne) ClearScheduledFor() *OrderUpdateOne {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *OrderUpdateOne) SetSubtotal(v decimal.Decimal) *OrderUpdateOne {
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableSubtotal(v *decimal.Decimal) *OrderUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// SetDeliveryPrice sets the "delivery_price" field.
func (_u *OrderUpdateOne) SetDeliveryPrice(v decimal.Decimal) *OrderUpdateOne {
	_u.mutation.SetDeliveryPrice(v)
	return _u
}

// SetNillableDeliveryPrice sets the "delivery_price" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDeliveryPrice(v *decimal.Decimal) *OrderUpdateOne {
	if v != nil {
		_u.SetDeliveryPrice(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *OrderUpdateOne) SetTotal(v decimal.Decimal) *OrderUpdateOne {
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTotal(v *decimal.Decimal) *OrderUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *OrderUpdateOne) SetPaymentMethod(v order.PaymentMethod) *OrderUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePaymentMethod(v *order.PaymentMethod) *OrderUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *OrderUpdateOne) SetPaymentStatus(v order.PaymentStatus) *OrderUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePaymentStatus(v *order.PaymentStatus) *OrderUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderUpdateOne) SetNotes(v string) *OrderUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableNotes(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderUpdateOne) ClearNotes() *OrderUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetLocationAddress sets the "location_address" field.
func (_u *OrderUpdateOne) SetLocationAddress(v string) *OrderUpdateOne {
	_u.mutation.SetLocationAddress(v)
	return _u
}

// SetNillableLocationAddress sets the "location_address" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableLocationAddress(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetLocationAddress(*v)
	}
	return _u
}

// ClearLocationAddress clears the value of the "location_address" field.
func (_u *OrderUpdateOne) ClearLocationAddress() *OrderUpdateOne {
	_u.mutation.ClearLocationAddress()
	return _u
}

// SetLanguageUsed sets the "language_used" field.
func (_u *OrderUpdateOne) SetLanguageUsed(v string) *OrderUpdateOne {
	_u.mutation.SetLanguageUsed(v)
	return _u
}

// SetNillableLanguageUsed sets the "language_used" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableLanguageUsed(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetLanguageUsed(*v)
	}
	return _u
}

// ClearLanguageUsed clears the value of the "language_used" field.
func (_u *OrderUpdateOne) ClearLanguageUsed() *OrderUpdateOne {
	_u.mutation.ClearLanguageUsed()
	return _u
}

// SetOrderSource sets the "order_source" field.
func (_u *OrderUpdateOne) SetOrderSource(v order.OrderSource) *OrderUpdateOne {
	_u.mutation.SetOrderSource(v)
	return _u
}

// SetNillableOrderSource sets the "order_source" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrderSource(v *order.OrderSource) *OrderUpdateOne {
	if v != nil {
		_u.SetOrderSource(*v)
	}
	return _u
}

// SetFirstResponseAt sets the "first_response_at" field.
func (_u *OrderUpdateOne) SetFirstResponseAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetFirstResponseAt(v)
	return _u
}

// SetNillableFirstResponseAt sets the "first_response_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableFirstResponseAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetFirstResponseAt(*v)
	}
	return _u
}

// ClearFirstResponseAt clears the value of the "first_response_at" field.
func (_u *OrderUpdateOne) ClearFirstResponseAt() *OrderUpdateOne {
	_u.mutation.ClearFirstResponseAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OrderUpdateOne) SetCompletedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCompletedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OrderUpdateOne) ClearCompletedAt() *OrderUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *OrderUpdateOne) SetCancelledAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCancelledAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *OrderUpdateOne) ClearCancelledAt() *OrderUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdateOne) AddItemIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) AddItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddStatusHistoryIDs adds the "status_history" edge to the OrderStatusHistory entity by IDs.
func (_u *OrderUpdateOne) AddStatusHistoryIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.AddStatusHistoryIDs(ids...)
	return _u
}

// AddStatusHistory adds the "status_history" edges to the OrderStatusHistory entity.
func (_u *OrderUpdateOne) AddStatusHistory(v ...*OrderStatusHistory) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusHistoryIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) ClearItems() *OrderUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdateOne) RemoveItemIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdateOne) RemoveItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearStatusHistory clears all "status_history" edges to the OrderStatusHistory entity.
func (_u *OrderUpdateOne) ClearStatusHistory() *OrderUpdateOne {
	_u.mutation.ClearStatusHistory()
	return _u
}

// RemoveStatusHistoryIDs removes the "status_history" edge to OrderStatusHistory entities by IDs.
func (_u *OrderUpdateOne) RemoveStatusHistoryIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.RemoveStatusHistoryIDs(ids...)
	return _u
}

// RemoveStatusHistory removes "status_history" edges to OrderStatusHistory entities.
func (_u *OrderUpdateOne) RemoveStatusHistory(v ...*OrderStatusHistory) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusHistoryIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.DeliveryType(); ok {
		if err := order.DeliveryTypeValidator(v); err != nil {
			return &ValidationError{Name: "delivery_type", err: fmt.Errorf(`ent: validator failed for field "Order.delivery_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestType(); ok {
		if err := order.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Order.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := order.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Order.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := order.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Order.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderSource(); ok {
		if err := order.OrderSourceValidator(v); err != nil {
			return &ValidationError{Name: "order_source", err: fmt.Errorf(`ent: validator failed for field "Order.order_source": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
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
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(order.FieldDeliveryType, field.TypeEnum, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(order.FieldDeliveryType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(order.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(order.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(order.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(order.FieldSubtotal, field.TypeOther, value)
	}
	if value, ok := _u.mutation.DeliveryPrice(); ok {
		_spec.SetField(order.FieldDeliveryPrice, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(order.FieldTotal, field.TypeOther, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(order.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(order.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(order.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.LocationAddress(); ok {
		_spec.SetField(order.FieldLocationAddress, field.TypeString, value)
	}
	if _u.mutation.LocationAddressCleared() {
		_spec.ClearField(order.FieldLocationAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageUsed(); ok {
		_spec.SetField(order.FieldLanguageUsed, field.TypeString, value)
	}
	if _u.mutation.LanguageUsedCleared() {
		_spec.ClearField(order.FieldLanguageUsed, field.TypeString)
	}
	if value, ok := _u.mutation.OrderSource(); ok {
		_spec.SetField(order.FieldOrderSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FirstResponseAt(); ok {
		_spec.SetField(order.FieldFirstResponseAt, field.TypeTime, value)
	}
	if _u.mutation.FirstResponseAtCleared() {
		_spec.ClearField(order.FieldFirstResponseAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(order.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(order.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(order.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(order.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusHistoryIDs(); len(nodes) > 0 && !_u.mutation.StatusHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
)

// SupportTicketUpdate is the builder for updating SupportTicket entities.
type SupportTicketUpdate struct {
	config
	hooks    []Hook
	mutation *SupportTicketMutation
}

// Where appends a list predicates to the SupportTicketUpdate builder.
func (_u *SupportTicketUpdate) Where(ps ...predicate.SupportTicket) *SupportTicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRelatedOrderID sets the "related_order_id" field.
func (_u *SupportTicketUpdate) SetRelatedOrderID(v string) *SupportTicketUpdate {
	_u.mutation.SetRelatedOrderID(v)
	return _u
}

// SetNillableRelatedOrderID sets the "related_order_id" field if the given value is not nil.
func (_u *SupportTicketUpdate) SetNillableRelatedOrderID(v *string) *SupportTicketUpdate {
	if v != nil {
		_u.SetRelatedOrderID(*v)
	}
	return _u
}

// ClearRelatedOrderID clears the value of the "related_order_id" field.
func (_u *SupportTicketUpdate) ClearRelatedOrderID() *SupportTicketUpdate {
	_u.mutation.ClearRelatedOrderID()
	return _u
}

// SetRelatedReservationID sets the "related_reservation_id" field.
func (_u *SupportTicketUpdate) SetRelatedReservationID(v string) *SupportTicketUpdate {
	_u.mutation.SetRelatedReservationID(v)
	return _u
}

// SetNillableRelatedReservationID sets the "related_reservation_id" field if the given value is not nil.
func (_u *SupportTicketUpdate) SetNillableRelatedReservationID(v *string) *SupportTicketUpdate {
	if v != nil {
		_u.SetRelatedReservationID(*v)
	}
	return _u
}

// ClearRelatedReservationID clears the value of the "related_reservation_id" field.
func (_u *SupportTicketUpdate) ClearRelatedReservationID() *SupportTicketUpdate {
	_u.mutation.ClearRelatedReservationID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SupportTicketUpdate) SetSessionID(v string) *SupportTicketUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SupportTicketUpdate) SetNillableSessionID(v *string) *SupportTicketUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SupportTicketUpdate) ClearSessionID() *SupportTicketUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SupportTicketUpdate) SetSubject(v string) *SupportTicketUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SupportTicketUpdate) SetNillableSubject(v *string) *SupportTicketUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *SupportTicketUpdate) ClearSubject() *SupportTicketUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupportTicketUpdate) SetStatus(v supportticket.Status) *SupportTicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupportTicketUpdate) SetNillableStatus(v *supportticket.Status) *SupportTicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SupportTicketUpdate) SetPriority(v supportticket.Priority) *SupportTicketUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SupportTicketUpdate) SetNillablePriority(v *supportticket.Priority) *SupportTicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetAssignedEmployeeID sets the "assigned_employee_id" field.
func (_u *SupportTicketUpdate) SetAssignedEmployeeID(v string) *SupportTicketUpdate {
	_u.mutation.SetAssignedEmployeeID(v)
	return _u
}

// SetNillableAssignedEmployeeID sets the "assigned_employee_id" field if the given value is not nil.
func (_u *SupportTicketUpdate) SetNillableAssignedEmployeeID(v *string) *SupportTicketUpdate {
	if v != nil {
		_u.SetAssignedEmployeeID(*v)
	}
	return _u
}

// ClearAssignedEmployeeID clears the value of the "assigned_employee_id" field.
func (_u *SupportTicketUpdate) ClearAssignedEmployeeID() *SupportTicketUpdate {
	_u.mutation.ClearAssignedEmployeeID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupportTicketUpdate) SetUpdatedAt(v time.Time) *SupportTicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by IDs.
func (_u *SupportTicketUpdate) AddMessageIDs(ids ...string) *SupportTicketUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the TicketMessage entity.
func (_u *SupportTicketUpdate) AddMessages(v ...*TicketMessage) *SupportTicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the SupportTicketMutation object of the builder.
func (_u *SupportTicketUpdate) Mutation() *SupportTicketMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the TicketMessage entity.
func (_u *SupportTicketUpdate) ClearMessages() *SupportTicketUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to TicketMessage entities by IDs.
func (_u *SupportTicketUpdate) RemoveMessageIDs(ids ...string) *SupportTicketUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to TicketMessage entities.
func (_u *SupportTicketUpdate) RemoveMessages(v ...*TicketMessage) *SupportTicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupportTicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportTicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupportTicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportTicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupportTicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supportticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportTicketUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := supportticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupportTicket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := supportticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SupportTicket.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportTicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportticket.Table, supportticket.Columns, sqlgraph.NewFieldSpec(supportticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RelatedOrderID(); ok {
		_spec.SetField(supportticket.FieldRelatedOrderID, field.TypeString, value)
	}
	if _u.mutation.RelatedOrderIDCleared() {
		_spec.ClearField(supportticket.FieldRelatedOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedReservationID(); ok {
		_spec.SetField(supportticket.FieldRelatedReservationID, field.TypeString, value)
	}
	if _u.mutation.RelatedReservationIDCleared() {
		_spec.ClearField(supportticket.FieldRelatedReservationID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(supportticket.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(supportticket.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(supportticket.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(supportticket.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supportticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(supportticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedEmployeeID(); ok {
		_spec.SetField(supportticket.FieldAssignedEmployeeID, field.TypeString, value)
	}
	if _u.mutation.AssignedEmployeeIDCleared() {
		_spec.ClearField(supportticket.FieldAssignedEmployeeID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supportticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupportTicketUpdateOne is the builder for updating a single SupportTicket entity.
type SupportTicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupportTicketMutation
}

// SetRelatedOrderID sets the "related_order_id" field.
func (_u *SupportTicketUpdateOne) SetRelatedOrderID(v string) *SupportTicketUpdateOne {
	_u.mutation.SetRelatedOrderID(v)
	return _u
}

// SetNillableRelatedOrderID sets the "related_order_id" field if the given value is not nil.
func (_u *SupportTicketUpdateOne) SetNillableRelatedOrderID(v *string) *SupportTicketUpdateOne {
	if v != nil {
		_u.SetRelatedOrderID(*v)
	}
	return _u
}

// ClearRelatedOrderID clears the value of the "related_order_id" field.
func (_u *SupportTicketUpdateOne) ClearRelatedOrderID() *SupportTicketUpdateOne {
	_u.mutation.ClearRelatedOrderID()
	return _u
}

// SetRelatedReservationID sets the "related_reservation_id" field.
func (_u *SupportTicketUpdateOne) SetRelatedReservationID(v string) *SupportTicketUpdateOne {
	_u.mutation.SetRelatedReservationID(v)
	return _u
}

// SetNillableRelatedReservationID sets the "related_reservation_id" field if the given value is not nil.
func (_u *SupportTicketUpdateOne) SetNillableRelatedReservationID(v *string) *SupportTicketUpdateOne {
	if v != nil {
		_u.SetRelatedReservationID(*v)
	}
	return _u
}

// ClearRelatedReservationID clears the value of the "related_reservation_id" field.
func (_u *SupportTicketUpdateOne) ClearRelatedReservationID() *SupportTicketUpdateOne {
	_u.mutation.ClearRelatedReservationID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SupportTicketUpdateOne) SetSessionID(v string) *SupportTicketUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SupportTicketUpdateOne) SetNillableSessionID(v *string) *SupportTicketUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SupportTicketUpdateOne) ClearSessionID() *SupportTicketUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SupportTicketUpdateOne) SetSubject(v string) *SupportTicketUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SupportTicketUpdateOne) SetNillableSubject(v *string) *SupportTicketUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *SupportTicketUpdateOne) ClearSubject() *SupportTicketUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupportTicketUpdateOne) SetStatus(v supportticket.Status) *SupportTicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupportTicketUpdateOne) SetNillableStatus(v *supportticket.Status) *SupportTicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SupportTicketUpdateOne) SetPriority(v supportticket.Priority) *SupportTicketUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SupportTicketUpdateOne) SetNillablePriority(v *supportticket.Priority) *SupportTicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetAssignedEmployeeID sets the "assigned_employee_id" field.
func (_u *SupportTicketUpdateOne) SetAssignedEmployeeID(v string) *SupportTicketUpdateOne {
	_u.mutation.SetAssignedEmployeeID(v)
	return _u
}

// SetNillableAssignedEmployeeID sets the "assigned_employee_id" field if the given value is not nil.
func (_u *SupportTicketUpdateOne) SetNillableAssignedEmployeeID(v *string) *SupportTicketUpdateOne {
	if v != nil {
		_u.SetAssignedEmployeeID(*v)
	}
	return _u
}

// ClearAssignedEmployeeID clears the value of the "assigned_employee_id" field.
func (_u *SupportTicketUpdateOne) ClearAssignedEmployeeID() *SupportTicketUpdateOne {
	_u.mutation.ClearAssignedEmployeeID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupportTicketUpdateOne) SetUpdatedAt(v time.Time) *SupportTicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by IDs.
func (_u *SupportTicketUpdateOne) AddMessageIDs(ids ...string) *SupportTicketUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the TicketMessage entity.
func (_u *SupportTicketUpdateOne) AddMessages(v ...*TicketMessage) *SupportTicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the SupportTicketMutation object of the builder.
func (_u *SupportTicketUpdateOne) Mutation() *SupportTicketMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the TicketMessage entity.
func (_u *SupportTicketUpdateOne) ClearMessages() *SupportTicketUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to TicketMessage entities by IDs.
func (_u *SupportTicketUpdateOne) RemoveMessageIDs(ids ...string) *SupportTicketUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to TicketMessage entities.
func (_u *SupportTicketUpdateOne) RemoveMessages(v ...*TicketMessage) *SupportTicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the SupportTicketUpdate builder.
func (_u *SupportTicketUpdateOne) Where(ps ...predicate.SupportTicket) *SupportTicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupportTicketUpdateOne) Select(field string, fields ...string) *SupportTicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupportTicket entity.
func (_u *SupportTicketUpdateOne) Save(ctx context.Context) (*SupportTicket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportTicketUpdateOne) SaveX(ctx context.Context) *SupportTicket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupportTicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportTicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupportTicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supportticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportTicketUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := supportticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupportTicket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := supportticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "SupportTicket.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportTicketUpdateOne) sqlSave(ctx context.Context) (_node *SupportTicket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportticket.Table, supportticket.Columns, sqlgraph.NewFieldSpec(supportticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupportTicket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supportticket.FieldID)
		for _, f := range fields {
			if !supportticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supportticket.FieldID {
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
	if value, ok := _u.mutation.RelatedOrderID(); ok {
		_spec.SetField(supportticket.FieldRelatedOrderID, field.TypeString, value)
	}
	if _u.mutation.RelatedOrderIDCleared() {
		_spec.ClearField(supportticket.FieldRelatedOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedReservationID(); ok {
		_spec.SetField(supportticket.FieldRelatedReservationID, field.TypeString, value)
	}
	if _u.mutation.RelatedReservationIDCleared() {
		_spec.ClearField(supportticket.FieldRelatedReservationID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(supportticket.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(supportticket.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(supportticket.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(supportticket.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supportticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(supportticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedEmployeeID(); ok {
		_spec.SetField(supportticket.FieldAssignedEmployeeID, field.TypeString, value)
	}
	if _u.mutation.AssignedEmployeeIDCleared() {
		_spec.ClearField(supportticket.FieldAssignedEmployeeID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supportticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SupportTicket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

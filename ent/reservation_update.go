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
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
)

// ReservationUpdate is the builder for updating Reservation entities.
type ReservationUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationMutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdate) Where(ps ...predicate.Reservation) *ReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTableID sets the "table_id" field.
func (_u *ReservationUpdate) SetTableID(v string) *ReservationUpdate {
	_u.mutation.SetTableID(v)
	return _u
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableTableID(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetTableID(*v)
	}
	return _u
}

// ClearTableID clears the value of the "table_id" field.
func (_u *ReservationUpdate) ClearTableID() *ReservationUpdate {
	_u.mutation.ClearTableID()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *ReservationUpdate) SetCustomerName(v string) *ReservationUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableCustomerName(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetReservationDate sets the "reservation_date" field.
func (_u *ReservationUpdate) SetReservationDate(v string) *ReservationUpdate {
	_u.mutation.SetReservationDate(v)
	return _u
}

// SetNillableReservationDate sets the "reservation_date" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableReservationDate(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetReservationDate(*v)
	}
	return _u
}

// SetReservationTime sets the "reservation_time" field.
func (_u *ReservationUpdate) SetReservationTime(v string) *ReservationUpdate {
	_u.mutation.SetReservationTime(v)
	return _u
}

// SetNillableReservationTime sets the "reservation_time" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableReservationTime(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetReservationTime(*v)
	}
	return _u
}

// SetNumberOfGuests sets the "number_of_guests" field.
func (_u *ReservationUpdate) SetNumberOfGuests(v int) *ReservationUpdate {
	_u.mutation.ResetNumberOfGuests()
	_u.mutation.SetNumberOfGuests(v)
	return _u
}

// SetNillableNumberOfGuests sets the "number_of_guests" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableNumberOfGuests(v *int) *ReservationUpdate {
	if v != nil {
		_u.SetNumberOfGuests(*v)
	}
	return _u
}

// AddNumberOfGuests adds value to the "number_of_guests" field.
func (_u *ReservationUpdate) AddNumberOfGuests(v int) *ReservationUpdate {
	_u.mutation.AddNumberOfGuests(v)
	return _u
}

// ClearNumberOfGuests clears the value of the "number_of_guests" field.
func (_u *ReservationUpdate) ClearNumberOfGuests() *ReservationUpdate {
	_u.mutation.ClearNumberOfGuests()
	return _u
}

// SetReservationType sets the "reservation_type" field.
func (_u *ReservationUpdate) SetReservationType(v reservation.ReservationType) *ReservationUpdate {
	_u.mutation.SetReservationType(v)
	return _u
}

// SetNillableReservationType sets the "reservation_type" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableReservationType(v *reservation.ReservationType) *ReservationUpdate {
	if v != nil {
		_u.SetReservationType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdate) SetStatus(v reservation.Status) *ReservationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableStatus(v *reservation.Status) *ReservationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReservationUpdate) SetNotes(v string) *ReservationUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableNotes(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReservationUpdate) ClearNotes() *ReservationUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdate) SetUpdatedAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the ReservationItem entity by IDs.
func (_u *ReservationUpdate) AddItemIDs(ids ...string) *ReservationUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ReservationItem entity.
func (_u *ReservationUpdate) AddItems(v ...*ReservationItem) *ReservationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdate) Mutation() *ReservationMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the ReservationItem entity.
func (_u *ReservationUpdate) ClearItems() *ReservationUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ReservationItem entities by IDs.
func (_u *ReservationUpdate) RemoveItemIDs(ids ...string) *ReservationUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ReservationItem entities.
func (_u *ReservationUpdate) RemoveItems(v ...*ReservationItem) *ReservationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdate) check() error {
	if v, ok := _u.mutation.ReservationType(); ok {
		if err := reservation.ReservationTypeValidator(v); err != nil {
			return &ValidationError{Name: "reservation_type", err: fmt.Errorf(`ent: validator failed for field "Reservation.reservation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TableID(); ok {
		_spec.SetField(reservation.FieldTableID, field.TypeString, value)
	}
	if _u.mutation.TableIDCleared() {
		_spec.ClearField(reservation.FieldTableID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(reservation.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReservationDate(); ok {
		_spec.SetField(reservation.FieldReservationDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReservationTime(); ok {
		_spec.SetField(reservation.FieldReservationTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumberOfGuests(); ok {
		_spec.SetField(reservation.FieldNumberOfGuests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfGuests(); ok {
		_spec.AddField(reservation.FieldNumberOfGuests, field.TypeInt, value)
	}
	if _u.mutation.NumberOfGuestsCleared() {
		_spec.ClearField(reservation.FieldNumberOfGuests, field.TypeInt)
	}
	if value, ok := _u.mutation.ReservationType(); ok {
		_spec.SetField(reservation.FieldReservationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reservation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(reservation.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationUpdateOne is the builder for updating a single Reservation entity.
type ReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationMutation
}

// SetTableID sets the "table_id" field.
func (_u *ReservationUpdateOne) SetTableID(v string) *ReservationUpdateOne {
	_u.mutation.SetTableID(v)
	return _u
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableTableID(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetTableID(*v)
	}
	return _u
}

// ClearTableID clears the value of the "table_id" field.
func (_u *ReservationUpdateOne) ClearTableID() *ReservationUpdateOne {
	_u.mutation.ClearTableID()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *ReservationUpdateOne) SetCustomerName(v string) *ReservationUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableCustomerName(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetReservationDate sets the "reservation_date" field.
func (_u *ReservationUpdateOne) SetReservationDate(v string) *ReservationUpdateOne {
	_u.mutation.SetReservationDate(v)
	return _u
}

// SetNillableReservationDate sets the "reservation_date" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableReservationDate(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetReservationDate(*v)
	}
	return _u
}

// SetReservationTime sets the "reservation_time" field.
func (_u *ReservationUpdateOne) SetReservationTime(v string) *ReservationUpdateOne {
	_u.mutation.SetReservationTime(v)
	return _u
}

// SetNillableReservationTime sets the "reservation_time" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableReservationTime(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetReservationTime(*v)
	}
	return _u
}

// SetNumberOfGuests sets the "number_of_guests" field.
func (_u *ReservationUpdateOne) SetNumberOfGuests(v int) *ReservationUpdateOne {
	_u.mutation.ResetNumberOfGuests()
	_u.mutation.SetNumberOfGuests(v)
	return _u
}

// SetNillableNumberOfGuests sets the "number_of_guests" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableNumberOfGuests(v *int) *ReservationUpdateOne {
	if v != nil {
		_u.SetNumberOfGuests(*v)
	}
	return _u
}

// AddNumberOfGuests adds value to the "number_of_guests" field.
func (_u *ReservationUpdateOne) AddNumberOfGuests(v int) *ReservationUpdateOne {
	_u.mutation.AddNumberOfGuests(v)
	return _u
}

// ClearNumberOfGuests clears the value of the "number_of_guests" field.
func (_u *ReservationUpdateOne) ClearNumberOfGuests() *ReservationUpdateOne {
	_u.mutation.ClearNumberOfGuests()
	return _u
}

// SetReservationType sets the "reservation_type" field.
func (_u *ReservationUpdateOne) SetReservationType(v reservation.ReservationType) *ReservationUpdateOne {
	_u.mutation.SetReservationType(v)
	return _u
}

// SetNillableReservationType sets the "reservation_type" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableReservationType(v *reservation.ReservationType) *ReservationUpdateOne {
	if v != nil {
		_u.SetReservationType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdateOne) SetStatus(v reservation.Status) *ReservationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableStatus(v *reservation.Status) *ReservationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReservationUpdateOne) SetNotes(v string) *ReservationUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableNotes(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReservationUpdateOne) ClearNotes() *ReservationUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdateOne) SetUpdatedAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the ReservationItem entity by IDs.
func (_u *ReservationUpdateOne) AddItemIDs(ids ...string) *ReservationUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ReservationItem entity.
func (_u *ReservationUpdateOne) AddItems(v ...*ReservationItem) *ReservationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdateOne) Mutation() *ReservationMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the ReservationItem entity.
func (_u *ReservationUpdateOne) ClearItems() *ReservationUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ReservationItem entities by IDs.
func (_u *ReservationUpdateOne) RemoveItemIDs(ids ...string) *ReservationUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ReservationItem entities.
func (_u *ReservationUpdateOne) RemoveItems(v ...*ReservationItem) *ReservationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdateOne) Where(ps ...predicate.Reservation) *ReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationUpdateOne) Select(field string, fields ...string) *ReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reservation entity.
func (_u *ReservationUpdateOne) Save(ctx context.Context) (*Reservation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdateOne) SaveX(ctx context.Context) *Reservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdateOne) check() error {
	if v, ok := _u.mutation.ReservationType(); ok {
		if err := reservation.ReservationTypeValidator(v); err != nil {
			return &ValidationError{Name: "reservation_type", err: fmt.Errorf(`ent: validator failed for field "Reservation.reservation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdateOne) sqlSave(ctx context.Context) (_node *Reservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservation.FieldID)
		for _, f := range fields {
			if !reservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reservation.FieldID {
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
	if value, ok := _u.mutation.TableID(); ok {
		_spec.SetField(reservation.FieldTableID, field.TypeString, value)
	}
	if _u.mutation.TableIDCleared() {
		_spec.ClearField(reservation.FieldTableID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(reservation.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReservationDate(); ok {
		_spec.SetField(reservation.FieldReservationDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReservationTime(); ok {
		_spec.SetField(reservation.FieldReservationTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumberOfGuests(); ok {
		_spec.SetField(reservation.FieldNumberOfGuests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfGuests(); ok {
		_spec.AddField(reservation.FieldNumberOfGuests, field.TypeInt, value)
	}
	if _u.mutation.NumberOfGuestsCleared() {
		_spec.ClearField(reservation.FieldNumberOfGuests, field.TypeInt)
	}
	if value, ok := _u.mutation.ReservationType(); ok {
		_spec.SetField(reservation.FieldReservationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reservation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(reservation.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Reservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

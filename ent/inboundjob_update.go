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
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/predicate"
)

// InboundJobUpdate is the builder for updating InboundJob entities.
type InboundJobUpdate struct {
	config
	hooks    []Hook
	mutation *InboundJobMutation
}

// Where appends a list predicates to the InboundJobUpdate builder.
func (_u *InboundJobUpdate) Where(ps ...predicate.InboundJob) *InboundJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboundJobUpdate) SetStatus(v inboundjob.Status) *InboundJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboundJobUpdate) SetNillableStatus(v *inboundjob.Status) *InboundJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *InboundJobUpdate) SetAttempts(v int) *InboundJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *InboundJobUpdate) SetNillableAttempts(v *int) *InboundJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *InboundJobUpdate) AddAttempts(v int) *InboundJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *InboundJobUpdate) SetClaimedBy(v string) *InboundJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *InboundJobUpdate) SetNillableClaimedBy(v *string) *InboundJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *InboundJobUpdate) ClearClaimedBy() *InboundJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *InboundJobUpdate) SetClaimedAt(v time.Time) *InboundJobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *InboundJobUpdate) SetNillableClaimedAt(v *time.Time) *InboundJobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *InboundJobUpdate) ClearClaimedAt() *InboundJobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InboundJobUpdate) SetLastHeartbeatAt(v time.Time) *InboundJobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InboundJobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *InboundJobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InboundJobUpdate) ClearLastHeartbeatAt() *InboundJobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetError sets the "error" field.
func (_u *InboundJobUpdate) SetError(v string) *InboundJobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *InboundJobUpdate) SetNillableError(v *string) *InboundJobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *InboundJobUpdate) ClearError() *InboundJobUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the InboundJobMutation object of the builder.
func (_u *InboundJobUpdate) Mutation() *InboundJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboundJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboundJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboundJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := inboundjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboundJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InboundJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboundjob.Table, inboundjob.Columns, sqlgraph.NewFieldSpec(inboundjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboundjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(inboundjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(inboundjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(inboundjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(inboundjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(inboundjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(inboundjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(inboundjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(inboundjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(inboundjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(inboundjob.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboundJobUpdateOne is the builder for updating a single InboundJob entity.
type InboundJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboundJobMutation
}

// SetStatus sets the "status" field.
func (_u *InboundJobUpdateOne) SetStatus(v inboundjob.Status) *InboundJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboundJobUpdateOne) SetNillableStatus(v *inboundjob.Status) *InboundJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *InboundJobUpdateOne) SetAttempts(v int) *InboundJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *InboundJobUpdateOne) SetNillableAttempts(v *int) *InboundJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *InboundJobUpdateOne) AddAttempts(v int) *InboundJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *InboundJobUpdateOne) SetClaimedBy(v string) *InboundJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *InboundJobUpdateOne) SetNillableClaimedBy(v *string) *InboundJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *InboundJobUpdateOne) ClearClaimedBy() *InboundJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *InboundJobUpdateOne) SetClaimedAt(v time.Time) *InboundJobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *InboundJobUpdateOne) SetNillableClaimedAt(v *time.Time) *InboundJobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *InboundJobUpdateOne) ClearClaimedAt() *InboundJobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InboundJobUpdateOne) SetLastHeartbeatAt(v time.Time) *InboundJobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InboundJobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *InboundJobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InboundJobUpdateOne) ClearLastHeartbeatAt() *InboundJobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetError sets the "error" field.
func (_u *InboundJobUpdateOne) SetError(v string) *InboundJobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *InboundJobUpdateOne) SetNillableError(v *string) *InboundJobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *InboundJobUpdateOne) ClearError() *InboundJobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the InboundJobMutation object of the builder.
func (_u *InboundJobUpdateOne) Mutation() *InboundJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the InboundJobUpdate builder.
func (_u *InboundJobUpdateOne) Where(ps ...predicate.InboundJob) *InboundJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboundJobUpdateOne) Select(field string, fields ...string) *InboundJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboundJob entity.
func (_u *InboundJobUpdateOne) Save(ctx context.Context) (*InboundJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundJobUpdateOne) SaveX(ctx context.Context) *InboundJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboundJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboundJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := inboundjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboundJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InboundJobUpdateOne) sqlSave(ctx context.Context) (_node *InboundJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboundjob.Table, inboundjob.Columns, sqlgraph.NewFieldSpec(inboundjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboundJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboundjob.FieldID)
		for _, f := range fields {
			if !inboundjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboundjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboundjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(inboundjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(inboundjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(inboundjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(inboundjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(inboundjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(inboundjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(inboundjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(inboundjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(inboundjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(inboundjob.FieldError, field.TypeString)
	}
	_node = &InboundJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

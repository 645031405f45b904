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
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/predicate"
)

// BotIntegrationUpdate is the builder for updating BotIntegration entities.
type BotIntegrationUpdate struct {
	config
	hooks    []Hook
	mutation *BotIntegrationMutation
}

// Where appends a list predicates to the BotIntegrationUpdate builder.
func (_u *BotIntegrationUpdate) Where(ps ...predicate.BotIntegration) *BotIntegrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *BotIntegrationUpdate) SetProviderAccountID(v string) *BotIntegrationUpdate {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *BotIntegrationUpdate) SetNillableProviderAccountID(v *string) *BotIntegrationUpdate {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *BotIntegrationUpdate) SetAccessToken(v string) *BotIntegrationUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *BotIntegrationUpdate) SetNillableAccessToken(v *string) *BotIntegrationUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetVerifyToken sets the "verify_token" field.
func (_u *BotIntegrationUpdate) SetVerifyToken(v string) *BotIntegrationUpdate {
	_u.mutation.SetVerifyToken(v)
	return _u
}

// SetNillableVerifyToken sets the "verify_token" field if the given value is not nil.
func (_u *BotIntegrationUpdate) SetNillableVerifyToken(v *string) *BotIntegrationUpdate {
	if v != nil {
		_u.SetVerifyToken(*v)
	}
	return _u
}

// ClearVerifyToken clears the value of the "verify_token" field.
func (_u *BotIntegrationUpdate) ClearVerifyToken() *BotIntegrationUpdate {
	_u.mutation.ClearVerifyToken()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BotIntegrationUpdate) SetIsActive(v bool) *BotIntegrationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BotIntegrationUpdate) SetNillableIsActive(v *bool) *BotIntegrationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotIntegrationUpdate) SetUpdatedAt(v time.Time) *BotIntegrationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BotIntegrationMutation object of the builder.
func (_u *BotIntegrationUpdate) Mutation() *BotIntegrationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotIntegrationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotIntegrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotIntegrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotIntegrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotIntegrationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := botintegration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BotIntegrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(botintegration.Table, botintegration.Columns, sqlgraph.NewFieldSpec(botintegration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(botintegration.FieldProviderAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(botintegration.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerifyToken(); ok {
		_spec.SetField(botintegration.FieldVerifyToken, field.TypeString, value)
	}
	if _u.mutation.VerifyTokenCleared() {
		_spec.ClearField(botintegration.FieldVerifyToken, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(botintegration.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(botintegration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botintegration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotIntegrationUpdateOne is the builder for updating a single BotIntegration entity.
type BotIntegrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotIntegrationMutation
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *BotIntegrationUpdateOne) SetProviderAccountID(v string) *BotIntegrationUpdateOne {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *BotIntegrationUpdateOne) SetNillableProviderAccountID(v *string) *BotIntegrationUpdateOne {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *BotIntegrationUpdateOne) SetAccessToken(v string) *BotIntegrationUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *BotIntegrationUpdateOne) SetNillableAccessToken(v *string) *BotIntegrationUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetVerifyToken sets the "verify_token" field.
func (_u *BotIntegrationUpdateOne) SetVerifyToken(v string) *BotIntegrationUpdateOne {
	_u.mutation.SetVerifyToken(v)
	return _u
}

// SetNillableVerifyToken sets the "verify_token" field if the given value is not nil.
func (_u *BotIntegrationUpdateOne) SetNillableVerifyToken(v *string) *BotIntegrationUpdateOne {
	if v != nil {
		_u.SetVerifyToken(*v)
	}
	return _u
}

// ClearVerifyToken clears the value of the "verify_token" field.
func (_u *BotIntegrationUpdateOne) ClearVerifyToken() *BotIntegrationUpdateOne {
	_u.mutation.ClearVerifyToken()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BotIntegrationUpdateOne) SetIsActive(v bool) *BotIntegrationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BotIntegrationUpdateOne) SetNillableIsActive(v *bool) *BotIntegrationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotIntegrationUpdateOne) SetUpdatedAt(v time.Time) *BotIntegrationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BotIntegrationMutation object of the builder.
func (_u *BotIntegrationUpdateOne) Mutation() *BotIntegrationMutation {
	return _u.mutation
}

// Where appends a list predicates to the BotIntegrationUpdate builder.
func (_u *BotIntegrationUpdateOne) Where(ps ...predicate.BotIntegration) *BotIntegrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotIntegrationUpdateOne) Select(field string, fields ...string) *BotIntegrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BotIntegration entity.
func (_u *BotIntegrationUpdateOne) Save(ctx context.Context) (*BotIntegration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotIntegrationUpdateOne) SaveX(ctx context.Context) *BotIntegration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotIntegrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotIntegrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotIntegrationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := botintegration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BotIntegrationUpdateOne) sqlSave(ctx context.Context) (_node *BotIntegration, err error) {
	_spec := sqlgraph.NewUpdateSpec(botintegration.Table, botintegration.Columns, sqlgraph.NewFieldSpec(botintegration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BotIntegration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, botintegration.FieldID)
		for _, f := range fields {
			if !botintegration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != botintegration.FieldID {
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
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(botintegration.FieldProviderAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(botintegration.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.VerifyToken(); ok {
		_spec.SetField(botintegration.FieldVerifyToken, field.TypeString, value)
	}
	if _u.mutation.VerifyTokenCleared() {
		_spec.ClearField(botintegration.FieldVerifyToken, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(botintegration.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(botintegration.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BotIntegration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botintegration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

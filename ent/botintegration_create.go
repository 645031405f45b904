// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/botintegration"
)

// BotIntegrationCreate is the builder for creating a BotIntegration entity.
type BotIntegrationCreate struct {
	config
	mutation *BotIntegrationMutation
	hooks    []Hook
}

// SetBusinessID sets the "business_id" field.
func (_c *BotIntegrationCreate) SetBusinessID(v string) *BotIntegrationCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *BotIntegrationCreate) SetPlatform(v botintegration.Platform) *BotIntegrationCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_c *BotIntegrationCreate) SetProviderAccountID(v string) *BotIntegrationCreate {
	_c.mutation.SetProviderAccountID(v)
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *BotIntegrationCreate) SetAccessToken(v string) *BotIntegrationCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetVerifyToken sets the "verify_token" field.
func (_c *BotIntegrationCreate) SetVerifyToken(v string) *BotIntegrationCreate {
	_c.mutation.SetVerifyToken(v)
	return _c
}

// SetNillableVerifyToken sets the "verify_token" field if the given value is not nil.
func (_c *BotIntegrationCreate) SetNillableVerifyToken(v *string) *BotIntegrationCreate {
	if v != nil {
		_c.SetVerifyToken(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *BotIntegrationCreate) SetIsActive(v bool) *BotIntegrationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *BotIntegrationCreate) SetNillableIsActive(v *bool) *BotIntegrationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BotIntegrationCreate) SetCreatedAt(v time.Time) *BotIntegrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BotIntegrationCreate) SetNillableCreatedAt(v *time.Time) *BotIntegrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BotIntegrationCreate) SetUpdatedAt(v time.Time) *BotIntegrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BotIntegrationCreate) SetNillableUpdatedAt(v *time.Time) *BotIntegrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BotIntegrationCreate) SetID(v string) *BotIntegrationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BotIntegrationMutation object of the builder.
func (_c *BotIntegrationCreate) Mutation() *BotIntegrationMutation {
	return _c.mutation
}

// Save creates the BotIntegration in the database.
func (_c *BotIntegrationCreate) Save(ctx context.Context) (*BotIntegration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotIntegrationCreate) SaveX(ctx context.Context) *BotIntegration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotIntegrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotIntegrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotIntegrationCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := botintegration.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := botintegration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := botintegration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotIntegrationCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "BotIntegration.business_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "BotIntegration.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := botintegration.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "BotIntegration.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProviderAccountID(); !ok {
		return &ValidationError{Name: "provider_account_id", err: errors.New(`ent: missing required field "BotIntegration.provider_account_id"`)}
	}
	if _, ok := _c.mutation.AccessToken(); !ok {
		return &ValidationError{Name: "access_token", err: errors.New(`ent: missing required field "BotIntegration.access_token"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "BotIntegration.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BotIntegration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BotIntegration.updated_at"`)}
	}
	return nil
}

func (_c *BotIntegrationCreate) sqlSave(ctx context.Context) (*BotIntegration, error) {
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
			return nil, fmt.Errorf("unexpected BotIntegration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BotIntegrationCreate) createSpec() (*BotIntegration, *sqlgraph.CreateSpec) {
	var (
		_node = &BotIntegration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(botintegration.Table, sqlgraph.NewFieldSpec(botintegration.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(botintegration.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(botintegration.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.ProviderAccountID(); ok {
		_spec.SetField(botintegration.FieldProviderAccountID, field.TypeString, value)
		_node.ProviderAccountID = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(botintegration.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.VerifyToken(); ok {
		_spec.SetField(botintegration.FieldVerifyToken, field.TypeString, value)
		_node.VerifyToken = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(botintegration.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(botintegration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(botintegration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BotIntegrationCreateBulk is the builder for creating many BotIntegration entities in bulk.
type BotIntegrationCreateBulk struct {
	config
	err      error
	builders []*BotIntegrationCreate
}

// Save creates the BotIntegration entities in the database.
func (_c *BotIntegrationCreateBulk) Save(ctx context.Context) ([]*BotIntegration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BotIntegration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotIntegrationMutation)
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
func (_c *BotIntegrationCreateBulk) SaveX(ctx context.Context) []*BotIntegration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotIntegrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotIntegrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

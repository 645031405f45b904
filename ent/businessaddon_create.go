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
	"github.com/vendrahq/vendra/ent/businessaddon"
)

// BusinessAddonCreate is the builder for creating a BusinessAddon entity.
type BusinessAddonCreate struct {
	config
	mutation *BusinessAddonMutation
	hooks    []Hook
}

// SetBusinessID sets the "business_id" field.
func (_c *BusinessAddonCreate) SetBusinessID(v string) *BusinessAddonCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetAddonKey sets the "addon_key" field.
func (_c *BusinessAddonCreate) SetAddonKey(v businessaddon.AddonKey) *BusinessAddonCreate {
	_c.mutation.SetAddonKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BusinessAddonCreate) SetStatus(v businessaddon.Status) *BusinessAddonCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BusinessAddonCreate) SetNillableStatus(v *businessaddon.Status) *BusinessAddonCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriceOverride sets the "price_override" field.
func (_c *BusinessAddonCreate) SetPriceOverride(v decimal.Decimal) *BusinessAddonCreate {
	_c.mutation.SetPriceOverride(v)
	return _c
}

// SetNillablePriceOverride sets the "price_override" field if the given value is not nil.
func (_c *BusinessAddonCreate) SetNillablePriceOverride(v *decimal.Decimal) *BusinessAddonCreate {
	if v != nil {
		_c.SetPriceOverride(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessAddonCreate) SetCreatedAt(v time.Time) *BusinessAddonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessAddonCreate) SetNillableCreatedAt(v *time.Time) *BusinessAddonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessAddonCreate) SetUpdatedAt(v time.Time) *BusinessAddonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessAddonCreate) SetNillableUpdatedAt(v *time.Time) *BusinessAddonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessAddonCreate) SetID(v string) *BusinessAddonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BusinessAddonMutation object of the builder.
func (_c *BusinessAddonCreate) Mutation() *BusinessAddonMutation {
	return _c.mutation
}

// Save creates the BusinessAddon in the database.
func (_c *BusinessAddonCreate) Save(ctx context.Context) (*BusinessAddon, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessAddonCreate) SaveX(ctx context.Context) *BusinessAddon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessAddonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessAddonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessAddonCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := businessaddon.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PriceOverride(); !ok {
		v := businessaddon.DefaultPriceOverride
		_c.mutation.SetPriceOverride(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := businessaddon.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businessaddon.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessAddonCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "BusinessAddon.business_id"`)}
	}
	if _, ok := _c.mutation.AddonKey(); !ok {
		return &ValidationError{Name: "addon_key", err: errors.New(`ent: missing required field "BusinessAddon.addon_key"`)}
	}
	if v, ok := _c.mutation.AddonKey(); ok {
		if err := businessaddon.AddonKeyValidator(v); err != nil {
			return &ValidationError{Name: "addon_key", err: fmt.Errorf(`ent: validator failed for field "BusinessAddon.addon_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BusinessAddon.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := businessaddon.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessAddon.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceOverride(); !ok {
		return &ValidationError{Name: "price_override", err: errors.New(`ent: missing required field "BusinessAddon.price_override"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusinessAddon.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BusinessAddon.updated_at"`)}
	}
	return nil
}

func (_c *BusinessAddonCreate) sqlSave(ctx context.Context) (*BusinessAddon, error) {
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
			return nil, fmt.Errorf("unexpected BusinessAddon.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusinessAddonCreate) createSpec() (*BusinessAddon, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessAddon{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businessaddon.Table, sqlgraph.NewFieldSpec(businessaddon.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(businessaddon.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.AddonKey(); ok {
		_spec.SetField(businessaddon.FieldAddonKey, field.TypeEnum, value)
		_node.AddonKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(businessaddon.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PriceOverride(); ok {
		_spec.SetField(businessaddon.FieldPriceOverride, field.TypeOther, value)
		_node.PriceOverride = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(businessaddon.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businessaddon.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BusinessAddonCreateBulk is the builder for creating many BusinessAddon entities in bulk.
type BusinessAddonCreateBulk struct {
	config
	err      error
	builders []*BusinessAddonCreate
}

// Save creates the BusinessAddon entities in the database.
func (_c *BusinessAddonCreateBulk) Save(ctx context.Context) ([]*BusinessAddon, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessAddon, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessAddonMutation)
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
func (_c *BusinessAddonCreateBulk) SaveX(ctx context.Context) []*BusinessAddon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessAddonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessAddonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/openinghour"
)

// OpeningHourCreate is the builder for creating a OpeningHour entity.
type OpeningHourCreate struct {
	config
	mutation *OpeningHourMutation
	hooks    []Hook
}

// SetOwnerType sets the "owner_type" field.
func (_c *OpeningHourCreate) SetOwnerType(v openinghour.OwnerType) *OpeningHourCreate {
	_c.mutation.SetOwnerType(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *OpeningHourCreate) SetOwnerID(v string) *OpeningHourCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *OpeningHourCreate) SetDayOfWeek(v int) *OpeningHourCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetOpenTime sets the "open_time" field.
func (_c *OpeningHourCreate) SetOpenTime(v string) *OpeningHourCreate {
	_c.mutation.SetOpenTime(v)
	return _c
}

// SetNillableOpenTime sets the "open_time" field if the given value is not nil.
func (_c *OpeningHourCreate) SetNillableOpenTime(v *string) *OpeningHourCreate {
	if v != nil {
		_c.SetOpenTime(*v)
	}
	return _c
}

// SetCloseTime sets the "close_time" field.
func (_c *OpeningHourCreate) SetCloseTime(v string) *OpeningHourCreate {
	_c.mutation.SetCloseTime(v)
	return _c
}

// SetNillableCloseTime sets the "close_time" field if the given value is not nil.
func (_c *OpeningHourCreate) SetNillableCloseTime(v *string) *OpeningHourCreate {
	if v != nil {
		_c.SetCloseTime(*v)
	}
	return _c
}

// SetIsClosed sets the "is_closed" field.
func (_c *OpeningHourCreate) SetIsClosed(v bool) *OpeningHourCreate {
	_c.mutation.SetIsClosed(v)
	return _c
}

// SetNillableIsClosed sets the "is_closed" field if the given value is not nil.
func (_c *OpeningHourCreate) SetNillableIsClosed(v *bool) *OpeningHourCreate {
	if v != nil {
		_c.SetIsClosed(*v)
	}
	return _c
}

// SetLastOrderTime sets the "last_order_time" field.
func (_c *OpeningHourCreate) SetLastOrderTime(v string) *OpeningHourCreate {
	_c.mutation.SetLastOrderTime(v)
	return _c
}

// SetNillableLastOrderTime sets the "last_order_time" field if the given value is not nil.
func (_c *OpeningHourCreate) SetNillableLastOrderTime(v *string) *OpeningHourCreate {
	if v != nil {
		_c.SetLastOrderTime(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OpeningHourCreate) SetCreatedAt(v time.Time) *OpeningHourCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OpeningHourCreate) SetNillableCreatedAt(v *time.Time) *OpeningHourCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OpeningHourCreate) SetUpdatedAt(v time.Time) *OpeningHourCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OpeningHourCreate) SetNillableUpdatedAt(v *time.Time) *OpeningHourCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OpeningHourCreate) SetID(v string) *OpeningHourCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OpeningHourMutation object of the builder.
func (_c *OpeningHourCreate) Mutation() *OpeningHourMutation {
	return _c.mutation
}

// Save creates the OpeningHour in the database.
func (_c *OpeningHourCreate) Save(ctx context.Context) (*OpeningHour, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OpeningHourCreate) SaveX(ctx context.Context) *OpeningHour {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OpeningHourCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OpeningHourCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OpeningHourCreate) defaults() {
	if _, ok := _c.mutation.IsClosed(); !ok {
		v := openinghour.DefaultIsClosed
		_c.mutation.SetIsClosed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := openinghour.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := openinghour.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OpeningHourCreate) check() error {
	if _, ok := _c.mutation.OwnerType(); !ok {
		return &ValidationError{Name: "owner_type", err: errors.New(`ent: missing required field "OpeningHour.owner_type"`)}
	}
	if v, ok := _c.mutation.OwnerType(); ok {
		if err := openinghour.OwnerTypeValidator(v); err != nil {
			return &ValidationError{Name: "owner_type", err: fmt.Errorf(`ent: validator failed for field "OpeningHour.owner_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "OpeningHour.owner_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`ent: missing required field "OpeningHour.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := openinghour.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`ent: validator failed for field "OpeningHour.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsClosed(); !ok {
		return &ValidationError{Name: "is_closed", err: errors.New(`ent: missing required field "OpeningHour.is_closed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OpeningHour.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OpeningHour.updated_at"`)}
	}
	return nil
}

func (_c *OpeningHourCreate) sqlSave(ctx context.Context) (*OpeningHour, error) {
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
			return nil, fmt.Errorf("unexpected OpeningHour.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OpeningHourCreate) createSpec() (*OpeningHour, *sqlgraph.CreateSpec) {
	var (
		_node = &OpeningHour{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(openinghour.Table, sqlgraph.NewFieldSpec(openinghour.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerType(); ok {
		_spec.SetField(openinghour.FieldOwnerType, field.TypeEnum, value)
		_node.OwnerType = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(openinghour.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(openinghour.FieldDayOfWeek, field.TypeInt, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.OpenTime(); ok {
		_spec.SetField(openinghour.FieldOpenTime, field.TypeString, value)
		_node.OpenTime = &value
	}
	if value, ok := _c.mutation.CloseTime(); ok {
		_spec.SetField(openinghour.FieldCloseTime, field.TypeString, value)
		_node.CloseTime = &value
	}
	if value, ok := _c.mutation.IsClosed(); ok {
		_spec.SetField(openinghour.FieldIsClosed, field.TypeBool, value)
		_node.IsClosed = value
	}
	if value, ok := _c.mutation.LastOrderTime(); ok {
		_spec.SetField(openinghour.FieldLastOrderTime, field.TypeString, value)
		_node.LastOrderTime = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(openinghour.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(openinghour.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OpeningHourCreateBulk is the builder for creating many OpeningHour entities in bulk.
type OpeningHourCreateBulk struct {
	config
	err      error
	builders []*OpeningHourCreate
}

// Save creates the OpeningHour entities in the database.
func (_c *OpeningHourCreateBulk) Save(ctx context.Context) ([]*OpeningHour, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OpeningHour, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OpeningHourMutation)
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
func (_c *OpeningHourCreateBulk) SaveX(ctx context.Context) []*OpeningHour {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OpeningHourCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OpeningHourCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

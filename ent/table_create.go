// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vendrahq/vendra/ent/table"
)

// TableCreate is the builder for creating a Table entity.
type TableCreate struct {
	config
	mutation *TableMutation
	hooks    []Hook
}

// SetBusinessID sets the "business_id" field.
func (_c *TableCreate) SetBusinessID(v string) *TableCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *TableCreate) SetOwnerUserID(v string) *TableCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetTableNumber sets the "table_number" field.
func (_c *TableCreate) SetTableNumber(v int) *TableCreate {
	_c.mutation.SetTableNumber(v)
	return _c
}

// SetMinSeats sets the "min_seats" field.
func (_c *TableCreate) SetMinSeats(v int) *TableCreate {
	_c.mutation.SetMinSeats(v)
	return _c
}

// SetNillableMinSeats sets the "min_seats" field if the given value is not nil.
func (_c *TableCreate) SetNillableMinSeats(v *int) *TableCreate {
	if v != nil {
		_c.SetMinSeats(*v)
	}
	return _c
}

// SetMaxSeats sets the "max_seats" field.
func (_c *TableCreate) SetMaxSeats(v int) *TableCreate {
	_c.mutation.SetMaxSeats(v)
	return _c
}

// SetNillableMaxSeats sets the "max_seats" field if the given value is not nil.
func (_c *TableCreate) SetNillableMaxSeats(v *int) *TableCreate {
	if v != nil {
		_c.SetMaxSeats(*v)
	}
	return _c
}

// SetPositionLabel sets the "position_label" field.
func (_c *TableCreate) SetPositionLabel(v string) *TableCreate {
	_c.mutation.SetPositionLabel(v)
	return _c
}

// SetNillablePositionLabel sets the "position_label" field if the given value is not nil.
func (_c *TableCreate) SetNillablePositionLabel(v *string) *TableCreate {
	if v != nil {
		_c.SetPositionLabel(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TableCreate) SetIsActive(v bool) *TableCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TableCreate) SetNillableIsActive(v *bool) *TableCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TableCreate) SetCreatedAt(v time.Time) *TableCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TableCreate) SetNillableCreatedAt(v *time.Time) *TableCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TableCreate) SetUpdatedAt(v time.Time) *TableCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TableCreate) SetNillableUpdatedAt(v *time.Time) *TableCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TableCreate) SetID(v string) *TableCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TableMutation object of the builder.
func (_c *TableCreate) Mutation() *TableMutation {
	return _c.mutation
}

// Save creates the Table in the database.
func (_c *TableCreate) Save(ctx context.Context) (*Table, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TableCreate) SaveX(ctx context.Context) *Table {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TableCreate) defaults() {
	if _, ok := _c.mutation.MinSeats(); !ok {
		v := table.DefaultMinSeats
		_c.mutation.SetMinSeats(v)
	}
	if _, ok := _c.mutation.MaxSeats(); !ok {
		v := table.DefaultMaxSeats
		_c.mutation.SetMaxSeats(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := table.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := table.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := table.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TableCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Table.business_id"`)}
	}
	if _, ok := _c.mutation.OwnerUserID(); !ok {
		return &ValidationError{Name: "owner_user_id", err: errors.New(`ent: missing required field "Table.owner_user_id"`)}
	}
	if _, ok := _c.mutation.TableNumber(); !ok {
		return &ValidationError{Name: "table_number", err: errors.New(`ent: missing required field "Table.table_number"`)}
	}
	if _, ok := _c.mutation.MinSeats(); !ok {
		return &ValidationError{Name: "min_seats", err: errors.New(`ent: missing required field "Table.min_seats"`)}
	}
	if _, ok := _c.mutation.MaxSeats(); !ok {
		return &ValidationError{Name: "max_seats", err: errors.New(`ent: missing required field "Table.max_seats"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Table.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Table.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Table.updated_at"`)}
	}
	return nil
}

func (_c *TableCreate) sqlSave(ctx context.Context) (*Table, error) {
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
			return nil, fmt.Errorf("unexpected Table.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TableCreate) createSpec() (*Table, *sqlgraph.CreateSpec) {
	var (
		_node = &Table{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(table.Table, sqlgraph.NewFieldSpec(table.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(table.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(table.FieldOwnerUserID, field.TypeString, value)
		_node.OwnerUserID = value
	}
	if value, ok := _c.mutation.TableNumber(); ok {
		_spec.SetField(table.FieldTableNumber, field.TypeInt, value)
		_node.TableNumber = value
	}
	if value, ok := _c.mutation.MinSeats(); ok {
		_spec.SetField(table.FieldMinSeats, field.TypeInt, value)
		_node.MinSeats = value
	}
	if value, ok := _c.mutation.MaxSeats(); ok {
		_spec.SetField(table.FieldMaxSeats, field.TypeInt, value)
		_node.MaxSeats = value
	}
	if value, ok := _c.mutation.PositionLabel(); ok {
		_spec.SetField(table.FieldPositionLabel, field.TypeString, value)
		_node.PositionLabel = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(table.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(table.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(table.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TableCreateBulk is the builder for creating many Table entities in bulk.
type TableCreateBulk struct {
	config
	err      error
	builders []*TableCreate
}

// Save creates the Table entities in the database.
func (_c *TableCreateBulk) Save(ctx context.Context) ([]*Table, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Table, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TableMutation)
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
func (_c *TableCreateBulk) SaveX(ctx context.Context) []*Table {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

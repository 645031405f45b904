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
	"github.com/vendrahq/vendra/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetBusinessID sets the "business_id" field.
func (_c *ItemCreate) SetBusinessID(v string) *ItemCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *ItemCreate) SetOwnerUserID(v string) *ItemCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_c *ItemCreate) SetNillableOwnerUserID(v *string) *ItemCreate {
	if v != nil {
		_c.SetOwnerUserID(*v)
	}
	return _c
}

// SetMenuID sets the "menu_id" field.
func (_c *ItemCreate) SetMenuID(v string) *ItemCreate {
	_c.mutation.SetMenuID(v)
	return _c
}

// SetNillableMenuID sets the "menu_id" field if the given value is not nil.
func (_c *ItemCreate) SetNillableMenuID(v *string) *ItemCreate {
	if v != nil {
		_c.SetMenuID(*v)
	}
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *ItemCreate) SetCategoryID(v string) *ItemCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCategoryID(v *string) *ItemCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ItemCreate) SetName(v string) *ItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ItemCreate) SetDescription(v string) *ItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDescription(v *string) *ItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *ItemCreate) SetItemType(v item.ItemType) *ItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_c *ItemCreate) SetNillableItemType(v *item.ItemType) *ItemCreate {
	if v != nil {
		_c.SetItemType(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ItemCreate) SetPrice(v decimal.Decimal) *ItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ItemCreate) SetNillablePrice(v *decimal.Decimal) *ItemCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *ItemCreate) SetCost(v decimal.Decimal) *ItemCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCost(v *decimal.Decimal) *ItemCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetPreparationTimeMinutes sets the "preparation_time_minutes" field.
func (_c *ItemCreate) SetPreparationTimeMinutes(v int) *ItemCreate {
	_c.mutation.SetPreparationTimeMinutes(v)
	return _c
}

// SetNillablePreparationTimeMinutes sets the "preparation_time_minutes" field if the given value is not nil.
func (_c *ItemCreate) SetNillablePreparationTimeMinutes(v *int) *ItemCreate {
	if v != nil {
		_c.SetPreparationTimeMinutes(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *ItemCreate) SetDurationMinutes(v int) *ItemCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDurationMinutes(v *int) *ItemCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetIsSchedulable sets the "is_schedulable" field.
func (_c *ItemCreate) SetIsSchedulable(v bool) *ItemCreate {
	_c.mutation.SetIsSchedulable(v)
	return _c
}

// SetNillableIsSchedulable sets the "is_schedulable" field if the given value is not nil.
func (_c *ItemCreate) SetNillableIsSchedulable(v *bool) *ItemCreate {
	if v != nil {
		_c.SetIsSchedulable(*v)
	}
	return _c
}

// SetMinScheduleHours sets the "min_schedule_hours" field.
func (_c *ItemCreate) SetMinScheduleHours(v int) *ItemCreate {
	_c.mutation.SetMinScheduleHours(v)
	return _c
}

// SetNillableMinScheduleHours sets the "min_schedule_hours" field if the given value is not nil.
func (_c *ItemCreate) SetNillableMinScheduleHours(v *int) *ItemCreate {
	if v != nil {
		_c.SetMinScheduleHours(*v)
	}
	return _c
}

// SetCancelableBeforeHours sets the "cancelable_before_hours" field.
func (_c *ItemCreate) SetCancelableBeforeHours(v int) *ItemCreate {
	_c.mutation.SetCancelableBeforeHours(v)
	return _c
}

// SetNillableCancelableBeforeHours sets the "cancelable_before_hours" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCancelableBeforeHours(v *int) *ItemCreate {
	if v != nil {
		_c.SetCancelableBeforeHours(*v)
	}
	return _c
}

// SetStockQuantity sets the "stock_quantity" field.
func (_c *ItemCreate) SetStockQuantity(v int) *ItemCreate {
	_c.mutation.SetStockQuantity(v)
	return _c
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_c *ItemCreate) SetNillableStockQuantity(v *int) *ItemCreate {
	if v != nil {
		_c.SetStockQuantity(*v)
	}
	return _c
}

// SetAvailability sets the "availability" field.
func (_c *ItemCreate) SetAvailability(v item.Availability) *ItemCreate {
	_c.mutation.SetAvailability(v)
	return _c
}

// SetNillableAvailability sets the "availability" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAvailability(v *item.Availability) *ItemCreate {
	if v != nil {
		_c.SetAvailability(*v)
	}
	return _c
}

// SetDaysAvailable sets the "days_available" field.
func (_c *ItemCreate) SetDaysAvailable(v []int) *ItemCreate {
	_c.mutation.SetDaysAvailable(v)
	return _c
}

// SetAvailableFrom sets the "available_from" field.
func (_c *ItemCreate) SetAvailableFrom(v string) *ItemCreate {
	_c.mutation.SetAvailableFrom(v)
	return _c
}

// SetNillableAvailableFrom sets the "available_from" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAvailableFrom(v *string) *ItemCreate {
	if v != nil {
		_c.SetAvailableFrom(*v)
	}
	return _c
}

// SetAvailableTo sets the "available_to" field.
func (_c *ItemCreate) SetAvailableTo(v string) *ItemCreate {
	_c.mutation.SetAvailableTo(v)
	return _c
}

// SetNillableAvailableTo sets the "available_to" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAvailableTo(v *string) *ItemCreate {
	if v != nil {
		_c.SetAvailableTo(*v)
	}
	return _c
}

// SetTimesOrdered sets the "times_ordered" field.
func (_c *ItemCreate) SetTimesOrdered(v int) *ItemCreate {
	_c.mutation.SetTimesOrdered(v)
	return _c
}

// SetNillableTimesOrdered sets the "times_ordered" field if the given value is not nil.
func (_c *ItemCreate) SetNillableTimesOrdered(v *int) *ItemCreate {
	if v != nil {
		_c.SetTimesOrdered(*v)
	}
	return _c
}

// SetTimesDelivered sets the "times_delivered" field.
func (_c *ItemCreate) SetTimesDelivered(v int) *ItemCreate {
	_c.mutation.SetTimesDelivered(v)
	return _c
}

// SetNillableTimesDelivered sets the "times_delivered" field if the given value is not nil.
func (_c *ItemCreate) SetNillableTimesDelivered(v *int) *ItemCreate {
	if v != nil {
		_c.SetTimesDelivered(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ItemCreate) SetDeletedAt(v time.Time) *ItemCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDeletedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItemCreate) SetCreatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCreatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemCreate) SetUpdatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableUpdatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemCreate) SetID(v string) *ItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.ItemType(); !ok {
		v := item.DefaultItemType
		_c.mutation.SetItemType(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := item.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.IsSchedulable(); !ok {
		v := item.DefaultIsSchedulable
		_c.mutation.SetIsSchedulable(v)
	}
	if _, ok := _c.mutation.MinScheduleHours(); !ok {
		v := item.DefaultMinScheduleHours
		_c.mutation.SetMinScheduleHours(v)
	}
	if _, ok := _c.mutation.Availability(); !ok {
		v := item.DefaultAvailability
		_c.mutation.SetAvailability(v)
	}
	if _, ok := _c.mutation.TimesOrdered(); !ok {
		v := item.DefaultTimesOrdered
		_c.mutation.SetTimesOrdered(v)
	}
	if _, ok := _c.mutation.TimesDelivered(); !ok {
		v := item.DefaultTimesDelivered
		_c.mutation.SetTimesDelivered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := item.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := item.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Item.business_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Item.name"`)}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "Item.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Item.price"`)}
	}
	if _, ok := _c.mutation.IsSchedulable(); !ok {
		return &ValidationError{Name: "is_schedulable", err: errors.New(`ent: missing required field "Item.is_schedulable"`)}
	}
	if _, ok := _c.mutation.MinScheduleHours(); !ok {
		return &ValidationError{Name: "min_schedule_hours", err: errors.New(`ent: missing required field "Item.min_schedule_hours"`)}
	}
	if _, ok := _c.mutation.Availability(); !ok {
		return &ValidationError{Name: "availability", err: errors.New(`ent: missing required field "Item.availability"`)}
	}
	if v, ok := _c.mutation.Availability(); ok {
		if err := item.AvailabilityValidator(v); err != nil {
			return &ValidationError{Name: "availability", err: fmt.Errorf(`ent: validator failed for field "Item.availability": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimesOrdered(); !ok {
		return &ValidationError{Name: "times_ordered", err: errors.New(`ent: missing required field "Item.times_ordered"`)}
	}
	if _, ok := _c.mutation.TimesDelivered(); !ok {
		return &ValidationError{Name: "times_delivered", err: errors.New(`ent: missing required field "Item.times_delivered"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Item.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Item.updated_at"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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
			return nil, fmt.Errorf("unexpected Item.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(item.FieldBusinessID, field.TypeString, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(item.FieldOwnerUserID, field.TypeString, value)
		_node.OwnerUserID = &value
	}
	if value, ok := _c.mutation.MenuID(); ok {
		_spec.SetField(item.FieldMenuID, field.TypeString, value)
		_node.MenuID = &value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(item.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(item.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(item.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeEnum, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(item.FieldPrice, field.TypeOther, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(item.FieldCost, field.TypeOther, value)
		_node.Cost = &value
	}
	if value, ok := _c.mutation.PreparationTimeMinutes(); ok {
		_spec.SetField(item.FieldPreparationTimeMinutes, field.TypeInt, value)
		_node.PreparationTimeMinutes = &value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(item.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = &value
	}
	if value, ok := _c.mutation.IsSchedulable(); ok {
		_spec.SetField(item.FieldIsSchedulable, field.TypeBool, value)
		_node.IsSchedulable = value
	}
	if value, ok := _c.mutation.MinScheduleHours(); ok {
		_spec.SetField(item.FieldMinScheduleHours, field.TypeInt, value)
		_node.MinScheduleHours = value
	}
	if value, ok := _c.mutation.CancelableBeforeHours(); ok {
		_spec.SetField(item.FieldCancelableBeforeHours, field.TypeInt, value)
		_node.CancelableBeforeHours = &value
	}
	if value, ok := _c.mutation.StockQuantity(); ok {
		_spec.SetField(item.FieldStockQuantity, field.TypeInt, value)
		_node.StockQuantity = &value
	}
	if value, ok := _c.mutation.Availability(); ok {
		_spec.SetField(item.FieldAvailability, field.TypeEnum, value)
		_node.Availability = value
	}
	if value, ok := _c.mutation.DaysAvailable(); ok {
		_spec.SetField(item.FieldDaysAvailable, field.TypeJSON, value)
		_node.DaysAvailable = value
	}
	if value, ok := _c.mutation.AvailableFrom(); ok {
		_spec.SetField(item.FieldAvailableFrom, field.TypeString, value)
		_node.AvailableFrom = &value
	}
	if value, ok := _c.mutation.AvailableTo(); ok {
		_spec.SetField(item.FieldAvailableTo, field.TypeString, value)
		_node.AvailableTo = &value
	}
	if value, ok := _c.mutation.TimesOrdered(); ok {
		_spec.SetField(item.FieldTimesOrdered, field.TypeInt, value)
		_node.TimesOrdered = value
	}
	if value, ok := _c.mutation.TimesDelivered(); ok {
		_spec.SetField(item.FieldTimesDelivered, field.TypeInt, value)
		_node.TimesDelivered = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(item.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *ItemUpdate) SetOwnerUserID(v string) *ItemUpdate {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableOwnerUserID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *ItemUpdate) ClearOwnerUserID() *ItemUpdate {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetMenuID sets the "menu_id" field.
func (_u *ItemUpdate) SetMenuID(v string) *ItemUpdate {
	_u.mutation.SetMenuID(v)
	return _u
}

// SetNillableMenuID sets the "menu_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableMenuID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetMenuID(*v)
	}
	return _u
}

// ClearMenuID clears the value of the "menu_id" field.
func (_u *ItemUpdate) ClearMenuID() *ItemUpdate {
	_u.mutation.ClearMenuID()
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ItemUpdate) SetCategoryID(v string) *ItemUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCategoryID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *ItemUpdate) ClearCategoryID() *ItemUpdate {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetName sets the "name" field.
func (_u *ItemUpdate) SetName(v string) *ItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableName(v *string) *ItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ItemUpdate) SetDescription(v string) *ItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDescription(v *string) *ItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ItemUpdate) ClearDescription() *ItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ItemUpdate) SetItemType(v item.ItemType) *ItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableItemType(v *item.ItemType) *ItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ItemUpdate) SetPrice(v decimal.Decimal) *ItemUpdate {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ItemUpdate) SetNillablePrice(v *decimal.Decimal) *ItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *ItemUpdate) SetCost(v decimal.Decimal) *ItemUpdate {
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCost(v *decimal.Decimal) *ItemUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *ItemUpdate) ClearCost() *ItemUpdate {
	_u.mutation.ClearCost()
	return _u
}

// SetPreparationTimeMinutes sets the "preparation_time_minutes" field.
func (_u *ItemUpdate) SetPreparationTimeMinutes(v int) *ItemUpdate {
	_u.mutation.ResetPreparationTimeMinutes()
	_u.mutation.SetPreparationTimeMinutes(v)
	return _u
}

// SetNillablePreparationTimeMinutes sets the "preparation_time_minutes" field if the given value is not nil.
func (_u *ItemUpdate) SetNillablePreparationTimeMinutes(v *int) *ItemUpdate {
	if v != nil {
		_u.SetPreparationTimeMinutes(*v)
	}
	return _u
}

// AddPreparationTimeMinutes adds value to the "preparation_time_minutes" field.
func (_u *ItemUpdate) AddPreparationTimeMinutes(v int) *ItemUpdate {
	_u.mutation.AddPreparationTimeMinutes(v)
	return _u
}

// ClearPreparationTimeMinutes clears the value of the "preparation_time_minutes" field.
func (_u *ItemUpdate) ClearPreparationTimeMinutes() *ItemUpdate {
	_u.mutation.ClearPreparationTimeMinutes()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ItemUpdate) SetDurationMinutes(v int) *ItemUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDurationMinutes(v *int) *ItemUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ItemUpdate) AddDurationMinutes(v int) *ItemUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *ItemUpdate) ClearDurationMinutes() *ItemUpdate {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetIsSchedulable sets the "is_schedulable" field.
func (_u *ItemUpdate) SetIsSchedulable(v bool) *ItemUpdate {
	_u.mutation.SetIsSchedulable(v)
	return _u
}

// SetNillableIsSchedulable sets the "is_schedulable" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableIsSchedulable(v *bool) *ItemUpdate {
	if v != nil {
		_u.SetIsSchedulable(*v)
	}
	return _u
}

// SetMinScheduleHours sets the "min_schedule_hours" field.
func (_u *ItemUpdate) SetMinScheduleHours(v int) *ItemUpdate {
	_u.mutation.ResetMinScheduleHours()
	_u.mutation.SetMinScheduleHours(v)
	return _u
}

// SetNillableMinScheduleHours sets the "min_schedule_hours" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableMinScheduleHours(v *int) *ItemUpdate {
	if v != nil {
		_u.SetMinScheduleHours(*v)
	}
	return _u
}

// AddMinScheduleHours adds value to the "min_schedule_hours" field.
func (_u *ItemUpdate) AddMinScheduleHours(v int) *ItemUpdate {
	_u.mutation.AddMinScheduleHours(v)
	return _u
}

// SetCancelableBeforeHours sets the "cancelable_before_hours" field.
func (_u *ItemUpdate) SetCancelableBeforeHours(v int) *ItemUpdate {
	_u.mutation.ResetCancelableBeforeHours()
	_u.mutation.SetCancelableBeforeHours(v)
	return _u
}

// SetNillableCancelableBeforeHours sets the "cancelable_before_hours" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCancelableBeforeHours(v *int) *ItemUpdate {
	if v != nil {
		_u.SetCancelableBeforeHours(*v)
	}
	return _u
}

// AddCancelableBeforeHours adds value to the "cancelable_before_hours" field.
func (_u *ItemUpdate) AddCancelableBeforeHours(v int) *ItemUpdate {
	_u.mutation.AddCancelableBeforeHours(v)
	return _u
}

// ClearCancelableBeforeHours clears the value of the "cancelable_before_hours" field.
func (_u *ItemUpdate) ClearCancelableBeforeHours() *ItemUpdate {
	_u.mutation.ClearCancelableBeforeHours()
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *ItemUpdate) SetStockQuantity(v int) *ItemUpdate {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableStockQuantity(v *int) *ItemUpdate {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *ItemUpdate) AddStockQuantity(v int) *ItemUpdate {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// ClearStockQuantity clears the value of the "stock_quantity" field.
func (_u *ItemUpdate) ClearStockQuantity() *ItemUpdate {
	_u.mutation.ClearStockQuantity()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *ItemUpdate) SetAvailability(v item.Availability) *ItemUpdate {
	_u.mutation.SetAvailability(v)
	return _u
}

// SetNillableAvailability sets the "availability" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAvailability(v *item.Availability) *ItemUpdate {
	if v != nil {
		_u.SetAvailability(*v)
	}
	return _u
}

// SetDaysAvailable sets the "days_available" field.
func (_u *ItemUpdate) SetDaysAvailable(v []int) *ItemUpdate {
	_u.mutation.SetDaysAvailable(v)
	return _u
}

// AppendDaysAvailable appends value to the "days_available" field.
func (_u *ItemUpdate) AppendDaysAvailable(v []int) *ItemUpdate {
	_u.mutation.AppendDaysAvailable(v)
	return _u
}

// ClearDaysAvailable clears the value of the "days_available" field.
func (_u *ItemUpdate) ClearDaysAvailable() *ItemUpdate {
	_u.mutation.ClearDaysAvailable()
	return _u
}

// SetAvailableFrom sets the "available_from" field.
func (_u *ItemUpdate) SetAvailableFrom(v string) *ItemUpdate {
	_u.mutation.SetAvailableFrom(v)
	return _u
}

// SetNillableAvailableFrom sets the "available_from" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAvailableFrom(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAvailableFrom(*v)
	}
	return _u
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (_u *ItemUpdate) ClearAvailableFrom() *ItemUpdate {
	_u.mutation.ClearAvailableFrom()
	return _u
}

// SetAvailableTo sets the "available_to" field.
func (_u *ItemUpdate) SetAvailableTo(v string) *ItemUpdate {
	_u.mutation.SetAvailableTo(v)
	return _u
}

// SetNillableAvailableTo sets the "available_to" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAvailableTo(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAvailableTo(*v)
	}
	return _u
}

// ClearAvailableTo clears the value of the "available_to" field.
func (_u *ItemUpdate) ClearAvailableTo() *ItemUpdate {
	_u.mutation.ClearAvailableTo()
	return _u
}

// SetTimesOrdered sets the "times_ordered" field.
func (_u *ItemUpdate) SetTimesOrdered(v int) *ItemUpdate {
	_u.mutation.ResetTimesOrdered()
	_u.mutation.SetTimesOrdered(v)
	return _u
}

// SetNillableTimesOrdered sets the "times_ordered" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableTimesOrdered(v *int) *ItemUpdate {
	if v != nil {
		_u.SetTimesOrdered(*v)
	}
	return _u
}

// AddTimesOrdered adds value to the "times_ordered" field.
func (_u *ItemUpdate) AddTimesOrdered(v int) *ItemUpdate {
	_u.mutation.AddTimesOrdered(v)
	return _u
}

// SetTimesDelivered sets the "times_delivered" field.
func (_u *ItemUpdate) SetTimesDelivered(v int) *ItemUpdate {
	_u.mutation.ResetTimesDelivered()
	_u.mutation.SetTimesDelivered(v)
	return _u
}

// SetNillableTimesDelivered sets the "times_delivered" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableTimesDelivered(v *int) *ItemUpdate {
	if v != nil {
		_u.SetTimesDelivered(*v)
	}
	return _u
}

// AddTimesDelivered adds value to the "times_delivered" field.
func (_u *ItemUpdate) AddTimesDelivered(v int) *ItemUpdate {
	_u.mutation.AddTimesDelivered(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ItemUpdate) SetDeletedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDeletedAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ItemUpdate) ClearDeletedAt() *ItemUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdate) SetUpdatedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Availability(); ok {
		if err := item.AvailabilityValidator(v); err != nil {
			return &ValidationError{Name: "availability", err: fmt.Errorf(`ent: validator failed for field "Item.availability": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(item.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(item.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.MenuID(); ok {
		_spec.SetField(item.FieldMenuID, field.TypeString, value)
	}
	if _u.mutation.MenuIDCleared() {
		_spec.ClearField(item.FieldMenuID, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(item.FieldCategoryID, field.TypeString, value)
	}
	if _u.mutation.CategoryIDCleared() {
		_spec.ClearField(item.FieldCategoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(item.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(item.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(item.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(item.FieldPrice, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(item.FieldCost, field.TypeOther, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(item.FieldCost, field.TypeOther)
	}
	if value, ok := _u.mutation.PreparationTimeMinutes(); ok {
		_spec.SetField(item.FieldPreparationTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreparationTimeMinutes(); ok {
		_spec.AddField(item.FieldPreparationTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.PreparationTimeMinutesCleared() {
		_spec.ClearField(item.FieldPreparationTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(item.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(item.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(item.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.IsSchedulable(); ok {
		_spec.SetField(item.FieldIsSchedulable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinScheduleHours(); ok {
		_spec.SetField(item.FieldMinScheduleHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinScheduleHours(); ok {
		_spec.AddField(item.FieldMinScheduleHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelableBeforeHours(); ok {
		_spec.SetField(item.FieldCancelableBeforeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancelableBeforeHours(); ok {
		_spec.AddField(item.FieldCancelableBeforeHours, field.TypeInt, value)
	}
	if _u.mutation.CancelableBeforeHoursCleared() {
		_spec.ClearField(item.FieldCancelableBeforeHours, field.TypeInt)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(item.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(item.FieldStockQuantity, field.TypeInt, value)
	}
	if _u.mutation.StockQuantityCleared() {
		_spec.ClearField(item.FieldStockQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(item.FieldAvailability, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DaysAvailable(); ok {
		_spec.SetField(item.FieldDaysAvailable, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysAvailable(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldDaysAvailable, value)
		})
	}
	if _u.mutation.DaysAvailableCleared() {
		_spec.ClearField(item.FieldDaysAvailable, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvailableFrom(); ok {
		_spec.SetField(item.FieldAvailableFrom, field.TypeString, value)
	}
	if _u.mutation.AvailableFromCleared() {
		_spec.ClearField(item.FieldAvailableFrom, field.TypeString)
	}
	if value, ok := _u.mutation.AvailableTo(); ok {
		_spec.SetField(item.FieldAvailableTo, field.TypeString, value)
	}
	if _u.mutation.AvailableToCleared() {
		_spec.ClearField(item.FieldAvailableTo, field.TypeString)
	}
	if value, ok := _u.mutation.TimesOrdered(); ok {
		_spec.SetField(item.FieldTimesOrdered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesOrdered(); ok {
		_spec.AddField(item.FieldTimesOrdered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesDelivered(); ok {
		_spec.SetField(item.FieldTimesDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesDelivered(); ok {
		_spec.AddField(item.FieldTimesDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(item.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(item.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *ItemUpdateOne) SetOwnerUserID(v string) *ItemUpdateOne {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableOwnerUserID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *ItemUpdateOne) ClearOwnerUserID() *ItemUpdateOne {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetMenuID sets the "menu_id" field.
func (_u *ItemUpdateOne) SetMenuID(v string) *ItemUpdateOne {
	_u.mutation.SetMenuID(v)
	return _u
}

// SetNillableMenuID sets the "menu_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableMenuID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetMenuID(*v)
	}
	return _u
}

// ClearMenuID clears the value of the "menu_id" field.
func (_u *ItemUpdateOne) ClearMenuID() *ItemUpdateOne {
	_u.mutation.ClearMenuID()
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ItemUpdateOne) SetCategoryID(v string) *ItemUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCategoryID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *ItemUpdateOne) ClearCategoryID() *ItemUpdateOne {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetName sets the "name" field.
func (_u *ItemUpdateOne) SetName(v string) *ItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableName(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ItemUpdateOne) SetDescription(v string) *ItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDescription(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ItemUpdateOne) ClearDescription() *ItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ItemUpdateOne) SetItemType(v item.ItemType) *ItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableItemType(v *item.ItemType) *ItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ItemUpdateOne) SetPrice(v decimal.Decimal) *ItemUpdateOne {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillablePrice(v *decimal.Decimal) *ItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *ItemUpdateOne) SetCost(v decimal.Decimal) *ItemUpdateOne {
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCost(v *decimal.Decimal) *ItemUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *ItemUpdateOne) ClearCost() *ItemUpdateOne {
	_u.mutation.ClearCost()
	return _u
}

// SetPreparationTimeMinutes sets the "preparation_time_minutes" field.
func (_u *ItemUpdateOne) SetPreparationTimeMinutes(v int) *ItemUpdateOne {
	_u.mutation.ResetPreparationTimeMinutes()
	_u.mutation.SetPreparationTimeMinutes(v)
	return _u
}

// SetNillablePreparationTimeMinutes sets the "preparation_time_minutes" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillablePreparationTimeMinutes(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetPreparationTimeMinutes(*v)
	}
	return _u
}

// AddPreparationTimeMinutes adds value to the "preparation_time_minutes" field.
func (_u *ItemUpdateOne) AddPreparationTimeMinutes(v int) *ItemUpdateOne {
	_u.mutation.AddPreparationTimeMinutes(v)
	return _u
}

// ClearPreparationTimeMinutes clears the value of the "preparation_time_minutes" field.
func (_u *ItemUpdateOne) ClearPreparationTimeMinutes() *ItemUpdateOne {
	_u.mutation.ClearPreparationTimeMinutes()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ItemUpdateOne) SetDurationMinutes(v int) *ItemUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDurationMinutes(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ItemUpdateOne) AddDurationMinutes(v int) *ItemUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *ItemUpdateOne) ClearDurationMinutes() *ItemUpdateOne {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetIsSchedulable sets the "is_schedulable" field.
func (_u *ItemUpdateOne) SetIsSchedulable(v bool) *ItemUpdateOne {
	_u.mutation.SetIsSchedulable(v)
	return _u
}

// SetNillableIsSchedulable sets the "is_schedulable" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableIsSchedulable(v *bool) *ItemUpdateOne {
	if v != nil {
		_u.SetIsSchedulable(*v)
	}
	return _u
}

// SetMinScheduleHours sets the "min_schedule_hours" field.
func (_u *ItemUpdateOne) SetMinScheduleHours(v int) *ItemUpdateOne {
	_u.mutation.ResetMinScheduleHours()
	_u.mutation.SetMinScheduleHours(v)
	return _u
}

// SetNillableMinScheduleHours sets the "min_schedule_hours" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableMinScheduleHours(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetMinScheduleHours(*v)
	}
	return _u
}

// AddMinScheduleHours adds value to the "min_schedule_hours" field.
func (_u *ItemUpdateOne) AddMinScheduleHours(v int) *ItemUpdateOne {
	_u.mutation.AddMinScheduleHours(v)
	return _u
}

// SetCancelableBeforeHours sets the "cancelable_before_hours" field.
func (_u *ItemUpdateOne) SetCancelableBeforeHours(v int) *ItemUpdateOne {
	_u.mutation.ResetCancelableBeforeHours()
	_u.mutation.SetCancelableBeforeHours(v)
	return _u
}

// SetNillableCancelableBeforeHours sets the "cancelable_before_hours" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCancelableBeforeHours(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetCancelableBeforeHours(*v)
	}
	return _u
}

// AddCancelableBeforeHours adds value to the "cancelable_before_hours" field.
func (_u *ItemUpdateOne) AddCancelableBeforeHours(v int) *ItemUpdateOne {
	_u.mutation.AddCancelableBeforeHours(v)
	return _u
}

// ClearCancelableBeforeHours clears the value of the "cancelable_before_hours" field.
func (_u *ItemUpdateOne) ClearCancelableBeforeHours() *ItemUpdateOne {
	_u.mutation.ClearCancelableBeforeHours()
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *ItemUpdateOne) SetStockQuantity(v int) *ItemUpdateOne {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableStockQuantity(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *ItemUpdateOne) AddStockQuantity(v int) *ItemUpdateOne {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// ClearStockQuantity clears the value of the "stock_quantity" field.
func (_u *ItemUpdateOne) ClearStockQuantity() *ItemUpdateOne {
	_u.mutation.ClearStockQuantity()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *ItemUpdateOne) SetAvailability(v item.Availability) *ItemUpdateOne {
	_u.mutation.SetAvailability(v)
	return _u
}

// SetNillableAvailability sets the "availability" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAvailability(v *item.Availability) *ItemUpdateOne {
	if v != nil {
		_u.SetAvailability(*v)
	}
	return _u
}

// SetDaysAvailable sets the "days_available" field.
func (_u *ItemUpdateOne) SetDaysAvailable(v []int) *ItemUpdateOne {
	_u.mutation.SetDaysAvailable(v)
	return _u
}

// AppendDaysAvailable appends value to the "days_available" field.
func (_u *ItemUpdateOne) AppendDaysAvailable(v []int) *ItemUpdateOne {
	_u.mutation.AppendDaysAvailable(v)
	return _u
}

// ClearDaysAvailable clears the value of the "days_available" field.
func (_u *ItemUpdateOne) ClearDaysAvailable() *ItemUpdateOne {
	_u.mutation.ClearDaysAvailable()
	return _u
}

// SetAvailableFrom sets the "available_from" field.
func (_u *ItemUpdateOne) SetAvailableFrom(v string) *ItemUpdateOne {
	_u.mutation.SetAvailableFrom(v)
	return _u
}

// SetNillableAvailableFrom sets the "available_from" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAvailableFrom(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAvailableFrom(*v)
	}
	return _u
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (_u *ItemUpdateOne) ClearAvailableFrom() *ItemUpdateOne {
	_u.mutation.ClearAvailableFrom()
	return _u
}

// SetAvailableTo sets the "available_to" field.
func (_u *ItemUpdateOne) SetAvailableTo(v string) *ItemUpdateOne {
	_u.mutation.SetAvailableTo(v)
	return _u
}

// SetNillableAvailableTo sets the "available_to" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAvailableTo(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAvailableTo(*v)
	}
	return _u
}

// ClearAvailableTo clears the value of the "available_to" field.
func (_u *ItemUpdateOne) ClearAvailableTo() *ItemUpdateOne {
	_u.mutation.ClearAvailableTo()
	return _u
}

// SetTimesOrdered sets the "times_ordered" field.
func (_u *ItemUpdateOne) SetTimesOrdered(v int) *ItemUpdateOne {
	_u.mutation.ResetTimesOrdered()
	_u.mutation.SetTimesOrdered(v)
	return _u
}

// SetNillableTimesOrdered sets the "times_ordered" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableTimesOrdered(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetTimesOrdered(*v)
	}
	return _u
}

// AddTimesOrdered adds value to the "times_ordered" field.
func (_u *ItemUpdateOne) AddTimesOrdered(v int) *ItemUpdateOne {
	_u.mutation.AddTimesOrdered(v)
	return _u
}

// SetTimesDelivered sets the "times_delivered" field.
func (_u *ItemUpdateOne) SetTimesDelivered(v int) *ItemUpdateOne {
	_u.mutation.ResetTimesDelivered()
	_u.mutation.SetTimesDelivered(v)
	return _u
}

// SetNillableTimesDelivered sets the "times_delivered" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableTimesDelivered(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetTimesDelivered(*v)
	}
	return _u
}

// AddTimesDelivered adds value to the "times_delivered" field.
func (_u *ItemUpdateOne) AddTimesDelivered(v int) *ItemUpdateOne {
	_u.mutation.AddTimesDelivered(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ItemUpdateOne) SetDeletedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDeletedAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ItemUpdateOne) ClearDeletedAt() *ItemUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdateOne) SetUpdatedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Availability(); ok {
		if err := item.AvailabilityValidator(v); err != nil {
			return &ValidationError{Name: "availability", err: fmt.Errorf(`ent: validator failed for field "Item.availability": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
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
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(item.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(item.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.MenuID(); ok {
		_spec.SetField(item.FieldMenuID, field.TypeString, value)
	}
	if _u.mutation.MenuIDCleared() {
		_spec.ClearField(item.FieldMenuID, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(item.FieldCategoryID, field.TypeString, value)
	}
	if _u.mutation.CategoryIDCleared() {
		_spec.ClearField(item.FieldCategoryID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(item.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(item.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(item.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(item.FieldPrice, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(item.FieldCost, field.TypeOther, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(item.FieldCost, field.TypeOther)
	}
	if value, ok := _u.mutation.PreparationTimeMinutes(); ok {
		_spec.SetField(item.FieldPreparationTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreparationTimeMinutes(); ok {
		_spec.AddField(item.FieldPreparationTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.PreparationTimeMinutesCleared() {
		_spec.ClearField(item.FieldPreparationTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(item.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(item.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(item.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.IsSchedulable(); ok {
		_spec.SetField(item.FieldIsSchedulable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinScheduleHours(); ok {
		_spec.SetField(item.FieldMinScheduleHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinScheduleHours(); ok {
		_spec.AddField(item.FieldMinScheduleHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelableBeforeHours(); ok {
		_spec.SetField(item.FieldCancelableBeforeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancelableBeforeHours(); ok {
		_spec.AddField(item.FieldCancelableBeforeHours, field.TypeInt, value)
	}
	if _u.mutation.CancelableBeforeHoursCleared() {
		_spec.ClearField(item.FieldCancelableBeforeHours, field.TypeInt)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(item.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(item.FieldStockQuantity, field.TypeInt, value)
	}
	if _u.mutation.StockQuantityCleared() {
		_spec.ClearField(item.FieldStockQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(item.FieldAvailability, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DaysAvailable(); ok {
		_spec.SetField(item.FieldDaysAvailable, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysAvailable(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldDaysAvailable, value)
		})
	}
	if _u.mutation.DaysAvailableCleared() {
		_spec.ClearField(item.FieldDaysAvailable, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvailableFrom(); ok {
		_spec.SetField(item.FieldAvailableFrom, field.TypeString, value)
	}
	if _u.mutation.AvailableFromCleared() {
		_spec.ClearField(item.FieldAvailableFrom, field.TypeString)
	}
	if value, ok := _u.mutation.AvailableTo(); ok {
		_spec.SetField(item.FieldAvailableTo, field.TypeString, value)
	}
	if _u.mutation.AvailableToCleared() {
		_spec.ClearField(item.FieldAvailableTo, field.TypeString)
	}
	if value, ok := _u.mutation.TimesOrdered(); ok {
		_spec.SetField(item.FieldTimesOrdered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesOrdered(); ok {
		_spec.AddField(item.FieldTimesOrdered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesDelivered(); ok {
		_spec.SetField(item.FieldTimesDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesDelivered(); ok {
		_spec.AddField(item.FieldTimesDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(item.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(item.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

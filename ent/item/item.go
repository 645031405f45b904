// Code generated by ent, DO NOT EDIT.

package item

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldMenuID holds the string denoting the menu_id field in the database.
	FieldMenuID = "menu_id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldPreparationTimeMinutes holds the string denoting the preparation_time_minutes field in the database.
	FieldPreparationTimeMinutes = "preparation_time_minutes"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldIsSchedulable holds the string denoting the is_schedulable field in the database.
	FieldIsSchedulable = "is_schedulable"
	// FieldMinScheduleHours holds the string denoting the min_schedule_hours field in the database.
	FieldMinScheduleHours = "min_schedule_hours"
	// FieldCancelableBeforeHours holds the string denoting the cancelable_before_hours field in the database.
	FieldCancelableBeforeHours = "cancelable_before_hours"
	// FieldStockQuantity holds the string denoting the stock_quantity field in the database.
	FieldStockQuantity = "stock_quantity"
	// FieldAvailability holds the string denoting the availability field in the database.
	FieldAvailability = "availability"
	// FieldDaysAvailable holds the string denoting the days_available field in the database.
	FieldDaysAvailable = "days_available"
	// FieldAvailableFrom holds the string denoting the available_from field in the database.
	FieldAvailableFrom = "available_from"
	// FieldAvailableTo holds the string denoting the available_to field in the database.
	FieldAvailableTo = "available_to"
	// FieldTimesOrdered holds the string denoting the times_ordered field in the database.
	FieldTimesOrdered = "times_ordered"
	// FieldTimesDelivered holds the string denoting the times_delivered field in the database.
	FieldTimesDelivered = "times_delivered"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldBusinessID,
	FieldOwnerUserID,
	FieldMenuID,
	FieldCategoryID,
	FieldName,
	FieldDescription,
	FieldItemType,
	FieldPrice,
	FieldCost,
	FieldPreparationTimeMinutes,
	FieldDurationMinutes,
	FieldIsSchedulable,
	FieldMinScheduleHours,
	FieldCancelableBeforeHours,
	FieldStockQuantity,
	FieldAvailability,
	FieldDaysAvailable,
	FieldAvailableFrom,
	FieldAvailableTo,
	FieldTimesOrdered,
	FieldTimesDelivered,
	FieldDeletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice decimal.Decimal
	// DefaultIsSchedulable holds the default value on creation for the "is_schedulable" field.
	DefaultIsSchedulable bool
	// DefaultMinScheduleHours holds the default value on creation for the "min_schedule_hours" field.
	DefaultMinScheduleHours int
	// DefaultTimesOrdered holds the default value on creation for the "times_ordered" field.
	DefaultTimesOrdered int
	// DefaultTimesDelivered holds the default value on creation for the "times_delivered" field.
	DefaultTimesDelivered int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ItemType defines the type for the "item_type" enum field.
type ItemType string

// ItemTypeGood is the default value of the ItemType enum.
const DefaultItemType = ItemTypeGood

// ItemType values.
const (
	ItemTypeGood    ItemType = "good"
	ItemTypeService ItemType = "service"
)

func (it ItemType) String() string {
	return string(it)
}

// ItemTypeValidator is a validator for the "item_type" field enum values. It is called by the builders before save.
func ItemTypeValidator(it ItemType) error {
	switch it {
	case ItemTypeGood, ItemTypeService:
		return nil
	default:
		return fmt.Errorf("item: invalid enum value for item_type field: %q", it)
	}
}

// Availability defines the type for the "availability" enum field.
type Availability string

// AvailabilityAvailable is the default value of the Availability enum.
const DefaultAvailability = AvailabilityAvailable

// Availability values.
const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
	AvailabilityHidden      Availability = "hidden"
)

func (a Availability) String() string {
	return string(a)
}

// AvailabilityValidator is a validator for the "availability" field enum values. It is called by the builders before save.
func AvailabilityValidator(a Availability) error {
	switch a {
	case AvailabilityAvailable, AvailabilityUnavailable, AvailabilityHidden:
		return nil
	default:
		return fmt.Errorf("item: invalid enum value for availability field: %q", a)
	}
}

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByMenuID orders the results by the menu_id field.
func ByMenuID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMenuID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByPreparationTimeMinutes orders the results by the preparation_time_minutes field.
func ByPreparationTimeMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreparationTimeMinutes, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByIsSchedulable orders the results by the is_schedulable field.
func ByIsSchedulable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSchedulable, opts...).ToFunc()
}

// ByMinScheduleHours orders the results by the min_schedule_hours field.
func ByMinScheduleHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinScheduleHours, opts...).ToFunc()
}

// ByCancelableBeforeHours orders the results by the cancelable_before_hours field.
func ByCancelableBeforeHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelableBeforeHours, opts...).ToFunc()
}

// ByStockQuantity orders the results by the stock_quantity field.
func ByStockQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStockQuantity, opts...).ToFunc()
}

// ByAvailability orders the results by the availability field.
func ByAvailability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailability, opts...).ToFunc()
}

// ByAvailableFrom orders the results by the available_from field.
func ByAvailableFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableFrom, opts...).ToFunc()
}

// ByAvailableTo orders the results by the available_to field.
func ByAvailableTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableTo, opts...).ToFunc()
}

// ByTimesOrdered orders the results by the times_ordered field.
func ByTimesOrdered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesOrdered, opts...).ToFunc()
}

// ByTimesDelivered orders the results by the times_delivered field.
func ByTimesDelivered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesDelivered, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

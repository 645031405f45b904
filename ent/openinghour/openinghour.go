// Code generated by ent, DO NOT EDIT.

package openinghour

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the openinghour type in the database.
	Label = "opening_hour"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "opening_hour_id"
	// FieldOwnerType holds the string denoting the owner_type field in the database.
	FieldOwnerType = "owner_type"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldDayOfWeek holds the string denoting the day_of_week field in the database.
	FieldDayOfWeek = "day_of_week"
	// FieldOpenTime holds the string denoting the open_time field in the database.
	FieldOpenTime = "open_time"
	// FieldCloseTime holds the string denoting the close_time field in the database.
	FieldCloseTime = "close_time"
	// FieldIsClosed holds the string denoting the is_closed field in the database.
	FieldIsClosed = "is_closed"
	// FieldLastOrderTime holds the string denoting the last_order_time field in the database.
	FieldLastOrderTime = "last_order_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the openinghour in the database.
	Table = "opening_hours"
)

// Columns holds all SQL columns for openinghour fields.
var Columns = []string{
	FieldID,
	FieldOwnerType,
	FieldOwnerID,
	FieldDayOfWeek,
	FieldOpenTime,
	FieldCloseTime,
	FieldIsClosed,
	FieldLastOrderTime,
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
	// DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	DayOfWeekValidator func(int) error
	// DefaultIsClosed holds the default value on creation for the "is_closed" field.
	DefaultIsClosed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OwnerType defines the type for the "owner_type" enum field.
type OwnerType string

// OwnerType values.
const (
	OwnerTypeBusiness OwnerType = "business"
	OwnerTypeBranch   OwnerType = "branch"
)

func (ot OwnerType) String() string {
	return string(ot)
}

// OwnerTypeValidator is a validator for the "owner_type" field enum values. It is called by the builders before save.
func OwnerTypeValidator(ot OwnerType) error {
	switch ot {
	case OwnerTypeBusiness, OwnerTypeBranch:
		return nil
	default:
		return fmt.Errorf("openinghour: invalid enum value for owner_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the OpeningHour queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerType orders the results by the owner_type field.
func ByOwnerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerType, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByDayOfWeek orders the results by the day_of_week field.
func ByDayOfWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayOfWeek, opts...).ToFunc()
}

// ByOpenTime orders the results by the open_time field.
func ByOpenTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenTime, opts...).ToFunc()
}

// ByCloseTime orders the results by the close_time field.
func ByCloseTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCloseTime, opts...).ToFunc()
}

// ByIsClosed orders the results by the is_closed field.
func ByIsClosed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsClosed, opts...).ToFunc()
}

// ByLastOrderTime orders the results by the last_order_time field.
func ByLastOrderTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOrderTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

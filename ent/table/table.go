// Code generated by ent, DO NOT EDIT.

package table

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the table type in the database.
	Label = "table"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "table_id"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldTableNumber holds the string denoting the table_number field in the database.
	FieldTableNumber = "table_number"
	// FieldMinSeats holds the string denoting the min_seats field in the database.
	FieldMinSeats = "min_seats"
	// FieldMaxSeats holds the string denoting the max_seats field in the database.
	FieldMaxSeats = "max_seats"
	// FieldPositionLabel holds the string denoting the position_label field in the database.
	FieldPositionLabel = "position_label"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the table in the database.
	Table = "tables"
)

// Columns holds all SQL columns for table fields.
var Columns = []string{
	FieldID,
	FieldBusinessID,
	FieldOwnerUserID,
	FieldTableNumber,
	FieldMinSeats,
	FieldMaxSeats,
	FieldPositionLabel,
	FieldIsActive,
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
	// DefaultMinSeats holds the default value on creation for the "min_seats" field.
	DefaultMinSeats int
	// DefaultMaxSeats holds the default value on creation for the "max_seats" field.
	DefaultMaxSeats int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Table queries.
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

// ByTableNumber orders the results by the table_number field.
func ByTableNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableNumber, opts...).ToFunc()
}

// ByMinSeats orders the results by the min_seats field.
func ByMinSeats(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinSeats, opts...).ToFunc()
}

// ByMaxSeats orders the results by the max_seats field.
func ByMaxSeats(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSeats, opts...).ToFunc()
}

// ByPositionLabel orders the results by the position_label field.
func ByPositionLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionLabel, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

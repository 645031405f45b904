// Code generated by ent, DO NOT EDIT.

package businessaddon

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the businessaddon type in the database.
	Label = "business_addon"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "addon_id"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldAddonKey holds the string denoting the addon_key field in the database.
	FieldAddonKey = "addon_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriceOverride holds the string denoting the price_override field in the database.
	FieldPriceOverride = "price_override"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the businessaddon in the database.
	Table = "business_addons"
)

// Columns holds all SQL columns for businessaddon fields.
var Columns = []string{
	FieldID,
	FieldBusinessID,
	FieldAddonKey,
	FieldStatus,
	FieldPriceOverride,
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
	// DefaultPriceOverride holds the default value on creation for the "price_override" field.
	DefaultPriceOverride decimal.Decimal
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AddonKey defines the type for the "addon_key" enum field.
type AddonKey string

// AddonKey values.
const (
	AddonKeyBaseBot           AddonKey = "base_bot"
	AddonKeyTableReservations AddonKey = "table_reservations"
	AddonKeyScheduledRequests AddonKey = "scheduled_requests"
	AddonKeySupportTickets    AddonKey = "support_tickets"
)

func (ak AddonKey) String() string {
	return string(ak)
}

// AddonKeyValidator is a validator for the "addon_key" field enum values. It is called by the builders before save.
func AddonKeyValidator(ak AddonKey) error {
	switch ak {
	case AddonKeyBaseBot, AddonKeyTableReservations, AddonKeyScheduledRequests, AddonKeySupportTickets:
		return nil
	default:
		return fmt.Errorf("businessaddon: invalid enum value for addon_key field: %q", ak)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusInactive:
		return nil
	default:
		return fmt.Errorf("businessaddon: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BusinessAddon queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByAddonKey orders the results by the addon_key field.
func ByAddonKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddonKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriceOverride orders the results by the price_override field.
func ByPriceOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceOverride, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the reservation type in the database.
	Label = "reservation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "reservation_id"
	// FieldBusinessUserID holds the string denoting the business_user_id field in the database.
	FieldBusinessUserID = "business_user_id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldTableID holds the string denoting the table_id field in the database.
	FieldTableID = "table_id"
	// FieldCustomerPhoneNumber holds the string denoting the customer_phone_number field in the database.
	FieldCustomerPhoneNumber = "customer_phone_number"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldReservationDate holds the string denoting the reservation_date field in the database.
	FieldReservationDate = "reservation_date"
	// FieldReservationTime holds the string denoting the reservation_time field in the database.
	FieldReservationTime = "reservation_time"
	// FieldNumberOfGuests holds the string denoting the number_of_guests field in the database.
	FieldNumberOfGuests = "number_of_guests"
	// FieldReservationType holds the string denoting the reservation_type field in the database.
	FieldReservationType = "reservation_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// ReservationItemFieldID holds the string denoting the ID field of the ReservationItem.
	ReservationItemFieldID = "reservation_item_id"
	// Table holds the table name of the reservation in the database.
	Table = "reservations"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "reservation_items"
	// ItemsInverseTable is the table name for the ReservationItem entity.
	// It exists in this package in order to avoid circular dependency with the "reservationitem" package.
	ItemsInverseTable = "reservation_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "reservation_id"
)

// Columns holds all SQL columns for reservation fields.
var Columns = []string{
	FieldID,
	FieldBusinessUserID,
	FieldOwnerUserID,
	FieldTableID,
	FieldCustomerPhoneNumber,
	FieldCustomerName,
	FieldReservationDate,
	FieldReservationTime,
	FieldNumberOfGuests,
	FieldReservationType,
	FieldStatus,
	FieldNotes,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ReservationType defines the type for the "reservation_type" enum field.
type ReservationType string

// ReservationTypeTable is the default value of the ReservationType enum.
const DefaultReservationType = ReservationTypeTable

// ReservationType values.
const (
	ReservationTypeTable       ReservationType = "table"
	ReservationTypeAppointment ReservationType = "appointment"
)

func (rt ReservationType) String() string {
	return string(rt)
}

// ReservationTypeValidator is a validator for the "reservation_type" field enum values. It is called by the builders before save.
func ReservationTypeValidator(rt ReservationType) error {
	switch rt {
	case ReservationTypeTable, ReservationTypeAppointment:
		return nil
	default:
		return fmt.Errorf("reservation: invalid enum value for reservation_type field: %q", rt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusConfirmed is the default value of the Status enum.
const DefaultStatus = StatusConfirmed

// Status values.
const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return nil
	default:
		return fmt.Errorf("reservation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Reservation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessUserID orders the results by the business_user_id field.
func ByBusinessUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessUserID, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByTableID orders the results by the table_id field.
func ByTableID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableID, opts...).ToFunc()
}

// ByCustomerPhoneNumber orders the results by the customer_phone_number field.
func ByCustomerPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerPhoneNumber, opts...).ToFunc()
}

// ByCustomerName orders the results by the customer_name field.
func ByCustomerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerName, opts...).ToFunc()
}

// ByReservationDate orders the results by the reservation_date field.
func ByReservationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationDate, opts...).ToFunc()
}

// ByReservationTime orders the results by the reservation_time field.
func ByReservationTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationTime, opts...).ToFunc()
}

// ByNumberOfGuests orders the results by the number_of_guests field.
func ByNumberOfGuests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberOfGuests, opts...).ToFunc()
}

// ByReservationType orders the results by the reservation_type field.
func ByReservationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, ReservationItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}

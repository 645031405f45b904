// Code generated by ent, DO NOT EDIT.

package reservationitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the reservationitem type in the database.
	Label = "reservation_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "reservation_item_id"
	// FieldReservationID holds the string denoting the reservation_id field in the database.
	FieldReservationID = "reservation_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldPriceAtTime holds the string denoting the price_at_time field in the database.
	FieldPriceAtTime = "price_at_time"
	// FieldNameAtTime holds the string denoting the name_at_time field in the database.
	FieldNameAtTime = "name_at_time"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReservation holds the string denoting the reservation edge name in mutations.
	EdgeReservation = "reservation"
	// ReservationFieldID holds the string denoting the ID field of the Reservation.
	ReservationFieldID = "reservation_id"
	// Table holds the table name of the reservationitem in the database.
	Table = "reservation_items"
	// ReservationTable is the table that holds the reservation relation/edge.
	ReservationTable = "reservation_items"
	// ReservationInverseTable is the table name for the Reservation entity.
	// It exists in this package in order to avoid circular dependency with the "reservation" package.
	ReservationInverseTable = "reservations"
	// ReservationColumn is the table column denoting the reservation relation/edge.
	ReservationColumn = "reservation_id"
)

// Columns holds all SQL columns for reservationitem fields.
var Columns = []string{
	FieldID,
	FieldReservationID,
	FieldItemID,
	FieldQuantity,
	FieldPriceAtTime,
	FieldNameAtTime,
	FieldNotes,
	FieldCreatedAt,
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
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// DefaultPriceAtTime holds the default value on creation for the "price_at_time" field.
	DefaultPriceAtTime decimal.Decimal
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReservationItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReservationID orders the results by the reservation_id field.
func ByReservationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByPriceAtTime orders the results by the price_at_time field.
func ByPriceAtTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceAtTime, opts...).ToFunc()
}

// ByNameAtTime orders the results by the name_at_time field.
func ByNameAtTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameAtTime, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReservationField orders the results by reservation field.
func ByReservationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReservationStep(), sql.OrderByField(field, opts...))
	}
}
func newReservationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReservationInverseTable, ReservationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReservationTable, ReservationColumn),
	)
}

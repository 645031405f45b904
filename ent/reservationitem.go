// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/reservationitem"
)

// ReservationItem is the model entity for the ReservationItem schema.
type ReservationItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReservationID holds the value of the "reservation_id" field.
	ReservationID string `json:"reservation_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// PriceAtTime holds the value of the "price_at_time" field.
	PriceAtTime decimal.Decimal `json:"price_at_time,omitempty"`
	// NameAtTime holds the value of the "name_at_time" field.
	NameAtTime string `json:"name_at_time,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReservationItemQuery when eager-loading is set.
	Edges        ReservationItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReservationItemEdges holds the relations/edges for other nodes in the graph.
type ReservationItemEdges struct {
	// Reservation holds the value of the reservation edge.
	Reservation *Reservation `json:"reservation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReservationOrErr returns the Reservation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReservationItemEdges) ReservationOrErr() (*Reservation, error) {
	if e.Reservation != nil {
		return e.Reservation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: reservation.Label}
	}
	return nil, &NotLoadedError{edge: "reservation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReservationItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reservationitem.FieldPriceAtTime:
			values[i] = new(decimal.Decimal)
		case reservationitem.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case reservationitem.FieldID, reservationitem.FieldReservationID, reservationitem.FieldItemID, reservationitem.FieldNameAtTime, reservationitem.FieldNotes:
			values[i] = new(sql.NullString)
		case reservationitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReservationItem fields.
func (_m *ReservationItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reservationitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reservationitem.FieldReservationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_id", values[i])
			} else if value.Valid {
				_m.ReservationID = value.String
			}
		case reservationitem.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case reservationitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case reservationitem.FieldPriceAtTime:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field price_at_time", values[i])
			} else if value != nil {
				_m.PriceAtTime = *value
			}
		case reservationitem.FieldNameAtTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_at_time", values[i])
			} else if value.Valid {
				_m.NameAtTime = value.String
			}
		case reservationitem.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case reservationitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReservationItem.
// This includes values selected through modifiers, order, etc.
func (_m *ReservationItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReservation queries the "reservation" edge of the ReservationItem entity.
func (_m *ReservationItem) QueryReservation() *ReservationQuery {
	return NewReservationItemClient(_m.config).QueryReservation(_m)
}

// Update returns a builder for updating this ReservationItem.
// Note that you need to call ReservationItem.Unwrap() before calling this method if this ReservationItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReservationItem) Update() *ReservationItemUpdateOne {
	return NewReservationItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReservationItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReservationItem) Unwrap() *ReservationItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReservationItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReservationItem) String() string {
	var builder strings.Builder
	builder.WriteString("ReservationItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("reservation_id=")
	builder.WriteString(_m.ReservationID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("price_at_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriceAtTime))
	builder.WriteString(", ")
	builder.WriteString("name_at_time=")
	builder.WriteString(_m.NameAtTime)
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReservationItems is a parsable slice of ReservationItem.
type ReservationItems []*ReservationItem

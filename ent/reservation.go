// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/reservation"
)

// Reservation is the model entity for the Reservation schema.
type Reservation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant business
	BusinessUserID string `json:"business_user_id,omitempty"`
	// Fulfilling branch or business
	OwnerUserID string `json:"owner_user_id,omitempty"`
	// TableID holds the value of the "table_id" field.
	TableID *string `json:"table_id,omitempty"`
	// CustomerPhoneNumber holds the value of the "customer_phone_number" field.
	CustomerPhoneNumber string `json:"customer_phone_number,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// YYYY-MM-DD in the business timezone
	ReservationDate string `json:"reservation_date,omitempty"`
	// HH:MM, minute precision
	ReservationTime string `json:"reservation_time,omitempty"`
	// NumberOfGuests holds the value of the "number_of_guests" field.
	NumberOfGuests *int `json:"number_of_guests,omitempty"`
	// ReservationType holds the value of the "reservation_type" field.
	ReservationType reservation.ReservationType `json:"reservation_type,omitempty"`
	// Status holds the value of the "status" field.
	Status reservation.Status `json:"status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReservationQuery when eager-loading is set.
	Edges        ReservationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReservationEdges holds the relations/edges for other nodes in the graph.
type ReservationEdges struct {
	// Items holds the value of the items edge.
	Items []*ReservationItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ReservationEdges) ItemsOrErr() ([]*ReservationItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Reservation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reservation.FieldNumberOfGuests:
			values[i] = new(sql.NullInt64)
		case reservation.FieldID, reservation.FieldBusinessUserID, reservation.FieldOwnerUserID, reservation.FieldTableID, reservation.FieldCustomerPhoneNumber, reservation.FieldCustomerName, reservation.FieldReservationDate, reservation.FieldReservationTime, reservation.FieldReservationType, reservation.FieldStatus, reservation.FieldNotes:
			values[i] = new(sql.NullString)
		case reservation.FieldCreatedAt, reservation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Reservation fields.
func (_m *Reservation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reservation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reservation.FieldBusinessUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_user_id", values[i])
			} else if value.Valid {
				_m.BusinessUserID = value.String
			}
		case reservation.FieldOwnerUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user_id", values[i])
			} else if value.Valid {
				_m.OwnerUserID = value.String
			}
		case reservation.FieldTableID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_id", values[i])
			} else if value.Valid {
				_m.TableID = new(string)
				*_m.TableID = value.String
			}
		case reservation.FieldCustomerPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_phone_number", values[i])
			} else if value.Valid {
				_m.CustomerPhoneNumber = value.String
			}
		case reservation.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case reservation.FieldReservationDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_date", values[i])
			} else if value.Valid {
				_m.ReservationDate = value.String
			}
		case reservation.FieldReservationTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_time", values[i])
			} else if value.Valid {
				_m.ReservationTime = value.String
			}
		case reservation.FieldNumberOfGuests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_guests", values[i])
			} else if value.Valid {
				_m.NumberOfGuests = new(int)
				*_m.NumberOfGuests = int(value.Int64)
			}
		case reservation.FieldReservationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_type", values[i])
			} else if value.Valid {
				_m.ReservationType = reservation.ReservationType(value.String)
			}
		case reservation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = reservation.Status(value.String)
			}
		case reservation.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case reservation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reservation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Reservation.
// This includes values selected through modifiers, order, etc.
func (_m *Reservation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the Reservation entity.
func (_m *Reservation) QueryItems() *ReservationItemQuery {
	return NewReservationClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this Reservation.
// Note that you need to call Reservation.Unwrap() before calling this method if this Reservation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Reservation) Update() *ReservationUpdateOne {
	return NewReservationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Reservation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Reservation) Unwrap() *Reservation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Reservation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Reservation) String() string {
	var builder strings.Builder
	builder.WriteString("Reservation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_user_id=")
	builder.WriteString(_m.BusinessUserID)
	builder.WriteString(", ")
	builder.WriteString("owner_user_id=")
	builder.WriteString(_m.OwnerUserID)
	builder.WriteString(", ")
	if v := _m.TableID; v != nil {
		builder.WriteString("table_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("customer_phone_number=")
	builder.WriteString(_m.CustomerPhoneNumber)
	builder.WriteString(", ")
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	builder.WriteString("reservation_date=")
	builder.WriteString(_m.ReservationDate)
	builder.WriteString(", ")
	builder.WriteString("reservation_time=")
	builder.WriteString(_m.ReservationTime)
	builder.WriteString(", ")
	if v := _m.NumberOfGuests; v != nil {
		builder.WriteString("number_of_guests=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reservation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReservationType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Reservations is a parsable slice of Reservation.
type Reservations []*Reservation

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/supportticket"
)

// SupportTicket is the model entity for the SupportTicket schema.
type SupportTicket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID string `json:"customer_id,omitempty"`
	// RelatedOrderID holds the value of the "related_order_id" field.
	RelatedOrderID *string `json:"related_order_id,omitempty"`
	// RelatedReservationID holds the value of the "related_reservation_id" field.
	RelatedReservationID *string `json:"related_reservation_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject *string `json:"subject,omitempty"`
	// Status holds the value of the "status" field.
	Status supportticket.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority supportticket.Priority `json:"priority,omitempty"`
	// AssignedEmployeeID holds the value of the "assigned_employee_id" field.
	AssignedEmployeeID *string `json:"assigned_employee_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupportTicketQuery when eager-loading is set.
	Edges        SupportTicketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupportTicketEdges holds the relations/edges for other nodes in the graph.
type SupportTicketEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*TicketMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e SupportTicketEdges) MessagesOrErr() ([]*TicketMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupportTicket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supportticket.FieldID, supportticket.FieldBusinessID, supportticket.FieldCustomerID, supportticket.FieldRelatedOrderID, supportticket.FieldRelatedReservationID, supportticket.FieldSessionID, supportticket.FieldSubject, supportticket.FieldStatus, supportticket.FieldPriority, supportticket.FieldAssignedEmployeeID:
			values[i] = new(sql.NullString)
		case supportticket.FieldCreatedAt, supportticket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupportTicket fields.
func (_m *SupportTicket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supportticket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case supportticket.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case supportticket.FieldCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				_m.CustomerID = value.String
			}
		case supportticket.FieldRelatedOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_order_id", values[i])
			} else if value.Valid {
				_m.RelatedOrderID = new(string)
				*_m.RelatedOrderID = value.String
			}
		case supportticket.FieldRelatedReservationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_reservation_id", values[i])
			} else if value.Valid {
				_m.RelatedReservationID = new(string)
				*_m.RelatedReservationID = value.String
			}
		case supportticket.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case supportticket.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = new(string)
				*_m.Subject = value.String
			}
		case supportticket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = supportticket.Status(value.String)
			}
		case supportticket.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = supportticket.Priority(value.String)
			}
		case supportticket.FieldAssignedEmployeeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_employee_id", values[i])
			} else if value.Valid {
				_m.AssignedEmployeeID = new(string)
				*_m.AssignedEmployeeID = value.String
			}
		case supportticket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supportticket.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SupportTicket.
// This includes values selected through modifiers, order, etc.
func (_m *SupportTicket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the SupportTicket entity.
func (_m *SupportTicket) QueryMessages() *TicketMessageQuery {
	return NewSupportTicketClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this SupportTicket.
// Note that you need to call SupportTicket.Unwrap() before calling this method if this SupportTicket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupportTicket) Update() *SupportTicketUpdateOne {
	return NewSupportTicketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupportTicket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupportTicket) Unwrap() *SupportTicket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupportTicket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupportTicket) String() string {
	var builder strings.Builder
	builder.WriteString("SupportTicket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(_m.CustomerID)
	builder.WriteString(", ")
	if v := _m.RelatedOrderID; v != nil {
		builder.WriteString("related_order_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RelatedReservationID; v != nil {
		builder.WriteString("related_reservation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Subject; v != nil {
		builder.WriteString("subject=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.AssignedEmployeeID; v != nil {
		builder.WriteString("assigned_employee_id=")
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

// SupportTickets is a parsable slice of SupportTicket.
type SupportTickets []*SupportTicket

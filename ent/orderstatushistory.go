// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
)

// OrderStatusHistory is the model entity for the OrderStatusHistory schema.
type OrderStatusHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID string `json:"order_id,omitempty"`
	// Status holds the value of the "status" field.
	Status orderstatushistory.Status `json:"status,omitempty"`
	// Principal or system actor that performed the transition
	ChangedBy string `json:"changed_by,omitempty"`
	// ChangedAt holds the value of the "changed_at" field.
	ChangedAt time.Time `json:"changed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderStatusHistoryQuery when eager-loading is set.
	Edges        OrderStatusHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderStatusHistoryEdges holds the relations/edges for other nodes in the graph.
type OrderStatusHistoryEdges struct {
	// Order holds the value of the order edge.
	Order *Order `json:"order,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OrderOrErr returns the Order value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrderStatusHistoryEdges) OrderOrErr() (*Order, error) {
	if e.Order != nil {
		return e.Order, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: order.Label}
	}
	return nil, &NotLoadedError{edge: "order"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrderStatusHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orderstatushistory.FieldID, orderstatushistory.FieldOrderID, orderstatushistory.FieldStatus, orderstatushistory.FieldChangedBy:
			values[i] = new(sql.NullString)
		case orderstatushistory.FieldChangedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrderStatusHistory fields.
func (_m *OrderStatusHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orderstatushistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orderstatushistory.FieldOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = value.String
			}
		case orderstatushistory.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = orderstatushistory.Status(value.String)
			}
		case orderstatushistory.FieldChangedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value.Valid {
				_m.ChangedBy = value.String
			}
		case orderstatushistory.FieldChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field changed_at", values[i])
			} else if value.Valid {
				_m.ChangedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrderStatusHistory.
// This includes values selected through modifiers, order, etc.
func (_m *OrderStatusHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrder queries the "order" edge of the OrderStatusHistory entity.
func (_m *OrderStatusHistory) QueryOrder() *OrderQuery {
	return NewOrderStatusHistoryClient(_m.config).QueryOrder(_m)
}

// Update returns a builder for updating this OrderStatusHistory.
// Note that you need to call OrderStatusHistory.Unwrap() before calling this method if this OrderStatusHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrderStatusHistory) Update() *OrderStatusHistoryUpdateOne {
	return NewOrderStatusHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrderStatusHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrderStatusHistory) Unwrap() *OrderStatusHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrderStatusHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrderStatusHistory) String() string {
	var builder strings.Builder
	builder.WriteString("OrderStatusHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("order_id=")
	builder.WriteString(_m.OrderID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(_m.ChangedBy)
	builder.WriteString(", ")
	builder.WriteString("changed_at=")
	builder.WriteString(_m.ChangedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OrderStatusHistories is a parsable slice of OrderStatusHistory.
type OrderStatusHistories []*OrderStatusHistory

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/order"
)

// Order is the model entity for the Order schema.
type Order struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// Fulfilling principal: a branch or the business itself
	UserID string `json:"user_id,omitempty"`
	// CustomerPhoneNumber holds the value of the "customer_phone_number" field.
	CustomerPhoneNumber string `json:"customer_phone_number,omitempty"`
	// DeliveryType holds the value of the "delivery_type" field.
	DeliveryType *order.DeliveryType `json:"delivery_type,omitempty"`
	// Status holds the value of the "status" field.
	Status order.Status `json:"status,omitempty"`
	// RequestType holds the value of the "request_type" field.
	RequestType order.RequestType `json:"request_type,omitempty"`
	// ScheduledFor holds the value of the "scheduled_for" field.
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal decimal.Decimal `json:"subtotal,omitempty"`
	// DeliveryPrice holds the value of the "delivery_price" field.
	DeliveryPrice decimal.Decimal `json:"delivery_price,omitempty"`
	// Always subtotal + delivery_price
	Total decimal.Decimal `json:"total,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod order.PaymentMethod `json:"payment_method,omitempty"`
	// PaymentStatus holds the value of the "payment_status" field.
	PaymentStatus order.PaymentStatus `json:"payment_status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// LocationAddress holds the value of the "location_address" field.
	LocationAddress *string `json:"location_address,omitempty"`
	// LanguageUsed holds the value of the "language_used" field.
	LanguageUsed *string `json:"language_used,omitempty"`
	// OrderSource holds the value of the "order_source" field.
	OrderSource order.OrderSource `json:"order_source,omitempty"`
	// FirstResponseAt holds the value of the "first_response_at" field.
	FirstResponseAt *time.Time `json:"first_response_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderQuery when eager-loading is set.
	Edges        OrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderEdges holds the relations/edges for other nodes in the graph.
type OrderEdges struct {
	// Items holds the value of the items edge.
	Items []*OrderItem `json:"items,omitempty"`
	// StatusHistory holds the value of the status_history edge.
	StatusHistory []*OrderStatusHistory `json:"status_history,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) ItemsOrErr() ([]*OrderItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// StatusHistoryOrErr returns the StatusHistory value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) StatusHistoryOrErr() ([]*OrderStatusHistory, error) {
	if e.loadedTypes[1] {
		return e.StatusHistory, nil
	}
	return nil, &NotLoadedError{edge: "status_history"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Order) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case order.FieldSubtotal, order.FieldDeliveryPrice, order.FieldTotal:
			values[i] = new(decimal.Decimal)
		case order.FieldID, order.FieldBusinessID, order.FieldUserID, order.FieldCustomerPhoneNumber, order.FieldDeliveryType, order.FieldStatus, order.FieldRequestType, order.FieldPaymentMethod, order.FieldPaymentStatus, order.FieldNotes, order.FieldLocationAddress, order.FieldLanguageUsed, order.FieldOrderSource:
			values[i] = new(sql.NullString)
		case order.FieldScheduledFor, order.FieldFirstResponseAt, order.FieldCompletedAt, order.FieldCancelledAt, order.FieldCreatedAt, order.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Order fields.
func (_m *Order) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case order.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case order.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case order.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case order.FieldCustomerPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_phone_number", values[i])
			} else if value.Valid {
				_m.CustomerPhoneNumber = value.String
			}
		case order.FieldDeliveryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_type", values[i])
			} else if value.Valid {
				_m.DeliveryType = new(order.DeliveryType)
				*_m.DeliveryType = order.DeliveryType(value.String)
			}
		case order.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = order.Status(value.String)
			}
		case order.FieldRequestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_type", values[i])
			} else if value.Valid {
				_m.RequestType = order.RequestType(value.String)
			}
		case order.FieldScheduledFor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_for", values[i])
			} else if value.Valid {
				_m.ScheduledFor = new(time.Time)
				*_m.ScheduledFor = value.Time
			}
		case order.FieldSubtotal:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value != nil {
				_m.Subtotal = *value
			}
		case order.FieldDeliveryPrice:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_price", values[i])
			} else if value != nil {
				_m.DeliveryPrice = *value
			}
		case order.FieldTotal:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value != nil {
				_m.Total = *value
			}
		case order.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = order.PaymentMethod(value.String)
			}
		case order.FieldPaymentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_status", values[i])
			} else if value.Valid {
				_m.PaymentStatus = order.PaymentStatus(value.String)
			}
		case order.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case order.FieldLocationAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_address", values[i])
			} else if value.Valid {
				_m.LocationAddress = new(string)
				*_m.LocationAddress = value.String
			}
		case order.FieldLanguageUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language_used", values[i])
			} else if value.Valid {
				_m.LanguageUsed = new(string)
				*_m.LanguageUsed = value.String
			}
		case order.FieldOrderSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_source", values[i])
			} else if value.Valid {
				_m.OrderSource = order.OrderSource(value.String)
			}
		case order.FieldFirstResponseAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_response_at", values[i])
			} else if value.Valid {
				_m.FirstResponseAt = new(time.Time)
				*_m.FirstResponseAt = value.Time
			}
		case order.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case order.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		case order.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case order.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Order.
// This includes values selected through modifiers, order, etc.
func (_m *Order) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the Order entity.
func (_m *Order) QueryItems() *OrderItemQuery {
	return NewOrderClient(_m.config).QueryItems(_m)
}

// QueryStatusHistory queries the "status_history" edge of the Order entity.
func (_m *Order) QueryStatusHistory() *OrderStatusHistoryQuery {
	return NewOrderClient(_m.config).QueryStatusHistory(_m)
}

// Update returns a builder for updating this Order.
// Note that you need to call Order.Unwrap() before calling this method if this Order
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Order) Update() *OrderUpdateOne {
	return NewOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Order entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Order) Unwrap() *Order {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Order is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Order) String() string {
	var builder strings.Builder
	builder.WriteString("Order(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("customer_phone_number=")
	builder.WriteString(_m.CustomerPhoneNumber)
	builder.WriteString(", ")
	if v := _m.DeliveryType; v != nil {
		builder.WriteString("delivery_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("request_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestType))
	builder.WriteString(", ")
	if v := _m.ScheduledFor; v != nil {
		builder.WriteString("scheduled_for=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotal))
	builder.WriteString(", ")
	builder.WriteString("delivery_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryPrice))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentMethod))
	builder.WriteString(", ")
	builder.WriteString("payment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentStatus))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LocationAddress; v != nil {
		builder.WriteString("location_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LanguageUsed; v != nil {
		builder.WriteString("language_used=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("order_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderSource))
	builder.WriteString(", ")
	if v := _m.FirstResponseAt; v != nil {
		builder.WriteString("first_response_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Orders is a parsable slice of Order.
type Orders []*Order

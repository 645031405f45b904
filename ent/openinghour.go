// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/openinghour"
)

// OpeningHour is the model entity for the OpeningHour schema.
type OpeningHour struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OwnerType holds the value of the "owner_type" field.
	OwnerType openinghour.OwnerType `json:"owner_type,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// 0=Sunday
	DayOfWeek int `json:"day_of_week,omitempty"`
	// HH:MM
	OpenTime *string `json:"open_time,omitempty"`
	// HH:MM
	CloseTime *string `json:"close_time,omitempty"`
	// IsClosed holds the value of the "is_closed" field.
	IsClosed bool `json:"is_closed,omitempty"`
	// HH:MM; orders are not accepted past this time
	LastOrderTime *string `json:"last_order_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OpeningHour) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case openinghour.FieldIsClosed:
			values[i] = new(sql.NullBool)
		case openinghour.FieldDayOfWeek:
			values[i] = new(sql.NullInt64)
		case openinghour.FieldID, openinghour.FieldOwnerType, openinghour.FieldOwnerID, openinghour.FieldOpenTime, openinghour.FieldCloseTime, openinghour.FieldLastOrderTime:
			values[i] = new(sql.NullString)
		case openinghour.FieldCreatedAt, openinghour.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OpeningHour fields.
func (_m *OpeningHour) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case openinghour.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case openinghour.FieldOwnerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_type", values[i])
			} else if value.Valid {
				_m.OwnerType = openinghour.OwnerType(value.String)
			}
		case openinghour.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case openinghour.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int(value.Int64)
			}
		case openinghour.FieldOpenTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field open_time", values[i])
			} else if value.Valid {
				_m.OpenTime = new(string)
				*_m.OpenTime = value.String
			}
		case openinghour.FieldCloseTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field close_time", values[i])
			} else if value.Valid {
				_m.CloseTime = new(string)
				*_m.CloseTime = value.String
			}
		case openinghour.FieldIsClosed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_closed", values[i])
			} else if value.Valid {
				_m.IsClosed = value.Bool
			}
		case openinghour.FieldLastOrderTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_order_time", values[i])
			} else if value.Valid {
				_m.LastOrderTime = new(string)
				*_m.LastOrderTime = value.String
			}
		case openinghour.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case openinghour.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the OpeningHour.
// This includes values selected through modifiers, order, etc.
func (_m *OpeningHour) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OpeningHour.
// Note that you need to call OpeningHour.Unwrap() before calling this method if this OpeningHour
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OpeningHour) Update() *OpeningHourUpdateOne {
	return NewOpeningHourClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OpeningHour entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OpeningHour) Unwrap() *OpeningHour {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OpeningHour is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OpeningHour) String() string {
	var builder strings.Builder
	builder.WriteString("OpeningHour(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerType))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	if v := _m.OpenTime; v != nil {
		builder.WriteString("open_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CloseTime; v != nil {
		builder.WriteString("close_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_closed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsClosed))
	builder.WriteString(", ")
	if v := _m.LastOrderTime; v != nil {
		builder.WriteString("last_order_time=")
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

// OpeningHours is a parsable slice of OpeningHour.
type OpeningHours []*OpeningHour

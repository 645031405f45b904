// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vendrahq/vendra/ent/table"
)

// Table is the model entity for the Table schema.
type Table struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// Branch or business the table belongs to
	OwnerUserID string `json:"owner_user_id,omitempty"`
	// TableNumber holds the value of the "table_number" field.
	TableNumber int `json:"table_number,omitempty"`
	// MinSeats holds the value of the "min_seats" field.
	MinSeats int `json:"min_seats,omitempty"`
	// MaxSeats holds the value of the "max_seats" field.
	MaxSeats int `json:"max_seats,omitempty"`
	// Free-form placement hint, e.g. 'terrace', 'window'
	PositionLabel *string `json:"position_label,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Table) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case table.FieldIsActive:
			values[i] = new(sql.NullBool)
		case table.FieldTableNumber, table.FieldMinSeats, table.FieldMaxSeats:
			values[i] = new(sql.NullInt64)
		case table.FieldID, table.FieldBusinessID, table.FieldOwnerUserID, table.FieldPositionLabel:
			values[i] = new(sql.NullString)
		case table.FieldCreatedAt, table.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Table fields.
func (_m *Table) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case table.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case table.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case table.FieldOwnerUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user_id", values[i])
			} else if value.Valid {
				_m.OwnerUserID = value.String
			}
		case table.FieldTableNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field table_number", values[i])
			} else if value.Valid {
				_m.TableNumber = int(value.Int64)
			}
		case table.FieldMinSeats:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_seats", values[i])
			} else if value.Valid {
				_m.MinSeats = int(value.Int64)
			}
		case table.FieldMaxSeats:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_seats", values[i])
			} else if value.Valid {
				_m.MaxSeats = int(value.Int64)
			}
		case table.FieldPositionLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position_label", values[i])
			} else if value.Valid {
				_m.PositionLabel = new(string)
				*_m.PositionLabel = value.String
			}
		case table.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case table.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case table.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Table.
// This includes values selected through modifiers, order, etc.
func (_m *Table) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Table.
// Note that you need to call Table.Unwrap() before calling this method if this Table
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Table) Update() *TableUpdateOne {
	return NewTableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Table entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Table) Unwrap() *Table {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Table is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Table) String() string {
	var builder strings.Builder
	builder.WriteString("Table(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("owner_user_id=")
	builder.WriteString(_m.OwnerUserID)
	builder.WriteString(", ")
	builder.WriteString("table_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.TableNumber))
	builder.WriteString(", ")
	builder.WriteString("min_seats=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinSeats))
	builder.WriteString(", ")
	builder.WriteString("max_seats=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxSeats))
	builder.WriteString(", ")
	if v := _m.PositionLabel; v != nil {
		builder.WriteString("position_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tables is a parsable slice of Table.
type Tables []*Table

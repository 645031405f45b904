// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/businessaddon"
)

// BusinessAddon is the model entity for the BusinessAddon schema.
type BusinessAddon struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// AddonKey holds the value of the "addon_key" field.
	AddonKey businessaddon.AddonKey `json:"addon_key,omitempty"`
	// Status holds the value of the "status" field.
	Status businessaddon.Status `json:"status,omitempty"`
	// Tenant-specific pricing; zero means list price
	PriceOverride decimal.Decimal `json:"price_override,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessAddon) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businessaddon.FieldPriceOverride:
			values[i] = new(decimal.Decimal)
		case businessaddon.FieldID, businessaddon.FieldBusinessID, businessaddon.FieldAddonKey, businessaddon.FieldStatus:
			values[i] = new(sql.NullString)
		case businessaddon.FieldCreatedAt, businessaddon.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessAddon fields.
func (_m *BusinessAddon) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businessaddon.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case businessaddon.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case businessaddon.FieldAddonKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field addon_key", values[i])
			} else if value.Valid {
				_m.AddonKey = businessaddon.AddonKey(value.String)
			}
		case businessaddon.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = businessaddon.Status(value.String)
			}
		case businessaddon.FieldPriceOverride:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field price_override", values[i])
			} else if value != nil {
				_m.PriceOverride = *value
			}
		case businessaddon.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case businessaddon.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessAddon.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessAddon) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BusinessAddon.
// Note that you need to call BusinessAddon.Unwrap() before calling this method if this BusinessAddon
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessAddon) Update() *BusinessAddonUpdateOne {
	return NewBusinessAddonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessAddon entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessAddon) Unwrap() *BusinessAddon {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusinessAddon is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessAddon) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessAddon(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	builder.WriteString("addon_key=")
	builder.WriteString(fmt.Sprintf("%v", _m.AddonKey))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("price_override=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriceOverride))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessAddons is a parsable slice of BusinessAddon.
type BusinessAddons []*BusinessAddon

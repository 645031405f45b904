// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BusinessID holds the value of the "business_id" field.
	BusinessID string `json:"business_id,omitempty"`
	// Fulfilling branch; null means the business itself
	OwnerUserID *string `json:"owner_user_id,omitempty"`
	// MenuID holds the value of the "menu_id" field.
	MenuID *string `json:"menu_id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID *string `json:"category_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// ItemType holds the value of the "item_type" field.
	ItemType item.ItemType `json:"item_type,omitempty"`
	// Price holds the value of the "price" field.
	Price decimal.Decimal `json:"price,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost *decimal.Decimal `json:"cost,omitempty"`
	// PreparationTimeMinutes holds the value of the "preparation_time_minutes" field.
	PreparationTimeMinutes *int `json:"preparation_time_minutes,omitempty"`
	// Service length for appointment items
	DurationMinutes *int `json:"duration_minutes,omitempty"`
	// IsSchedulable holds the value of the "is_schedulable" field.
	IsSchedulable bool `json:"is_schedulable,omitempty"`
	// Minimum lead time before a scheduled fulfillment
	MinScheduleHours int `json:"min_schedule_hours,omitempty"`
	// Item-level cancellation window; null falls back to the business default
	CancelableBeforeHours *int `json:"cancelable_before_hours,omitempty"`
	// Null means unlimited; never negative
	StockQuantity *int `json:"stock_quantity,omitempty"`
	// Availability holds the value of the "availability" field.
	Availability item.Availability `json:"availability,omitempty"`
	// Weekdays (0=Sunday) the item is offered; empty means every day
	DaysAvailable []int `json:"days_available,omitempty"`
	// HH:MM
	AvailableFrom *string `json:"available_from,omitempty"`
	// HH:MM
	AvailableTo *string `json:"available_to,omitempty"`
	// TimesOrdered holds the value of the "times_ordered" field.
	TimesOrdered int `json:"times_ordered,omitempty"`
	// TimesDelivered holds the value of the "times_delivered" field.
	TimesDelivered int `json:"times_delivered,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldCost:
			values[i] = &sql.NullScanner{S: new(decimal.Decimal)}
		case item.FieldDaysAvailable:
			values[i] = new([]byte)
		case item.FieldPrice:
			values[i] = new(decimal.Decimal)
		case item.FieldIsSchedulable:
			values[i] = new(sql.NullBool)
		case item.FieldPreparationTimeMinutes, item.FieldDurationMinutes, item.FieldMinScheduleHours, item.FieldCancelableBeforeHours, item.FieldStockQuantity, item.FieldTimesOrdered, item.FieldTimesDelivered:
			values[i] = new(sql.NullInt64)
		case item.FieldID, item.FieldBusinessID, item.FieldOwnerUserID, item.FieldMenuID, item.FieldCategoryID, item.FieldName, item.FieldDescription, item.FieldItemType, item.FieldAvailability, item.FieldAvailableFrom, item.FieldAvailableTo:
			values[i] = new(sql.NullString)
		case item.FieldDeletedAt, item.FieldCreatedAt, item.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case item.FieldBusinessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = value.String
			}
		case item.FieldOwnerUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user_id", values[i])
			} else if value.Valid {
				_m.OwnerUserID = new(string)
				*_m.OwnerUserID = value.String
			}
		case item.FieldMenuID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field menu_id", values[i])
			} else if value.Valid {
				_m.MenuID = new(string)
				*_m.MenuID = value.String
			}
		case item.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = new(string)
				*_m.CategoryID = value.String
			}
		case item.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case item.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case item.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = item.ItemType(value.String)
			}
		case item.FieldPrice:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value != nil {
				_m.Price = *value
			}
		case item.FieldCost:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = new(decimal.Decimal)
				*_m.Cost = *value.S.(*decimal.Decimal)
			}
		case item.FieldPreparationTimeMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field preparation_time_minutes", values[i])
			} else if value.Valid {
				_m.PreparationTimeMinutes = new(int)
				*_m.PreparationTimeMinutes = int(value.Int64)
			}
		case item.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = new(int)
				*_m.DurationMinutes = int(value.Int64)
			}
		case item.FieldIsSchedulable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_schedulable", values[i])
			} else if value.Valid {
				_m.IsSchedulable = value.Bool
			}
		case item.FieldMinScheduleHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_schedule_hours", values[i])
			} else if value.Valid {
				_m.MinScheduleHours = int(value.Int64)
			}
		case item.FieldCancelableBeforeHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancelable_before_hours", values[i])
			} else if value.Valid {
				_m.CancelableBeforeHours = new(int)
				*_m.CancelableBeforeHours = int(value.Int64)
			}
		case item.FieldStockQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stock_quantity", values[i])
			} else if value.Valid {
				_m.StockQuantity = new(int)
				*_m.StockQuantity = int(value.Int64)
			}
		case item.FieldAvailability:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field availability", values[i])
			} else if value.Valid {
				_m.Availability = item.Availability(value.String)
			}
		case item.FieldDaysAvailable:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field days_available", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DaysAvailable); err != nil {
					return fmt.Errorf("unmarshal field days_available: %w", err)
				}
			}
		case item.FieldAvailableFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field available_from", values[i])
			} else if value.Valid {
				_m.AvailableFrom = new(string)
				*_m.AvailableFrom = value.String
			}
		case item.FieldAvailableTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field available_to", values[i])
			} else if value.Valid {
				_m.AvailableTo = new(string)
				*_m.AvailableTo = value.String
			}
		case item.FieldTimesOrdered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_ordered", values[i])
			} else if value.Valid {
				_m.TimesOrdered = int(value.Int64)
			}
		case item.FieldTimesDelivered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_delivered", values[i])
			} else if value.Valid {
				_m.TimesDelivered = int(value.Int64)
			}
		case item.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case item.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case item.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(_m.BusinessID)
	builder.WriteString(", ")
	if v := _m.OwnerUserID; v != nil {
		builder.WriteString("owner_user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MenuID; v != nil {
		builder.WriteString("menu_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CategoryID; v != nil {
		builder.WriteString("category_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemType))
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	if v := _m.Cost; v != nil {
		builder.WriteString("cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PreparationTimeMinutes; v != nil {
		builder.WriteString("preparation_time_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DurationMinutes; v != nil {
		builder.WriteString("duration_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_schedulable=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSchedulable))
	builder.WriteString(", ")
	builder.WriteString("min_schedule_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinScheduleHours))
	builder.WriteString(", ")
	if v := _m.CancelableBeforeHours; v != nil {
		builder.WriteString("cancelable_before_hours=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StockQuantity; v != nil {
		builder.WriteString("stock_quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("availability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Availability))
	builder.WriteString(", ")
	builder.WriteString("days_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.DaysAvailable))
	builder.WriteString(", ")
	if v := _m.AvailableFrom; v != nil {
		builder.WriteString("available_from=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AvailableTo; v != nil {
		builder.WriteString("available_to=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("times_ordered=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesOrdered))
	builder.WriteString(", ")
	builder.WriteString("times_delivered=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesDelivered))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
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

// Items is a parsable slice of Item.
type Items []*Item

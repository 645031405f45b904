package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// Item holds the schema definition for the Item entity.
// Items are the sellable units of a business: goods (menu items, products)
// or services (appointments) with optional scheduling constraints and stock.
type Item struct {
	ent.Schema
}

// Fields of the Item.
func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("owner_user_id").
			Optional().
			Nillable().
			Comment("Fulfilling branch; null means the business itself"),
		field.String("menu_id").
			Optional().
			Nillable(),
		field.String("category_id").
			Optional().
			Nillable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("item_type").
			Values("good", "service").
			Default("good"),
		field.Other("price", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Default(decimal.NewFromInt(0)),
		field.Other("cost", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Optional().
			Nillable(),
		field.Int("preparation_time_minutes").
			Optional().
			Nillable(),
		field.Int("duration_minutes").
			Optional().
			Nillable().
			Comment("Service length for appointment items"),
		field.Bool("is_schedulable").
			Default(false),
		field.Int("min_schedule_hours").
			Default(0).
			Comment("Minimum lead time before a scheduled fulfillment"),
		field.Int("cancelable_before_hours").
			Optional().
			Nillable().
			Comment("Item-level cancellation window; null falls back to the business default"),
		field.Int("stock_quantity").
			Optional().
			Nillable().
			Comment("Null means unlimited; never negative"),
		field.Enum("availability").
			Values("available", "unavailable", "hidden").
			Default("available"),
		field.JSON("days_available", []int{}).
			Optional().
			Comment("Weekdays (0=Sunday) the item is offered; empty means every day"),
		field.String("available_from").
			Optional().
			Nillable().
			Comment("HH:MM"),
		field.String("available_to").
			Optional().
			Nillable().
			Comment("HH:MM"),
		field.Int("times_ordered").
			Default(0),
		field.Int("times_delivered").
			Default(0),
		field.Time("deleted_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Item.
func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "availability"),
		index.Fields("owner_user_id"),
		index.Fields("menu_id"),
		index.Fields("category_id"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}

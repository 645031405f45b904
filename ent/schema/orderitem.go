package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// OrderItem holds the schema definition for the OrderItem entity.
// Lines are priced at creation and never recomputed from the catalog.
type OrderItem struct {
	ent.Schema
}

// Fields of the OrderItem.
func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("order_item_id").
			Unique().
			Immutable(),
		field.String("order_id").
			Immutable(),
		field.String("item_id").
			Comment("Catalog item reference; kept as a plain id so archived orders survive catalog deletes"),
		field.Int("quantity").
			Min(1),
		field.Other("price_at_time", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Default(decimal.NewFromInt(0)),
		field.Other("cost_at_time", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Optional().
			Nillable(),
		field.String("name_at_time"),
		field.Text("notes").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the OrderItem.
func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("items").
			Field("order_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OrderItem.
func (OrderItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id"),
		index.Fields("item_id"),
	}
}

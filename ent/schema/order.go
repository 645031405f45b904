package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// Order holds the schema definition for the Order entity.
// An order in status "cart" is the customer's in-progress basket; carts and
// placed orders share this table so confirmation is an atomic row update.
// The partial unique index guaranteeing one cart per
// (business_id, user_id, customer_phone_number) is created in
// pkg/database (Ent cannot express partial unique indexes).
type Order struct {
	ent.Schema
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("order_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Fulfilling principal: a branch or the business itself"),
		field.String("customer_phone_number").
			Immutable(),
		field.Enum("delivery_type").
			Values("takeaway", "delivery", "on_site").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("cart", "accepted", "ongoing", "ready", "completed", "cancelled", "rejected").
			Default("cart"),
		field.Enum("request_type").
			Values("order", "scheduled_request").
			Default("order"),
		field.Time("scheduled_for").
			Optional().
			Nillable(),
		field.Other("subtotal", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Default(decimal.NewFromInt(0)),
		field.Other("delivery_price", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Default(decimal.NewFromInt(0)),
		field.Other("total", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Default(decimal.NewFromInt(0)).
			Comment("Always subtotal + delivery_price"),
		field.Enum("payment_method").
			Values("cash", "card", "online").
			Default("cash"),
		field.Enum("payment_status").
			Values("unpaid", "paid", "refunded").
			Default("unpaid"),
		field.Text("notes").
			Optional().
			Nillable(),
		field.String("location_address").
			Optional().
			Nillable(),
		field.String("language_used").
			Optional().
			Nillable(),
		field.Enum("order_source").
			Values("whatsapp", "telegram", "instagram", "facebook", "dashboard").
			Default("whatsapp"),
		field.Time("first_response_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("cancelled_at").
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

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", OrderItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("status_history", OrderStatusHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "status"),
		index.Fields("user_id", "status"),
		index.Fields("customer_phone_number"),
		index.Fields("status", "scheduled_for"),
		index.Fields("status", "completed_at"),
		index.Fields("status", "cancelled_at"),
	}
}

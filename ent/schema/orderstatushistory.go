package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrderStatusHistory holds the schema definition for the OrderStatusHistory
// entity. Append-only: the latest row always matches the parent order's
// status.
type OrderStatusHistory struct {
	ent.Schema
}

// Annotations of the OrderStatusHistory.
func (OrderStatusHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_status_history"},
	}
}

// Fields of the OrderStatusHistory.
func (OrderStatusHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("order_id").
			Immutable(),
		field.Enum("status").
			Values("cart", "accepted", "ongoing", "ready", "completed", "cancelled", "rejected").
			Immutable(),
		field.String("changed_by").
			Immutable().
			Comment("Principal or system actor that performed the transition"),
		field.Time("changed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the OrderStatusHistory.
func (OrderStatusHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("status_history").
			Field("order_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OrderStatusHistory.
func (OrderStatusHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "changed_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupportTicket holds the schema definition for the SupportTicket entity.
type SupportTicket struct {
	ent.Schema
}

// Fields of the SupportTicket.
func (SupportTicket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("customer_id").
			Immutable(),
		field.String("related_order_id").
			Optional().
			Nillable(),
		field.String("related_reservation_id").
			Optional().
			Nillable(),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("subject").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("open", "in_progress", "waiting_customer", "closed").
			Default("open"),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium"),
		field.String("assigned_employee_id").
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

// Edges of the SupportTicket.
func (SupportTicket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", TicketMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SupportTicket.
func (SupportTicket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "status"),
		index.Fields("assigned_employee_id"),
		index.Fields("session_id"),
	}
}

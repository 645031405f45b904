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

// TicketMessage holds the schema definition for the TicketMessage entity.
type TicketMessage struct {
	ent.Schema
}

// Annotations of the TicketMessage.
func (TicketMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "support_ticket_messages"},
	}
}

// Fields of the TicketMessage.
func (TicketMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_message_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.Enum("sender_type").
			Values("customer", "bot", "employee", "system").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketMessage.
func (TicketMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", SupportTicket.Type).
			Ref("messages").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketMessage.
func (TicketMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "created_at"),
	}
}

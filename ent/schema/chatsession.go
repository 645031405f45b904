package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession holds the schema definition for the ChatSession entity.
// A session binds a channel-qualified customer identity to one conversation
// with a business. While state is human_locked the engine must not invoke
// mutating tools. Closed sessions are never resumed; a new inbound message
// opens a fresh session. The partial unique index guaranteeing one open
// session per (business_id, customer_id, platform) lives in pkg/database.
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("customer_id").
			Immutable().
			Comment("Channel-qualified identity: phone number or platform chat id"),
		field.Enum("platform").
			Values("whatsapp", "telegram", "instagram", "facebook").
			Immutable(),
		field.Enum("state").
			Values("bot_active", "human_locked", "closed").
			Default("bot_active"),
		field.String("assigned_employee_id").
			Optional().
			Nillable(),
		field.String("language_hint").
			Optional().
			Nillable(),
		field.Time("last_activity_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatSession.
func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "customer_id", "platform"),
		index.Fields("state", "last_activity_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboundJob holds the schema definition for the InboundJob entity: the
// work queue row behind every inbound customer message. Workers claim jobs
// FIFO per session with SELECT ... FOR UPDATE SKIP LOCKED; a session with a
// job in processing is skipped so one conversation never runs two turns at
// once.
type InboundJob struct {
	ent.Schema
}

// Fields of the InboundJob.
func (InboundJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("The stored customer ChatMessage this job processes"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod id of the claiming worker"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection across replica crashes"),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the InboundJob.
func (InboundJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("session_id", "status"),
		index.Fields("status", "last_heartbeat_at"),
	}
}

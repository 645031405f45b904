package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMTrace holds the schema definition for the LLMTrace entity: one row per
// conversational turn recording what was sent to and received from the
// model. Content is PII-masked before persistence.
type LLMTrace struct {
	ent.Schema
}

// Annotations of the LLMTrace.
func (LLMTrace) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "llm_traces"},
	}
}

// Fields of the LLMTrace.
func (LLMTrace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trace_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("turn_id").
			Immutable(),
		field.String("model").
			Optional().
			Nillable(),
		field.JSON("request_messages", []map[string]interface{}{}).
			Optional(),
		field.Text("final_text").
			Optional().
			Nillable(),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Comment("Executed tool calls with their result codes"),
		field.Int("iterations").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMTrace.
func (LLMTrace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("business_id", "created_at"),
	}
}

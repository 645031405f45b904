package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription holds the schema definition for the Subscription entity.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("subscription_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.Enum("plan").
			Values("free", "starter", "pro").
			Default("free"),
		field.Enum("status").
			Values("active", "past_due", "cancelled").
			Default("active"),
		field.Time("current_period_end").
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

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id").
			Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OpeningHour holds the schema definition for the OpeningHour entity.
// One row per (owner, day of week). Branch rows shadow business rows:
// lookups try the branch first and fall back to the business.
type OpeningHour struct {
	ent.Schema
}

// Fields of the OpeningHour.
func (OpeningHour) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("opening_hour_id").
			Unique().
			Immutable(),
		field.Enum("owner_type").
			Values("business", "branch"),
		field.String("owner_id").
			Immutable(),
		field.Int("day_of_week").
			Min(0).
			Max(6).
			Comment("0=Sunday"),
		field.String("open_time").
			Optional().
			Nillable().
			Comment("HH:MM"),
		field.String("close_time").
			Optional().
			Nillable().
			Comment("HH:MM"),
		field.Bool("is_closed").
			Default(false),
		field.String("last_order_time").
			Optional().
			Nillable().
			Comment("HH:MM; orders are not accepted past this time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the OpeningHour.
func (OpeningHour) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_type", "owner_id", "day_of_week").
			Unique(),
	}
}

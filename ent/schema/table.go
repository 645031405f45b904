package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Table holds the schema definition for the Table entity (physical dining
// tables). Availability for a (date, time) slot is derived by querying
// confirmed reservations, never stored on the row.
type Table struct {
	ent.Schema
}

// Annotations of the Table.
func (Table) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tables"},
	}
}

// Fields of the Table.
func (Table) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("table_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("owner_user_id").
			Immutable().
			Comment("Branch or business the table belongs to"),
		field.Int("table_number"),
		field.Int("min_seats").
			Default(1),
		field.Int("max_seats").
			Default(1),
		field.String("position_label").
			Optional().
			Nillable().
			Comment("Free-form placement hint, e.g. 'terrace', 'window'"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Table.
func (Table) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_user_id", "table_number").
			Unique(),
		index.Fields("business_id", "is_active"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ServiceCategory holds the schema definition for the ServiceCategory entity.
// Categories group service items (e.g. "Haircuts", "Coloring") for
// service-type businesses.
type ServiceCategory struct {
	ent.Schema
}

// Fields of the ServiceCategory.
func (ServiceCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("category_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ServiceCategory.
func (ServiceCategory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id"),
	}
}

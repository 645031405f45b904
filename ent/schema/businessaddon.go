package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// BusinessAddon holds the schema definition for the BusinessAddon entity.
// An addon is a per-tenant capability flag gating a family of tools.
type BusinessAddon struct {
	ent.Schema
}

// Fields of the BusinessAddon.
func (BusinessAddon) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("addon_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.Enum("addon_key").
			Values("base_bot", "table_reservations", "scheduled_requests", "support_tickets"),
		field.Enum("status").
			Values("active", "inactive").
			Default("active"),
		field.Other("price_override", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Default(decimal.NewFromInt(0)).
			Comment("Tenant-specific pricing; zero means list price"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the BusinessAddon.
func (BusinessAddon) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "addon_key").
			Unique(),
	}
}

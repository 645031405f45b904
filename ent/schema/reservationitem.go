package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// ReservationItem holds the schema definition for the ReservationItem
// entity: items pre-ordered alongside a table reservation, priced at add
// time.
type ReservationItem struct {
	ent.Schema
}

// Fields of the ReservationItem.
func (ReservationItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reservation_item_id").
			Unique().
			Immutable(),
		field.String("reservation_id").
			Immutable(),
		field.String("item_id"),
		field.Int("quantity").
			Min(1),
		field.Other("price_at_time", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
			}).
			Default(decimal.NewFromInt(0)),
		field.String("name_at_time"),
		field.Text("notes").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ReservationItem.
func (ReservationItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("reservation", Reservation.Type).
			Ref("items").
			Field("reservation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ReservationItem.
func (ReservationItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reservation_id"),
	}
}

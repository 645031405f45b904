package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reservation holds the schema definition for the Reservation entity.
// Slot exclusion — at most one confirmed reservation per
// (table_id, reservation_date, reservation_time) — is enforced by a partial
// unique index created in pkg/database.
type Reservation struct {
	ent.Schema
}

// Fields of the Reservation.
func (Reservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reservation_id").
			Unique().
			Immutable(),
		field.String("business_user_id").
			Immutable().
			Comment("Tenant business"),
		field.String("owner_user_id").
			Immutable().
			Comment("Fulfilling branch or business"),
		field.String("table_id").
			Optional().
			Nillable(),
		field.String("customer_phone_number").
			Immutable(),
		field.String("customer_name"),
		field.String("reservation_date").
			Comment("YYYY-MM-DD in the business timezone"),
		field.String("reservation_time").
			Comment("HH:MM, minute precision"),
		field.Int("number_of_guests").
			Optional().
			Nillable(),
		field.Enum("reservation_type").
			Values("table", "appointment").
			Default("table"),
		field.Enum("status").
			Values("confirmed", "cancelled", "completed", "no_show").
			Default("confirmed"),
		field.Text("notes").
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

// Edges of the Reservation.
func (Reservation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", ReservationItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Reservation.
func (Reservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_user_id", "reservation_date"),
		index.Fields("business_user_id", "status"),
		index.Fields("table_id", "reservation_date", "reservation_time"),
		index.Fields("customer_phone_number"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// A user is a platform principal: the admin, a business owner, or a
// subordinate branch/employee principal under a business.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.Enum("role").
			Values("admin", "business_owner", "branch", "employee"),
		field.String("parent_user_id").
			Optional().
			Nillable().
			Comment("Owning business for branches and employees"),
		field.String("name"),
		field.String("email").
			Optional().
			Nillable(),
		field.String("phone_number").
			Optional().
			Nillable(),
		field.Enum("business_type").
			Values("food_and_beverage", "salon", "rental", "retail", "other").
			Default("other").
			Comment("Meaningful for business_owner rows; branches inherit"),
		field.String("timezone").
			Default("UTC").
			Comment("IANA zone used for scheduling and opening hours"),
		field.String("language").
			Optional().
			Nillable(),
		field.Int("default_cancelable_before_hours").
			Default(2).
			Comment("Fallback cancellation window when no item overrides it"),
		field.String("playbook_url").
			Optional().
			Nillable().
			Comment("Optional conversation playbook injected into the system prompt"),
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

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("parent_user_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BotIntegration holds the schema definition for the BotIntegration entity.
// One row per (business, channel): credentials and the provider-side account
// id that inbound webhooks are resolved against.
type BotIntegration struct {
	ent.Schema
}

// Fields of the BotIntegration.
func (BotIntegration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("integration_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.Enum("platform").
			Values("whatsapp", "telegram", "instagram", "facebook").
			Immutable(),
		field.String("provider_account_id").
			Comment("phone_number_id for WhatsApp, page id for Meta platforms, bot id for Telegram"),
		field.String("access_token").
			Sensitive(),
		field.String("verify_token").
			Optional().
			Nillable().
			Sensitive(),
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

// Indexes of the BotIntegration.
func (BotIntegration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "provider_account_id").
			Unique(),
		index.Fields("business_id"),
	}
}

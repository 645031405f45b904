package models

import (
	"github.com/vendrahq/vendra/ent/botintegration"
)

// UpsertIntegrationRequest creates or rotates a channel integration for a
// tenant: the provider-side account id inbound webhooks resolve against,
// plus credentials.
type UpsertIntegrationRequest struct {
	BusinessID        string                  `json:"business_id"`
	Platform          botintegration.Platform `json:"platform"`
	ProviderAccountID string                  `json:"provider_account_id"`
	AccessToken       string                  `json:"access_token"`
	VerifyToken       string                  `json:"verify_token,omitempty"`
}

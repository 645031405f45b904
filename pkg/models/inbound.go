package models

import (
	"time"

	"github.com/vendrahq/vendra/ent/chatsession"
)

// InboundMessage is the channel-agnostic form of one webhook delivery after
// the per-platform handler has unpacked it.
type InboundMessage struct {
	Platform          chatsession.Platform `json:"platform"`
	ProviderAccountID string               `json:"provider_account_id"`
	CustomerID        string               `json:"customer_id"`
	CustomerName      string               `json:"customer_name,omitempty"`
	Text              string               `json:"text"`
	MediaURL          string               `json:"media_url,omitempty"`
	ProviderMessageID string               `json:"provider_message_id"`
	Timestamp         time.Time            `json:"timestamp"`
}

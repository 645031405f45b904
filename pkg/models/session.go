package models

import (
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
)

// SessionScope identifies one conversation: tenant, channel-qualified
// customer identity, and platform.
type SessionScope struct {
	BusinessID string               `json:"business_id"`
	CustomerID string               `json:"customer_id"`
	Platform   chatsession.Platform `json:"platform"`
}

// AppendMessageRequest appends one message to a session thread.
type AppendMessageRequest struct {
	SessionID         string                 `json:"session_id"`
	SenderType        chatmessage.SenderType `json:"sender_type"`
	Content           string                 `json:"content"`
	MediaURL          string                 `json:"media_url,omitempty"`
	ProviderMessageID string                 `json:"provider_message_id,omitempty"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	BusinessID string            `json:"business_id,omitempty"`
	CustomerID string            `json:"customer_id,omitempty"`
	State      chatsession.State `json:"state,omitempty"`
	Limit      int               `json:"limit,omitempty"`
	Offset     int               `json:"offset,omitempty"`
}

// SessionListResponse contains a paginated session list.
type SessionListResponse struct {
	Sessions   []*ent.ChatSession `json:"sessions"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// Package prompt assembles the conversation sent to the model: one system
// message carrying the tenant profile and the rules of engagement, followed
// by the recent thread history.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/agent"
	"github.com/vendrahq/vendra/pkg/models"
)

// TurnContext is everything the builder needs for one turn. All fields are
// read-only snapshots gathered by the engine; nil or empty fields simply
// drop their section from the prompt.
type TurnContext struct {
	Business *ent.User
	Session  *ent.ChatSession
	Hours    []*ent.OpeningHour
	Cart     *models.CartSnapshot
	History  []*ent.ChatMessage
	Playbook string
	// Now is the current time in the business timezone.
	Now time.Time
	// InboundText is the message being answered. Normally it is already the
	// tail of History; it is appended only when the thread does not end
	// with it.
	InboundText  string
	CustomerName string
}

// Builder composes prompt text. Stateless and safe for concurrent use.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildTurnMessages returns the full conversation for one turn: the system
// message followed by the thread history in chat roles.
func (b *Builder) BuildTurnMessages(tc *TurnContext) []agent.ConversationMessage {
	messages := []agent.ConversationMessage{
		{Role: "system", Content: b.composeSystem(tc)},
	}
	messages = append(messages, historyMessages(tc.History)...)

	// The inbound message is persisted before the turn runs, so it is
	// normally the last history entry. Guard against an empty or stale
	// thread so the model always sees the message it must answer.
	if tc.InboundText != "" {
		last := len(messages) - 1
		if messages[last].Role != "user" || messages[last].Content != tc.InboundText {
			messages = append(messages, agent.ConversationMessage{Role: "user", Content: tc.InboundText})
		}
	}
	return messages
}

// ForcedReplyPrompt returns the user message injected when the iteration
// cap is reached and the model must answer without tools.
func (b *Builder) ForcedReplyPrompt() string {
	return forcedReplyPrompt
}

func (b *Builder) composeSystem(tc *TurnContext) string {
	sections := []string{
		assistantInstructions,
		FormatBusinessSection(tc.Business, tc.Now),
		FormatHoursSection(tc.Hours),
	}
	if s := FormatCartSection(tc.Cart); s != "" {
		sections = append(sections, s)
	}
	if s := FormatCustomerSection(tc.Session, tc.CustomerName); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, toolPolicy)
	if tc.Playbook != "" {
		sections = append(sections, "## Conversation Playbook\n\n"+tc.Playbook)
	}
	return strings.Join(sections, "\n\n")
}

// FormatBusinessSection renders the tenant profile the model speaks for.
func FormatBusinessSection(business *ent.User, now time.Time) string {
	if business == nil {
		return "## Business\n\nUnknown business."
	}
	var sb strings.Builder
	sb.WriteString("## Business\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", business.Name)
	fmt.Fprintf(&sb, "Kind: %s\n", businessKind(business.BusinessType))
	fmt.Fprintf(&sb, "Timezone: %s\n", business.Timezone)
	if !now.IsZero() {
		fmt.Fprintf(&sb, "Current local time: %s\n", now.Format("Monday 2 January 2006, 15:04"))
	}
	if business.Language != nil && *business.Language != "" {
		fmt.Fprintf(&sb, "Preferred language: %s\n", *business.Language)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatHoursSection renders the weekly opening hours table.
func FormatHoursSection(hours []*ent.OpeningHour) string {
	var sb strings.Builder
	sb.WriteString("## Opening Hours\n\n")
	if len(hours) == 0 {
		sb.WriteString("No opening hours configured; treat the business as closed for scheduling.")
		return sb.String()
	}
	for _, h := range hours {
		day := time.Weekday(h.DayOfWeek).String()
		switch {
		case h.IsClosed:
			fmt.Fprintf(&sb, "%s: closed\n", day)
		case h.OpenTime != nil && h.CloseTime != nil:
			fmt.Fprintf(&sb, "%s: %s-%s", day, *h.OpenTime, *h.CloseTime)
			if h.LastOrderTime != nil && *h.LastOrderTime != "" {
				fmt.Fprintf(&sb, " (last order %s)", *h.LastOrderTime)
			}
			sb.WriteString("\n")
		default:
			fmt.Fprintf(&sb, "%s: hours not set\n", day)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatCartSection renders the customer's current cart, or nothing when
// the cart is empty.
func FormatCartSection(cart *models.CartSnapshot) string {
	if cart == nil || cart.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Current Cart\n\n")
	for _, line := range cart.Lines {
		fmt.Fprintf(&sb, "- %dx %s (%s each)", line.Quantity, line.Name, line.UnitPrice.StringFixed(2))
		if line.Notes != "" {
			fmt.Fprintf(&sb, " — %s", line.Notes)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Subtotal: %s\n", cart.Subtotal.StringFixed(2))
	if cart.DeliveryType != nil {
		fmt.Fprintf(&sb, "Fulfilment: %s\n", *cart.DeliveryType)
	}
	if cart.Address != "" {
		fmt.Fprintf(&sb, "Delivery address: %s\n", cart.Address)
	}
	if cart.ScheduledFor != nil {
		fmt.Fprintf(&sb, "Scheduled for: %s\n", cart.ScheduledFor.Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "Total: %s\n", cart.Total.StringFixed(2))
	return strings.TrimRight(sb.String(), "\n")
}

// FormatCustomerSection renders what is known about the counterparty.
func FormatCustomerSection(session *ent.ChatSession, customerName string) string {
	if session == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Customer\n\n")
	fmt.Fprintf(&sb, "Channel: %s\n", session.Platform)
	if customerName != "" {
		fmt.Fprintf(&sb, "Name: %s\n", customerName)
	}
	if session.LanguageHint != nil && *session.LanguageHint != "" {
		fmt.Fprintf(&sb, "Language hint: %s\n", *session.LanguageHint)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// historyMessages maps the persisted thread onto chat roles. Staff replies
// read as assistant turns; system notes become bracketed user-side notes so
// the model sees them without mistaking them for customer speech.
func historyMessages(history []*ent.ChatMessage) []agent.ConversationMessage {
	out := make([]agent.ConversationMessage, 0, len(history))
	for _, m := range history {
		content := m.Content
		if content == "" && m.MediaURL != nil {
			content = "[media message]"
		}
		switch m.SenderType {
		case chatmessage.SenderTypeCustomer:
			out = append(out, agent.ConversationMessage{Role: "user", Content: content})
		case chatmessage.SenderTypeBot:
			out = append(out, agent.ConversationMessage{Role: "assistant", Content: content})
		case chatmessage.SenderTypeEmployee:
			out = append(out, agent.ConversationMessage{Role: "assistant", Content: "[staff] " + content})
		case chatmessage.SenderTypeSystem:
			out = append(out, agent.ConversationMessage{Role: "user", Content: "[system note] " + content})
		}
	}
	return out
}

// businessKind renders the business type with the terminology customers use.
func businessKind(t user.BusinessType) string {
	switch t {
	case user.BusinessTypeFoodAndBeverage:
		return "restaurant / food and beverage (customers order dishes from the menu; tables may be reservable)"
	case user.BusinessTypeSalon:
		return "salon (customers book services and appointments)"
	case user.BusinessTypeRental:
		return "rental business (customers rent items for a period)"
	case user.BusinessTypeRetail:
		return "retail shop (customers order products)"
	default:
		return string(t)
	}
}

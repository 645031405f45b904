package prompt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
)

func strptr(s string) *string { return &s }

func newTurnContext() *TurnContext {
	lang := "it"
	return &TurnContext{
		Business: &ent.User{
			Name:         "Trattoria Lucia",
			BusinessType: user.BusinessTypeFoodAndBeverage,
			Timezone:     "Europe/Rome",
			Language:     &lang,
		},
		Session: &ent.ChatSession{
			Platform: chatsession.PlatformWhatsapp,
			State:    chatsession.StateBotActive,
		},
		Hours: []*ent.OpeningHour{
			{DayOfWeek: 1, OpenTime: strptr("11:00"), CloseTime: strptr("23:00"), LastOrderTime: strptr("22:30")},
			{DayOfWeek: 2, IsClosed: true},
		},
		Now:          time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC),
		CustomerName: "Dana",
		InboundText:  "a margherita please",
	}
}

func TestBuildTurnMessages_SystemContent(t *testing.T) {
	b := NewBuilder()
	messages := b.BuildTurnMessages(newTurnContext())

	require.NotEmpty(t, messages)
	assert.Equal(t, "system", messages[0].Role)

	system := messages[0].Content
	assert.Contains(t, system, "Assistant Instructions")
	assert.Contains(t, system, "Trattoria Lucia")
	assert.Contains(t, system, "Europe/Rome")
	assert.Contains(t, system, "Preferred language: it")
	assert.Contains(t, system, "Monday: 11:00-23:00 (last order 22:30)")
	assert.Contains(t, system, "Tuesday: closed")
	assert.Contains(t, system, "validate_cart_for_confirmation")
	assert.Contains(t, system, "Channel: whatsapp")
	assert.Contains(t, system, "Name: Dana")
}

func TestBuildTurnMessages_AppendsInboundWhenThreadEmpty(t *testing.T) {
	b := NewBuilder()
	tc := newTurnContext()

	messages := b.BuildTurnMessages(tc)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[1].Role)
	assert.Equal(t, "a margherita please", messages[1].Content)
}

func TestBuildTurnMessages_InboundAlreadyThreadTail(t *testing.T) {
	b := NewBuilder()
	tc := newTurnContext()
	tc.History = []*ent.ChatMessage{
		{SenderType: chatmessage.SenderTypeCustomer, Content: "hi"},
		{SenderType: chatmessage.SenderTypeBot, Content: "hello, what can I get you?"},
		{SenderType: chatmessage.SenderTypeCustomer, Content: "a margherita please"},
	}

	messages := b.BuildTurnMessages(tc)
	// system + 3 history entries, inbound not duplicated
	require.Len(t, messages, 4)
	assert.Equal(t, "user", messages[3].Role)
	assert.Equal(t, "a margherita please", messages[3].Content)
}

func TestBuildTurnMessages_HistoryRoles(t *testing.T) {
	b := NewBuilder()
	tc := newTurnContext()
	tc.InboundText = ""
	media := "https://cdn.example/pic.jpg"
	tc.History = []*ent.ChatMessage{
		{SenderType: chatmessage.SenderTypeCustomer, Content: "", MediaURL: &media},
		{SenderType: chatmessage.SenderTypeEmployee, Content: "we are on it"},
		{SenderType: chatmessage.SenderTypeSystem, Content: "Conversation returned to the assistant."},
	}

	messages := b.BuildTurnMessages(tc)
	require.Len(t, messages, 4)
	assert.Equal(t, "user", messages[1].Role)
	assert.Equal(t, "[media message]", messages[1].Content)
	assert.Equal(t, "assistant", messages[2].Role)
	assert.Equal(t, "[staff] we are on it", messages[2].Content)
	assert.Equal(t, "user", messages[3].Role)
	assert.Contains(t, messages[3].Content, "[system note]")
}

func TestFormatCartSection(t *testing.T) {
	t.Run("empty cart renders nothing", func(t *testing.T) {
		assert.Empty(t, FormatCartSection(nil))
		assert.Empty(t, FormatCartSection(&models.CartSnapshot{}))
	})

	t.Run("lines and totals", func(t *testing.T) {
		delivery := decimal.NewFromFloat(2.50)
		snap := &models.CartSnapshot{
			Lines: []models.CartLine{
				{Name: "Margherita", Quantity: 2, UnitPrice: decimal.NewFromFloat(8), LineTotal: decimal.NewFromFloat(16), Notes: "no basil"},
			},
			Subtotal:      decimal.NewFromFloat(16),
			DeliveryPrice: delivery,
			Total:         decimal.NewFromFloat(18.50),
		}
		s := FormatCartSection(snap)
		assert.Contains(t, s, "2x Margherita (8.00 each)")
		assert.Contains(t, s, "no basil")
		assert.Contains(t, s, "Subtotal: 16.00")
		assert.Contains(t, s, "Total: 18.50")
	})
}

func TestFormatHoursSection_NoHours(t *testing.T) {
	s := FormatHoursSection(nil)
	assert.Contains(t, s, "No opening hours configured")
}

func TestForcedReplyPrompt(t *testing.T) {
	b := NewBuilder()
	p := b.ForcedReplyPrompt()
	assert.Contains(t, p, "no tool calls left")
}

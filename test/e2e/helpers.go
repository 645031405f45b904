package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/llmtrace"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/supportticket"
)

// ────────────────────────────────────────────────────────────
// Webhook Helpers
// ────────────────────────────────────────────────────────────

// PostWhatsAppText delivers one Cloud API text message from the stock
// customer and returns how many messages the webhook accepted.
func (app *TestApp) PostWhatsAppText(t *testing.T, providerMsgID, text string) int {
	t.Helper()
	payload := map[string]interface{}{
		"object": "whatsapp_business_account",
		"entry": []map[string]interface{}{{
			"changes": []map[string]interface{}{{
				"value": map[string]interface{}{
					"metadata": map[string]interface{}{"phone_number_id": waPhoneNumberID},
					"contacts": []map[string]interface{}{{
						"wa_id":   waCustomerID,
						"profile": map[string]interface{}{"name": "Dana"},
					}},
					"messages": []map[string]interface{}{{
						"from":      waCustomerID,
						"id":        providerMsgID,
						"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
						"type":      "text",
						"text":      map[string]interface{}{"body": text},
					}},
				},
			}},
		}},
	}
	return app.postWebhook(t, "/webhooks/whatsapp", payload, nil)
}

// PostTelegramText delivers one Bot API update carrying a text message.
func (app *TestApp) PostTelegramText(t *testing.T, chatID, messageID int64, text string) int {
	t.Helper()
	payload := map[string]interface{}{
		"update_id": messageID,
		"message": map[string]interface{}{
			"message_id": messageID,
			"from":       map[string]interface{}{"id": chatID, "first_name": "Dana"},
			"chat":       map[string]interface{}{"id": chatID},
			"date":       time.Now().Unix(),
			"text":       text,
		},
	}
	headers := map[string]string{"X-Telegram-Bot-Api-Secret-Token": testVerifyToken}
	return app.postWebhook(t, "/webhooks/telegram/"+tgBotAccountID, payload, headers)
}

// postWebhook posts a provider payload and decodes the received count from
// the data envelope. Webhooks answer 200 even for suppressed deliveries.
func (app *TestApp) postWebhook(t *testing.T, path string, payload interface{}, headers map[string]string) int {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode, "POST %s: unexpected status", path)

	var envelope struct {
		Data struct {
			Received int `json:"received"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data.Received
}

// ────────────────────────────────────────────────────────────
// Polling Helpers
// ────────────────────────────────────────────────────────────

// WaitForDeliveries polls until the sender has accepted at least n messages
// and returns them.
func (app *TestApp) WaitForDeliveries(t *testing.T, sender *RecordingSender, n int) []Delivery {
	t.Helper()
	require.Eventually(t, func() bool {
		return sender.Count() >= n
	}, 30*time.Second, 25*time.Millisecond,
		"expected %d deliveries, got %d", n, sender.Count())
	return sender.Deliveries()
}

// WaitForQueueDrained polls until no job for the business is pending or
// processing.
func (app *TestApp) WaitForQueueDrained(t *testing.T, businessID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		n, err := app.EntClient.InboundJob.Query().
			Where(
				inboundjob.BusinessIDEQ(businessID),
				inboundjob.StatusIn(inboundjob.StatusPending, inboundjob.StatusProcessing),
			).
			Count(context.Background())
		return err == nil && n == 0
	}, 30*time.Second, 50*time.Millisecond,
		"queue still has open jobs for business %s", businessID)
}

// WaitForSessionState polls until the session reaches the expected state.
func (app *TestApp) WaitForSessionState(t *testing.T, sessionID string, expected chatsession.State) {
	t.Helper()
	var actual chatsession.State
	require.Eventually(t, func() bool {
		s, err := app.EntClient.ChatSession.Get(context.Background(), sessionID)
		if err != nil {
			return false
		}
		actual = s.State
		return actual == expected
	}, 30*time.Second, 50*time.Millisecond,
		"session %s did not reach state %s (last: %s)", sessionID, expected, actual)
}

// ────────────────────────────────────────────────────────────
// DB Query Helpers
// ────────────────────────────────────────────────────────────

// CustomerSession returns the single session of the stock WhatsApp customer.
func (app *TestApp) CustomerSession(t *testing.T, businessID string) *ent.ChatSession {
	t.Helper()
	sess, err := app.EntClient.ChatSession.Query().
		Where(
			chatsession.BusinessIDEQ(businessID),
			chatsession.CustomerIDEQ(waCustomerID),
			chatsession.PlatformEQ(chatsession.PlatformWhatsapp),
		).
		Only(context.Background())
	require.NoError(t, err)
	return sess
}

// QueryMessages returns the session thread in order.
func (app *TestApp) QueryMessages(t *testing.T, sessionID string) []*ent.ChatMessage {
	t.Helper()
	msgs, err := app.EntClient.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return msgs
}

// QueryJobs returns all inbound jobs for a session, oldest first.
func (app *TestApp) QueryJobs(t *testing.T, sessionID string) []*ent.InboundJob {
	t.Helper()
	jobs, err := app.EntClient.InboundJob.Query().
		Where(inboundjob.SessionIDEQ(sessionID)).
		Order(ent.Asc(inboundjob.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return jobs
}

// QueryOrders returns the business's placed orders (the open cart excluded),
// oldest first.
func (app *TestApp) QueryOrders(t *testing.T, businessID string) []*ent.Order {
	t.Helper()
	orders, err := app.EntClient.Order.Query().
		Where(
			order.BusinessIDEQ(businessID),
			order.StatusNEQ(order.StatusCart),
		).
		Order(ent.Asc(order.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return orders
}

// QueryTickets returns the business's support tickets, oldest first.
func (app *TestApp) QueryTickets(t *testing.T, businessID string) []*ent.SupportTicket {
	t.Helper()
	tickets, err := app.EntClient.SupportTicket.Query().
		Where(supportticket.BusinessIDEQ(businessID)).
		Order(ent.Asc(supportticket.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return tickets
}

// CountTraces returns how many model call records the session accumulated.
func (app *TestApp) CountTraces(t *testing.T, sessionID string) int {
	t.Helper()
	n, err := app.EntClient.LLMTrace.Query().
		Where(llmtrace.SessionIDEQ(sessionID)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

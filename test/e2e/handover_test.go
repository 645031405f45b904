package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/supportticket"
)

// ────────────────────────────────────────────────────────────
// Handover — the assistant locks the session, staff take over via
// the dashboard, reply on the customer's channel, and release.
// ────────────────────────────────────────────────────────────

func TestE2E_HandoverAndRelease(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)

	// Turn 1: the model hands the thread to a human and acknowledges.
	app.LLM.AddToolCalls(ScriptedToolCall{
		Name: "request_human_assistance",
		Args: map[string]interface{}{"reason": "customer demands a refund"},
	})
	app.LLM.AddText("I've asked a colleague to take over; they'll reply here shortly.")

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.h1", "I need a human, I want my money back"))
	app.WaitForDeliveries(t, app.WhatsApp, 1)

	sess := app.CustomerSession(t, tenant.Business.ID)
	app.WaitForSessionState(t, sess.ID, chatsession.StateHumanLocked)

	// A high-priority unassigned ticket sits in the pickup queue, tied to
	// the session.
	tickets := app.QueryTickets(t, tenant.Business.ID)
	require.Len(t, tickets, 1)
	ticket := tickets[0]
	assert.Equal(t, supportticket.StatusOpen, ticket.Status)
	assert.Equal(t, supportticket.PriorityHigh, ticket.Priority)
	assert.Nil(t, ticket.AssignedEmployeeID)
	require.NotNil(t, ticket.SessionID)
	assert.Equal(t, sess.ID, *ticket.SessionID)
	require.NotNil(t, ticket.Subject)
	assert.Equal(t, "customer demands a refund", *ticket.Subject)

	// While locked, inbound messages are logged and their jobs complete,
	// but the model is never called and nothing goes out.
	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.h2", "hello? anyone?"))
	app.WaitForQueueDrained(t, tenant.Business.ID)

	jobs := app.QueryJobs(t, sess.ID)
	require.Len(t, jobs, 2)
	assert.Equal(t, inboundjob.StatusCompleted, jobs[1].Status)
	assert.Equal(t, 1, app.WhatsApp.Count())
	assert.Equal(t, 2, app.LLM.CallCount()) // both from turn 1

	// The thread so far: customer, handover note, bot ack, customer.
	msgs := app.QueryMessages(t, sess.ID)
	require.Len(t, msgs, 4)
	assert.Equal(t, chatmessage.SenderTypeSystem, msgs[1].SenderType)
	assert.Contains(t, msgs[1].Content, "customer demands a refund")

	// Staff take the session, reply on the customer's channel, release.
	token := app.MintToken(tenant.Business.ID, "business")

	resp, _ := app.Do(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/takeover", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Do(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/messages", token,
		map[string]string{"content": "Marco here. Your refund is on its way."})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	deliveries := app.WaitForDeliveries(t, app.WhatsApp, 2)
	assert.Equal(t, "Marco here. Your refund is on its way.", deliveries[1].Text)
	assert.Equal(t, waCustomerID, deliveries[1].To)

	resp, _ = app.Do(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/release", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	app.WaitForSessionState(t, sess.ID, chatsession.StateBotActive)

	// Back with the bot: the next inbound message runs a turn again.
	app.LLM.AddText("Glad that's sorted! Anything else?")
	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.h3", "thanks, all good now"))
	deliveries = app.WaitForDeliveries(t, app.WhatsApp, 3)
	assert.Equal(t, "Glad that's sorted! Anything else?", deliveries[2].Text)
	assert.Equal(t, 3, app.LLM.CallCount())
}

// TestE2E_TakeoverRequiresLock pins the transition rule: staff cannot claim
// a session the assistant still owns.
func TestE2E_TakeoverRequiresLock(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)

	app.LLM.AddText("Hi! What can I get you?")
	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.t1", "hi"))
	app.WaitForDeliveries(t, app.WhatsApp, 1)

	sess := app.CustomerSession(t, tenant.Business.ID)
	token := app.MintToken(tenant.Business.ID, "business")

	resp, body := app.Do(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/takeover", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "body: %s", body)
}

package e2e

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
)

// ────────────────────────────────────────────────────────────
// Order flow — the checkout conversation end to end: webhook in,
// scripted model turns with cart tools, order placed, replies out.
// ────────────────────────────────────────────────────────────

func TestE2E_WhatsAppOrderFlow(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)

	// Turn 1: plain browse reply, no tools.
	app.LLM.AddText("We make one pizza: the Margherita, 12.50. How many would you like?")

	// Turn 2: put two in the cart, then acknowledge.
	app.LLM.AddToolCalls(ScriptedToolCall{
		Name: "add_to_cart",
		Args: map[string]interface{}{"item_id": tenant.Item.ID, "quantity": 2},
	})
	app.LLM.AddText("Two Margheritas in the cart, 25.00 all in. Pick-up or delivery?")

	// Turn 3: set the fulfilment, validate, confirm, then close out.
	app.LLM.AddToolCalls(
		ScriptedToolCall{Name: "set_delivery_type", Args: map[string]interface{}{"delivery_type": "takeaway"}},
		ScriptedToolCall{Name: "validate_cart_for_confirmation"},
		ScriptedToolCall{Name: "confirm_order", Args: map[string]interface{}{"payment_method": "cash"}},
	)
	app.LLM.AddText("Order placed! It will be ready for pick-up in about 20 minutes.")

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.001", "hi, what pizza do you have?"))
	deliveries := app.WaitForDeliveries(t, app.WhatsApp, 1)
	assert.Equal(t, waCustomerID, deliveries[0].To)
	assert.Equal(t, "We make one pizza: the Margherita, 12.50. How many would you like?", deliveries[0].Text)

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.002", "two margherita please"))
	app.WaitForDeliveries(t, app.WhatsApp, 2)

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.003", "pick-up, I'll pay cash"))
	deliveries = app.WaitForDeliveries(t, app.WhatsApp, 3)
	assert.Equal(t, "Order placed! It will be ready for pick-up in about 20 minutes.", deliveries[2].Text)

	// Five model calls across three turns: the two tool rounds each needed a
	// follow-up call for the reply text.
	assert.Equal(t, 5, app.LLM.CallCount())

	// The placed order.
	orders := app.QueryOrders(t, tenant.Business.ID)
	require.Len(t, orders, 1)
	placed := orders[0]
	assert.Equal(t, order.StatusAccepted, placed.Status)
	assert.Equal(t, order.OrderSourceWhatsapp, placed.OrderSource)
	assert.Equal(t, order.PaymentMethodCash, placed.PaymentMethod)
	assert.Equal(t, waCustomerID, placed.CustomerPhoneNumber)
	require.NotNil(t, placed.DeliveryType)
	assert.Equal(t, order.DeliveryTypeTakeaway, *placed.DeliveryType)
	assert.True(t, placed.Total.Equal(decimal.RequireFromString("25.00")), "total = %s", placed.Total)

	lines, err := app.EntClient.OrderItem.Query().
		Where(orderitem.OrderIDEQ(placed.ID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, tenant.Item.ID, lines[0].ItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].PriceAtTime.Equal(tenant.Item.Price))

	// The thread: three customer rows, three bot rows carrying the provider
	// message ids the channel assigned.
	sess := app.CustomerSession(t, tenant.Business.ID)
	msgs := app.QueryMessages(t, sess.ID)
	require.Len(t, msgs, 6)
	bots := 0
	for _, m := range msgs {
		if m.SenderType == chatmessage.SenderTypeBot {
			bots++
			require.NotNil(t, m.ProviderMessageID)
			assert.Contains(t, *m.ProviderMessageID, "rec-whatsapp-")
		}
	}
	assert.Equal(t, 3, bots)

	// Every job completed, one trace per turn.
	jobs := app.QueryJobs(t, sess.ID)
	require.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.Equal(t, inboundjob.StatusCompleted, j.Status)
	}
	assert.Equal(t, 3, app.CountTraces(t, sess.ID))
}

func TestE2E_TelegramChannel(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)
	tenant.addTelegram(t, app.EntClient)

	app.LLM.AddText("Hello! We are open until midnight, come by any time.")

	require.Equal(t, 1, app.PostTelegramText(t, 987654321, 1, "are you open tonight?"))
	deliveries := app.WaitForDeliveries(t, app.Telegram, 1)
	assert.Equal(t, "987654321", deliveries[0].To)
	assert.Equal(t, "Hello! We are open until midnight, come by any time.", deliveries[0].Text)

	// Nothing leaks onto the other channel.
	assert.Equal(t, 0, app.WhatsApp.Count())
}

func TestE2E_DuplicateDeliverySuppressed(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)

	app.LLM.AddText("Hi Dana! How can I help?")

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.dup", "hello"))
	app.WaitForDeliveries(t, app.WhatsApp, 1)

	// Same provider message id again: acknowledged so the provider stops
	// retrying, but not processed twice.
	require.Equal(t, 0, app.PostWhatsAppText(t, "wamid.dup", "hello"))

	sess := app.CustomerSession(t, tenant.Business.ID)
	assert.Len(t, app.QueryJobs(t, sess.ID), 1)
	assert.Equal(t, 1, app.WhatsApp.Count())
	assert.Equal(t, 1, app.LLM.CallCount())
}

func TestE2E_UnknownIntegrationDropped(t *testing.T) {
	app := NewTestApp(t)
	seedTenant(t, app.EntClient)

	// A delivery for a phone_number_id no tenant registered is swallowed
	// with a 200 and spawns nothing.
	payload := map[string]interface{}{
		"object": "whatsapp_business_account",
		"entry": []map[string]interface{}{{
			"changes": []map[string]interface{}{{
				"value": map[string]interface{}{
					"metadata": map[string]interface{}{"phone_number_id": "999000999"},
					"messages": []map[string]interface{}{{
						"from": waCustomerID,
						"id":   "wamid.stray",
						"type": "text",
						"text": map[string]interface{}{"body": "anyone there?"},
					}},
				},
			}},
		}},
	}
	require.Equal(t, 0, app.postWebhook(t, "/webhooks/whatsapp", payload, nil))

	n, err := app.EntClient.ChatSession.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 0, app.LLM.CallCount())
}

package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// ────────────────────────────────────────────────────────────
// Dashboard stream — WebSocket subscription lifecycle and the
// NOTIFY-backed fan-out of order events to the tenant's channel.
// ────────────────────────────────────────────────────────────

func TestE2E_DashboardOrderStream(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)
	token := app.MintToken(tenant.Business.ID, "business")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	ws, err := WSConnect(ctx, app.WSURL, token)
	require.NoError(t, err)
	defer ws.Close()

	established, err := ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, established.Parsed["connection_id"])

	// Own channel subscribes; someone else's does not.
	channel := events.BusinessChannel(tenant.Business.ID)
	require.NoError(t, ws.Subscribe(channel))
	confirmed, err := ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, channel, confirmed.Parsed["channel"])

	require.NoError(t, ws.Subscribe(events.BusinessChannel("someone-elses-tenant")))
	denied, err := ws.WaitForEventType("subscription.error", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, events.BusinessChannel("someone-elses-tenant"), denied.Parsed["channel"])

	require.NoError(t, ws.Ping())
	_, err = ws.WaitForEventType("pong", 5*time.Second)
	require.NoError(t, err)

	// Place an order the back-office way, then move it along. The status
	// event travels pg_notify → listener → broadcast before it reaches the
	// socket.
	carts := services.NewCartService(app.EntClient)
	orders := services.NewOrderService(app.EntClient)
	scope := models.CartScope{
		BusinessID:    tenant.Business.ID,
		OwnerUserID:   tenant.Business.ID,
		CustomerPhone: waCustomerID,
	}
	cart, err := carts.GetOrCreate(ctx, scope)
	require.NoError(t, err)
	_, err = carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: tenant.Item.ID, Quantity: 1})
	require.NoError(t, err)
	placed, err := orders.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: tenant.Business.ID})
	require.NoError(t, err)
	require.Equal(t, order.StatusAccepted, placed.Status)

	resp, body := app.Do(http.MethodPatch, "/api/v1/orders/"+placed.ID+"/status", token,
		map[string]string{"status": "ongoing"})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

	evt, err := ws.WaitForOrderStatus("ongoing", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, evt.Parsed["order_id"])
	assert.Equal(t, tenant.Business.ID, evt.Parsed["business_id"])
}

func TestE2E_WSRequiresToken(t *testing.T) {
	app := NewTestApp(t)
	seedTenant(t, app.EntClient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := WSConnect(ctx, app.WSURL, "not-a-valid-token")
	require.Error(t, err, "handshake should be refused before the upgrade")
}

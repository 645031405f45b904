package tools

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	"github.com/vendrahq/vendra/pkg/validation"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestTools_CatalogReads(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, true)
	margherita := seedBotItem(t, client.Client, business.ID, "Margherita", 8.00)
	seedBotItem(t, client.Client, business.ID, "Marinara", 7.00)
	tc := botContext(business)

	catalog := services.NewCatalogService(client.Client)
	_, err = catalog.CreateMenu(ctx, models.CreateMenuRequest{
		BusinessID: business.ID,
		Name:       "Dinner",
	})
	require.NoError(t, err)

	t.Run("search matches by name", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "search_menu_items",
			toolArgs(t, `{"query": "margherita"}`))
		require.True(t, res.Success, "%v", res.Error)

		items := res.Payload.(map[string]interface{})["items"].([]map[string]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, margherita.ID, items[0]["item_id"])
	})

	t.Run("details include fulfillment rules", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "get_item_details",
			toolArgs(t, fmt.Sprintf(`{"item_id": %q}`, margherita.ID)))
		require.True(t, res.Success)

		details := res.Payload.(map[string]interface{})
		assert.Equal(t, "Margherita", details["name"])
		assert.Equal(t, false, details["is_schedulable"])
	})

	t.Run("list menus", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "list_menus", nil)
		require.True(t, res.Success)

		menus := res.Payload.(map[string]interface{})["menus"].([]map[string]interface{})
		require.Len(t, menus, 1)
		assert.Equal(t, "Dinner", menus[0]["name"])
	})
}

func TestTools_OrderFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, false)
	margherita := seedBotItem(t, client.Client, business.ID, "Margherita", 8.00)
	cola := seedBotItem(t, client.Client, business.ID, "Cola", 2.50)
	tc := botContext(business)
	turn := NewTurnState()

	res := reg.Execute(ctx, tc, turn, "add_to_cart",
		toolArgs(t, fmt.Sprintf(`{"item_id": %q, "quantity": 2}`, margherita.ID)))
	require.True(t, res.Success, "%v", res.Error)

	res = reg.Execute(ctx, tc, turn, "add_to_cart",
		toolArgs(t, fmt.Sprintf(`{"item_id": %q}`, cola.ID)))
	require.True(t, res.Success)
	snap := res.Payload.(*models.CartSnapshot)
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, "18.50", snap.Total.StringFixed(2))

	var margheritaLine, colaLine string
	for _, line := range snap.Lines {
		switch line.Name {
		case "Margherita":
			margheritaLine = line.LineID
		case "Cola":
			colaLine = line.LineID
		}
	}

	res = reg.Execute(ctx, tc, turn, "update_cart_item",
		toolArgs(t, fmt.Sprintf(`{"line_id": %q, "quantity": 1}`, margheritaLine)))
	require.True(t, res.Success)
	assert.Equal(t, "10.50", res.Payload.(*models.CartSnapshot).Total.StringFixed(2))

	res = reg.Execute(ctx, tc, turn, "remove_from_cart",
		toolArgs(t, fmt.Sprintf(`{"line_id": %q}`, colaLine)))
	require.True(t, res.Success)
	assert.Equal(t, "8.00", res.Payload.(*models.CartSnapshot).Total.StringFixed(2))

	res = reg.Execute(ctx, tc, turn, "set_delivery_type",
		toolArgs(t, `{"delivery_type": "takeaway"}`))
	require.True(t, res.Success)

	res = reg.Execute(ctx, tc, turn, "set_order_notes",
		toolArgs(t, `{"notes": "extra napkins"}`))
	require.True(t, res.Success)
	assert.Equal(t, "extra napkins", res.Payload.(*models.CartSnapshot).Notes)

	// The validator has not run yet.
	res = reg.Execute(ctx, tc, turn, "confirm_order", toolArgs(t, `{}`))
	require.False(t, res.Success)
	assert.Equal(t, CodePreconditionMissing, res.Error.Code)

	res = reg.Execute(ctx, tc, turn, "validate_cart_for_confirmation", nil)
	require.True(t, res.Success)
	verdict := res.Payload.(*validation.Result)
	assert.True(t, verdict.Valid, "verdict: %+v", verdict)

	res = reg.Execute(ctx, tc, turn, "confirm_order",
		toolArgs(t, `{"payment_method": "cash"}`))
	require.True(t, res.Success, "%v", res.Error)
	placed := res.Payload.(map[string]interface{})
	orderID := placed["order_id"].(string)
	require.NotEmpty(t, orderID)
	assert.Equal(t, order.StatusAccepted, placed["status"])
	assert.Equal(t, order.RequestTypeOrder, placed["request_type"])

	res = reg.Execute(ctx, tc, turn, "get_order_status",
		toolArgs(t, fmt.Sprintf(`{"order_id": %q}`, orderID)))
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "accepted")

	res = reg.Execute(ctx, tc, turn, "view_cart", nil)
	require.True(t, res.Success)
	assert.True(t, res.Payload.(*models.CartSnapshot).IsEmpty())

	t.Run("order invisible to another customer", func(t *testing.T) {
		stranger := *tc
		stranger.CustomerPhone = "+15559998888"
		res := reg.Execute(ctx, &stranger, NewTurnState(), "get_order_status",
			toolArgs(t, fmt.Sprintf(`{"order_id": %q}`, orderID)))
		require.False(t, res.Success)
		assert.Equal(t, CodeNotFound, res.Error.Code)
	})
}

func TestTools_FailedVerdictDoesNotUnlockMutation(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, false)
	tc := botContext(business)
	turn := NewTurnState()

	res := reg.Execute(ctx, tc, turn, "validate_cart_for_confirmation", nil)
	require.True(t, res.Success)
	verdict := res.Payload.(*validation.Result)
	require.False(t, verdict.Valid)
	assert.True(t, verdict.HasCode(validation.CodeEmptyCart))

	// The validator ran but its verdict failed, so the confirm stays locked.
	res = reg.Execute(ctx, tc, turn, "confirm_order", toolArgs(t, `{}`))
	require.False(t, res.Success)
	assert.Equal(t, CodePreconditionMissing, res.Error.Code)
}

func TestTools_ScheduledOrderAndCancellation(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, false)
	torta := seedBotItem(t, client.Client, business.ID, "Torta della Nonna", 18.00)
	tc := botContext(business)
	turn := NewTurnState()

	res := reg.Execute(ctx, tc, turn, "add_to_cart",
		toolArgs(t, fmt.Sprintf(`{"item_id": %q}`, torta.ID)))
	require.True(t, res.Success)

	res = reg.Execute(ctx, tc, turn, "set_scheduled_time",
		toolArgs(t, `{"when": "tomorrow at 7pm"}`))
	require.True(t, res.Success, "%v", res.Error)
	snap := res.Payload.(*models.CartSnapshot)
	require.NotNil(t, snap.ScheduledFor)
	assert.Equal(t, 19, snap.ScheduledFor.UTC().Hour())

	t.Run("clearing the schedule", func(t *testing.T) {
		cleared := reg.Execute(ctx, tc, turn, "set_scheduled_time", toolArgs(t, `{"clear": true}`))
		require.True(t, cleared.Success)
		assert.Nil(t, cleared.Payload.(*models.CartSnapshot).ScheduledFor)

		again := reg.Execute(ctx, tc, turn, "set_scheduled_time",
			toolArgs(t, `{"when": "tomorrow at 7pm"}`))
		require.True(t, again.Success)
	})

	t.Run("past times are rejected", func(t *testing.T) {
		res := reg.Execute(ctx, tc, turn, "set_scheduled_time",
			toolArgs(t, `{"when": "2020-01-01 12:00"}`))
		require.False(t, res.Success)
		assert.Equal(t, CodePastDateTime, res.Error.Code)
	})

	t.Run("gibberish is rejected", func(t *testing.T) {
		res := reg.Execute(ctx, tc, turn, "set_scheduled_time",
			toolArgs(t, `{"when": "whenever feels right"}`))
		require.False(t, res.Success)
		assert.Equal(t, CodeInvalidDateFormat, res.Error.Code)
	})

	res = reg.Execute(ctx, tc, turn, "set_delivery_type",
		toolArgs(t, `{"delivery_type": "takeaway"}`))
	require.True(t, res.Success)

	res = reg.Execute(ctx, tc, turn, "validate_cart_for_confirmation", nil)
	require.True(t, res.Success)
	require.True(t, res.Payload.(*validation.Result).Valid)

	res = reg.Execute(ctx, tc, turn, "confirm_order", toolArgs(t, `{}`))
	require.True(t, res.Success, "%v", res.Error)
	placed := res.Payload.(map[string]interface{})
	orderID := placed["order_id"].(string)
	assert.Equal(t, order.RequestTypeScheduledRequest, placed["request_type"])

	// Cancellation happens on a later turn; the earlier validation does
	// not carry over.
	turn2 := NewTurnState()
	res = reg.Execute(ctx, tc, turn2, "cancel_order",
		toolArgs(t, fmt.Sprintf(`{"order_id": %q}`, orderID)))
	require.False(t, res.Success)
	assert.Equal(t, CodePreconditionMissing, res.Error.Code)

	res = reg.Execute(ctx, tc, turn2, "validate_cancellation_eligibility",
		toolArgs(t, fmt.Sprintf(`{"order_id": %q}`, orderID)))
	require.True(t, res.Success)
	assert.True(t, res.Payload.(*validation.Result).Valid)

	res = reg.Execute(ctx, tc, turn2, "cancel_order",
		toolArgs(t, fmt.Sprintf(`{"order_id": %q}`, orderID)))
	require.True(t, res.Success, "%v", res.Error)
	assert.Equal(t, order.StatusCancelled, res.Payload.(map[string]interface{})["status"])
}

func TestTools_ReservationFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, true)
	seedBotTable(t, client.Client, business.ID, 1, 4)
	seedBotTable(t, client.Client, business.ID, 2, 4)
	tc := botContext(business)
	turn := NewTurnState()

	date := time.Now().UTC().Add(48 * time.Hour).Format("2006-01-02")

	res := reg.Execute(ctx, tc, turn, "check_table_availability",
		toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "20:00", "guests": 2}`, date)))
	require.True(t, res.Success, "%v", res.Error)
	tables := res.Payload.(map[string]interface{})["tables"].([]map[string]interface{})
	assert.Len(t, tables, 2)

	res = reg.Execute(ctx, tc, turn, "create_table_reservation",
		toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "20:00", "guests": 2}`, date)))
	require.False(t, res.Success)
	assert.Equal(t, CodePreconditionMissing, res.Error.Code)

	res = reg.Execute(ctx, tc, turn, "validate_reservation_request",
		toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "20:00", "guests": 2}`, date)))
	require.True(t, res.Success)
	assert.True(t, res.Payload.(*validation.Result).Valid)

	res = reg.Execute(ctx, tc, turn, "create_table_reservation",
		toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "20:00", "guests": 2}`, date)))
	require.True(t, res.Success, "%v", res.Error)
	first := res.Payload.(map[string]interface{})
	reservationID := first["reservation_id"].(string)
	require.NotEmpty(t, reservationID)
	assert.Equal(t, 1, first["table_number"])
	assert.Equal(t, reservation.StatusConfirmed, first["status"])

	res = reg.Execute(ctx, tc, turn, "create_table_reservation",
		toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "20:00", "guests": 2}`, date)))
	require.True(t, res.Success)
	assert.Equal(t, 2, res.Payload.(map[string]interface{})["table_number"])

	res = reg.Execute(ctx, tc, turn, "create_table_reservation",
		toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "20:00", "guests": 2}`, date)))
	require.False(t, res.Success)
	assert.Equal(t, CodeSlotTaken, res.Error.Code)

	t.Run("oversized party", func(t *testing.T) {
		res := reg.Execute(ctx, tc, turn, "validate_reservation_request",
			toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "21:00", "guests": 9}`, date)))
		require.True(t, res.Success)
		verdict := res.Payload.(*validation.Result)
		assert.False(t, verdict.Valid)
		assert.True(t, verdict.HasCode(validation.CodeNoTablesAvailable))

		create := reg.Execute(ctx, tc, turn, "create_table_reservation",
			toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "21:00", "guests": 9}`, date)))
		require.False(t, create.Success)
		assert.Equal(t, CodeNoTablesAvailable, create.Error.Code)
	})

	t.Run("cancel frees the slot", func(t *testing.T) {
		turn := NewTurnState()
		res := reg.Execute(ctx, tc, turn, "validate_cancellation_eligibility",
			toolArgs(t, fmt.Sprintf(`{"reservation_id": %q}`, reservationID)))
		require.True(t, res.Success)
		assert.True(t, res.Payload.(*validation.Result).Valid)

		res = reg.Execute(ctx, tc, turn, "cancel_reservation",
			toolArgs(t, fmt.Sprintf(`{"reservation_id": %q}`, reservationID)))
		require.True(t, res.Success, "%v", res.Error)
		assert.Equal(t, reservation.StatusCancelled, res.Payload.(map[string]interface{})["status"])

		free := reg.Execute(ctx, tc, turn, "check_table_availability",
			toolArgs(t, fmt.Sprintf(`{"date": %q, "time": "20:00"}`, date)))
		require.True(t, free.Success)
		tables := free.Payload.(map[string]interface{})["tables"].([]map[string]interface{})
		assert.Len(t, tables, 1)
	})
}

func TestTools_Support(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, false)
	tc := botContext(business)

	sessions := services.NewSessionService(client.Client)
	sess, err := sessions.GetOrOpen(ctx, models.SessionScope{
		BusinessID: business.ID,
		CustomerID: tc.CustomerPhone,
		Platform:   tc.Platform,
	})
	require.NoError(t, err)
	tc.SessionID = sess.ID

	res := reg.Execute(ctx, tc, NewTurnState(), "open_support_ticket",
		toolArgs(t, `{"message": "my order arrived cold", "priority": "high"}`))
	require.True(t, res.Success, "%v", res.Error)
	payload := res.Payload.(map[string]interface{})
	assert.NotEmpty(t, payload["ticket_id"])
	assert.Equal(t, supportticket.StatusOpen, payload["status"])
	assert.Equal(t, supportticket.PriorityHigh, payload["priority"])

	res = reg.Execute(ctx, tc, NewTurnState(), "request_human_assistance",
		toolArgs(t, `{"reason": "wants to change a paid invoice"}`))
	require.True(t, res.Success, "%v", res.Error)
	assert.NotEmpty(t, res.Payload.(map[string]interface{})["ticket_id"])

	// A second request while staff hold the session is refused.
	res = reg.Execute(ctx, tc, NewTurnState(), "request_human_assistance", nil)
	require.False(t, res.Success)
	assert.Equal(t, CodeNotAllowed, res.Error.Code)
}

func TestTools_ParseDateTime(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, false)
	tc := botContext(business)

	t.Run("evening expression", func(t *testing.T) {
		tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")
		res := reg.Execute(ctx, tc, NewTurnState(), "parse_date_time",
			toolArgs(t, `{"text": "tomorrow at 7pm"}`))
		require.True(t, res.Success, "%v", res.Error)

		payload := res.Payload.(map[string]interface{})
		assert.Equal(t, tomorrow, payload["date"])
		assert.Equal(t, "19:00", payload["time"])

		_, err := time.Parse(time.RFC3339, payload["iso8601"].(string))
		assert.NoError(t, err)
	})

	t.Run("bare date resolves to opening time", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "parse_date_time",
			toolArgs(t, `{"text": "2030-06-01"}`))
		require.True(t, res.Success)
		assert.Equal(t, "00:00", res.Payload.(map[string]interface{})["time"])
	})

	t.Run("unparseable text", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "parse_date_time",
			toolArgs(t, `{"text": "whenever"}`))
		require.False(t, res.Success)
		assert.Equal(t, CodeInvalidDateFormat, res.Error.Code)
	})
}

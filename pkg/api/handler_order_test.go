package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// orderJSON holds the order fields the handler tests assert on.
type orderJSON struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"business_id"`
	Status      string          `json:"status"`
	RequestType string          `json:"request_type"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
}

type orderViewJSON struct {
	Order orderJSON `json:"order"`
	Items []struct {
		NameAtTime string `json:"name_at_time"`
		Quantity   int    `json:"quantity"`
	} `json:"items"`
	History []struct {
		Status    string `json:"status"`
		ChangedBy string `json:"changed_by"`
	} `json:"history"`
}

// seedAPIItem creates a sellable item owned by the tenant itself.
func seedAPIItem(t *testing.T, client *database.Client, businessID, name string, price string) *ent.Item {
	t.Helper()
	it, err := services.NewCatalogService(client.Client).CreateItem(context.Background(), models.CreateItemRequest{
		BusinessID: businessID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return it
}

// seedConfirmedOrder builds a cart for the phone, adds qty of the item and
// confirms it. When scheduledFor is non-nil the cart is scheduled first.
func seedConfirmedOrder(t *testing.T, client *database.Client, businessID, phone, itemID string, qty int, scheduledFor *time.Time) *ent.Order {
	t.Helper()
	ctx := context.Background()
	scope := models.CartScope{BusinessID: businessID, OwnerUserID: businessID, CustomerPhone: phone}

	carts := services.NewCartService(client.Client)
	cart, err := carts.GetOrCreate(ctx, scope)
	require.NoError(t, err)
	_, err = carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: itemID, Quantity: qty})
	require.NoError(t, err)
	if scheduledFor != nil {
		_, err = carts.SetScheduled(ctx, scope, scheduledFor)
		require.NoError(t, err)
	}

	confirmed, err := services.NewOrderService(client.Client).Confirm(ctx, cart.ID, models.ConfirmOrderRequest{
		ChangedBy: businessID,
	})
	require.NoError(t, err)
	return confirmed
}

func TestOrderStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Trattoria Nonna")
	item := seedAPIItem(t, env.client, biz.ID, "Lasagne", "12.50")
	token := mintToken(t, biz.ID, roleBusiness)

	o := seedConfirmedOrder(t, env.client, biz.ID, "+4915700001001", item.ID, 2, nil)
	require.Equal(t, "accepted", string(o.Status))

	t.Run("valid transition", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/orders/"+o.ID+"/status", token, gin.H{"status": "ongoing"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got orderJSON
		decodeData(t, rec, &got)
		assert.Equal(t, "ongoing", got.Status)
	})

	t.Run("history records the actor", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders/"+o.ID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var view orderViewJSON
		decodeData(t, rec, &view)
		assert.Equal(t, "ongoing", view.Order.Status)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "Lasagne", view.Items[0].NameAtTime)
		require.Len(t, view.History, 2)
		assert.Equal(t, "accepted", view.History[0].Status)
		assert.Equal(t, "ongoing", view.History[1].Status)
		assert.Equal(t, biz.ID, view.History[1].ChangedBy)
	})

	t.Run("backward transition rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/orders/"+o.ID+"/status", token, gin.H{"status": "accepted"})
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidTransition, errorCode(t, rec))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/orders/"+o.ID+"/status", token, gin.H{"status": "teleported"})
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidRequest, errorCode(t, rec))
	})

	t.Run("completion stamps the order", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/orders/"+o.ID+"/status", token, gin.H{"status": "completed"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		reloaded, err := env.client.Client.Order.Get(context.Background(), o.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.CompletedAt)
	})
}

func TestOrderTenancy(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Pho Corner")
	other := seedAPIBusiness(t, env.client, "Taco Loco")
	item := seedAPIItem(t, env.client, biz.ID, "Pho Bo", "9.90")
	o := seedConfirmedOrder(t, env.client, biz.ID, "+4915700002001", item.ID, 1, nil)

	otherToken := mintToken(t, other.ID, roleBusiness)
	adminToken := mintToken(t, "root", roleAdmin)

	t.Run("foreign tenant cannot read", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders/"+o.ID, otherToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
		assert.Equal(t, codeNotFound, errorCode(t, rec))
	})

	t.Run("foreign tenant cannot transition", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/orders/"+o.ID+"/status", otherToken, gin.H{"status": "ongoing"})
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})

	t.Run("admin reads across tenants", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders/"+o.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("foreign tenant list stays scoped", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders", otherToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			Orders     []orderJSON `json:"orders"`
			TotalCount int         `json:"total_count"`
		}
		decodeData(t, rec, &list)
		assert.Zero(t, list.TotalCount)
		assert.Empty(t, list.Orders)
	})
}

func TestOrderListFilters(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Sushi Kai")
	item := seedAPIItem(t, env.client, biz.ID, "Maki Set", "15.00")
	token := mintToken(t, biz.ID, roleBusiness)

	first := seedConfirmedOrder(t, env.client, biz.ID, "+4915700003001", item.ID, 1, nil)
	second := seedConfirmedOrder(t, env.client, biz.ID, "+4915700003002", item.ID, 3, nil)

	_, err := services.NewOrderService(env.client.Client).UpdateStatus(context.Background(), second.ID, models.UpdateOrderStatusRequest{
		Status:    "ongoing",
		ChangedBy: biz.ID,
	})
	require.NoError(t, err)

	t.Run("by customer phone", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders?customer_phone=%2B4915700003001", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			Orders     []orderJSON `json:"orders"`
			TotalCount int         `json:"total_count"`
		}
		decodeData(t, rec, &list)
		require.Equal(t, 1, list.TotalCount)
		assert.Equal(t, first.ID, list.Orders[0].ID)
	})

	t.Run("by status", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders?status=ongoing", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			Orders []orderJSON `json:"orders"`
		}
		decodeData(t, rec, &list)
		require.Len(t, list.Orders, 1)
		assert.Equal(t, second.ID, list.Orders[0].ID)
	})

	t.Run("bad created_after", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders?created_after=yesterday", token, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidRequest, errorCode(t, rec))
	})
}

func TestSetDeliveryPriceEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	biz := seedAPIBusiness(t, env.client, "Curry Leaf")
	item := seedAPIItem(t, env.client, biz.ID, "Butter Chicken", "11.00")
	token := mintToken(t, biz.ID, roleBusiness)

	carts := services.NewCartService(env.client.Client)
	scope := models.CartScope{BusinessID: biz.ID, OwnerUserID: biz.ID, CustomerPhone: "+4915700004001"}
	cart, err := carts.GetOrCreate(ctx, scope)
	require.NoError(t, err)
	_, err = carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: item.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = carts.SetDeliveryType(ctx, scope, order.DeliveryTypeDelivery, "Hauptstr. 1, Berlin")
	require.NoError(t, err)
	_, err = services.NewOrderService(env.client.Client).Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: biz.ID})
	require.NoError(t, err)

	t.Run("prices a delivery order", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/orders/"+cart.ID+"/delivery-price", token, gin.H{"delivery_price": "3.50"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got orderJSON
		decodeData(t, rec, &got)
		assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("22.00")), "subtotal %s", got.Subtotal)
		assert.True(t, got.Total.Equal(decimal.RequireFromString("25.50")), "total %s", got.Total)
	})

	t.Run("pickup orders have no delivery price", func(t *testing.T) {
		pickup := seedConfirmedOrder(t, env.client, biz.ID, "+4915700004002", item.ID, 1, nil)
		rec := env.do(t, http.MethodPatch, "/api/v1/orders/"+pickup.ID+"/delivery-price", token, gin.H{"delivery_price": "2.00"})
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidTransition, errorCode(t, rec))
	})
}

func TestCalendarEndpoint(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Bistro Luma")
	item := seedAPIItem(t, env.client, biz.ID, "Tasting Menu", "45.00")
	token := mintToken(t, biz.ID, roleBusiness)

	day := time.Now().UTC().AddDate(0, 0, 14)
	dayStr := day.Format("2006-01-02")
	orderAt := time.Date(day.Year(), day.Month(), day.Day(), 14, 0, 0, 0, time.UTC)

	scheduled := seedConfirmedOrder(t, env.client, biz.ID, "+4915700005001", item.ID, 1, &orderAt)
	require.Equal(t, "scheduled_request", string(scheduled.RequestType))

	_, err := services.NewCatalogService(env.client.Client).CreateTable(context.Background(), models.CreateTableRequest{
		BusinessID:  biz.ID,
		OwnerUserID: biz.ID,
		TableNumber: 4,
		MaxSeats:    4,
	})
	require.NoError(t, err)

	guests := 2
	res, err := services.NewReservationService(env.client.Client).Create(context.Background(), models.CreateReservationRequest{
		BusinessID:      biz.ID,
		OwnerUserID:     biz.ID,
		CustomerPhone:   "+4915700005002",
		CustomerName:    "Mira",
		ReservationDate: dayStr,
		ReservationTime: "18:30",
		NumberOfGuests:  &guests,
	})
	require.NoError(t, err)

	t.Run("merged window", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/calendar?from=%s&to=%s", dayStr, dayStr), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got struct {
			From    string                 `json:"from"`
			To      string                 `json:"to"`
			Entries []models.CalendarEntry `json:"entries"`
		}
		decodeData(t, rec, &got)
		require.Len(t, got.Entries, 2)

		assert.Equal(t, "order", got.Entries[0].Kind)
		assert.Equal(t, scheduled.ID, got.Entries[0].ID)
		assert.Equal(t, "reservation", got.Entries[1].Kind)
		assert.Equal(t, res.ID, got.Entries[1].ID)
		require.NotNil(t, got.Entries[1].TableNumber)
		assert.Equal(t, 4, *got.Entries[1].TableNumber)
		assert.True(t, got.Entries[0].At.Before(got.Entries[1].At))
	})

	t.Run("window excludes other days", func(t *testing.T) {
		before := day.AddDate(0, 0, -3).Format("2006-01-02")
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/calendar?from=%s&to=%s", before, before), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got struct {
			Entries []models.CalendarEntry `json:"entries"`
		}
		decodeData(t, rec, &got)
		assert.Empty(t, got.Entries)
	})

	t.Run("missing bounds", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/calendar?from="+dayStr, token, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidRequest, errorCode(t, rec))
	})

	t.Run("inverted bounds", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/calendar?from=%s&to=%s", dayStr, day.AddDate(0, 0, -1).Format("2006-01-02")), token, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})
}

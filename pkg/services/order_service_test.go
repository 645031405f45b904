package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

// buildCart fills a fresh cart for the scope and returns the cart row.
func buildCart(t *testing.T, client *ent.Client, scope models.CartScope, itemID string, qty int) *ent.Order {
	t.Helper()
	carts := NewCartService(client)
	ctx := context.Background()

	snapshot, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: itemID, Quantity: qty})
	require.NoError(t, err)

	cart, err := carts.GetOrCreate(ctx, scope)
	require.NoError(t, err)
	require.Equal(t, snapshot.OrderID, cart.ID)
	return cart
}

func TestOrderService_Confirm(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	carts := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Confirm Co")

	t.Run("immediate order becomes accepted", func(t *testing.T) {
		pizza := seedItem(t, client.Client, business.ID, "Margherita", "8.00")
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551001"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 2)

		_, err := carts.SetNotes(ctx, scope, "extra napkins")
		require.NoError(t, err)

		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{
			OrderSource: order.OrderSourceWhatsapp,
			ChangedBy:   "+15551001",
		})
		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, confirmed.Status)
		assert.Equal(t, order.RequestTypeOrder, confirmed.RequestType)
		assert.True(t, confirmed.Subtotal.Equal(decimal.RequireFromString("16.00")))
		require.NotNil(t, confirmed.Notes)
		assert.Equal(t, "extra napkins", *confirmed.Notes)

		history, err := client.Client.OrderStatusHistory.Query().
			Where(orderstatushistory.OrderIDEQ(confirmed.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, orderstatushistory.StatusAccepted, history[0].Status)
		assert.Equal(t, "+15551001", history[0].ChangedBy)

		// Popularity counter moved
		it, err := client.Client.Item.Get(ctx, pizza.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, it.TimesOrdered)
	})

	t.Run("near scheduled time goes straight to ongoing", func(t *testing.T) {
		pizza := seedItem(t, client.Client, business.ID, "Pronto", "7.00")
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551002"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)

		soon := time.Now().Add(2 * time.Minute)
		_, err := carts.SetScheduled(ctx, scope, &soon)
		require.NoError(t, err)

		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15551002"})
		require.NoError(t, err)
		assert.Equal(t, order.StatusOngoing, confirmed.Status)
		assert.Equal(t, order.RequestTypeScheduledRequest, confirmed.RequestType)
	})

	t.Run("far scheduled time stays accepted", func(t *testing.T) {
		pizza := seedItem(t, client.Client, business.ID, "Dopo", "7.50")
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551003"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)

		later := time.Now().Add(4 * time.Hour)
		_, err := carts.SetScheduled(ctx, scope, &later)
		require.NoError(t, err)

		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15551003"})
		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, confirmed.Status)
		assert.Equal(t, order.RequestTypeScheduledRequest, confirmed.RequestType)
	})

	t.Run("empty cart cannot confirm", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551004"}
		cart, err := carts.GetOrCreate(ctx, scope)
		require.NoError(t, err)

		_, err = service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15551004"})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("already confirmed order cannot confirm again", func(t *testing.T) {
		pizza := seedItem(t, client.Client, business.ID, "Doppia", "5.00")
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551005"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)

		_, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15551005"})
		require.NoError(t, err)

		_, err = service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15551005"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("stock is decremented and enforced", func(t *testing.T) {
		catalog := NewCatalogService(client.Client)
		scarce, err := catalog.CreateItem(ctx, models.CreateItemRequest{
			BusinessID:    business.ID,
			Name:          "Last Slice",
			Price:         decimal.RequireFromString("3.00"),
			StockQuantity: intPtr(3),
		})
		require.NoError(t, err)

		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551006"}
		cart := buildCart(t, client.Client, scope, scarce.ID, 2)

		_, err = service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15551006"})
		require.NoError(t, err)

		it, err := client.Client.Item.Get(ctx, scarce.ID)
		require.NoError(t, err)
		require.NotNil(t, it.StockQuantity)
		assert.Equal(t, 1, *it.StockQuantity)

		// Second customer wants more than what is left
		scope2 := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551007"}
		cart2 := buildCart(t, client.Client, scope2, scarce.ID, 2)

		_, err = service.Confirm(ctx, cart2.ID, models.ConfirmOrderRequest{ChangedBy: "+15551007"})
		assert.ErrorIs(t, err, ErrInsufficientStock)

		// Failed confirmation rolled everything back
		it, err = client.Client.Item.Get(ctx, scarce.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, *it.StockQuantity)
		cartRow, err := client.Client.Order.Get(ctx, cart2.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCart, cartRow.Status)
	})
}

func TestOrderService_ConcurrentConfirmations(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	catalog := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Rush Co")
	scarce, err := catalog.CreateItem(ctx, models.CreateItemRequest{
		BusinessID:    business.ID,
		Name:          "Limited Special",
		Price:         decimal.RequireFromString("9.00"),
		StockQuantity: intPtr(3),
	})
	require.NoError(t, err)

	// Carts are built sequentially; only the confirmations race.
	const customers = 8
	carts := make([]*ent.Order, customers)
	for i := range carts {
		scope := models.CartScope{
			BusinessID:    business.ID,
			OwnerUserID:   business.ID,
			CustomerPhone: fmt.Sprintf("+1555700%d", i),
		}
		carts[i] = buildCart(t, client.Client, scope, scarce.ID, 1)
	}

	var wg sync.WaitGroup
	results := make(chan error, customers)
	for i := range carts {
		wg.Add(1)
		go func(cartID, phone string) {
			defer wg.Done()
			_, err := service.Confirm(ctx, cartID, models.ConfirmOrderRequest{ChangedBy: phone})
			results <- err
		}(carts[i].ID, fmt.Sprintf("+1555700%d", i))
	}
	wg.Wait()
	close(results)

	confirmed, starved := 0, 0
	for err := range results {
		switch {
		case err == nil:
			confirmed++
		case errors.Is(err, ErrInsufficientStock):
			starved++
		default:
			t.Fatalf("unexpected confirm error: %v", err)
		}
	}
	assert.Equal(t, 3, confirmed)
	assert.Equal(t, customers-3, starved)

	it, err := client.Client.Item.Get(ctx, scarce.ID)
	require.NoError(t, err)
	require.NotNil(t, it.StockQuantity)
	assert.Equal(t, 0, *it.StockQuantity)

	placed, err := client.Client.Order.Query().
		Where(order.StatusEQ(order.StatusAccepted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, placed)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Status Co")
	pizza := seedItem(t, client.Client, business.ID, "Flow", "10.00")

	newOrder := func(phone string) *ent.Order {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: phone}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)
		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: phone})
		require.NoError(t, err)
		return confirmed
	}

	t.Run("walks the happy path to completed", func(t *testing.T) {
		o := newOrder("+15552001")
		for _, next := range []order.Status{order.StatusReady, order.StatusCompleted} {
			var err error
			o, err = service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: next, ChangedBy: "owner"})
			require.NoError(t, err)
			assert.Equal(t, next, o.Status)
		}
		assert.NotNil(t, o.CompletedAt)

		// Confirmation plus two transitions
		history, err := client.Client.OrderStatusHistory.Query().
			Where(orderstatushistory.OrderIDEQ(o.ID)).
			Order(ent.Asc(orderstatushistory.FieldChangedAt)).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, history, 3)

		// Delivered counter moved on completion
		it, err := client.Client.Item.Get(ctx, pizza.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, it.TimesDelivered, 1)
	})

	t.Run("ongoing only for scheduled requests", func(t *testing.T) {
		o := newOrder("+15552005")
		require.Nil(t, o.ScheduledFor)

		_, err := service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusOngoing, ChangedBy: "owner"})
		assert.ErrorIs(t, err, ErrInvalidTransition)

		carts := NewCartService(client.Client)
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15552006"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)
		at := time.Now().Add(3 * time.Hour)
		_, err = carts.SetScheduled(ctx, scope, &at)
		require.NoError(t, err)

		scheduled, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15552006"})
		require.NoError(t, err)
		require.Equal(t, order.StatusAccepted, scheduled.Status)

		scheduled, err = service.UpdateStatus(ctx, scheduled.ID, models.UpdateOrderStatusRequest{Status: order.StatusOngoing, ChangedBy: "owner"})
		require.NoError(t, err)
		assert.Equal(t, order.StatusOngoing, scheduled.Status)
	})

	t.Run("terminal states are immutable", func(t *testing.T) {
		o := newOrder("+15552002")
		o, err := service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusCancelled, ChangedBy: "owner"})
		require.NoError(t, err)
		assert.NotNil(t, o.CancelledAt)

		_, err = service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusOngoing, ChangedBy: "owner"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("reject only from accepted", func(t *testing.T) {
		o := newOrder("+15552003")
		o, err := service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusReady, ChangedBy: "owner"})
		require.NoError(t, err)

		_, err = service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusRejected, ChangedBy: "owner"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := service.UpdateStatus(ctx, "nonexistent", models.UpdateOrderStatusRequest{Status: order.StatusOngoing, ChangedBy: "owner"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("first business action stamps first response", func(t *testing.T) {
		o := newOrder("+15552007")
		require.Nil(t, o.FirstResponseAt)

		o, err := service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusReady, ChangedBy: "owner"})
		require.NoError(t, err)
		require.NotNil(t, o.FirstResponseAt)
		first := *o.FirstResponseAt

		// Later actions leave the stamp alone
		o, err = service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusCompleted, ChangedBy: "owner"})
		require.NoError(t, err)
		require.NotNil(t, o.FirstResponseAt)
		assert.WithinDuration(t, first, *o.FirstResponseAt, time.Millisecond)
	})

	t.Run("background jobs do not count as a response", func(t *testing.T) {
		o := newOrder("+15552008")
		o, err := service.UpdateStatus(ctx, o.ID, models.UpdateOrderStatusRequest{Status: order.StatusCompleted, ChangedBy: "scheduler", SystemActor: true})
		require.NoError(t, err)
		assert.Nil(t, o.FirstResponseAt)
	})
}

func TestOrderService_SetDeliveryPrice(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	carts := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Fee Co")
	pizza := seedItem(t, client.Client, business.ID, "Consegna", "12.00")

	t.Run("adds the fee to an accepted delivery order", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15553001"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)
		_, err := carts.SetDeliveryType(ctx, scope, order.DeliveryTypeDelivery, "Via Milano 2")
		require.NoError(t, err)

		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15553001"})
		require.NoError(t, err)

		updated, err := service.SetDeliveryPrice(ctx, confirmed.ID, decimal.RequireFromString("2.50"))
		require.NoError(t, err)
		assert.True(t, updated.DeliveryPrice.Equal(decimal.RequireFromString("2.50")))
		assert.True(t, updated.Total.Equal(decimal.RequireFromString("14.50")))
		assert.NotNil(t, updated.FirstResponseAt)
	})

	t.Run("refuses non-delivery orders", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15553002"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)
		_, err := carts.SetDeliveryType(ctx, scope, order.DeliveryTypeTakeaway, "")
		require.NoError(t, err)

		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15553002"})
		require.NoError(t, err)

		_, err = service.SetDeliveryPrice(ctx, confirmed.ID, decimal.RequireFromString("2.00"))
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("refuses negative fees", func(t *testing.T) {
		_, err := service.SetDeliveryPrice(ctx, "whatever", decimal.RequireFromString("-1"))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestOrderService_CancelByCustomer(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	carts := NewCartService(client.Client)
	catalog := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Cancel Co")

	scheduledOrder := func(phone string, itemID string, offset time.Duration) *ent.Order {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: phone}
		cart := buildCart(t, client.Client, scope, itemID, 1)
		at := time.Now().Add(offset)
		_, err := carts.SetScheduled(ctx, scope, &at)
		require.NoError(t, err)
		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: phone})
		require.NoError(t, err)
		return confirmed
	}

	t.Run("cancels inside the window", func(t *testing.T) {
		cake := seedItem(t, client.Client, business.ID, "Torta", "20.00")
		o := scheduledOrder("+15554001", cake.ID, 4*time.Hour) // default window is 2h

		cancelled, err := service.CancelByCustomer(ctx, o.ID, "+15554001")
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CancelledAt)
	})

	t.Run("refuses past the deadline", func(t *testing.T) {
		cake := seedItem(t, client.Client, business.ID, "Torta Due", "20.00")
		o := scheduledOrder("+15554002", cake.ID, time.Hour) // deadline was an hour ago

		_, err := service.CancelByCustomer(ctx, o.ID, "+15554002")
		assert.ErrorIs(t, err, ErrCancelDeadlinePassed)
	})

	t.Run("item window overrides the business default", func(t *testing.T) {
		bespoke, err := catalog.CreateItem(ctx, models.CreateItemRequest{
			BusinessID:            business.ID,
			Name:                  "Torta Nuziale",
			Price:                 decimal.RequireFromString("150.00"),
			CancelableBeforeHours: intPtr(24),
		})
		require.NoError(t, err)

		o := scheduledOrder("+15554003", bespoke.ID, 4*time.Hour)

		_, err = service.CancelByCustomer(ctx, o.ID, "+15554003")
		assert.ErrorIs(t, err, ErrCancelDeadlinePassed)
	})

	t.Run("wrong customer cannot touch the order", func(t *testing.T) {
		cake := seedItem(t, client.Client, business.ID, "Torta Tre", "20.00")
		o := scheduledOrder("+15554004", cake.ID, 4*time.Hour)

		_, err := service.CancelByCustomer(ctx, o.ID, "+15559999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unscheduled orders are not customer-cancellable", func(t *testing.T) {
		cake := seedItem(t, client.Client, business.ID, "Torta Quattro", "20.00")
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15554005"}
		cart := buildCart(t, client.Client, scope, cake.ID, 1)
		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15554005"})
		require.NoError(t, err)

		_, err = service.CancelByCustomer(ctx, confirmed.ID, "+15554005")
		assert.ErrorIs(t, err, ErrCancelDeadlinePassed)
	})
}

func TestOrderService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	carts := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Query Co")
	pizza := seedItem(t, client.Client, business.ID, "Base", "9.00")

	t.Run("listing excludes carts by default", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15555001"}
		buildCart(t, client.Client, scope, pizza.ID, 1)

		resp, err := service.ListOrders(ctx, models.OrderFilters{BusinessID: business.ID})
		require.NoError(t, err)
		assert.Zero(t, resp.TotalCount)
	})

	t.Run("due scheduled picks only overdue accepted requests", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15555002"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)
		later := time.Now().Add(2 * time.Hour)
		_, err := carts.SetScheduled(ctx, scope, &later)
		require.NoError(t, err)
		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15555002"})
		require.NoError(t, err)

		due, err := service.DueScheduled(ctx, time.Now(), 10)
		require.NoError(t, err)
		assert.Empty(t, due)

		// Time passes
		due, err = service.DueScheduled(ctx, time.Now().Add(3*time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, confirmed.ID, due[0].ID)
	})

	t.Run("archivable needs a terminal state old enough", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15555003"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 1)
		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15555003"})
		require.NoError(t, err)
		completed, err := service.UpdateStatus(ctx, confirmed.ID, models.UpdateOrderStatusRequest{Status: order.StatusCompleted, ChangedBy: "owner"})
		require.NoError(t, err)

		cutoff := time.Now().Add(-24 * time.Hour)
		old, err := service.ListArchivable(ctx, cutoff, 10)
		require.NoError(t, err)
		assert.Empty(t, old)

		// Age the completion timestamp past the cutoff
		err = client.Client.Order.UpdateOneID(completed.ID).
			SetCompletedAt(time.Now().Add(-25 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		old, err = service.ListArchivable(ctx, cutoff, 10)
		require.NoError(t, err)
		require.Len(t, old, 1)
		assert.Equal(t, completed.ID, old[0].ID)
	})

	t.Run("view loads lines and history", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15555004"}
		cart := buildCart(t, client.Client, scope, pizza.ID, 2)
		confirmed, err := service.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15555004"})
		require.NoError(t, err)

		view, err := service.GetView(ctx, confirmed.ID)
		require.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.Len(t, view.History, 1)
	})
}

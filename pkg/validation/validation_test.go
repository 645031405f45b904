package validation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

// mondayNoon is the fixed clock for open-hours checks: 2026-09-07 was a
// Monday.
var mondayNoon = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

func seedBusiness(t *testing.T, client *ent.Client, name string) *ent.User {
	t.Helper()
	u, err := services.NewUserService(client).CreateUser(context.Background(), models.CreateUserRequest{
		Role:     user.RoleBusinessOwner,
		Name:     name,
		Timezone: "UTC",
	})
	require.NoError(t, err)
	return u
}

func seedItem(t *testing.T, client *ent.Client, businessID, name, price string, stock *int) *ent.Item {
	t.Helper()
	it, err := services.NewCatalogService(client).CreateItem(context.Background(), models.CreateItemRequest{
		BusinessID:    businessID,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	})
	require.NoError(t, err)
	return it
}

func seedHours(t *testing.T, client *ent.Client, businessID string, day int, open, close, lastOrder string) {
	t.Helper()
	_, err := services.NewCatalogService(client).UpsertOpeningHour(context.Background(), models.UpsertOpeningHourRequest{
		OwnerType:     openinghour.OwnerTypeBusiness,
		OwnerID:       businessID,
		DayOfWeek:     day,
		OpenTime:      open,
		CloseTime:     close,
		LastOrderTime: lastOrder,
	})
	require.NoError(t, err)
}

func intPtr(v int) *int {
	return &v
}

func TestValidator_CartForConfirmation(t *testing.T) {
	client := testdb.NewTestClient(t)
	validator := New(client.Client)
	validator.Now = func() time.Time { return mondayNoon }
	carts := services.NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Trattoria Check")
	seedHours(t, client.Client, business.ID, 1, "09:00", "17:00", "16:30")
	pizza := seedItem(t, client.Client, business.ID, "Capricciosa", "9.50", nil)

	t.Run("empty cart gathers every gap", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551001"}
		res, err := validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.True(t, res.HasCode(CodeEmptyCart))
		assert.True(t, res.HasCode(CodeMissingDeliveryType))
	})

	t.Run("delivery needs an address", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551002"}
		_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = carts.SetDeliveryType(ctx, scope, order.DeliveryTypeDelivery, "")
		require.NoError(t, err)

		res, err := validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.True(t, res.HasCode(CodeMissingDeliveryAddress))

		_, err = carts.SetDeliveryType(ctx, scope, order.DeliveryTypeDelivery, "Via Garibaldi 3")
		require.NoError(t, err)
		res, err = validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("closed on a day without hours", func(t *testing.T) {
		validator.Now = func() time.Time { return mondayNoon.Add(24 * time.Hour) } // Tuesday
		defer func() { validator.Now = func() time.Time { return mondayNoon } }()

		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551003"}
		_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = carts.SetDeliveryType(ctx, scope, order.DeliveryTypeTakeaway, "")
		require.NoError(t, err)

		res, err := validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeBusinessClosed))
	})

	t.Run("last orders already taken", func(t *testing.T) {
		validator.Now = func() time.Time { return mondayNoon.Add(4*time.Hour + 45*time.Minute) } // 16:45
		defer func() { validator.Now = func() time.Time { return mondayNoon } }()

		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551004"}
		_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = carts.SetDeliveryType(ctx, scope, order.DeliveryTypeTakeaway, "")
		require.NoError(t, err)

		res, err := validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.True(t, res.HasCode(CodeLastOrderTimePassed))
	})

	t.Run("scheduling skips the open-now check", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551005"}
		_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = carts.SetDeliveryType(ctx, scope, order.DeliveryTypeTakeaway, "")
		require.NoError(t, err)

		// Next Monday at noon, inside opening hours
		nextMonday := mondayNoon.Add(7 * 24 * time.Hour)
		_, err = carts.SetScheduled(ctx, scope, &nextMonday)
		require.NoError(t, err)
		res, err := validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.True(t, res.Valid)

		// Tuesday has no hours row
		tuesday := mondayNoon.Add(8 * 24 * time.Hour)
		_, err = carts.SetScheduled(ctx, scope, &tuesday)
		require.NoError(t, err)
		res, err = validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeBusinessClosed))

		// A time already gone
		past := mondayNoon.Add(-time.Hour)
		_, err = carts.SetScheduled(ctx, scope, &past)
		require.NoError(t, err)
		res, err = validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodePastDateTime))
	})

	t.Run("stock shortfall is a warning", func(t *testing.T) {
		scarce := seedItem(t, client.Client, business.ID, "Tartufo", "24.00", intPtr(1))
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15551006"}
		_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: scarce.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = carts.SetDeliveryType(ctx, scope, order.DeliveryTypeTakeaway, "")
		require.NoError(t, err)

		// Someone else drains the stock between add and confirm
		err = client.Client.Item.UpdateOneID(scarce.ID).SetStockQuantity(0).Exec(ctx)
		require.NoError(t, err)

		res, err := validator.CartForConfirmation(ctx, scope)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, CodeInsufficientStock, res.Warnings[0].Code)
	})
}

func TestValidator_ReservationRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	validator := New(client.Client)
	validator.Now = func() time.Time { return mondayNoon }
	catalog := services.NewCatalogService(client.Client)
	reservations := services.NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Osteria Check")
	seedHours(t, client.Client, business.ID, 1, "09:00", "23:00", "")
	for number, seats := range map[int]int{1: 2, 2: 4} {
		_, err := catalog.CreateTable(ctx, models.CreateTableRequest{
			BusinessID:  business.ID,
			OwnerUserID: business.ID,
			TableNumber: number,
			MaxSeats:    seats,
		})
		require.NoError(t, err)
	}

	base := ReservationCheck{
		BusinessID:   business.ID,
		OwnerUserID:  business.ID,
		Date:         "2026-09-14", // the following Monday
		Time:         "20:00",
		Guests:       intPtr(2),
		CustomerName: "Giulia",
	}

	t.Run("bookable slot", func(t *testing.T) {
		res, err := validator.ReservationRequest(ctx, base)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("missing name only warns", func(t *testing.T) {
		req := base
		req.CustomerName = ""
		res, err := validator.ReservationRequest(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, CodeMissingCustomerName, res.Warnings[0].Code)
	})

	t.Run("malformed date and time are both reported", func(t *testing.T) {
		req := base
		req.Date = "14/09/2026"
		req.Time = "8pm"
		res, err := validator.ReservationRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 2)
		assert.True(t, res.HasCode(CodeInvalidDateFormat))
	})

	t.Run("past slot", func(t *testing.T) {
		req := base
		req.Date = "2026-09-06"
		res, err := validator.ReservationRequest(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodePastDateTime))
	})

	t.Run("closed weekday", func(t *testing.T) {
		req := base
		req.Date = "2026-09-15" // Tuesday, no hours row
		res, err := validator.ReservationRequest(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeBusinessClosed))
	})

	t.Run("party too large for any table", func(t *testing.T) {
		req := base
		req.Guests = intPtr(9)
		res, err := validator.ReservationRequest(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeNoTablesAvailable))
	})

	t.Run("every fitting table booked", func(t *testing.T) {
		for i, phone := range []string{"+15552001", "+15552002"} {
			_, err := reservations.Create(ctx, models.CreateReservationRequest{
				BusinessID:      business.ID,
				OwnerUserID:     business.ID,
				CustomerPhone:   phone,
				CustomerName:    "Guest",
				ReservationDate: "2026-09-14",
				ReservationTime: "21:00",
			})
			require.NoError(t, err, "booking %d", i)
		}

		req := base
		req.Time = "21:00"
		res, err := validator.ReservationRequest(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.True(t, res.HasCode(CodeSlotTaken))
	})
}

func TestValidator_CancellationEligibility(t *testing.T) {
	client := testdb.NewTestClient(t)
	validator := New(client.Client)
	carts := services.NewCartService(client.Client)
	orders := services.NewOrderService(client.Client)
	reservations := services.NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Disdette Check")
	pizza := seedItem(t, client.Client, business.ID, "Norma", "11.00", nil)

	scheduledOrder := func(phone string, offset time.Duration) *ent.Order {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: phone}
		_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 1})
		require.NoError(t, err)
		cart, err := carts.GetOrCreate(ctx, scope)
		require.NoError(t, err)
		at := time.Now().Add(offset)
		_, err = carts.SetScheduled(ctx, scope, &at)
		require.NoError(t, err)
		confirmed, err := orders.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: phone})
		require.NoError(t, err)
		return confirmed
	}

	t.Run("order inside the window", func(t *testing.T) {
		o := scheduledOrder("+15553001", 48*time.Hour)
		res, err := validator.CancellationEligibility(ctx, CancellationCheck{
			OrderID:       o.ID,
			CustomerPhone: "+15553001",
		})
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("order past the window", func(t *testing.T) {
		o := scheduledOrder("+15553002", time.Hour) // default window is 2h
		res, err := validator.CancellationEligibility(ctx, CancellationCheck{
			OrderID:       o.ID,
			CustomerPhone: "+15553002",
		})
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeCancelDeadlinePassed))
	})

	t.Run("unscheduled order", func(t *testing.T) {
		scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: "+15553003"}
		_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 1})
		require.NoError(t, err)
		cart, err := carts.GetOrCreate(ctx, scope)
		require.NoError(t, err)
		o, err := orders.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: "+15553003"})
		require.NoError(t, err)

		res, err := validator.CancellationEligibility(ctx, CancellationCheck{
			OrderID:       o.ID,
			CustomerPhone: "+15553003",
		})
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeCancelDeadlinePassed))
	})

	t.Run("someone else's order", func(t *testing.T) {
		o := scheduledOrder("+15553004", 48*time.Hour)
		res, err := validator.CancellationEligibility(ctx, CancellationCheck{
			OrderID:       o.ID,
			CustomerPhone: "+15559999",
		})
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeNotFound))
	})

	t.Run("reservation inside the window", func(t *testing.T) {
		_, err := services.NewCatalogService(client.Client).CreateTable(ctx, models.CreateTableRequest{
			BusinessID:  business.ID,
			OwnerUserID: business.ID,
			TableNumber: 1,
			MaxSeats:    4,
		})
		require.NoError(t, err)

		at := time.Now().UTC().Add(72 * time.Hour)
		r, err := reservations.Create(ctx, models.CreateReservationRequest{
			BusinessID:      business.ID,
			OwnerUserID:     business.ID,
			CustomerPhone:   "+15553005",
			CustomerName:    "Irene",
			ReservationDate: at.Format("2006-01-02"),
			ReservationTime: at.Format("15:04"),
		})
		require.NoError(t, err)

		res, err := validator.CancellationEligibility(ctx, CancellationCheck{
			ReservationID: r.ID,
			CustomerPhone: "+15553005",
		})
		require.NoError(t, err)
		assert.True(t, res.Valid)

		// Once completed it can no longer be cancelled
		_, err = reservations.UpdateStatus(ctx, r.ID, reservation.StatusCompleted)
		require.NoError(t, err)
		res, err = validator.CancellationEligibility(ctx, CancellationCheck{
			ReservationID: r.ID,
			CustomerPhone: "+15553005",
		})
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeInvalidTransition))
	})

	t.Run("nothing identified", func(t *testing.T) {
		res, err := validator.CancellationEligibility(ctx, CancellationCheck{CustomerPhone: "+15553006"})
		require.NoError(t, err)
		assert.True(t, res.HasCode(CodeNotFound))
	})
}

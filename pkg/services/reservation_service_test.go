package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestReservationService_AvailableForSlot(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReservationService(client.Client)
	catalog := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Slot Co")

	terrace, err := catalog.CreateTable(ctx, models.CreateTableRequest{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		TableNumber:   1,
		MinSeats:      2,
		MaxSeats:      4,
		PositionLabel: "terrace",
	})
	require.NoError(t, err)
	seedTable(t, client.Client, business.ID, business.ID, 2, 2)
	big := seedTable(t, client.Client, business.ID, business.ID, 3, 8)

	slot := models.SlotQuery{
		OwnerUserID: business.ID,
		Date:        "2026-12-18",
		Time:        "20:00",
	}

	t.Run("capacity narrows the candidates", func(t *testing.T) {
		q := slot
		q.Guests = intPtr(4)
		tables, err := service.AvailableForSlot(ctx, q)
		require.NoError(t, err)
		require.Len(t, tables, 2)
		assert.Equal(t, 1, tables[0].TableNumber)
		assert.Equal(t, 3, tables[1].TableNumber)
	})

	t.Run("position preference filters by label", func(t *testing.T) {
		q := slot
		q.PositionPref = "Terrace"
		tables, err := service.AvailableForSlot(ctx, q)
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, terrace.ID, tables[0].ID)
	})

	t.Run("booked tables drop out of the slot", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateReservationRequest{
			BusinessID:      business.ID,
			OwnerUserID:     business.ID,
			CustomerPhone:   "+15556001",
			CustomerName:    "Ada",
			ReservationDate: slot.Date,
			ReservationTime: slot.Time,
			TableNumber:     3,
		})
		require.NoError(t, err)

		tables, err := service.AvailableForSlot(ctx, slot)
		require.NoError(t, err)
		for _, tab := range tables {
			assert.NotEqual(t, big.ID, tab.ID)
		}

		// The same table is free again one hour later
		later := slot
		later.Time = "21:00"
		tables, err = service.AvailableForSlot(ctx, later)
		require.NoError(t, err)
		assert.Len(t, tables, 3)
	})
}

func TestReservationService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Book Co")
	seedTable(t, client.Client, business.ID, business.ID, 1, 4)
	seedTable(t, client.Client, business.ID, business.ID, 2, 4)

	base := models.CreateReservationRequest{
		BusinessID:      business.ID,
		OwnerUserID:     business.ID,
		CustomerName:    "Bruno",
		ReservationDate: "2026-12-19",
		ReservationTime: "19:30",
		NumberOfGuests:  intPtr(2),
	}

	t.Run("auto-select fills lowest numbers first", func(t *testing.T) {
		first := base
		first.CustomerPhone = "+15557001"
		res, err := service.Create(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status)

		tab, err := client.Client.Table.Get(ctx, *res.TableID)
		require.NoError(t, err)
		assert.Equal(t, 1, tab.TableNumber)

		second := base
		second.CustomerPhone = "+15557002"
		res2, err := service.Create(ctx, second)
		require.NoError(t, err)
		tab2, err := client.Client.Table.Get(ctx, *res2.TableID)
		require.NoError(t, err)
		assert.Equal(t, 2, tab2.TableNumber)

		third := base
		third.CustomerPhone = "+15557003"
		_, err = service.Create(ctx, third)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("no table fits the party", func(t *testing.T) {
		req := base
		req.CustomerPhone = "+15557004"
		req.ReservationTime = "21:00"
		req.NumberOfGuests = intPtr(10)
		_, err := service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNoTablesAvailable)
	})

	t.Run("explicit table checks capacity", func(t *testing.T) {
		req := base
		req.CustomerPhone = "+15557005"
		req.ReservationTime = "21:00"
		req.TableNumber = 1
		req.NumberOfGuests = intPtr(9)
		_, err := service.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("explicit table already taken", func(t *testing.T) {
		req := base
		req.CustomerPhone = "+15557006"
		req.TableNumber = 1
		_, err := service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("unknown table number", func(t *testing.T) {
		req := base
		req.CustomerPhone = "+15557007"
		req.TableNumber = 42
		_, err := service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*models.CreateReservationRequest)
		}{
			{"bad date", func(r *models.CreateReservationRequest) { r.ReservationDate = "19/12/2026" }},
			{"bad time", func(r *models.CreateReservationRequest) { r.ReservationTime = "half past seven" }},
			{"no name", func(r *models.CreateReservationRequest) { r.CustomerName = "  " }},
			{"no phone", func(r *models.CreateReservationRequest) { r.CustomerPhone = "" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := base
				req.CustomerPhone = "+15557008"
				tc.mutate(&req)
				_, err := service.Create(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestReservationService_ConcurrentSlotRace(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Race Co")
	seedTable(t, client.Client, business.ID, business.ID, 7, 4)

	book := func(phone, name string) error {
		_, err := service.Create(ctx, models.CreateReservationRequest{
			BusinessID:      business.ID,
			OwnerUserID:     business.ID,
			CustomerPhone:   phone,
			CustomerName:    name,
			ReservationDate: "2026-12-19",
			ReservationTime: "20:00",
			TableNumber:     7,
		})
		return err
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, guest := range []struct{ phone, name string }{
		{"+15558001", "Grace"},
		{"+15558002", "Edsger"},
	} {
		wg.Add(1)
		go func(phone, name string) {
			defer wg.Done()
			results <- book(phone, name)
		}(guest.phone, guest.name)
	}
	wg.Wait()
	close(results)

	won, lost := 0, 0
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotTaken):
			lost++
		default:
			t.Fatalf("unexpected create error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	// The slot index admitted exactly one confirmed row
	n, err := client.Client.Reservation.Query().
		Where(
			reservation.ReservationDateEQ("2026-12-19"),
			reservation.ReservationTimeEQ("20:00"),
			reservation.StatusEQ(reservation.StatusConfirmed),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReservationService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Status Tavoli")
	seedTable(t, client.Client, business.ID, business.ID, 1, 4)

	book := func(phone, slot string) string {
		res, err := service.Create(ctx, models.CreateReservationRequest{
			BusinessID:      business.ID,
			OwnerUserID:     business.ID,
			CustomerPhone:   phone,
			CustomerName:    "Carla",
			ReservationDate: "2026-12-20",
			ReservationTime: slot,
		})
		require.NoError(t, err)
		return res.ID
	}

	t.Run("confirmed can complete", func(t *testing.T) {
		id := book("+15558001", "18:00")
		res, err := service.UpdateStatus(ctx, id, reservation.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCompleted, res.Status)

		_, err = service.UpdateStatus(ctx, id, reservation.StatusCancelled)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("confirmed can be marked no-show", func(t *testing.T) {
		id := book("+15558002", "19:00")
		res, err := service.UpdateStatus(ctx, id, reservation.StatusNoShow)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusNoShow, res.Status)
	})

	t.Run("cancelling frees the slot", func(t *testing.T) {
		id := book("+15558003", "20:00")
		_, err := service.UpdateStatus(ctx, id, reservation.StatusCancelled)
		require.NoError(t, err)

		// Same table, same slot, new booking succeeds
		res, err := service.Create(ctx, models.CreateReservationRequest{
			BusinessID:      business.ID,
			OwnerUserID:     business.ID,
			CustomerPhone:   "+15558004",
			CustomerName:    "Dario",
			ReservationDate: "2026-12-20",
			ReservationTime: "20:00",
		})
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, err := service.UpdateStatus(ctx, "nonexistent", reservation.StatusCompleted)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReservationService_CancelByCustomer(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Cancella Co")
	seedTable(t, client.Client, business.ID, business.ID, 1, 4)
	seedTable(t, client.Client, business.ID, business.ID, 2, 4)
	seedTable(t, client.Client, business.ID, business.ID, 3, 4)

	// Business timezone is UTC, so slots derived from UTC instants line up.
	book := func(phone string, at time.Time) *ent.Reservation {
		res, err := service.Create(ctx, models.CreateReservationRequest{
			BusinessID:      business.ID,
			OwnerUserID:     business.ID,
			CustomerPhone:   phone,
			CustomerName:    "Elena",
			ReservationDate: at.UTC().Format("2006-01-02"),
			ReservationTime: at.UTC().Format("15:04"),
		})
		require.NoError(t, err)
		return res
	}

	t.Run("cancels inside the default window", func(t *testing.T) {
		res := book("+15559001", time.Now().Add(48*time.Hour))
		cancelled, err := service.CancelByCustomer(ctx, res.ID, "+15559001")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, cancelled.Status)
	})

	t.Run("refuses when the window has closed", func(t *testing.T) {
		res := book("+15559002", time.Now().Add(30*time.Minute))
		_, err := service.CancelByCustomer(ctx, res.ID, "+15559002")
		assert.ErrorIs(t, err, ErrCancelDeadlinePassed)
	})

	t.Run("pre-ordered items widen the window", func(t *testing.T) {
		catalog := NewCatalogService(client.Client)
		cake, err := catalog.CreateItem(ctx, models.CreateItemRequest{
			BusinessID:            business.ID,
			Name:                  "Millefoglie",
			Price:                 decimal.RequireFromString("45.00"),
			CancelableBeforeHours: intPtr(24),
		})
		require.NoError(t, err)

		res := book("+15559003", time.Now().Add(4*time.Hour))
		_, err = service.AddItem(ctx, res.ID, models.AddReservationItemRequest{ItemID: cake.ID, Quantity: 1})
		require.NoError(t, err)

		_, err = service.CancelByCustomer(ctx, res.ID, "+15559003")
		assert.ErrorIs(t, err, ErrCancelDeadlinePassed)
	})

	t.Run("wrong customer", func(t *testing.T) {
		res := book("+15559004", time.Now().Add(72*time.Hour))
		_, err := service.CancelByCustomer(ctx, res.ID, "+15550000")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReservationService_Items(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Preordine Co")
	seedTable(t, client.Client, business.ID, business.ID, 1, 4)
	wine := seedItem(t, client.Client, business.ID, "Barolo", "38.00")

	res, err := service.Create(ctx, models.CreateReservationRequest{
		BusinessID:      business.ID,
		OwnerUserID:     business.ID,
		CustomerPhone:   "+15550101",
		CustomerName:    "Franca",
		ReservationDate: "2026-12-21",
		ReservationTime: "20:30",
	})
	require.NoError(t, err)

	t.Run("snapshots price and name", func(t *testing.T) {
		line, err := service.AddItem(ctx, res.ID, models.AddReservationItemRequest{
			ItemID:   wine.ID,
			Quantity: 2,
			Notes:    "decanted",
		})
		require.NoError(t, err)
		assert.Equal(t, "Barolo", line.NameAtTime)
		assert.True(t, line.PriceAtTime.Equal(decimal.RequireFromString("38.00")))
		assert.Equal(t, 2, line.Quantity)

		lines, err := service.ListItems(ctx, res.ID)
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})

	t.Run("foreign items are invisible", func(t *testing.T) {
		other := seedBusiness(t, client.Client, "Altro Co")
		foreign := seedItem(t, client.Client, other.ID, "Lambrusco", "12.00")

		_, err := service.AddItem(ctx, res.ID, models.AddReservationItemRequest{ItemID: foreign.ID, Quantity: 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("remove drops the line", func(t *testing.T) {
		line, err := service.AddItem(ctx, res.ID, models.AddReservationItemRequest{ItemID: wine.ID, Quantity: 1})
		require.NoError(t, err)

		require.NoError(t, service.RemoveItem(ctx, res.ID, line.ID))
		assert.ErrorIs(t, service.RemoveItem(ctx, res.ID, line.ID), ErrNotFound)
	})

	t.Run("only confirmed reservations take pre-orders", func(t *testing.T) {
		done, err := service.UpdateStatus(ctx, res.ID, reservation.StatusCompleted)
		require.NoError(t, err)

		_, err = service.AddItem(ctx, done.ID, models.AddReservationItemRequest{ItemID: wine.ID, Quantity: 1})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReservationService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReservationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Agenda Co")
	seedTable(t, client.Client, business.ID, business.ID, 1, 4)
	seedTable(t, client.Client, business.ID, business.ID, 2, 4)

	for i, slot := range []struct {
		date, at, phone string
	}{
		{"2026-12-22", "12:00", "+15550201"},
		{"2026-12-22", "20:00", "+15550202"},
		{"2026-12-24", "20:00", "+15550203"},
	} {
		_, err := service.Create(ctx, models.CreateReservationRequest{
			BusinessID:      business.ID,
			OwnerUserID:     business.ID,
			CustomerPhone:   slot.phone,
			CustomerName:    "Guest",
			ReservationDate: slot.date,
			ReservationTime: slot.at,
		})
		require.NoError(t, err, "reservation %d", i)
	}

	t.Run("filter by date", func(t *testing.T) {
		resp, err := service.List(ctx, models.ReservationFilters{BusinessID: business.ID, Date: "2026-12-22"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		// Earliest slot first
		assert.Equal(t, "12:00", resp.Reservations[0].ReservationTime)
	})

	t.Run("filter by customer", func(t *testing.T) {
		resp, err := service.List(ctx, models.ReservationFilters{BusinessID: business.ID, CustomerPhone: "+15550203"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("window query spans days", func(t *testing.T) {
		all, err := service.ListBetween(ctx, business.ID, "2026-12-22", "2026-12-24")
		require.NoError(t, err)
		assert.Len(t, all, 3)

		partial, err := service.ListBetween(ctx, business.ID, "2026-12-23", "2026-12-25")
		require.NoError(t, err)
		assert.Len(t, partial, 1)
	})
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestCartService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Cart Co")
	scope := models.CartScope{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		CustomerPhone: "+15550001",
	}

	cart, err := service.GetOrCreate(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCart, cart.Status)

	again, err := service.GetOrCreate(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	t.Run("different customers get different carts", func(t *testing.T) {
		other, err := service.GetOrCreate(ctx, models.CartScope{
			BusinessID:    business.ID,
			OwnerUserID:   business.ID,
			CustomerPhone: "+15550002",
		})
		require.NoError(t, err)
		assert.NotEqual(t, cart.ID, other.ID)
	})

	t.Run("validates scope", func(t *testing.T) {
		_, err := service.GetOrCreate(ctx, models.CartScope{BusinessID: business.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCartService_AddLine(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCartService(client.Client)
	catalog := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Line Co")
	pizza := seedItem(t, client.Client, business.ID, "Margherita", "8.50")
	scope := models.CartScope{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		CustomerPhone: "+15550010",
	}

	t.Run("adds a line and totals it", func(t *testing.T) {
		snapshot, err := service.AddLine(ctx, scope, models.AddLineRequest{
			ItemID:   pizza.ID,
			Quantity: 2,
		})
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 2, snapshot.Lines[0].Quantity)
		assert.Equal(t, "Margherita", snapshot.Lines[0].Name)
		assert.True(t, snapshot.Subtotal.Equal(decimal.RequireFromString("17.00")))
		assert.True(t, snapshot.Total.Equal(snapshot.Subtotal))
	})

	t.Run("same item and notes merge into one line", func(t *testing.T) {
		snapshot, err := service.AddLine(ctx, scope, models.AddLineRequest{
			ItemID:   pizza.ID,
			Quantity: 1,
		})
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 3, snapshot.Lines[0].Quantity)
	})

	t.Run("different notes make a separate line", func(t *testing.T) {
		snapshot, err := service.AddLine(ctx, scope, models.AddLineRequest{
			ItemID:   pizza.ID,
			Quantity: 1,
			Notes:    "no basil",
		})
		require.NoError(t, err)
		assert.Len(t, snapshot.Lines, 2)
	})

	t.Run("reprices stale lines from the catalog", func(t *testing.T) {
		newPrice := decimal.RequireFromString("9.00")
		_, err := catalog.UpdateItem(ctx, pizza.ID, models.UpdateItemRequest{Price: &newPrice})
		require.NoError(t, err)

		snapshot, err := service.AddLine(ctx, scope, models.AddLineRequest{
			ItemID:   pizza.ID,
			Quantity: 1,
		})
		require.NoError(t, err)
		for _, line := range snapshot.Lines {
			assert.True(t, line.UnitPrice.Equal(newPrice), "line %s kept stale price", line.LineID)
		}
	})

	t.Run("rejects items from another tenant", func(t *testing.T) {
		other := seedBusiness(t, client.Client, "Other Co")
		foreign := seedItem(t, client.Client, other.ID, "Foreign", "5.00")

		_, err := service.AddLine(ctx, scope, models.AddLineRequest{
			ItemID:   foreign.ID,
			Quantity: 1,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects unavailable items", func(t *testing.T) {
		soldOut := seedItem(t, client.Client, business.ID, "Sold Out", "4.00")
		unavailable := item.AvailabilityUnavailable
		_, err := catalog.UpdateItem(ctx, soldOut.ID, models.UpdateItemRequest{Availability: &unavailable})
		require.NoError(t, err)

		_, err = service.AddLine(ctx, scope, models.AddLineRequest{
			ItemID:   soldOut.ID,
			Quantity: 1,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCartService_UpdateLine(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Update Co")
	pizza := seedItem(t, client.Client, business.ID, "Capricciosa", "10.00")
	scope := models.CartScope{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		CustomerPhone: "+15550020",
	}

	snapshot, err := service.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 2})
	require.NoError(t, err)
	lineID := snapshot.Lines[0].LineID

	t.Run("changes quantity", func(t *testing.T) {
		snapshot, err := service.UpdateLine(ctx, scope, models.UpdateLineRequest{
			LineID:   lineID,
			Quantity: intPtr(5),
		})
		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 5, snapshot.Lines[0].Quantity)
		assert.True(t, snapshot.Subtotal.Equal(decimal.RequireFromString("50.00")))
	})

	t.Run("quantity zero removes the line", func(t *testing.T) {
		snapshot, err := service.UpdateLine(ctx, scope, models.UpdateLineRequest{
			LineID:   lineID,
			Quantity: intPtr(0),
		})
		require.NoError(t, err)
		assert.True(t, snapshot.IsEmpty())
		assert.True(t, snapshot.Subtotal.IsZero())
	})

	t.Run("unknown line", func(t *testing.T) {
		_, err := service.UpdateLine(ctx, scope, models.UpdateLineRequest{
			LineID:   "nonexistent",
			Quantity: intPtr(1),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCartService_DeliveryAndSchedule(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Delivery Co")
	pizza := seedItem(t, client.Client, business.ID, "Quattro Formaggi", "11.00")
	scope := models.CartScope{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		CustomerPhone: "+15550030",
	}

	_, err := service.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 1})
	require.NoError(t, err)

	t.Run("sets delivery with address", func(t *testing.T) {
		snapshot, err := service.SetDeliveryType(ctx, scope, order.DeliveryTypeDelivery, "Via Roma 1")
		require.NoError(t, err)
		require.NotNil(t, snapshot.DeliveryType)
		assert.Equal(t, order.DeliveryTypeDelivery, *snapshot.DeliveryType)
		assert.Equal(t, "Via Roma 1", snapshot.Address)
	})

	t.Run("rejects unknown delivery type", func(t *testing.T) {
		_, err := service.SetDeliveryType(ctx, scope, order.DeliveryType("drone"), "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("sets and clears the scheduled time", func(t *testing.T) {
		at := time.Now().Add(3 * time.Hour).Truncate(time.Second)
		snapshot, err := service.SetScheduled(ctx, scope, &at)
		require.NoError(t, err)
		require.NotNil(t, snapshot.ScheduledFor)

		snapshot, err = service.SetScheduled(ctx, scope, nil)
		require.NoError(t, err)
		assert.Nil(t, snapshot.ScheduledFor)
	})

	t.Run("notes round-trip without the storage prefix", func(t *testing.T) {
		snapshot, err := service.SetNotes(ctx, scope, "ring the bell twice")
		require.NoError(t, err)
		assert.Equal(t, "ring the bell twice", snapshot.Notes)
	})
}

func TestCartService_Clear(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Clear Co")
	pizza := seedItem(t, client.Client, business.ID, "Marinara", "6.00")
	scope := models.CartScope{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		CustomerPhone: "+15550040",
	}

	_, err := service.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = service.SetDeliveryType(ctx, scope, order.DeliveryTypeTakeaway, "")
	require.NoError(t, err)

	err = service.Clear(ctx, scope)
	require.NoError(t, err)

	snapshot, err := service.Snapshot(ctx, scope)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
	assert.Nil(t, snapshot.DeliveryType)
	assert.True(t, snapshot.Total.IsZero())

	t.Run("clearing a scope without a cart is a no-op", func(t *testing.T) {
		err := service.Clear(ctx, models.CartScope{
			BusinessID:    business.ID,
			OwnerUserID:   business.ID,
			CustomerPhone: "+15559999",
		})
		assert.NoError(t, err)
	})
}

func TestCartService_SnapshotWithoutCart(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCartService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Empty Co")

	snapshot, err := service.Snapshot(ctx, models.CartScope{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		CustomerPhone: "+15550050",
	})
	require.NoError(t, err)
	assert.Empty(t, snapshot.OrderID)
	assert.True(t, snapshot.IsEmpty())
	assert.True(t, snapshot.Total.IsZero())
}

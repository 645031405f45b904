package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestCatalogService_Items(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Item Co")

	t.Run("creates item", func(t *testing.T) {
		it, err := service.CreateItem(ctx, models.CreateItemRequest{
			BusinessID:    business.ID,
			Name:          "Margherita",
			Description:   "Tomato, mozzarella, basil",
			Price:         decimal.RequireFromString("8.50"),
			StockQuantity: intPtr(10),
		})
		require.NoError(t, err)
		assert.Equal(t, "Margherita", it.Name)
		assert.Equal(t, item.AvailabilityAvailable, it.Availability)
		require.NotNil(t, it.StockQuantity)
		assert.Equal(t, 10, *it.StockQuantity)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := service.CreateItem(ctx, models.CreateItemRequest{
			BusinessID: business.ID,
			Name:       "Bad",
			Price:      decimal.RequireFromString("-1"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("soft delete hides the item", func(t *testing.T) {
		it := seedItem(t, client.Client, business.ID, "Ephemeral", "3.00")

		err := service.DeleteItem(ctx, it.ID)
		require.NoError(t, err)

		_, err = service.GetItem(ctx, it.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// Row survives for order-line snapshots
		row, err := client.Client.Item.Get(ctx, it.ID)
		require.NoError(t, err)
		assert.NotNil(t, row.DeletedAt)
		assert.Equal(t, item.AvailabilityHidden, row.Availability)
	})

	t.Run("list excludes deleted by default", func(t *testing.T) {
		resp, err := service.ListItems(ctx, models.ItemFilters{BusinessID: business.ID})
		require.NoError(t, err)
		for _, it := range resp.Items {
			assert.Nil(t, it.DeletedAt)
		}
	})
}

func TestCatalogService_SearchItems(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Search Co")
	branch := seedBranch(t, client.Client, business.ID, "North")

	_, err := service.CreateItem(ctx, models.CreateItemRequest{
		BusinessID:  business.ID,
		Name:        "Diavola",
		Description: "Spicy salami pizza",
		Price:       decimal.RequireFromString("9.50"),
	})
	require.NoError(t, err)
	_, err = service.CreateItem(ctx, models.CreateItemRequest{
		BusinessID:  business.ID,
		OwnerUserID: branch.ID,
		Name:        "North Special",
		Price:       decimal.RequireFromString("12.00"),
	})
	require.NoError(t, err)

	hidden := seedItem(t, client.Client, business.ID, "Diavola Nascosta", "9.00")
	hiddenAvail := item.AvailabilityHidden
	_, err = service.UpdateItem(ctx, hidden.ID, models.UpdateItemRequest{Availability: &hiddenAvail})
	require.NoError(t, err)

	t.Run("matches name substring", func(t *testing.T) {
		found, err := service.SearchItems(ctx, models.SearchItemsRequest{
			BusinessID: business.ID,
			Query:      "diavola",
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Diavola", found[0].Name)
	})

	t.Run("matches description word", func(t *testing.T) {
		found, err := service.SearchItems(ctx, models.SearchItemsRequest{
			BusinessID: business.ID,
			Query:      "spicy",
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Diavola", found[0].Name)
	})

	t.Run("branch scope sees branch and business-wide items", func(t *testing.T) {
		found, err := service.SearchItems(ctx, models.SearchItemsRequest{
			BusinessID:  business.ID,
			OwnerUserID: branch.ID,
			Query:       "north",
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "North Special", found[0].Name)
	})

	t.Run("business scope does not see branch items", func(t *testing.T) {
		found, err := service.SearchItems(ctx, models.SearchItemsRequest{
			BusinessID: business.ID,
			Query:      "north",
		})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("requires a query", func(t *testing.T) {
		_, err := service.SearchItems(ctx, models.SearchItemsRequest{
			BusinessID: business.ID,
			Query:      "   ",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCatalogService_OpeningHours(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Hours Co")
	branch := seedBranch(t, client.Client, business.ID, "West")

	// Monday 09:00-17:00 for the business, last order 16:30
	_, err := service.UpsertOpeningHour(ctx, models.UpsertOpeningHourRequest{
		OwnerType:     openinghour.OwnerTypeBusiness,
		OwnerID:       business.ID,
		DayOfWeek:     1,
		OpenTime:      "09:00",
		CloseTime:     "17:00",
		LastOrderTime: "16:30",
	})
	require.NoError(t, err)

	t.Run("rejects malformed time", func(t *testing.T) {
		_, err := service.UpsertOpeningHour(ctx, models.UpsertOpeningHourRequest{
			OwnerType: openinghour.OwnerTypeBusiness,
			OwnerID:   business.ID,
			DayOfWeek: 2,
			OpenTime:  "9 o'clock",
			CloseTime: "17:00",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("business hours apply inside the window", func(t *testing.T) {
		monday := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC) // a Monday
		open, err := service.IsOpenAt(ctx, business.ID, business.ID, monday)
		require.NoError(t, err)
		assert.True(t, open)

		evening := time.Date(2026, 9, 7, 18, 0, 0, 0, time.UTC)
		open, err = service.IsOpenAt(ctx, business.ID, business.ID, evening)
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("no row means closed", func(t *testing.T) {
		sunday := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)
		open, err := service.IsOpenAt(ctx, business.ID, business.ID, sunday)
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("branch row overrides the business row", func(t *testing.T) {
		_, err := service.UpsertOpeningHour(ctx, models.UpsertOpeningHourRequest{
			OwnerType: openinghour.OwnerTypeBranch,
			OwnerID:   branch.ID,
			DayOfWeek: 1,
			OpenTime:  "18:00",
			CloseTime: "23:00",
		})
		require.NoError(t, err)

		noon := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
		open, err := service.IsOpenAt(ctx, business.ID, branch.ID, noon)
		require.NoError(t, err)
		assert.False(t, open)

		night := time.Date(2026, 9, 7, 20, 0, 0, 0, time.UTC)
		open, err = service.IsOpenAt(ctx, business.ID, branch.ID, night)
		require.NoError(t, err)
		assert.True(t, open)
	})

	t.Run("overnight window spans midnight", func(t *testing.T) {
		// Friday 20:00-02:00
		_, err := service.UpsertOpeningHour(ctx, models.UpsertOpeningHourRequest{
			OwnerType: openinghour.OwnerTypeBusiness,
			OwnerID:   business.ID,
			DayOfWeek: 5,
			OpenTime:  "20:00",
			CloseTime: "02:00",
		})
		require.NoError(t, err)

		friday := time.Date(2026, 9, 11, 23, 30, 0, 0, time.UTC)
		open, err := service.IsOpenAt(ctx, business.ID, business.ID, friday)
		require.NoError(t, err)
		assert.True(t, open)

		fridayNoon := time.Date(2026, 9, 11, 12, 0, 0, 0, time.UTC)
		open, err = service.IsOpenAt(ctx, business.ID, business.ID, fridayNoon)
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("last order cutoff", func(t *testing.T) {
		cutoff, err := service.LastOrderTimeFor(ctx, business.ID, business.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "16:30", cutoff)

		cutoff, err = service.LastOrderTimeFor(ctx, business.ID, business.ID, 3)
		require.NoError(t, err)
		assert.Empty(t, cutoff)
	})

	t.Run("upsert updates in place", func(t *testing.T) {
		_, err := service.UpsertOpeningHour(ctx, models.UpsertOpeningHourRequest{
			OwnerType: openinghour.OwnerTypeBusiness,
			OwnerID:   business.ID,
			DayOfWeek: 1,
			OpenTime:  "10:00",
			CloseTime: "17:00",
		})
		require.NoError(t, err)

		hours, err := service.ListOpeningHours(ctx, openinghour.OwnerTypeBusiness, business.ID)
		require.NoError(t, err)
		var monday int
		for _, oh := range hours {
			if oh.DayOfWeek == 1 {
				monday++
				require.NotNil(t, oh.OpenTime)
				assert.Equal(t, "10:00", *oh.OpenTime)
			}
		}
		assert.Equal(t, 1, monday)
	})
}

func TestCatalogService_Tables(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Table Co")

	t.Run("creates table with default min seats", func(t *testing.T) {
		tab, err := service.CreateTable(ctx, models.CreateTableRequest{
			BusinessID:  business.ID,
			OwnerUserID: business.ID,
			TableNumber: 1,
			MaxSeats:    4,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, tab.MinSeats)
		assert.Equal(t, 4, tab.MaxSeats)
	})

	t.Run("table number is unique per owner", func(t *testing.T) {
		_, err := service.CreateTable(ctx, models.CreateTableRequest{
			BusinessID:  business.ID,
			OwnerUserID: business.ID,
			TableNumber: 1,
			MaxSeats:    2,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects max below min", func(t *testing.T) {
		_, err := service.CreateTable(ctx, models.CreateTableRequest{
			BusinessID:  business.ID,
			OwnerUserID: business.ID,
			TableNumber: 2,
			MinSeats:    4,
			MaxSeats:    2,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("list orders by table number and skips inactive", func(t *testing.T) {
		tab3 := seedTable(t, client.Client, business.ID, business.ID, 3, 6)
		seedTable(t, client.Client, business.ID, business.ID, 2, 2)

		inactive := false
		_, err := service.UpdateTable(ctx, tab3.ID, models.UpdateTableRequest{IsActive: &inactive})
		require.NoError(t, err)

		tables, err := service.ListTables(ctx, business.ID)
		require.NoError(t, err)
		require.Len(t, tables, 2)
		assert.Equal(t, 1, tables[0].TableNumber)
		assert.Equal(t, 2, tables[1].TableNumber)
	})
}

package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

// 2026-09-07 was a Monday.
var schedMonday = time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

func seedSchedBusiness(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := services.NewUserService(client).CreateUser(context.Background(), models.CreateUserRequest{
		Role:     user.RoleBusinessOwner,
		Name:     "Orari Co",
		Timezone: "UTC",
	})
	require.NoError(t, err)

	// Open Mondays only
	_, err = services.NewCatalogService(client).UpsertOpeningHour(context.Background(), models.UpsertOpeningHourRequest{
		OwnerType: openinghour.OwnerTypeBusiness,
		OwnerID:   u.ID,
		DayOfWeek: 1,
		OpenTime:  "09:00",
		CloseTime: "17:00",
	})
	require.NoError(t, err)
	return u
}

func TestScheduler_ResolveText(t *testing.T) {
	client := testdb.NewTestClient(t)
	scheduler := NewScheduler(client.Client)
	scheduler.Now = func() time.Time { return schedMonday }
	ctx := context.Background()

	business := seedSchedBusiness(t, client.Client)

	t.Run("timed text resolves directly", func(t *testing.T) {
		at, err := scheduler.ResolveText(ctx, business.ID, business.ID, "tomorrow at 7pm")
		require.NoError(t, err)
		assert.True(t, time.Date(2026, 9, 8, 19, 0, 0, 0, time.UTC).Equal(at))
	})

	t.Run("bare date lands on opening time", func(t *testing.T) {
		at, err := scheduler.ResolveText(ctx, business.ID, business.ID, "2026-09-14")
		require.NoError(t, err)
		assert.True(t, time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC).Equal(at))
	})

	t.Run("bare date on a closed day", func(t *testing.T) {
		_, err := scheduler.ResolveText(ctx, business.ID, business.ID, "2026-09-15")
		require.Error(t, err)
		assert.Equal(t, CodeBusinessClosed, CodeOf(err))
	})

	t.Run("today while already open means now", func(t *testing.T) {
		at, err := scheduler.ResolveText(ctx, business.ID, business.ID, "today")
		require.NoError(t, err)
		assert.True(t, schedMonday.Equal(at))
	})

	t.Run("unreadable text", func(t *testing.T) {
		_, err := scheduler.ResolveText(ctx, business.ID, business.ID, "soonish")
		require.Error(t, err)
		assert.Equal(t, CodeInvalidDateFormat, CodeOf(err))
	})

	t.Run("unknown business", func(t *testing.T) {
		_, err := scheduler.ResolveText(ctx, "nonexistent", "nonexistent", "tomorrow")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestScheduler_ValidateSchedulable(t *testing.T) {
	client := testdb.NewTestClient(t)
	scheduler := NewScheduler(client.Client)
	scheduler.Now = func() time.Time { return schedMonday }
	catalog := services.NewCatalogService(client.Client)
	ctx := context.Background()

	business := seedSchedBusiness(t, client.Client)

	cake, err := catalog.CreateItem(ctx, models.CreateItemRequest{
		BusinessID:       business.ID,
		Name:             "Torta su ordinazione",
		Price:            decimal.RequireFromString("35.00"),
		IsSchedulable:    true,
		MinScheduleHours: 48,
	})
	require.NoError(t, err)

	nextMondayLunch := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	t.Run("inside opening hours", func(t *testing.T) {
		assert.NoError(t, scheduler.ValidateSchedulable(ctx, business.ID, business.ID, nextMondayLunch, nil))
	})

	t.Run("after closing", func(t *testing.T) {
		err := scheduler.ValidateSchedulable(ctx, business.ID, business.ID,
			time.Date(2026, 9, 14, 20, 0, 0, 0, time.UTC), nil)
		require.Error(t, err)
		assert.Equal(t, CodeBusinessClosed, CodeOf(err))
	})

	t.Run("closed weekday", func(t *testing.T) {
		err := scheduler.ValidateSchedulable(ctx, business.ID, business.ID,
			time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC), nil)
		require.Error(t, err)
		assert.Equal(t, CodeBusinessClosed, CodeOf(err))
	})

	t.Run("already passed", func(t *testing.T) {
		err := scheduler.ValidateSchedulable(ctx, business.ID, business.ID,
			schedMonday.Add(-time.Hour), nil)
		require.Error(t, err)
		assert.Equal(t, CodePastDateTime, CodeOf(err))
	})

	t.Run("item notice window satisfied", func(t *testing.T) {
		// A week out comfortably clears the 48h notice
		assert.NoError(t, scheduler.ValidateSchedulable(ctx, business.ID, business.ID, nextMondayLunch, []string{cake.ID}))
	})

	t.Run("item notice window violated", func(t *testing.T) {
		// Later today is within 48h
		err := scheduler.ValidateSchedulable(ctx, business.ID, business.ID,
			schedMonday.Add(2*time.Hour), []string{cake.ID})
		require.Error(t, err)
		assert.Equal(t, CodePastDateTime, CodeOf(err))
	})
}

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/archive"
	"github.com/vendrahq/vendra/pkg/config"
	"github.com/vendrahq/vendra/pkg/database"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

func newTestScheduler(client *database.Client, cfg *config.SchedulerConfig, store archive.LogStore) *Scheduler {
	var archiver *archive.Archiver
	if store != nil {
		archiver = archive.NewArchiver(client.Client, store)
	}
	return New(cfg, client.DB(),
		services.NewOrderService(client.Client),
		services.NewSessionService(client.Client),
		archiver)
}

func seedSchedulerBusiness(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	business, err := services.NewUserService(client).CreateUser(context.Background(), models.CreateUserRequest{
		Role:     user.RoleBusinessOwner,
		Name:     "Scheduler Co",
		Timezone: "UTC",
	})
	require.NoError(t, err)
	return business
}

// placeScheduledOrder confirms a one-line cart scheduled for the given time.
// Confirmation requires a future time, so tests rewind scheduled_for
// afterwards to put the order in the due window.
func placeScheduledOrder(t *testing.T, client *ent.Client, business *ent.User, phone string, scheduledFor time.Time) *ent.Order {
	t.Helper()
	ctx := context.Background()
	carts := services.NewCartService(client)
	orders := services.NewOrderService(client)

	item, err := services.NewCatalogService(client).CreateItem(ctx, models.CreateItemRequest{
		BusinessID: business.ID,
		Name:       "Lunch box",
		Price:      decimal.RequireFromString("12.00"),
	})
	require.NoError(t, err)

	scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: phone}
	_, err = carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	future := time.Now().UTC().Add(2 * time.Hour)
	_, err = carts.SetScheduled(ctx, scope, &future)
	require.NoError(t, err)

	cart, err := carts.GetOrCreate(ctx, scope)
	require.NoError(t, err)

	confirmed, err := orders.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: phone})
	require.NoError(t, err)
	require.Equal(t, order.StatusAccepted, confirmed.Status)
	require.Equal(t, order.RequestTypeScheduledRequest, confirmed.RequestType)

	rewound, err := client.Order.UpdateOneID(confirmed.ID).SetScheduledFor(scheduledFor).Save(ctx)
	require.NoError(t, err)
	return rewound
}

func openIdleSession(t *testing.T, client *ent.Client, business *ent.User, customer string, lastActivity time.Time) *ent.ChatSession {
	t.Helper()
	ctx := context.Background()
	sess, err := services.NewSessionService(client).GetOrOpen(ctx, models.SessionScope{
		BusinessID: business.ID,
		CustomerID: customer,
		Platform:   chatsession.PlatformWhatsapp,
	})
	require.NoError(t, err)

	aged, err := client.ChatSession.UpdateOneID(sess.ID).SetLastActivityAt(lastActivity).Save(ctx)
	require.NoError(t, err)
	return aged
}

func TestScheduler_CompletesDueScheduledOrders(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedSchedulerBusiness(t, client.Client)
	ctx := context.Background()

	due := placeScheduledOrder(t, client.Client, business, "+15556001", time.Now().UTC().Add(-10*time.Minute))
	notDue := placeScheduledOrder(t, client.Client, business, "+15556002", time.Now().UTC().Add(3*time.Hour))

	s := newTestScheduler(client, nil, nil)
	s.runCompleter(ctx)

	completed, err := client.Client.Order.Get(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	history, err := client.Client.OrderStatusHistory.Query().
		Where(
			orderstatushistory.OrderIDEQ(due.ID),
			orderstatushistory.StatusEQ(orderstatushistory.StatusCompleted),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, changedByScheduler, history.ChangedBy)

	untouched, err := client.Client.Order.Get(ctx, notDue.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, untouched.Status)
}

func TestScheduler_ArchivesAgedTerminalOrders(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedSchedulerBusiness(t, client.Client)
	ctx := context.Background()

	done := placeScheduledOrder(t, client.Client, business, "+15556003", time.Now().UTC().Add(-time.Hour))
	_, err := services.NewOrderService(client.Client).UpdateStatus(ctx, done.ID, models.UpdateOrderStatusRequest{
		Status:    order.StatusCompleted,
		ChangedBy: "owner",
	})
	require.NoError(t, err)

	live := placeScheduledOrder(t, client.Client, business, "+15556004", time.Now().UTC().Add(3*time.Hour))

	store := archive.NewMemoryStore()
	cfg := config.DefaultSchedulerConfig()
	cfg.ArchiveOrderAgeHours = 0
	s := newTestScheduler(client, cfg, store)

	s.runArchiver(ctx)

	assert.Equal(t, 1, store.Len())
	_, err = store.Get(ctx, done.ID)
	require.NoError(t, err)

	remaining, err := client.Client.Order.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, live.ID, remaining[0].ID)
}

func TestScheduler_ClosesIdleSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedSchedulerBusiness(t, client.Client)
	ctx := context.Background()

	idle := openIdleSession(t, client.Client, business, "+15556005", time.Now().UTC().Add(-48*time.Hour))
	fresh := openIdleSession(t, client.Client, business, "+15556006", time.Now().UTC())

	s := newTestScheduler(client, nil, nil)
	s.runReaper(ctx)

	closed, err := client.Client.ChatSession.Get(ctx, idle.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StateClosed, closed.State)

	open, err := client.Client.ChatSession.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StateBotActive, open.State)
}

func TestScheduler_AdvisoryLockSkipsBusyJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Hold the completer lock from a second connection, as another replica
	// mid-pass would.
	holder, err := client.DB().Conn(ctx)
	require.NoError(t, err)
	defer holder.Close()
	var held bool
	require.NoError(t, holder.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", lockKeyCompleter).Scan(&held))
	require.True(t, held)

	s := newTestScheduler(client, nil, nil)

	ran := false
	s.withLock(ctx, lockKeyCompleter, "completer", func(context.Context) { ran = true })
	assert.False(t, ran)

	_, err = holder.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", lockKeyCompleter)
	require.NoError(t, err)

	s.withLock(ctx, lockKeyCompleter, "completer", func(context.Context) { ran = true })
	assert.True(t, ran)
}

func TestScheduler_ReleasesLockAfterPass(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	s := newTestScheduler(client, nil, nil)
	s.withLock(ctx, lockKeyReaper, "session reaper", func(context.Context) {})

	conn, err := client.DB().Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()
	var got bool
	require.NoError(t, conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", lockKeyReaper).Scan(&got))
	assert.True(t, got, "lock should be free once the pass finished")
	_, err = conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", lockKeyReaper)
	require.NoError(t, err)
}

func TestScheduler_StartRunsCatchUpPassAndStops(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedSchedulerBusiness(t, client.Client)
	ctx := context.Background()

	due := placeScheduledOrder(t, client.Client, business, "+15556007", time.Now().UTC().Add(-time.Minute))

	cfg := config.DefaultSchedulerConfig()
	cfg.CompleterInterval = time.Hour
	cfg.SessionReaperInterval = time.Hour
	s := newTestScheduler(client, cfg, nil)

	require.NoError(t, s.Start(ctx))

	require.Eventually(t, func() bool {
		o, err := client.Client.Order.Get(ctx, due.ID)
		return err == nil && o.Status == order.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)

	s.Stop()
}

func TestScheduler_StartRejectsBadCron(t *testing.T) {
	client := testdb.NewTestClient(t)

	cfg := config.DefaultSchedulerConfig()
	cfg.ArchiveCron = "not a cron"
	s := newTestScheduler(client, cfg, archive.NewMemoryStore())

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid archive cron")
}

package archive

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/order"
	"github.com/vendrahq/vendra/ent/orderitem"
	"github.com/vendrahq/vendra/ent/orderstatushistory"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

func seedArchiveBusiness(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	business, err := services.NewUserService(client).CreateUser(context.Background(), models.CreateUserRequest{
		Role:     user.RoleBusinessOwner,
		Name:     "Archive Co",
		Timezone: "UTC",
	})
	require.NoError(t, err)
	return business
}

func seedArchiveItem(t *testing.T, client *ent.Client, businessID, name, price string) *ent.Item {
	t.Helper()
	it, err := services.NewCatalogService(client).CreateItem(context.Background(), models.CreateItemRequest{
		BusinessID: businessID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return it
}

// placeOrder confirms a two-line cart for the phone and returns the order
// in accepted status.
func placeOrder(t *testing.T, client *ent.Client, business *ent.User, phone string) *ent.Order {
	t.Helper()
	ctx := context.Background()
	carts := services.NewCartService(client)
	orders := services.NewOrderService(client)

	pizza := seedArchiveItem(t, client, business.ID, "Margherita", "8.00")
	salad := seedArchiveItem(t, client, business.ID, "Caprese", "6.50")

	scope := models.CartScope{BusinessID: business.ID, OwnerUserID: business.ID, CustomerPhone: phone}
	_, err := carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: pizza.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = carts.AddLine(ctx, scope, models.AddLineRequest{ItemID: salad.ID, Quantity: 1, Notes: "no onions"})
	require.NoError(t, err)

	cart, err := carts.GetOrCreate(ctx, scope)
	require.NoError(t, err)

	confirmed, err := orders.Confirm(ctx, cart.ID, models.ConfirmOrderRequest{ChangedBy: phone})
	require.NoError(t, err)
	return confirmed
}

func completeOrder(t *testing.T, client *ent.Client, orderID string) *ent.Order {
	t.Helper()
	completed, err := services.NewOrderService(client).UpdateStatus(context.Background(), orderID, models.UpdateOrderStatusRequest{
		Status:    order.StatusCompleted,
		ChangedBy: "owner",
	})
	require.NoError(t, err)
	return completed
}

func operationalRowCounts(t *testing.T, client *ent.Client, orderID string) (orders, items, history int) {
	t.Helper()
	ctx := context.Background()
	var err error
	orders, err = client.Order.Query().Where(order.IDEQ(orderID)).Count(ctx)
	require.NoError(t, err)
	items, err = client.OrderItem.Query().Where(orderitem.OrderIDEQ(orderID)).Count(ctx)
	require.NoError(t, err)
	history, err = client.OrderStatusHistory.Query().Where(orderstatushistory.OrderIDEQ(orderID)).Count(ctx)
	require.NoError(t, err)
	return orders, items, history
}

func TestArchiver_RoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedArchiveBusiness(t, client.Client)
	store := NewMemoryStore()
	archiver := NewArchiver(client.Client, store)
	ctx := context.Background()

	placed := placeOrder(t, client.Client, business, "+15554001")
	completed := completeOrder(t, client.Client, placed.ID)

	require.NoError(t, archiver.Archive(ctx, completed.ID))

	log, err := store.Get(ctx, completed.ID)
	require.NoError(t, err)
	assert.Equal(t, completed.ID, log.OrderID)
	assert.Equal(t, business.ID, log.BusinessID)
	assert.Equal(t, "+15554001", log.CustomerPhone)
	assert.Equal(t, string(order.StatusCompleted), log.Status)
	assert.Equal(t, "22.50", log.Total)

	require.Len(t, log.Items, 2)
	assert.Equal(t, "Margherita", log.Items[0].Name)
	assert.Equal(t, 2, log.Items[0].Quantity)
	assert.Equal(t, "8.00", log.Items[0].PriceAtTime)
	assert.Equal(t, "no onions", log.Items[1].Notes)

	// Timeline preserves the full lifecycle and ends at the terminal status.
	require.Len(t, log.StatusTimeline, 2)
	assert.Equal(t, string(order.StatusAccepted), log.StatusTimeline[0].Status)
	assert.Equal(t, string(order.StatusCompleted), log.StatusTimeline[1].Status)
	assert.Equal(t, "owner", log.StatusTimeline[1].ChangedBy)

	require.NotNil(t, log.CompletedAt)
	assert.False(t, log.ArchivedAt.Before(*log.CompletedAt))

	orders, items, history := operationalRowCounts(t, client.Client, completed.ID)
	assert.Zero(t, orders)
	assert.Zero(t, items)
	assert.Zero(t, history)

	_, err = services.NewOrderService(client.Client).GetOrder(ctx, completed.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestArchiver_CancelledOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedArchiveBusiness(t, client.Client)
	store := NewMemoryStore()
	archiver := NewArchiver(client.Client, store)
	ctx := context.Background()

	placed := placeOrder(t, client.Client, business, "+15554002")
	cancelled, err := services.NewOrderService(client.Client).UpdateStatus(ctx, placed.ID, models.UpdateOrderStatusRequest{
		Status:    order.StatusCancelled,
		ChangedBy: "owner",
	})
	require.NoError(t, err)

	require.NoError(t, archiver.Archive(ctx, cancelled.ID))

	log, err := store.Get(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusCancelled), log.Status)
	require.NotNil(t, log.CancelledAt)
	assert.False(t, log.ArchivedAt.Before(*log.CancelledAt))
	assert.Equal(t, string(order.StatusCancelled), log.StatusTimeline[len(log.StatusTimeline)-1].Status)
}

func TestArchiver_Idempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedArchiveBusiness(t, client.Client)
	store := NewMemoryStore()
	archiver := NewArchiver(client.Client, store)
	ctx := context.Background()

	placed := placeOrder(t, client.Client, business, "+15554003")
	completed := completeOrder(t, client.Client, placed.ID)

	require.NoError(t, archiver.Archive(ctx, completed.ID))
	require.NoError(t, archiver.Archive(ctx, completed.ID))

	assert.Equal(t, 1, store.Len())
	orders, _, _ := operationalRowCounts(t, client.Client, completed.ID)
	assert.Zero(t, orders)
}

func TestArchiver_RefusesLiveOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedArchiveBusiness(t, client.Client)
	store := NewMemoryStore()
	archiver := NewArchiver(client.Client, store)
	ctx := context.Background()

	placed := placeOrder(t, client.Client, business, "+15554004")

	err := archiver.Archive(ctx, placed.ID)
	assert.ErrorIs(t, err, ErrNotTerminal)
	assert.Zero(t, store.Len())

	orders, items, history := operationalRowCounts(t, client.Client, placed.ID)
	assert.Equal(t, 1, orders)
	assert.Equal(t, 2, items)
	assert.Equal(t, 1, history)
}

func TestArchiver_UnknownOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	archiver := NewArchiver(client.Client, NewMemoryStore())

	err := archiver.Archive(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

// failingStore rejects every write, standing in for an unreachable cold
// store.
type failingStore struct{}

func (failingStore) Save(context.Context, *OrderLog) error { return fmt.Errorf("cold store down") }
func (failingStore) Get(context.Context, string) (*OrderLog, error) {
	return nil, ErrNotFound
}
func (failingStore) ListForBusiness(context.Context, string, int, int) ([]*OrderLog, error) {
	return nil, fmt.Errorf("cold store down")
}

func TestArchiver_ColdStoreFailureKeepsOperationalRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	business := seedArchiveBusiness(t, client.Client)
	archiver := NewArchiver(client.Client, failingStore{})
	ctx := context.Background()

	placed := placeOrder(t, client.Client, business, "+15554005")
	completed := completeOrder(t, client.Client, placed.ID)

	err := archiver.Archive(ctx, completed.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write order log")

	orders, items, history := operationalRowCounts(t, client.Client, completed.ID)
	assert.Equal(t, 1, orders)
	assert.Equal(t, 2, items)
	assert.Equal(t, 2, history)
}

func TestMemoryStore_ListForBusiness(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, &OrderLog{
			OrderID:    fmt.Sprintf("ord-a-%d", i),
			BusinessID: "biz-a",
			ArchivedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, store.Save(ctx, &OrderLog{
		OrderID:    "ord-b-1",
		BusinessID: "biz-b",
		ArchivedAt: base,
	}))

	logs, err := store.ListForBusiness(ctx, "biz-a", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "ord-a-2", logs[0].OrderID)
	assert.Equal(t, "ord-a-0", logs[2].OrderID)

	page, err := store.ListForBusiness(ctx, "biz-a", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "ord-a-1", page[0].OrderID)

	empty, err := store.ListForBusiness(ctx, "biz-a", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = store.Get(ctx, "ord-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

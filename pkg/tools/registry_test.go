package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/schedule"
	"github.com/vendrahq/vendra/pkg/services"
	testdb "github.com/vendrahq/vendra/test/database"
)

// seedBotBusiness creates a tenant that is open around the clock so tool
// flows driven by the real wall clock stay deterministic.
func seedBotBusiness(t *testing.T, client *ent.Client, businessType user.BusinessType, withReservations bool) *ent.User {
	t.Helper()
	ctx := context.Background()
	users := services.NewUserService(client)

	business, err := users.CreateUser(ctx, models.CreateUserRequest{
		Role:         user.RoleBusinessOwner,
		Name:         "Trattoria Lucia",
		BusinessType: businessType,
		Timezone:     "UTC",
	})
	require.NoError(t, err)

	if withReservations {
		_, err = users.SetAddon(ctx, models.SetAddonRequest{
			BusinessID: business.ID,
			AddonKey:   businessaddon.AddonKeyTableReservations,
			Status:     businessaddon.StatusActive,
		})
		require.NoError(t, err)
	}

	catalog := services.NewCatalogService(client)
	for day := 0; day < 7; day++ {
		_, err = catalog.UpsertOpeningHour(ctx, models.UpsertOpeningHourRequest{
			OwnerType: openinghour.OwnerTypeBusiness,
			OwnerID:   business.ID,
			DayOfWeek: day,
			OpenTime:  "00:00",
			CloseTime: "23:59",
		})
		require.NoError(t, err)
	}
	return business
}

func seedBotItem(t *testing.T, client *ent.Client, businessID, name string, price float64) *ent.Item {
	t.Helper()
	catalog := services.NewCatalogService(client)
	it, err := catalog.CreateItem(context.Background(), models.CreateItemRequest{
		BusinessID: businessID,
		Name:       name,
		Price:      decimal.NewFromFloat(price),
	})
	require.NoError(t, err)
	return it
}

func seedBotTable(t *testing.T, client *ent.Client, businessID string, number, maxSeats int) {
	t.Helper()
	catalog := services.NewCatalogService(client)
	_, err := catalog.CreateTable(context.Background(), models.CreateTableRequest{
		BusinessID:  businessID,
		OwnerUserID: businessID,
		TableNumber: number,
		MaxSeats:    maxSeats,
	})
	require.NoError(t, err)
}

func botContext(business *ent.User) *Context {
	return &Context{
		BusinessID:    business.ID,
		OwnerUserID:   business.ID,
		BusinessType:  business.BusinessType,
		CustomerPhone: "+15550001111",
		CustomerName:  "Dana",
		Platform:      chatsession.PlatformWhatsapp,
	}
}

// toolArgs builds arguments the way they arrive off the wire, so numbers
// carry JSON's float64 representation.
func toolArgs(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var args map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &args))
	return args
}

func TestRegistry_Catalog(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("full catalog for F&B with reservations addon", func(t *testing.T) {
		business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, true)
		decls, err := reg.Catalog(ctx, botContext(business))
		require.NoError(t, err)
		assert.Len(t, decls, 23)

		names := make([]string, 0, len(decls))
		for _, d := range decls {
			names = append(names, d.Name)
			assert.True(t, json.Valid(d.Parameters), "parameters of %s must be valid JSON", d.Name)
			assert.NotEmpty(t, d.Description)
		}
		assert.Equal(t, "search_menu_items", names[0])
		assert.Contains(t, names, "create_table_reservation")
		assert.Contains(t, names, "validate_reservation_request")
		assert.Contains(t, names, "parse_date_time")
	})

	t.Run("reservation tools hidden when addon inactive", func(t *testing.T) {
		business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, false)
		decls, err := reg.Catalog(ctx, botContext(business))
		require.NoError(t, err)
		assert.Len(t, decls, 19)

		for _, d := range decls {
			assert.NotContains(t, []string{
				"check_table_availability",
				"create_table_reservation",
				"cancel_reservation",
				"validate_reservation_request",
			}, d.Name)
		}
	})

	t.Run("reservation tools hidden for non-F&B business", func(t *testing.T) {
		business := seedBotBusiness(t, client.Client, user.BusinessTypeSalon, true)
		decls, err := reg.Catalog(ctx, botContext(business))
		require.NoError(t, err)
		assert.Len(t, decls, 19)
	})
}

func TestRegistry_ExecuteGuards(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg, err := NewRegistry(client.Client)
	require.NoError(t, err)
	ctx := context.Background()

	business := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, true)
	tc := botContext(business)

	t.Run("unknown tool", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "summon_waiter", nil)
		require.False(t, res.Success)
		assert.Equal(t, CodeUnknownTool, res.Error.Code)
	})

	t.Run("missing required argument", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "add_to_cart", toolArgs(t, `{}`))
		require.False(t, res.Success)
		assert.Equal(t, CodeInvalidToolArgs, res.Error.Code)
	})

	t.Run("unexpected argument", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "add_to_cart",
			toolArgs(t, `{"item_id": "itm-1", "flavor": "extra"}`))
		require.False(t, res.Success)
		assert.Equal(t, CodeInvalidToolArgs, res.Error.Code)
	})

	t.Run("wrong argument type", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "add_to_cart",
			toolArgs(t, `{"item_id": "itm-1", "quantity": "two"}`))
		require.False(t, res.Success)
		assert.Equal(t, CodeInvalidToolArgs, res.Error.Code)
	})

	t.Run("mutation without validator", func(t *testing.T) {
		res := reg.Execute(ctx, tc, NewTurnState(), "confirm_order", toolArgs(t, `{}`))
		require.False(t, res.Success)
		assert.Equal(t, CodePreconditionMissing, res.Error.Code)
		assert.Contains(t, res.Error.Message, "validate_cart_for_confirmation")
	})

	t.Run("cancellation validated for a different id", func(t *testing.T) {
		turn := NewTurnState()
		vr := reg.Execute(ctx, tc, turn, "validate_cancellation_eligibility",
			toolArgs(t, `{"order_id": "ord-a"}`))
		require.True(t, vr.Success)

		res := reg.Execute(ctx, tc, turn, "cancel_order", toolArgs(t, `{"order_id": "ord-b"}`))
		require.False(t, res.Success)
		assert.Equal(t, CodePreconditionMissing, res.Error.Code)
	})

	t.Run("reservation tool for ineligible tenant", func(t *testing.T) {
		salon := seedBotBusiness(t, client.Client, user.BusinessTypeSalon, true)
		res := reg.Execute(ctx, botContext(salon), NewTurnState(), "create_table_reservation",
			toolArgs(t, `{"date": "2030-01-01", "time": "20:00", "guests": 2}`))
		require.False(t, res.Success)
		assert.Equal(t, CodeAddonInactive, res.Error.Code)
	})

	t.Run("item of another tenant is invisible", func(t *testing.T) {
		other := seedBotBusiness(t, client.Client, user.BusinessTypeFoodAndBeverage, false)
		foreign := seedBotItem(t, client.Client, other.ID, "Forbidden Pie", 9.00)

		res := reg.Execute(ctx, tc, NewTurnState(), "get_item_details",
			toolArgs(t, fmt.Sprintf(`{"item_id": %q}`, foreign.ID)))
		require.False(t, res.Success)
		assert.Equal(t, CodeNotFound, res.Error.Code)
	})
}

func TestErrorCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"empty cart", services.ErrEmptyCart, CodeEmptyCart},
		{"insufficient stock", services.ErrInsufficientStock, CodeInsufficientStock},
		{"invalid transition", services.ErrInvalidTransition, CodeInvalidTransition},
		{"cancel deadline", services.ErrCancelDeadlinePassed, CodeCancelDeadlinePassed},
		{"slot taken", services.ErrSlotTaken, CodeSlotTaken},
		{"no tables", services.ErrNoTablesAvailable, CodeNoTablesAvailable},
		{"not found", services.ErrNotFound, CodeNotFound},
		{"forbidden", services.ErrForbidden, CodeNotAllowed},
		{"session locked", services.ErrSessionLocked, CodeNotAllowed},
		{"addon inactive", services.ErrAddonInactive, CodeAddonInactive},
		{"wrapped sentinel", fmt.Errorf("failed to create: %w", services.ErrSlotTaken), CodeSlotTaken},
		{"validation error", services.NewValidationError("quantity", "must be positive"), CodeInvalidToolArgs},
		{"schedule past", &schedule.Error{Code: schedule.CodePastDateTime, Message: "that time has passed"}, CodePastDateTime},
		{"schedule format", &schedule.Error{Code: schedule.CodeInvalidDateFormat, Message: "unparseable"}, CodeInvalidDateFormat},
		{"deadline exceeded", context.DeadlineExceeded, CodeTimeout},
		{"anything else", assert.AnError, CodeInternal},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}

func TestTurnState(t *testing.T) {
	turn := NewTurnState()
	assert.False(t, turn.has(keyCartValidated))

	turn.mark(keyCartValidated)
	assert.True(t, turn.has(keyCartValidated))

	turn.mark(cancellationKey("ord-1"))
	assert.True(t, turn.has(cancellationKey("ord-1")))
	assert.False(t, turn.has(cancellationKey("ord-2")))

	// A nil ledger never unlocks anything.
	var none *TurnState
	assert.False(t, none.has(keyCartValidated))
}


package e2e

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// Stock identities used across scenarios.
const (
	waPhoneNumberID = "155500011111" // provider-side phone_number_id
	waCustomerID    = "15550002222"  // customer wa_id (no plus, per Cloud API)
	tgBotAccountID  = "7000000001"   // Telegram bot id (webhook path segment)
)

// Tenant bundles the rows every scenario needs: a business with the
// assistant enabled, one orderable item, and a WhatsApp integration the
// webhook resolves inbound deliveries against.
type Tenant struct {
	Business    *ent.User
	Item        *ent.Item
	Integration *ent.BotIntegration
}

// seedTenant creates a food-and-beverage business open around the clock,
// activates the base bot, registers a WhatsApp integration and puts one
// pizza on the menu.
func seedTenant(t *testing.T, client *ent.Client) *Tenant {
	t.Helper()
	ctx := context.Background()

	users := services.NewUserService(client)
	business, err := users.CreateUser(ctx, models.CreateUserRequest{
		Role:         user.RoleBusinessOwner,
		Name:         "Trattoria Lucia",
		BusinessType: user.BusinessTypeFoodAndBeverage,
		Timezone:     "UTC",
	})
	require.NoError(t, err)

	_, err = users.SetAddon(ctx, models.SetAddonRequest{
		BusinessID: business.ID,
		AddonKey:   businessaddon.AddonKeyBaseBot,
		Status:     businessaddon.StatusActive,
	})
	require.NoError(t, err)

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

	item, err := catalog.CreateItem(ctx, models.CreateItemRequest{
		BusinessID:  business.ID,
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella, basil",
		Price:       decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)

	integration, err := services.NewIntegrationService(client).Upsert(ctx, models.UpsertIntegrationRequest{
		BusinessID:        business.ID,
		Platform:          botintegration.PlatformWhatsapp,
		ProviderAccountID: waPhoneNumberID,
		AccessToken:       "test-wa-token",
		VerifyToken:       testVerifyToken,
	})
	require.NoError(t, err)

	return &Tenant{Business: business, Item: item, Integration: integration}
}

// addTelegram registers a Telegram integration for the tenant so scenarios
// can exercise the second channel.
func (tn *Tenant) addTelegram(t *testing.T, client *ent.Client) *ent.BotIntegration {
	t.Helper()
	integration, err := services.NewIntegrationService(client).Upsert(context.Background(), models.UpsertIntegrationRequest{
		BusinessID:        tn.Business.ID,
		Platform:          botintegration.PlatformTelegram,
		ProviderAccountID: tgBotAccountID,
		AccessToken:       "test-tg-token",
		VerifyToken:       testVerifyToken,
	})
	require.NoError(t, err)
	return integration
}

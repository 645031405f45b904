package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/subscription"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestUserService_CreateUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates business owner", func(t *testing.T) {
		u, err := service.CreateUser(ctx, models.CreateUserRequest{
			Role:         user.RoleBusinessOwner,
			Name:         "Nino's Pizzeria",
			BusinessType: user.BusinessTypeFoodAndBeverage,
			Timezone:     "Europe/Rome",
		})
		require.NoError(t, err)
		assert.Equal(t, user.RoleBusinessOwner, u.Role)
		assert.Equal(t, "Europe/Rome", u.Timezone)
		assert.Equal(t, 2, u.DefaultCancelableBeforeHours)
		assert.True(t, u.IsActive)
	})

	t.Run("validates name required", func(t *testing.T) {
		_, err := service.CreateUser(ctx, models.CreateUserRequest{Role: user.RoleBusinessOwner})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("branch requires parent", func(t *testing.T) {
		_, err := service.CreateUser(ctx, models.CreateUserRequest{
			Role: user.RoleBranch,
			Name: "Downtown",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("parent must be a business owner", func(t *testing.T) {
		owner := seedBusiness(t, client.Client, "Parent Co")
		branch := seedBranch(t, client.Client, owner.ID, "Branch One")

		_, err := service.CreateUser(ctx, models.CreateUserRequest{
			Role:         user.RoleEmployee,
			ParentUserID: branch.ID,
			Name:         "Nested",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects bogus timezone", func(t *testing.T) {
		_, err := service.CreateUser(ctx, models.CreateUserRequest{
			Role:     user.RoleBusinessOwner,
			Name:     "Tz Test",
			Timezone: "Mars/Olympus",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_ResolveBusiness(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	owner := seedBusiness(t, client.Client, "Resolver Co")
	branch := seedBranch(t, client.Client, owner.ID, "East Side")

	t.Run("owner resolves to itself", func(t *testing.T) {
		got, err := service.ResolveBusiness(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.ID)
	})

	t.Run("branch resolves to parent", func(t *testing.T) {
		got, err := service.ResolveBusiness(ctx, branch.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.ID)
	})

	t.Run("admin has no tenant", func(t *testing.T) {
		admin, err := service.CreateUser(ctx, models.CreateUserRequest{
			Role: user.RoleAdmin,
			Name: "Platform Admin",
		})
		require.NoError(t, err)

		_, err = service.ResolveBusiness(ctx, admin.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.ResolveBusiness(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_Addons(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Addon Co")

	t.Run("set creates the flag", func(t *testing.T) {
		addon, err := service.SetAddon(ctx, models.SetAddonRequest{
			BusinessID: business.ID,
			AddonKey:   businessaddon.AddonKeyBaseBot,
			Status:     businessaddon.StatusActive,
		})
		require.NoError(t, err)
		assert.Equal(t, businessaddon.StatusActive, addon.Status)

		active, err := service.IsAddonActive(ctx, business.ID, businessaddon.AddonKeyBaseBot)
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("set again updates in place", func(t *testing.T) {
		price := decimal.RequireFromString("19.90")
		_, err := service.SetAddon(ctx, models.SetAddonRequest{
			BusinessID:    business.ID,
			AddonKey:      businessaddon.AddonKeyBaseBot,
			Status:        businessaddon.StatusInactive,
			PriceOverride: &price,
		})
		require.NoError(t, err)

		active, err := service.IsAddonActive(ctx, business.ID, businessaddon.AddonKeyBaseBot)
		require.NoError(t, err)
		assert.False(t, active)

		addons, err := service.ListAddons(ctx, business.ID)
		require.NoError(t, err)
		require.Len(t, addons, 1)
		assert.True(t, addons[0].PriceOverride.Equal(price))
	})

	t.Run("unset addon is inactive", func(t *testing.T) {
		active, err := service.IsAddonActive(ctx, business.ID, businessaddon.AddonKeyTableReservations)
		require.NoError(t, err)
		assert.False(t, active)
	})
}

func TestUserService_Subscriptions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Sub Co")

	active, err := service.HasActiveSubscription(ctx, business.ID)
	require.NoError(t, err)
	assert.False(t, active)

	periodEnd := time.Now().Add(30 * 24 * time.Hour)
	_, err = service.SetSubscription(ctx, business.ID, subscription.PlanStarter, subscription.StatusActive, &periodEnd)
	require.NoError(t, err)

	active, err = service.HasActiveSubscription(ctx, business.ID)
	require.NoError(t, err)
	assert.True(t, active)

	// Upsert flips the same row rather than creating a second one
	_, err = service.SetSubscription(ctx, business.ID, subscription.PlanStarter, subscription.StatusPastDue, nil)
	require.NoError(t, err)

	active, err = service.HasActiveSubscription(ctx, business.ID)
	require.NoError(t, err)
	assert.False(t, active)
}

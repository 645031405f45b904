package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/pkg/models"
	testdb "github.com/vendrahq/vendra/test/database"
)

func TestIntegrationService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIntegrationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Channel Co")

	t.Run("creates integration", func(t *testing.T) {
		integration, err := service.Upsert(ctx, models.UpsertIntegrationRequest{
			BusinessID:        business.ID,
			Platform:          botintegration.PlatformWhatsapp,
			ProviderAccountID: "wa-100",
			AccessToken:       "token-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "wa-100", integration.ProviderAccountID)
		assert.True(t, integration.IsActive)
	})

	t.Run("second upsert rotates credentials in place", func(t *testing.T) {
		integration, err := service.Upsert(ctx, models.UpsertIntegrationRequest{
			BusinessID:        business.ID,
			Platform:          botintegration.PlatformWhatsapp,
			ProviderAccountID: "wa-100",
			AccessToken:       "token-2",
		})
		require.NoError(t, err)
		assert.Equal(t, "token-2", integration.AccessToken)

		all, err := service.ListForBusiness(ctx, business.ID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("provider account is exclusive across tenants", func(t *testing.T) {
		other := seedBusiness(t, client.Client, "Rival Co")
		_, err := service.Upsert(ctx, models.UpsertIntegrationRequest{
			BusinessID:        other.ID,
			Platform:          botintegration.PlatformWhatsapp,
			ProviderAccountID: "wa-100",
			AccessToken:       "token-3",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.Upsert(ctx, models.UpsertIntegrationRequest{
			Platform:          botintegration.PlatformWhatsapp,
			ProviderAccountID: "wa-200",
			AccessToken:       "t",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestIntegrationService_ResolveInbound(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIntegrationService(client.Client)
	ctx := context.Background()

	business := seedBusiness(t, client.Client, "Inbound Co")
	integration, err := service.Upsert(ctx, models.UpsertIntegrationRequest{
		BusinessID:        business.ID,
		Platform:          botintegration.PlatformTelegram,
		ProviderAccountID: "tg-bot-7",
		AccessToken:       "tok",
	})
	require.NoError(t, err)

	t.Run("resolves active integration", func(t *testing.T) {
		got, err := service.ResolveInbound(ctx, botintegration.PlatformTelegram, "tg-bot-7")
		require.NoError(t, err)
		assert.Equal(t, business.ID, got.BusinessID)
	})

	t.Run("unknown provider account", func(t *testing.T) {
		_, err := service.ResolveInbound(ctx, botintegration.PlatformTelegram, "tg-bot-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("inactive integration does not resolve", func(t *testing.T) {
		err := service.SetActive(ctx, integration.ID, false)
		require.NoError(t, err)

		_, err = service.ResolveInbound(ctx, botintegration.PlatformTelegram, "tg-bot-7")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/pkg/models"
)

// IntegrationService manages per-tenant channel integrations and resolves
// inbound webhook deliveries to their tenant.
type IntegrationService struct {
	client *ent.Client
}

// NewIntegrationService creates a new IntegrationService
func NewIntegrationService(client *ent.Client) *IntegrationService {
	return &IntegrationService{client: client}
}

// Upsert creates a channel integration for a tenant, or rotates the
// credentials of the existing one for that (business, platform) pair.
func (s *IntegrationService) Upsert(ctx context.Context, req models.UpsertIntegrationRequest) (*ent.BotIntegration, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.Platform == "" {
		return nil, NewValidationError("platform", "required")
	}
	if req.ProviderAccountID == "" {
		return nil, NewValidationError("provider_account_id", "required")
	}
	if req.AccessToken == "" {
		return nil, NewValidationError("access_token", "required")
	}

	existing, err := s.client.BotIntegration.Query().
		Where(
			botintegration.BusinessIDEQ(req.BusinessID),
			botintegration.PlatformEQ(req.Platform),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query integration: %w", err)
	}

	if existing != nil {
		update := existing.Update().
			SetProviderAccountID(req.ProviderAccountID).
			SetAccessToken(req.AccessToken).
			SetIsActive(true)
		if req.VerifyToken != "" {
			update.SetVerifyToken(req.VerifyToken)
		}
		integration, err := update.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to update integration: %w", err)
		}
		return integration, nil
	}

	builder := s.client.BotIntegration.Create().
		SetID(uuid.New().String()).
		SetBusinessID(req.BusinessID).
		SetPlatform(req.Platform).
		SetProviderAccountID(req.ProviderAccountID).
		SetAccessToken(req.AccessToken)
	if req.VerifyToken != "" {
		builder.SetVerifyToken(req.VerifyToken)
	}

	integration, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another tenant already claimed this provider account
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create integration: %w", err)
	}
	return integration, nil
}

// ResolveInbound resolves a webhook delivery to the active integration
// registered for (platform, provider account).
func (s *IntegrationService) ResolveInbound(ctx context.Context, platform botintegration.Platform, providerAccountID string) (*ent.BotIntegration, error) {
	integration, err := s.client.BotIntegration.Query().
		Where(
			botintegration.PlatformEQ(platform),
			botintegration.ProviderAccountIDEQ(providerAccountID),
			botintegration.IsActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve integration: %w", err)
	}
	return integration, nil
}

// MatchVerifyToken reports whether any active integration on the platform
// carries this verify token. Meta webhook verification sends only the token,
// not the account id, so the lookup is token-first.
func (s *IntegrationService) MatchVerifyToken(ctx context.Context, platform botintegration.Platform, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	n, err := s.client.BotIntegration.Query().
		Where(
			botintegration.PlatformEQ(platform),
			botintegration.VerifyTokenEQ(token),
			botintegration.IsActiveEQ(true),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to match verify token: %w", err)
	}
	return n > 0, nil
}

// GetForBusiness returns the tenant's integration for one platform
func (s *IntegrationService) GetForBusiness(ctx context.Context, businessID string, platform botintegration.Platform) (*ent.BotIntegration, error) {
	integration, err := s.client.BotIntegration.Query().
		Where(
			botintegration.BusinessIDEQ(businessID),
			botintegration.PlatformEQ(platform),
			botintegration.IsActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get integration: %w", err)
	}
	return integration, nil
}

// Get returns one integration by id
func (s *IntegrationService) Get(ctx context.Context, integrationID string) (*ent.BotIntegration, error) {
	integration, err := s.client.BotIntegration.Get(ctx, integrationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get integration: %w", err)
	}
	return integration, nil
}

// ListForBusiness lists a tenant's channel integrations
func (s *IntegrationService) ListForBusiness(ctx context.Context, businessID string) ([]*ent.BotIntegration, error) {
	integrations, err := s.client.BotIntegration.Query().
		Where(botintegration.BusinessIDEQ(businessID)).
		Order(ent.Asc(botintegration.FieldPlatform)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}
	return integrations, nil
}

// SetActive enables or disables an integration
func (s *IntegrationService) SetActive(ctx context.Context, integrationID string, active bool) error {
	err := s.client.BotIntegration.UpdateOneID(integrationID).
		SetIsActive(active).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update integration: %w", err)
	}
	return nil
}

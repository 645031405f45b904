package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/subscription"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
)

// UserService manages platform principals (admin, business owners, branches,
// employees), tenant addon flags, and subscriptions.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// CreateUser creates a new principal
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*ent.User, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.Role == user.RoleBranch || req.Role == user.RoleEmployee {
		if req.ParentUserID == "" {
			return nil, NewValidationError("parent_user_id", "required for branch and employee principals")
		}
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, NewValidationError("timezone", "not a valid IANA zone")
		}
	}

	builder := s.client.User.Create().
		SetID(uuid.New().String()).
		SetRole(req.Role).
		SetName(req.Name)

	if req.ParentUserID != "" {
		// Parent must exist and be a business owner
		parent, err := s.GetUser(ctx, req.ParentUserID)
		if err != nil {
			return nil, err
		}
		if parent.Role != user.RoleBusinessOwner {
			return nil, NewValidationError("parent_user_id", "must reference a business owner")
		}
		builder.SetParentUserID(req.ParentUserID)
	}
	if req.Email != "" {
		builder.SetEmail(req.Email)
	}
	if req.PhoneNumber != "" {
		builder.SetPhoneNumber(req.PhoneNumber)
	}
	if req.BusinessType != "" {
		builder.SetBusinessType(req.BusinessType)
	}
	if req.Timezone != "" {
		builder.SetTimezone(req.Timezone)
	}
	if req.Language != "" {
		builder.SetLanguage(req.Language)
	}
	if req.DefaultCancelableBeforeHours != nil {
		builder.SetDefaultCancelableBeforeHours(*req.DefaultCancelableBeforeHours)
	}
	if req.PlaybookURL != "" {
		builder.SetPlaybookURL(req.PlaybookURL)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetUser retrieves a principal by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Query().Where(user.IDEQ(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UpdateUser applies the non-nil fields of the request to a principal
func (s *UserService) UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) (*ent.User, error) {
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, NewValidationError("timezone", "not a valid IANA zone")
		}
	}

	update := s.client.User.UpdateOneID(userID)
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Email != nil {
		update.SetEmail(*req.Email)
	}
	if req.PhoneNumber != nil {
		update.SetPhoneNumber(*req.PhoneNumber)
	}
	if req.Timezone != nil {
		update.SetTimezone(*req.Timezone)
	}
	if req.Language != nil {
		update.SetLanguage(*req.Language)
	}
	if req.DefaultCancelableBeforeHours != nil {
		update.SetDefaultCancelableBeforeHours(*req.DefaultCancelableBeforeHours)
	}
	if req.PlaybookURL != nil {
		update.SetPlaybookURL(*req.PlaybookURL)
	}
	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}

	u, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// ListUsers lists principals with filtering and pagination
func (s *UserService) ListUsers(ctx context.Context, filters models.UserFilters) (*models.UserListResponse, error) {
	query := s.client.User.Query()

	if filters.Role != "" {
		query = query.Where(user.RoleEQ(filters.Role))
	}
	if filters.ParentUserID != "" {
		query = query.Where(user.ParentUserIDEQ(filters.ParentUserID))
	}
	if filters.IsActive != nil {
		query = query.Where(user.IsActiveEQ(*filters.IsActive))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	users, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &models.UserListResponse{
		Users:      users,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ResolveBusiness resolves the tenant a principal belongs to: a business
// owner resolves to itself, branches and employees to their parent.
func (s *UserService) ResolveBusiness(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch u.Role {
	case user.RoleBusinessOwner:
		return u, nil
	case user.RoleBranch, user.RoleEmployee:
		if u.ParentUserID == nil || *u.ParentUserID == "" {
			return nil, ErrNotFound
		}
		return s.GetUser(ctx, *u.ParentUserID)
	default:
		// Admins do not belong to a tenant
		return nil, ErrNotFound
	}
}

// ListBranches lists the branch principals under a business
func (s *UserService) ListBranches(ctx context.Context, businessID string) ([]*ent.User, error) {
	branches, err := s.client.User.Query().
		Where(
			user.ParentUserIDEQ(businessID),
			user.RoleEQ(user.RoleBranch),
		).
		Order(ent.Asc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

// SetAddon creates or updates a tenant capability flag
func (s *UserService) SetAddon(ctx context.Context, req models.SetAddonRequest) (*ent.BusinessAddon, error) {
	if req.BusinessID == "" {
		return nil, NewValidationError("business_id", "required")
	}
	if req.AddonKey == "" {
		return nil, NewValidationError("addon_key", "required")
	}
	status := req.Status
	if status == "" {
		status = businessaddon.StatusActive
	}

	existing, err := s.client.BusinessAddon.Query().
		Where(
			businessaddon.BusinessIDEQ(req.BusinessID),
			businessaddon.AddonKeyEQ(req.AddonKey),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query addon: %w", err)
	}

	if existing != nil {
		update := existing.Update().SetStatus(status)
		if req.PriceOverride != nil {
			update.SetPriceOverride(*req.PriceOverride)
		}
		addon, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update addon: %w", err)
		}
		return addon, nil
	}

	builder := s.client.BusinessAddon.Create().
		SetID(uuid.New().String()).
		SetBusinessID(req.BusinessID).
		SetAddonKey(req.AddonKey).
		SetStatus(status)
	if req.PriceOverride != nil {
		builder.SetPriceOverride(*req.PriceOverride)
	}

	addon, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create addon: %w", err)
	}
	return addon, nil
}

// ListAddons lists a tenant's capability flags
func (s *UserService) ListAddons(ctx context.Context, businessID string) ([]*ent.BusinessAddon, error) {
	addons, err := s.client.BusinessAddon.Query().
		Where(businessaddon.BusinessIDEQ(businessID)).
		Order(ent.Asc(businessaddon.FieldAddonKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addons: %w", err)
	}
	return addons, nil
}

// IsAddonActive reports whether a tenant capability flag is active
func (s *UserService) IsAddonActive(ctx context.Context, businessID string, key businessaddon.AddonKey) (bool, error) {
	active, err := s.client.BusinessAddon.Query().
		Where(
			businessaddon.BusinessIDEQ(businessID),
			businessaddon.AddonKeyEQ(key),
			businessaddon.StatusEQ(businessaddon.StatusActive),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query addon: %w", err)
	}
	return active, nil
}

// SetSubscription creates or updates a tenant's subscription
func (s *UserService) SetSubscription(ctx context.Context, businessID string, plan subscription.Plan, status subscription.Status, periodEnd *time.Time) (*ent.Subscription, error) {
	if businessID == "" {
		return nil, NewValidationError("business_id", "required")
	}

	existing, err := s.client.Subscription.Query().
		Where(subscription.BusinessIDEQ(businessID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query subscription: %w", err)
	}

	if existing != nil {
		update := existing.Update().SetPlan(plan).SetStatus(status)
		if periodEnd != nil {
			update.SetCurrentPeriodEnd(*periodEnd)
		}
		sub, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update subscription: %w", err)
		}
		return sub, nil
	}

	builder := s.client.Subscription.Create().
		SetID(uuid.New().String()).
		SetBusinessID(businessID).
		SetPlan(plan).
		SetStatus(status)
	if periodEnd != nil {
		builder.SetCurrentPeriodEnd(*periodEnd)
	}

	sub, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

// HasActiveSubscription reports whether the tenant's subscription is active
func (s *UserService) HasActiveSubscription(ctx context.Context, businessID string) (bool, error) {
	active, err := s.client.Subscription.Query().
		Where(
			subscription.BusinessIDEQ(businessID),
			subscription.StatusEQ(subscription.StatusActive),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query subscription: %w", err)
	}
	return active, nil
}

// Package models contains request/response models and business domain types.
package models

import (
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/businessaddon"
	"github.com/vendrahq/vendra/ent/user"
)

// CreateUserRequest contains fields for creating a platform principal.
type CreateUserRequest struct {
	Role                         user.Role         `json:"role"`
	ParentUserID                 string            `json:"parent_user_id,omitempty"`
	Name                         string            `json:"name"`
	Email                        string            `json:"email,omitempty"`
	PhoneNumber                  string            `json:"phone_number,omitempty"`
	BusinessType                 user.BusinessType `json:"business_type,omitempty"`
	Timezone                     string            `json:"timezone,omitempty"`
	Language                     string            `json:"language,omitempty"`
	DefaultCancelableBeforeHours *int              `json:"default_cancelable_before_hours,omitempty"`
	PlaybookURL                  string            `json:"playbook_url,omitempty"`
}

// UpdateUserRequest contains the mutable fields of a principal. Nil pointers
// leave the stored value untouched.
type UpdateUserRequest struct {
	Name                         *string `json:"name,omitempty"`
	Email                        *string `json:"email,omitempty"`
	PhoneNumber                  *string `json:"phone_number,omitempty"`
	Timezone                     *string `json:"timezone,omitempty"`
	Language                     *string `json:"language,omitempty"`
	DefaultCancelableBeforeHours *int    `json:"default_cancelable_before_hours,omitempty"`
	PlaybookURL                  *string `json:"playbook_url,omitempty"`
	IsActive                     *bool   `json:"is_active,omitempty"`
}

// UserFilters contains filtering options for listing principals.
type UserFilters struct {
	Role         user.Role `json:"role,omitempty"`
	ParentUserID string    `json:"parent_user_id,omitempty"`
	IsActive     *bool     `json:"is_active,omitempty"`
	Limit        int       `json:"limit,omitempty"`
	Offset       int       `json:"offset,omitempty"`
}

// UserListResponse contains a paginated principal list.
type UserListResponse struct {
	Users      []*ent.User `json:"users"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// SetAddonRequest toggles a tenant capability flag.
type SetAddonRequest struct {
	BusinessID    string                 `json:"business_id"`
	AddonKey      businessaddon.AddonKey `json:"addon_key"`
	Status        businessaddon.Status   `json:"status"`
	PriceOverride *decimal.Decimal       `json:"price_override,omitempty"`
}

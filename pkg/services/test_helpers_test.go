package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vendrahq/vendra/ent"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
)

// seedBusiness creates a business owner principal for tests
func seedBusiness(t *testing.T, client *ent.Client, name string) *ent.User {
	t.Helper()
	u, err := NewUserService(client).CreateUser(context.Background(), models.CreateUserRequest{
		Role:     user.RoleBusinessOwner,
		Name:     name,
		Timezone: "UTC",
	})
	require.NoError(t, err)
	return u
}

// seedBranch creates a branch principal under a business
func seedBranch(t *testing.T, client *ent.Client, businessID, name string) *ent.User {
	t.Helper()
	u, err := NewUserService(client).CreateUser(context.Background(), models.CreateUserRequest{
		Role:         user.RoleBranch,
		ParentUserID: businessID,
		Name:         name,
	})
	require.NoError(t, err)
	return u
}

// seedItem creates an available business-wide catalog item
func seedItem(t *testing.T, client *ent.Client, businessID, name, price string) *ent.Item {
	t.Helper()
	it, err := NewCatalogService(client).CreateItem(context.Background(), models.CreateItemRequest{
		BusinessID: businessID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return it
}

// seedTable creates an active dining table
func seedTable(t *testing.T, client *ent.Client, businessID, ownerID string, number, maxSeats int) *ent.Table {
	t.Helper()
	tab, err := NewCatalogService(client).CreateTable(context.Background(), models.CreateTableRequest{
		BusinessID:  businessID,
		OwnerUserID: ownerID,
		TableNumber: number,
		MaxSeats:    maxSeats,
	})
	require.NoError(t, err)
	return tab
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

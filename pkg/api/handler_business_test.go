package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent/botintegration"
)

func TestBusinessLifecycle(t *testing.T) {
	env := newTestEnv(t)
	adminToken := mintToken(t, "root", "admin")

	var created struct {
		ID   string `json:"id"`
		Role string `json:"role"`
		Name string `json:"name"`
	}

	t.Run("admin creates a business", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/businesses", adminToken, map[string]any{
			"name":     "Casa Verde",
			"timezone": "Europe/Berlin",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		decodeData(t, rec, &created)
		assert.Equal(t, "business_owner", created.Role)
		assert.Equal(t, "Casa Verde", created.Name)
	})

	t.Run("owner reads itself", func(t *testing.T) {
		token := mintToken(t, created.ID, "business")
		rec := env.do(t, http.MethodGet, "/api/v1/businesses/"+created.ID, token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("owner cannot read another tenant", func(t *testing.T) {
		other := seedAPIBusiness(t, env.client, "Other Place")
		token := mintToken(t, created.ID, "business")
		rec := env.do(t, http.MethodGet, "/api/v1/businesses/"+other.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, errorCode(t, rec))
	})

	t.Run("owner cannot deactivate itself", func(t *testing.T) {
		token := mintToken(t, created.ID, "business")
		rec := env.do(t, http.MethodPatch, "/api/v1/businesses/"+created.ID, token, map[string]any{
			"name":      "Casa Verde II",
			"is_active": false,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated struct {
			Name     string `json:"name"`
			IsActive bool   `json:"is_active"`
		}
		decodeData(t, rec, &updated)
		assert.Equal(t, "Casa Verde II", updated.Name)
		assert.True(t, updated.IsActive)
	})

	t.Run("subscription is admin-only", func(t *testing.T) {
		token := mintToken(t, created.ID, "business")
		rec := env.do(t, http.MethodPut, "/api/v1/businesses/"+created.ID+"/subscription", token, map[string]any{
			"plan": "pro", "status": "active",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = env.do(t, http.MethodPut, "/api/v1/businesses/"+created.ID+"/subscription", adminToken, map[string]any{
			"plan": "pro", "status": "active",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var sub struct {
			Plan string `json:"plan"`
		}
		decodeData(t, rec, &sub)
		assert.Equal(t, "pro", sub.Plan)
	})
}

func TestBranchesAndIntegrations(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Crust & Co")
	other := seedAPIBusiness(t, env.client, "Rival Eats")
	bizToken := mintToken(t, biz.ID, "business")

	t.Run("branch is pinned under the caller", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/branches", bizToken, map[string]any{
			"name": "Crust & Co Nord",
			// Owner field in the body must not let a tenant escape itself.
			"parent_user_id": other.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var branch struct {
			ID           string `json:"id"`
			ParentUserID string `json:"parent_user_id"`
			Role         string `json:"role"`
		}
		decodeData(t, rec, &branch)
		assert.Equal(t, biz.ID, branch.ParentUserID)
		assert.Equal(t, "branch", branch.Role)

		list := env.do(t, http.MethodGet, "/api/v1/branches", bizToken, nil)
		require.Equal(t, http.StatusOK, list.Code)
		var branches []struct {
			ID string `json:"id"`
		}
		decodeData(t, list, &branches)
		require.Len(t, branches, 1)
		assert.Equal(t, branch.ID, branches[0].ID)
	})

	t.Run("integration upsert is pinned to the caller", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/integrations", bizToken, map[string]any{
			"business_id":         other.ID,
			"platform":            "whatsapp",
			"provider_account_id": "15559990000",
			"access_token":        "tok-1",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var integration struct {
			ID         string `json:"id"`
			BusinessID string `json:"business_id"`
		}
		decodeData(t, rec, &integration)
		assert.Equal(t, biz.ID, integration.BusinessID)
	})

	t.Run("activation toggle respects tenancy", func(t *testing.T) {
		foreign := seedAPIIntegration(t, env.client, other.ID, botintegration.PlatformTelegram, "tg-rival")

		rec := env.do(t, http.MethodPatch, "/api/v1/integrations/"+foreign.ID+"/active", bizToken, map[string]any{
			"active": false,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		otherToken := mintToken(t, other.ID, "business")
		rec = env.do(t, http.MethodPatch, "/api/v1/integrations/"+foreign.ID+"/active", otherToken, map[string]any{
			"active": false,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

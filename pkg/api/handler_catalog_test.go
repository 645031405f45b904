package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemJSON struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
}

func TestItemEndpoints(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Dolce Forno")
	other := seedAPIBusiness(t, env.client, "Pane e Vino")
	token := mintToken(t, biz.ID, roleBusiness)
	otherToken := mintToken(t, other.ID, roleBusiness)

	var created itemJSON
	t.Run("create pins the tenant", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/items", token, gin.H{
			"business_id": other.ID, // ignored for non-admins
			"name":        "Tiramisu",
			"price":       "6.50",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		decodeData(t, rec, &created)
		assert.Equal(t, biz.ID, created.BusinessID)
		assert.Equal(t, biz.ID, created.OwnerUserID)
	})

	t.Run("foreign tenant cannot touch it", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/items/"+created.ID, otherToken,
			gin.H{"name": "Hijacked"})
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodDelete, "/api/v1/items/"+created.ID, otherToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})

	t.Run("update own item", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/v1/items/"+created.ID, token,
			gin.H{"price": "7.00", "description": "With amaretto"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("soft delete hides from listings", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/v1/items/"+created.ID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/api/v1/items", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var list struct {
			Items      []itemJSON `json:"items"`
			TotalCount int        `json:"total_count"`
		}
		decodeData(t, rec, &list)
		assert.Zero(t, list.TotalCount)

		// include_deleted is an admin-only escape hatch.
		rec = env.do(t, http.MethodGet, "/api/v1/items?include_deleted=true", token, nil)
		decodeData(t, rec, &list)
		assert.Zero(t, list.TotalCount)

		rec = env.do(t, http.MethodGet,
			"/api/v1/items?include_deleted=true&owner_id="+biz.ID, mintToken(t, "root", roleAdmin), nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		decodeData(t, rec, &list)
		assert.Equal(t, 1, list.TotalCount)
	})
}

func TestMenuEndpoints(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Green Bowl")
	token := mintToken(t, biz.ID, roleBusiness)

	var menuID string
	t.Run("create", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/menus", token, gin.H{"name": "Lunch"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var menu struct {
			ID       string `json:"id"`
			IsActive bool   `json:"is_active"`
		}
		decodeData(t, rec, &menu)
		assert.True(t, menu.IsActive)
		menuID = menu.ID
	})

	t.Run("deactivate drops it from the default list", func(t *testing.T) {
		active := false
		rec := env.do(t, http.MethodPatch, "/api/v1/menus/"+menuID, token, gin.H{"is_active": active})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var menus []struct {
			ID string `json:"id"`
		}
		rec = env.do(t, http.MethodGet, "/api/v1/menus", token, nil)
		decodeData(t, rec, &menus)
		assert.Empty(t, menus)

		rec = env.do(t, http.MethodGet, "/api/v1/menus?include_inactive=true", token, nil)
		decodeData(t, rec, &menus)
		require.Len(t, menus, 1)
		assert.Equal(t, menuID, menus[0].ID)
	})
}

func TestOpeningHourEndpoints(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Kiosk 24")
	other := seedAPIBusiness(t, env.client, "Spaeti Nord")
	token := mintToken(t, biz.ID, roleBusiness)

	t.Run("upsert replaces the same day", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/v1/opening-hours", token, gin.H{
			"owner_type":  "business",
			"owner_id":    biz.ID,
			"day_of_week": 1,
			"open_time":   "09:00",
			"close_time":  "18:00",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodPut, "/api/v1/opening-hours", token, gin.H{
			"owner_type":  "business",
			"owner_id":    biz.ID,
			"day_of_week": 1,
			"open_time":   "10:00",
			"close_time":  "20:00",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/api/v1/opening-hours", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var hours []struct {
			DayOfWeek int     `json:"day_of_week"`
			OpenTime  *string `json:"open_time,omitempty"`
		}
		decodeData(t, rec, &hours)
		require.Len(t, hours, 1)
		require.NotNil(t, hours[0].OpenTime)
		assert.Equal(t, "10:00", *hours[0].OpenTime)
	})

	t.Run("cannot write another tenant's hours", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/v1/opening-hours", token, gin.H{
			"owner_type":  "business",
			"owner_id":    other.ID,
			"day_of_week": 2,
			"open_time":   "09:00",
			"close_time":  "18:00",
		})
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})

	t.Run("admin list needs an explicit owner", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/opening-hours", mintToken(t, "root", roleAdmin), nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Equal(t, codeInvalidRequest, errorCode(t, rec))
	})
}

func TestTableEndpoints(t *testing.T) {
	env := newTestEnv(t)
	biz := seedAPIBusiness(t, env.client, "Ramen Ya")
	token := mintToken(t, biz.ID, roleBusiness)

	var tableID string
	t.Run("owner defaults to the business", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/tables", token, gin.H{
			"table_number": 7,
			"max_seats":    4,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var table struct {
			ID          string `json:"id"`
			OwnerUserID string `json:"owner_user_id"`
			TableNumber int    `json:"table_number"`
		}
		decodeData(t, rec, &table)
		assert.Equal(t, biz.ID, table.OwnerUserID)
		assert.Equal(t, 7, table.TableNumber)
		tableID = table.ID
	})

	t.Run("duplicate number conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/tables", token, gin.H{
			"table_number": 7,
			"max_seats":    2,
		})
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
		assert.Equal(t, codeAlreadyExists, errorCode(t, rec))
	})

	t.Run("retire a table", func(t *testing.T) {
		active := false
		rec := env.do(t, http.MethodPatch, "/api/v1/tables/"+tableID, token, gin.H{"is_active": active})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var table struct {
			IsActive bool `json:"is_active"`
		}
		decodeData(t, rec, &table)
		assert.False(t, table.IsActive)

		// Retired tables leave the bookable pool.
		rec = env.do(t, http.MethodGet, "/api/v1/tables", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var tables []struct {
			ID string `json:"id"`
		}
		decodeData(t, rec, &tables)
		assert.Empty(t, tables)
	})
}

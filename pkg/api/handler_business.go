package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/ent/subscription"
	"github.com/vendrahq/vendra/ent/user"
	"github.com/vendrahq/vendra/pkg/models"
)

// listParams pulls limit/offset from the query string. Services clamp the
// values, so garbage degrades to defaults instead of erroring.
func listParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	return limit, offset
}

// requireTenant verifies the caller may act on businessID. Cross-tenant
// access answers 404 so resource existence does not leak.
func (s *Server) requireTenant(c *gin.Context, businessID string) bool {
	p := currentPrincipal(c)
	if p.IsAdmin() {
		return true
	}
	biz, err := s.users.ResolveBusiness(c.Request.Context(), p.UserID)
	if err != nil {
		mapServiceError(c, err)
		return false
	}
	if biz.ID != businessID {
		respondError(c, http.StatusNotFound, codeNotFound, "resource not found")
		return false
	}
	return true
}

// createBusinessHandler handles POST /api/v1/businesses.
func (s *Server) createBusinessHandler(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	req.Role = user.RoleBusinessOwner
	req.ParentUserID = ""

	u, err := s.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, u)
}

// listBusinessesHandler handles GET /api/v1/businesses.
func (s *Server) listBusinessesHandler(c *gin.Context) {
	limit, offset := listParams(c)
	result, err := s.users.ListUsers(c.Request.Context(), models.UserFilters{
		Role:   user.RoleBusinessOwner,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

// getBusinessHandler handles GET /api/v1/businesses/:id.
func (s *Server) getBusinessHandler(c *gin.Context) {
	businessID := c.Param("id")
	if !s.requireTenant(c, businessID) {
		return
	}
	u, err := s.users.GetUser(c.Request.Context(), businessID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, u)
}

// updateBusinessHandler handles PATCH /api/v1/businesses/:id.
func (s *Server) updateBusinessHandler(c *gin.Context) {
	businessID := c.Param("id")
	if !s.requireTenant(c, businessID) {
		return
	}
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	// Only platform admins can deactivate a tenant.
	if !currentPrincipal(c).IsAdmin() {
		req.IsActive = nil
	}
	u, err := s.users.UpdateUser(c.Request.Context(), businessID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, u)
}

// SetSubscriptionRequest is the body of PUT /businesses/:id/subscription.
type SetSubscriptionRequest struct {
	Plan      subscription.Plan   `json:"plan"`
	Status    subscription.Status `json:"status"`
	PeriodEnd *time.Time          `json:"period_end,omitempty"`
}

// setSubscriptionHandler handles PUT /api/v1/businesses/:id/subscription.
func (s *Server) setSubscriptionHandler(c *gin.Context) {
	businessID := c.Param("id")
	var req SetSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	sub, err := s.users.SetSubscription(c.Request.Context(), businessID, req.Plan, req.Status, req.PeriodEnd)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, sub)
}

// createBranchHandler handles POST /api/v1/branches. Business principals
// create branches under themselves; admins pick the parent in the body.
func (s *Server) createBranchHandler(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	req.Role = user.RoleBranch
	if !currentPrincipal(c).IsAdmin() {
		tenant, err := s.resolveTenant(c)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		req.ParentUserID = tenant
	}

	u, err := s.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, u)
}

// listBranchesHandler handles GET /api/v1/branches.
func (s *Server) listBranchesHandler(c *gin.Context) {
	tenant, err := s.resolveTenantUser(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	branches, err := s.users.ListBranches(c.Request.Context(), tenant.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, branches)
}

// setAddonHandler handles POST /api/v1/addons.
func (s *Server) setAddonHandler(c *gin.Context) {
	var req models.SetAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	addon, err := s.users.SetAddon(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, addon)
}

// listAddonsHandler handles GET /api/v1/addons.
func (s *Server) listAddonsHandler(c *gin.Context) {
	tenant, err := s.resolveTenantUser(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	addons, err := s.users.ListAddons(c.Request.Context(), tenant.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, addons)
}

// upsertIntegrationHandler handles POST /api/v1/integrations.
func (s *Server) upsertIntegrationHandler(c *gin.Context) {
	var req models.UpsertIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	if !currentPrincipal(c).IsAdmin() {
		tenant, err := s.resolveTenant(c)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		req.BusinessID = tenant
	}

	integration, err := s.integrations.Upsert(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, integration)
}

// listIntegrationsHandler handles GET /api/v1/integrations.
func (s *Server) listIntegrationsHandler(c *gin.Context) {
	tenant, err := s.resolveTenantUser(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	integrations, err := s.integrations.ListForBusiness(c.Request.Context(), tenant.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, integrations)
}

// SetIntegrationActiveRequest is the body of PATCH /integrations/:id/active.
type SetIntegrationActiveRequest struct {
	Active *bool `json:"active"`
}

// setIntegrationActiveHandler handles PATCH /api/v1/integrations/:id/active.
func (s *Server) setIntegrationActiveHandler(c *gin.Context) {
	integrationID := c.Param("id")
	var req SetIntegrationActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "active is required")
		return
	}

	integration, err := s.integrations.Get(c.Request.Context(), integrationID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, integration.BusinessID) {
		return
	}

	if err := s.integrations.SetActive(c.Request.Context(), integrationID, *req.Active); err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"integration_id": integrationID, "is_active": *req.Active})
}

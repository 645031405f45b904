package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/ent/item"
	"github.com/vendrahq/vendra/ent/openinghour"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// ownerInTenant verifies ownerID is the caller's business or one of its
// branches. Admins pass unconditionally. Misses answer 404 like requireTenant.
func (s *Server) ownerInTenant(c *gin.Context, ownerID string) bool {
	p := currentPrincipal(c)
	if p.IsAdmin() {
		return true
	}
	tenant, err := s.users.ResolveBusiness(c.Request.Context(), p.UserID)
	if err != nil {
		mapServiceError(c, err)
		return false
	}
	if ownerID == tenant.ID {
		return true
	}
	owner, err := s.users.GetUser(c.Request.Context(), ownerID)
	if err != nil || owner.ParentUserID == nil || *owner.ParentUserID != tenant.ID {
		respondError(c, http.StatusNotFound, codeNotFound, "resource not found")
		return false
	}
	return true
}

// createItemHandler handles POST /api/v1/items.
func (s *Server) createItemHandler(c *gin.Context) {
	var req models.CreateItemRequest
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
		if req.OwnerUserID != "" && !s.ownerInTenant(c, req.OwnerUserID) {
			return
		}
	}

	it, err := s.catalog.CreateItem(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, it)
}

// listItemsHandler handles GET /api/v1/items.
func (s *Server) listItemsHandler(c *gin.Context) {
	tenant, err := s.resolveTenant(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	limit, offset := listParams(c)
	includeDeleted, _ := strconv.ParseBool(c.Query("include_deleted"))
	result, err := s.catalog.ListItems(c.Request.Context(), models.ItemFilters{
		BusinessID:     tenant,
		OwnerUserID:    c.Query("owner_id"),
		MenuID:         c.Query("menu_id"),
		CategoryID:     c.Query("category_id"),
		Availability:   item.Availability(c.Query("availability")),
		IncludeDeleted: includeDeleted && currentPrincipal(c).IsAdmin(),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

// getItemHandler handles GET /api/v1/items/:id.
func (s *Server) getItemHandler(c *gin.Context) {
	it, err := s.catalog.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, it.BusinessID) {
		return
	}
	respondData(c, http.StatusOK, it)
}

// updateItemHandler handles PATCH /api/v1/items/:id.
func (s *Server) updateItemHandler(c *gin.Context) {
	itemID := c.Param("id")
	it, err := s.catalog.GetItem(c.Request.Context(), itemID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, it.BusinessID) {
		return
	}
	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	updated, err := s.catalog.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// deleteItemHandler handles DELETE /api/v1/items/:id.
func (s *Server) deleteItemHandler(c *gin.Context) {
	itemID := c.Param("id")
	it, err := s.catalog.GetItem(c.Request.Context(), itemID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, it.BusinessID) {
		return
	}
	if err := s.catalog.DeleteItem(c.Request.Context(), itemID); err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"item_id": itemID, "deleted": true})
}

// createMenuHandler handles POST /api/v1/menus.
func (s *Server) createMenuHandler(c *gin.Context) {
	var req models.CreateMenuRequest
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
		if req.OwnerUserID != "" && !s.ownerInTenant(c, req.OwnerUserID) {
			return
		}
	}

	m, err := s.catalog.CreateMenu(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, m)
}

// listMenusHandler handles GET /api/v1/menus.
func (s *Server) listMenusHandler(c *gin.Context) {
	tenant, err := s.resolveTenantUser(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))
	menus, err := s.catalog.ListMenus(c.Request.Context(), tenant.ID, includeInactive)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, menus)
}

// updateMenuHandler handles PATCH /api/v1/menus/:id.
func (s *Server) updateMenuHandler(c *gin.Context) {
	menuID := c.Param("id")
	m, err := s.catalog.GetMenu(c.Request.Context(), menuID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, m.BusinessID) {
		return
	}
	var req models.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	updated, err := s.catalog.UpdateMenu(c.Request.Context(), menuID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// createCategoryHandler handles POST /api/v1/categories.
func (s *Server) createCategoryHandler(c *gin.Context) {
	var req models.CreateCategoryRequest
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

	cat, err := s.catalog.CreateCategory(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, cat)
}

// listCategoriesHandler handles GET /api/v1/categories.
func (s *Server) listCategoriesHandler(c *gin.Context) {
	tenant, err := s.resolveTenantUser(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	categories, err := s.catalog.ListCategories(c.Request.Context(), tenant.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, categories)
}

// upsertOpeningHourHandler handles PUT /api/v1/opening-hours.
func (s *Server) upsertOpeningHourHandler(c *gin.Context) {
	var req models.UpsertOpeningHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	if req.OwnerID != "" && !s.ownerInTenant(c, req.OwnerID) {
		return
	}

	oh, err := s.catalog.UpsertOpeningHour(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, oh)
}

// listOpeningHoursHandler handles GET /api/v1/opening-hours.
func (s *Server) listOpeningHoursHandler(c *gin.Context) {
	ownerType := openinghour.OwnerType(c.DefaultQuery("owner_type", "business"))
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		if currentPrincipal(c).IsAdmin() {
			mapServiceError(c, services.NewValidationError("owner_id", "owner_id is required"))
			return
		}
		tenant, err := s.resolveTenant(c)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		ownerID = tenant
	} else if !s.ownerInTenant(c, ownerID) {
		return
	}

	hours, err := s.catalog.ListOpeningHours(c.Request.Context(), ownerType, ownerID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, hours)
}

// createTableHandler handles POST /api/v1/tables.
func (s *Server) createTableHandler(c *gin.Context) {
	var req models.CreateTableRequest
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
		if req.OwnerUserID != "" && !s.ownerInTenant(c, req.OwnerUserID) {
			return
		}
	}
	if req.OwnerUserID == "" {
		req.OwnerUserID = req.BusinessID
	}

	t, err := s.catalog.CreateTable(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, t)
}

// listTablesHandler handles GET /api/v1/tables.
func (s *Server) listTablesHandler(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		if currentPrincipal(c).IsAdmin() {
			mapServiceError(c, services.NewValidationError("owner_id", "owner_id is required"))
			return
		}
		tenant, err := s.resolveTenant(c)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		ownerID = tenant
	} else if !s.ownerInTenant(c, ownerID) {
		return
	}

	tables, err := s.catalog.ListTables(c.Request.Context(), ownerID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, tables)
}

// updateTableHandler handles PATCH /api/v1/tables/:id.
func (s *Server) updateTableHandler(c *gin.Context) {
	tableID := c.Param("id")
	t, err := s.catalog.GetTable(c.Request.Context(), tableID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, t.BusinessID) {
		return
	}
	var req models.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	updated, err := s.catalog.UpdateTable(c.Request.Context(), tableID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

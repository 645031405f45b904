package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/ent/reservation"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/models"
	"github.com/vendrahq/vendra/pkg/services"
)

// createReservationHandler handles POST /api/v1/reservations. Dashboard
// bookings go through the same slot checks as bot bookings.
func (s *Server) createReservationHandler(c *gin.Context) {
	var req models.CreateReservationRequest
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

	res, err := s.reservations.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.publishReservationEvent(c.Request.Context(), events.EventTypeReservationCreated, res)
	respondData(c, http.StatusCreated, res)
}

// listReservationsHandler handles GET /api/v1/reservations.
func (s *Server) listReservationsHandler(c *gin.Context) {
	tenant, err := s.resolveTenant(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	limit, offset := listParams(c)
	result, err := s.reservations.List(c.Request.Context(), models.ReservationFilters{
		BusinessID:    tenant,
		OwnerUserID:   c.Query("owner_id"),
		CustomerPhone: c.Query("customer_phone"),
		Date:          c.Query("date"),
		Status:        reservation.Status(c.Query("status")),
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

// reservationAvailabilityHandler handles GET /api/v1/reservations/availability.
// It answers which tables are free for one (owner, date, time) slot.
func (s *Server) reservationAvailabilityHandler(c *gin.Context) {
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

	q := models.SlotQuery{
		OwnerUserID:  ownerID,
		Date:         c.Query("date"),
		Time:         c.Query("time"),
		PositionPref: c.Query("position"),
	}
	if v := c.Query("guests"); v != "" {
		guests, err := strconv.Atoi(v)
		if err != nil {
			mapServiceError(c, services.NewValidationError("guests", "must be an integer"))
			return
		}
		q.Guests = &guests
	}

	tables, err := s.reservations.AvailableForSlot(c.Request.Context(), q)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"date":   q.Date,
		"time":   q.Time,
		"tables": tables,
	})
}

// getReservationHandler handles GET /api/v1/reservations/:id.
func (s *Server) getReservationHandler(c *gin.Context) {
	res, err := s.reservations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, res.BusinessUserID) {
		return
	}
	respondData(c, http.StatusOK, res)
}

// UpdateReservationStatusBody is the body of PATCH /reservations/:id/status.
type UpdateReservationStatusBody struct {
	Status reservation.Status `json:"status"`
}

// updateReservationStatusHandler handles PATCH /api/v1/reservations/:id/status.
func (s *Server) updateReservationStatusHandler(c *gin.Context) {
	reservationID := c.Param("id")
	res, err := s.reservations.Get(c.Request.Context(), reservationID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, res.BusinessUserID) {
		return
	}
	var body UpdateReservationStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	updated, err := s.reservations.UpdateStatus(c.Request.Context(), reservationID, body.Status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.publishReservationEvent(c.Request.Context(), events.EventTypeReservationStatus, updated)
	respondData(c, http.StatusOK, updated)
}

// addReservationItemHandler handles POST /api/v1/reservations/:id/items.
func (s *Server) addReservationItemHandler(c *gin.Context) {
	reservationID := c.Param("id")
	res, err := s.reservations.Get(c.Request.Context(), reservationID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, res.BusinessUserID) {
		return
	}
	var req models.AddReservationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	line, err := s.reservations.AddItem(c.Request.Context(), reservationID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, line)
}

// listReservationItemsHandler handles GET /api/v1/reservations/:id/items.
func (s *Server) listReservationItemsHandler(c *gin.Context) {
	reservationID := c.Param("id")
	res, err := s.reservations.Get(c.Request.Context(), reservationID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, res.BusinessUserID) {
		return
	}
	lines, err := s.reservations.ListItems(c.Request.Context(), reservationID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, lines)
}

// removeReservationItemHandler handles DELETE /api/v1/reservations/:id/items/:lineID.
func (s *Server) removeReservationItemHandler(c *gin.Context) {
	reservationID := c.Param("id")
	res, err := s.reservations.Get(c.Request.Context(), reservationID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, res.BusinessUserID) {
		return
	}
	lineID := c.Param("lineID")
	if err := s.reservations.RemoveItem(c.Request.Context(), reservationID, lineID); err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"reservation_id": reservationID, "line_id": lineID, "removed": true})
}

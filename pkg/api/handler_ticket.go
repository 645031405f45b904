package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/ent/supportticket"
	"github.com/vendrahq/vendra/ent/ticketmessage"
	"github.com/vendrahq/vendra/pkg/events"
	"github.com/vendrahq/vendra/pkg/models"
)

// openTicketHandler handles POST /api/v1/tickets. Dashboard-opened tickets
// record the caller as the initial sender.
func (s *Server) openTicketHandler(c *gin.Context) {
	var req models.OpenTicketRequest
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
	if req.InitialMessage != "" && req.InitialSender == "" {
		req.InitialSender = ticketmessage.SenderTypeEmployee
	}

	t, err := s.tickets.Open(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.publishTicketEvent(c.Request.Context(), events.EventTypeTicketCreated, t)
	respondData(c, http.StatusCreated, t)
}

// listTicketsHandler handles GET /api/v1/tickets.
func (s *Server) listTicketsHandler(c *gin.Context) {
	tenant, err := s.resolveTenant(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	limit, offset := listParams(c)
	result, err := s.tickets.List(c.Request.Context(), models.TicketFilters{
		BusinessID:         tenant,
		CustomerID:         c.Query("customer_id"),
		SessionID:          c.Query("session_id"),
		Status:             supportticket.Status(c.Query("status")),
		Priority:           supportticket.Priority(c.Query("priority")),
		AssignedEmployeeID: c.Query("assigned_to"),
		Limit:              limit,
		Offset:             offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

// getTicketHandler handles GET /api/v1/tickets/:id.
func (s *Server) getTicketHandler(c *gin.Context) {
	t, err := s.tickets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, t.BusinessID) {
		return
	}
	respondData(c, http.StatusOK, t)
}

// listTicketMessagesHandler handles GET /api/v1/tickets/:id/messages.
func (s *Server) listTicketMessagesHandler(c *gin.Context) {
	ticketID := c.Param("id")
	t, err := s.tickets.Get(c.Request.Context(), ticketID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, t.BusinessID) {
		return
	}
	messages, err := s.tickets.Messages(c.Request.Context(), ticketID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, messages)
}

// AddTicketMessageBody is the body of POST /tickets/:id/messages.
type AddTicketMessageBody struct {
	Content string `json:"content"`
}

// addTicketMessageHandler handles POST /api/v1/tickets/:id/messages.
func (s *Server) addTicketMessageHandler(c *gin.Context) {
	ticketID := c.Param("id")
	t, err := s.tickets.Get(c.Request.Context(), ticketID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, t.BusinessID) {
		return
	}
	var body AddTicketMessageBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Content == "" {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "content is required")
		return
	}

	msg, err := s.tickets.AddMessage(c.Request.Context(), models.AddTicketMessageRequest{
		TicketID:   ticketID,
		SenderType: ticketmessage.SenderTypeEmployee,
		Content:    body.Content,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, msg)
}

// UpdateTicketStatusBody is the body of PATCH /tickets/:id/status.
type UpdateTicketStatusBody struct {
	Status supportticket.Status `json:"status"`
}

// updateTicketStatusHandler handles PATCH /api/v1/tickets/:id/status.
func (s *Server) updateTicketStatusHandler(c *gin.Context) {
	ticketID := c.Param("id")
	t, err := s.tickets.Get(c.Request.Context(), ticketID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, t.BusinessID) {
		return
	}
	var body UpdateTicketStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	updated, err := s.tickets.UpdateStatus(c.Request.Context(), ticketID, body.Status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.publishTicketEvent(c.Request.Context(), events.EventTypeTicketStatus, updated)
	respondData(c, http.StatusOK, updated)
}

// AssignTicketBody is the body of PATCH /tickets/:id/assign. An empty
// employee_id assigns the ticket to the caller.
type AssignTicketBody struct {
	EmployeeID string `json:"employee_id"`
}

// assignTicketHandler handles PATCH /api/v1/tickets/:id/assign.
func (s *Server) assignTicketHandler(c *gin.Context) {
	ticketID := c.Param("id")
	t, err := s.tickets.Get(c.Request.Context(), ticketID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, t.BusinessID) {
		return
	}
	var body AssignTicketBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	if body.EmployeeID == "" {
		body.EmployeeID = currentPrincipal(c).UserID
	}

	updated, err := s.tickets.Assign(c.Request.Context(), ticketID, body.EmployeeID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

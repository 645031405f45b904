package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/ent/botintegration"
	"github.com/vendrahq/vendra/ent/chatmessage"
	"github.com/vendrahq/vendra/ent/chatsession"
	"github.com/vendrahq/vendra/pkg/models"
)

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	tenant, err := s.resolveTenant(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	limit, offset := listParams(c)
	result, err := s.sessions.List(c.Request.Context(), models.SessionFilters{
		BusinessID: tenant,
		CustomerID: c.Query("customer_id"),
		State:      chatsession.State(c.Query("state")),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, err := s.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, sess.BusinessID) {
		return
	}
	respondData(c, http.StatusOK, sess)
}

// listSessionMessagesHandler handles GET /api/v1/sessions/:id/messages.
func (s *Server) listSessionMessagesHandler(c *gin.Context) {
	sessionID := c.Param("id")
	sess, err := s.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, sess.BusinessID) {
		return
	}
	limit, offset := listParams(c)
	messages, err := s.sessions.Messages(c.Request.Context(), sessionID, limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, messages)
}

// SendSessionMessageBody is the body of POST /sessions/:id/messages.
type SendSessionMessageBody struct {
	Content string `json:"content"`
}

// sendSessionMessageHandler handles POST /api/v1/sessions/:id/messages: an
// agent replying to the customer from the dashboard. Delivery comes first;
// like the queue worker, a reply that reached the customer but missed the
// thread log is the lesser harm.
func (s *Server) sendSessionMessageHandler(c *gin.Context) {
	sessionID := c.Param("id")
	sess, err := s.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, sess.BusinessID) {
		return
	}
	var body SendSessionMessageBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Content == "" {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "content is required")
		return
	}
	if s.dispatcher == nil {
		respondError(c, http.StatusServiceUnavailable, codeInternal, "outbound dispatcher unavailable")
		return
	}

	ctx := c.Request.Context()
	sent, err := s.dispatcher.SendText(ctx, sess.BusinessID,
		botintegration.Platform(sess.Platform), sess.CustomerID, body.Content)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	msg, err := s.sessions.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:         sessionID,
		SenderType:        chatmessage.SenderTypeEmployee,
		Content:           body.Content,
		ProviderMessageID: sent.ProviderMessageID,
	})
	if err != nil {
		slog.Error("Failed to record outbound message", "session_id", sessionID, "error", err)
		respondData(c, http.StatusOK, gin.H{
			"session_id":          sessionID,
			"provider_message_id": sent.ProviderMessageID,
		})
		return
	}
	respondData(c, http.StatusOK, msg)
}

// takeoverSessionHandler handles POST /api/v1/sessions/:id/takeover. The
// caller claims a locked conversation as its assigned agent; locking itself
// happens at handover time.
func (s *Server) takeoverSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	sess, err := s.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, sess.BusinessID) {
		return
	}

	locked, err := s.sessions.Takeover(c.Request.Context(), sessionID, currentPrincipal(c).UserID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.publishSessionEvent(c.Request.Context(), locked)
	respondData(c, http.StatusOK, locked)
}

// releaseSessionHandler handles POST /api/v1/sessions/:id/release: hands the
// conversation back to the assistant.
func (s *Server) releaseSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	sess, err := s.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !s.requireTenant(c, sess.BusinessID) {
		return
	}

	released, err := s.sessions.Release(c.Request.Context(), sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.publishSessionEvent(c.Request.Context(), released)
	respondData(c, http.StatusOK, released)
}

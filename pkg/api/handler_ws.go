package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/pkg/events"
)

// wsHandler handles GET /ws: the dashboard event stream. Auth runs before
// the upgrade so rejects stay plain HTTP. Non-admin connections are pinned
// to their own business channel; admins may subscribe to any.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		respondError(c, http.StatusServiceUnavailable, codeInternal, "event stream unavailable")
		return
	}

	token := bearerToken(c)
	if token == "" {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}
	p, err := parseToken(token, s.jwtSecret)
	if err != nil {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "invalid token")
		return
	}

	var allowed []string
	if !p.IsAdmin() {
		biz, err := s.users.ResolveBusiness(c.Request.Context(), p.UserID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		allowed = append(allowed, events.BusinessChannel(biz.ID))
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.wsOrigins,
	})
	if err != nil {
		// Accept already wrote the handshake failure.
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn, allowed...)
}

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// handleWebSocket upgrades GET /ws and delegates the connection to the
// ConnectionManager, which blocks until the client disconnects.
func (s *Server) handleWebSocket(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: s.checkWSOrigin,
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}

// checkWSOrigin accepts same-host requests plus any configured origin
// patterns. A trailing "*" in a pattern matches any suffix.
func (s *Server) checkWSOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // non-browser client
	}
	if strings.HasSuffix(origin, "://"+r.Host) {
		return true
	}
	for _, pattern := range s.cfg.AllowedWSOrigins {
		if pattern == "*" || pattern == origin {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok && strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}

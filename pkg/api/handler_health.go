package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgewatch/forgewatch/pkg/database"
	"github.com/forgewatch/forgewatch/pkg/version"
)

// health handles GET /health. Unhealthy means the database is
// unreachable or the worker pool reports itself broken; a degraded
// summarizer or upstream circuit does not fail the probe.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := gin.H{"version": version.Full()}
	healthy := true

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp["database"] = dbHealth
	if err != nil {
		healthy = false
		resp["database_error"] = err.Error()
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			healthy = false
		}
	}
	if s.connManager != nil {
		resp["websocket_connections"] = s.connManager.ActiveConnections()
	}

	if !healthy {
		resp["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp["status"] = "healthy"
	c.JSON(http.StatusOK, resp)
}

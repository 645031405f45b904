package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/pkg/version"
)

const healthCheckTimeout = 5 * time.Second

// healthHandler handles GET /health. The database is the only hard
// dependency: a dead queue degrades the report but keeps the endpoint at
// 200 so load balancers do not evict a pod that can still serve reads.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	overall := "healthy"
	checks := make(map[string]HealthCheck)

	dbStatus, err := s.dbClient.Health(ctx)
	if err != nil {
		overall = "unhealthy"
		checks["database"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{
			Status:  dbStatus.Status,
			Message: fmt.Sprintf("%d open connections", dbStatus.OpenConnections),
		}
	}

	if s.workerPool != nil {
		pool := s.workerPool.Health()
		if pool.IsHealthy {
			checks["queue"] = HealthCheck{
				Status:  "healthy",
				Message: fmt.Sprintf("%d/%d workers, %d queued", pool.ActiveWorkers, pool.TotalWorkers, pool.QueueDepth),
			}
		} else {
			if overall == "healthy" {
				overall = "degraded"
			}
			checks["queue"] = HealthCheck{Status: "unhealthy", Message: pool.DBError}
		}
	}

	if s.connManager != nil {
		checks["events"] = HealthCheck{
			Status:  "healthy",
			Message: fmt.Sprintf("%d websocket connections", s.connManager.ActiveConnections()),
		}
	}

	status := http.StatusOK
	if overall == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, HealthResponse{
		Status:  overall,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

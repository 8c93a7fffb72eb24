package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meridianhealth/intake/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /healthz. Only the service's own storage is
// checked; the LLM provider is deliberately excluded so an upstream outage
// does not make orchestrators restart this process.
func (s *Server) healthHandler(c *gin.Context) {
	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.Full(),
		Storage: "memory",
	}
	if s.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp.Storage = "postgres"
	dbHealth, err := s.db.Health(ctx)
	resp.Database = dbHealth
	if err != nil {
		resp.Status = healthStatusUnhealthy
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

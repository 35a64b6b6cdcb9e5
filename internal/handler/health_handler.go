package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/domain"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	location *time.Location
	version  string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(location *time.Location, version string) *HealthHandler {
	return &HealthHandler{location: location, version: version}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

func (h *HealthHandler) timezoneReady() bool {
	return h.location != nil && h.location.String() == domain.BerlinZone
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"timezone": "healthy",
	}

	if !h.timezoneReady() {
		services["timezone"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  h.version,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.timezoneReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/backend/internal/interfaces/http/dto"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	service string
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: h.service,
		Version: h.version,
	})
}

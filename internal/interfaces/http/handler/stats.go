package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/quickbite/backend/internal/application/order"
)

// StatsHandler handles the admin dashboard statistics
type StatsHandler struct {
	BaseHandler
	statsService *orderapp.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *orderapp.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Overview handles GET /admin/stats/overview
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// OrdersByDay handles GET /admin/stats/orders-by-day
func (h *StatsHandler) OrdersByDay(c *gin.Context) {
	series, err := h.statsService.OrdersByDay(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, series)
}

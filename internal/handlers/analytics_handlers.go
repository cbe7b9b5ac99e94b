package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/services"
	"supreme_fitness_backend/pkg/utils"
)

// AnalyticsHandler holds the analytics service.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(as services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: as}
}

// GetDashboard handles the admin dashboard aggregates.
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	stats, err := h.analyticsService.GetDashboardStats()
	if err != nil {
		utils.LogError(err, "GetDashboard: Error from analyticsService.GetDashboardStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

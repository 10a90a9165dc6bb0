package controllers

import (
	"net/http"

	"s2inventory/pkg/logger"
	"s2inventory/services"
	"s2inventory/utils"

	"github.com/gin-gonic/gin"
)

var statsSrv = services.NewStatsService()

// SetStatsService initializes the statistics service instance.
func SetStatsService(srv services.StatsService) {
	statsSrv = srv
}

// GetStats returns the inventory dashboard figures
// @Summary Get inventory statistics
// @Description Counts the systems and contracts of the caller's consultation zones, broken down by domain, city and accreditation class
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.Statistiques
// @Failure 401 {object} StandardErrorResponse
// @Router /api/stats [get]
func getStats(c *gin.Context) {
	u := utils.CurrentUser(c)
	stats, err := statsSrv.Statistiques(c.Request.Context(), u)
	if err != nil {
		logger.Errorf("Failed to compute statistics for %s: %v", u.Username, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, stats)
}

// RegisterStatsRoutes registers all statistics routes
func RegisterStatsRoutes(router *gin.RouterGroup) {
	router.GET("/stats", getStats)
}

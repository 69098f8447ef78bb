package handler

import (
	"strconv"

	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
	"cablepay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboardStats handles GET /api/dashboard/stats
// @Summary Get dashboard statistics
// @Description Get paid/unpaid counts and collected/pending amounts over all homes for a month. Defaults to the current month; homes without a record count as unpaid.
// @Tags dashboard
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} utils.APIResponse{data=response.DashboardStatisticsResponse} "Successfully retrieved dashboard statistics"
// @Failure 400 {object} utils.APIResponse "Bad request - invalid parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	// Get optional month parameter
	var month *int
	if monthStr := c.Query("month"); monthStr != "" {
		monthValue, err := strconv.Atoi(monthStr)
		if err != nil {
			h.logger.WithError(err).WithField("month", monthStr).Warn("Invalid month parameter format")
			utils.BadRequestResponse(c, "Invalid month parameter format", err)
			return
		}
		month = &monthValue
	}

	// Get optional year parameter
	var year *int
	if yearStr := c.Query("year"); yearStr != "" {
		yearValue, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.WithError(err).WithField("year", yearStr).Warn("Invalid year parameter format")
			utils.BadRequestResponse(c, "Invalid year parameter format", err)
			return
		}
		year = &yearValue
	}

	statistics, err := h.dashboardService.GetStats(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get dashboard statistics")
		return
	}

	utils.SuccessResponse(c, "Successfully retrieved dashboard statistics", statistics)
}

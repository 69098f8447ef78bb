package handler

import (
	"fmt"
	"net/http"

	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
	"cablepay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportQuery represents the query parameters of the register export
type ExportQuery struct {
	Month  int    `form:"month" binding:"required"`
	Year   int    `form:"year" binding:"required"`
	Status string `form:"status" binding:"omitempty,payment_status"`
}

// ExportHandler handles spreadsheet exports
type ExportHandler struct {
	exportService service.ExportService
	logger        *logger.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportService, logger *logger.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// ExportExcel handles GET /api/export/excel
// @Summary Export the payment register
// @Description Download the yearly payment register as an xlsx file, restricted to homes whose status for the selected month matches the status filter.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param status query string false "all, paid or unpaid"
// @Success 200 {file} file "Payment register"
// @Failure 400 {object} utils.APIResponse "Missing or invalid parameters"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequestResponse(c, "month and year are required", err)
		return
	}

	content, filename, err := h.exportService.ExportPayments(c.Request.Context(), query.Month, query.Year, query.Status)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate Excel file")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}

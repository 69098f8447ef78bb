package handler

import (
	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
	"cablepay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// HomeHandler handles home registry HTTP requests
type HomeHandler struct {
	homeService service.HomeService
	logger      *logger.Logger
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(homeService service.HomeService, logger *logger.Logger) *HomeHandler {
	return &HomeHandler{
		homeService: homeService,
		logger:      logger,
	}
}

// CreateHome handles POST /api/homes
// @Summary Register a home
// @Description Register a home and create its unpaid payment record for the current month.
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateHomeRequest true "Home"
// @Success 201 {object} utils.APIResponse{data=models.Home} "Home created"
// @Failure 400 {object} utils.APIResponse "Missing or invalid fields"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 409 {object} utils.APIResponse "A home with this ID already exists"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/homes [post]
func (h *HomeHandler) CreateHome(c *gin.Context) {
	var req service.CreateHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid create home request body")
		utils.BadRequestResponse(c, "All fields are required", err)
		return
	}

	home, err := h.homeService.CreateHome(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create home")
		return
	}

	utils.CreatedResponse(c, "Home created successfully", home)
}

// ListHomes handles GET /api/homes
// @Summary List homes
// @Description List every home ordered by home ID.
// @Tags homes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.Home} "Homes"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/homes [get]
func (h *HomeHandler) ListHomes(c *gin.Context) {
	homes, err := h.homeService.ListHomes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to list homes")
		return
	}

	utils.SuccessResponse(c, "Homes retrieved successfully", homes)
}

// GetHome handles GET /api/homes/:homeId
// @Summary Get a home
// @Description Get a home with its payment status for the current month.
// @Tags homes
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "Home ID"
// @Success 200 {object} utils.APIResponse{data=response.HomePaymentResponse} "Home"
// @Failure 400 {object} utils.APIResponse "Invalid home ID"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Home not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/homes/{homeId} [get]
func (h *HomeHandler) GetHome(c *gin.Context) {
	homeID, err := utils.GetIntParam(c, "homeId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid home ID", err)
		return
	}

	home, err := h.homeService.GetHome(c.Request.Context(), homeID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get home")
		return
	}

	utils.SuccessResponse(c, "Home retrieved successfully", home)
}

// UpdateHome handles PUT /api/homes/:homeId
// @Summary Update a home
// @Description Replace the customer name, phone, set-top box ID and monthly amount of a home. The home ID cannot change.
// @Tags homes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "Home ID"
// @Param request body service.UpdateHomeRequest true "Home fields"
// @Success 200 {object} utils.APIResponse{data=models.Home} "Home updated"
// @Failure 400 {object} utils.APIResponse "Missing or invalid fields"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Home not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/homes/{homeId} [put]
func (h *HomeHandler) UpdateHome(c *gin.Context) {
	homeID, err := utils.GetIntParam(c, "homeId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid home ID", err)
		return
	}

	var req service.UpdateHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).WithField("home_id", homeID).Warn("Invalid update home request body")
		utils.BadRequestResponse(c, "All fields are required", err)
		return
	}

	home, err := h.homeService.UpdateHome(c.Request.Context(), homeID, &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update home")
		return
	}

	utils.SuccessResponse(c, "Home updated successfully", home)
}

// DeleteHome handles DELETE /api/homes/:homeId
// @Summary Delete a home
// @Description Delete a home together with all of its payment records.
// @Tags homes
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "Home ID"
// @Success 200 {object} utils.APIResponse "Home deleted"
// @Failure 400 {object} utils.APIResponse "Invalid home ID"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Home not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/homes/{homeId} [delete]
func (h *HomeHandler) DeleteHome(c *gin.Context) {
	homeID, err := utils.GetIntParam(c, "homeId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid home ID", err)
		return
	}

	if err := h.homeService.DeleteHome(c.Request.Context(), homeID); err != nil {
		respondError(c, h.logger, err, "Failed to delete home")
		return
	}

	utils.SuccessResponse(c, "Home and associated payments deleted successfully", nil)
}

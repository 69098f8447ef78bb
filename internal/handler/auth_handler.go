package handler

import (
	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
	"cablepay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles administrator login
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/login
// @Summary Log in
// @Description Exchange administrator credentials for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=response.LoginResponse} "Token issued"
// @Failure 400 {object} utils.APIResponse "Missing credentials"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "username and password are required", err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, "Login successful", token)
}

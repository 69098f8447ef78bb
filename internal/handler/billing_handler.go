package handler

import (
	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
	"cablepay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles billing cycle HTTP requests
type BillingHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

// NewBillingHandler creates a new BillingHandler instance
func NewBillingHandler(billingService service.BillingService, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// RunCycleInit handles POST /api/billing/cycle-init
// @Summary Initialize the current billing cycle
// @Description Create an unpaid payment record for the current month for every home that has none. Runs on startup and on the scheduler; calling it again creates nothing.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.BillingCycleResponse} "Number of records created"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/billing/cycle-init [post]
func (h *BillingHandler) RunCycleInit(c *gin.Context) {
	result, err := h.billingService.RunCycleInit(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to initialize billing cycle")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"month":   result.Month,
		"year":    result.Year,
		"created": result.Created,
	}).Info("Billing cycle initialized on request")

	utils.SuccessResponse(c, "Billing cycle initialized", result)
}

package handler

import (
	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
	"cablepay-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentRequest identifies one home-month payment record
type PaymentRequest struct {
	HomeID int `json:"home_id" binding:"required" example:"101"`
	Month  int `json:"month" binding:"required" example:"10"`
	Year   int `json:"year" binding:"required" example:"2026"`
}

// PeriodQuery selects a month
type PeriodQuery struct {
	Month int `form:"month" binding:"required"`
	Year  int `form:"year" binding:"required"`
}

// ListPaymentsQuery represents the query parameters of the payment listing
type ListPaymentsQuery struct {
	Month  int    `form:"month" binding:"required"`
	Year   int    `form:"year" binding:"required"`
	Status string `form:"status" binding:"omitempty,payment_status"`
}

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// MarkPaid handles POST /api/payments/mark-paid
// @Summary Mark a month as paid
// @Description Mark the payment of a home for a month as paid now, collecting the home's monthly amount. The record is created when it does not exist, so past and future months can be paid.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Home and period"
// @Success 200 {object} utils.APIResponse{data=response.PaymentStatusResponse} "Payment marked as paid"
// @Failure 400 {object} utils.APIResponse "Missing or invalid fields"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Home not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/payments/mark-paid [post]
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid mark-paid request body")
		utils.BadRequestResponse(c, "home_id, month and year are required", err)
		return
	}

	payment, err := h.paymentService.MarkPaid(c.Request.Context(), req.HomeID, req.Month, req.Year)
	if err != nil {
		respondError(c, h.logger, err, "Failed to mark payment as paid")
		return
	}

	utils.SuccessResponse(c, "Payment marked as paid", payment)
}

// MarkUnpaid handles PUT /api/payments/mark-unpaid
// @Summary Mark a month as unpaid
// @Description Reset an existing payment record to unpaid. Fails with 404 when the home has no record for the month.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Home and period"
// @Success 200 {object} utils.APIResponse{data=response.PaymentStatusResponse} "Payment marked as unpaid"
// @Failure 400 {object} utils.APIResponse "Missing or invalid fields"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Payment record not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/payments/mark-unpaid [put]
func (h *PaymentHandler) MarkUnpaid(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid mark-unpaid request body")
		utils.BadRequestResponse(c, "home_id, month and year are required", err)
		return
	}

	payment, err := h.paymentService.MarkUnpaid(c.Request.Context(), req.HomeID, req.Month, req.Year)
	if err != nil {
		respondError(c, h.logger, err, "Failed to mark payment as unpaid")
		return
	}

	utils.SuccessResponse(c, "Payment marked as unpaid", payment)
}

// GetStatus handles GET /api/payments/status/:homeId
// @Summary Get payment status
// @Description Get the payment status of a home for a month. A month without a record is reported as unpaid.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param homeId path int true "Home ID"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} utils.APIResponse{data=response.PaymentStatusResponse} "Payment status"
// @Failure 400 {object} utils.APIResponse "Missing or invalid parameters"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/payments/status/{homeId} [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	homeID, err := utils.GetIntParam(c, "homeId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid home ID", err)
		return
	}

	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequestResponse(c, "month and year are required", err)
		return
	}

	status, err := h.paymentService.GetStatus(c.Request.Context(), homeID, query.Month, query.Year)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get payment status")
		return
	}

	utils.SuccessResponse(c, "Payment status retrieved successfully", status)
}

// ListPayments handles GET /api/payments
// @Summary List payments of a month
// @Description List every home with its payment status for a month, ordered by home ID. The status filter applies to the derived status, so homes without a record count as unpaid. fromDate/toDate (YYYY-MM-DD) restrict the paid date; toDate is inclusive and fromDate alone selects one day.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param status query string false "all, paid or unpaid"
// @Param fromDate query string false "Paid on or after (YYYY-MM-DD)"
// @Param toDate query string false "Paid on or before (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse{data=[]response.HomePaymentResponse} "Homes with payment status"
// @Failure 400 {object} utils.APIResponse "Missing or invalid parameters"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var query ListPaymentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequestResponse(c, "month and year are required; status must be all, paid or unpaid", err)
		return
	}

	from, err := utils.ParseDateQuery(c, "fromDate")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid fromDate", err)
		return
	}
	to, err := utils.ParseDateQuery(c, "toDate")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid toDate", err)
		return
	}

	payments, err := h.paymentService.ListByPeriod(c.Request.Context(), service.PaymentFilter{
		Month:  query.Month,
		Year:   query.Year,
		Status: query.Status,
		From:   from,
		To:     to,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to list payments")
		return
	}

	utils.SuccessResponse(c, "Payments retrieved successfully", payments)
}

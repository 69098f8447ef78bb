package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cablepay-be-svc/internal/metrics"
	"cablepay-be-svc/internal/middleware"
	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	homeService service.HomeService,
	paymentService service.PaymentService,
	billingService service.BillingService,
	dashboardService service.DashboardService,
	exportService service.ExportService,
	m *metrics.Metrics,
	logger *logger.Logger,
) {
	registerValidators()

	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	homeHandler := NewHomeHandler(homeService, logger)
	paymentHandler := NewPaymentHandler(paymentService, logger)
	billingHandler := NewBillingHandler(billingService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	exportHandler := NewExportHandler(exportService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", HealthCheck)

		api.POST("/login", authHandler.Login)
		api.GET("/dashboard/stats", dashboardHandler.GetDashboardStats)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(authService))

		// Home routes
		homes := protected.Group("/homes")
		{
			homes.POST("", homeHandler.CreateHome)
			homes.GET("", homeHandler.ListHomes)
			homes.GET("/:homeId", homeHandler.GetHome)
			homes.PUT("/:homeId", homeHandler.UpdateHome)
			homes.DELETE("/:homeId", homeHandler.DeleteHome)
		}

		// Payment routes
		payments := protected.Group("/payments")
		{
			payments.GET("", paymentHandler.ListPayments)
			payments.POST("/mark-paid", paymentHandler.MarkPaid)
			payments.PUT("/mark-unpaid", paymentHandler.MarkUnpaid)
			payments.GET("/status/:homeId", paymentHandler.GetStatus)
		}

		protected.POST("/billing/cycle-init", billingHandler.RunCycleInit)
		protected.GET("/export/excel", exportHandler.ExportExcel)
	}
}

// HealthCheck reports that the server is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Cable Payment Backend Service",
	})
}

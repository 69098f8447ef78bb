package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cablepay-be-svc/docs"
	"cablepay-be-svc/internal/config"
	"cablepay-be-svc/internal/database"
	"cablepay-be-svc/internal/handler"
	"cablepay-be-svc/internal/metrics"
	"cablepay-be-svc/internal/middleware"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/internal/scheduler"
	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"
)

// @title Cable Payment Backend Service API
// @version 1.0
// @description RESTful API for cable subscription homes, monthly payments and billing cycles

// @host localhost:3001
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Cable Payment Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	homeRepo := repository.NewHomeRepository(db.DB)
	paymentRepo := repository.NewPaymentRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	// Initialize services
	clock := service.SystemClock
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour, appLogger, clock)
	homeService := service.NewHomeService(homeRepo, paymentRepo, appLogger, clock)
	paymentService := service.NewPaymentService(paymentRepo, homeRepo, appMetrics, appLogger, clock)
	billingService := service.NewBillingService(paymentRepo, appLogger, clock)
	dashboardService := service.NewDashboardService(dashboardRepo, appLogger, clock)
	exportService := service.NewExportService(homeRepo, paymentRepo, appLogger, clock)

	if err := authService.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to create administrator account")
	}

	// Initialize Gin router
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.Origins()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.MetricsMiddleware(appMetrics))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, authService, homeService, paymentService, billingService, dashboardService, exportService, appMetrics, appLogger)

	// Start billing scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	billingScheduler := scheduler.NewBillingScheduler(billingService, schedulerLogRepo, appMetrics, appLogger, cfg.Scheduler.BillingCronExpression)
	if err := billingScheduler.Start(schedulerCtx); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start billing scheduler")
	}
	appLogger.WithField("cron", cfg.Scheduler.BillingCronExpression).Info("Billing scheduler started")

	// Create HTTP server
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	billingScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Error("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}

package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cablepay-be-svc/internal/metrics"
	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/internal/service"
	"cablepay-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// BillingCycleCode identifies billing cycle runs in scheduler_logs
const BillingCycleCode = "BILLING_CYCLE_INIT"

// BillingScheduler runs the billing cycle initializer at startup and on a cron schedule
type BillingScheduler struct {
	billingService   service.BillingService
	schedulerLogRepo repository.SchedulerLogRepository
	metrics          *metrics.Metrics
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewBillingScheduler creates a new billing scheduler
func NewBillingScheduler(
	billingService service.BillingService,
	schedulerLogRepo repository.SchedulerLogRepository,
	m *metrics.Metrics,
	logger *logger.Logger,
	cronExpression string,
) *BillingScheduler {
	cronLogger := cron.PrintfLogger(logger)

	// Cron format: "seconds minutes hours day-of-month month day-of-week", descriptors such as @every 1h
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &BillingScheduler{
		billingService:   billingService,
		schedulerLogRepo: schedulerLogRepo,
		metrics:          m,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start runs the initializer once, then schedules it. Jobs stop receiving work when ctx is cancelled.
func (s *BillingScheduler) Start(ctx context.Context) error {
	s.logger.Info("Starting billing scheduler...")

	jobCtx, cancel := context.WithCancel(ctx)

	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling billing cycle job")
	if _, err := s.cron.AddFunc(s.cronExpression, func() { s.initializeBillingCycle(jobCtx) }); err != nil {
		cancel()
		return fmt.Errorf("failed to schedule billing cycle job: %w", err)
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.initializeBillingCycle(jobCtx)

	s.cron.Start()
	s.logger.Info("Billing scheduler started successfully")

	return nil
}

// Stop stops scheduling and waits for a running job to finish
func (s *BillingScheduler) Stop() {
	s.logger.Info("Stopping billing scheduler...")
	<-s.cron.Stop().Done()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.logger.Info("Billing scheduler stopped successfully")
}

// initializeBillingCycle is the scheduled job. Failures are logged and recorded; the schedule keeps running.
func (s *BillingScheduler) initializeBillingCycle(ctx context.Context) {
	docID := uuid.New().String()

	s.logScheduler(ctx, docID, "Starting billing cycle initialization", models.SchedulerStatusStart)

	result, err := s.billingService.RunCycleInit(ctx)
	if err != nil {
		s.metrics.ObserveBillingCycle(0, err)
		s.logScheduler(ctx, docID, fmt.Sprintf("Failed to initialize billing cycle: %v", err), models.SchedulerStatusFailed)
		s.logger.WithError(err).WithField("document_id", docID).Error("Billing cycle initialization failed")
		return
	}

	s.metrics.ObserveBillingCycle(result.Created, nil)

	responseJSON, _ := json.Marshal(result)
	s.logScheduler(ctx, docID, fmt.Sprintf("Billing cycle initialized: %s", responseJSON), models.SchedulerStatusSuccess)
	s.logger.WithFields(map[string]interface{}{
		"document_id": docID,
		"month":       result.Month,
		"year":        result.Year,
		"created":     result.Created,
	}).Info("Billing cycle initialization completed")
}

// logScheduler persists one state of a run
func (s *BillingScheduler) logScheduler(ctx context.Context, documentID, message, status string) {
	entry := &models.SchedulerLog{
		DocumentID:    documentID,
		SchedulerCode: BillingCycleCode,
		Message:       message,
		Status:        status,
	}

	if err := s.schedulerLogRepo.CreateLog(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}

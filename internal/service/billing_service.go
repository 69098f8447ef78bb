package service

import (
	"context"

	"cablepay-be-svc/internal/models/response"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/pkg/logger"
)

// BillingService defines the monthly billing cycle operations
type BillingService interface {
	// RunCycleInit makes sure every home has a payment record for the current month
	RunCycleInit(ctx context.Context) (*response.BillingCycleResponse, error)
}

// billingService implements BillingService
type billingService struct {
	paymentRepo repository.PaymentRepository
	logger      *logger.Logger
	now         Clock
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(paymentRepo repository.PaymentRepository, logger *logger.Logger, now Clock) BillingService {
	if now == nil {
		now = SystemClock
	}
	return &billingService{
		paymentRepo: paymentRepo,
		logger:      logger,
		now:         now,
	}
}

// RunCycleInit inserts an unpaid record for every home lacking one for the current month.
// Records of other months and existing records of the current month are never touched.
func (s *billingService) RunCycleInit(ctx context.Context) (*response.BillingCycleResponse, error) {
	now := s.now()
	month := int(now.Month())
	year := now.Year()

	created, err := s.paymentRepo.CreateMissingPayments(ctx, month, year, now)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"month": month,
			"year":  year,
		}).Error("Failed to initialize billing cycle")
		return nil, storageError("create missing payments", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"month":   month,
		"year":    year,
		"created": created,
	}).Info("Billing cycle initialized")

	return &response.BillingCycleResponse{
		Month:   month,
		Year:    year,
		Created: int(created),
	}, nil
}

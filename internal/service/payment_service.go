package service

import (
	"context"
	"time"

	"cablepay-be-svc/internal/metrics"
	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/models/response"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/pkg/logger"
)

// Status filter values accepted by ListByPeriod besides the payment statuses
const (
	StatusFilterAll = "all"
)

// PaymentFilter selects the homes returned by ListByPeriod.
// From and To are calendar days; To is inclusive to the end of the day and From alone selects one day.
type PaymentFilter struct {
	Month  int
	Year   int
	Status string
	From   *time.Time
	To     *time.Time
}

// PaymentService defines the paid/unpaid rules of a home-month payment record
type PaymentService interface {
	MarkPaid(ctx context.Context, homeID, month, year int) (*response.PaymentStatusResponse, error)
	MarkUnpaid(ctx context.Context, homeID, month, year int) (*response.PaymentStatusResponse, error)
	GetStatus(ctx context.Context, homeID, month, year int) (*response.PaymentStatusResponse, error)
	ListByPeriod(ctx context.Context, filter PaymentFilter) ([]*response.HomePaymentResponse, error)
}

// paymentService implements PaymentService
type paymentService struct {
	paymentRepo repository.PaymentRepository
	homeRepo    repository.HomeRepository
	metrics     *metrics.Metrics
	logger      *logger.Logger
	now         Clock
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	homeRepo repository.HomeRepository,
	m *metrics.Metrics,
	logger *logger.Logger,
	now Clock,
) PaymentService {
	if now == nil {
		now = SystemClock
	}
	return &paymentService{
		paymentRepo: paymentRepo,
		homeRepo:    homeRepo,
		metrics:     m,
		logger:      logger,
		now:         now,
	}
}

// MarkPaid stamps the record as paid now with the home's monthly amount, creating it when absent
func (s *paymentService) MarkPaid(ctx context.Context, homeID, month, year int) (*response.PaymentStatusResponse, error) {
	if err := validateHomeID(homeID); err != nil {
		return nil, err
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	home, err := s.homeRepo.GetHomeByHomeID(ctx, homeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notFound("home %d does not exist", homeID)
		}
		return nil, storageError("get home", err)
	}

	paidAt := s.now()
	fields := map[string]interface{}{
		"status":           models.PaymentStatusPaid,
		"paid_date":        paidAt,
		"collected_amount": home.MonthlyAmount,
	}

	if err := s.upsert(ctx, homeID, month, year, fields, &models.Payment{
		HomeID:          homeID,
		Month:           month,
		Year:            year,
		Status:          models.PaymentStatusPaid,
		PaidDate:        &paidAt,
		CollectedAmount: home.MonthlyAmount,
	}); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"home_id": homeID,
			"month":   month,
			"year":    year,
		}).Error("Failed to mark payment as paid")
		return nil, err
	}

	payment, err := s.paymentRepo.FindPayment(ctx, homeID, month, year)
	if err != nil {
		return nil, storageError("get payment", err)
	}
	if payment == nil {
		return nil, notFound("payment record for home %d in %02d/%d vanished", homeID, month, year)
	}

	s.metrics.ObservePaymentTransition(models.PaymentStatusPaid)
	s.logger.WithFields(map[string]interface{}{
		"home_id":          homeID,
		"month":            month,
		"year":             year,
		"collected_amount": home.MonthlyAmount,
	}).Info("Payment marked as paid")

	return toStatusResponse(payment, home.MonthlyAmount), nil
}

// upsert updates the record of the key, inserting record when none exists. An insert racing
// with another writer for the same key falls back to the update.
func (s *paymentService) upsert(ctx context.Context, homeID, month, year int, fields map[string]interface{}, record *models.Payment) error {
	rows, err := s.paymentRepo.UpdatePayment(ctx, homeID, month, year, fields)
	if err != nil {
		return storageError("update payment", err)
	}
	if rows > 0 {
		return nil
	}

	err = s.paymentRepo.CreatePayment(ctx, record)
	if err == nil {
		return nil
	}
	if !repository.IsDuplicateKey(err) {
		return storageError("create payment", err)
	}

	if _, err := s.paymentRepo.UpdatePayment(ctx, homeID, month, year, fields); err != nil {
		return storageError("update payment", err)
	}
	return nil
}

// MarkUnpaid resets an existing record to unpaid. It never creates a record.
func (s *paymentService) MarkUnpaid(ctx context.Context, homeID, month, year int) (*response.PaymentStatusResponse, error) {
	if err := validateHomeID(homeID); err != nil {
		return nil, err
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	rows, err := s.paymentRepo.UpdatePayment(ctx, homeID, month, year, map[string]interface{}{
		"status":           models.PaymentStatusUnpaid,
		"paid_date":        nil,
		"collected_amount": int64(0),
	})
	if err != nil {
		s.logger.WithError(err).WithField("home_id", homeID).Error("Failed to mark payment as unpaid")
		return nil, storageError("update payment", err)
	}
	if rows == 0 {
		return nil, notFound("no payment record for home %d in %02d/%d", homeID, month, year)
	}

	payment, err := s.paymentRepo.FindPayment(ctx, homeID, month, year)
	if err != nil {
		return nil, storageError("get payment", err)
	}
	if payment == nil {
		return nil, notFound("no payment record for home %d in %02d/%d", homeID, month, year)
	}

	s.metrics.ObservePaymentTransition(models.PaymentStatusUnpaid)
	s.logger.WithFields(map[string]interface{}{
		"home_id": homeID,
		"month":   month,
		"year":    year,
	}).Info("Payment marked as unpaid")

	return toStatusResponse(payment, 0), nil
}

// GetStatus returns the stored record, or the unpaid default when the home has none for the period
func (s *paymentService) GetStatus(ctx context.Context, homeID, month, year int) (*response.PaymentStatusResponse, error) {
	if err := validateHomeID(homeID); err != nil {
		return nil, err
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindPayment(ctx, homeID, month, year)
	if err != nil {
		return nil, storageError("get payment", err)
	}
	if payment == nil {
		return unpaidDefault(homeID, month, year), nil
	}

	home, err := s.homeRepo.GetHomeByHomeID(ctx, homeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return unpaidDefault(homeID, month, year), nil
		}
		return nil, storageError("get home", err)
	}

	return toStatusResponse(payment, home.MonthlyAmount), nil
}

// ListByPeriod derives the status of every home for the period first and filters afterwards,
// so homes without a record land in the unpaid bucket.
func (s *paymentService) ListByPeriod(ctx context.Context, filter PaymentFilter) ([]*response.HomePaymentResponse, error) {
	if err := validatePeriod(filter.Month, filter.Year); err != nil {
		return nil, err
	}
	status, err := normalizeStatusFilter(filter.Status)
	if err != nil {
		return nil, err
	}
	from, to, err := dateBounds(filter.From, filter.To)
	if err != nil {
		return nil, err
	}

	homes, err := s.homeRepo.ListHomes(ctx)
	if err != nil {
		return nil, storageError("list homes", err)
	}
	payments, err := s.paymentRepo.ListPaymentsByPeriod(ctx, filter.Month, filter.Year)
	if err != nil {
		return nil, storageError("list payments", err)
	}

	byHome := make(map[int]*models.Payment, len(payments))
	for _, p := range payments {
		byHome[p.HomeID] = p
	}

	result := make([]*response.HomePaymentResponse, 0, len(homes))
	for _, home := range homes {
		item := toHomePayment(home, byHome[home.HomeID])

		if status != "" && item.PaymentStatus != status {
			continue
		}
		if from != nil {
			if item.PaidDate == nil || item.PaidDate.Before(*from) || !item.PaidDate.Before(*to) {
				continue
			}
		}
		result = append(result, item)
	}

	s.logger.WithFields(map[string]interface{}{
		"month":  filter.Month,
		"year":   filter.Year,
		"status": status,
		"count":  len(result),
	}).Debug("Payments listed")

	return result, nil
}

// normalizeStatusFilter maps "" and "all" to no filter
func normalizeStatusFilter(status string) (string, error) {
	switch status {
	case "", StatusFilterAll:
		return "", nil
	case models.PaymentStatusPaid, models.PaymentStatusUnpaid:
		return status, nil
	default:
		return "", invalidInput("status must be one of all, paid, unpaid; got %q", status)
	}
}

// dateBounds turns calendar days into the half open range [from, to)
func dateBounds(fromDay, toDay *time.Time) (*time.Time, *time.Time, error) {
	if fromDay == nil && toDay == nil {
		return nil, nil, nil
	}

	var from, to time.Time
	switch {
	case fromDay != nil && toDay != nil:
		from = startOfDay(*fromDay)
		to = startOfDay(*toDay).AddDate(0, 0, 1)
	case fromDay != nil:
		from = startOfDay(*fromDay)
		to = from.AddDate(0, 0, 1)
	default:
		to = startOfDay(*toDay).AddDate(0, 0, 1)
	}

	if !from.IsZero() && !from.Before(to) {
		return nil, nil, invalidInput("fromDate must not be after toDate")
	}
	return &from, &to, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func unpaidDefault(homeID, month, year int) *response.PaymentStatusResponse {
	return &response.PaymentStatusResponse{
		HomeID:          homeID,
		Month:           month,
		Year:            year,
		Status:          models.PaymentStatusUnpaid,
		PaidDate:        nil,
		CollectedAmount: 0,
	}
}

// toStatusResponse recomputes collected_amount from the record's status
func toStatusResponse(p *models.Payment, monthlyAmount int64) *response.PaymentStatusResponse {
	resp := &response.PaymentStatusResponse{
		ID:     p.ID,
		HomeID: p.HomeID,
		Month:  p.Month,
		Year:   p.Year,
		Status: models.PaymentStatusUnpaid,
	}
	if p.IsPaid() {
		resp.Status = models.PaymentStatusPaid
		resp.PaidDate = p.PaidDate
		resp.CollectedAmount = monthlyAmount
	}
	return resp
}

func toHomePayment(home *models.Home, p *models.Payment) *response.HomePaymentResponse {
	item := &response.HomePaymentResponse{
		HomeID:        home.HomeID,
		CustomerName:  home.CustomerName,
		Phone:         home.Phone,
		SetTopBoxID:   home.SetTopBoxID,
		MonthlyAmount: home.MonthlyAmount,
		CreatedAt:     home.CreatedAt,
		UpdatedAt:     home.UpdatedAt,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	if p != nil && p.IsPaid() {
		item.PaymentStatus = models.PaymentStatusPaid
		item.PaidDate = p.PaidDate
		item.CollectedAmount = home.MonthlyAmount
	}
	return item
}

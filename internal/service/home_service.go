package service

import (
	"context"
	"fmt"
	"strings"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/models/response"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/pkg/logger"
)

// CreateHomeRequest represents the request body for registering a home
type CreateHomeRequest struct {
	HomeID        int    `json:"home_id" binding:"required,gt=0" example:"101"`
	CustomerName  string `json:"customer_name" binding:"required" example:"Ravi Kumar"`
	Phone         string `json:"phone" binding:"required" example:"9876543210"`
	SetTopBoxID   string `json:"set_top_box_id" binding:"required" example:"STB-0101"`
	MonthlyAmount int64  `json:"monthly_amount" binding:"required,gt=0" example:"200"`
}

// UpdateHomeRequest represents the request body for editing a home. home_id cannot change.
type UpdateHomeRequest struct {
	CustomerName  string `json:"customer_name" binding:"required" example:"Ravi Kumar"`
	Phone         string `json:"phone" binding:"required" example:"9876543210"`
	SetTopBoxID   string `json:"set_top_box_id" binding:"required" example:"STB-0101"`
	MonthlyAmount int64  `json:"monthly_amount" binding:"required,gt=0" example:"250"`
}

// HomeService defines the home registry operations
type HomeService interface {
	CreateHome(ctx context.Context, req *CreateHomeRequest) (*models.Home, error)
	GetHome(ctx context.Context, homeID int) (*response.HomePaymentResponse, error)
	ListHomes(ctx context.Context) ([]*models.Home, error)
	UpdateHome(ctx context.Context, homeID int, req *UpdateHomeRequest) (*models.Home, error)
	DeleteHome(ctx context.Context, homeID int) error
}

// homeService implements HomeService
type homeService struct {
	homeRepo    repository.HomeRepository
	paymentRepo repository.PaymentRepository
	logger      *logger.Logger
	now         Clock
}

// NewHomeService creates a new home service
func NewHomeService(homeRepo repository.HomeRepository, paymentRepo repository.PaymentRepository, logger *logger.Logger, now Clock) HomeService {
	if now == nil {
		now = SystemClock
	}
	return &homeService{
		homeRepo:    homeRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
		now:         now,
	}
}

// CreateHome registers a home and seeds its unpaid record for the current month
func (s *homeService) CreateHome(ctx context.Context, req *CreateHomeRequest) (*models.Home, error) {
	if req == nil {
		return nil, invalidInput("request body is required")
	}
	if err := validateHomeID(req.HomeID); err != nil {
		return nil, err
	}
	if err := validateHomeFields(req.CustomerName, req.Phone, req.SetTopBoxID, req.MonthlyAmount); err != nil {
		return nil, err
	}

	home := &models.Home{
		HomeID:        req.HomeID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Phone:         strings.TrimSpace(req.Phone),
		SetTopBoxID:   strings.TrimSpace(req.SetTopBoxID),
		MonthlyAmount: req.MonthlyAmount,
	}

	now := s.now()
	seed := &models.Payment{
		Month:           int(now.Month()),
		Year:            now.Year(),
		Status:          models.PaymentStatusUnpaid,
		CollectedAmount: 0,
	}

	if err := s.homeRepo.CreateHome(ctx, home, seed); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: a home with ID %d already exists", ErrConflict, req.HomeID)
		}
		s.logger.WithError(err).WithField("home_id", req.HomeID).Error("Failed to create home")
		return nil, storageError("create home", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"home_id":        home.HomeID,
		"monthly_amount": home.MonthlyAmount,
	}).Info("Home created successfully")

	return home, nil
}

// GetHome returns a home with its derived status for the current month
func (s *homeService) GetHome(ctx context.Context, homeID int) (*response.HomePaymentResponse, error) {
	if err := validateHomeID(homeID); err != nil {
		return nil, err
	}

	home, err := s.homeRepo.GetHomeByHomeID(ctx, homeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notFound("home %d does not exist", homeID)
		}
		return nil, storageError("get home", err)
	}

	now := s.now()
	payment, err := s.paymentRepo.FindPayment(ctx, homeID, int(now.Month()), now.Year())
	if err != nil {
		return nil, storageError("get payment", err)
	}

	return toHomePayment(home, payment), nil
}

// ListHomes returns every home ordered by home_id
func (s *homeService) ListHomes(ctx context.Context) ([]*models.Home, error) {
	homes, err := s.homeRepo.ListHomes(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list homes")
		return nil, storageError("list homes", err)
	}
	return homes, nil
}

// UpdateHome replaces the editable fields of a home
func (s *homeService) UpdateHome(ctx context.Context, homeID int, req *UpdateHomeRequest) (*models.Home, error) {
	if err := validateHomeID(homeID); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, invalidInput("request body is required")
	}
	if err := validateHomeFields(req.CustomerName, req.Phone, req.SetTopBoxID, req.MonthlyAmount); err != nil {
		return nil, err
	}

	rows, err := s.homeRepo.UpdateHome(ctx, homeID, map[string]interface{}{
		"customer_name":  strings.TrimSpace(req.CustomerName),
		"phone":          strings.TrimSpace(req.Phone),
		"set_top_box_id": strings.TrimSpace(req.SetTopBoxID),
		"monthly_amount": req.MonthlyAmount,
	})
	if err != nil {
		s.logger.WithError(err).WithField("home_id", homeID).Error("Failed to update home")
		return nil, storageError("update home", err)
	}
	if rows == 0 {
		return nil, notFound("home %d does not exist", homeID)
	}

	home, err := s.homeRepo.GetHomeByHomeID(ctx, homeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notFound("home %d does not exist", homeID)
		}
		return nil, storageError("get home", err)
	}

	s.logger.WithField("home_id", homeID).Info("Home updated successfully")
	return home, nil
}

// DeleteHome removes a home and all of its payment records
func (s *homeService) DeleteHome(ctx context.Context, homeID int) error {
	if err := validateHomeID(homeID); err != nil {
		return err
	}

	deleted, err := s.homeRepo.DeleteHome(ctx, homeID)
	if err != nil {
		s.logger.WithError(err).WithField("home_id", homeID).Error("Failed to delete home")
		return storageError("delete home", err)
	}
	if !deleted {
		return notFound("home %d does not exist", homeID)
	}

	s.logger.WithField("home_id", homeID).Info("Home deleted successfully")
	return nil
}

func validateHomeFields(customerName, phone, setTopBoxID string, monthlyAmount int64) error {
	switch {
	case strings.TrimSpace(customerName) == "":
		return invalidInput("customer_name is required")
	case strings.TrimSpace(phone) == "":
		return invalidInput("phone is required")
	case strings.TrimSpace(setTopBoxID) == "":
		return invalidInput("set_top_box_id is required")
	case monthlyAmount <= 0:
		return invalidInput("monthly_amount must be a positive amount")
	}
	return nil
}

package service

import (
	"context"

	"cablepay-be-svc/internal/models/response"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/pkg/logger"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	// GetStats aggregates one month; nil month or year default to the current one
	GetStats(ctx context.Context, month, year *int) (*response.DashboardStatisticsResponse, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *logger.Logger
	now           Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *logger.Logger, now Clock) DashboardService {
	if now == nil {
		now = SystemClock
	}
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
		now:           now,
	}
}

// GetStats gets the paid/unpaid totals of every home for one month
func (s *dashboardService) GetStats(ctx context.Context, month, year *int) (*response.DashboardStatisticsResponse, error) {
	now := s.now()
	m, y := int(now.Month()), now.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}
	if err := validatePeriod(m, y); err != nil {
		return nil, err
	}

	statistics, err := s.dashboardRepo.GetDashboardStatistics(ctx, m, y)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"month": m,
			"year":  y,
		}).Error("Failed to get dashboard statistics")
		return nil, storageError("get dashboard statistics", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"month":  m,
		"year":   y,
		"total":  statistics.Total,
		"unpaid": statistics.Unpaid,
	}).Info("Dashboard statistics retrieved successfully")

	return statistics, nil
}

package repository

import (
	"context"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/models/response"

	"gorm.io/gorm"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetDashboardStatistics(ctx context.Context, month, year int) (*response.DashboardStatisticsResponse, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetDashboardStatistics aggregates the derived payment state of every home for one month.
// Homes without a record for the month count as unpaid.
func (r *dashboardRepository) GetDashboardStatistics(ctx context.Context, month, year int) (*response.DashboardStatisticsResponse, error) {
	var result response.DashboardStatisticsResponse

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN p.status = ? THEN 1 ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN p.status = ? THEN h.monthly_amount ELSE 0 END), 0) AS total_collected,
			COALESCE(SUM(CASE WHEN p.status = ? THEN 0 ELSE h.monthly_amount END), 0) AS total_pending
		FROM homes h
		LEFT JOIN payments p
			ON p.home_id = h.home_id
		   AND p.month = ?
		   AND p.year = ?
	`

	paid := models.PaymentStatusPaid
	err := r.db.WithContext(ctx).Raw(query, paid, paid, paid, month, year).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	result.Month = month
	result.Year = year
	result.Unpaid = result.Total - result.Paid

	return &result, nil
}

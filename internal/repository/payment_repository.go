package repository

import (
	"context"
	"errors"
	"time"

	"cablepay-be-svc/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository defines the storage operations on payment records.
// A record is addressed by its (home_id, month, year) key.
type PaymentRepository interface {
	// FindPayment returns nil without error when no record exists for the key
	FindPayment(ctx context.Context, homeID, month, year int) (*models.Payment, error)
	// CreatePayment inserts a record; a second record for the same key fails with gorm.ErrDuplicatedKey
	CreatePayment(ctx context.Context, payment *models.Payment) error
	// UpdatePayment updates fields of the record with the key and reports how many rows changed
	UpdatePayment(ctx context.Context, homeID, month, year int, fields map[string]interface{}) (int64, error)
	ListPaymentsByPeriod(ctx context.Context, month, year int) ([]*models.Payment, error)
	ListPaymentsByYear(ctx context.Context, year int) ([]*models.Payment, error)
	// CreateMissingPayments inserts an unpaid record for every home lacking one for the period
	// and returns the number of records created
	CreateMissingPayments(ctx context.Context, month, year int, now time.Time) (int64, error)
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindPayment retrieves the payment record for a home and period
func (r *paymentRepository) FindPayment(ctx context.Context, homeID, month, year int) (*models.Payment, error) {
	var payment models.Payment

	err := r.db.WithContext(ctx).
		Where("home_id = ? AND month = ? AND year = ?", homeID, month, year).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// CreatePayment creates a new payment record
func (r *paymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// UpdatePayment updates the payment record for a home and period
func (r *paymentRepository) UpdatePayment(ctx context.Context, homeID, month, year int, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("home_id = ? AND month = ? AND year = ?", homeID, month, year).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// ListPaymentsByPeriod retrieves every payment record of a month, whatever its status
func (r *paymentRepository) ListPaymentsByPeriod(ctx context.Context, month, year int) ([]*models.Payment, error) {
	var payments []*models.Payment

	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("home_id").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// ListPaymentsByYear retrieves every payment record of a year
func (r *paymentRepository) ListPaymentsByYear(ctx context.Context, year int) ([]*models.Payment, error) {
	var payments []*models.Payment

	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("home_id, month").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// CreateMissingPayments runs a single INSERT ... SELECT over the homes lacking a record for the period.
// Rows inserted concurrently by another writer are skipped by the conflict clause instead of failing.
func (r *paymentRepository) CreateMissingPayments(ctx context.Context, month, year int, now time.Time) (int64, error) {
	query := `
		INSERT INTO payments (home_id, month, year, status, paid_date, collected_amount, created_at, updated_at)
		SELECT h.home_id, ?, ?, ?, NULL, 0, ?, ?
		FROM homes h
		WHERE NOT EXISTS (
			SELECT 1 FROM payments p
			WHERE p.home_id = h.home_id AND p.month = ? AND p.year = ?
		)
		ON CONFLICT (home_id, month, year) DO NOTHING
	`

	result := r.db.WithContext(ctx).Exec(query,
		month, year, models.PaymentStatusUnpaid, now, now,
		month, year,
	)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

package repository

import (
	"context"

	"cablepay-be-svc/internal/models"

	"gorm.io/gorm"
)

// HomeRepository defines the interface for home data operations
type HomeRepository interface {
	// CreateHome inserts the home and its initial payment record in one transaction
	CreateHome(ctx context.Context, home *models.Home, initial *models.Payment) error
	GetHomeByHomeID(ctx context.Context, homeID int) (*models.Home, error)
	ListHomes(ctx context.Context) ([]*models.Home, error)
	UpdateHome(ctx context.Context, homeID int, fields map[string]interface{}) (int64, error)
	// DeleteHome removes the home and all its payment records and reports whether the home existed
	DeleteHome(ctx context.Context, homeID int) (bool, error)
}

// homeRepository implements HomeRepository
type homeRepository struct {
	db *gorm.DB
}

// NewHomeRepository creates a new instance of HomeRepository
func NewHomeRepository(db *gorm.DB) HomeRepository {
	return &homeRepository{
		db: db,
	}
}

// CreateHome creates a home together with its first payment record
func (r *homeRepository) CreateHome(ctx context.Context, home *models.Home, initial *models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(home).Error; err != nil {
			return err
		}
		if initial == nil {
			return nil
		}
		initial.HomeID = home.HomeID
		return tx.Create(initial).Error
	})
}

// GetHomeByHomeID retrieves a home by its administrator assigned id
func (r *homeRepository) GetHomeByHomeID(ctx context.Context, homeID int) (*models.Home, error) {
	var home models.Home

	err := r.db.WithContext(ctx).Where("home_id = ?", homeID).First(&home).Error
	if err != nil {
		return nil, err
	}

	return &home, nil
}

// ListHomes retrieves all homes ordered by home_id
func (r *homeRepository) ListHomes(ctx context.Context) ([]*models.Home, error) {
	var homes []*models.Home

	err := r.db.WithContext(ctx).Order("home_id ASC").Find(&homes).Error
	if err != nil {
		return nil, err
	}

	return homes, nil
}

// UpdateHome updates the editable fields of a home
func (r *homeRepository) UpdateHome(ctx context.Context, homeID int, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Home{}).
		Where("home_id = ?", homeID).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// DeleteHome deletes the payments of a home, then the home
func (r *homeRepository) DeleteHome(ctx context.Context, homeID int) (bool, error) {
	var deleted bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("home_id = ?", homeID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		result := tx.Where("home_id = ?", homeID).Delete(&models.Home{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

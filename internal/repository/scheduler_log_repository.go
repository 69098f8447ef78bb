package repository

import (
	"context"

	"cablepay-be-svc/internal/models"

	"gorm.io/gorm"
)

// SchedulerLogRepository defines the interface for scheduler log data operations
type SchedulerLogRepository interface {
	CreateLog(ctx context.Context, log *models.SchedulerLog) error
	ListLogsByDocumentID(ctx context.Context, documentID string) ([]*models.SchedulerLog, error)
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{
		db: db,
	}
}

// CreateLog creates a new scheduler log record
func (r *schedulerLogRepository) CreateLog(ctx context.Context, log *models.SchedulerLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListLogsByDocumentID retrieves the log rows of one scheduler run in insertion order
func (r *schedulerLogRepository) ListLogsByDocumentID(ctx context.Context, documentID string) ([]*models.SchedulerLog, error) {
	var logs []*models.SchedulerLog

	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).Order("id").Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ecotrack/internal/model"
)

// CarbonLogRepository defines carbon log persistence operations.
type CarbonLogRepository interface {
	Create(ctx context.Context, log *model.CarbonLog) error
	ListByUser(ctx context.Context, userID uint) ([]model.CarbonLog, error)
	ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]model.CarbonLog, error)
}

type carbonLogRepository struct {
	db *gorm.DB
}

// NewCarbonLogRepository creates a new carbon log repository.
func NewCarbonLogRepository(db *gorm.DB) CarbonLogRepository {
	return &carbonLogRepository{db: db}
}

// Create creates a new carbon log entry.
func (r *carbonLogRepository) Create(ctx context.Context, log *model.CarbonLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByUser lists every carbon log of a user in insertion order.
func (r *carbonLogRepository) ListByUser(ctx context.Context, userID uint) ([]model.CarbonLog, error) {
	var logs []model.CarbonLog
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserSince lists the carbon logs of a user dated at or after since.
func (r *carbonLogRepository) ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]model.CarbonLog, error) {
	var logs []model.CarbonLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date >= ?", userID, since).
		Order("id").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

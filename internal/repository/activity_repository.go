package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ecotrack/internal/model"
)

// ActivityRepository defines activity persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListByUser(ctx context.Context, userID uint) ([]model.Activity, error)
	ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]model.Activity, error)
	// WithTransaction runs fn with activity and carbon log repositories bound to one transaction.
	// Returning an error from fn rolls back every write made through them.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, activities ActivityRepository, logs CarbonLogRepository) error) error
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create creates a new activity record.
func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListByUser lists every activity of a user in insertion order.
func (r *activityRepository) ListByUser(ctx context.Context, userID uint) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// ListByUserSince lists the activities of a user dated at or after since.
func (r *activityRepository) ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("id").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// WithTransaction executes a function within a database transaction.
func (r *activityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, activities ActivityRepository, logs CarbonLogRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &activityRepository{db: tx}, &carbonLogRepository{db: tx})
	})
}

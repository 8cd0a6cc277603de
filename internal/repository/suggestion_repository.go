package repository

import (
	"context"

	"gorm.io/gorm"

	"ecotrack/internal/model"
)

// SuggestionRepository defines suggestion persistence operations.
type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *model.Suggestion) error
	ListByCategory(ctx context.Context, categoryID uint) ([]model.Suggestion, error)
	Exists(ctx context.Context, categoryID uint, tip string) (bool, error)
}

type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository.
func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

// Create creates a new suggestion.
func (r *suggestionRepository) Create(ctx context.Context, suggestion *model.Suggestion) error {
	return r.db.WithContext(ctx).Create(suggestion).Error
}

// ListByCategory lists the suggestions of a category ordered by ID.
func (r *suggestionRepository) ListByCategory(ctx context.Context, categoryID uint) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

// Exists reports whether the category already carries the same tip.
func (r *suggestionRepository) Exists(ctx context.Context, categoryID uint, tip string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Suggestion{}).
		Where("category_id = ? AND tip = ?", categoryID, tip).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

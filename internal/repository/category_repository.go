package repository

import (
	"context"

	"gorm.io/gorm"

	"ecotrack/internal/model"
)

// CategoryRepository defines activity category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.ActivityCategory) error
	Update(ctx context.Context, category *model.ActivityCategory) error
	FindByID(ctx context.Context, id uint) (*model.ActivityCategory, error)
	FindByName(ctx context.Context, name string) (*model.ActivityCategory, error)
	List(ctx context.Context) ([]model.ActivityCategory, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.ActivityCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update updates an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *model.ActivityCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// FindByID finds a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.ActivityCategory, error) {
	var category model.ActivityCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName finds a category by its unique name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.ActivityCategory, error) {
	var category model.ActivityCategory
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List lists all categories ordered by ID.
func (r *categoryRepository) List(ctx context.Context) ([]model.ActivityCategory, error) {
	var categories []model.ActivityCategory
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

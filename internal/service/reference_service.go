package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"ecotrack/internal/cache"
	"ecotrack/internal/model"
	"ecotrack/internal/repository"
	"ecotrack/internal/seed"
)

// SeedResult counts what a seeding run changed.
type SeedResult struct {
	CategoriesCreated  int `json:"categories_created"`
	CategoriesUpdated  int `json:"categories_updated"`
	SuggestionsCreated int `json:"suggestions_created"`
	SuggestionsSkipped int `json:"suggestions_skipped"`
}

// ReferenceService serves and seeds categories and their suggestions.
type ReferenceService interface {
	ListCategories(ctx context.Context) ([]model.ActivityCategory, error)
	ListSuggestions(ctx context.Context, categoryID uint) ([]model.Suggestion, error)
	SeedReferenceData(ctx context.Context, data *seed.Data) (*SeedResult, error)
}

type referenceService struct {
	categoryRepo   repository.CategoryRepository
	suggestionRepo repository.SuggestionRepository
	cache          *cache.Client
}

// NewReferenceService creates a new reference data service.
func NewReferenceService(
	categoryRepo repository.CategoryRepository,
	suggestionRepo repository.SuggestionRepository,
	cache *cache.Client,
) ReferenceService {
	return &referenceService{
		categoryRepo:   categoryRepo,
		suggestionRepo: suggestionRepo,
		cache:          cache,
	}
}

func (s *referenceService) ListCategories(ctx context.Context) ([]model.ActivityCategory, error) {
	var cached []model.ActivityCategory
	if s.cache.GetJSON(ctx, categoriesCacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []model.ActivityCategory{}
	}

	s.cache.SetJSON(ctx, categoriesCacheKey, categories, referenceCacheTTL)
	return categories, nil
}

// ListSuggestions lists a category's suggestions; unknown categories yield an empty list.
func (s *referenceService) ListSuggestions(ctx context.Context, categoryID uint) ([]model.Suggestion, error) {
	suggestions, err := cachedSuggestions(ctx, s.cache, s.suggestionRepo, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	return suggestions, nil
}

// SeedReferenceData upserts categories by name and adds suggestions not already present.
// It is safe to run repeatedly.
func (s *referenceService) SeedReferenceData(ctx context.Context, data *seed.Data) (*SeedResult, error) {
	result := &SeedResult{}
	if data == nil {
		return result, nil
	}

	for _, item := range data.Categories {
		category, err := s.upsertCategory(ctx, item, result)
		if err != nil {
			return result, err
		}

		for _, sug := range item.Suggestions {
			exists, err := s.suggestionRepo.Exists(ctx, category.ID, sug.Tip)
			if err != nil {
				return result, fmt.Errorf("check suggestion for %s: %w", item.Name, err)
			}
			if exists {
				result.SuggestionsSkipped++
				continue
			}

			if err := s.suggestionRepo.Create(ctx, &model.Suggestion{
				CategoryID:        category.ID,
				Tip:               sug.Tip,
				ReductionEstimate: sug.Estimate(),
			}); err != nil {
				return result, fmt.Errorf("create suggestion for %s: %w", item.Name, err)
			}
			result.SuggestionsCreated++
		}

		_ = s.cache.Delete(ctx, suggestionsCacheKey(category.ID))
	}

	_ = s.cache.Delete(ctx, categoriesCacheKey)
	if result.SuggestionsCreated > 0 {
		// Every user's recommendations are built from the suggestion set.
		_ = s.cache.DeletePrefix(ctx, recommendationsCachePrefix)
	}
	return result, nil
}

func (s *referenceService) upsertCategory(ctx context.Context, item seed.Category, result *SeedResult) (*model.ActivityCategory, error) {
	var description *string
	if item.Description != "" {
		d := item.Description
		description = &d
	}

	existing, err := s.categoryRepo.FindByName(ctx, item.Name)
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find category %s: %w", item.Name, err)
	}

	if existing != nil {
		if description != nil && (existing.Description == nil || *existing.Description != *description) {
			existing.Description = description
			if err := s.categoryRepo.Update(ctx, existing); err != nil {
				return nil, fmt.Errorf("update category %s: %w", item.Name, err)
			}
			result.CategoriesUpdated++
		}
		return existing, nil
	}

	category := &model.ActivityCategory{Name: item.Name, Description: description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category %s: %w", item.Name, err)
	}
	result.CategoriesCreated++
	return category, nil
}

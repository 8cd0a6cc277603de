package service

import (
	"context"
	"fmt"
	"time"

	"ecotrack/internal/cache"
	"ecotrack/internal/model"
	"ecotrack/internal/repository"
)

const (
	userCacheTTL            = 5 * time.Minute
	recommendationsCacheTTL = time.Minute
	dashboardCacheTTL       = time.Minute
	referenceCacheTTL       = 10 * time.Minute

	categoriesCacheKey         = "categories:all"
	recommendationsCachePrefix = "recommendations:user:"
)

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func recommendationsCacheKey(userID uint) string {
	return fmt.Sprintf("%s%d", recommendationsCachePrefix, userID)
}

func dashboardCachePrefix(userID uint) string {
	return fmt.Sprintf("dashboard:user:%d:", userID)
}

func dashboardCacheKey(userID uint, days int) string {
	return fmt.Sprintf("%sdays:%d", dashboardCachePrefix(userID), days)
}

func suggestionsCacheKey(categoryID uint) string {
	return fmt.Sprintf("suggestions:category:%d", categoryID)
}

// cachedSuggestions returns a category's suggestions, reading through the cache.
func cachedSuggestions(ctx context.Context, c *cache.Client, repo repository.SuggestionRepository, categoryID uint) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	if c.GetJSON(ctx, suggestionsCacheKey(categoryID), &suggestions) {
		return suggestions, nil
	}

	suggestions, err := repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}

	c.SetJSON(ctx, suggestionsCacheKey(categoryID), suggestions, referenceCacheTTL)
	return suggestions, nil
}

package service

import (
	"context"
	"fmt"

	"ecotrack/internal/cache"
	"ecotrack/internal/model"
	"ecotrack/internal/repository"
)

// Recommendation pairs one logged activity with one tip of its category.
type Recommendation struct {
	Activity           string   `json:"activity"`
	Tip                string   `json:"tip"`
	PotentialReduction *float64 `json:"potential_reduction"`
}

// RecommendationService derives reduction tips from a user's activities.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID uint) ([]Recommendation, error)
}

type recommendationService struct {
	activityRepo   repository.ActivityRepository
	suggestionRepo repository.SuggestionRepository
	cache          *cache.Client
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	activityRepo repository.ActivityRepository,
	suggestionRepo repository.SuggestionRepository,
	cache *cache.Client,
) RecommendationService {
	return &recommendationService{
		activityRepo:   activityRepo,
		suggestionRepo: suggestionRepo,
		cache:          cache,
	}
}

// GetRecommendations emits one entry per (activity, suggestion of the activity's category),
// activities in insertion order and suggestions in ID order. Tips repeat for every
// activity of the same category.
func (s *recommendationService) GetRecommendations(ctx context.Context, userID uint) ([]Recommendation, error) {
	var cached []Recommendation
	if s.cache.GetJSON(ctx, recommendationsCacheKey(userID), &cached) {
		return cached, nil
	}

	activities, err := s.activityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	byCategory := make(map[uint][]model.Suggestion)
	recs := make([]Recommendation, 0)
	for _, act := range activities {
		suggestions, ok := byCategory[act.CategoryID]
		if !ok {
			suggestions, err = cachedSuggestions(ctx, s.cache, s.suggestionRepo, act.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("list suggestions for category %d: %w", act.CategoryID, err)
			}
			byCategory[act.CategoryID] = suggestions
		}

		for _, sug := range suggestions {
			recs = append(recs, Recommendation{
				Activity:           act.Description,
				Tip:                sug.Tip,
				PotentialReduction: sug.ReductionEstimate,
			})
		}
	}

	s.cache.SetJSON(ctx, recommendationsCacheKey(userID), recs, recommendationsCacheTTL)
	return recs, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/seed"
)

func TestReferenceService_SeedReferenceData(t *testing.T) {
	store := newFakeStore()
	svc := NewReferenceService(store.Categories(), store.Suggestions(), nil)
	data, err := seed.Parse([]byte(`{"categories":[
		{"name":"transport","description":"km travelled","suggestions":[{"tip":"Cycle","reduction_estimate":"0.17"},{"tip":"Train"}]},
		{"name":"food","suggestions":[{"tip":"Plant-based"}]}
	]}`))
	require.NoError(t, err)

	result, err := svc.SeedReferenceData(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, &SeedResult{CategoriesCreated: 2, SuggestionsCreated: 3}, result)
	require.Len(t, store.categories, 2)
	require.Len(t, store.suggestions, 3)
	assert.Equal(t, "km travelled", *store.categories[0].Description)
	require.NotNil(t, store.suggestions[0].ReductionEstimate)
	assert.Equal(t, 0.17, *store.suggestions[0].ReductionEstimate)
	assert.Nil(t, store.suggestions[1].ReductionEstimate)
}

func TestReferenceService_SeedIsRepeatable(t *testing.T) {
	store := newFakeStore()
	svc := NewReferenceService(store.Categories(), store.Suggestions(), nil)
	data, err := seed.Default()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.SeedReferenceData(ctx, data)
	require.NoError(t, err)
	categories, suggestions := len(store.categories), len(store.suggestions)

	again, err := svc.SeedReferenceData(ctx, data)

	require.NoError(t, err)
	assert.Zero(t, again.CategoriesCreated)
	assert.Zero(t, again.CategoriesUpdated)
	assert.Zero(t, again.SuggestionsCreated)
	assert.Equal(t, suggestions, again.SuggestionsSkipped)
	assert.Len(t, store.categories, categories)
	assert.Len(t, store.suggestions, suggestions)
}

func TestReferenceService_SeedUpdatesDescription(t *testing.T) {
	store := newFakeStore()
	store.addCategory("food")
	svc := NewReferenceService(store.Categories(), store.Suggestions(), nil)

	result, err := svc.SeedReferenceData(context.Background(), &seed.Data{Categories: []seed.Category{{Name: "food", Description: "meals"}}})

	require.NoError(t, err)
	assert.Equal(t, 1, result.CategoriesUpdated)
	assert.Equal(t, "meals", *store.categories[0].Description)
}

func TestReferenceService_ListSuggestionsInvalidatedBySeed(t *testing.T) {
	store := newFakeStore()
	food := store.addCategory("food")
	store.addSuggestion(food, "Plant-based", nil)
	c, _ := newTestCache(t)
	svc := NewReferenceService(store.Categories(), store.Suggestions(), c)
	ctx := context.Background()

	before, err := svc.ListSuggestions(ctx, food)
	require.NoError(t, err)
	require.Len(t, before, 1)

	_, err = svc.SeedReferenceData(ctx, &seed.Data{Categories: []seed.Category{{
		Name:        "food",
		Suggestions: []seed.Suggestion{{Tip: "Less waste"}},
	}}})
	require.NoError(t, err)

	after, err := svc.ListSuggestions(ctx, food)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestReferenceService_ListCategories(t *testing.T) {
	store := newFakeStore()
	c, mr := newTestCache(t)
	svc := NewReferenceService(store.Categories(), store.Suggestions(), c)
	ctx := context.Background()

	empty, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	mr.FastForward(referenceCacheTTL + time.Second)
	store.addCategory("transport")

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "transport", categories[0].Name)
}

func TestReferenceService_UnknownCategoryHasNoSuggestions(t *testing.T) {
	svc := NewReferenceService(newFakeStore().Categories(), newFakeStore().Suggestions(), nil)

	suggestions, err := svc.ListSuggestions(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestReferenceService_SeedRefreshesRecommendations(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser("ada")
	food := store.addCategory("food")
	store.addSuggestion(food, "Plant-based", nil)
	addActivity(store, userID, food, "dinner", 1, 2.5, time.Now())
	c, _ := newTestCache(t)
	refs := NewReferenceService(store.Categories(), store.Suggestions(), c)
	recs := NewRecommendationService(store.Activities(), store.Suggestions(), c)
	ctx := context.Background()

	before, err := recs.GetRecommendations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, before, 1)

	_, err = refs.SeedReferenceData(ctx, &seed.Data{Categories: []seed.Category{{
		Name:        "food",
		Suggestions: []seed.Suggestion{{Tip: "Less waste"}},
	}}})
	require.NoError(t, err)

	after, err := recs.GetRecommendations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []Recommendation{
		{Activity: "dinner", Tip: "Plant-based"},
		{Activity: "dinner", Tip: "Less waste"},
	}, after)
}

func TestReferenceService_SeedWithoutNewTipsKeepsRecommendations(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser("ada")
	food := store.addCategory("food")
	store.addSuggestion(food, "Plant-based", nil)
	addActivity(store, userID, food, "dinner", 1, 2.5, time.Now())
	c, mr := newTestCache(t)
	refs := NewReferenceService(store.Categories(), store.Suggestions(), c)
	recs := NewRecommendationService(store.Activities(), store.Suggestions(), c)
	ctx := context.Background()

	_, err := recs.GetRecommendations(ctx, userID)
	require.NoError(t, err)

	_, err = refs.SeedReferenceData(ctx, &seed.Data{Categories: []seed.Category{{
		Name:        "food",
		Suggestions: []seed.Suggestion{{Tip: "Plant-based"}},
	}}})
	require.NoError(t, err)

	assert.True(t, mr.Exists(recommendationsCacheKey(userID)))
}

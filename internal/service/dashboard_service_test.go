package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/model"
)

var dashboardNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func newDashboardServiceWithStore(store *fakeStore, defaultDays int) *dashboardService {
	svc := NewDashboardService(store.Activities(), store.Logs(), nil, defaultDays).(*dashboardService)
	svc.now = func() time.Time { return dashboardNow }
	return svc
}

func TestDashboardService_TotalIsSumOfLogs(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser("ada")
	cat := store.addCategory("transport")
	addActivity(store, userID, cat, "a", 10, 0.21, dashboardNow.Add(-time.Hour))
	addActivity(store, userID, cat, "b", 10, 0.5, dashboardNow.Add(-48*time.Hour))
	addActivity(store, userID, cat, "c", 0, 0.3, dashboardNow)
	svc := newDashboardServiceWithStore(store, 30)

	data, err := svc.GetDashboardData(context.Background(), userID, 0)

	require.NoError(t, err)
	assert.Equal(t, 7.1, data.TotalEmission)
	assert.Len(t, data.Activities, 3)
	assert.Len(t, data.Logs, 3)
	assert.Equal(t, 30, data.WindowDays)
	assert.Equal(t, time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC), data.Since)
}

func TestDashboardService_WindowExcludesOldRows(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser("ada")
	transport := store.addCategory("transport")
	food := store.addCategory("food")
	addActivity(store, userID, transport, "recent", 10, 0.2, dashboardNow.AddDate(0, 0, -3))
	addActivity(store, userID, food, "today", 2, 1.5, dashboardNow)
	addActivity(store, userID, transport, "last quarter", 100, 0.2, dashboardNow.AddDate(0, -3, 0))
	svc := newDashboardServiceWithStore(store, 30)

	data, err := svc.GetDashboardData(context.Background(), userID, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, data.WindowDays)
	require.Len(t, data.Activities, 2)
	require.Len(t, data.Logs, 2)
	assert.Equal(t, 5.0, data.TotalEmission)
	assert.Equal(t, []CategoryEmission{
		{CategoryID: transport, Emission: 2},
		{CategoryID: food, Emission: 3},
	}, data.ByCategory)
}

func TestDashboardService_UnknownUserIsEmpty(t *testing.T) {
	svc := newDashboardServiceWithStore(newFakeStore(), 30)

	data, err := svc.GetDashboardData(context.Background(), 77, 30)

	require.NoError(t, err)
	assert.Equal(t, []model.Activity{}, data.Activities)
	assert.Equal(t, []model.CarbonLog{}, data.Logs)
	assert.Equal(t, []CategoryEmission{}, data.ByCategory)
	assert.Zero(t, data.TotalEmission)
}

func TestDashboardService_FetchFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeStore)
	}{
		{"activities", func(s *fakeStore) { s.errActivityList = stderrors.New("down") }},
		{"logs", func(s *fakeStore) { s.errLogList = stderrors.New("down") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			tt.setup(store)
			svc := newDashboardServiceWithStore(store, 30)

			data, err := svc.GetDashboardData(context.Background(), 1, 30)

			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestDashboardService_IdempotentWithCache(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser("ada")
	cat := store.addCategory("heating")
	addActivity(store, userID, cat, "boiler", 50, 0.18, dashboardNow.Add(-time.Hour))
	c, mr := newTestCache(t)
	svc := NewDashboardService(store.Activities(), store.Logs(), c, 30).(*dashboardService)
	svc.now = func() time.Time { return dashboardNow }
	ctx := context.Background()

	first, err := svc.GetDashboardData(ctx, userID, 30)
	require.NoError(t, err)
	assert.True(t, mr.Exists(dashboardCacheKey(userID, 30)))

	second, err := svc.GetDashboardData(ctx, userID, 30)
	require.NoError(t, err)

	assert.Equal(t, first.TotalEmission, second.TotalEmission)
	assert.Equal(t, first.WindowDays, second.WindowDays)
	assert.True(t, first.Since.Equal(second.Since))
	require.Len(t, second.Activities, 1)
	assert.Equal(t, first.Activities[0].Description, second.Activities[0].Description)
}

func TestNewDashboardService_DefaultsWindow(t *testing.T) {
	svc := NewDashboardService(nil, nil, nil, 0).(*dashboardService)
	assert.Equal(t, 30, svc.defaultWindowDays)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 59, 0, 0, time.FixedZone("X", -2*3600))

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), windowStart(now, 1))
	assert.Equal(t, time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC), windowStart(now, 7))
}

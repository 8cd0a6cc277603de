package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ecotrack/internal/cache"
	"ecotrack/internal/model"
	"ecotrack/internal/repository"
)

// DashboardData summarizes a user's footprint over a trailing window of days.
type DashboardData struct {
	Activities    []model.Activity   `json:"activities"`
	Logs          []model.CarbonLog  `json:"logs"`
	TotalEmission float64            `json:"total_emission"`
	WindowDays    int                `json:"window_days"`
	Since         time.Time          `json:"since"`
	ByCategory    []CategoryEmission `json:"by_category"`
}

// CategoryEmission is the emission of one category inside the window.
type CategoryEmission struct {
	CategoryID uint    `json:"category_id"`
	Emission   float64 `json:"emission"`
}

// DashboardService aggregates activities and carbon logs for display.
type DashboardService interface {
	GetDashboardData(ctx context.Context, userID uint, windowDays int) (*DashboardData, error)
}

type dashboardService struct {
	activityRepo      repository.ActivityRepository
	logRepo           repository.CarbonLogRepository
	cache             *cache.Client
	defaultWindowDays int
	now               func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	activityRepo repository.ActivityRepository,
	logRepo repository.CarbonLogRepository,
	cache *cache.Client,
	defaultWindowDays int,
) DashboardService {
	if defaultWindowDays <= 0 {
		defaultWindowDays = 30
	}
	return &dashboardService{
		activityRepo:      activityRepo,
		logRepo:           logRepo,
		cache:             cache,
		defaultWindowDays: defaultWindowDays,
		now:               time.Now,
	}
}

// GetDashboardData returns the activities and logs dated inside the window together with
// their totals. The window starts at UTC midnight windowDays-1 days ago, so it always
// includes today. A non-positive windowDays uses the configured default.
func (s *dashboardService) GetDashboardData(ctx context.Context, userID uint, windowDays int) (*DashboardData, error) {
	if windowDays <= 0 {
		windowDays = s.defaultWindowDays
	}

	var cached DashboardData
	if s.cache.GetJSON(ctx, dashboardCacheKey(userID, windowDays), &cached) {
		return &cached, nil
	}

	since := windowStart(s.now(), windowDays)

	activities, err := s.activityRepo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	logs, err := s.logRepo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list carbon logs: %w", err)
	}
	if activities == nil {
		activities = []model.Activity{}
	}
	if logs == nil {
		logs = []model.CarbonLog{}
	}

	data := &DashboardData{
		Activities:    activities,
		Logs:          logs,
		TotalEmission: sumLogs(logs),
		WindowDays:    windowDays,
		Since:         since,
		ByCategory:    emissionByCategory(activities),
	}

	s.cache.SetJSON(ctx, dashboardCacheKey(userID, windowDays), data, dashboardCacheTTL)
	return data, nil
}

func windowStart(now time.Time, days int) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))
}

func sumLogs(logs []model.CarbonLog) float64 {
	total := decimal.Zero
	for _, l := range logs {
		total = total.Add(decimal.NewFromFloat(l.TotalEmission))
	}
	return total.InexactFloat64()
}

func emissionByCategory(activities []model.Activity) []CategoryEmission {
	sums := make(map[uint]decimal.Decimal)
	for _, a := range activities {
		e := decimal.NewFromFloat(CalculateEmission(a.Value, a.EmissionFactor))
		sums[a.CategoryID] = sums[a.CategoryID].Add(e)
	}

	out := make([]CategoryEmission, 0, len(sums))
	for id, sum := range sums {
		out = append(out, CategoryEmission{CategoryID: id, Emission: sum.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out
}

package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"ecotrack/internal/cache"
	"ecotrack/internal/errors"
	"ecotrack/internal/model"
	"ecotrack/internal/repository"
)

// LogActivityInput carries one activity as reported by the user.
type LogActivityInput struct {
	UserID         uint
	CategoryID     uint
	Description    string
	Value          float64
	Unit           string
	EmissionFactor float64
	Date           *time.Time
}

// ActivityService records activities and lists a user's activity history.
type ActivityService interface {
	LogActivity(ctx context.Context, in LogActivityInput) (float64, error)
	ListActivities(ctx context.Context, userID uint) ([]model.Activity, error)
	ListLogs(ctx context.Context, userID uint) ([]model.CarbonLog, error)
}

type activityService struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	activityRepo repository.ActivityRepository
	logRepo      repository.CarbonLogRepository
	cache        *cache.Client
	now          func() time.Time
}

// NewActivityService creates a new activity service.
func NewActivityService(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	activityRepo repository.ActivityRepository,
	logRepo repository.CarbonLogRepository,
	cache *cache.Client,
) ActivityService {
	return &activityService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		activityRepo: activityRepo,
		logRepo:      logRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// LogActivity computes the activity's emission and stores the activity with its carbon log.
// Both rows are written in one transaction; the emission is returned.
func (s *activityService) LogActivity(ctx context.Context, in LogActivityInput) (float64, error) {
	if err := validateActivity(&in); err != nil {
		return 0, err
	}

	exists, err := s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return 0, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return 0, errors.ErrUserNotFound
	}

	if _, err := s.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("check category: %w", err)
	}

	date := s.now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}
	emission := CalculateEmission(in.Value, in.EmissionFactor)

	err = s.activityRepo.WithTransaction(ctx, func(ctx context.Context, activities repository.ActivityRepository, logs repository.CarbonLogRepository) error {
		activity := &model.Activity{
			UserID:         in.UserID,
			CategoryID:     in.CategoryID,
			Description:    in.Description,
			Value:          in.Value,
			Unit:           in.Unit,
			EmissionFactor: in.EmissionFactor,
			Date:           date,
		}
		if err := activities.Create(ctx, activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		if err := logs.Create(ctx, &model.CarbonLog{
			UserID:        in.UserID,
			ActivityID:    activity.ID,
			TotalEmission: emission,
			LogDate:       date,
		}); err != nil {
			return fmt.Errorf("create carbon log: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.invalidateUserViews(ctx, in.UserID)
	return emission, nil
}

// ListActivities lists every activity of a user; unknown users yield an empty list.
func (s *activityService) ListActivities(ctx context.Context, userID uint) ([]model.Activity, error) {
	activities, err := s.activityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if activities == nil {
		activities = []model.Activity{}
	}
	return activities, nil
}

// ListLogs lists every carbon log of a user; unknown users yield an empty list.
func (s *activityService) ListLogs(ctx context.Context, userID uint) ([]model.CarbonLog, error) {
	logs, err := s.logRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list carbon logs: %w", err)
	}
	if logs == nil {
		logs = []model.CarbonLog{}
	}
	return logs, nil
}

func (s *activityService) invalidateUserViews(ctx context.Context, userID uint) {
	_ = s.cache.Delete(ctx, recommendationsCacheKey(userID))
	_ = s.cache.DeletePrefix(ctx, dashboardCachePrefix(userID))
}

func validateActivity(in *LogActivityInput) error {
	in.Description = strings.TrimSpace(in.Description)
	in.Unit = strings.TrimSpace(in.Unit)

	switch {
	case in.UserID == 0:
		return fmt.Errorf("%w: user_id is required", errors.ErrValidation)
	case in.CategoryID == 0:
		return fmt.Errorf("%w: category_id is required", errors.ErrValidation)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", errors.ErrValidation)
	case in.Unit == "":
		return fmt.Errorf("%w: unit is required", errors.ErrValidation)
	case !isFinite(in.Value):
		return fmt.Errorf("%w: value must be a finite number", errors.ErrValidation)
	case !isFinite(in.EmissionFactor):
		return fmt.Errorf("%w: emission_factor must be a finite number", errors.ErrValidation)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

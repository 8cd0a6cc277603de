package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"
)

// fakeStore is an in-memory record store with equality filters and
// all-or-nothing transactions over activities and carbon logs.
type fakeStore struct {
	users       []model.User
	categories  []model.ActivityCategory
	suggestions []model.Suggestion
	activities  []model.Activity
	logs        []model.CarbonLog
	nextID      uint

	errLogCreate     error
	errActivityList  error
	errLogList       error
	errSuggestionGet error
	suggestionReads  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addUser(name string) uint {
	u := model.User{ID: s.id(), Name: name, Email: name + "@example.com"}
	s.users = append(s.users, u)
	return u.ID
}

func (s *fakeStore) addCategory(name string) uint {
	c := model.ActivityCategory{ID: s.id(), Name: name}
	s.categories = append(s.categories, c)
	return c.ID
}

func (s *fakeStore) addSuggestion(categoryID uint, tip string, estimate *float64) {
	s.suggestions = append(s.suggestions, model.Suggestion{ID: s.id(), CategoryID: categoryID, Tip: tip, ReductionEstimate: estimate})
}

func (s *fakeStore) Users() repository.UserRepository             { return fakeUsers{s} }
func (s *fakeStore) Categories() repository.CategoryRepository    { return fakeCategories{s} }
func (s *fakeStore) Suggestions() repository.SuggestionRepository { return fakeSuggestions{s} }
func (s *fakeStore) Activities() repository.ActivityRepository    { return fakeActivities{s} }
func (s *fakeStore) Logs() repository.CarbonLogRepository         { return fakeLogs{s} }

type fakeUsers struct{ s *fakeStore }

func (r fakeUsers) Create(_ context.Context, user *model.User) error {
	user.ID = r.s.id()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r fakeUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeUsers) Exists(ctx context.Context, id uint) (bool, error) {
	_, err := r.FindByID(ctx, id)
	return err == nil, nil
}

type fakeCategories struct{ s *fakeStore }

func (r fakeCategories) Create(_ context.Context, c *model.ActivityCategory) error {
	c.ID = r.s.id()
	r.s.categories = append(r.s.categories, *c)
	return nil
}

func (r fakeCategories) Update(_ context.Context, c *model.ActivityCategory) error {
	for i := range r.s.categories {
		if r.s.categories[i].ID == c.ID {
			r.s.categories[i] = *c
		}
	}
	return nil
}

func (r fakeCategories) FindByID(_ context.Context, id uint) (*model.ActivityCategory, error) {
	for _, c := range r.s.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeCategories) FindByName(_ context.Context, name string) (*model.ActivityCategory, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeCategories) List(context.Context) ([]model.ActivityCategory, error) {
	return append([]model.ActivityCategory(nil), r.s.categories...), nil
}

type fakeSuggestions struct{ s *fakeStore }

func (r fakeSuggestions) Create(_ context.Context, sug *model.Suggestion) error {
	sug.ID = r.s.id()
	r.s.suggestions = append(r.s.suggestions, *sug)
	return nil
}

func (r fakeSuggestions) ListByCategory(_ context.Context, categoryID uint) ([]model.Suggestion, error) {
	r.s.suggestionReads++
	if r.s.errSuggestionGet != nil {
		return nil, r.s.errSuggestionGet
	}
	var out []model.Suggestion
	for _, sug := range r.s.suggestions {
		if sug.CategoryID == categoryID {
			out = append(out, sug)
		}
	}
	return out, nil
}

func (r fakeSuggestions) Exists(_ context.Context, categoryID uint, tip string) (bool, error) {
	for _, sug := range r.s.suggestions {
		if sug.CategoryID == categoryID && sug.Tip == tip {
			return true, nil
		}
	}
	return false, nil
}

type fakeActivities struct{ s *fakeStore }

func (r fakeActivities) Create(_ context.Context, a *model.Activity) error {
	a.ID = r.s.id()
	r.s.activities = append(r.s.activities, *a)
	return nil
}

func (r fakeActivities) ListByUser(ctx context.Context, userID uint) ([]model.Activity, error) {
	return r.ListByUserSince(ctx, userID, time.Time{})
}

func (r fakeActivities) ListByUserSince(_ context.Context, userID uint, since time.Time) ([]model.Activity, error) {
	if r.s.errActivityList != nil {
		return nil, r.s.errActivityList
	}
	var out []model.Activity
	for _, a := range r.s.activities {
		if a.UserID == userID && !a.Date.Before(since) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r fakeActivities) WithTransaction(ctx context.Context, fn func(ctx context.Context, activities repository.ActivityRepository, logs repository.CarbonLogRepository) error) error {
	activities, logs, nextID := len(r.s.activities), len(r.s.logs), r.s.nextID
	if err := fn(ctx, r, fakeLogs(r)); err != nil {
		r.s.activities = r.s.activities[:activities]
		r.s.logs = r.s.logs[:logs]
		r.s.nextID = nextID
		return err
	}
	return nil
}

type fakeLogs struct{ s *fakeStore }

func (r fakeLogs) Create(_ context.Context, l *model.CarbonLog) error {
	if r.s.errLogCreate != nil {
		return r.s.errLogCreate
	}
	l.ID = r.s.id()
	r.s.logs = append(r.s.logs, *l)
	return nil
}

func (r fakeLogs) ListByUser(ctx context.Context, userID uint) ([]model.CarbonLog, error) {
	return r.ListByUserSince(ctx, userID, time.Time{})
}

func (r fakeLogs) ListByUserSince(_ context.Context, userID uint, since time.Time) ([]model.CarbonLog, error) {
	if r.s.errLogList != nil {
		return nil, r.s.errLogList
	}
	var out []model.CarbonLog
	for _, l := range r.s.logs {
		if l.UserID == userID && !l.LogDate.Before(since) {
			out = append(out, l)
		}
	}
	return out, nil
}

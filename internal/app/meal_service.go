// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"macrolog/internal/domain"
)

// DefaultHistoryDays is used when a non-positive day count is requested.
const DefaultHistoryDays = 7

// MealService encapsulates meal logging use cases.
type MealService struct {
	repo     domain.MealRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.MealRepository) *MealService {
	return &MealService{repo: repo, validate: domain.NewValidator(), now: time.Now}
}

// SaveMeal validates in, derives calories from its macros and stores it. It
// returns nil without error when the store reports no inserted row.
func (s *MealService) SaveMeal(ctx context.Context, in domain.MealInput) (*domain.Meal, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("save meal: %w", err)
	}
	m, err := s.repo.InsertMeal(ctx, in.Meal())
	if err != nil {
		return nil, fmt.Errorf("save meal: %w", err)
	}
	return m, nil
}

// MealsToday returns meals created during the current local calendar day,
// oldest first.
func (s *MealService) MealsToday(ctx context.Context) ([]domain.Meal, error) {
	return s.repo.ListMeals(ctx, localDay(s.now()), domain.Ascending)
}

// MealsLastNDays returns meals created in the last n days, newest first.
func (s *MealService) MealsLastNDays(ctx context.Context, n int) ([]domain.Meal, error) {
	return s.repo.ListMeals(ctx, lastNDays(s.now(), n), domain.Descending)
}

// DailyMacroTotals sums today's meals. It returns zero totals when nothing
// has been logged yet.
func (s *MealService) DailyMacroTotals(ctx context.Context) (domain.MacroTotals, error) {
	meals, err := s.MealsToday(ctx)
	if err != nil {
		return domain.MacroTotals{}, err
	}
	return domain.SumMacros(meals), nil
}

func localDay(now time.Time) domain.TimeRange {
	local := now.In(time.Local)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return domain.TimeRange{From: start, To: start.AddDate(0, 0, 1)}
}

func lastNDays(now time.Time, n int) domain.TimeRange {
	if n <= 0 {
		n = DefaultHistoryDays
	}
	return domain.TimeRange{From: now.AddDate(0, 0, -n)}
}

package app

import (
	"context"
	"fmt"
	"time"

	"macrolog/internal/domain"
)

// MaxChartDays caps the span of GetDaily.
const MaxChartDays = 366

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	repo domain.MealRepository
	now  func() time.Time
}

// NewChartsService creates a ChartsService backed by the given repository.
func NewChartsService(repo domain.MealRepository) *ChartsService {
	return &ChartsService{repo: repo, now: time.Now}
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day string `json:"day"`
	domain.MacroTotals
}

// GetDaily returns one point per local day for the last days days, oldest
// first and ending today. Days without meals have zero totals.
func (s *ChartsService) GetDaily(ctx context.Context, days int) ([]DayPoint, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	if days > MaxChartDays {
		days = MaxChartDays
	}

	today := localDay(s.now())
	from := today.From.AddDate(0, 0, -(days - 1))
	meals, err := s.repo.ListMeals(ctx, domain.TimeRange{From: from, To: today.To}, domain.Ascending)
	if err != nil {
		return nil, fmt.Errorf("daily chart: %w", err)
	}

	byDay := make(map[string][]domain.Meal, days)
	for _, m := range meals {
		day := m.CreatedAt.In(time.Local).Format(time.DateOnly)
		byDay[day] = append(byDay[day], m)
	}

	points := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.From.AddDate(0, 0, -i).Format(time.DateOnly)
		points = append(points, DayPoint{Day: day, MacroTotals: domain.SumMacros(byDay[day])})
	}
	return points, nil
}

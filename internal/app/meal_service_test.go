package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"macrolog/internal/app"
	"macrolog/internal/domain"
)

type mockMealRepo struct {
	insertFn func(ctx context.Context, m domain.Meal) (*domain.Meal, error)
	listFn   func(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.Meal, error)
}

func (m *mockMealRepo) InsertMeal(ctx context.Context, meal domain.Meal) (*domain.Meal, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, meal)
	}
	meal.ID = 1
	return &meal, nil
}

func (m *mockMealRepo) ListMeals(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.Meal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, r, order)
	}
	return nil, nil
}

func intp(v int) *int { return &v }
func strp(v string) *string { return &v }

func validInput(p, c, f int) domain.MealInput {
	return domain.MealInput{
		MealType: strp("breakfast"),
		Foods:    []string{"eggs", "toast"},
		Protein:  intp(p),
		Carbs:    intp(c),
		Fats:     intp(f),
	}
}

func TestSaveMeal_ComputesCalories(t *testing.T) {
	tests := []struct {
		p, c, f int
		want    int
	}{
		{20, 50, 10, 370},
		{40, 80, 50, 930},
		{0, 0, 0, 0},
	}
	for _, tc := range tests {
		var stored domain.Meal
		repo := &mockMealRepo{
			insertFn: func(_ context.Context, m domain.Meal) (*domain.Meal, error) {
				stored = m
				return &m, nil
			},
		}
		svc := app.NewMealService(repo)
		m, err := svc.SaveMeal(context.Background(), validInput(tc.p, tc.c, tc.f))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Calories != tc.want || m.Calories != tc.want {
			t.Fatalf("expected %d kcal, stored %d returned %d", tc.want, stored.Calories, m.Calories)
		}
	}
}

func TestSaveMeal_DefaultsOptionalFields(t *testing.T) {
	var stored domain.Meal
	repo := &mockMealRepo{
		insertFn: func(_ context.Context, m domain.Meal) (*domain.Meal, error) {
			stored = m
			return &m, nil
		},
	}
	svc := app.NewMealService(repo)
	if _, err := svc.SaveMeal(context.Background(), validInput(30, 10, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Notes != "" || stored.RawInput != "" {
		t.Fatalf("expected empty notes and raw_input, got %q %q", stored.Notes, stored.RawInput)
	}
}

func TestSaveMeal_Validation(t *testing.T) {
	called := false
	repo := &mockMealRepo{
		insertFn: func(_ context.Context, m domain.Meal) (*domain.Meal, error) {
			called = true
			return &m, nil
		},
	}
	svc := app.NewMealService(repo)

	missingType := validInput(1, 1, 1)
	missingType.MealType = nil
	missingFoods := validInput(1, 1, 1)
	missingFoods.Foods = nil
	missingProtein := validInput(1, 1, 1)
	missingProtein.Protein = nil
	missingCarbs := validInput(1, 1, 1)
	missingCarbs.Carbs = nil
	missingFats := validInput(1, 1, 1)
	missingFats.Fats = nil
	badType := validInput(1, 1, 1)
	badType.MealType = strp("brunch")
	negative := validInput(-5, 1, 1)

	tests := []struct {
		name string
		in   domain.MealInput
	}{
		{"missing meal_type", missingType},
		{"missing foods", missingFoods},
		{"missing protein", missingProtein},
		{"missing carbs", missingCarbs},
		{"missing fats", missingFats},
		{"unknown meal_type", badType},
		{"negative protein", negative},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SaveMeal(context.Background(), tc.in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
	if called {
		t.Fatal("repository must not be called for invalid input")
	}
}

func TestSaveMeal_NoRowAndStoreError(t *testing.T) {
	svc := app.NewMealService(&mockMealRepo{
		insertFn: func(_ context.Context, _ domain.Meal) (*domain.Meal, error) { return nil, nil },
	})
	m, err := svc.SaveMeal(context.Background(), validInput(1, 2, 3))
	if err != nil || m != nil {
		t.Fatalf("expected nil, nil; got %v, %v", m, err)
	}

	boom := errors.New("unreachable")
	svc = app.NewMealService(&mockMealRepo{
		insertFn: func(_ context.Context, _ domain.Meal) (*domain.Meal, error) { return nil, boom },
	})
	if _, err := svc.SaveMeal(context.Background(), validInput(1, 2, 3)); !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestMealsToday_LocalDayAscending(t *testing.T) {
	now := time.Date(2026, 2, 8, 15, 30, 0, 0, time.Local)
	repo := &mockMealRepo{
		listFn: func(_ context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.Meal, error) {
			wantFrom := time.Date(2026, 2, 8, 0, 0, 0, 0, time.Local)
			if !r.From.Equal(wantFrom) {
				t.Fatalf("expected from %v, got %v", wantFrom, r.From)
			}
			if !r.To.Equal(wantFrom.AddDate(0, 0, 1)) {
				t.Fatalf("expected to next midnight, got %v", r.To)
			}
			if order != domain.Ascending {
				t.Fatal("expected ascending order")
			}
			return []domain.Meal{{ID: 1}}, nil
		},
	}
	svc := app.NewMealService(repo)
	app.SetMealClock(svc, func() time.Time { return now })

	meals, err := svc.MealsToday(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(meals))
	}
}

func TestMealsLastNDays(t *testing.T) {
	now := time.Date(2026, 2, 8, 12, 0, 0, 0, time.Local)
	tests := []struct {
		name string
		n    int
		days int
	}{
		{"explicit", 3, 3},
		{"default", 0, app.DefaultHistoryDays},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockMealRepo{
				listFn: func(_ context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.Meal, error) {
					if !r.From.Equal(now.AddDate(0, 0, -tc.days)) {
						t.Fatalf("unexpected from: %v", r.From)
					}
					if !r.To.IsZero() {
						t.Fatal("expected open-ended range")
					}
					if order != domain.Descending {
						t.Fatal("expected descending order")
					}
					return nil, nil
				},
			}
			svc := app.NewMealService(repo)
			app.SetMealClock(svc, func() time.Time { return now })
			if _, err := svc.MealsLastNDays(context.Background(), tc.n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDailyMacroTotals(t *testing.T) {
	svc := app.NewMealService(&mockMealRepo{})
	totals, err := svc.DailyMacroTotals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals != (domain.MacroTotals{}) {
		t.Fatalf("expected zero totals, got %+v", totals)
	}

	svc = app.NewMealService(&mockMealRepo{
		listFn: func(_ context.Context, _ domain.TimeRange, _ domain.SortOrder) ([]domain.Meal, error) {
			return []domain.Meal{
				{Protein: 20, Carbs: 50, Fats: 10, Calories: 370},
				{Protein: 40, Carbs: 80, Fats: 50, Calories: 930},
			}, nil
		},
	})
	totals, err = svc.DailyMacroTotals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.MacroTotals{Protein: 60, Carbs: 130, Fats: 60, Calories: 1300, MealCount: 2}
	if totals != want {
		t.Fatalf("expected %+v, got %+v", want, totals)
	}
}

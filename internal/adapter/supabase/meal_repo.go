package supabase

import (
	"context"
	"fmt"

	"macrolog/internal/domain"
)

// mealRow is the insert payload; id and created_at are assigned by the store.
type mealRow struct {
	MealType string   `json:"meal_type"`
	Foods    []string `json:"foods"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fats     int      `json:"fats"`
	Calories int      `json:"calories"`
	Notes    string   `json:"notes"`
	RawInput string   `json:"raw_input"`
}

// InsertMeal inserts one row into meals and returns the stored representation.
func (c *Client) InsertMeal(ctx context.Context, m domain.Meal) (*domain.Meal, error) {
	row := mealRow{
		MealType: string(m.MealType),
		Foods:    m.Foods,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fats:     m.Fats,
		Calories: m.Calories,
		Notes:    m.Notes,
		RawInput: m.RawInput,
	}

	var out []domain.Meal
	_, err := c.rest.From(mealsTable).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&out)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

// ListMeals selects meals created inside r. The lower bound is filtered by
// the store; the upper bound is applied to the result.
func (c *Client) ListMeals(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.Meal, error) {
	var rows []domain.Meal
	_, err := c.rest.From(mealsTable).
		Select("*", "", false).
		Gte("created_at", timestamp(r.From)).
		Order("created_at", orderOpts(order)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	out := make([]domain.Meal, 0, len(rows))
	for _, m := range rows {
		if r.Contains(m.CreatedAt) {
			out = append(out, m)
		}
	}
	return out, nil
}

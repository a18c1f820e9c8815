package postgres

import (
	"context"

	"github.com/lib/pq"

	"macrolog/internal/domain"
)

var _ domain.MealRepository = (*DB)(nil)

// InsertMeal inserts a meal row and returns it with id and created_at.
func (d *DB) InsertMeal(ctx context.Context, m domain.Meal) (*domain.Meal, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO meals(meal_type, foods, protein, carbs, fats, calories, notes, raw_input) VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;",
		string(m.MealType), pq.Array(m.Foods), m.Protein, m.Carbs, m.Fats, m.Calories, m.Notes, m.RawInput,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMeals returns meals created inside r in the requested order.
func (d *DB) ListMeals(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.Meal, error) {
	where, args := rangeClause(r.From, r.To, 1)
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, meal_type, foods, protein, carbs, fats, calories, notes, raw_input, created_at FROM meals WHERE "+where+" ORDER BY created_at "+direction(order)+";",
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Meal, 0)
	for rows.Next() {
		var m domain.Meal
		var mealType string
		if err := rows.Scan(&m.ID, &mealType, pq.Array(&m.Foods), &m.Protein, &m.Carbs, &m.Fats, &m.Calories, &m.Notes, &m.RawInput, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.MealType = domain.MealType(mealType)
		out = append(out, m)
	}
	return out, rows.Err()
}

func direction(order domain.SortOrder) string {
	if order == domain.Descending {
		return "DESC"
	}
	return "ASC"
}

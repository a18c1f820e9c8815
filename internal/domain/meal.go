// Package domain contains the core nutrition entities and the ports the
// application talks to.
package domain

import (
	"context"
	"strings"
	"time"
)

// MealType classifies a logged eating event.
type MealType string

// Recognised meal types. FullDay is used when a whole day is logged at once.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
	FullDay   MealType = "full_day"
)

// MealTypes lists every valid MealType in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack, FullDay}

// NormalizeMealType lower-cases and trims s.
func NormalizeMealType(s string) MealType {
	return MealType(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether t is one of MealTypes.
func (t MealType) Valid() bool {
	for _, v := range MealTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Calories derives energy from macros: 4 kcal/g protein and carbs, 9 kcal/g fat.
func Calories(protein, carbs, fats int) int {
	return protein*4 + carbs*4 + fats*9
}

// Meal is a persisted meal record. Calories always equals
// Calories(Protein, Carbs, Fats).
type Meal struct {
	ID        int64     `json:"id"`
	MealType  MealType  `json:"meal_type"`
	Foods     []string  `json:"foods"`
	Protein   int       `json:"protein"`
	Carbs     int       `json:"carbs"`
	Fats      int       `json:"fats"`
	Calories  int       `json:"calories"`
	Notes     string    `json:"notes"`
	RawInput  string    `json:"raw_input"`
	CreatedAt time.Time `json:"created_at"`
}

// MealInput is a request to store a meal. Required fields are pointers or
// slices so that an absent value can be told apart from a zero.
type MealInput struct {
	MealType *string  `json:"meal_type" validate:"required,mealtype"`
	Foods    []string `json:"foods" validate:"required"`
	Protein  *int     `json:"protein" validate:"required,gte=0"`
	Carbs    *int     `json:"carbs" validate:"required,gte=0"`
	Fats     *int     `json:"fats" validate:"required,gte=0"`
	Notes    string   `json:"notes"`
	RawInput string   `json:"raw_input"`
}

// Meal builds the record to insert from a validated input. Any calorie figure
// supplied elsewhere is ignored.
func (in MealInput) Meal() Meal {
	m := Meal{
		MealType: NormalizeMealType(*in.MealType),
		Foods:    in.Foods,
		Protein:  *in.Protein,
		Carbs:    *in.Carbs,
		Fats:     *in.Fats,
		Notes:    in.Notes,
		RawInput: in.RawInput,
	}
	m.Calories = Calories(m.Protein, m.Carbs, m.Fats)
	return m
}

// MacroTotals aggregates macros over a set of meals. It is never persisted.
type MacroTotals struct {
	Protein   int `json:"protein"`
	Carbs     int `json:"carbs"`
	Fats      int `json:"fats"`
	Calories  int `json:"calories"`
	MealCount int `json:"meal_count"`
}

// SumMacros totals the stored macros of meals.
func SumMacros(meals []Meal) MacroTotals {
	var t MacroTotals
	for _, m := range meals {
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
		t.Calories += m.Calories
	}
	t.MealCount = len(meals)
	return t
}

// TimeRange selects records by creation time. From is inclusive, To is
// exclusive; a zero To leaves the range open-ended.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside r.
func (r TimeRange) Contains(t time.Time) bool {
	if t.Before(r.From) {
		return false
	}
	return r.To.IsZero() || t.Before(r.To)
}

// SortOrder controls ordering by creation time.
type SortOrder int

const (
	// Ascending returns the oldest record first.
	Ascending SortOrder = iota
	// Descending returns the newest record first.
	Descending
)

// MealRepository is the port for meal persistence.
type MealRepository interface {
	// InsertMeal stores m and returns the stored row, or nil if the store
	// reported no row.
	InsertMeal(ctx context.Context, m Meal) (*Meal, error)
	ListMeals(ctx context.Context, r TimeRange, order SortOrder) ([]Meal, error)
}

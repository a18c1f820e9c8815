package app

import (
	"fmt"
	"strings"

	"macrolog/internal/domain"
)

// Feedback thresholds.
const (
	LowProteinGrams   = 30
	HeavyMealCalories = 750
)

// Advisory lines appended by GiveFeedback.
const (
	AdviceLowProtein = "   - Protein is low! Add eggs or lean meat next time."
	AdviceHeavyMeal  = "   - This is a heavy meal. Adjust your next portion."
	AdviceBalanced   = "   - Perfectly balanced! Keep it up."
)

// GiveFeedback renders a human-readable summary of e. Calories are always
// recomputed from the macros; e.Calories is not used.
func GiveFeedback(e domain.Extraction) string {
	p, c, f := e.Protein, e.Carbs, e.Fats
	calories := domain.Calories(p, c, f)

	lines := []string{
		fmt.Sprintf("\n %s LOGGED (%s)", strings.ToUpper(e.MealType), e.LatencyString()),
		fmt.Sprintf("  Foods: %s", strings.Join(e.Foods, ", ")),
		fmt.Sprintf(" Macros: P: %dg | C: %dg | F: %dg | ~%d kcal", p, c, f, calories),
		fmt.Sprintf(" Notes: %s\n", e.Notes),
		" Feedback:",
	}

	advised := false
	if p < LowProteinGrams {
		lines = append(lines, AdviceLowProtein)
		advised = true
	}
	if calories > HeavyMealCalories {
		lines = append(lines, AdviceHeavyMeal)
		advised = true
	}
	if !advised {
		lines = append(lines, AdviceBalanced)
	}
	return strings.Join(lines, "\n")
}

// FormatTotals renders a one-line summary of the day's totals.
func FormatTotals(t domain.MacroTotals) string {
	return fmt.Sprintf(" Today: %d meal(s) | P: %dg | C: %dg | F: %dg | ~%d kcal",
		t.MealCount, t.Protein, t.Carbs, t.Fats, t.Calories)
}

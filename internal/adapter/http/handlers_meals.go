package adapthttp

import (
	"net/http"

	"macrolog/internal/app"
	"macrolog/internal/domain"
)

func (s *Server) handleMealCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		domain.MealInput
		// Accepted for client convenience; calories are recomputed from macros.
		Calories *int `json:"calories"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	meal, err := s.meals.SaveMeal(r.Context(), body.MealInput)
	if err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"meal": meal})
}

func (s *Server) handleMealsToday(w http.ResponseWriter, r *http.Request) {
	items, err := s.meals.MealsToday(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleMealsRecent(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", app.DefaultHistoryDays)
	items, err := s.meals.MealsLastNDays(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days, "items": items})
}

func (s *Server) handleTotalsToday(w http.ResponseWriter, r *http.Request) {
	totals, err := s.meals.DailyMacroTotals(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"totals": totals})
}

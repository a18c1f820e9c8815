package adapthttp

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"macrolog/internal/app"
	"macrolog/internal/domain"
)

var errEmptyText = errors.New("text is required")

// handleLog runs a free-text description through extraction, stores the
// resulting meal, and returns it with the rendered feedback.
func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	text := strings.TrimSpace(body.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, errEmptyText)
		return
	}

	ext, err := s.extract.Extract(r.Context(), text)
	if err != nil {
		kind := domain.ExtractKind(err)
		s.log.Warn("meal extraction failed", zap.String("kind", string(kind)), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error(), "kind": kind})
		return
	}

	meal, err := s.meals.SaveMeal(r.Context(), ext.MealInput())
	if err != nil {
		writeSaveError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"meal":     meal,
		"feedback": app.GiveFeedback(*ext),
		"latency":  ext.LatencyString(),
	})
}

package adapthttp

import (
	"net/http"

	"macrolog/internal/app"
)

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", app.DefaultHistoryDays)
	points, err := s.charts.GetDaily(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"points": points})
}

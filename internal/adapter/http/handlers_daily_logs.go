package adapthttp

import (
	"errors"
	"net/http"

	"macrolog/internal/app"
	"macrolog/internal/domain"
)

func (s *Server) handleDailyLogCreate(w http.ResponseWriter, r *http.Request) {
	var body domain.DailyLog
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stored, err := s.logs.SaveDailyLog(r.Context(), body)
	if errors.Is(err, app.ErrEmptyDailyLog) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"daily_log": stored})
}

func (s *Server) handleDailyLogsRecent(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", app.DefaultHistoryDays)
	items, err := s.logs.DailyLogsLastNDays(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days, "items": items})
}

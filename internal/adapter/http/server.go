package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"macrolog/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	meals      *app.MealService
	logs       *app.DailyLogService
	charts     *app.ChartsService
	extract    *app.ExtractionService
	log        *zap.Logger
	apiKeyHash []byte
}

// New creates a Server wired to the given application services. An empty
// apiKeyHash disables API key checks.
func New(meals *app.MealService, logs *app.DailyLogService, charts *app.ChartsService, extract *app.ExtractionService, log *zap.Logger, apiKeyHash string) *Server {
	s := &Server{meals: meals, logs: logs, charts: charts, extract: extract, log: log}
	if apiKeyHash != "" {
		s.apiKeyHash = []byte(apiKeyHash)
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})

		api.Group(func(api chi.Router) {
			api.Use(s.apiKeyMiddleware)

			api.Post("/log", s.handleLog)

			api.Post("/meals", s.handleMealCreate)
			api.Get("/meals/today", s.handleMealsToday)
			api.Get("/meals/recent", s.handleMealsRecent)
			api.Get("/totals/today", s.handleTotalsToday)

			api.Post("/daily-logs", s.handleDailyLogCreate)
			api.Get("/daily-logs/recent", s.handleDailyLogsRecent)

			api.Get("/charts/daily", s.handleChartsDaily)
		})
	})

	return withNoCache(r)
}

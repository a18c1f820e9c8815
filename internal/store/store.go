// Package store opens the meal and daily log store selected by configuration.
package store

import (
	"fmt"

	"go.uber.org/zap"

	"macrolog/internal/adapter/memory"
	"macrolog/internal/adapter/postgres"
	"macrolog/internal/adapter/supabase"
	"macrolog/internal/config"
	"macrolog/internal/domain"
)

// Store is a meal and daily log repository that holds a connection.
type Store interface {
	domain.MealRepository
	domain.DailyLogRepository
	Close() error
}

// Open returns the store named by cfg.Store. It fails fast when that store's
// connection settings are missing.
func Open(cfg *config.Config, log *zap.Logger) (Store, error) {
	switch cfg.Store {
	case config.StoreSupabase:
		c, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, err
		}
		log.Info("connected to supabase", zap.String("url", cfg.SupabaseURL))
		return c, nil
	case config.StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("%w: DATABASE_URL", config.ErrMissing)
		}
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		log.Info("connected to postgres")
		return db, nil
	case config.StoreMemory:
		log.Warn("using in-memory store; meals are lost on exit")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

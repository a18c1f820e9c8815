// Package config handles application configuration via environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreSupabase = "supabase"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// ErrMissing is wrapped by Load when a required variable is unset.
var ErrMissing = errors.New("missing required configuration")

// Config holds all configurable values for the app. It is loaded once at
// start-up and handed to constructors.
type Config struct {
	Env          string
	Store        string
	SupabaseURL  string
	SupabaseKey  string
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	Sync         bool
	Addr         string
	APIKeyHash   string
}

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	syncEnabled, err := strconv.ParseBool(getEnv("MACROLOG_SYNC", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid MACROLOG_SYNC: %w", err)
	}

	cfg := &Config{
		Env:          getEnv("MACROLOG_ENV", "development"),
		Store:        getEnv("MACROLOG_STORE", StoreSupabase),
		SupabaseURL:  os.Getenv("SUPABASE_URL"),
		SupabaseKey:  os.Getenv("SUPABASE_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		Sync:         syncEnabled,
		Addr:         getEnv("MACROLOG_ADDR", ":8080"),
		APIKeyHash:   os.Getenv("MACROLOG_API_KEY_HASH"),
	}

	switch cfg.Store {
	case StoreSupabase, StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("invalid MACROLOG_STORE %q", cfg.Store)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrMissing)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

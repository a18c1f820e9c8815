// Package postgres stores meals and daily logs directly in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS meals (id BIGSERIAL PRIMARY KEY, meal_type TEXT NOT NULL CHECK(meal_type IN ('breakfast','lunch','dinner','snack','full_day')), foods TEXT[] NOT NULL, protein INTEGER NOT NULL, carbs INTEGER NOT NULL, fats INTEGER NOT NULL, calories INTEGER NOT NULL, notes TEXT NOT NULL DEFAULT '', raw_input TEXT NOT NULL DEFAULT '', created_at TIMESTAMPTZ NOT NULL DEFAULT now());",
		"CREATE INDEX IF NOT EXISTS idx_meals_created_at ON meals(created_at);",
		"CREATE TABLE IF NOT EXISTS daily_logs (id BIGSERIAL PRIMARY KEY, data JSONB NOT NULL, created_at TIMESTAMPTZ NOT NULL DEFAULT now());",
		"CREATE INDEX IF NOT EXISTS idx_daily_logs_created_at ON daily_logs(created_at);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// rangeClause renders a created_at filter whose first placeholder is $n.
func rangeClause(from, to time.Time, n int) (string, []any) {
	if to.IsZero() {
		return fmt.Sprintf("created_at >= $%d", n), []any{from.UTC()}
	}
	return fmt.Sprintf("created_at >= $%d AND created_at < $%d", n, n+1), []any{from.UTC(), to.UTC()}
}

// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"macrolog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	meals     []domain.Meal
	dailyLogs []domain.DailyLog

	mealIDCounter int64
	logIDCounter  int64

	now func() time.Time
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{now: time.Now}
}

// Ensure interfaces are met.
var _ domain.MealRepository = (*DB)(nil)
var _ domain.DailyLogRepository = (*DB)(nil)

// Close is a no-op so DB can stand in for the other stores.
func (db *DB) Close() error { return nil }

// --- MealRepository ---

// InsertMeal stores a copy of m with a fresh ID and creation time.
func (db *DB) InsertMeal(ctx context.Context, m domain.Meal) (*domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.mealIDCounter++
	m.ID = db.mealIDCounter
	m.CreatedAt = db.now().UTC()
	m.Foods = append([]string(nil), m.Foods...)
	db.meals = append(db.meals, m)

	out := m
	out.Foods = append([]string(nil), m.Foods...)
	return &out, nil
}

// ListMeals returns meals created inside r in the requested order.
func (db *DB) ListMeals(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Meal, 0, len(db.meals))
	for _, m := range db.meals {
		if r.Contains(m.CreatedAt) {
			result = append(result, m)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if order == domain.Descending {
			a, b = b, a
		}
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return result, nil
}

// --- DailyLogRepository ---

// InsertDailyLog stores a copy of log, adding id and created_at the way the
// hosted store does.
func (db *DB) InsertDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.logIDCounter++
	row := make(domain.DailyLog, len(log)+2)
	for k, v := range log {
		row[k] = v
	}
	row["id"] = db.logIDCounter
	row["created_at"] = db.now().UTC()
	db.dailyLogs = append(db.dailyLogs, row)

	return copyLog(row), nil
}

// ListDailyLogs returns logs created inside r in the requested order.
func (db *DB) ListDailyLogs(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.DailyLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.DailyLog, 0, len(db.dailyLogs))
	for _, l := range db.dailyLogs {
		if r.Contains(createdAt(l)) {
			result = append(result, copyLog(l))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if order == domain.Descending {
			return createdAt(result[i]).After(createdAt(result[j]))
		}
		return createdAt(result[i]).Before(createdAt(result[j]))
	})
	return result, nil
}

func createdAt(l domain.DailyLog) time.Time {
	t, _ := l["created_at"].(time.Time)
	return t
}

func copyLog(l domain.DailyLog) domain.DailyLog {
	out := make(domain.DailyLog, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

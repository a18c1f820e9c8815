package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"macrolog/internal/domain"
)

// ErrEmptyDailyLog is returned when a daily log has no fields to store.
var ErrEmptyDailyLog = errors.New("daily log must not be empty")

// DailyLogService stores and lists schema-free daily logs.
type DailyLogService struct {
	repo domain.DailyLogRepository
	now  func() time.Time
}

// NewDailyLogService creates a DailyLogService backed by the given repository.
func NewDailyLogService(repo domain.DailyLogRepository) *DailyLogService {
	return &DailyLogService{repo: repo, now: time.Now}
}

// SaveDailyLog stores log verbatim and returns the stored row, or nil when
// the store reported none.
func (s *DailyLogService) SaveDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	if len(log) == 0 {
		return nil, ErrEmptyDailyLog
	}
	out, err := s.repo.InsertDailyLog(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("save daily log: %w", err)
	}
	return out, nil
}

// DailyLogsLastNDays returns logs created in the last n days, newest first.
func (s *DailyLogService) DailyLogsLastNDays(ctx context.Context, n int) ([]domain.DailyLog, error) {
	return s.repo.ListDailyLogs(ctx, lastNDays(s.now(), n), domain.Descending)
}

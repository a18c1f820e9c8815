package domain

import "context"

// DailyLog is a schema-free record stored verbatim in the daily_logs table.
type DailyLog map[string]any

// DailyLogRepository is the port for daily log persistence.
type DailyLogRepository interface {
	InsertDailyLog(ctx context.Context, log DailyLog) (DailyLog, error)
	ListDailyLogs(ctx context.Context, r TimeRange, order SortOrder) ([]DailyLog, error)
}

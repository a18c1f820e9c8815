package supabase

import (
	"context"
	"fmt"
	"time"

	"macrolog/internal/domain"
)

// InsertDailyLog inserts log verbatim into daily_logs.
func (c *Client) InsertDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	var out []domain.DailyLog
	_, err := c.rest.From(dailyLogsTable).
		Insert(log, false, "", "representation", "").
		ExecuteTo(&out)
	if err != nil {
		return nil, fmt.Errorf("insert daily log: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// ListDailyLogs selects daily logs created inside r.
func (c *Client) ListDailyLogs(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.DailyLog, error) {
	var rows []domain.DailyLog
	_, err := c.rest.From(dailyLogsTable).
		Select("*", "", false).
		Gte("created_at", timestamp(r.From)).
		Order("created_at", orderOpts(order)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	if r.To.IsZero() {
		return rows, nil
	}

	out := make([]domain.DailyLog, 0, len(rows))
	for _, l := range rows {
		s, _ := l["created_at"].(string)
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil || r.Contains(t) {
			out = append(out, l)
		}
	}
	return out, nil
}

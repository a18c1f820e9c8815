package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"macrolog/internal/domain"
)

var _ domain.DailyLogRepository = (*DB)(nil)

// InsertDailyLog stores log as JSONB. The returned row is the stored document
// with id and created_at added.
func (d *DB) InsertDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	data, err := json.Marshal(log)
	if err != nil {
		return nil, fmt.Errorf("encode daily log: %w", err)
	}

	var id int64
	var createdAt time.Time
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO daily_logs(data) VALUES($1) RETURNING id, created_at;", string(data),
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, err
	}
	return withRowFields(data, id, createdAt)
}

// ListDailyLogs returns logs created inside r in the requested order.
func (d *DB) ListDailyLogs(ctx context.Context, r domain.TimeRange, order domain.SortOrder) ([]domain.DailyLog, error) {
	where, args := rangeClause(r.From, r.To, 1)
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, data, created_at FROM daily_logs WHERE "+where+" ORDER BY created_at "+direction(order)+";",
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.DailyLog, 0)
	for rows.Next() {
		var id int64
		var data []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &data, &createdAt); err != nil {
			return nil, err
		}
		l, err := withRowFields(data, id, createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func withRowFields(data []byte, id int64, createdAt time.Time) (domain.DailyLog, error) {
	l := domain.DailyLog{}
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode daily log: %w", err)
	}
	l["id"] = id
	l["created_at"] = createdAt
	return l, nil
}

// Package supabase stores meals and daily logs in a hosted Supabase project
// through its PostgREST endpoint.
package supabase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"

	"macrolog/internal/domain"
)

// ErrMissingCredentials is returned when the project URL or key is empty.
var ErrMissingCredentials = errors.New("missing SUPABASE_URL or SUPABASE_KEY")

const (
	mealsTable     = "meals"
	dailyLogsTable = "daily_logs"
)

// Client implements the meal and daily log repositories over PostgREST.
type Client struct {
	rest *postgrest.Client
}

var _ domain.MealRepository = (*Client)(nil)
var _ domain.DailyLogRepository = (*Client)(nil)

// New creates a client for the project at projectURL authenticated with key.
func New(projectURL, key string) (*Client, error) {
	if projectURL == "" || key == "" {
		return nil, ErrMissingCredentials
	}
	restURL := strings.TrimRight(projectURL, "/") + "/rest/v1"
	rest := postgrest.NewClient(restURL, "public", map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("supabase client: %w", rest.ClientError)
	}
	return &Client{rest: rest}, nil
}

// Close is a no-op; PostgREST calls are independent HTTP requests.
func (c *Client) Close() error { return nil }

// timestamp formats t for a PostgREST filter. UTC keeps the value free of
// characters that need escaping in a query string.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func orderOpts(order domain.SortOrder) *postgrest.OrderOpts {
	return &postgrest.OrderOpts{Ascending: order == domain.Ascending}
}

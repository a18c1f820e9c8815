package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"macrolog/internal/app"
	"macrolog/internal/domain"
)

type mockExtractor struct {
	extractFn func(ctx context.Context, text string) (*domain.MealFacts, error)
	calls     int
}

func (m *mockExtractor) ExtractMeal(ctx context.Context, text string) (*domain.MealFacts, error) {
	m.calls++
	if m.extractFn != nil {
		return m.extractFn(ctx, text)
	}
	return &domain.MealFacts{MealType: "breakfast", Foods: []string{"eggs"}, Protein: 12, Carbs: 1, Fats: 10}, nil
}

func TestExtract_StampsMetadata(t *testing.T) {
	start := time.Date(2026, 2, 8, 8, 0, 0, 0, time.Local)
	ticks := []time.Time{start, start.Add(1234 * time.Millisecond)}
	svc := app.NewExtractionService(&mockExtractor{}, zaptest.NewLogger(t))
	app.SetExtractionClock(svc, func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	})

	e, err := svc.Extract(context.Background(), "2 eggs")
	require.NoError(t, err)
	assert.Equal(t, "2 eggs", e.RawInput)
	assert.Equal(t, "1.23s", e.LatencyString())
	assert.True(t, e.Timestamp.Equal(start.Add(1234*time.Millisecond)))
	assert.Equal(t, "breakfast", e.MealType)
}

func TestExtract_ReturnsTypedError(t *testing.T) {
	ext := &mockExtractor{
		extractFn: func(context.Context, string) (*domain.MealFacts, error) {
			return nil, &domain.ExtractError{Kind: domain.ExtractMalformed, Err: errors.New("bad json")}
		},
	}
	svc := app.NewExtractionService(ext, zaptest.NewLogger(t))

	_, err := svc.Extract(context.Background(), "soup")
	require.Error(t, err)
	assert.Equal(t, domain.ExtractMalformed, domain.ExtractKind(err))
}

func TestExtractMealInfo_FailureYieldsNilAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ext := &mockExtractor{
		extractFn: func(context.Context, string) (*domain.MealFacts, error) {
			return nil, &domain.ExtractError{Kind: domain.ExtractUnavailable, Err: errors.New("dial tcp: connection refused")}
		},
	}
	svc := app.NewExtractionService(ext, zap.New(core))

	var got *domain.Extraction
	assert.NotPanics(t, func() { got = svc.ExtractMealInfo(context.Background(), "toast") })
	assert.Nil(t, got)
	assert.Equal(t, 1, ext.calls)

	entries := logs.FilterMessage("meal extraction failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "unavailable", entries[0].ContextMap()["kind"])
}

func TestExtractMealInfo_Success(t *testing.T) {
	svc := app.NewExtractionService(&mockExtractor{}, zaptest.NewLogger(t))
	e := svc.ExtractMealInfo(context.Background(), "2 eggs")
	require.NotNil(t, e)
	assert.Equal(t, []string{"eggs"}, e.Foods)
}

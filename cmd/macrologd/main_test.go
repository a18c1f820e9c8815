package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"macrolog/internal/config"
)

func TestRun_StartsAndShutsDown(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MACROLOG_ENV", "development")
	t.Setenv("MACROLOG_STORE", "memory")
	t.Setenv("MACROLOG_ADDR", "127.0.0.1:0")
	t.Setenv("GEMINI_API_KEY", "test-key")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err := Run(ctx)
	assert.NoError(t, err)
}

func TestRun_ConfigError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MACROLOG_STORE", "memory")
	t.Setenv("GEMINI_API_KEY", "")

	err := Run(context.Background())
	assert.True(t, errors.Is(err, config.ErrMissing))
}

func TestRun_ListenError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MACROLOG_STORE", "memory")
	t.Setenv("MACROLOG_ADDR", "not-an-address")
	t.Setenv("GEMINI_API_KEY", "test-key")

	err := Run(context.Background())
	assert.Error(t, err)
}

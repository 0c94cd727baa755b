package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/fintrackhq/fintrack/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_AppliesLevel(t *testing.T) {
	t.Parallel()
	logger := newLogger(&config.Log{Level: int(slog.LevelError), Format: "json"})

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelError))
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestNewLogger_DefaultLevelKeepsInfo(t *testing.T) {
	t.Parallel()
	logger := newLogger(&config.Log{Level: 0, Format: "text"})

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
}

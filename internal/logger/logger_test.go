package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/rutas/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{env: logger.EnvLocal, enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{env: logger.EnvDev, enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{env: logger.EnvProd, enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{env: "unknown", enabled: slog.LevelError, muted: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer

			log := logger.New(tt.env, &buf)

			assert.True(t, log.Enabled(ctx, tt.enabled))
			assert.False(t, log.Enabled(ctx, tt.muted))
		})
	}
}

func TestNew_InvalidEnvWarns(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	logger.New("staging", &buf)

	assert.Contains(t, buf.String(), "available_envs")
	assert.NotContains(t, buf.String(), `"time"`)
}

func TestNew_ProductionDropsTime(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	log := logger.New(logger.EnvProd, &buf)
	log.Warn("collection point skipped", "point", "A")

	assert.Contains(t, buf.String(), `"point":"A"`)
	assert.NotContains(t, buf.String(), `"time"`)
}

func TestIsKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.IsKnown(logger.EnvLocal))
	assert.True(t, logger.IsKnown(logger.EnvDev))
	assert.True(t, logger.IsKnown(logger.EnvProd))
	assert.False(t, logger.IsKnown("staging"))
	assert.False(t, logger.IsKnown(""))
}

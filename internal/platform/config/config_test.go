package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 5*time.Second, cfg.ToastTTL)
	assert.Equal(t, 30*time.Minute, cfg.ViewIdleTTL)
	assert.Equal(t, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), cfg.DashboardToday)
	assert.Equal(t, 2, cfg.PreviewSize)
	assert.Equal(t, "u-amy", cfg.DefaultUserID)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.example.com, ,http://localhost:5173")
	t.Setenv("TOAST_TTL", "1500ms")
	t.Setenv("VIEW_IDLE_TTL", "2h")
	t.Setenv("DASHBOARD_TODAY", "2026-03-01")
	t.Setenv("PREVIEW_SIZE", "5")
	t.Setenv("DEFAULT_USER_ID", " u-tom ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://ops.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 1500*time.Millisecond, cfg.ToastTTL)
	assert.Equal(t, 2*time.Hour, cfg.ViewIdleTTL)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cfg.DashboardToday)
	assert.Equal(t, 5, cfg.PreviewSize)
	assert.Equal(t, "u-tom", cfg.DefaultUserID)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("TOAST_TTL", "soon")
	t.Setenv("VIEW_IDLE_TTL", "0s")
	t.Setenv("PREVIEW_SIZE", "-1")
	t.Setenv("DASHBOARD_TODAY", "yesterday")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.ToastTTL)
	assert.Equal(t, 30*time.Minute, cfg.ViewIdleTTL)
	assert.Equal(t, 2, cfg.PreviewSize)
	assert.False(t, cfg.DashboardToday.IsZero())
	assert.Equal(t, 0, cfg.DashboardToday.Hour())
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" Warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseLogLevel(raw), raw)
	}
}

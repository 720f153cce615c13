package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	// Desktop config
	assert.Empty(t, cfg.Desktop.TreePath)
	assert.Equal(t, 100, cfg.Desktop.ZBase)
	assert.Equal(t, 700, cfg.Desktop.WindowWidth)
	assert.Equal(t, 500, cfg.Desktop.WindowHeight)
	assert.Equal(t, "dracula", cfg.Desktop.ViewerStyle)

	assert.NoError(t, cfg.Validate())
}

func TestLoadMatchesDefault(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":               "9000",
		"HOST":               "127.0.0.1",
		"CORS_ORIGINS":       "http://localhost:5173,https://ctx.dev",
		"LOG_LEVEL":          "debug",
		"LOG_DEV":            "true",
		"RATE_LIMIT_RPS":     "500",
		"RATE_LIMIT_BURST":   "1000",
		"RATE_LIMIT_ENABLED": "false",
		"DESKTOP_TREE_PATH":  "/etc/ctxos/tree.toml",
		"WINDOW_Z_BASE":      "10",
		"WINDOW_WIDTH":       "800",
		"WINDOW_HEIGHT":      "600",
		"VIEWER_STYLE":       "monokai",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, []string{"http://localhost:5173", "https://ctx.dev"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, DesktopConfig{
		TreePath:     "/etc/ctxos/tree.toml",
		ZBase:        10,
		WindowWidth:  800,
		WindowHeight: 600,
		ViewerStyle:  "monokai",
	}, cfg.Desktop)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non-numeric rate", key: "RATE_LIMIT_RPS", val: "fast"},
		{name: "non-boolean dev flag", key: "LOG_DEV", val: "maybe"},
		{name: "zero width", key: "WINDOW_WIDTH", val: "0"},
		{name: "negative z base", key: "WINDOW_Z_BASE", val: "-1"},
		{name: "zero burst", key: "RATE_LIMIT_BURST", val: "0"},
		{name: "unknown log level", key: "LOG_LEVEL", val: "warning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestRateLimitDisabledSkipsValidation(t *testing.T) {
	cfg := Default()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.Burst = 0
	assert.NoError(t, cfg.Validate())
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error", ""} {
		cfg := Default()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}

	cfg := Default()
	cfg.Logging.Level = "warning"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "warning"`)
}

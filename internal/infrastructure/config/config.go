package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Desktop   DesktopConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string   `envconfig:"PORT" default:"8000"`
	Host        string   `envconfig:"HOST" default:"0.0.0.0"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// DesktopConfig holds window manager and file tree settings.
type DesktopConfig struct {
	TreePath     string `envconfig:"DESKTOP_TREE_PATH"` // Empty uses the embedded tree
	ZBase        int    `envconfig:"WINDOW_Z_BASE" default:"100"`
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"700"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"500"`
	ViewerStyle  string `envconfig:"VIEWER_STYLE" default:"dracula"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the desktop cannot run with.
func (c *Config) Validate() error {
	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
		}
	}
	if c.Desktop.WindowWidth <= 0 || c.Desktop.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Desktop.WindowWidth, c.Desktop.WindowHeight)
	}
	if c.Desktop.ZBase < 0 {
		return fmt.Errorf("invalid z base %d", c.Desktop.ZBase)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit %d rps, burst %d", c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8000",
			Host:        "0.0.0.0",
			CORSOrigins: []string{"*"},
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Desktop: DesktopConfig{
			ZBase:        100,
			WindowWidth:  700,
			WindowHeight: 500,
			ViewerStyle:  "dracula",
		},
	}
}

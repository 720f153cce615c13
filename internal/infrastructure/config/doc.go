// Package config loads server configuration from environment variables
// using envconfig.
//
// Variables:
//   - PORT, HOST, CORS_ORIGINS: listener and allowed origins
//   - LOG_LEVEL, LOG_DEV: zap level and console mode
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED: per-client limiter
//   - DESKTOP_TREE_PATH: yaml, toml or json file tree (embedded tree if empty)
//   - WINDOW_Z_BASE, WINDOW_WIDTH, WINDOW_HEIGHT: window manager defaults
//   - VIEWER_STYLE: chroma style for highlighted files
package config

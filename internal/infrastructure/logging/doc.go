// Package logging provides structured logging using uber/zap.
//
// Production mode writes JSON, development mode (LOG_DEV) writes coloured
// console lines. Components get named children:
//
//	logger := logging.NewFromSettings(cfg.Logging.Level, cfg.Logging.Development)
//	wm := window.NewManager(apps, tree, opts).WithLogger(logger.Component("window"))
package logging

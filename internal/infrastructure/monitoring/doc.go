// Package monitoring provides Prometheus metrics for the desktop backend.
//
// Each Metrics value owns a private registry, exposed over HTTP with Handler.
//
// Metrics:
//   - ctxos_http_requests_total, ctxos_http_request_duration_seconds
//   - ctxos_windows_open: live windows
//   - ctxos_window_ops_total{op,result}: window manager outcomes
//   - ctxos_apps_launched_total{app}: windows created per app
//   - ctxos_ws_connections, ctxos_ws_messages_total{direction,type}
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	router.Use(monitoring.Middleware(metrics))
//	router.GET("/metrics", gin.WrapH(metrics.Handler()))
package monitoring

// Package middleware provides gin middleware for the desktop API: CORS,
// per-client rate limiting and request logging.
package middleware

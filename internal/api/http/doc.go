// Package http provides the desktop's REST handlers.
//
// Domain errors map to status codes: anything wrapping types.ErrNotFound is
// 404, types.ErrInvalidTarget is 422, and malformed input is 400.
package http

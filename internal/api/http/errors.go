package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidTarget):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a domain error
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// badRequest writes a malformed input error. Bodies cut off by the size
// limit answer 413.
func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large", "max_bytes": tooLarge.Limit})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

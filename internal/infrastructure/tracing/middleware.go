package tracing

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// HTTPMiddleware opens a span per request. An incoming X-Trace-ID is
// continued; the trace id is echoed in the response headers.
func HTTPMiddleware(tracer *Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithTrace(
			c.Request.Context(),
			TraceID(c.GetHeader(TraceHeader)),
			SpanID(c.GetHeader(SpanHeader)),
		)

		name := c.FullPath()
		if name == "" {
			name = "unmatched"
		}
		span, ctx := tracer.StartSpan(ctx, c.Request.Method+" "+name)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceHeader, string(span.TraceID))

		c.Next()

		span.StatusCode = c.Writer.Status()
		if len(c.Errors) > 0 {
			span.Err = errors.New(c.Errors.String())
		}
		tracer.Finish(span)
	}
}

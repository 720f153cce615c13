/*
Package tracing provides lightweight request tracing.

Each HTTP request gets a span; the trace id comes from the X-Trace-ID header
or is generated, is stored in the request context and echoed back to the
client. Finished spans are written to the zap logger (debug level, warn when
the handler recorded an error).

	tracer := tracing.New("desktop", logger.Component("trace"))
	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "render")
	defer tracer.Finish(span)
*/
package tracing

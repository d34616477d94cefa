package middleware

import (
	"school-fee-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is echoed on every response
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey holds the trace ID in the echo context
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// RequestID assigns every request a trace ID. A client-supplied X-Trace-ID, or failing
// that X-Request-ID, is kept when it is short printable ASCII; anything else is replaced
// with a fresh UUID. The ID lands in the response header, the echo context and the
// request context seen by services.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := incomingTraceID(req.Header.Get(TraceIDHeader), req.Header.Get(echo.HeaderXRequestID))
			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.WithRequestID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

func incomingTraceID(candidates ...string) string {
	for _, id := range candidates {
		if isUsableTraceID(id) {
			return id
		}
	}
	return uuid.NewString()
}

// trace IDs end up in log lines, so control characters and spaces are rejected
func isUsableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GetTraceID returns the trace ID set by RequestID, or "" outside of it
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

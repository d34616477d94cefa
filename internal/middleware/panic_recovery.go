package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"school-fee-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response and logs the stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				req := c.Request()
				logger.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"stack_trace", string(debug.Stack()),
				)

				// headers already went out; nothing useful can be written
				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}

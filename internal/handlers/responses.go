package handlers

import (
	"school-fee-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses:
//
//   - SendError for client errors and expected service failures:
//     SendError(c, errors.TransactionInvalidOrderID, errors.WithDetails("..."))
//     SendError(c, errors.UpstreamFetchFailed)
//   - SendSystemError for anything unexpected; the cause never reaches the body.
//
// Malformed listing query parameters are not errors. They decode to defaults.

// TraceIDContextKey matches the key the request ID middleware stores under
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps single-object payloads
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the response for code, tagged with the request trace ID
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.GetHTTPStatus(), resp)
}

// SendSystemError answers SYSTEM_001; callers log err themselves
func SendSystemError(c echo.Context, err error) error {
	resp, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(resp.GetHTTPStatus(), resp)
}

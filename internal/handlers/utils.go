package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apierrors "school-fee-dashboard/internal/errors"
	"school-fee-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// requestContext returns the request context carrying the trace ID for service-level logs
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if traceID := getTraceID(c); traceID != "" {
		ctx = services.WithRequestID(ctx, traceID)
	}
	return ctx
}

// bindAndValidate binds path parameters into dst and runs the registered validator
func bindAndValidate(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindPathParams(c, dst); err != nil {
		return err
	}
	return c.Validate(dst)
}

// mapServiceError maps a service error to an API error code. It returns false for
// errors that must be reported as internal errors.
func mapServiceError(err error) (apierrors.ErrorCode, bool) {
	var upstreamErr *services.UpstreamError

	switch {
	case errors.Is(err, services.ErrTransactionNotFound):
		return apierrors.TransactionNotFound, true
	case errors.Is(err, services.ErrSchoolNotFound):
		return apierrors.SchoolNotFound, true
	case errors.Is(err, services.ErrCircuitBreakerOpen):
		return apierrors.UpstreamUnavailable, true
	case errors.Is(err, context.DeadlineExceeded):
		return apierrors.UpstreamTimeout, true
	case errors.Is(err, services.ErrFetchFailed):
		return apierrors.UpstreamFetchFailed, true
	case errors.As(err, &upstreamErr):
		return apierrors.UpstreamFetchFailed, true
	default:
		return "", false
	}
}

// sendServiceError answers a failed service call. Server-side failures are logged with
// the trace ID; unmapped errors become SYSTEM_001.
func sendServiceError(c echo.Context, logger *slog.Logger, msg string, err error) error {
	code, ok := mapServiceError(err)
	if !ok || apierrors.GetHTTPStatus(code) >= http.StatusInternalServerError {
		logger.Error(msg,
			"trace_id", getTraceID(c),
			"path", c.Path(),
			"error", err,
		)
	}
	if !ok {
		return SendSystemError(c, err)
	}
	return SendError(c, code)
}

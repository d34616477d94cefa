package services

import (
	"context"
	"log/slog"
	"time"

	"school-fee-dashboard/internal/query"
)

const (
	// RedactedValue masks free-text search terms, which often contain student names
	RedactedValue = "***REDACTED***"
)

type contextKey string

// RequestIDContextKey carries the request id from the HTTP layer into services
const RequestIDContextKey contextKey = "request_id"

// WithRequestID returns a context carrying the request id for log correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// QueryLogger provides structured logging for transaction queries
type QueryLogger struct {
	logger *slog.Logger
}

// NewQueryLogger creates a new query logger
func NewQueryLogger(logger *slog.Logger) QueryLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryLogger{
		logger: logger,
	}
}

// LogQueryStarted logs the parameters sent to a transaction lister
func (ql *QueryLogger) LogQueryStarted(ctx context.Context, source string, params query.RequestParams) {
	ql.logger.DebugContext(ctx, "transaction query started",
		slog.String("event_type", "transaction_query_started"),
		slog.String("source", source),
		slog.Any("params", redactParams(params)),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogQueryCompleted(ctx context.Context, source string, resultCount int, totalCount int64, duration time.Duration) {
	ql.logger.InfoContext(ctx, "transaction query completed",
		slog.String("event_type", "transaction_query_completed"),
		slog.String("source", source),
		slog.Int("result_count", resultCount),
		slog.Int64("total_count", totalCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogQueryFailed(ctx context.Context, source string, errorMsg string, duration time.Duration) {
	ql.logger.WarnContext(ctx, "transaction query failed",
		slog.String("event_type", "transaction_query_failed"),
		slog.String("source", source),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogStaleResponse logs a response discarded because a newer request was issued
func (ql *QueryLogger) LogStaleResponse(ctx context.Context, sequence, latest uint64) {
	ql.logger.DebugContext(ctx, "stale transaction response discarded",
		slog.String("event_type", "transaction_query_stale"),
		slog.Uint64("sequence", sequence),
		slog.Uint64("latest", latest),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogPageClamped(ctx context.Context, requested, clamped int) {
	ql.logger.InfoContext(ctx, "requested page out of range",
		slog.String("event_type", "page_clamped"),
		slog.Int("requested_page", requested),
		slog.Int("clamped_page", clamped),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogUpstreamRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	ql.logger.DebugContext(ctx, "upstream request",
		slog.String("event_type", "upstream_request"),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", statusCode),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState CircuitBreakerState) {
	ql.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState.String()),
		slog.String("new_state", newState.String()),
		slog.Time("timestamp", time.Now()),
	)
}

func redactParams(params query.RequestParams) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		if k == query.KeySearch {
			v = RedactedValue
		}
		out[k] = v
	}
	return out
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return requestID
	}
	return ""
}

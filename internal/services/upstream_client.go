package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/dto"
	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	upstreamTokenIssuer = "feedash"
	upstreamServiceName = "upstream"
)

// AuthTransport signs every request with a short-lived HS256 bearer token.
// Without a signing secret the API key itself is sent as the bearer token.
type AuthTransport struct {
	apiKey string
	secret []byte
	ttl    time.Duration
	base   http.RoundTripper
	now    func() time.Time
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	token, err := t.token()
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if t.apiKey != "" {
		req.Header.Set("X-API-Key", t.apiKey)
	}

	return t.base.RoundTrip(req)
}

func (t *AuthTransport) token() (string, error) {
	if len(t.secret) == 0 {
		return t.apiKey, nil
	}

	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    upstreamTokenIssuer,
		Subject:   t.apiKey,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign upstream token: %w", err)
	}
	return signed, nil
}

// UpstreamClient reads transactions from the remote payments API
type UpstreamClient struct {
	config      *config.UpstreamConfig
	client      *http.Client
	breaker     CircuitBreakerInterface
	logger      *slog.Logger
	queryLogger QueryLoggerInterface
	metrics     MetricsRecorderInterface
}

// NewUpstreamClient creates a client for the payments API
func NewUpstreamClient(
	cfg *config.UpstreamConfig,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
	queryLogger QueryLoggerInterface,
) UpstreamClientInterface {
	c := &UpstreamClient{
		config:      cfg,
		logger:      logger,
		metrics:     metrics,
		queryLogger: queryLogger,
	}

	c.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     cfg.FailureThreshold,
		ResetTimeout:    cfg.ResetTimeout,
		HalfOpenMaxSucc: 1,
		OnStateChange:   c.onBreakerStateChange,
	})

	transport := &AuthTransport{
		apiKey: cfg.APIKey,
		secret: []byte(cfg.SigningSecret),
		ttl:    cfg.TokenTTL,
		base:   http.DefaultTransport,
		now:    time.Now,
	}

	c.client = &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return c
}

func (c *UpstreamClient) onBreakerStateChange(from, to CircuitBreakerState) {
	c.queryLogger.LogCircuitBreakerStateChange(context.Background(), upstreamServiceName, from, to)
	c.metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": upstreamServiceName})
}

// ListTransactions forwards the request params verbatim; the API filters, sorts and pages
func (c *UpstreamClient) ListTransactions(ctx context.Context, params query.RequestParams) (*models.PageResult, error) {
	var payload dto.UpstreamListResponse
	if err := c.getJSON(ctx, "list", "/transactions", params.Values(), &payload); err != nil {
		return nil, err
	}

	pageSize := params.PageSize()
	items := dto.UpstreamTransactionsToModels(payload.Data)
	if len(items) > pageSize {
		items = items[:pageSize]
	}

	return &models.PageResult{
		Items:      items,
		TotalCount: payload.Total,
		TotalPages: models.TotalPagesFor(payload.Total, pageSize),
		Page:       params.Page(),
		PageSize:   pageSize,
	}, nil
}

// ListSchoolTransactions fetches every transaction of one school and evaluates params locally,
// since the per-school endpoint is unpaginated
func (c *UpstreamClient) ListSchoolTransactions(ctx context.Context, schoolID string, params query.RequestParams) (*models.PageResult, error) {
	var payload dto.UpstreamListResponse
	path := "/transactions/school/" + url.PathEscape(schoolID)
	if err := c.getJSON(ctx, "school_list", path, nil, &payload); err != nil {
		return nil, err
	}

	scoped := maps.Clone(params)
	if scoped == nil {
		scoped = query.RequestParams{}
	}
	scoped[query.KeySchoolIDs] = schoolID

	return query.Evaluate(dto.UpstreamTransactionsToModels(payload.Data), scoped)
}

func (c *UpstreamClient) GetStats(ctx context.Context, params query.RequestParams) (*models.StatsSummary, error) {
	values := params.Values()
	for _, key := range []string{query.KeyPage, query.KeyPageSize, query.KeySortField, query.KeySortOrder} {
		values.Del(key)
	}

	var payload dto.UpstreamItemResponse[dto.UpstreamStats]
	if err := c.getJSON(ctx, "stats", "/transactions/stats", values, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, errors.New("upstream stats response has no data")
	}

	stats := payload.Data
	return &models.StatsSummary{
		TotalCount:         stats.TotalTransactions,
		SuccessCount:       stats.SuccessfulTransactions,
		PendingCount:       stats.PendingTransactions,
		FailedCount:        stats.FailedTransactions,
		SuccessRatePercent: query.SuccessRate(stats.SuccessfulTransactions, stats.TotalTransactions),
		TotalAmount:        stats.TotalAmount,
	}, nil
}

func (c *UpstreamClient) GetByCustomOrderID(ctx context.Context, customOrderID string) (*models.Transaction, error) {
	var payload dto.UpstreamItemResponse[dto.UpstreamTransaction]
	err := c.getJSON(ctx, "status", "/payment/status/"+url.PathEscape(customOrderID), nil, &payload)

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusNotFound {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, ErrTransactionNotFound
	}

	tx := payload.Data.ToModel()
	return &tx, nil
}

// GetRecent asks for the first page sorted by payment time, newest first
func (c *UpstreamClient) GetRecent(ctx context.Context, limit int) ([]models.Transaction, error) {
	state := models.NewFilterState()
	state.SetPageSize(limit)

	result, err := c.ListTransactions(ctx, query.Build(state))
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *UpstreamClient) ListSchools(ctx context.Context) ([]models.School, error) {
	var payload dto.UpstreamCollectionResponse[dto.UpstreamSchool]
	if err := c.getJSON(ctx, "schools", "/schools", nil, &payload); err != nil {
		return nil, err
	}

	schools := make([]models.School, 0, len(payload.Data))
	for _, s := range payload.Data {
		schools = append(schools, models.School{ID: s.ID, Name: s.Name, Email: s.Email})
	}
	return schools, nil
}

func (c *UpstreamClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "health", "/health", nil, nil)
}

// getJSON issues a GET through the circuit breaker and decodes a 2xx body into out.
// A nil out discards the body.
func (c *UpstreamClient) getJSON(ctx context.Context, endpoint, path string, values url.Values, out any) error {
	if c.breaker.IsOpen() {
		c.metrics.IncrementCounter("upstream.request", map[string]string{"endpoint": endpoint, "status": "rejected"})
		return ErrCircuitBreakerOpen
	}

	target := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(values) > 0 {
		target += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, body, err := c.do(req)
	duration := time.Since(start)
	c.metrics.RecordProcessingTime("upstream.request", duration)

	if err != nil {
		// a caller abandoning the request says nothing about upstream health
		if ctx.Err() == nil {
			c.breaker.RecordFailure()
		}
		c.metrics.IncrementCounter("upstream.request", map[string]string{"endpoint": endpoint, "status": "error"})
		return fmt.Errorf("upstream %s request: %w", endpoint, err)
	}

	c.queryLogger.LogUpstreamRequest(ctx, req.Method, path, resp.StatusCode, duration)
	c.metrics.IncrementCounter("upstream.request", map[string]string{"endpoint": endpoint, "status": strconv.Itoa(resp.StatusCode)})

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		c.breaker.RecordSuccess()
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
		return nil
	}

	upstreamErr := decodeUpstreamError(resp.StatusCode, body)
	if upstreamErr.IsServerError() {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}

	c.logger.Error(
		"upstream error response",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"code", upstreamErr.Code,
		"message", upstreamErr.Message,
		"request_id", upstreamErr.RequestID,
	)

	return upstreamErr
}

func (c *UpstreamClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error(
			"upstream request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func decodeUpstreamError(statusCode int, body []byte) *UpstreamError {
	var errResp dto.UpstreamErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return &UpstreamError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
	}
	return &UpstreamError{
		StatusCode: statusCode,
		Code:       errResp.Error.Code,
		Message:    errResp.Error.Message,
		RequestID:  errResp.Error.RequestID,
	}
}

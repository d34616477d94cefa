package handlers

import (
	"context"
	"net/http"
	"time"

	"school-fee-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is any dependency that can report its reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       *gorm.DB
	upstream Pinger
}

// NewHealthCheckHandler creates a new health check handler. upstream may be nil
// when transactions are served from the local database only.
func NewHealthCheckHandler(db *gorm.DB, upstream Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, upstream: upstream}
}

// HealthCheck reports database and payments API connectivity
// @Summary Health check
// @Description Check API, database and payments API connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,checks=object} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{
		"database": "skipped",
		"upstream": "skipped",
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		checks["database"] = "ok"
	}

	if h.upstream != nil {
		if err := h.upstream.Ping(ctx); err != nil {
			return SendError(c, errors.UpstreamUnavailable, errors.WithDetails("Payments API unreachable"))
		}
		checks["upstream"] = "ok"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
	})
}

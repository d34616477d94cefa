package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"school-fee-dashboard/internal/dto"
	apierrors "school-fee-dashboard/internal/errors"
	"school-fee-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// StatsScopeParam selects page or whole-set stats; it is not part of the shareable query
	StatsScopeParam = "stats"
	listCacheTTL    = 15 * time.Second
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	queryService services.TransactionQueryServiceInterface
	logger       *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(queryService services.TransactionQueryServiceInterface, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		queryService: queryService,
		logger:       logger,
	}
}

// ListTransactions returns one filtered, sorted page of transactions
// @Summary List transactions
// @Description Filter, sort and paginate school-fee transactions. Unknown or malformed parameters fall back to defaults.
// @Tags Transactions
// @Produce json
// @Param status query string false "Comma-separated statuses" Enums(SUCCESS, PENDING, FAILED)
// @Param school_id query string false "Comma-separated school IDs"
// @Param gateway query string false "Comma-separated gateways"
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param search query string false "Order id, collect id or student name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort query string false "Sort field" default(payment_time)
// @Param order query string false "Sort order" Enums(asc, desc) default(desc)
// @Param stats query string false "Stats scope" Enums(page, all) default(page)
// @Success 200 {object} services.TransactionListing
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Failed to fetch transactions"
// @Failure 503 {object} errors.ErrorResponse "UPSTREAM_002 - Payments service unavailable"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ctx := requestContext(c)
	scope := services.ParseStatsScope(c.QueryParam(StatsScopeParam))

	listing, err := h.queryService.List(ctx, c.Request().URL.RawQuery, scope)
	if err != nil {
		return h.sendQueryError(c, err)
	}

	setListCacheHeader(c)
	return c.JSON(http.StatusOK, listing)
}

// ListSchoolTransactions is ListTransactions restricted to the school in the path
// @Summary List a school's transactions
// @Tags Transactions
// @Produce json
// @Param schoolId path string true "School ID"
// @Success 200 {object} services.TransactionListing
// @Failure 400 {object} errors.ErrorResponse "SCHOOL_002 - Invalid school ID"
// @Router /schools/{schoolId}/transactions [get]
func (h *TransactionHandler) ListSchoolTransactions(c echo.Context) error {
	var params dto.SchoolParams
	if err := bindAndValidate(c, &params); err != nil {
		return SendError(c, apierrors.SchoolInvalidID, apierrors.WithDetails(validationDetails(err)...))
	}

	ctx := requestContext(c)
	scope := services.ParseStatsScope(c.QueryParam(StatsScopeParam))

	listing, err := h.queryService.ListForSchool(ctx, params.SchoolID, c.Request().URL.RawQuery, scope)
	if err != nil {
		return h.sendQueryError(c, err)
	}

	setListCacheHeader(c)
	return c.JSON(http.StatusOK, listing)
}

// GetTransactionStatus looks up one transaction by its custom order id
// @Summary Transaction status
// @Tags Transactions
// @Produce json
// @Param customOrderId path string true "Custom order ID"
// @Success 200 {object} dto.TransactionStatusResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid custom order ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/status/{customOrderId} [get]
func (h *TransactionHandler) GetTransactionStatus(c echo.Context) error {
	var params dto.TransactionStatusParams
	if err := bindAndValidate(c, &params); err != nil {
		return SendError(c, apierrors.TransactionInvalidOrderID, apierrors.WithDetails(validationDetails(err)...))
	}

	tx, err := h.queryService.GetStatus(requestContext(c), params.CustomOrderID)
	if err != nil {
		return h.sendQueryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionStatusResponse{Data: tx})
}

func (h *TransactionHandler) sendQueryError(c echo.Context, err error) error {
	return sendServiceError(c, h.logger, "transaction query failed", err)
}

func setListCacheHeader(c echo.Context) {
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(listCacheTTL.Seconds())))
}

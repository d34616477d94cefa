package handlers

import (
	"log/slog"
	"net/http"

	"school-fee-dashboard/internal/dto"
	"school-fee-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the overview screen and the school picker
type DashboardHandler struct {
	dashboard services.DashboardServiceInterface
	schools   services.SchoolLister
	logger    *slog.Logger
}

func NewDashboardHandler(
	dashboard services.DashboardServiceInterface,
	schools services.SchoolLister,
	logger *slog.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		schools:   schools,
		logger:    logger,
	}
}

// GetOverview returns dataset-level stats and the most recent transactions
// @Summary Dashboard overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=services.DashboardOverview}
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Failed to fetch transactions"
// @Router /dashboard [get]
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	overview, err := h.dashboard.GetOverview(requestContext(c))
	if err != nil {
		return sendServiceError(c, h.logger, "dashboard overview failed", err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: overview})
}

// ListSchools returns every school, ordered by name
// @Summary List schools
// @Tags Schools
// @Produce json
// @Success 200 {object} dto.SchoolsResponse
// @Router /schools [get]
func (h *DashboardHandler) ListSchools(c echo.Context) error {
	schools, err := h.schools.ListSchools(requestContext(c))
	if err != nil {
		return sendServiceError(c, h.logger, "failed to list schools", err)
	}

	return c.JSON(http.StatusOK, dto.SchoolsResponse{Data: schools, Total: len(schools)})
}

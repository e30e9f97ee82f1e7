package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fintrackr/fintrackr/internal/pkg/logger"
	"github.com/fintrackr/fintrackr/internal/pkg/middleware"
	"github.com/fintrackr/fintrackr/internal/utils"
	"github.com/fintrackr/fintrackr/services/finance"
)

// DashboardHandler handles HTTP requests for summary reports
type DashboardHandler struct {
	dashboardUC finance.DashboardUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC finance.DashboardUC) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
	}
}

// Monthly returns income/expense totals for all 12 months of a year
func (h *DashboardHandler) Monthly(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid year")
	}

	rows, err := h.dashboardUC.MonthlySummary(c.Request().Context(), userID, year)
	if err != nil {
		logger.Error("Failed to get monthly summary",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
			logger.Int("year", year))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get monthly summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monthly summary retrieved successfully", rows)
}

// Categories returns per-category totals for a year, optionally for one type
func (h *DashboardHandler) Categories(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid year")
	}

	rows, err := h.dashboardUC.CategorySummary(c.Request().Context(), userID, year, c.QueryParam("type"))
	if err != nil {
		logger.Error("Failed to get category summary",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
			logger.Int("year", year))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get category summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Category summary retrieved successfully", rows)
}

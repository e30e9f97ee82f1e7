package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fintrackr/fintrackr/internal/pkg/logger"
	"github.com/fintrackr/fintrackr/internal/pkg/middleware"
	"github.com/fintrackr/fintrackr/internal/utils"
	"github.com/fintrackr/fintrackr/services/finance"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles HTTP requests for spreadsheet exports
type ExportHandler struct {
	exportUC finance.ExportUC
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportUC finance.ExportUC) *ExportHandler {
	return &ExportHandler{
		exportUC: exportUC,
	}
}

// Transactions streams the caller's transactions as an xlsx attachment
func (h *ExportHandler) Transactions(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	year := 0
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid year")
		}
		year = parsed
	}

	data, filename, err := h.exportUC.ExportTransactions(c.Request().Context(), userID, year)
	if err != nil {
		logger.Error("Failed to export transactions",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to export transactions")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

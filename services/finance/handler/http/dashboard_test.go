package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/fintrackr/internal/pkg/middleware"
	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/services/finance/mocks"
)

func TestDashboardHandler_Monthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDashboardUC(ctrl)
	handler := NewDashboardHandler(mockUC)
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		rows := make([]models.MonthlySummaryRow, 0, 12)
		for month := 1; month <= 12; month++ {
			rows = append(rows, models.MonthlySummaryRow{
				Month:   month,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}
		mockUC.EXPECT().
			MonthlySummary(gomock.Any(), userID, 2025).
			Return(rows, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/dashboard/monthly?year=2025", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, handler.Monthly(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid Year", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/api/dashboard/monthly?year=twenty", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, handler.Monthly(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid year")
	})

	t.Run("Missing Year", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/api/dashboard/monthly", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, handler.Monthly(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Internal Error", func(t *testing.T) {
		mockUC.EXPECT().
			MonthlySummary(gomock.Any(), userID, 2025).
			Return(nil, errors.New("database error"))

		c, rec := newJSONContext(http.MethodGet, "/api/dashboard/monthly?year=2025", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, handler.Monthly(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDashboardHandler_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDashboardUC(ctrl)
	handler := NewDashboardHandler(mockUC)
	userID := uuid.New()

	t.Run("Success With Type", func(t *testing.T) {
		mockUC.EXPECT().
			CategorySummary(gomock.Any(), userID, 2025, models.TransactionTypeExpense).
			Return([]models.CategorySummaryRow{
				{Category: "Rent", Total: decimal.RequireFromString("1200")},
			}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/dashboard/categories?year=2025&type=Expense", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, handler.Categories(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Rent")
	})

	t.Run("Success Without Type", func(t *testing.T) {
		mockUC.EXPECT().
			CategorySummary(gomock.Any(), userID, 2025, "").
			Return([]models.CategorySummaryRow{}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/dashboard/categories?year=2025", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, handler.Categories(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid Year", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/api/dashboard/categories?year=bad", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, handler.Categories(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

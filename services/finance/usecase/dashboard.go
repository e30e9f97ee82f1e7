package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackr/fintrackr/internal/pkg/models"
)

// MonthlySummary returns income and expense totals for every month of
// the given year. The repository only reports months that have
// transactions; missing months are filled with zero totals so the
// result always has exactly 12 entries in month order.
func (u *DashboardUC) MonthlySummary(ctx context.Context, userID uuid.UUID, year int) ([]models.MonthlySummaryRow, error) {
	rows, err := u.txRepo.GetMonthlySummary(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	byMonth := make(map[int]models.MonthlySummaryRow, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	result := make([]models.MonthlySummaryRow, 0, 12)
	for month := 1; month <= 12; month++ {
		if row, ok := byMonth[month]; ok {
			result = append(result, row)
			continue
		}
		result = append(result, models.MonthlySummaryRow{
			Month:   month,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		})
	}

	return result, nil
}

// CategorySummary returns per-category totals for the given year,
// optionally restricted to one transaction type, ordered by total
// descending.
func (u *DashboardUC) CategorySummary(ctx context.Context, userID uuid.UUID, year int, txType string) ([]models.CategorySummaryRow, error) {
	rows, err := u.txRepo.GetCategorySummary(ctx, userID, year, txType)
	if err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}
	return rows, nil
}

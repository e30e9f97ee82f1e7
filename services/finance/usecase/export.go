package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Transactions"

// exportTimeFormat matches the spreadsheet's CreatedAt column format
const exportTimeFormat = "2006-01-02 15:04:05"

// ExportTransactions renders the user's transactions as an xlsx
// workbook, newest first, optionally restricted to one creation year
// (year 0 disables the filter).
func (u *ExportUC) ExportTransactions(ctx context.Context, userID uuid.UUID, year int) ([]byte, string, error) {
	txs, err := u.txRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is renamed rather than adding a second one
	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, "", fmt.Errorf("failed to set sheet name: %w", err)
	}

	headers := []string{"Id", "Amount", "Type", "Category", "Note", "CreatedAt"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, tx := range txs {
		if year != 0 && tx.CreatedAt.Year() != year {
			continue
		}

		note := ""
		if tx.Note != nil {
			note = *tx.Note
		}

		values := []interface{}{
			tx.ID.String(),
			tx.Amount.String(),
			tx.Type,
			tx.Category,
			note,
			tx.CreatedAt.Format(exportTimeFormat),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write row: %w", err)
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("transactions_%s.xlsx", time.Now().UTC().Format("20060102150405"))
	return buf.Bytes(), filename, nil
}

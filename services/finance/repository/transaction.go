package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/services/finance"
)

// CreateTransaction inserts a new transaction, assigning its id and a
// server-side UTC creation timestamp
func (r *TransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	tx.ID = uuid.New()
	tx.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO transactions (id, userid, amount, category, type, note, createdat)
		VALUES (:id, :userid, :amount, :category, :type, :note, :createdat)
	`
	_, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by its id
func (r *TransactionRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, userid, amount, category, type, note, createdat
		FROM transactions
		WHERE id = $1
	`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// UpdateTransaction replaces the mutable fields of a transaction.
// Id, owner and creation timestamp are never touched.
func (r *TransactionRepo) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = :amount, category = :category, type = :type, note = :note
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction by its id
func (r *TransactionRepo) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

// ListTransactionsByUser returns the user's transactions, newest first
func (r *TransactionRepo) ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := `
		SELECT id, userid, amount, category, type, note, createdat
		FROM transactions
		WHERE userid = $1
		ORDER BY createdat DESC
	`

	txs := []models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txs, nil
}

// GetMonthlySummary sums income and expense amounts per calendar month
// for the given year. Months without transactions are absent from the
// result; the usecase layer fills them in. Summation happens in SQL on
// the DECIMAL column, so totals are exact.
func (r *TransactionRepo) GetMonthlySummary(ctx context.Context, userID uuid.UUID, year int) ([]models.MonthlySummaryRow, error) {
	query := `
		SELECT EXTRACT(MONTH FROM createdat)::int AS month,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'Income'), 0) AS income,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'Expense'), 0) AS expense
		FROM transactions
		WHERE userid = $1 AND EXTRACT(YEAR FROM createdat) = $2
		GROUP BY month
		ORDER BY month
	`

	rows := []models.MonthlySummaryRow{}
	err := r.db.SelectContext(ctx, &rows, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return rows, nil
}

// GetCategorySummary sums amounts per category label for the given
// year, optionally restricted to one transaction type. Labels group by
// exact string match; ordering is total descending.
func (r *TransactionRepo) GetCategorySummary(ctx context.Context, userID uuid.UUID, year int, txType string) ([]models.CategorySummaryRow, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE userid = $1 AND EXTRACT(YEAR FROM createdat) = $2
	`
	args := []interface{}{userID, year}

	if txType != "" {
		query += ` AND type = $3`
		args = append(args, txType)
	}
	query += `
		GROUP BY category
		ORDER BY total DESC
	`

	rows := []models.CategorySummaryRow{}
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return rows, nil
}

// likeEscaper neutralizes LIKE metacharacters so a category filter
// matches its value as a literal substring
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// FilterTransactions returns the user's transactions narrowed by the
// optional filter criteria. Date bounds are inclusive, the category
// match is a case-insensitive substring, the type match is exact.
func (r *TransactionRepo) FilterTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, userid, amount, category, type, note, createdat
		FROM transactions
		WHERE userid = $1
	`)
	args := []interface{}{userID}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		sb.WriteString(fmt.Sprintf(" AND createdat >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		sb.WriteString(fmt.Sprintf(" AND createdat <= $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, escapeLikePattern(filter.Category))
		sb.WriteString(fmt.Sprintf(" AND category ILIKE '%%' || $%d || '%%' ESCAPE '\\'", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		sb.WriteString(fmt.Sprintf(" AND type = $%d", len(args)))
	}

	// desc is the default and the fallback for unrecognized values
	if filter.Sort == "asc" {
		sb.WriteString(" ORDER BY createdat ASC")
	} else {
		sb.WriteString(" ORDER BY createdat DESC")
	}

	txs := []models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter transactions: %w", err)
	}

	return txs, nil
}

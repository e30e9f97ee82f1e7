package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/services/finance"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &TransactionRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func txColumns() []string {
	return []string{"id", "userid", "amount", "category", "type", "note", "createdat"}
}

func TestCreateTransaction(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	tx := &models.Transaction{
		UserID:   uuid.NullUUID{UUID: userID, Valid: true},
		Amount:   decimal.RequireFromString("123.45"),
		Category: "Food",
		Type:     models.TransactionTypeExpense,
	}

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Food", "Expense", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTransaction(context.Background(), tx)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.False(t, tx.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, tx.CreatedAt.Location())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByID(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	txID := uuid.New()
	userID := uuid.New()
	rows := sqlmock.NewRows(txColumns()).
		AddRow(txID, userID, "123.45", "Food", "Expense", nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(txID).
		WillReturnRows(rows)

	tx, err := repo.GetTransactionByID(context.Background(), txID)

	assert.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, txID, tx.ID)
	assert.True(t, tx.UserID.Valid)
	assert.Equal(t, userID, tx.UserID.UUID)
	// exact decimal round-trip, no float drift
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Nil(t, tx.Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	txID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(txID).
		WillReturnError(sql.ErrNoRows)

	tx, err := repo.GetTransactionByID(context.Background(), txID)

	assert.ErrorIs(t, err, finance.ErrTransactionNotFound)
	assert.Nil(t, tx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransaction(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	note := "groceries"
	tx := &models.Transaction{
		ID:       uuid.New(),
		Amount:   decimal.RequireFromString("99.99"),
		Category: "Food",
		Type:     models.TransactionTypeExpense,
		Note:     &note,
	}

	mock.ExpectExec("UPDATE transactions").
		WithArgs(sqlmock.AnyArg(), "Food", "Expense", &note, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTransaction(context.Background(), tx)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransaction(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	txID := uuid.New()
	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(txID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteTransaction(context.Background(), txID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactionsByUser(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows(txColumns()).
		AddRow(uuid.New(), userID, "50.00", "Salary", "Income", nil, newer).
		AddRow(uuid.New(), userID, "12.30", "Food", "Expense", nil, older)
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(userID).
		WillReturnRows(rows)

	txs, err := repo.ListTransactionsByUser(context.Background(), userID)

	assert.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Salary", txs[0].Category)
	assert.Equal(t, "Food", txs[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMonthlySummary(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"month", "income", "expense"}).
		AddRow(1, "1000.00", "250.50").
		AddRow(3, "0", "99.99")
	mock.ExpectQuery("SELECT EXTRACT").
		WithArgs(userID, 2025).
		WillReturnRows(rows)

	summary, err := repo.GetMonthlySummary(context.Background(), userID, 2025)

	assert.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, 1, summary[0].Month)
	assert.True(t, summary[0].Income.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, summary[0].Expense.Equal(decimal.RequireFromString("250.50")))
	assert.Equal(t, 3, summary[1].Month)
	assert.True(t, summary[1].Income.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategorySummary(t *testing.T) {
	t.Run("without type filter", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		userID := uuid.New()
		rows := sqlmock.NewRows([]string{"category", "total"}).
			AddRow("Food", "300.00").
			AddRow("Transport", "120.00")
		mock.ExpectQuery("SELECT category, COALESCE").
			WithArgs(userID, 2025).
			WillReturnRows(rows)

		summary, err := repo.GetCategorySummary(context.Background(), userID, 2025, "")

		assert.NoError(t, err)
		require.Len(t, summary, 2)
		assert.Equal(t, "Food", summary[0].Category)
		assert.True(t, summary[0].Total.GreaterThanOrEqual(summary[1].Total))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with type filter", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		userID := uuid.New()
		rows := sqlmock.NewRows([]string{"category", "total"}).
			AddRow("Food", "300.00")
		mock.ExpectQuery("SELECT category, COALESCE").
			WithArgs(userID, 2025, "Expense").
			WillReturnRows(rows)

		summary, err := repo.GetCategorySummary(context.Background(), userID, 2025, "Expense")

		assert.NoError(t, err)
		require.Len(t, summary, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFilterTransactions(t *testing.T) {
	userID := uuid.New()

	t.Run("no filters defaults to descending", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(txColumns()).
			AddRow(uuid.New(), userID, "10.00", "Food", "Expense", nil, time.Now())
		mock.ExpectQuery("SELECT (.+) FROM transactions").
			WithArgs(userID).
			WillReturnRows(rows)

		txs, err := repo.FilterTransactions(context.Background(), userID, &models.TransactionFilter{})

		assert.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all filters applied in order", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		filter := &models.TransactionFilter{
			StartDate: &start,
			EndDate:   &end,
			Category:  "foo",
			Type:      "Expense",
			Sort:      "asc",
		}

		rows := sqlmock.NewRows(txColumns())
		mock.ExpectQuery("SELECT (.+) FROM transactions").
			WithArgs(userID, start, end, "foo", "Expense").
			WillReturnRows(rows)

		txs, err := repo.FilterTransactions(context.Background(), userID, filter)

		assert.NoError(t, err)
		assert.Empty(t, txs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("category wildcards are escaped", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(txColumns())
		mock.ExpectQuery("SELECT (.+) FROM transactions").
			WithArgs(userID, `50\% off\\mid\_year`).
			WillReturnRows(rows)

		_, err := repo.FilterTransactions(context.Background(), userID, &models.TransactionFilter{
			Category: `50% off\mid_year`,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLikePattern("50%"))
	assert.Equal(t, `a\_b`, escapeLikePattern("a_b"))
	assert.Equal(t, `c:\\temp`, escapeLikePattern(`c:\temp`))
	assert.Equal(t, "plain", escapeLikePattern("plain"))
}

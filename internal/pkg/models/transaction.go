package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types. The type column is free-form VARCHAR(10) in the
// schema; the API rejects anything but these two values.
const (
	TransactionTypeIncome  = "Income"
	TransactionTypeExpense = "Expense"
)

// ValidTransactionType reports whether t is one of the accepted types.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense record. The owner
// column is nullable in the schema; the application always sets it.
type Transaction struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.NullUUID   `json:"user_id" db:"userid"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Category  string          `json:"category" db:"category"`
	Type      string          `json:"type" db:"type"`
	Note      *string         `json:"note,omitempty" db:"note"`
	CreatedAt time.Time       `json:"created_at" db:"createdat"`
}

// TransactionDTO is the API projection of a transaction
type TransactionDTO struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Type      string          `json:"type"`
	Note      *string         `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// DTO returns the API projection of the transaction
func (t *Transaction) DTO() *TransactionDTO {
	return &TransactionDTO{
		ID:        t.ID,
		Amount:    t.Amount,
		Category:  t.Category,
		Type:      t.Type,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}

// CreateTransactionRequest is the payload for transaction creation
type CreateTransactionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Note     *string         `json:"note"`
}

// UpdateTransactionRequest replaces all mutable fields of a transaction
type UpdateTransactionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Note     *string         `json:"note"`
}

// MonthlySummaryRow holds income and expense totals for one calendar month
type MonthlySummaryRow struct {
	Month   int             `json:"month" db:"month"`
	Income  decimal.Decimal `json:"income" db:"income"`
	Expense decimal.Decimal `json:"expense" db:"expense"`
}

// CategorySummaryRow holds the total amount for one category label
type CategorySummaryRow struct {
	Category string          `json:"category" db:"category"`
	Total    decimal.Decimal `json:"total" db:"total"`
}

// TransactionFilter narrows a user's transaction listing. Nil/empty
// fields are ignored. Sort is "asc" or "desc"; anything else falls back
// to descending.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Type      string
	Sort      string
}

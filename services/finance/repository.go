package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrackr/fintrackr/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fintrackr/fintrackr/services/finance UserRepo,TransactionRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// lookups are case-insensitive
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TransactionRepo represents the transaction repository interface.
// All operations are scoped by the caller-supplied user id; ownership
// of individual transactions is enforced one layer up.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)

	// aggregation
	GetMonthlySummary(ctx context.Context, userID uuid.UUID, year int) ([]models.MonthlySummaryRow, error)
	GetCategorySummary(ctx context.Context, userID uuid.UUID, year int, txType string) ([]models.CategorySummaryRow, error)
	FilterTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.Transaction, error)
}

package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrackr/fintrackr/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fintrackr/fintrackr/services/finance AuthUC,TransactionUC,DashboardUC,ExportUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserInfo, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserInfo, error)
}

// TransactionUC represents the transaction usecase interface.
// Every operation takes the authenticated caller's user id and enforces
// that accessed transactions belong to it.
type TransactionUC interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *models.CreateTransactionRequest) (*models.TransactionDTO, error)
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*models.TransactionDTO, error)
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, req *models.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDTO, error)
	FilterTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.TransactionDTO, error)
}

// DashboardUC represents the aggregation usecase interface
type DashboardUC interface {
	MonthlySummary(ctx context.Context, userID uuid.UUID, year int) ([]models.MonthlySummaryRow, error)
	CategorySummary(ctx context.Context, userID uuid.UUID, year int, txType string) ([]models.CategorySummaryRow, error)
}

// ExportUC represents the spreadsheet export usecase interface
type ExportUC interface {
	// ExportTransactions renders the user's transactions (optionally
	// restricted to one creation year; year 0 means no filter) as an
	// xlsx workbook and returns the bytes plus a suggested filename.
	ExportTransactions(ctx context.Context, userID uuid.UUID, year int) ([]byte, string, error)
}

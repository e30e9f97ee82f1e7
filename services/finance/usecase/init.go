package usecase

import (
	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/services/finance"
)

// AuthUC implements finance.AuthUC
type AuthUC struct {
	userRepo finance.UserRepo
	cfg      *models.Config
}

// NewAuthUC creates a new authentication usecase instance
func NewAuthUC(userRepo finance.UserRepo, cfg *models.Config) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// TransactionUC implements finance.TransactionUC
type TransactionUC struct {
	txRepo finance.TransactionRepo
	cfg    *models.Config
}

// NewTransactionUC creates a new transaction usecase instance
func NewTransactionUC(txRepo finance.TransactionRepo, cfg *models.Config) *TransactionUC {
	return &TransactionUC{
		txRepo: txRepo,
		cfg:    cfg,
	}
}

// DashboardUC implements finance.DashboardUC
type DashboardUC struct {
	txRepo finance.TransactionRepo
}

// NewDashboardUC creates a new dashboard usecase instance
func NewDashboardUC(txRepo finance.TransactionRepo) *DashboardUC {
	return &DashboardUC{
		txRepo: txRepo,
	}
}

// ExportUC implements finance.ExportUC
type ExportUC struct {
	txRepo finance.TransactionRepo
}

// NewExportUC creates a new export usecase instance
func NewExportUC(txRepo finance.TransactionRepo) *ExportUC {
	return &ExportUC{
		txRepo: txRepo,
	}
}

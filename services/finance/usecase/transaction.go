package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/services/finance"
)

// CreateTransaction records a new transaction owned by the caller.
// The type must be one of the closed set; the creation timestamp is
// assigned server-side by the repository.
func (u *TransactionUC) CreateTransaction(ctx context.Context, userID uuid.UUID, req *models.CreateTransactionRequest) (*models.TransactionDTO, error) {
	if !models.ValidTransactionType(req.Type) {
		return nil, finance.ErrInvalidTransactionType
	}

	tx := &models.Transaction{
		UserID:   uuid.NullUUID{UUID: userID, Valid: true},
		Amount:   req.Amount,
		Category: req.Category,
		Type:     req.Type,
		Note:     req.Note,
	}

	if err := u.txRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return tx.DTO(), nil
}

// GetTransaction returns one transaction after checking that it exists
// and belongs to the caller, in that order.
func (u *TransactionUC) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*models.TransactionDTO, error) {
	tx, err := u.ownedTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return tx.DTO(), nil
}

// UpdateTransaction replaces the mutable fields of an owned transaction
func (u *TransactionUC) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, req *models.UpdateTransactionRequest) error {
	if !models.ValidTransactionType(req.Type) {
		return finance.ErrInvalidTransactionType
	}

	tx, err := u.ownedTransaction(ctx, userID, id)
	if err != nil {
		return err
	}

	tx.Amount = req.Amount
	tx.Category = req.Category
	tx.Type = req.Type
	tx.Note = req.Note

	if err := u.txRepo.UpdateTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes an owned transaction
func (u *TransactionUC) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := u.ownedTransaction(ctx, userID, id); err != nil {
		return err
	}

	if err := u.txRepo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

// ListTransactions returns all of the caller's transactions, newest first
func (u *TransactionUC) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDTO, error) {
	txs, err := u.txRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return toDTOs(txs), nil
}

// FilterTransactions returns the caller's transactions narrowed by the filter
func (u *TransactionUC) FilterTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.TransactionDTO, error) {
	txs, err := u.txRepo.FilterTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter transactions: %w", err)
	}
	return toDTOs(txs), nil
}

// ownedTransaction fetches a transaction and verifies ownership.
// Existence is checked before ownership so a missing transaction is
// reported as not found, never as forbidden.
func (u *TransactionUC) ownedTransaction(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	tx, err := u.txRepo.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return nil, finance.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if !tx.UserID.Valid || tx.UserID.UUID != userID {
		return nil, finance.ErrForbidden
	}

	return tx, nil
}

func toDTOs(txs []models.Transaction) []models.TransactionDTO {
	dtos := make([]models.TransactionDTO, 0, len(txs))
	for i := range txs {
		dtos = append(dtos, *txs[i].DTO())
	}
	return dtos
}

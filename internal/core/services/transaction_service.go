package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/google/uuid"
)

const defaultPageSize = 20

// transactionService implements the TransactionSvc facade.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates the transaction service.
func NewTransactionService(repo portsrepo.TransactionRepository) portssvc.TransactionSvc {
	return &transactionService{txnRepo: repo}
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be strictly positive", apperrors.ErrValidation)
	}

	now := time.Now()
	transactionDate := now
	if req.TransactionDate != nil {
		transactionDate = *req.TransactionDate
	}

	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		OwnerID:           ownerID,
		AccountID:         deref(req.AccountID),
		CategoryID:        deref(req.CategoryID),
		TransactionType:   domain.TransactionType(req.TransactionType),
		Amount:            req.Amount,
		CurrencyCode:      req.CurrencyCode,
		TransactionDate:   transactionDate,
		Description:       req.Description,
		TransferAccountID: deref(req.TransferAccountID),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns one page of the owner's transactions. Page and
// pageSize default to 1 and 20; the offset is (page-1)*pageSize.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	filter := portsrepo.TransactionFilter{
		AccountID:       params.AccountID,
		CategoryID:      params.CategoryID,
		TransactionType: domain.TransactionType(params.TransactionType),
		From:            params.From,
		To:              params.To,
		Limit:           pageSize,
		Offset:          (page - 1) * pageSize,
	}

	txns, err := s.txnRepo.ListTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

// UpdateTransaction merges the provided fields onto the existing row. A nil
// pointer retains the prior value; UpdatedAt is refreshed even when the patch
// is empty. A supplied amount must be strictly positive.
func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be strictly positive", apperrors.ErrValidation)
	}

	txn, err := s.GetTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.TransactionType != nil {
		txn.TransactionType = domain.TransactionType(*req.TransactionType)
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.CurrencyCode != nil {
		txn.CurrencyCode = *req.CurrencyCode
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.TransferAccountID != nil {
		txn.TransferAccountID = *req.TransferAccountID
	}
	txn.UpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction hard-deletes the row. No cascading effects.
func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, ownerID, transactionID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

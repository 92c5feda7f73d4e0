package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount must be strictly positive; the service enforces this since binding
// tags cannot inspect a decimal.
type CreateTransactionRequest struct {
	AccountID         *string         `json:"accountID"`
	CategoryID        *string         `json:"categoryID"`
	TransactionType   string          `json:"transactionType" binding:"required,oneof=expense income transfer"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode      string          `json:"currencyCode" binding:"omitempty,len=3"`
	TransactionDate   *time.Time      `json:"transactionDate"` // defaults to now
	Description       string          `json:"description"`
	TransferAccountID *string         `json:"transferAccountID"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. Nil pointer means the prior value is retained.
type UpdateTransactionRequest struct {
	AccountID         *string          `json:"accountID"`
	CategoryID        *string          `json:"categoryID"`
	TransactionType   *string          `json:"transactionType" binding:"omitempty,oneof=expense income transfer"`
	Amount            *decimal.Decimal `json:"amount"`
	CurrencyCode      *string          `json:"currencyCode"`
	TransactionDate   *time.Time       `json:"transactionDate"`
	Description       *string          `json:"description"`
	TransferAccountID *string          `json:"transferAccountID"`
}

// ListTransactionsParams defines query parameters for the paginated
// transaction listing. Every provided filter is ANDed onto the owner filter.
type ListTransactionsParams struct {
	AccountID       string     `form:"accountId"`
	CategoryID      string     `form:"categoryId"`
	TransactionType string     `form:"type" binding:"omitempty,oneof=expense income transfer"`
	From            *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To              *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page            int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize        int        `form:"pageSize,default=20" binding:"omitempty,min=1"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID     string          `json:"transactionID"`
	AccountID         string          `json:"accountID,omitempty"`
	CategoryID        string          `json:"categoryID,omitempty"`
	TransactionType   string          `json:"transactionType"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode,omitempty"`
	TransactionDate   time.Time       `json:"transactionDate"`
	Description       string          `json:"description,omitempty"`
	TransferAccountID string          `json:"transferAccountID,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ListTransactionsResponse wraps one page of transactions. Total is the size
// of the returned page, not the overall match count; Page and PageSize echo
// the request.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		AccountID:         txn.AccountID,
		CategoryID:        txn.CategoryID,
		TransactionType:   string(txn.TransactionType),
		Amount:            txn.Amount,
		CurrencyCode:      txn.CurrencyCode,
		TransactionDate:   txn.TransactionDate,
		Description:       txn.Description,
		TransferAccountID: txn.TransferAccountID,
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}
}

// ToListTransactionsResponse converts one page of domain transactions into
// the list envelope.
func ToListTransactionsResponse(txns []domain.Transaction, page, pageSize int) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res, Total: len(res), Page: page, PageSize: pageSize}
}

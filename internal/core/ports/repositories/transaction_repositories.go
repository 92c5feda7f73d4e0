package repositories

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// TransactionFilter is the conjunctive filter applied on top of the owner
// scope when listing transactions. Zero values mean "not filtered".
type TransactionFilter struct {
	AccountID       string
	CategoryID      string
	TransactionType domain.TransactionType
	From            *time.Time
	To              *time.Time
	Limit           int
	Offset          int
}

// TransactionReader defines owner-scoped read operations for transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves the single transaction matching both id
	// and owner.
	FindTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error)

	// ListTransactions retrieves one page of the owner's transactions matching
	// the filter, ordered by transaction date descending then id descending.
	ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction persists the full merged view of a transaction, scoped
	// by id and owner.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction hard-deletes the transaction, scoped by id and owner.
	DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error
}

// TransactionRepository combines all transaction repository operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}

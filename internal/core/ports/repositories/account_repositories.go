package repositories

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// AccountReader defines read operations for account data. Every read is
// scoped to an owner; a row belonging to another owner is reported as
// apperrors.ErrNotFound.
type AccountReader interface {
	// FindAccountByID retrieves the single account matching both id and owner.
	FindAccountByID(ctx context.Context, accountID string, ownerID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts for the owner; archived rows are
	// included only when includeArchived is set.
	ListAccounts(ctx context.Context, ownerID string, includeArchived bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists the full merged view of an account, scoped by id
	// and owner.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// ArchiveAccount sets is_archived, scoped by id and owner. Archiving an
	// already archived account succeeds.
	ArchiveAccount(ctx context.Context, accountID string, ownerID string, now time.Time) error
}

// AccountRepository combines all account repository operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}

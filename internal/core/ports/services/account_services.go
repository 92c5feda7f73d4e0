package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// AccountSvc is the facade the handlers program against for accounts. Every
// operation runs on behalf of ownerID; rows outside that ownership surface as
// apperrors.ErrNotFound.
type AccountSvc interface {
	CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, ownerID string, includeArchived bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	ArchiveAccount(ctx context.Context, ownerID string, accountID string) error
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository persists accounts in PostgreSQL. Every statement is
// scoped by owner_id so cross-owner rows behave as if they did not exist.
type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, owner_id, name, account_type, currency_code, starting_balance, is_archived, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.AccountID,
		&acc.OwnerID,
		&acc.Name,
		&acc.AccountType,
		&acc.CurrencyCode,
		&acc.StartingBalance,
		&acc.IsArchived,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.OwnerID,
		account.Name,
		account.AccountType,
		account.CurrencyCode,
		account.StartingBalance,
		account.IsArchived,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves the single account matching both id and owner.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string, ownerID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND owner_id = $2;
	`
	acc, err := scanAccount(r.pool.QueryRow(ctx, query, accountID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, nil
}

// ListAccounts retrieves the owner's accounts, ordered by name. Archived rows
// are included only when includeArchived is set.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, ownerID string, includeArchived bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE owner_id = $1
	`
	if !includeArchived {
		query += ` AND is_archived = FALSE`
	}
	query += ` ORDER BY name, account_id;`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

// UpdateAccount persists the merged view of an account. The owner_id filter
// repeats the ownership check the service already made.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3, account_type = $4, currency_code = $5, starting_balance = $6, updated_at = $7
		WHERE account_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.OwnerID,
		account.Name,
		account.AccountType,
		account.CurrencyCode,
		account.StartingBalance,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", account.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ArchiveAccount marks an account as archived. No is_archived condition in
// the filter: archiving an already archived account succeeds.
func (r *PgxAccountRepository) ArchiveAccount(ctx context.Context, accountID string, ownerID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_archived = TRUE, updated_at = $3
		WHERE account_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, accountID, ownerID, now)
	if err != nil {
		return fmt.Errorf("failed to execute archive account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

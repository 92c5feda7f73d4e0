package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository persists transactions in PostgreSQL.
type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, owner_id, account_id, category_id, transaction_type, amount, currency_code, transaction_date, description, transfer_account_id, created_at, updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var accountID, categoryID, transferAccountID sql.NullString
	err := row.Scan(
		&txn.TransactionID,
		&txn.OwnerID,
		&accountID,
		&categoryID,
		&txn.TransactionType,
		&txn.Amount,
		&txn.CurrencyCode,
		&txn.TransactionDate,
		&txn.Description,
		&transferAccountID,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	txn.AccountID = accountID.String
	txn.CategoryID = categoryID.String
	txn.TransferAccountID = transferAccountID.String
	return &txn, nil
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.OwnerID,
		nullIfEmpty(txn.AccountID),
		nullIfEmpty(txn.CategoryID),
		txn.TransactionType,
		txn.Amount,
		txn.CurrencyCode,
		txn.TransactionDate,
		txn.Description,
		nullIfEmpty(txn.TransferAccountID),
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves the single transaction matching both id and owner.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves one page of the owner's transactions. The
// filter is conjunctive on top of the owner scope; ordering is pinned to
// transaction_date descending then transaction_id descending so pagination
// stays deterministic under concurrent writes.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1
	`
	args := []any{ownerID}

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		query += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.TransactionType != "" {
		args = append(args, filter.TransactionType)
		query += fmt.Sprintf(" AND transaction_type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND transaction_date <= $%d", len(args))
	}

	args = append(args, filter.Limit)
	limitArg := len(args)
	args = append(args, filter.Offset)
	offsetArg := len(args)
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, transaction_id DESC LIMIT $%d OFFSET $%d;", limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

// UpdateTransaction persists the merged view of a transaction, scoped by id
// and owner.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $3, category_id = $4, transaction_type = $5, amount = $6,
		    currency_code = $7, transaction_date = $8, description = $9,
		    transfer_account_id = $10, updated_at = $11
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.OwnerID,
		nullIfEmpty(txn.AccountID),
		nullIfEmpty(txn.CategoryID),
		txn.TransactionType,
		txn.Amount,
		txn.CurrencyCode,
		txn.TransactionDate,
		txn.Description,
		nullIfEmpty(txn.TransferAccountID),
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction hard-deletes the row, scoped by id and owner.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to execute delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

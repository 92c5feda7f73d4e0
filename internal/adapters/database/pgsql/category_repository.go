package pgsql

import (
	"context"
	"database/sql"
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

// PgxCategoryRepository persists categories in PostgreSQL.
type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, owner_id, name, category_type, icon, parent_category_id, sort_order, is_archived, created_at, updated_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var cat domain.Category
	var categoryType sql.NullString
	var parentID sql.NullString
	err := row.Scan(
		&cat.CategoryID,
		&cat.OwnerID,
		&cat.Name,
		&categoryType,
		&cat.Icon,
		&parentID,
		&cat.SortOrder,
		&cat.IsArchived,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	cat.CategoryType = domain.CategoryType(categoryType.String)
	cat.ParentCategoryID = parentID.String
	return &cat, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		category.CategoryID,
		category.OwnerID,
		category.Name,
		nullIfEmpty(string(category.CategoryType)),
		category.Icon,
		nullIfEmpty(category.ParentCategoryID),
		category.SortOrder,
		category.IsArchived,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, category.CategoryID)
		}
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves the single category matching both id and owner.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string, ownerID string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE category_id = $1 AND owner_id = $2;
	`
	cat, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return cat, nil
}

// ListCategories retrieves the owner's categories ordered by sort_order then
// name. Archived rows are included only when includeArchived is set.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, ownerID string, includeArchived bool) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE owner_id = $1
	`
	if !includeArchived {
		query += ` AND is_archived = FALSE`
	}
	query += ` ORDER BY sort_order, name, category_id;`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *cat)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

// UpdateCategory persists the merged view of a category, scoped by id and owner.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $3, category_type = $4, icon = $5, parent_category_id = $6, sort_order = $7, updated_at = $8
		WHERE category_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		category.CategoryID,
		category.OwnerID,
		category.Name,
		nullIfEmpty(string(category.CategoryType)),
		category.Icon,
		nullIfEmpty(category.ParentCategoryID),
		category.SortOrder,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update category %s: %w", category.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ArchiveCategory marks a category as archived. Idempotent by construction.
func (r *PgxCategoryRepository) ArchiveCategory(ctx context.Context, categoryID string, ownerID string, now time.Time) error {
	query := `
		UPDATE categories
		SET is_archived = TRUE, updated_at = $3
		WHERE category_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, categoryID, ownerID, now)
	if err != nil {
		return fmt.Errorf("failed to execute archive category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CategoryReader defines owner-scoped read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves the single category matching both id and owner.
	FindCategoryByID(ctx context.Context, categoryID string, ownerID string) (*domain.Category, error)

	// ListCategories retrieves all categories for the owner; archived rows are
	// included only when includeArchived is set.
	ListCategories(ctx context.Context, ownerID string, includeArchived bool) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory persists the full merged view of a category, scoped by id
	// and owner.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// ArchiveCategory sets is_archived, scoped by id and owner. Idempotent.
	ArchiveCategory(ctx context.Context, categoryID string, ownerID string, now time.Time) error
}

// CategoryRepository combines all category repository operations.
type CategoryRepository interface {
	CategoryReader
	CategoryWriter
}

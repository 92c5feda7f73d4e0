package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvc facade.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepository) portssvc.CategorySvc {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()

	parentID := ""
	if req.ParentCategoryID != nil {
		// Stored as-is: no cycle or depth checks on the self-reference.
		parentID = *req.ParentCategoryID
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	category := domain.Category{
		CategoryID:       uuid.NewString(),
		OwnerID:          ownerID,
		Name:             req.Name,
		CategoryType:     domain.CategoryType(req.CategoryType),
		Icon:             req.Icon,
		ParentCategoryID: parentID,
		SortOrder:        sortOrder,
		IsArchived:       false,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, ownerID string, includeArchived bool) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, ownerID, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// UpdateCategory merges the provided fields onto the existing row. A nil
// pointer retains the prior value; UpdatedAt is refreshed even when the patch
// is empty.
func (s *categoryService) UpdateCategory(ctx context.Context, ownerID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.CategoryType != nil {
		category.CategoryType = domain.CategoryType(*req.CategoryType)
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.ParentCategoryID != nil {
		category.ParentCategoryID = *req.ParentCategoryID
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

// ArchiveCategory soft-archives the category. Idempotent; no unarchive.
func (s *categoryService) ArchiveCategory(ctx context.Context, ownerID string, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, ownerID, categoryID); err != nil {
		return err
	}

	if err := s.categoryRepo.ArchiveCategory(ctx, categoryID, ownerID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to archive category", slog.String("category_id", categoryID))
		return err
	}

	s.LogInfo(ctx, "Category archived", slog.String("category_id", categoryID))
	return nil
}

package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name             string  `json:"name" binding:"required"`
	CategoryType     string  `json:"categoryType" binding:"omitempty,oneof=expense income transfer"`
	Icon             string  `json:"icon"`
	ParentCategoryID *string `json:"parentCategoryID"`
	SortOrder        *int    `json:"sortOrder"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Nil pointer means the prior value is retained.
type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	CategoryType     *string `json:"categoryType" binding:"omitempty,oneof=expense income transfer"`
	Icon             *string `json:"icon"`
	ParentCategoryID *string `json:"parentCategoryID"`
	SortOrder        *int    `json:"sortOrder"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	IncludeArchived bool `form:"includeArchived,default=false"`
}

// CategoryResponse mirrors domain.Category.
type CategoryResponse struct {
	CategoryID       string    `json:"categoryID"`
	Name             string    `json:"name"`
	CategoryType     string    `json:"categoryType,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	ParentCategoryID string    `json:"parentCategoryID,omitempty"`
	SortOrder        int       `json:"sortOrder"`
	IsArchived       bool      `json:"isArchived"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ListCategoriesResponse wraps the list of categories. Total is the size of
// the returned result set.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:       cat.CategoryID,
		Name:             cat.Name,
		CategoryType:     string(cat.CategoryType),
		Icon:             cat.Icon,
		ParentCategoryID: cat.ParentCategoryID,
		SortOrder:        cat.SortOrder,
		IsArchived:       cat.IsArchived,
		CreatedAt:        cat.CreatedAt,
		UpdatedAt:        cat.UpdatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain categories into the list envelope.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: res, Total: len(res)}
}

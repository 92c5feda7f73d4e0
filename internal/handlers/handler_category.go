package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvc
}

func newCategoryHandler(cs portssvc.CategorySvc) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvc) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PATCH("/:id", h.updateCategory)
		categories.POST("/:id/archive", h.archiveCategory)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCategory", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		respondUnauthorized(c)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, err, "category")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToCategoryResponse(category)))
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "category")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponse(category)))
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		respondUnauthorized(c)
		return
	}

	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for listCategories", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), ownerID, params.IncludeArchived)
	if err != nil {
		respondServiceError(c, err, "categories")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListCategoriesResponse(categories)))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCategory", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "category")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponse(category)))
}

func (h *categoryHandler) archiveCategory(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	categoryID := c.Param("id")
	if err := h.categoryService.ArchiveCategory(c.Request.Context(), ownerID, categoryID); err != nil {
		respondServiceError(c, err, "category")
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), ownerID, categoryID)
	if err != nil {
		respondServiceError(c, err, "category")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponse(category)))
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondServiceError maps service errors onto HTTP statuses and the uniform
// error envelope. Unknown errors are masked as internal to avoid leaking
// storage details.
func respondServiceError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Err(dto.ErrKindNotFound, entity+" not found"))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Err(dto.ErrKindValidation, err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Err(dto.ErrKindConflict, err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Err(dto.ErrKindUnauthorized, "Unauthorized"))
	default:
		c.JSON(http.StatusInternalServerError, dto.Err(dto.ErrKindInternal, "Failed to process "+entity))
	}
}

// respondBindingError turns gin binding failures into a validation envelope,
// unpacking validator field errors into readable messages.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, len(verrs))
		for i, fe := range verrs {
			parts[i] = fmt.Sprintf("field %s failed on the %q rule", fe.Field(), fe.Tag())
		}
		c.JSON(http.StatusBadRequest, dto.Err(dto.ErrKindValidation, "Invalid request: "+strings.Join(parts, "; ")))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Err(dto.ErrKindValidation, "Invalid request format: "+err.Error()))
}

// respondUnauthorized is the fail-closed path when no caller identity is in
// the request context.
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.Err(dto.ErrKindUnauthorized, "Unauthorized"))
}

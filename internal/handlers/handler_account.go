package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvc
}

func newAccountHandler(as portssvc.AccountSvc) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvc) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.POST("/:id/archive", h.archiveAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		respondUnauthorized(c)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, err, "account")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToAccountResponse(account)))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "account")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		respondUnauthorized(c)
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for listAccounts", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), ownerID, params.IncludeArchived)
	if err != nil {
		respondServiceError(c, err, "accounts")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListAccountsResponse(accounts)))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAccount", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "account")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

func (h *accountHandler) archiveAccount(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	accountID := c.Param("id")
	if err := h.accountService.ArchiveAccount(c.Request.Context(), ownerID, accountID); err != nil {
		respondServiceError(c, err, "account")
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), ownerID, accountID)
	if err != nil {
		respondServiceError(c, err, "account")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

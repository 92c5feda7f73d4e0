package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvc
}

func newTransactionHandler(ts portssvc.TransactionSvc) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvc) {
	h := newTransactionHandler(txnService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		respondUnauthorized(c)
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), ownerID, req)
	if err != nil {
		respondServiceError(c, err, "transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(txn)))
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn)))
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		respondUnauthorized(c)
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for listTransactions", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	txns, err := h.txnService.ListTransactions(c.Request.Context(), ownerID, params)
	if err != nil {
		respondServiceError(c, err, "transactions")
		return
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListTransactionsResponse(txns, page, pageSize)))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTransaction", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn)))
}

// deleteTransaction is the only hard delete in the API; the success envelope
// carries no payload.
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err, "transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OKEmpty())
}

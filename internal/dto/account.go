package dto

import (
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Only the name is required; duplicate names are permitted.
type CreateAccountRequest struct {
	Name            string           `json:"name" binding:"required"`
	AccountType     string           `json:"accountType"`                          // e.g. cash, bank, card, wallet
	CurrencyCode    string           `json:"currencyCode" binding:"omitempty,len=3"` // ISO-like code
	StartingBalance *decimal.Decimal `json:"startingBalance"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish "field not provided" (nil, prior value retained) from
// "field provided with an empty value" (non-nil, overrides).
type UpdateAccountRequest struct {
	Name            *string          `json:"name"`
	AccountType     *string          `json:"accountType"`
	CurrencyCode    *string          `json:"currencyCode"`
	StartingBalance *decimal.Decimal `json:"startingBalance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeArchived bool `form:"includeArchived,default=false"`
}

// AccountResponse mirrors domain.Account.
type AccountResponse struct {
	AccountID       string          `json:"accountID"`
	Name            string          `json:"name"`
	AccountType     string          `json:"accountType,omitempty"`
	CurrencyCode    string          `json:"currencyCode,omitempty"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	IsArchived      bool            `json:"isArchived"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ListAccountsResponse wraps the list of accounts. Total is the size of the
// returned result set, not an overall match count.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		CurrencyCode:    acc.CurrencyCode,
		StartingBalance: acc.StartingBalance,
		IsArchived:      acc.IsArchived,
		CreatedAt:       acc.CreatedAt,
		UpdatedAt:       acc.UpdatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain accounts into the list envelope.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res, Total: len(res)}
}

package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a money container owned by a single user: a cash
// wallet, bank account, card and so on. The type is free text rather than a
// closed enum so clients can introduce their own groupings.
type Account struct {
	AccountID       string          `json:"accountID"`
	OwnerID         string          `json:"ownerID"`
	Name            string          `json:"name"`
	AccountType     string          `json:"accountType"`     // e.g. cash, bank, card, wallet
	CurrencyCode    string          `json:"currencyCode"`    // ISO-like code, optional
	StartingBalance decimal.Decimal `json:"startingBalance"` // optional, zero when unset
	IsArchived      bool            `json:"isArchived"`
	AuditFields
}

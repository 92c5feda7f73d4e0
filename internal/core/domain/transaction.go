package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the required classification of a transaction.
type TransactionType string

const (
	TransactionExpense  TransactionType = "expense"
	TransactionIncome   TransactionType = "income"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single money movement recorded by its owner.
//
// AccountID, CategoryID and TransferAccountID are plain stored references:
// archiving or deleting the entity they point at leaves them dangling on
// purpose. Amount is always strictly positive; direction comes from the type.
type Transaction struct {
	TransactionID     string          `json:"transactionID"`
	OwnerID           string          `json:"ownerID"`
	AccountID         string          `json:"accountID"`  // optional
	CategoryID        string          `json:"categoryID"` // optional
	TransactionType   TransactionType `json:"transactionType"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode"` // optional override of the account currency
	TransactionDate   time.Time       `json:"transactionDate"`
	Description       string          `json:"description"`
	TransferAccountID string          `json:"transferAccountID"` // counter-account for transfers
	AuditFields
}

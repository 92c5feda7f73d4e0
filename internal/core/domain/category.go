package domain

// CategoryType classifies what kind of transactions a category groups.
type CategoryType string

const (
	CategoryExpense  CategoryType = "expense"
	CategoryIncome   CategoryType = "income"
	CategoryTransfer CategoryType = "transfer"
)

// Category labels transactions for a single owner. ParentCategoryID is a
// self-reference stored as-is: no cycle enforcement and no depth limit.
type Category struct {
	CategoryID       string       `json:"categoryID"`
	OwnerID          string       `json:"ownerID"`
	Name             string       `json:"name"`
	CategoryType     CategoryType `json:"categoryType"` // optional
	Icon             string       `json:"icon"`         // optional
	ParentCategoryID string       `json:"parentCategoryID"`
	SortOrder        int          `json:"sortOrder"`
	IsArchived       bool         `json:"isArchived"`
	AuditFields
}

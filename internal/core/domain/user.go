package domain

// User is the owning identity behind every account, category and
// transaction. Authentication issues a JWT whose subject is the UserID.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AuditFields
}

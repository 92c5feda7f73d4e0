package domain

import "time"

// AuditFields holds the timestamps common to every entity.
// CreatedAt is immutable after creation; UpdatedAt is refreshed on every mutation.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

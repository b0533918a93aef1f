package models

import "time"

// Registration statuses. Transitions happen only through admin audit.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the known registration statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// RegistrationDB represents a registration record in the database.
// At most one registration exists per user.
type RegistrationDB struct {
	RegistrationID int64     `json:"registration_id" db:"registration_id"`
	UID            int64     `json:"uid" db:"uid"`
	Note           *string   `json:"note" db:"note"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

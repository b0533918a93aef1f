package models

import "time"

// Verification code purposes. At most one live code exists per (email, type).
const (
	CodeTypeRegister = "register"
	CodeTypeReset    = "reset"
)

// VerificationCodeDB represents a verification code record in the database
type VerificationCodeDB struct {
	ID         int64     `db:"id"`
	Email      string    `db:"email"`
	Type       string    `db:"type"`
	Code       string    `db:"code"`         // 6-digit numeric string
	ExpiresAt  time.Time `db:"expires_at"`   // Code is invalid after this instant
	LastSendAt time.Time `db:"last_send_at"` // Used to enforce the resend cooldown
}

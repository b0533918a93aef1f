package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UID          int64     `json:"uid" db:"uid"`                   // Random non-sequential numeric identifier
	Username     string    `json:"username" db:"username"`         // Unique username, case-sensitive
	Email        string    `json:"email" db:"email"`               // Unique email, stored lowercased
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`     // Optional avatar URL
	Bio          *string   `json:"bio" db:"bio"`                   // Optional bio
	Phone        *string   `json:"phone" db:"phone"`               // Optional phone number
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`         // Admin flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

package models

import "time"

// CredentialDB represents a credential record in the auth_users table.
// It is independent of the demo UserDB entity and is only ever inserted,
// never updated or deleted.
type CredentialDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username, 3-50 chars
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never exposed
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

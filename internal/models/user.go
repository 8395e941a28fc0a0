package models

import "time"

// UserDB represents a demo user record in the users table. It shares no
// invariant with CredentialDB; the two entities only coexist in one service.
type UserDB struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

package models

import "time"

// UserDB represents a user record in the database.
// Users are seeded externally; the API only reads them and
// overwrites password hashes.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Email        string    `json:"email" db:"email"`                 // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt digest, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// AuthUser is the identity projection attached to authenticated requests.
type AuthUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

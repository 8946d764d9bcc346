package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
//
// Users are only persisted when the server runs in password mode; in open
// mode identity is whatever email the caller presents at login and no user
// row ever exists.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the user's email address (unique). Used for login and as
	// the ownership key on items and blogs.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. Never
	// serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}

// NewUser creates a user with a fresh UUID and creation timestamp.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

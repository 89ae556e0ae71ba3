// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the storefront. The role is the sole authorization
// signal: anything that is not an admin is treated as a regular customer.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's primary contact email, used as the login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the password. Empty for accounts created via Google Sign-In.
	Role         Role      // user or admin.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// RefreshToken is a stored, hashed refresh token tied to a user session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw token; the raw value never touches storage.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the refresh token is past its expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

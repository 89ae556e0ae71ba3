package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful authentication.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and signs it in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GoogleLogin verifies a Google ID token, creating the account on first
	// sign-in, and issues a token pair.
	GoogleLogin(ctx context.Context, idToken string) (*AuthOutput, error)

	// Refresh rotates a valid refresh token into a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout revokes the session behind the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetUserRole returns the user's role, defaulting to the regular
	// customer role when the account has none recorded.
	GetUserRole(ctx context.Context, userID uuid.UUID) (entity.Role, error)
}

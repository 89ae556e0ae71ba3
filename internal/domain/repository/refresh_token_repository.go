package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the standard operations for refresh token persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token by its hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes a single refresh token, ending one session.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUser removes all of a user's refresh tokens, ending every session.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

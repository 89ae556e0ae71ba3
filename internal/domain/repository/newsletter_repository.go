package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"
)

// ErrDuplicateSubscriber is returned when the email address is already subscribed.
var ErrDuplicateSubscriber = errors.New("email already subscribed")

// NewsletterRepository defines the standard operations for newsletter persistence.
type NewsletterRepository interface {
	// Create persists a new subscriber. A duplicate email yields
	// ErrDuplicateSubscriber; the unique constraint is the authoritative
	// signal, there is no read-before-write.
	Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error

	// ExistsByEmail reports whether the address is already subscribed.
	// Used only by the availability hint, never as a correctness check.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

package usecase

import (
	"context"

	"boutique/internal/domain/entity"
)

// NewsletterUsecase defines the interface for newsletter business operations.
type NewsletterUsecase interface {
	// Subscribe adds the email to the newsletter. A duplicate address is a
	// distinct, recoverable conflict.
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)

	// CheckEmailAvailable reports whether the address looks free to
	// subscribe. This is a UX hint: when the backend cannot answer, it
	// reports available and lets Subscribe decide.
	CheckEmailAvailable(ctx context.Context, email string) bool
}

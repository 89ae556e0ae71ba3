package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	logger         *slog.Logger
}

// NewsletterServiceParams holds dependencies for NewsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
	Logger         *slog.Logger
}

// NewNewsletterService creates a new newsletter service instance
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
		logger:         params.Logger,
	}
}

// Subscribe adds the email to the newsletter. The unique constraint is the
// authoritative duplicate check and surfaces as a distinct conflict the
// frontend can recover from.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !entity.IsValidEmail(normalized) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}

	subscriber := &entity.NewsletterSubscriber{Email: normalized}

	if err := s.newsletterRepo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscriber) {
			return nil, domainerrors.ErrAlreadySubscribed
		}

		return nil, domainerrors.ErrSubscriptionFailed.WrapMessage(err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Newsletter subscription created",
		slog.String("subscriber_id", subscriber.ID.String()),
	)

	return subscriber, nil
}

// CheckEmailAvailable reports whether the address looks free to subscribe.
// The check fails open: a backend hiccup reports available and lets
// Subscribe's constraint give the real answer.
func (s *newsletterService) CheckEmailAvailable(ctx context.Context, email string) bool {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !entity.IsValidEmail(normalized) {
		return false
	}

	exists, err := s.newsletterRepo.ExistsByEmail(ctx, normalized)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Email availability check failed, reporting available",
			slog.Any("error", err),
		)

		return true
	}

	return !exists
}

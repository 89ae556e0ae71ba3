package impl

import (
	"context"
	"testing"

	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	mockRepo "boutique/internal/mocks/repository"
	"boutique/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newsletterServiceFixtures holds all test dependencies for newsletter service tests.
type newsletterServiceFixtures struct {
	service        usecase.NewsletterUsecase
	newsletterRepo *mockRepo.MockNewsletterRepository
}

func createTestNewsletterService(t *testing.T) newsletterServiceFixtures {
	newsletterRepo := mockRepo.NewMockNewsletterRepository(t)

	svc := NewNewsletterService(NewsletterServiceParams{
		NewsletterRepo: newsletterRepo,
		Logger:         newDiscardLogger(),
	})

	return newsletterServiceFixtures{
		service:        svc,
		newsletterRepo: newsletterRepo,
	}
}

func TestNewsletterService_Subscribe_Success(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.newsletterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		Return(nil)

	subscriber, err := fx.service.Subscribe(ctx, "Reader@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", subscriber.Email)
}

func TestNewsletterService_Subscribe_Duplicate(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.newsletterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		Return(repository.ErrDuplicateSubscriber)

	_, err := fx.service.Subscribe(ctx, "reader@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadySubscribed)
}

func TestNewsletterService_Subscribe_InvalidEmail(t *testing.T) {
	fx := createTestNewsletterService(t)

	_, err := fx.service.Subscribe(context.Background(), "not-an-email")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewsletterService_Subscribe_RepositoryFailure(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.newsletterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		Return(assert.AnError)

	_, err := fx.service.Subscribe(ctx, "reader@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionFailed)
}

func TestNewsletterService_CheckEmailAvailable(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.newsletterRepo.EXPECT().
		ExistsByEmail(ctx, "reader@example.com").
		Return(false, nil)

	assert.True(t, fx.service.CheckEmailAvailable(ctx, "reader@example.com"))
}

func TestNewsletterService_CheckEmailAvailable_Taken(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.newsletterRepo.EXPECT().
		ExistsByEmail(ctx, "reader@example.com").
		Return(true, nil)

	assert.False(t, fx.service.CheckEmailAvailable(ctx, "reader@example.com"))
}

func TestNewsletterService_CheckEmailAvailable_InvalidEmail(t *testing.T) {
	fx := createTestNewsletterService(t)

	assert.False(t, fx.service.CheckEmailAvailable(context.Background(), "not-an-email"))
}

func TestNewsletterService_CheckEmailAvailable_FailsOpen(t *testing.T) {
	fx := createTestNewsletterService(t)

	ctx := context.Background()

	fx.newsletterRepo.EXPECT().
		ExistsByEmail(ctx, "reader@example.com").
		Return(false, assert.AnError)

	// A backend hiccup reports available; Subscribe's constraint decides.
	assert.True(t, fx.service.CheckEmailAvailable(ctx, "reader@example.com"))
}

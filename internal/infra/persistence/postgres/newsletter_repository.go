package postgres

import (
	"context"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsletterRepository implements the repository.NewsletterRepository interface.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{
		db: db,
	}
}

// Create persists a new subscriber. The unique email constraint is the
// authoritative duplicate signal; there is no read-before-write.
func (repo *newsletterRepository) Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	subscriberM := &model.NewsletterSubscriberModel{
		Email: subscriber.Email,
	}

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create newsletter subscriber")
	}

	subscriber.ID = subscriberM.ID
	subscriber.SubscribedAt = subscriberM.CreatedAt

	return nil
}

// ExistsByEmail reports whether the address is already subscribed. Callers
// treat the answer as a hint; the constraint on Create is the real check.
func (repo *newsletterRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NewsletterSubscriberModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check subscriber email")
	}

	return count > 0, nil
}

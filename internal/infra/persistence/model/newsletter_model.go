package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriberModel mirrors the 'newsletter_subscribers' table. The
// unique email constraint is the authoritative duplicate signal.
type NewsletterSubscriberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}

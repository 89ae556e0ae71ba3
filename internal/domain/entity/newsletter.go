// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriber is a single opted-in email address. The address is
// unique; a duplicate subscription is a recoverable, user-visible condition
// rather than a failure.
type NewsletterSubscriber struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// IsValidEmail performs the storefront's lightweight address check: a local
// part, an "@", and a domain segment containing a dot. Real validation is
// left to the unique constraint plus the confirmation mail.
func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

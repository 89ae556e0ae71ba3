// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"boutique/config"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/service"
)

// forbiddenWords are substrings a password may not contain, case-insensitively.
var forbiddenWords = []string{"password", "admin", "boutique"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost, mainly for tests.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash validates the password's strength and generates a salted bcrypt hash.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the storefront's password policy:
// at least 8 characters with upper, lower, digit and special characters,
// and no forbidden words.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrWeakPassword.WrapMessage("must be at least 8 characters long")
	}
	if !h.hasLowercase(password) {
		return domainerrors.ErrWeakPassword.WrapMessage("must contain at least one lowercase letter")
	}
	if !h.hasUppercase(password) {
		return domainerrors.ErrWeakPassword.WrapMessage("must contain at least one uppercase letter")
	}
	if !h.hasNumbers(password) {
		return domainerrors.ErrWeakPassword.WrapMessage("must contain at least one number")
	}
	if !h.hasSpecialChars(password) {
		return domainerrors.ErrWeakPassword.WrapMessage("must contain at least one special character")
	}
	if h.containsForbiddenWords(password, forbiddenWords) {
		return domainerrors.ErrWeakPassword.WrapMessage("contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(password string) bool {
	return strings.ContainsFunc(password, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(password string) bool {
	return strings.ContainsFunc(password, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(password string) bool {
	return strings.ContainsFunc(password, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *bcryptHasher) containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}

// Package google verifies Google Sign-In ID tokens against the configured
// OAuth client ID.
package google

import (
	"context"
	"log/slog"

	"boutique/config"
	"boutique/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate, overridable in tests.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google Sign-In.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewAuthService creates a new Google AuthService.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &AuthServiceImpl{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken implements service.OAuthAuthService. The idtoken package
// checks the signature against Google's published keys and the audience
// against our client ID.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, rawToken string) (*service.OAuthUser, error) {
	payload, err := s.validate(ctx, rawToken, s.clientID)
	if err != nil {
		s.logger.Error("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload, "email"),
		Name:          claimString(payload, "name"),
		AvatarURL:     claimString(payload, "picture"),
		EmailVerified: claimBool(payload, "email_verified"),
	}

	if !oauthUser.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.Info("Google ID token verified successfully",
		slog.String("userID", oauthUser.ID),
		slog.String("email", oauthUser.Email))

	return oauthUser, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	value, _ := payload.Claims[key].(string)

	return value
}

func claimBool(payload *idtoken.Payload, key string) bool {
	value, _ := payload.Claims[key].(bool)

	return value
}

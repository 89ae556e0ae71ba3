package google

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func newTestService(validate validateFunc) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientID: "test-client-id",
		logger:   slog.Default(),
		validate: validate,
	}
}

func TestVerifyIDToken_Success(t *testing.T) {
	svc := newTestService(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "test-client-id", audience)

		return &idtoken.Payload{
			Subject: "google-user-123",
			Claims: map[string]any{
				"email":          "user@example.com",
				"email_verified": true,
				"name":           "Test User",
				"picture":        "https://example.com/avatar.png",
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "raw-token")
	assert.NoError(t, err)
	assert.Equal(t, "google-user-123", user.ID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "https://example.com/avatar.png", user.AvatarURL)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_InvalidToken(t *testing.T) {
	svc := newTestService(func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: signature mismatch")
	})

	user, err := svc.VerifyIDToken(context.Background(), "bad-token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid ID token")
}

func TestVerifyIDToken_UnverifiedEmail(t *testing.T) {
	svc := newTestService(func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "google-user-123",
			Claims: map[string]any{
				"email":          "user@example.com",
				"email_verified": false,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "email not verified")
}

package impl

import (
	"context"
	"testing"
	"time"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	mockRepo "boutique/internal/mocks/repository"
	mockSvc "boutique/internal/mocks/service"
	"boutique/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	userRepo          *mockRepo.MockUserRepository
	refreshTokenRepo  *mockRepo.MockRefreshTokenRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)

	svc := NewUserService(UserServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepositoryFactory{
			userRepo:         userRepo,
			refreshTokenRepo: refreshTokenRepo,
		}},
		UserRepo:          userRepo,
		RefreshTokenRepo:  refreshTokenRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Logger:            newDiscardLogger(),
	})

	return userServiceFixtures{
		service:           svc,
		userRepo:          userRepo,
		refreshTokenRepo:  refreshTokenRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
	}
}

// expectSession wires the token generation and refresh token storage that a
// successful sign-in performs.
func expectSession(fx userServiceFixtures, ctx context.Context, userID uuid.UUID, roles []string) {
	fx.tokenService.EXPECT().
		GenerateTokens(userID, roles).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "refresh-hash"
		})).
		Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = userID
		}).
		Return(nil)
	expectSession(fx, ctx, userID, []string{"user"})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "not-an-email",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(domainerrors.ErrWeakPassword)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	expectSession(fx, ctx, user.ID, []string{"user"})

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "Test@Example.com ",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_Login_AdminGetsAdminRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleAdmin,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check("Password123!", admin.PasswordHash).Return(true)
	expectSession(fx, ctx, admin.ID, []string{"user", "admin"})

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    admin.Email,
		Password: "Password123!",
	})

	assert.NoError(t, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		// No password hash: account created via Google Sign-In.
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GoogleLogin_CreatesAccountOnFirstSignIn(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub",
			Email:         "New@Example.com",
			Name:          "New User",
			EmailVerified: true,
		}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "new@example.com" && user.PasswordHash == ""
		})).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = userID
		}).
		Return(nil)
	expectSession(fx, ctx, userID, []string{"user"})

	output, err := fx.service.GoogleLogin(ctx, "google-id-token")

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestUserService_GoogleLogin_ExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  entity.RoleUser,
	}

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{Email: user.Email, EmailVerified: true}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	expectSession(fx, ctx, user.ID, []string{"user"})

	output, err := fx.service.GoogleLogin(ctx, "google-id-token")

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_GoogleLogin_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, assert.AnError)

	_, err := fx.service.GoogleLogin(ctx, "bad-token")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func refreshTokenFor(userID uuid.UUID) *jwt.Token {
	return &jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}}
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Role: entity.RoleUser}
	stored := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-token").
		Return(refreshTokenFor(user.ID), nil)
	fx.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindByHash(ctx, "old-hash").Return(stored, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	// The old token is revoked in the same transaction that stores the new one.
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "old-hash").Return(nil)
	expectSession(fx, ctx, user.ID, []string{"user"})

	output, err := fx.service.Refresh(ctx, "old-token")

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("bad-token").
		Return(nil, assert.AnError)

	_, err := fx.service.Refresh(context.Background(), "bad-token")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-token").
		Return(refreshTokenFor(userID), nil)
	fx.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, "old-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.Refresh(ctx, "old-token")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-token").
		Return(refreshTokenFor(userID), nil)
	fx.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindByHash(ctx, "old-hash").Return(stored, nil)

	_, err := fx.service.Refresh(ctx, "old-token")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_UserMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.RefreshToken{
		UserID:    uuid.New(),
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-token").
		Return(refreshTokenFor(uuid.New()), nil)
	fx.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindByHash(ctx, "old-hash").Return(stored, nil)

	_, err := fx.service.Refresh(ctx, "old-token")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(refreshTokenFor(uuid.New()), nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, "refresh-token")

	assert.NoError(t, err)
}

func TestUserService_Logout_AlreadyRevokedIsIdempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(refreshTokenFor(uuid.New()), nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteByHash(ctx, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "refresh-token")

	assert.NoError(t, err)
}

func TestUserService_GetUserRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleAdmin}, nil)

	role, err := fx.service.GetUserRole(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestUserService_GetUserRole_DefaultsToUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: ""}, nil)

	role, err := fx.service.GetUserRole(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestUserService_GetUserRole_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUserRole(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and signs it in. The account row and the
// session's refresh token are written in one transaction.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if !entity.IsValidEmail(email) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound; hash outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return err
		}

		var txErr error
		output, txErr = srv.issueSession(ctx, repoFactory.RefreshTokenRepo(), newUser)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Accounts created via Google Sign-In have no password to check.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	output, err := srv.issueSession(ctx, srv.refreshTokenRepo, user)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// GoogleLogin verifies a Google ID token, creating the account on first
// sign-in, and issues a token pair. The account creation and the refresh
// token insert share one transaction.
func (srv *userService) GoogleLogin(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByEmail(ctx, strings.ToLower(oauthUser.Email))
		if findErr != nil {
			if !errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to find user by email")
			}

			srv.log(ctx).Info("Google user not found, creating new account", slog.String("email", oauthUser.Email))

			user = &entity.User{
				Name:  oauthUser.Name,
				Email: strings.ToLower(oauthUser.Email),
				Role:  entity.RoleUser,
			}
			if createErr := userRepo.Create(ctx, user); createErr != nil {
				return createErr
			}
		}

		var txErr error
		output, txErr = srv.issueSession(ctx, repoFactory.RefreshTokenRepo(), user)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Error("Google sign-in failed", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Refresh rotates a valid refresh token into a fresh token pair. The old
// token is revoked in the same transaction that stores the new one, so a
// replayed token cannot yield two live sessions.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	parsed, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	userID, err := subjectFromToken(parsed)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, findErr := refreshRepo.FindByHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}

		if stored.IsExpired(time.Now()) || stored.UserID != userID {
			return domainerrors.ErrRefreshTokenInvalid
		}

		user, findErr := repoFactory.UserRepo().FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user")
		}

		if deleteErr := refreshRepo.DeleteByHash(ctx, tokenHash); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to revoke old refresh token")
		}

		var txErr error
		output, txErr = srv.issueSession(ctx, refreshRepo, user)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout revokes the session behind the refresh token. Logging out an
// already-revoked session succeeds, so clients can retry safely.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetUserRole returns the user's role. An account with no valid role
// recorded is treated as a regular customer rather than an error.
func (srv *userService) GetUserRole(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	if !user.Role.IsValid() {
		return entity.RoleUser, nil
	}

	return user.Role, nil
}

// issueSession generates a token pair for the user and stores the hashed
// refresh token through the given repository (transactional or direct).
func (srv *userService) issueSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.AuthOutput, error) {
	roles := entity.Roles{entity.RoleUser}
	if user.Role == entity.RoleAdmin {
		roles = append(roles, entity.RoleAdmin)
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// subjectFromToken extracts the user ID from a parsed token's sub claim.
func subjectFromToken(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "missing sub claim")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "malformed sub claim")
	}

	return userID, nil
}

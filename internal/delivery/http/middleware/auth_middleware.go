// Package middleware holds HTTP-specific echo middleware.
package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		userID, roles, err := m.identityFromToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		setIdentity(c, userID, roles)

		return next(c)
	}
}

// AuthenticateOptional parses the access token when one is sent and continues
// anonymously when it is absent or invalid. Handlers that gate behavior on a
// role check the context themselves.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return next(c)
		}

		if userID, roles, err := m.identityFromToken(tokenString); err == nil {
			setIdentity(c, userID, roles)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get("roles")
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// identityFromToken validates the access token and extracts the caller's
// identity from its claims.
func (m *AuthMiddleware) identityFromToken(tokenString string) (uuid.UUID, []string, error) {
	token, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil || !token.Valid {
		return uuid.Nil, nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, nil, errors.New("Failed to parse token claims")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, nil, errors.New("User ID missing from token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, nil, errors.New("Invalid user ID format in token")
	}

	rolesClaim, _ := claims["roles"].([]any)
	var roles []string
	for _, r := range rolesClaim {
		if roleStr, ok := r.(string); ok {
			roles = append(roles, roleStr)
		}
	}

	return userID, roles, nil
}

// setIdentity stores the caller's identity on both the echo context (for
// handlers) and the request context (for the service layer).
func setIdentity(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set("userID", userID)
	c.Set("roles", roles)

	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, deliverycontext.KeyUserID, userID)
	ctx = context.WithValue(ctx, deliverycontext.KeyUserRoles, roles)
	c.SetRequest(c.Request().WithContext(ctx))
}

package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"staff-auth/app/domain"
	"staff-auth/app/port"
	apperrors "staff-auth/app/utils/errors"
)

// AuthMiddleware provides session token authentication middleware
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// RequireAdmin requires a valid session token whose identity carries the
// admin privilege. A missing or unverifiable token yields 401; a valid token
// with the wrong privilege yields 400 per the response contract.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := m.extractSessionToken(c)
			if token == "" {
				return apperrors.ErrUnauthorized
			}

			user, err := m.authUsecase.Authenticate(ctx, token)
			if err != nil {
				m.logger.Warn("session token rejected", "error", err)
				return err
			}

			if !user.IsAdmin() {
				return apperrors.NewBadRequest("Credenciales incorrectas")
			}

			c.SetRequest(c.Request().WithContext(domain.WithUser(ctx, user)))
			c.Set("user_id", user.ID.String())
			c.Set("user_email", user.Email)
			c.Set("user_privilege", string(user.Privilege))

			return next(c)
		}
	}
}

// extractSessionToken extracts the session token from the Authorization or
// X-Session-Token header
func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		// Support both "Bearer token" and raw token formats
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}

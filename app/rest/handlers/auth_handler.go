package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"staff-auth/app/domain"
	"staff-auth/app/port"
)

// AuthHandler handles login and logout HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// LoginToWebapp authenticates a web admin and issues a session token
func (h *AuthHandler) LoginToWebapp(c echo.Context) error {
	return h.login(c, h.authUsecase.LoginToWebapp)
}

// LoginToMobileApp authenticates a mobile employee and issues a session token
func (h *AuthHandler) LoginToMobileApp(c echo.Context) error {
	return h.login(c, h.authUsecase.LoginToMobileApp)
}

func (h *AuthHandler) login(c echo.Context, loginFn func(ctx context.Context, creds domain.Credentials) (*domain.Session, error)) error {
	ctx := c.Request().Context()

	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	session, err := loginFn(ctx, creds)
	if err != nil {
		return err
	}

	// Thread the session bundle through the request context for the rest of
	// this request; no cookie is set.
	c.SetRequest(c.Request().WithContext(domain.WithSession(ctx, session)))

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   session.Token,
	})
}

// Logout clears the request-scoped session. It is unconditional and succeeds
// even without a prior session; the issued token stays valid until expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := h.authUsecase.Logout(c.Request().Context())
	c.SetRequest(c.Request().WithContext(ctx))

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Successfully logged out",
	})
}

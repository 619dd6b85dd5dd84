package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"staff-auth/app/port"
	"staff-auth/app/rest/handlers"
	custommw "staff-auth/app/rest/middleware"
	apperrors "staff-auth/app/utils/errors"
	"staff-auth/app/validation"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger      *slog.Logger
	AuthUsecase port.AuthUsecase
	UserUsecase port.UserUsecase
	EnableDebug bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.HTTPErrorHandler = newHTTPErrorHandler(config.Logger)

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	userHandler := handlers.NewUserHandler(config.UserUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Health endpoint (no auth required)
	e.GET("/health", healthHandler.HealthCheck)

	// Authentication endpoints (no auth required; login validates credentials)
	e.POST("/webapp/login", authHandler.LoginToWebapp)
	e.POST("/mobile_app/login", authHandler.LoginToMobileApp)
	e.Any("/logout", authHandler.Logout)

	// User management endpoints (admin session required)
	users := e.Group("/users", authMiddleware.RequireAdmin())
	users.GET("", userHandler.GetUsers)
	users.POST("", userHandler.CreateUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.PATCH("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	return e
}

// newHTTPErrorHandler maps pipeline errors onto the response envelope:
// a validation result becomes a 400 listing every collected message, a
// recoverable AppError keeps its message and status, and everything else is
// surfaced as an opaque 500.
func newHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			_ = c.JSON(http.StatusBadRequest, handlers.ValidationErrorResponse{
				Success: false,
				Errors:  validationErr.Result.Errors,
			})
			return
		}

		if appErr, ok := apperrors.AsAppError(err); ok {
			if appErr.StatusCode >= http.StatusInternalServerError {
				logger.Error("request failed", "code", appErr.Code, "error", err)
				_ = c.JSON(http.StatusInternalServerError, handlers.ErrorResponse{
					Success: false,
					Error:   "internal server error",
				})
				return
			}
			_ = c.JSON(appErr.StatusCode, handlers.ErrorResponse{
				Success: false,
				Error:   appErr.Message,
			})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, handlers.ErrorResponse{
				Success: false,
				Error:   fmt.Sprintf("%v", httpErr.Message),
			})
			return
		}

		logger.Error("unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, handlers.ErrorResponse{
			Success: false,
			Error:   "internal server error",
		})
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"staff-auth/app/domain"
	"staff-auth/app/port"
)

// UserHandler handles admin user management HTTP requests
type UserHandler struct {
	userUsecase port.UserUsecase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase port.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// GetUsers lists the employee identities. The password hash is never part
// of the projection.
func (h *UserHandler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userUsecase.ListUsers(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Usuarios recuperados con éxito",
		Content: users,
	})
}

// CreateUser creates a new employee identity
func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.userUsecase.CreateUser(ctx, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Usuario agregado con éxito",
		Content: id,
	})
}

// UpdateUser applies the supplied fields to an employee identity
func (h *UserHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID format")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updatedID, err := h.userUsecase.UpdateUser(ctx, id, domain.UserUpdate{
		FirstName:      req.FirstName,
		FirstLastName:  req.FirstLastName,
		SecondLastName: req.SecondLastName,
		Email:          req.Email,
		Password:       req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Usuario editado con éxito",
		Content: updatedID,
	})
}

// DeleteUser removes an employee identity
func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID format")
	}

	if err := h.userUsecase.DeleteUser(ctx, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Usuario eliminado con éxito",
	})
}

// Request types

// UpdateUserRequest carries the optional mutable fields of an update
type UpdateUserRequest struct {
	FirstName      string `json:"firstName,omitempty"`
	FirstLastName  string `json:"firstLastName,omitempty"`
	SecondLastName string `json:"secondLastName,omitempty"`
	Email          string `json:"email,omitempty"`
	Password       string `json:"password,omitempty"`
}

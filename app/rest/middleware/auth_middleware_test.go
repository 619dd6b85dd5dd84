package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"staff-auth/app/domain"
	mock_port "staff-auth/app/mocks"
	apperrors "staff-auth/app/utils/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminIdentity() *domain.User {
	user, _ := domain.NewUser("Ana", "López", "García", "ana.lopez@cfe.mx", "$2a$10$hash")
	user.Privilege = domain.PrivilegeAdmin
	return user
}

func employeeIdentity() *domain.User {
	user, _ := domain.NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$hash")
	return user
}

// runMiddleware invokes RequireAdmin around a capturing handler.
func runMiddleware(t *testing.T, authUsecase *mock_port.MockAuthUsecase, setHeader func(*http.Request)) (error, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if setHeader != nil {
		setHeader(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return nil
	}

	m := NewAuthMiddleware(authUsecase, testLogger())
	err := m.RequireAdmin()(next)(c)

	return err, c, reached
}

func TestRequireAdmin_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	err, _, reached := runMiddleware(t, mock_port.NewMockAuthUsecase(ctrl), nil)

	require.Error(t, err)
	assert.False(t, reached)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authUsecase := mock_port.NewMockAuthUsecase(ctrl)
	authUsecase.EXPECT().Authenticate(gomock.Any(), "bad-token").
		Return(nil, apperrors.ErrInvalidToken)

	err, _, reached := runMiddleware(t, authUsecase, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer bad-token")
	})

	require.Error(t, err)
	assert.False(t, reached)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidToken, appErr.Code)
}

func TestRequireAdmin_EmployeeIsDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authUsecase := mock_port.NewMockAuthUsecase(ctrl)
	authUsecase.EXPECT().Authenticate(gomock.Any(), "employee-token").
		Return(employeeIdentity(), nil)

	err, _, reached := runMiddleware(t, authUsecase, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer employee-token")
	})

	require.Error(t, err)
	assert.False(t, reached)

	// Wrong privilege is a 400 with the generic message, not a 403.
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "Credenciales incorrectas", appErr.Message)
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := adminIdentity()

	authUsecase := mock_port.NewMockAuthUsecase(ctrl)
	authUsecase.EXPECT().Authenticate(gomock.Any(), "admin-token").Return(admin, nil)

	err, c, reached := runMiddleware(t, authUsecase, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer admin-token")
	})

	require.NoError(t, err)
	assert.True(t, reached)

	user, ok := domain.UserFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, admin, user)
	assert.Equal(t, admin.ID.String(), c.Get("user_id"))
	assert.Equal(t, admin.Email, c.Get("user_email"))
	assert.Equal(t, "admin", c.Get("user_privilege"))
}

func TestRequireAdmin_TokenExtraction(t *testing.T) {
	tests := []struct {
		name      string
		setHeader func(*http.Request)
	}{
		{
			name: "bearer authorization header",
			setHeader: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer raw-token")
			},
		},
		{
			name: "raw authorization header",
			setHeader: func(req *http.Request) {
				req.Header.Set("Authorization", "raw-token")
			},
		},
		{
			name: "x-session-token header",
			setHeader: func(req *http.Request) {
				req.Header.Set("X-Session-Token", "raw-token")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authUsecase := mock_port.NewMockAuthUsecase(ctrl)
			authUsecase.EXPECT().Authenticate(gomock.Any(), "raw-token").
				Return(adminIdentity(), nil)

			err, _, reached := runMiddleware(t, authUsecase, tt.setHeader)

			assert.NoError(t, err)
			assert.True(t, reached)
		})
	}
}

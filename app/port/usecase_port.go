package port

//go:generate mockgen -source=usecase_port.go -destination=../mocks/mock_usecase_port.go

import (
	"context"

	"github.com/google/uuid"

	"staff-auth/app/domain"
)

// AuthUsecase defines the session lifecycle interface
type AuthUsecase interface {
	// LoginToWebapp authenticates an admin and issues a session token
	LoginToWebapp(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	// LoginToMobileApp authenticates an employee and issues a session token
	LoginToMobileApp(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	// Logout clears the request-scoped session; it never fails
	Logout(ctx context.Context) context.Context
	// Authenticate verifies a session token and loads its identity
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// UserUsecase defines the admin-gated user management interface
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (uuid.UUID, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (uuid.UUID, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

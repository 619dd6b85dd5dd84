package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"github.com/google/uuid"

	"staff-auth/app/domain"
)

// UserRepository defines the credential store data access interface.
// Lookups return (nil, nil) when no record matches; errors are reserved for
// infrastructure failures.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByPrivilege(ctx context.Context, privilege domain.Privilege) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordHasher defines the one-way hash primitive
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer defines the signed session token primitive
type TokenIssuer interface {
	Sign(email string, userID uuid.UUID) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}

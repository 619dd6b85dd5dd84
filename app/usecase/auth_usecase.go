package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"staff-auth/app/domain"
	"staff-auth/app/port"
	apperrors "staff-auth/app/utils/errors"
	"staff-auth/app/validation"
)

// AuthUsecase implements the session lifecycle: authenticate, authorize,
// issue token on login; clear request-scoped state on logout.
type AuthUsecase struct {
	userRepo port.UserRepository
	hasher   port.PasswordHasher
	tokens   port.TokenIssuer
	logger   *slog.Logger
}

// NewAuthUsecase creates a new AuthUsecase instance
func NewAuthUsecase(userRepo port.UserRepository, hasher port.PasswordHasher, tokens port.TokenIssuer, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With("component", "auth_usecase"),
	}
}

// LoginToWebapp authenticates against the web admin audience. Only admin
// identities may log in here.
func (uc *AuthUsecase) LoginToWebapp(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	return uc.login(ctx, creds, domain.PrivilegeAdmin, uc.webappLoginChains(creds), "webapp")
}

// LoginToMobileApp authenticates against the mobile employee audience. Only
// employee identities may log in here.
func (uc *AuthUsecase) LoginToMobileApp(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	return uc.login(ctx, creds, domain.PrivilegeEmployee, uc.mobileLoginChains(creds), "mobile_app")
}

// login runs the audience's validator chains, then re-verifies the
// credentials against the freshly loaded identity and issues the token.
// Existence, password and privilege failures are indistinguishable to the
// caller: all collapse to the same generic message.
func (uc *AuthUsecase) login(ctx context.Context, creds domain.Credentials, required domain.Privilege, chains []validation.Chain, audience string) (*domain.Session, error) {
	result, err := validation.Run(ctx, chains)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewBadRequest(wrongCredentialsMessage)
	}

	if err := uc.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		return nil, apperrors.NewBadRequest(wrongCredentialsMessage)
	}

	if user.Privilege != required {
		return nil, apperrors.NewBadRequest(wrongCredentialsMessage)
	}

	token, err := uc.tokens.Sign(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user logged in", "audience", audience, "user_id", user.ID)

	return domain.NewSession(token, user), nil
}

// Logout clears the request-scoped session. It is unconditional: calling it
// without a prior session is fine. The signed token is not revoked and stays
// valid until its natural expiry.
func (uc *AuthUsecase) Logout(ctx context.Context) context.Context {
	uc.logger.Info("user logged out")
	return domain.ClearSession(ctx)
}

// Authenticate verifies a session token and loads the identity it asserts
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidToken, "invalid token", err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidToken, "invalid token", err)
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidToken
	}

	return user, nil
}

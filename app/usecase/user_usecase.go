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

// UserUsecase implements admin-gated user management. Every mutation runs
// its validator chains first; the store is written exactly once, and only
// after every chain passed.
type UserUsecase struct {
	userRepo      port.UserRepository
	hasher        port.PasswordHasher
	companyDomain string
	logger        *slog.Logger
}

// NewUserUsecase creates a new UserUsecase instance
func NewUserUsecase(userRepo port.UserRepository, hasher port.PasswordHasher, companyDomain string, logger *slog.Logger) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		companyDomain: companyDomain,
		logger:        logger.With("component", "user_usecase"),
	}
}

// ListUsers returns the employee identities. Admin accounts are not listed
// and the password hash never leaves the store layer.
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := uc.userRepo.FindByPrivilege(ctx, domain.PrivilegeEmployee)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}

	uc.logger.Info("users listed", "count", len(summaries))
	return summaries, nil
}

// CreateUser creates a new employee identity. The submitted privilege is
// ignored: the record is always persisted as employee.
func (uc *UserUsecase) CreateUser(ctx context.Context, input domain.CreateUserInput) (uuid.UUID, error) {
	result, err := validation.Run(ctx, uc.createUserChains(input))
	if err != nil {
		return uuid.Nil, err
	}
	if err := result.Err(); err != nil {
		return uuid.Nil, err
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return uuid.Nil, err
	}

	user, err := domain.NewUser(input.FirstName, input.FirstLastName, input.SecondLastName, input.Email, hash)
	if err != nil {
		return uuid.Nil, apperrors.NewInternalError(err)
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("user created", "user_id", user.ID)
	return user.ID, nil
}

// UpdateUser applies the supplied fields to an employee identity. Admin
// records cannot be modified through this path.
func (uc *UserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (uuid.UUID, error) {
	result, err := validation.Run(ctx, uc.updateUserChains(id, update))
	if err != nil {
		return uuid.Nil, err
	}
	if err := result.Err(); err != nil {
		return uuid.Nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, apperrors.NewNotFound("User not found")
	}
	if !user.IsEmployee() {
		return uuid.Nil, apperrors.NewBadRequest(updateForbiddenMessage)
	}

	update.Apply(user)
	if update.Password != "" {
		hash, err := uc.hasher.Hash(update.Password)
		if err != nil {
			return uuid.Nil, err
		}
		user.PasswordHash = hash
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("user updated", "user_id", user.ID)
	return user.ID, nil
}

// DeleteUser removes an employee identity. Admin records cannot be deleted
// through this path.
func (uc *UserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := validation.Run(ctx, uc.deleteUserChains(id))
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}

	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound("User not found")
	}
	if !user.IsEmployee() {
		return apperrors.NewBadRequest(deleteForbiddenMessage)
	}

	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("user deleted", "user_id", id)
	return nil
}

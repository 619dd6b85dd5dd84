package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"staff-auth/app/domain"
	"staff-auth/app/port"
)

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

const userColumns = `id, email, password_hash, first_name, first_last_name, second_last_name, privilege, created_at, updated_at`

// FindByEmail returns the identity holding the email, or nil when absent
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to find user by email", "error", err)
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, nil
}

// FindByID returns the identity with the given id, or nil when absent
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to find user by id", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return user, nil
}

// FindByPrivilege returns every identity carrying the privilege, ordered by
// creation time
func (r *UserRepository) FindByPrivilege(ctx context.Context, privilege domain.Privilege) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE privilege = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, string(privilege))
	if err != nil {
		r.logger.Error("failed to list users", "privilege", privilege, "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// Create inserts a new identity
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, email, password_hash, first_name, first_last_name,
			second_last_name, privilege, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.FirstLastName,
		user.SecondLastName,
		string(user.Privilege),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create user", "email", user.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("user created", "user_id", user.ID)
	return nil
}

// Update persists the mutable fields of an identity
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			email = $2,
			password_hash = $3,
			first_name = $4,
			first_last_name = $5,
			second_last_name = $6,
			updated_at = $7
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.FirstLastName,
		user.SecondLastName,
		user.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to update user", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found for update: %s", user.ID)
	}

	r.logger.Info("user updated", "user_id", user.ID)
	return nil
}

// Delete removes an identity
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found for deletion: %s", id)
	}

	r.logger.Info("user deleted", "user_id", id)
	return nil
}

// scanUser scans one user row
func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var privilege string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.FirstLastName,
		&user.SecondLastName,
		&privilege,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Privilege = domain.Privilege(privilege)
	return user, nil
}

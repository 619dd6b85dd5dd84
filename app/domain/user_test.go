package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates an employee identity", func(t *testing.T) {
		user, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$hash")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, PrivilegeEmployee, user.Privilege)
		assert.True(t, user.IsEmployee())
		assert.False(t, user.IsAdmin())
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("requires an email", func(t *testing.T) {
		_, err := NewUser("Juan", "Pérez", "Santos", "", "$2a$10$hash")
		assert.Error(t, err)
	})

	t.Run("requires a password hash", func(t *testing.T) {
		_, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "")
		assert.Error(t, err)
	})
}

func TestUser_JSONNeverCarriesTheHash(t *testing.T) {
	user, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$super-secret")
	require.NoError(t, err)

	encoded, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(encoded), "super-secret")
	assert.NotContains(t, string(encoded), "PasswordHash")
}

func TestPrivilege_Valid(t *testing.T) {
	assert.True(t, PrivilegeAdmin.Valid())
	assert.True(t, PrivilegeEmployee.Valid())
	assert.False(t, Privilege("superuser").Valid())
	assert.False(t, Privilege("").Valid())
}

func TestUserUpdate(t *testing.T) {
	t.Run("IsEmpty", func(t *testing.T) {
		assert.True(t, UserUpdate{}.IsEmpty())
		assert.False(t, UserUpdate{FirstName: "Carlos"}.IsEmpty())
		assert.False(t, UserUpdate{Password: "x"}.IsEmpty())
	})

	t.Run("Apply only touches supplied fields", func(t *testing.T) {
		user, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$hash")
		require.NoError(t, err)
		createdAt := user.CreatedAt

		UserUpdate{FirstName: "Carlos", Email: "carlos.perez@cfe.mx"}.Apply(user)

		assert.Equal(t, "Carlos", user.FirstName)
		assert.Equal(t, "carlos.perez@cfe.mx", user.Email)
		assert.Equal(t, "Pérez", user.FirstLastName)
		assert.Equal(t, "Santos", user.SecondLastName)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, createdAt, user.CreatedAt)
		assert.False(t, user.UpdatedAt.Before(createdAt))
	})
}

func TestUser_Summary(t *testing.T) {
	user, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$hash")
	require.NoError(t, err)

	summary := user.Summary()

	assert.Equal(t, user.ID, summary.ID)
	assert.Equal(t, user.Email, summary.Email)
	assert.Equal(t, user.FirstName, summary.FirstName)
	assert.Equal(t, user.FirstLastName, summary.FirstLastName)
	assert.Equal(t, user.SecondLastName, summary.SecondLastName)
}

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"juan.perez@cfe.mx", "cfe.mx"},
		{"a@b@cfe.mx", "cfe.mx"},
		{"no-at-sign", ""},
		{"trailing@", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailDomain(tt.email))
		})
	}
}

package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	user, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$hash")
	require.NoError(t, err)

	session := NewSession("signed-token", user)

	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, "Juan", session.FirstName)
	assert.Equal(t, "Pérez", session.FirstLastName)
	assert.Equal(t, "Santos", session.SecondLastName)
	assert.Equal(t, "juan.perez@cfe.mx", session.Email)
	assert.Equal(t, PrivilegeEmployee, session.Privilege)
}

// Clients bind to the misspelled key, so it is load-bearing.
func TestSession_JSONKeys(t *testing.T) {
	user, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$hash")
	require.NoError(t, err)

	encoded, err := json.Marshal(NewSession("tok", user))
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &keys))

	assert.Contains(t, keys, "fisrtLastName")
	assert.NotContains(t, keys, "firstLastName")
	assert.Contains(t, keys, "token")
	assert.Contains(t, keys, "privilege")
}

func TestSessionContext(t *testing.T) {
	session := &Session{Token: "tok"}

	t.Run("round trip", func(t *testing.T) {
		ctx := WithSession(context.Background(), session)

		got, ok := SessionFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, session, got)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := SessionFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("cleared", func(t *testing.T) {
		ctx := WithSession(context.Background(), session)
		ctx = ClearSession(ctx)

		_, ok := SessionFromContext(ctx)
		assert.False(t, ok)
	})

	t.Run("clearing an empty context is safe", func(t *testing.T) {
		ctx := ClearSession(context.Background())

		_, ok := SessionFromContext(ctx)
		assert.False(t, ok)
	})
}

func TestUserContext(t *testing.T) {
	user, err := NewUser("Juan", "Pérez", "Santos", "juan.perez@cfe.mx", "$2a$10$hash")
	require.NoError(t, err)

	ctx := WithUser(context.Background(), user)

	got, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)

	_, ok = UserFromContext(context.Background())
	assert.False(t, ok)
}

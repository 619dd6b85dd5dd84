package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-signing"

func testIssuer(ttl time.Duration) *JWTIssuer {
	return NewJWTIssuer(JWTConfig{Secret: testSecret, TTL: ttl})
}

func TestJWTIssuer_SignAndVerify(t *testing.T) {
	issuer := testIssuer(5 * time.Hour)
	userID := uuid.New()

	before := time.Now()
	signed, err := issuer.Sign("ana.lopez@cfe.mx", userID)
	after := time.Now()

	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, "ana.lopez@cfe.mx", claims.Email)
	assert.Equal(t, userID.String(), claims.UserID)

	// Expiry is exactly the TTL past issuance.
	assert.False(t, claims.ExpiresAt.Before(before.Add(5*time.Hour).Truncate(time.Second)))
	assert.False(t, claims.ExpiresAt.After(after.Add(5*time.Hour)))
}

func TestJWTIssuer_PayloadFieldNames(t *testing.T) {
	issuer := testIssuer(time.Hour)
	userID := uuid.New()

	signed, err := issuer.Sign("ana.lopez@cfe.mx", userID)
	require.NoError(t, err)

	// Decode with the raw claim names the clients depend on.
	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ana.lopez@cfe.mx", mapClaims["email"])
	assert.Equal(t, userID.String(), mapClaims["userId"])
}

func TestJWTIssuer_Verify_Expired(t *testing.T) {
	issuer := testIssuer(-time.Minute)

	signed, err := issuer.Sign("ana.lopez@cfe.mx", uuid.New())
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_Verify_WrongSecret(t *testing.T) {
	signed, err := testIssuer(time.Hour).Sign("ana.lopez@cfe.mx", uuid.New())
	require.NoError(t, err)

	other := NewJWTIssuer(JWTConfig{Secret: "a-different-secret", TTL: time.Hour})

	claims, err := other.Verify(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_Verify_Garbage(t *testing.T) {
	issuer := testIssuer(time.Hour)

	claims, err := issuer.Verify("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTIssuer_Verify_WrongAlgorithm(t *testing.T) {
	issuer := testIssuer(time.Hour)

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email":  "ana.lopez@cfe.mx",
		"userId": uuid.New().String(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := issuer.Verify(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"staff-auth/app/domain"
)

// JWTConfig holds JWT generation configuration.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// sessionClaims represents the JWT claims of a session token.
type sessionClaims struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies session tokens.
// Implements port.TokenIssuer.
type JWTIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer creates a new JWT issuer.
func NewJWTIssuer(cfg JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// Sign generates a signed session token embedding the email and user id,
// expiring after the configured TTL.
func (j *JWTIssuer) Sign(email string, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email:  email,
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.cfg.Secret))
}

// Verify parses and validates a session token, returning its claims.
// Expired or tampered tokens fail here; there is no server-side revocation.
func (j *JWTIssuer) Verify(tokenString string) (*domain.TokenClaims, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return &domain.TokenClaims{
		Email:     claims.Email,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

package security

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "staff-auth/app/utils/errors"
)

// BcryptHasher implements port.PasswordHasher with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher. A non-positive cost falls back to
// the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a one-way hash of the password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", apperrors.NewHashingError(err)
	}
	return string(hashed), nil
}

// Compare checks the password against a stored hash; a non-nil error means
// the password does not match
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

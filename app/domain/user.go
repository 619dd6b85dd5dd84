package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Privilege represents the role of an identity. It gates which audience an
// identity may log in from and which records an admin may mutate.
type Privilege string

const (
	PrivilegeAdmin    Privilege = "admin"
	PrivilegeEmployee Privilege = "employee"
)

// Valid reports whether the privilege is part of the closed enumeration
func (p Privilege) Valid() bool {
	return p == PrivilegeAdmin || p == PrivilegeEmployee
}

// DefaultCompanyDomain is the organizational email domain suffix every
// persisted identity must carry.
const DefaultCompanyDomain = "cfe.mx"

// User represents a persisted identity
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Exclude from JSON
	FirstName      string    `json:"firstName"`
	FirstLastName  string    `json:"firstLastName"`
	SecondLastName string    `json:"secondLastName"`
	Privilege      Privilege `json:"privilege"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new employee identity. Privilege is always forced to
// employee; admin accounts are not created through this path.
func NewUser(firstName, firstLastName, secondLastName, email, passwordHash string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()

	return &User{
		ID:             uuid.New(),
		Email:          email,
		PasswordHash:   passwordHash,
		FirstName:      firstName,
		FirstLastName:  firstLastName,
		SecondLastName: secondLastName,
		Privilege:      PrivilegeEmployee,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsAdmin returns true if the identity has the admin privilege
func (u *User) IsAdmin() bool {
	return u.Privilege == PrivilegeAdmin
}

// IsEmployee returns true if the identity has the employee privilege
func (u *User) IsEmployee() bool {
	return u.Privilege == PrivilegeEmployee
}

// UserUpdate carries the optional mutable fields of an update request.
// Empty fields are left untouched; Password is hashed before persisting.
type UserUpdate struct {
	FirstName      string
	FirstLastName  string
	SecondLastName string
	Email          string
	Password       string
}

// IsEmpty reports whether no mutable field was supplied
func (uu UserUpdate) IsEmpty() bool {
	return uu.FirstName == "" &&
		uu.FirstLastName == "" &&
		uu.SecondLastName == "" &&
		uu.Email == "" &&
		uu.Password == ""
}

// Apply copies the supplied fields onto the user. The password is applied
// separately by the caller once hashed.
func (uu UserUpdate) Apply(u *User) {
	if uu.FirstName != "" {
		u.FirstName = uu.FirstName
	}
	if uu.FirstLastName != "" {
		u.FirstLastName = uu.FirstLastName
	}
	if uu.SecondLastName != "" {
		u.SecondLastName = uu.SecondLastName
	}
	if uu.Email != "" {
		u.Email = uu.Email
	}
	u.UpdatedAt = time.Now()
}

// UserSummary is the listing projection of an identity. The password hash
// never appears here; privilege is implied by the listing itself.
type UserSummary struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	FirstLastName  string    `json:"firstLastName"`
	SecondLastName string    `json:"secondLastName"`
	Email          string    `json:"email"`
}

// Summary returns the listing projection of the user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		FirstName:      u.FirstName,
		FirstLastName:  u.FirstLastName,
		SecondLastName: u.SecondLastName,
		Email:          u.Email,
	}
}

// EmailDomain returns the domain segment of an email address, the substring
// after the last "@". Returns "" when the address has no domain segment.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

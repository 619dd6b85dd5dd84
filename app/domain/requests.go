package domain

import "time"

// Credentials is a login submission from either audience
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserInput carries a create-user submission. Privilege is accepted on
// the wire but ignored: the created identity is always an employee.
type CreateUserInput struct {
	FirstName      string `json:"firstName"`
	FirstLastName  string `json:"firstLastName"`
	SecondLastName string `json:"secondLastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Privilege      string `json:"privilege,omitempty"`
}

// TokenClaims is the verified payload of a session token
type TokenClaims struct {
	Email     string
	UserID    string
	ExpiresAt time.Time
}

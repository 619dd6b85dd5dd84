package domain

// Session is the request-scoped bundle attached after a successful login.
// It carries the signed token plus display data for the duration of one
// request; it has no persistence of its own. Clearing it does not revoke
// the token at the issuer; an issued token stays valid until expiry.
type Session struct {
	Token          string    `json:"token"`
	FirstName      string    `json:"firstName"`
	FirstLastName  string    `json:"fisrtLastName"`
	SecondLastName string    `json:"secondLastName"`
	Email          string    `json:"email"`
	Privilege      Privilege `json:"privilege"`
}

// NewSession builds the session bundle for a freshly authenticated user
func NewSession(token string, user *User) *Session {
	return &Session{
		Token:          token,
		FirstName:      user.FirstName,
		FirstLastName:  user.FirstLastName,
		SecondLastName: user.SecondLastName,
		Email:          user.Email,
		Privilege:      user.Privilege,
	}
}

package domain

import "context"

type sessionContextKey struct{}
type userContextKey struct{}

// WithSession attaches the session bundle to the request context
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext extracts the session bundle from the request context
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	return session, ok && session != nil
}

// ClearSession removes the session bundle from the request context.
// Safe to call when no session is attached.
func ClearSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, (*Session)(nil))
}

// WithUser attaches the authenticated identity to the request context.
// Set by the auth middleware for the admin-gated routes.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext extracts the authenticated identity from the request context
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*User)
	return user, ok && user != nil
}

// Package session stores the bearer credential for each browser session and
// exposes the authentication capability handed to use cases.
package session

import "context"

// Store persists bearer tokens keyed by opaque session id.
type Store interface {
	// Token returns the stored credential, or "" when the session holds none.
	Token(ctx context.Context, sessionID string) (string, error)

	// Save stores the credential for a session.
	Save(ctx context.Context, sessionID, token string) error

	// Clear removes the credential. Clearing an unknown session is a no-op.
	Clear(ctx context.Context, sessionID string) error
}

// Session is the per-request authentication capability. It is the only value
// components consult to decide whether the reader is signed in; nothing else
// may flip authentication state.
type Session struct {
	ID    string
	token string
}

// Resume builds a session from a stored credential ("" means anonymous).
func Resume(id, token string) Session {
	return Session{ID: id, token: token}
}

// IsAuthenticated reports whether the session carries a credential.
func (s Session) IsAuthenticated() bool {
	return s.token != ""
}

// BearerToken returns the credential for outgoing backend requests.
func (s Session) BearerToken() string {
	return s.token
}

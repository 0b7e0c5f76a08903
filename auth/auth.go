// Package auth defines the login-time authentication collaborator and a
// Mojang session-server implementation of it. Only the surface the online
// mode handshake needs is modeled: proving possession of an account to the
// session server, not acquiring one. OAuth device-code flows, token
// refresh/persistence and profile lookups live outside the protocol core.
package auth

import "errors"

// ErrJoinFailed is returned by Authenticator.Join when the session server
// rejects the join request.
var ErrJoinFailed = errors.New("auth: join rejected")

// User identifies the account presented during login.
type User struct {
	Name string
	ID   string // UUID, hyphenated or bare hex
}

// Authenticator proves account ownership during the online-mode encryption
// handshake. Refresh is called before a login attempt so a caller backed by
// a renewable credential (an OAuth access token, say) can refresh it first;
// implementations with nothing to refresh may no-op.
type Authenticator interface {
	Refresh() error
	Join(serverHash string) error
	User() User
}

package ftpsession

import (
	"fmt"
)

// Session is the surface an Authenticator logs in against.
type Session interface {
	Host() string
	Port() int
}

// Authenticator performs the login handshake for a Session. On success it returns the identity the session
// should retain, usually itself.
type Authenticator interface {
	Authenticate(s Session) (Authenticator, error)
	Username() string
}

// Authentication holds a username/password pair. It is immutable and may be reused across reconnects.
type Authentication struct {
	username string
	password string
}

// NewAuthentication returns an Authentication for the given credentials.
func NewAuthentication(username, password string) *Authentication {
	return &Authentication{
		username: username,
		password: password,
	}
}

// Username returns the login name.
func (a *Authentication) Username() string {
	return a.username
}

// Password returns the login password.
func (a *Authentication) Password() string {
	return a.password
}

// Authenticate sends USER/PASS over the connection's transport. s must be a *Connection; any other Session fails
// before touching the network.
func (a *Authentication) Authenticate(s Session) (Authenticator, error) {
	conn, ok := s.(*Connection)
	if !ok || conn == nil {
		return nil, &PreconditionError{Op: "login", Err: fmt.Errorf("%w: got %T", ErrUnsupportedSession, s)}
	}

	t, err := conn.Transport()
	if err != nil {
		return nil, err
	}

	if err := t.Login(a.username, a.password); err != nil {
		conn.record(err)
		return nil, &AuthenticationError{Username: a.username, Err: err}
	}

	return a, nil
}

// String implements fmt.Stringer without disclosing the password.
func (a *Authentication) String() string {
	return a.username + ":***"
}

var _ Authenticator = (*Authentication)(nil)

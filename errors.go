package ftpsession

import (
	"fmt"
	"os"

	"github.com/c2fo/ftpsession/types"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrClosed - the connection handle was already released
	ErrClosed = Error("resource already closed")

	// ErrNotLoggedIn - the action needs a resolved identity
	ErrNotLoggedIn = Error("you must do login before do this action")

	// ErrPassiveBeforeLogin - servers reject PASV before USER/PASS
	ErrPassiveBeforeLogin = Error("can not change passive mode of connection before do login")

	// ErrNoAuthenticator - Login was called without an authenticator
	ErrNoAuthenticator = Error("an authenticator is required to login")

	// ErrUnsupportedSession - the authenticator can only log in on a *Connection
	ErrUnsupportedSession = Error("session is unsupported, only *ftpsession.Connection is supported")

	// ErrNoTransport - no dialer could be resolved for the connector
	ErrNoTransport = Error("no transport is registered for the requested scheme")

	// ErrUnknownSize - the server could not report a size for the file
	ErrUnknownSize = Error("size of file is unknown")
)

// ErrNotExist is matched by errors for remote paths that do not exist.
var ErrNotExist = os.ErrNotExist

// ConnectionError is returned when a transport handle can not be opened.
type ConnectionError struct {
	Params types.Params
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s:%d (ssl=%t, timeout=%s): %v",
		e.Params.Host, e.Params.Port, e.Params.SSL, e.Params.Timeout, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// AuthenticationError is returned when the server refuses the credentials.
type AuthenticationError struct {
	Username string
	Err      error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login as %q: %v", e.Username, e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// OperationError is returned when any other transport primitive fails. Conn is the
// connection the operation ran on.
type OperationError struct {
	Op   string
	Conn *Connection
	Err  error
}

func (e *OperationError) Error() string {
	if e.Conn == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Conn, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// PreconditionError is a purely local failure; the network was not touched.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

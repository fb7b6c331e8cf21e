/*
Package backend provides a means of allowing transport backends to self-register on load via an init() call to
backend.Register("scheme", types.Dialer)

In this way, a caller can simply load the backends it needs (and ONLY those needed) and let the connector resolve
a dialer by URI scheme:

	package main

	// import backend and each backend you intend to use
	import(
	    "github.com/c2fo/ftpsession"
	    _ "github.com/c2fo/ftpsession/backend/ftp"
	)

	func main() {
	    connector, err := ftpsession.NewConnector(ftpsession.WithScheme("ftps"))
	    if err != nil {
	        panic(err)
	    }

	    conn, err := connector.Connect(ctx, "ftp.acme.com", 990, true, 30*time.Second, true)
	    if err != nil {
	        panic(err)
	    }
	    defer conn.Close()
	}

# Development

To create your own backend, you must create a package that implements types.Transport and types.Dialer.
Then ensure it registers itself on load:

	package myexotictransport

	import(
	    "github.com/c2fo/ftpsession/backend"
	    "github.com/c2fo/ftpsession/types"
	)

	// IMPLEMENT types.Transport

	func init() {
	    backend.Register("exotic", types.DialerFunc(dial))
	}

Not-found conditions must be reported with an error matching os.ErrNotExist (see NotExistError) so the
session layer can tell missing paths apart from other failures.
*/
package backend

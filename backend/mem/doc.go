/*
Package mem is an in-memory FTP transport. It keeps a directory tree and a user table in process memory and
answers every transport primitive the way a MLSD-capable server would, which makes it useful for tests and
dry runs.

Usage

Rely on github.com/c2fo/ftpsession/backend

	import(
	    "github.com/c2fo/ftpsession"
	    _ "github.com/c2fo/ftpsession/backend/mem"
	)

	func UseMem() error {
	    connector, err := ftpsession.NewConnector(ftpsession.WithScheme("mem"))
	    ...
	}

Or use a private server directly:

	import "github.com/c2fo/ftpsession/backend/mem"

	func DoSomething() {
	    srv := mem.NewServer()
	    srv.AddUser("bob", "secret")
	    connector, err := ftpsession.NewConnector(ftpsession.WithDialer(srv))
	    ...
	}

The registered server accepts "anonymous" with any password.
*/
package mem

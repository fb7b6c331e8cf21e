/*
Package ftp - FTP transport for ftpsession, built on github.com/jlaffaye/ftp.

# Usage

Rely on github.com/c2fo/ftpsession/backend

	import(
	    "github.com/c2fo/ftpsession"
	    _ "github.com/c2fo/ftpsession/backend/ftp"
	)

	func DoSomething() error {
	    connector, err := ftpsession.NewConnector() // "ftp" is the default scheme
	    if err != nil {
	        return err
	    }
	    conn, err := connector.Connect(ctx, "server.com", 21, false, 0, true)
	    ...
	}

Or build a dialer directly to pass transport options:

	import "github.com/c2fo/ftpsession/backend/ftp"

	func DoSomething() error {
	    dialer := ftp.NewDialer(ftp.Options{
	        DisableEPSV:    utils.Ptr(true),
	        Protocol:       "FTPES",
	        DialTimeout:    15 * time.Second,
	        DebugWriter:    os.Stdout,
	        BandwidthLimit: 512 * 1024,
	    })
	    connector, err := ftpsession.NewConnector(ftpsession.WithDialer(dialer))
	    ...
	}

# Protocols

FTP is plain text. FTPS dials with implicit TLS, usually on port 990. FTPES dials in plain text and upgrades
with AUTH TLS; a connection opened with isSSL set uses FTPES unless FTPS was configured. The "ftps" scheme
is registered as an implicit TLS dialer.

# Environment

	FTPSESSION_PROTOCOL       FTP, FTPS or FTPES
	FTPSESSION_DISABLE_EPSV   "true" or "1" falls back to PASV

Options take precedence over env vars.

# Limitations

The underlying client always transfers in passive mode, can not send arbitrary verbs, and has no SITE
support. SetPassive(false), RawCommand (other than NOOP) and Chmod return errors.
*/
package ftp

// Package all imports all ftpsession transports.
package all

import (
	_ "github.com/c2fo/ftpsession/backend/ftp" // register ftp and ftps backends
	_ "github.com/c2fo/ftpsession/backend/mem" // register mem backend
)

package backend

import (
	"fmt"
	"os"
)

// NotExistError returns an error for a missing remote path that matches os.ErrNotExist. cause, when non-nil, is the
// transport error carrying the server reply and is kept in the message.
func NotExistError(op, path string, cause error) error {
	if cause == nil {
		return &os.PathError{Op: op, Path: path, Err: os.ErrNotExist}
	}
	return &os.PathError{Op: op, Path: path, Err: fmt.Errorf("%w: %w", os.ErrNotExist, cause)}
}

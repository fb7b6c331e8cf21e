package utils

import "fmt"

// WrapStageError returns a wrapped staging file error
func WrapStageError(err error) error {
	return fmt.Errorf("staging file error: %w", err)
}

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error {
	return fmt.Errorf("read error: %w", err)
}

// WrapWriteError returns a wrapped write error
func WrapWriteError(err error) error {
	return fmt.Errorf("write error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	return fmt.Errorf("close error: %w", err)
}

// WrapOpenError returns a wrapped local open error
func WrapOpenError(err error) error {
	return fmt.Errorf("open error: %w", err)
}

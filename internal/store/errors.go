package store

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the store wraps exactly one of them.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation")
)

func notFound(entity string, id int) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

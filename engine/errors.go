package engine

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when an engine is constructed with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned for coordinates outside [0, size).
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

func outOfBounds(op string, row, col, size int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] cell (%d,%d) outside %dx%d grid", op, row, col, size, size)
}

package rain

import (
	"errors"
	"fmt"
)

// Domain errors for rain construction and grid access.
var (
	// ErrOutOfBounds indicates a grid coordinate outside the grid.
	ErrOutOfBounds = errors.New("rain: grid index out of bounds")

	// ErrGridSize indicates a non-positive grid dimension.
	ErrGridSize = errors.New("rain: grid dimensions must be positive")

	// ErrEmptyCharset indicates a charset without symbols.
	ErrEmptyCharset = errors.New("rain: charset has no symbols")

	// ErrLifetimes indicates an unusable lifetime range.
	ErrLifetimes = errors.New("rain: invalid lifetime range")

	// ErrSpawnChance indicates a spawn probability outside [0, 1].
	ErrSpawnChance = errors.New("rain: invalid spawn chance")
)

// BoundsError is the panic value for out-of-bounds grid access.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: (%d, %d) outside %dx%d", ErrOutOfBounds, e.X, e.Y, e.Width, e.Height)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

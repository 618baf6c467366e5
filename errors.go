package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the atlas package. Errors returned by [Packer.Add]
// and [PackPowerOfTwo] wrap one of these, so callers can classify failures
// with errors.Is.
var (
	// ErrSizeExceedsPage is returned when a rectangle exceeds the page
	// bounds in both orientations. Unrecoverable for that input.
	ErrSizeExceedsPage = errors.New("atlas: size exceeds page bounds")

	// ErrPageLimitReached is returned when no open page fits a rectangle
	// and the page limit prevents opening another.
	ErrPageLimitReached = errors.New("atlas: page limit reached")

	// ErrInvalidSize is returned for negative or otherwise malformed input
	// sizes.
	ErrInvalidSize = errors.New("atlas: invalid size")

	// ErrLengthMismatch is returned when parallel input slices have
	// different lengths.
	ErrLengthMismatch = errors.New("atlas: sizes and placements must have same length")
)

// PackError describes why packing failed for a particular input rectangle.
// It wraps one of the sentinel errors above.
type PackError struct {
	// Index is the position of the offending rectangle in the input slice.
	Index int
	// Size is the offending input size, without padding.
	Size Size
	// Err is the underlying sentinel error.
	Err error
}

func (e *PackError) Error() string {
	return fmt.Sprintf("%v (size %v at index %d)", e.Err, e.Size, e.Index)
}

func (e *PackError) Unwrap() error {
	return e.Err
}

package term

import "errors"

// Sentinel errors for the term package.
var (
	// ErrInvalidSize is returned when a resize or construction uses
	// non-positive dimensions.
	ErrInvalidSize = errors.New("term: invalid size")

	// ErrInvalidRange is returned when a View range is out of bounds or
	// start exceeds end.
	ErrInvalidRange = errors.New("term: invalid range")
)

package collision

import "errors"

var (
	// ErrInvalidBand is returned when a distance band is missing or its
	// minimum is not strictly positive.
	ErrInvalidBand = errors.New("collision: invalid distance band")

	// ErrNilArgument is the panic value when a required argument is nil.
	ErrNilArgument = errors.New("collision: required argument is nil")

	// ErrUnknownDetector is returned when a detector name is not known.
	ErrUnknownDetector = errors.New("collision: unknown detector")
)

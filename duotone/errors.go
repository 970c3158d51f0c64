package duotone

import "github.com/pkg/errors"

var (
	// ErrInvalidBuffer is returned when a pixel buffer is empty or its length is not a
	// multiple of 4.
	ErrInvalidBuffer = errors.New("invalid pixel buffer")
	// ErrInvalidColor is returned when a color channel is outside [0, 255] or a color
	// string cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidGradient is returned when a nil gradient table is passed to a processing
	// call.
	ErrInvalidGradient = errors.New("invalid gradient table")
)

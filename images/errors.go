package images

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFormat is returned for formats the codec cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrInvalidDimensions is returned for non-positive widths or heights.
	ErrInvalidDimensions = errors.New("invalid image dimensions")
)

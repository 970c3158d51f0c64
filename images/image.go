// Package images - Image payloads, codecs and the rasterization policy that sizes the
// pixel buffers the duotone pipeline works on.
package images

import (
	"os"

	"github.com/pkg/errors"
)

// Image represents an encoded image with a format, data, width, and height.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The data of the image.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image. Zero until the image has been decoded.
	Width int `json:"width" yaml:"width"`
	// The height of the image. Zero until the image has been decoded.
	Height int `json:"height" yaml:"height"`
}

// Load reads an encoded image from disk. The format is sniffed from the file contents
// and falls back to the file extension.
//
// Arguments:
//   - path: The image file path.
//
// Returns:
//   - *Image: The encoded image. Width and Height are not populated.
//   - error: An error if the file cannot be read or the format is unknown.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	format := DetectFormat(data)
	if format == FormatUnknown {
		format = FormatFromPath(path)
	}
	if format == FormatUnknown {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "cannot determine format of %s", path)
	}

	return &Image{Format: format, Data: data}, nil
}

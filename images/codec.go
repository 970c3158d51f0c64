package images

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the encoder quality used for lossy formats when none is given.
const DefaultQuality = 90

// Decode decodes an encoded Image and records its natural dimensions on img.
//
// Arguments:
//   - img: The encoded image. Width and Height are overwritten on success.
//
// Returns:
//   - image.Image: The decoded image.
//   - error: An error if the data is empty, the format is unsupported or decoding fails.
func Decode(img *Image) (image.Image, error) {
	if img == nil {
		return nil, errors.New("image is nil")
	}
	if len(img.Data) == 0 {
		return nil, errors.New("image data is empty")
	}

	format := img.Format
	if format == FormatUnknown {
		format = DetectFormat(img.Data)
	}

	decoded, err := DecodeReader(bytes.NewReader(img.Data), format)
	if err != nil {
		return nil, err
	}

	b := decoded.Bounds()
	img.Format = format
	img.Width, img.Height = b.Dx(), b.Dy()
	return decoded, nil
}

// DecodeReader decodes a single image of the given format from r.
func DecodeReader(r io.Reader, format ImageFormat) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "cannot decode %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", format)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "decoded %s is %dx%d", format, b.Dx(), b.Dy())
	}
	return img, nil
}

// Encode writes img to w in the given format. quality applies to JPEG and lossy WebP;
// values outside [1, 100] fall back to DefaultQuality.
func Encode(w io.Writer, img image.Image, format ImageFormat, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "cannot encode %q", format)
	}
	return errors.Wrapf(err, "failed to encode %s", format)
}

// Save encodes img to path, choosing the format from the file extension.
func Save(path string, img image.Image, quality int) error {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return errors.Wrapf(ErrUnsupportedFormat, "no encoder for %s", path)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format, quality); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0o644), "failed to write %s", path)
}

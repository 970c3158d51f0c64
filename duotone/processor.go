package duotone

import (
	"context"

	"github.com/pkg/errors"
)

// DefaultChunkPixels is the number of pixels ApplyContext processes between context
// checks when the caller passes a non-positive chunk size.
const DefaultChunkPixels = 64 * 1024

// PixelBuffer is a densely packed, row-major sequence of non-premultiplied RGBA pixels.
// It has the same layout as image.NRGBA.Pix for an image whose stride is 4*width.
type PixelBuffer []byte

// Validate reports ErrInvalidBuffer if the buffer is empty or its length is not a
// multiple of 4.
func (b PixelBuffer) Validate() error {
	if len(b) == 0 {
		return errors.Wrap(ErrInvalidBuffer, "buffer is empty")
	}
	if len(b)%4 != 0 {
		return errors.Wrapf(ErrInvalidBuffer, "length %d is not a multiple of 4", len(b))
	}
	return nil
}

// Pixels returns the number of pixels in the buffer.
func (b PixelBuffer) Pixels() int {
	return len(b) / 4
}

// Clone returns an independent copy of the buffer.
func (b PixelBuffer) Clone() PixelBuffer {
	if b == nil {
		return nil
	}
	out := make(PixelBuffer, len(b))
	copy(out, b)
	return out
}

// Apply tints buf in place with the gradient from dark to light. Alpha is left
// untouched. The buffer is validated before any byte is written.
//
// Apply always maps the luminance of what is currently in buf, so callers re-tinting an
// image must pass a fresh copy of the untouched original each time.
//
// Arguments:
//   - buf: The RGBA buffer to tint in place.
//   - dark: The color for luminance 0.
//   - light: The color for luminance 255.
//
// Returns:
//   - error: ErrInvalidBuffer if buf is malformed.
func Apply(buf PixelBuffer, dark, light Color) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	applyRange(buf, BuildGradient(dark, light))
	return nil
}

// ApplyTable is Apply with a prebuilt gradient table.
func ApplyTable(buf PixelBuffer, table *GradientTable) error {
	if table == nil {
		return errors.Wrap(ErrInvalidGradient, "table is nil")
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	applyRange(buf, table)
	return nil
}

// ApplyContext is ApplyTable split into chunks of chunkPixels pixels, checking ctx
// between chunks so very large images can be abandoned early. On cancellation the
// buffer is left partially tinted and must be discarded by the caller.
func ApplyContext(ctx context.Context, buf PixelBuffer, table *GradientTable, chunkPixels int) error {
	if table == nil {
		return errors.Wrap(ErrInvalidGradient, "table is nil")
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	if chunkPixels <= 0 {
		chunkPixels = DefaultChunkPixels
	}

	step := chunkPixels * 4
	for start := 0; start < len(buf); start += step {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "tinting stopped at pixel %d of %d", start/4, buf.Pixels())
		}
		end := start + step
		if end > len(buf) {
			end = len(buf)
		}
		applyRange(buf[start:end], table)
	}
	return nil
}

// Grayscale replaces each pixel's RGB with its luminance. It is equivalent to Apply with
// a black to white gradient.
func Grayscale(buf PixelBuffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	for i := 0; i < len(buf); i += 4 {
		y := Luminance(buf[i], buf[i+1], buf[i+2])
		buf[i], buf[i+1], buf[i+2] = y, y, y
	}
	return nil
}

// applyRange is the hot loop. buf must already be validated.
func applyRange(buf PixelBuffer, table *GradientTable) {
	rgb := &table.rgb
	for i := 0; i+3 < len(buf); i += 4 {
		j := int(Luminance(buf[i], buf[i+1], buf[i+2])) * 3
		buf[i] = rgb[j]
		buf[i+1] = rgb[j+1]
		buf[i+2] = rgb[j+2]
	}
}

// Processor applies duotone tints and reuses the gradient table while the endpoint
// pair stays the same. A Processor is not safe for concurrent use.
type Processor struct {
	table *GradientTable
}

// NewProcessor creates a Processor with an empty table cache.
func NewProcessor() *Processor {
	return &Processor{}
}

// Gradient returns the table for (dark, light), rebuilding it only when the pair
// differs from the previous call.
func (p *Processor) Gradient(dark, light Color) *GradientTable {
	if p.table == nil || p.table.dark != dark || p.table.light != light {
		p.table = BuildGradient(dark, light)
	}
	return p.table
}

// Apply tints buf in place. See the package-level Apply.
func (p *Processor) Apply(buf PixelBuffer, dark, light Color) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	applyRange(buf, p.Gradient(dark, light))
	return nil
}

// ApplyContext tints buf in place in cancellable chunks. See the package-level
// ApplyContext.
func (p *Processor) ApplyContext(ctx context.Context, buf PixelBuffer, dark, light Color, chunkPixels int) error {
	return ApplyContext(ctx, buf, p.Gradient(dark, light), chunkPixels)
}

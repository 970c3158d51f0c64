// Package session owns the pixel buffers of a loaded image: an immutable original
// captured at load time and a working copy re-derived from it on every tint, so effects
// never compound.
package session

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"github.com/nvr-ai/go-duotone/duotone"
	"github.com/nvr-ai/go-duotone/images"
	"github.com/pkg/errors"
)

// Session holds one rasterization of an image. Passes are serialized, so a Session may
// be shared between an input handler and an exporter.
type Session struct {
	mu        sync.Mutex
	name      string
	original  *image.NRGBA
	current   *image.NRGBA
	processor *duotone.Processor
	debugMode bool
}

// New rasterizes img at no more than maxDimension on its longest side (<= 0 keeps the
// natural size) and captures the result as the session's original buffer.
//
// Arguments:
//   - name: A label used in debug logs, e.g. "preview".
//   - img: The decoded source image.
//   - maxDimension: The longest side of the surface, or <= 0 for full size.
//
// Returns:
//   - *Session: The session.
//   - error: An error if the image cannot be rasterized.
func New(name string, img image.Image, maxDimension int) (*Session, error) {
	surface, err := images.Rasterize(img, maxDimension)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to rasterize %s", name)
	}
	return newSession(name, surface), nil
}

// NewFromBuffer creates a session from an already decoded RGBA buffer. The buffer is
// copied.
func NewFromBuffer(name string, pix duotone.PixelBuffer, dims images.Dimensions) (*Session, error) {
	if err := pix.Validate(); err != nil {
		return nil, err
	}
	if dims.Width <= 0 || dims.Height <= 0 {
		return nil, errors.Wrapf(images.ErrInvalidDimensions, "buffer dimensions %s", dims)
	}
	if len(pix) != dims.Pixels()*4 {
		return nil, errors.Wrapf(duotone.ErrInvalidBuffer, "%d bytes do not match %s", len(pix), dims)
	}

	surface := image.NewNRGBA(image.Rect(0, 0, dims.Width, dims.Height))
	copy(surface.Pix, pix)
	return newSession(name, surface), nil
}

func newSession(name string, original *image.NRGBA) *Session {
	return &Session{
		name:      name,
		original:  original,
		processor: duotone.NewProcessor(),
	}
}

// SetDebugMode enables or disables per-pass timing logs.
func (s *Session) SetDebugMode(enabled bool) {
	s.mu.Lock()
	s.debugMode = enabled
	s.mu.Unlock()
}

// Dimensions returns the size of the session's buffers.
func (s *Session) Dimensions() images.Dimensions {
	b := s.original.Bounds()
	return images.Dimensions{Width: b.Dx(), Height: b.Dy()}
}

// Original returns a copy of the untouched source buffer.
func (s *Session) Original() *image.NRGBA {
	return images.ToNRGBA(s.original)
}

// Current returns the result of the most recent pass, or nil if none has run. The
// returned surface is owned by the caller once a newer pass has replaced it.
func (s *Session) Current() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Apply tints a fresh copy of the original buffer with the gradient from dark to light
// and returns it.
func (s *Session) Apply(dark, light duotone.Color) (*image.NRGBA, error) {
	return s.run(func(pix duotone.PixelBuffer) error {
		return s.processor.Apply(pix, dark, light)
	})
}

// ApplyContext is Apply processed in cancellable chunks. A cancelled pass leaves
// Current unchanged.
func (s *Session) ApplyContext(ctx context.Context, dark, light duotone.Color) (*image.NRGBA, error) {
	return s.run(func(pix duotone.PixelBuffer) error {
		return s.processor.ApplyContext(ctx, pix, dark, light, duotone.DefaultChunkPixels)
	})
}

// Grayscale returns a fresh grayscale copy of the original buffer.
func (s *Session) Grayscale() (*image.NRGBA, error) {
	return s.run(duotone.Grayscale)
}

// run copies the original into a new working buffer, applies pass to it and commits
// the buffer as Current only on success.
func (s *Session) run(pass func(duotone.PixelBuffer) error) (*image.NRGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := images.ToNRGBA(s.original)

	start := time.Now()
	if err := pass(working.Pix); err != nil {
		return nil, errors.Wrapf(err, "%s pass failed", s.name)
	}
	if s.debugMode {
		log.Printf("⏱️  %s: time to process %d pixels: %s", s.name, len(working.Pix)/4, time.Since(start))
	}

	s.current = working
	return working, nil
}

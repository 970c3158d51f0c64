// Package duotone implements the duotone pipeline: luminance conversion, gradient table
// construction and per-pixel remapping over raw RGBA buffers.
package duotone

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Color is an opaque 8-bit RGB triple used as a gradient endpoint.
type Color struct {
	R, G, B uint8
}

// Common endpoints.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor builds a Color from integer channels, failing with ErrInvalidColor if any
// channel is outside [0, 255].
//
// Arguments:
//   - r, g, b: The channel values.
//
// Returns:
//   - Color: The validated color.
//   - error: ErrInvalidColor if a channel is out of range.
func NewColor(r, g, b int) (Color, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, errors.Wrapf(ErrInvalidColor, "channel %d out of range in (%d, %d, %d)", v, r, g, b)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseColor parses a color string. Supported forms:
//   - "#rrggbb" and "rrggbb"
//   - "#rgb" and "rgb"
//   - SVG/CSS color names such as "navy" or "goldenrod"
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, errors.Wrap(ErrInvalidColor, "empty color string")
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
		}
	}

	if c, ok := colornames.Map[s]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}
	return Color{}, errors.Wrapf(ErrInvalidColor, "cannot parse %q", s)
}

// MustParseColor is like ParseColor but panics on error. Intended for package-level
// defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any image/color value to a Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Hex returns the "#rrggbb" form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// MarshalText implements encoding.TextMarshaler so colors serialize as hex strings.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

package duotone

// Levels is the number of luminance levels a GradientTable maps.
const Levels = 256

// GradientTable maps each luminance level to a color interpolated between a dark and a
// light endpoint. Entries are stored flat as r, g, b triples so lookups never build a
// Color.
type GradientTable struct {
	dark, light Color
	rgb         [Levels * 3]uint8
}

// BuildGradient precomputes the 256-entry gradient from dark (level 0) to light
// (level 255). Entry i is
//
//	round(dark + (light - dark) * i / 255)
//
// per channel, rounding half up. Arithmetic is exact integer math, so entry 0 is
// always dark and entry 255 is always light.
func BuildGradient(dark, light Color) *GradientTable {
	t := &GradientTable{dark: dark, light: light}
	for i := 0; i < Levels; i++ {
		t.rgb[i*3] = lerp(dark.R, light.R, i)
		t.rgb[i*3+1] = lerp(dark.G, light.G, i)
		t.rgb[i*3+2] = lerp(dark.B, light.B, i)
	}
	return t
}

// lerp interpolates one channel at level i. The numerator is dark*255 + (light-dark)*i,
// which is non-negative for i in [0, 255], so (2n + 255) / 510 rounds n/255 half up.
func lerp(dark, light uint8, i int) uint8 {
	n := int(dark)*(Levels-1) + (int(light)-int(dark))*i
	v := (2*n + Levels - 1) / (2 * (Levels - 1))
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// At returns the color for a luminance level.
func (t *GradientTable) At(level uint8) Color {
	i := int(level) * 3
	return Color{R: t.rgb[i], G: t.rgb[i+1], B: t.rgb[i+2]}
}

// Dark returns the level 0 endpoint the table was built from.
func (t *GradientTable) Dark() Color { return t.dark }

// Light returns the level 255 endpoint the table was built from.
func (t *GradientTable) Light() Color { return t.light }

// Colors returns a copy of all 256 entries in level order.
func (t *GradientTable) Colors() []Color {
	out := make([]Color, Levels)
	for i := range out {
		out[i] = t.At(uint8(i))
	}
	return out
}

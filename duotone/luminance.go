package duotone

// Luminance weights, scaled by 1000 so the weighted sum stays in integer arithmetic.
const (
	lumaR     = 299
	lumaG     = 587
	lumaB     = 114
	lumaScale = 1000
)

// Luminance returns the perceptual brightness of an RGB triple:
//
//	round(0.299*r + 0.587*g + 0.114*b)
//
// Rounding is half up. The computation is exact, so a gray input (r == g == b) always
// maps to itself.
func Luminance(r, g, b uint8) uint8 {
	return uint8((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b) + lumaScale/2) / lumaScale)
}

// Luminance returns the perceptual brightness of the color.
func (c Color) Luminance() uint8 {
	return Luminance(c.R, c.G, c.B)
}

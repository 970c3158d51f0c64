package duotone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGradientEndpoints checks that level 0 is dark and level 255 is light for a spread
// of endpoint pairs, including inverted and equal pairs.
func TestGradientEndpoints(t *testing.T) {
	pairs := [][2]Color{
		{Black, White},
		{White, Black},
		{{78, 5, 112}, {226, 178, 3}},
		{{10, 20, 30}, {200, 210, 220}},
		{{255, 0, 255}, {0, 255, 0}},
		{{7, 7, 7}, {7, 7, 7}},
	}
	for _, p := range pairs {
		table := BuildGradient(p[0], p[1])
		assert.Equal(t, p[0], table.At(0), "level 0 should equal dark for %v", p)
		assert.Equal(t, p[1], table.At(255), "level 255 should equal light for %v", p)
		assert.Equal(t, p[0], table.Dark())
		assert.Equal(t, p[1], table.Light())
	}
}

func TestGradientIdentity(t *testing.T) {
	table := BuildGradient(Black, White)
	prev := table.At(0)
	for i := 0; i < Levels; i++ {
		c := table.At(uint8(i))
		assert.Equal(t, Color{uint8(i), uint8(i), uint8(i)}, c)
		assert.GreaterOrEqual(t, c.R, prev.R)
		assert.GreaterOrEqual(t, c.G, prev.G)
		assert.GreaterOrEqual(t, c.B, prev.B)
		prev = c
	}
}

func TestGradientConstant(t *testing.T) {
	c := Color{42, 128, 200}
	for _, entry := range BuildGradient(c, c).Colors() {
		assert.Equal(t, c, entry)
	}
}

// TestGradientMatchesFloatFormula compares the integer interpolation against the float
// formula rounded half up. Exact .5 ties are skipped since float64 cannot always
// represent them.
func TestGradientMatchesFloatFormula(t *testing.T) {
	dark, light := Color{78, 5, 112}, Color{226, 178, 3}
	table := BuildGradient(dark, light)
	channel := func(d, l uint8, i int) (float64, bool) {
		v := float64(d) + (float64(l)-float64(d))*float64(i)/255
		frac := v - math.Floor(v)
		return math.Floor(v + 0.5), math.Abs(frac-0.5) < 1e-9
	}
	for i := 0; i < Levels; i++ {
		got := table.At(uint8(i))
		for k, pair := range [][3]uint8{{dark.R, light.R, got.R}, {dark.G, light.G, got.G}, {dark.B, light.B, got.B}} {
			want, tie := channel(pair[0], pair[1], i)
			if tie {
				continue
			}
			assert.Equal(t, uint8(want), pair[2], "level %d channel %d", i, k)
		}
	}
}

func TestGradientMonotoneDescending(t *testing.T) {
	table := BuildGradient(White, Color{0, 128, 255})
	colors := table.Colors()
	for i := 1; i < len(colors); i++ {
		assert.LessOrEqual(t, colors[i].R, colors[i-1].R, "red should not increase at level %d", i)
		assert.LessOrEqual(t, colors[i].G, colors[i-1].G, "green should not increase at level %d", i)
		assert.Equal(t, uint8(255), colors[i].B)
	}
}

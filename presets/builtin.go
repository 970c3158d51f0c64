package presets

import "github.com/nvr-ai/go-duotone/duotone"

// DefaultName is the preset used when no colors are chosen.
const DefaultName = "royal-gold"

var builtin = []Preset{
	{Name: DefaultName, Dark: duotone.Color{R: 78, G: 5, B: 112}, Light: duotone.Color{R: 226, G: 178, B: 3}},
	{Name: "grayscale", Dark: duotone.Black, Light: duotone.White},
	{Name: "noir", Dark: duotone.Color{R: 17, G: 17, B: 17}, Light: duotone.Color{R: 230, G: 230, B: 220}},
	{Name: "ocean", Dark: duotone.Color{R: 0, G: 32, B: 96}, Light: duotone.Color{R: 128, G: 224, B: 255}},
	{Name: "sepia", Dark: duotone.Color{R: 43, G: 25, B: 9}, Light: duotone.Color{R: 240, G: 222, B: 180}},
	{Name: "cyberpunk", Dark: duotone.Color{R: 32, G: 0, B: 64}, Light: duotone.Color{R: 0, G: 255, B: 200}},
	{Name: "sunset", Dark: duotone.Color{R: 120, G: 20, B: 60}, Light: duotone.Color{R: 255, G: 190, B: 90}},
	{Name: "forest", Dark: duotone.Color{R: 10, G: 40, B: 20}, Light: duotone.Color{R: 200, G: 230, B: 160}},
	{Name: "blueprint", Dark: duotone.Color{R: 0, G: 51, B: 153}, Light: duotone.Color{R: 240, G: 248, B: 255}},
	{Name: "infrared", Dark: duotone.Color{R: 60, G: 0, B: 0}, Light: duotone.Color{R: 255, G: 120, B: 180}},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(builtin...)
	if err != nil {
		panic(err)
	}
	return c
}

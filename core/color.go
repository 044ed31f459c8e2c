package core

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBGrey  = RGB{128, 128, 128}
)

// MinStimulusDistance is the smallest CIE76 distance at which a random fill counts as visible
// against the background
const MinStimulusDistance = 0.1

// Colorful converts to a go-colorful color for perceptual math
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the #rrggbb form
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// String implements fmt.Stringer as rgb(r,g,b)
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Distance returns the CIE76 distance in Lab space
func (c RGB) Distance(other RGB) float64 {
	return c.Colorful().DistanceCIE76(other.Colorful())
}

// ParseHex parses #rrggbb or #rgb
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{r, g, b}, nil
}

// RandomRGB draws each channel uniformly from [0, 255]
func RandomRGB(rng *rand.Rand) RGB {
	return RGB{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// RandomDistinct draws random colors until one is at least MinStimulusDistance away from avoid
func RandomDistinct(rng *rand.Rand, avoid RGB) RGB {
	for {
		c := RandomRGB(rng)
		if c.Distance(avoid) >= MinStimulusDistance {
			return c
		}
	}
}

package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/starfield/internal/config"
)

var fallbackColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// colorCache parses hex tokens once; the palette is tiny and every frame
// draws thousands of rectangles with it.
type colorCache struct {
	parsed map[string]color.NRGBA
}

func newColorCache() *colorCache {
	return &colorCache{parsed: map[string]color.NRGBA{}}
}

// get returns the colour for token with alpha in [0,1] applied. Unparseable
// tokens draw white.
func (c *colorCache) get(token string, alpha float64) color.NRGBA {
	base, ok := c.parsed[token]
	if !ok {
		base = fallbackColor
		if cf, err := colorful.Hex(config.NormalizeHex(token)); err == nil {
			r, g, b := cf.Clamped().RGB255()
			base = color.NRGBA{R: r, G: g, B: b, A: 255}
		}
		c.parsed[token] = base
	}
	base.A = uint8(clamp01(alpha) * 255)
	return base
}

// backgroundColor is a very dark, slowly drifting tint behind the stars.
func backgroundColor(phase float64) color.RGBA {
	r, g, b := phaseTint(phase, 0, 0.6, 0.07).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hudColor tints the HUD text toward the star palette.
func hudColor(phase float64) color.Color {
	base := phaseTint(phase, 0.5, 0.25, 0.95)
	// Blend toward white in HCL so the text stays legible on any tint.
	mixed := base.BlendHcl(colorful.Color{R: 1, G: 1, B: 1}, 0.5).Clamped()
	rr, gg, bb := mixed.RGB255()
	return color.RGBA{R: rr, G: gg, B: bb, A: 255}
}

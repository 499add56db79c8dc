package ring

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates an opaque color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(alpha float64) RGBA {
	c.A = alpha
	return c
}

// Lerp linearly interpolates between two colors in RGB space.
// t=0 returns c, t=1 returns other. Alpha interpolates linearly.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	blended := c.asColorful().BlendRgb(other.asColorful(), t)
	return RGBA{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// Shade returns a tonal variant of the color. Positive amounts blend toward
// white, negative amounts blend toward black; the magnitude is the blend
// fraction. Alpha is preserved.
func (c RGBA) Shade(amount float64) RGBA {
	target := colorful.Color{R: 1, G: 1, B: 1}
	if amount < 0 {
		target = colorful.Color{R: 0, G: 0, B: 0}
		amount = -amount
	}
	blended := c.asColorful().BlendRgb(target, clamp01(amount))
	return RGBA{R: blended.R, G: blended.G, B: blended.B, A: c.A}
}

func (c RGBA) asColorful() colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

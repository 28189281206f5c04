package drawing

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is one of the fixed drawing colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Blue
	Yellow
	White
)

var palette = [...]struct {
	name string
	c    colorful.Color
}{
	Black:  {"black", colorful.Color{R: 0, G: 0, B: 0}},
	Red:    {"red", colorful.Color{R: 1, G: 0, B: 0}},
	Green:  {"green", colorful.Color{R: 0, G: 1, B: 0}},
	Blue:   {"blue", colorful.Color{R: 0, G: 0, B: 1}},
	Yellow: {"yellow", colorful.Color{R: 1, G: 1, B: 0}},
	White:  {"white", colorful.Color{R: 1, G: 1, B: 1}},
}

// ParseColor maps a color symbol to a Color by its first character,
// ignoring case: r, g, b, y and w select red, green, blue, yellow and white.
// Any other symbol, including the empty string, is black.
func ParseColor(symbol string) Color {
	if symbol == "" {
		return Black
	}
	switch symbol[0] {
	case 'r', 'R':
		return Red
	case 'g', 'G':
		return Green
	case 'b', 'B':
		return Blue
	case 'y', 'Y':
		return Yellow
	case 'w', 'W':
		return White
	default:
		return Black
	}
}

// String returns the color's name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(palette) {
		return "black"
	}
	return palette[c].name
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.value().Hex()
}

// NRGBA returns the opaque pixel value written for this color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.value().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (c Color) value() colorful.Color {
	if c < 0 || int(c) >= len(palette) {
		return palette[Black].c
	}
	return palette[c].c
}

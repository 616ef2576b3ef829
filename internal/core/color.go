package core

import "fmt"

// Color is a straight-alpha RGBA color.
// Renderer backends map it to whatever their output supports.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero reports whether the color is the zero value (fully transparent black).
func (c Color) IsZero() bool {
	return c == Color{}
}

// Named colors used by the HUD and the power-up palette.
var (
	ColorBlack    = RGB(0, 0, 0)
	ColorWhite    = RGB(255, 255, 255)
	ColorRed      = RGB(255, 0, 0)
	ColorGreen    = RGB(0, 255, 0)
	ColorBlue     = RGB(0, 0, 255)
	ColorYellow   = RGB(255, 255, 0)
	ColorPink     = RGB(255, 192, 203)
	ColorPurple   = RGB(128, 0, 128)
	ColorOrange   = RGB(255, 165, 0)
	ColorSkyBlue  = RGB(135, 206, 235)
	ColorGray     = RGB(128, 128, 128)
	ColorQuit     = RGB(200, 50, 50)
	ColorQuitHigh = RGB(255, 100, 100)
)

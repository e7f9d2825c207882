package core

import "fmt"

// Color is a 24-bit RGB foreground colour for a screen cell or drawing command.
// The zero value means "terminal default".
type Color uint32

const colorSet = 1 << 24

// RGB builds a Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color(hex&0xffffff | colorSet)
}

// Predefined colors used by the game and frontends.
var (
	ColorDefault Color = 0
	ColorWhite         = RGB(0xffffff)
	ColorYellow        = RGB(0xffff00)
	ColorRed           = RGB(0xff0000)
	ColorGray          = RGB(0x8a8a8a)
	ColorNavy          = RGB(0x1c2440)
	ColorStar          = RGB(0x6c7aa8)
)

// IsDefault reports whether c is the terminal default colour.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb". Default renders as an empty string.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

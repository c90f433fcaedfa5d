package core

// Color represents a foreground color for a screen cell.
// Both frontends draw it with the RGB value below.
type Color uint8

// Palette used by ships, projectiles and scenery.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorPurple

	// ColorCount is the number of palette entries.
	ColorCount = iota
)

// RGB returns the 8-bit red, green and blue components for c.
// ColorDefault maps to light gray.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 205, 49, 49
	case ColorGreen:
		return 13, 188, 121
	case ColorYellow:
		return 229, 229, 16
	case ColorBlue:
		return 36, 114, 200
	case ColorMagenta:
		return 188, 63, 188
	case ColorCyan:
		return 17, 168, 205
	case ColorWhite:
		return 229, 229, 229
	case ColorBrightRed:
		return 241, 76, 76
	case ColorBrightGreen:
		return 35, 209, 139
	case ColorBrightYellow:
		return 245, 245, 67
	case ColorBrightBlue:
		return 59, 142, 234
	case ColorBrightMagenta:
		return 214, 112, 214
	case ColorBrightCyan:
		return 41, 184, 219
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 165, 0
	case ColorGray:
		return 150, 150, 150
	case ColorDarkGray:
		return 90, 90, 90
	case ColorPurple:
		return 150, 100, 200
	default:
		return 200, 200, 200
	}
}

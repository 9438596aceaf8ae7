package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the renderer. Bright variants mark things that need
// attention: the selection, alerts, victory and defeat panels.
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
	ColorBrown    // Organic waste
	ColorDarkGray // Industrial ground

	colorCount
)

// Bright reports whether c is one of the bright variants.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && c <= ColorBrightWhite
}

// Valid reports whether c is a known color.
func (c Color) Valid() bool {
	return c < colorCount
}

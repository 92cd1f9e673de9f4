package core

// Color is a terminal palette entry used for screen cells.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBrightWhite
)

// TokenPalette lists the colors used for token kinds, in kind order.
// Kinds beyond its length wrap around.
var TokenPalette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// TokenColor returns the palette color for kind k.
func TokenColor(k int) Color {
	if k < 0 {
		return ColorDefault
	}
	return TokenPalette[k%len(TokenPalette)]
}

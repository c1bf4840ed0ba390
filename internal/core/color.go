package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
)

// ANSI returns the SGR escape sequence that selects this color,
// or an empty string for ColorDefault.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "\033[0;31m"
	case ColorGreen:
		return "\033[0;32m"
	case ColorYellow:
		return "\033[0;33m"
	case ColorBlue:
		return "\033[0;34m"
	case ColorMagenta:
		return "\033[0;35m"
	case ColorCyan:
		return "\033[0;36m"
	case ColorWhite:
		return "\033[0;37m"
	case ColorBrightRed:
		return "\033[1;31m"
	case ColorBrightGreen:
		return "\033[1;32m"
	case ColorBrightYellow:
		return "\033[1;33m"
	case ColorBrightBlue:
		return "\033[1;34m"
	case ColorBrightMagenta:
		return "\033[1;35m"
	case ColorBrightCyan:
		return "\033[1;36m"
	case ColorBrightWhite:
		return "\033[1;37m"
	case ColorOrange:
		return "\033[38;5;208m"
	case ColorGray:
		return "\033[38;5;245m"
	default:
		return ""
	}
}

// ANSIReset clears any color set by ANSI.
const ANSIReset = "\033[0m"

package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightYellow
)

// String returns the color name, used in logs and config errors.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightYellow:
		return "bright-yellow"
	default:
		return "unknown"
	}
}

// ParseColor returns the color with the given name.
func ParseColor(name string) (Color, bool) {
	for c := ColorDefault; c <= ColorBrightYellow; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorDefault, false
}

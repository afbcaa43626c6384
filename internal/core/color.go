package core

// Color represents a foreground color for a screen cell.
// Values map onto the ANSI 256-color palette via Code.
type Color uint8

// Palette used by the well, the HUD and the menus.
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
	ColorBrightWhite
	ColorBrightYellow
)

// ansiCodes holds the 256-color code for each palette entry.
// ColorDefault has no code and renders with the terminal's own foreground.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorOrange:       "208",
	ColorGray:         "245",
	ColorBrightWhite:  "15",
	ColorBrightYellow: "11",
}

// Code returns the ANSI 256-color code, or "" for the default color.
func (c Color) Code() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

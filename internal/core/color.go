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
	ColorGray
)

// Roles used by the games, so a palette change stays in one place.
const (
	ColorPlayer1 = ColorCyan
	ColorPlayer2 = ColorMagenta
	ColorBullet  = ColorYellow
	ColorHeavy   = ColorRed
	ColorBlock   = ColorGray
	ColorFloor   = ColorWhite
	ColorPipe    = ColorGreen
	ColorHUD     = ColorWhite
)

var ansiCodes = [...]string{
	ColorDefault: "",
	ColorRed:     "9",
	ColorGreen:   "10",
	ColorYellow:  "11",
	ColorBlue:    "12",
	ColorMagenta: "13",
	ColorCyan:    "14",
	ColorWhite:   "15",
	ColorGray:    "245",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

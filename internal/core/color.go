package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorCoral
	ColorGray
)

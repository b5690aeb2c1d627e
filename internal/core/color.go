package core

// Color is a palette slot for a screen cell. The TUI maps each slot to a
// lipgloss style; headless consumers ignore it.
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
	ColorBrown
	ColorPink
	ColorGray
)

package core

// Color is a logical foreground color for a screen cell. The platform maps it
// to a terminal palette entry.
type Color uint8

// Colors used by the rasterizer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

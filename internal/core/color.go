package core

// Color is a terminal foreground colour: an ANSI code ("1".."255") or a
// "#rrggbb" hex string. The empty string leaves the terminal default.
type Color string

// Named colours used by the renderer and menus.
const (
	ColorDefault      Color = ""
	ColorBrightRed    Color = "9"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
	ColorGray         Color = "245"
	ColorDarkGray     Color = "238"
)

package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var IsDarkBg = termenv.HasDarkBackground()

// bright variants on dark terminals, plain variants on light ones
var (
	ColorHiGreen   = pickColor(color.FgHiGreen, color.FgGreen)
	ColorHiMagenta = pickColor(color.FgHiMagenta, color.FgMagenta)
	ColorHiRed     = pickColor(color.FgHiRed, color.FgRed)
	ColorHiYellow  = pickColor(color.FgHiYellow, color.FgYellow)
	ColorHiCyan    = pickColor(color.FgHiCyan, color.FgCyan)
	ColorHiBlue    = pickColor(color.FgHiBlue, color.FgBlue)
)

func pickColor(dark, light color.Attribute) color.Attribute {
	if IsDarkBg {
		return dark
	}
	return light
}

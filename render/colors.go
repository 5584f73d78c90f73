package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(70, 75, 100)   // Arena edge
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbFallback   = tcell.NewRGBColor(200, 200, 200) // Sprites without a color
)

// spriteColor resolves a sprite's "#rrggbb" color, falling back to light gray
func spriteColor(hex string) tcell.Color {
	if hex == "" {
		return RgbFallback
	}
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return RgbFallback
	}
	return c
}

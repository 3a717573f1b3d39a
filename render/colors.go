package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(12, 12, 20)    // Near-black night sky
	RgbGround     = tcell.NewRGBColor(0, 200, 0)     // Ground line under the cannon
	RgbCannon     = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbLaser      = tcell.NewRGBColor(255, 255, 255) // White
	RgbBomb       = tcell.NewRGBColor(255, 120, 120) // Light red
	RgbSquid      = tcell.NewRGBColor(140, 190, 255) // Bright blue
	RgbCrab       = tcell.NewRGBColor(0, 200, 200)   // Cyan
	RgbOctopus    = tcell.NewRGBColor(200, 120, 255) // Violet
	RgbUfo        = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbMissing    = tcell.NewRGBColor(255, 0, 255)   // Magenta placeholder for unknown assets
	RgbHUD        = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbButtonBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbButtonFg   = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbStatusText = tcell.NewRGBColor(180, 180, 180) // Gray
	RgbStatusBg   = tcell.NewRGBColor(40, 40, 60)    // Slate
)

// Styles built from the palette
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUD)
	StyleHUD        = StyleBackground.Foreground(RgbHUD).Bold(true)
	StyleStatus     = tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
)

// Fg returns the background style with a foreground color
func Fg(c tcell.Color) tcell.Style {
	return StyleBackground.Foreground(c)
}

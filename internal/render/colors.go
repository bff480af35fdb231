package render

import "image/color"

// Neon terminal palette shared by the dial and the side panel.
var (
	BackgroundDark = color.RGBA{6, 8, 18, 255}
	PanelDark      = color.RGBA{12, 16, 34, 255}
	PanelMedium    = color.RGBA{20, 26, 52, 255}
	BorderBlue     = color.RGBA{42, 88, 160, 255}
	NeonBlue       = color.RGBA{0, 160, 255, 255}
	NeonGreen      = color.RGBA{0, 232, 74, 255}
	BracketGreen   = color.RGBA{0, 232, 100, 255}
	HighlightGold  = color.RGBA{255, 215, 0, 255}
	AlertRed       = color.RGBA{255, 34, 68, 255}
	TextDim        = color.RGBA{170, 170, 204, 255}
	TextBright     = color.RGBA{220, 235, 255, 255}
)

// WithAlpha returns c scaled to the given opacity.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}

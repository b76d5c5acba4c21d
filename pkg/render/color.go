// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	PassableColor   color.RGBA
	BlockedColor    color.RGBA
	GridLineColor   color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	TextLightColor  color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeAlpha scales the alpha channel of a color by t in [0, 1].
func FadeAlpha(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	c.A = uint8(float64(c.A) * t)
	return c
}

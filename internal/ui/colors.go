package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/monsterbattle/internal/gamedata"
)

var (
	barFull  = toColorful(gamedata.MustParseHexColor("#3EC43E"))
	barHalf  = toColorful(gamedata.MustParseHexColor("#E8C547"))
	barEmpty = toColorful(gamedata.MustParseHexColor("#D94040"))
	black    = colorful.Color{}
)

// HealthColor returns the bar colour for a fill fraction: green when full,
// yellow at half, red when nearly empty.
func HealthColor(fraction float64) tcell.Color {
	switch {
	case fraction <= 0:
		return toTCell(barEmpty)
	case fraction >= 1:
		return toTCell(barFull)
	case fraction >= 0.5:
		return toTCell(barHalf.BlendHcl(barFull, (fraction-0.5)*2).Clamped())
	default:
		return toTCell(barEmpty.BlendHcl(barHalf, fraction*2).Clamped())
	}
}

// Fade blends c towards black by amount in [0,1]. Palette colours without an
// RGB value snap to black once the fade is half done.
func Fade(c tcell.Color, amount float64) tcell.Color {
	if amount <= 0 {
		return c
	}
	if amount >= 1 {
		return tcell.ColorBlack
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		if amount >= 0.5 {
			return tcell.ColorBlack
		}
		return c
	}
	return toTCell(toColorful(c).BlendRgb(black, amount))
}

// toColorful converts an RGB tcell colour. Palette colours without an RGB
// value come out black.
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return black
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

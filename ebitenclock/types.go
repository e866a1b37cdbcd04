package ebitenclock

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WhitePixel is a 1x1 white image. Solid-color sprites (ticks, hands) scale
// and tint it.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// scale applies c, multiplied by alpha, to a ColorScale.
func (c Color) scale(cs *ebiten.ColorScale, alpha float64) {
	a := float32(c.A * alpha)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders an image, WhitePixel by default
	NodeTypeText                      // renders a text label centered on its origin
)

// Theme holds the face colors.
type Theme struct {
	Face           Color
	Border         Color
	MinorTick      Color
	MajorTick      Color
	Number         Color
	CardinalNumber Color
	Hand           Color
	SecondHand     Color
	Center         Color
	Date           Color
}

// MonoTheme is a single-tone face.
var MonoTheme = Theme{
	Face:           Color{0.96, 0.96, 0.94, 1},
	Border:         Color{0.2, 0.2, 0.2, 1},
	MinorTick:      Color{0.45, 0.45, 0.45, 1},
	MajorTick:      Color{0.15, 0.15, 0.15, 1},
	Number:         Color{0.15, 0.15, 0.15, 1},
	CardinalNumber: Color{0.15, 0.15, 0.15, 1},
	Hand:           Color{0.12, 0.12, 0.12, 1},
	SecondHand:     Color{0.12, 0.12, 0.12, 1},
	Center:         Color{0.12, 0.12, 0.12, 1},
	Date:           Color{0.3, 0.3, 0.3, 1},
}

// DualToneTheme contrasts the second hand and cardinal numbers with the rest
// of the face.
var DualToneTheme = Theme{
	Face:           Color{0.97, 0.96, 0.92, 1},
	Border:         Color{0.1, 0.12, 0.16, 1},
	MinorTick:      Color{0.55, 0.55, 0.58, 1},
	MajorTick:      Color{0.1, 0.12, 0.16, 1},
	Number:         Color{0.4, 0.42, 0.46, 1},
	CardinalNumber: Color{0.1, 0.12, 0.16, 1},
	Hand:           Color{0.1, 0.12, 0.16, 1},
	SecondHand:     Color{0.86, 0.2, 0.16, 1},
	Center:         Color{0.86, 0.2, 0.16, 1},
	Date:           Color{0.86, 0.2, 0.16, 1},
}

// ThemeFor picks the theme matching a dual-tone flag.
func ThemeFor(dualTone bool) Theme {
	if dualTone {
		return DualToneTheme
	}
	return MonoTheme
}

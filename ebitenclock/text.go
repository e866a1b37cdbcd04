package ebitenclock

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a TrueType face at a given pixel size.
type Font struct {
	source *text.GoTextFaceSource
	face   *text.GoTextFace
	lh     float64
}

// LoadFont parses TrueType or OpenType data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenclock: failed to parse font data: %w", err)
	}
	return newFont(source, size), nil
}

var defaultSource *text.GoTextFaceSource

// DefaultFont returns Go Regular at the given size.
func DefaultFont(size float64) *Font {
	if defaultSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("ebitenclock: bundled font: %v", err))
		}
		defaultSource = src
	}
	return newFont(defaultSource, size)
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{
		source: source,
		face:   face,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// WithSize returns a font sharing f's source at a new size.
func (f *Font) WithSize(size float64) *Font {
	return newFont(f.source, size)
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 {
	return f.face.Size
}

// LineHeight returns the distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// MeasureString returns the rendered size of s.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// Label is the content of a text node.
type Label struct {
	Content string
	Font    *Font
}

// drawLabel draws a label centered on the origin of geo.
func drawLabel(dst *ebiten.Image, l *Label, geo ebiten.GeoM, c Color, alpha float64) {
	if l == nil || l.Font == nil || l.Content == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geo
	c.scale(&op.ColorScale, alpha)
	op.LineSpacing = l.Font.lh
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, l.Content, l.Font.face, op)
}

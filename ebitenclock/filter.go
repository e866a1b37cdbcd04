package ebitenclock

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter transforms src into dst. Both images have the same size.
type Filter interface {
	Apply(src, dst *ebiten.Image)
}

// BlurFilter applies a Kawase-style blur: the image is repeatedly halved
// with linear filtering and then scaled back up.
type BlurFilter struct {
	Radius int
	temps  []*ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewBlurFilter creates a blur filter with the given radius in pixels.
func NewBlurFilter(radius int) *BlurFilter {
	if radius < 0 {
		radius = 0
	}
	return &BlurFilter{Radius: radius}
}

// Passes returns the number of downscale passes for the current radius.
func (f *BlurFilter) Passes() int {
	if f.Radius <= 0 {
		return 0
	}
	passes := int(math.Ceil(math.Log2(float64(f.Radius))))
	if passes < 1 {
		passes = 1
	}
	return passes
}

// Apply draws a blurred copy of src into dst.
func (f *BlurFilter) Apply(src, dst *ebiten.Image) {
	passes := f.Passes()
	if passes == 0 {
		f.draw(dst, src, ebiten.FilterNearest)
		return
	}
	f.ensureTemps(src, passes)

	current := src
	for i := 0; i < passes; i++ {
		f.temps[i].Clear()
		f.draw(f.temps[i], current, ebiten.FilterLinear)
		current = f.temps[i]
	}
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.draw(f.temps[i], current, ebiten.FilterLinear)
		current = f.temps[i]
	}
	f.draw(dst, current, ebiten.FilterLinear)
}

// draw scales src to cover dst.
func (f *BlurFilter) draw(dst, src *ebiten.Image, filter ebiten.Filter) {
	sb, db := src.Bounds(), dst.Bounds()
	f.op.GeoM.Reset()
	f.op.ColorScale.Reset()
	f.op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	f.op.Filter = filter
	dst.DrawImage(src, &f.op)
}

// ensureTemps sizes the downscale chain for src, reusing images when the
// dimensions are unchanged.
func (f *BlurFilter) ensureTemps(src *ebiten.Image, passes int) {
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
		}
	}
	if len(f.temps) > passes {
		f.temps = f.temps[:passes]
	}
	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		t := f.temps[i]
		if t != nil && t.Bounds().Dx() == w && t.Bounds().Dy() == h {
			continue
		}
		if t != nil {
			t.Deallocate()
		}
		f.temps[i] = ebiten.NewImage(w, h)
	}
}

// Dispose releases the intermediate images.
func (f *BlurFilter) Dispose() {
	for _, t := range f.temps {
		if t != nil {
			t.Deallocate()
		}
	}
	f.temps = nil
}

// shadowPass renders one sprite's drop shadow: the sprite silhouette is drawn
// in black at the shadow opacity, offset, into an offscreen layer that is
// blurred onto the target.
type shadowPass struct {
	layer   *ebiten.Image
	blurred *ebiten.Image
	blur    *BlurFilter
	op      ebiten.DrawImageOptions
}

func newShadowPass() *shadowPass {
	return &shadowPass{blur: NewBlurFilter(0)}
}

func (p *shadowPass) ensure(w, h int) {
	if p.layer != nil && p.layer.Bounds().Dx() == w && p.layer.Bounds().Dy() == h {
		p.layer.Clear()
		p.blurred.Clear()
		return
	}
	p.dispose()
	p.layer = ebiten.NewImage(w, h)
	p.blurred = ebiten.NewImage(w, h)
}

// draw renders the shadow of cmd onto target.
func (p *shadowPass) draw(target *ebiten.Image, cmd *renderCommand) {
	s := cmd.shadow
	b := target.Bounds()
	p.ensure(b.Dx(), b.Dy())

	p.op.GeoM = cmd.geom()
	p.op.GeoM.Translate(s.OffsetX-float64(b.Min.X), s.OffsetY-float64(b.Min.Y))
	p.op.ColorScale.Reset()
	a := float32(s.Opacity * cmd.alpha)
	p.op.ColorScale.Scale(0, 0, 0, a)
	p.op.Filter = ebiten.FilterLinear
	p.layer.DrawImage(cmd.image, &p.op)

	p.blur.Radius = int(math.Round(s.BlurRadius))
	p.blur.Apply(p.layer, p.blurred)

	p.op.GeoM.Reset()
	p.op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	p.op.ColorScale.Reset()
	target.DrawImage(p.blurred, &p.op)
}

func (p *shadowPass) dispose() {
	if p.layer != nil {
		p.layer.Deallocate()
		p.layer = nil
	}
	if p.blurred != nil {
		p.blurred.Deallocate()
		p.blurred = nil
	}
	p.blur.Dispose()
}

var _ Filter = (*BlurFilter)(nil)

package clockface

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateShadowFormula(t *testing.T) {
	s := CalculateShadow(0, 500, DefaultHandDistance)

	rad := 135 * math.Pi / 180
	assert.InDelta(t, -math.Sin(rad)*4, s.OffsetX, 1e-12)
	assert.InDelta(t, -math.Cos(rad)*4, s.OffsetY, 1e-12)
	assert.InDelta(t, 500.0/180*0.5, s.BlurRadius, 1e-12)
	assert.Equal(t, 0.5, s.Opacity)
}

func TestCalculateShadowScalesWithWidth(t *testing.T) {
	small := CalculateShadow(30, 500, DefaultHandDistance)
	large := CalculateShadow(30, 1000, DefaultHandDistance)

	assert.NotEqual(t, small, large)
	assert.InDelta(t, small.OffsetX*2, large.OffsetX, 1e-12)
	assert.InDelta(t, small.OffsetY*2, large.OffsetY, 1e-12)
	assert.InDelta(t, small.BlurRadius*2, large.BlurRadius, 1e-12)
}

func TestCalculateShadowRotatesWithHand(t *testing.T) {
	// Opposite hands cast opposite shadows.
	a := CalculateShadow(0, 500, DefaultHandDistance)
	b := CalculateShadow(180, 500, DefaultHandDistance)
	assert.InDelta(t, -a.OffsetX, b.OffsetX, 1e-12)
	assert.InDelta(t, -a.OffsetY, b.OffsetY, 1e-12)
	assert.Equal(t, a.BlurRadius, b.BlurRadius)
}

func TestCalculateShadowOffsetLength(t *testing.T) {
	for angle := 0.0; angle < 360; angle += 15 {
		s := CalculateShadow(angle, 250, SecondHandDistance)
		assert.InDelta(t, 250*8.0/500, math.Hypot(s.OffsetX, s.OffsetY), 1e-9)
	}
}

func TestCalculateShadowZeroWidth(t *testing.T) {
	s := CalculateShadow(45, 0, DefaultHandDistance)
	assert.Zero(t, s.OffsetX)
	assert.Zero(t, s.OffsetY)
	assert.Zero(t, s.BlurRadius)
}

func TestShadowCSSFilter(t *testing.T) {
	re := regexp.MustCompile(`^drop-shadow\(-?\d+\.?\d*px -?\d+\.?\d*px \d+\.?\d*px rgba\(0,0,0,0\.5\)\)$`)
	for _, w := range []float64{0, 180, 500, 1000} {
		css := CalculateShadow(0, w, DefaultHandDistance).CSSFilter()
		assert.Regexp(t, re, css)
	}
	assert.Equal(t, "drop-shadow(1px -2px 0.5px rgba(0,0,0,0.5))",
		Shadow{OffsetX: 1, OffsetY: -2, BlurRadius: 0.5, Opacity: 0.5}.CSSFilter())
}

func TestCalculateHandShadowsLiftsSecondHand(t *testing.T) {
	hs := CalculateHandShadows(ClockAngles{Hour: 10, Minute: 10, Second: 10}, 500)
	assert.Equal(t, hs.Hour, hs.Minute)
	assert.InDelta(t, hs.Hour.BlurRadius*2, hs.Second.BlurRadius, 1e-12)
	x, y := hs.Second.Offset()
	assert.InDelta(t, hs.Hour.OffsetX*2, x, 1e-12)
	assert.InDelta(t, hs.Hour.OffsetY*2, y, 1e-12)
}

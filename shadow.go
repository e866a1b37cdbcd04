package clockface

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// LightAngle is the fixed light source direction in degrees.
	LightAngle = 135.0
	// ReferenceWidth is the face width the hand distances are designed for.
	ReferenceWidth = 500.0
	// blurRatio scales the blur radius with the container width.
	blurRatio = 180.0
	// ShadowOpacity is the alpha of every hand shadow.
	ShadowOpacity = 0.5

	// DefaultHandDistance is the hour and minute hand height above the face.
	DefaultHandDistance = 4.0
	// SecondHandDistance is the second hand height; it floats above the others.
	SecondHandDistance = 8.0
)

// Shadow describes a directional drop shadow in container pixels.
type Shadow struct {
	OffsetX    float64 `yaml:"offsetX"`
	OffsetY    float64 `yaml:"offsetY"`
	BlurRadius float64 `yaml:"blurRadius"`
	Opacity    float64 `yaml:"opacity"`
}

// CalculateShadow returns the shadow cast by a hand at angle degrees on a
// face containerWidth pixels wide, lifted handDistance above the dial.
// The light stays fixed while the hand turns, so the offset rotates with it.
func CalculateShadow(angle, containerWidth, handDistance float64) Shadow {
	rad := (angle + LightAngle) * math.Pi / 180
	scaled := containerWidth * (handDistance / ReferenceWidth)

	return Shadow{
		OffsetX:    -math.Sin(rad) * scaled,
		OffsetY:    -math.Cos(rad) * scaled,
		BlurRadius: (containerWidth / blurRatio) * (handDistance / 8),
		Opacity:    ShadowOpacity,
	}
}

// Offset returns the shadow displacement.
func (s Shadow) Offset() (x, y float64) { return s.OffsetX, s.OffsetY }

// CSSFilter formats the shadow as a CSS drop-shadow() filter value.
func (s Shadow) CSSFilter() string {
	return fmt.Sprintf("drop-shadow(%spx %spx %spx rgba(0,0,0,%s))",
		formatCSS(s.OffsetX), formatCSS(s.OffsetY), formatCSS(s.BlurRadius), formatCSS(s.Opacity))
}

// HandShadows groups the shadows of the three hands.
type HandShadows struct {
	Hour   Shadow `yaml:"hour"`
	Minute Shadow `yaml:"minute"`
	Second Shadow `yaml:"second"`
}

// CalculateHandShadows computes all three hand shadows for a face width.
func CalculateHandShadows(angles ClockAngles, containerWidth float64) HandShadows {
	return HandShadows{
		Hour:   CalculateShadow(angles.Hour, containerWidth, DefaultHandDistance),
		Minute: CalculateShadow(angles.Minute, containerWidth, DefaultHandDistance),
		Second: CalculateShadow(angles.Second, containerWidth, SecondHandDistance),
	}
}

// formatCSS avoids exponent notation, which CSS lengths do not accept.
func formatCSS(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

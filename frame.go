package clockface

// Frame is everything a renderer needs to paint the hands for one frame.
type Frame struct {
	Reading TimeReading `yaml:"reading"`
	// Angles are normalized into [0, 360).
	Angles  ClockAngles `yaml:"angles"`
	Shadows HandShadows `yaml:"shadows"`
	Width   float64     `yaml:"width"`
}

// NewFrame derives angles and hand shadows from a reading.
func NewFrame(r TimeReading, width float64) Frame {
	angles := r.Angles().Normalized()
	return Frame{
		Reading: r,
		Angles:  angles,
		Shadows: CalculateHandShadows(angles, width),
		Width:   width,
	}
}

package clockface

// FaceOptions selects which markings and hands a face shows. The zero value
// shows everything with Arabic numerals and no dual-tone styling; use
// DefaultFaceOptions for the usual defaults.
type FaceOptions struct {
	HideSeconds    bool `yaml:"hideSeconds"`
	HideNumbers    bool `yaml:"hideNumbers"`
	UseRoman       bool `yaml:"useRoman"`
	CardinalOnly   bool `yaml:"cardinalOnly"`
	NoBorder       bool `yaml:"noBorder"`
	HideTicks      bool `yaml:"hideTicks"`
	HideMajorTicks bool `yaml:"hideMajorTicks"`
	HideMinorTicks bool `yaml:"hideMinorTicks"`
	DualTone       bool `yaml:"dualTone"`
}

// DefaultFaceOptions returns the default face: all markings, bordered,
// dual-tone.
func DefaultFaceOptions() FaceOptions {
	return FaceOptions{DualTone: true}
}

// TickMark is one tick on the dial.
type TickMark struct {
	Index int
	Major bool
	// Angle in degrees, clockwise from 12 o'clock.
	Angle float64
}

// HourMark is one hour label on the dial.
type HourMark struct {
	Hour     int
	Text     string
	Cardinal bool
	Angle    float64
}

// FaceLayout is the resolved set of markings to draw.
type FaceLayout struct {
	Ticks       []TickMark
	Hours       []HourMark
	ShowSeconds bool
	Bordered    bool
	DualTone    bool
	Roman       bool
}

// Layout resolves the options into concrete markings. It is meant to be
// called when the face is built or its options change, not every frame.
func (o FaceOptions) Layout() FaceLayout {
	l := FaceLayout{
		ShowSeconds: !o.HideSeconds,
		Bordered:    !o.NoBorder,
		DualTone:    o.DualTone,
		Roman:       o.UseRoman,
	}

	if !o.HideTicks {
		for _, i := range TicksToDisplay(!o.HideMajorTicks, !o.HideMinorTicks) {
			l.Ticks = append(l.Ticks, TickMark{Index: i, Major: IsMajorTick(i), Angle: TickAngle(i)})
		}
	}

	if !o.HideNumbers {
		for _, h := range HoursToDisplay(o.CardinalOnly) {
			l.Hours = append(l.Hours, HourMark{
				Hour:     h,
				Text:     HourLabel(h, o.UseRoman),
				Cardinal: IsCardinalHour(h),
				Angle:    HourAngle(h),
			})
		}
	}

	return l
}

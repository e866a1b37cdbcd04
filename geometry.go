package clockface

import (
	"math"
	"strconv"
)

const (
	hoursOnDial   = 12
	minutesOnDial = 60

	degreesPerHour   = 360.0 / hoursOnDial   // 30
	degreesPerMinute = 360.0 / minutesOnDial // 6
	degreesPerSecond = 360.0 / minutesOnDial // 6

	// cardinalStep selects 3, 6, 9 and 12 when only cardinal hours are shown.
	cardinalStep = 3
	// majorTickStep marks every fifth tick as an hour position.
	majorTickStep = 5
)

// RomanNumerals holds the clock-face numerals for hours 1 through 12.
// Index 3 is "IIII", the traditional watchmaker's four, not "IV".
var RomanNumerals = [hoursOnDial]string{
	"I", "II", "III", "IIII", "V", "VI",
	"VII", "VIII", "IX", "X", "XI", "XII",
}

// TimeReading is the clock display value for one frame.
// Seconds may carry an eased fraction in tick mode; Milliseconds may be
// negative in sweep mode (see Engine.UpdateSweep).
type TimeReading struct {
	Hours        int     `yaml:"hours"`
	Minutes      int     `yaml:"minutes"`
	Seconds      float64 `yaml:"seconds"`
	Milliseconds int     `yaml:"milliseconds"`
}

// Angles returns the hand angles for this reading.
func (r TimeReading) Angles() ClockAngles {
	return CalculateAngles(r.Hours, r.Minutes, r.Seconds, r.Milliseconds)
}

// ClockAngles holds hand rotations in degrees, clockwise from 12 o'clock.
type ClockAngles struct {
	Hour   float64 `yaml:"hour"`
	Minute float64 `yaml:"minute"`
	Second float64 `yaml:"second"`
}

// Normalized returns a copy with every angle mapped into [0, 360).
func (a ClockAngles) Normalized() ClockAngles {
	return ClockAngles{
		Hour:   NormalizeDegrees(a.Hour),
		Minute: NormalizeDegrees(a.Minute),
		Second: NormalizeDegrees(a.Second),
	}
}

// CalculateAngles converts a time of day into hand angles.
//
// The effective second is seconds + milliseconds/1000. It is not wrapped at
// 60: callers keep seconds below 60. Out-of-range inputs are not clamped and
// produce proportionally out-of-range angles.
func CalculateAngles(hours, minutes int, seconds float64, milliseconds int) ClockAngles {
	effective := seconds
	if milliseconds != 0 {
		effective = seconds + float64(milliseconds)/1000
	}

	hour := (float64(hours%hoursOnDial) +
		float64(minutes)/minutesOnDial +
		effective/(minutesOnDial*60)) * degreesPerHour
	minute := (float64(minutes) + effective/60) * degreesPerMinute
	second := effective * degreesPerSecond

	return ClockAngles{Hour: hour, Minute: minute, Second: second}
}

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds up to exactly 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// HoursToDisplay returns the hour labels to draw, in dial order.
// The returned slice is freshly allocated and may be modified.
func HoursToDisplay(cardinalOnly bool) []int {
	hours := make([]int, 0, hoursOnDial)
	for h := 1; h <= hoursOnDial; h++ {
		if cardinalOnly && h%cardinalStep != 0 {
			continue
		}
		hours = append(hours, h)
	}
	return hours
}

// TicksToDisplay returns the tick indices (0-59) to draw. Major ticks are
// listed before minor ticks.
func TicksToDisplay(major, minor bool) []int {
	var ticks []int
	if major {
		for i := 0; i < minutesOnDial; i += majorTickStep {
			ticks = append(ticks, i)
		}
	}
	if minor {
		for i := 0; i < minutesOnDial; i++ {
			if !IsMajorTick(i) {
				ticks = append(ticks, i)
			}
		}
	}
	return ticks
}

// IsMajorTick reports whether tick index i sits on an hour position.
func IsMajorTick(i int) bool { return i%majorTickStep == 0 }

// IsCardinalHour reports whether hour is one of 3, 6, 9 or 12.
func IsCardinalHour(hour int) bool { return hour%cardinalStep == 0 }

// HourLabel returns the face label for hour (1-12), Roman or Arabic.
func HourLabel(hour int, roman bool) string {
	if roman && hour >= 1 && hour <= hoursOnDial {
		return RomanNumerals[hour-1]
	}
	return strconv.Itoa(hour)
}

// TickAngle returns the dial angle of tick index i.
func TickAngle(i int) float64 { return float64(i) * degreesPerMinute }

// HourAngle returns the dial angle of an hour label.
func HourAngle(hour int) float64 { return float64(hour%hoursOnDial) * degreesPerHour }

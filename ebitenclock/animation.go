package ebitenclock

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/clockface"
)

// DefaultRetargetDuration is how long the hands take to swing to a new
// timezone, in seconds.
const DefaultRetargetDuration float32 = 0.6

// HandTween swings all three hands from a fixed starting position toward a
// moving target. The target is re-read every update so a live clock keeps
// ticking while the hands travel. Each hand takes the shortest way round.
//
// There is no global animation manager; callers Update it themselves.
type HandTween struct {
	tween *gween.Tween
	from  clockface.ClockAngles
	Done  bool
}

// NewHandTween starts a tween from the given angles over duration seconds.
// A nil easing function selects ease.OutCubic.
func NewHandTween(from clockface.ClockAngles, duration float32, fn ease.TweenFunc) *HandTween {
	if fn == nil {
		fn = ease.OutCubic
	}
	return &HandTween{
		tween: gween.New(0, 1, duration, fn),
		from:  from,
	}
}

// Update advances the tween by dt seconds and returns the angles to display
// for the current target. Once Done, it returns the target unchanged.
func (h *HandTween) Update(dt float32, to clockface.ClockAngles) clockface.ClockAngles {
	if h.Done {
		return to
	}
	p, finished := h.tween.Update(dt)
	if finished {
		h.Done = true
		return to
	}
	t := float64(p)
	return clockface.ClockAngles{
		Hour:   interpolateAngle(h.from.Hour, to.Hour, t),
		Minute: interpolateAngle(h.from.Minute, to.Minute, t),
		Second: interpolateAngle(h.from.Second, to.Second, t),
	}
}

// interpolateAngle moves from a toward b along the shorter arc, in degrees,
// and normalizes the result into [0, 360).
func interpolateAngle(a, b, t float64) float64 {
	return clockface.NormalizeDegrees(a + shortestDelta(a, b)*t)
}

// shortestDelta returns the signed rotation in (-180, 180] that takes a to b.
func shortestDelta(a, b float64) float64 {
	d := clockface.NormalizeDegrees(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}
